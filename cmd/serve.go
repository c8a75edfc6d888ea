package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/Sweet-and-Fizzy/mcp-ondemand/internal/logging"
	"github.com/Sweet-and-Fizzy/mcp-ondemand/internal/ood"
	"github.com/Sweet-and-Fizzy/mcp-ondemand/internal/server"
	"github.com/Sweet-and-Fizzy/mcp-ondemand/internal/tools/cluster"
	"github.com/Sweet-and-Fizzy/mcp-ondemand/internal/tools/file"
	"github.com/Sweet-and-Fizzy/mcp-ondemand/internal/tools/job"
)

// Transport type constants for the MCP server.
const (
	transportStdio          = "stdio"
	transportSSE            = "sse"
	transportStreamableHTTP = "streamable-http"
)

// serverInstructions is advertised to MCP clients at initialization so agents
// know what the tool set covers.
const serverInstructions = `This server provides access to HPC clusters managed by Open OnDemand.
Use the cluster tools to discover available clusters, the job tools to list,
inspect, submit, and cancel batch jobs, and the file tools to browse and
manage files on the cluster filesystems.`

// newServeCmd creates the Cobra command for starting the MCP server.
func newServeCmd() *cobra.Command {
	var (
		// Transport options
		transport       string
		httpAddr        string
		sseEndpoint     string
		messageEndpoint string
		httpEndpoint    string

		// Open OnDemand connection options
		oodURL   string
		oodToken string

		// Logging options
		debugMode bool
		logFormat string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the MCP Open OnDemand server",
		Long: `Start the MCP Open OnDemand server to provide tools for interacting
with HPC clusters via the Model Context Protocol.

Supports multiple transport types:
  - stdio: Standard input/output (default)
  - sse: Server-Sent Events over HTTP
  - streamable-http: Streamable HTTP transport

The server talks to the Open OnDemand REST API configured via --ood-url and
--ood-token (or the OOD_API_URL and OOD_API_TOKEN environment variables).
A missing token is allowed: requests are then sent unauthenticated and the
remote API decides what they may do.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			config := ServeConfig{
				Transport:       transport,
				HTTPAddr:        httpAddr,
				SSEEndpoint:     sseEndpoint,
				MessageEndpoint: messageEndpoint,
				HTTPEndpoint:    httpEndpoint,
				OODBaseURL:      oodURL,
				OODToken:        oodToken,
				DebugMode:       debugMode,
				LogFormat:       logFormat,
			}

			return runServe(config)
		},
	}

	// Transport flags
	cmd.Flags().StringVar(&transport, "transport", transportStdio, "Transport type: stdio, sse, or streamable-http")
	cmd.Flags().StringVar(&httpAddr, "http-addr", ":8080", "HTTP server address (for sse and streamable-http transports)")
	cmd.Flags().StringVar(&sseEndpoint, "sse-endpoint", "/sse", "SSE endpoint path (for sse transport)")
	cmd.Flags().StringVar(&messageEndpoint, "message-endpoint", "/message", "Message endpoint path (for sse transport)")
	cmd.Flags().StringVar(&httpEndpoint, "http-endpoint", "/mcp", "HTTP endpoint path (for streamable-http transport)")

	// Open OnDemand connection flags
	cmd.Flags().StringVar(&oodURL, "ood-url", "", "Open OnDemand API base URL (can also be set via OOD_API_URL env var)")
	cmd.Flags().StringVar(&oodToken, "ood-token", "", "Open OnDemand API bearer token (can also be set via OOD_API_TOKEN env var)")

	// Logging flags
	cmd.Flags().BoolVar(&debugMode, "debug", false, "Enable debug logging (default: false)")
	cmd.Flags().StringVar(&logFormat, "log-format", "text", "Log output format: text or json")

	return cmd
}

// runServe wires together the API client, server context, and MCP server,
// then hands off to the transport-specific runner.
func runServe(config ServeConfig) error {
	// Logs go to stderr so the stdio transport keeps stdout for the protocol.
	logger := logging.NewLogger(os.Stderr, logLevel(config), config.LogFormat)

	apiConfig := resolveAPIConfig(config)
	logger.Info("connecting to Open OnDemand API",
		"url", apiConfig.BaseURL,
		"token", logging.SanitizeToken(apiConfig.Token),
	)
	if apiConfig.Token == "" {
		logger.Warn("OOD_API_TOKEN not set, API requests will be unauthenticated")
	}

	apiClient := ood.NewClient(apiConfig)

	// Setup graceful shutdown - listen for both SIGINT and SIGTERM
	shutdownCtx, cancel := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM)
	defer cancel()

	sc, err := server.NewServerContext(shutdownCtx,
		server.WithAPIClient(apiClient),
		server.WithLogger(logger),
		server.WithVersion(rootCmd.Version),
		server.WithLogLevel(logLevel(config)),
	)
	if err != nil {
		return fmt.Errorf("failed to create server context: %w", err)
	}
	defer func() {
		if shutdownErr := sc.Shutdown(); shutdownErr != nil {
			logger.Error("error during server context shutdown", logging.Err(shutdownErr))
		}
	}()

	mcpSrv := mcpserver.NewMCPServer(sc.Config().ServerName, rootCmd.Version,
		mcpserver.WithToolCapabilities(true),
		mcpserver.WithInstructions(serverInstructions),
	)

	if err := cluster.RegisterClusterTools(mcpSrv, sc); err != nil {
		return fmt.Errorf("failed to register cluster tools: %w", err)
	}
	if err := job.RegisterJobTools(mcpSrv, sc); err != nil {
		return fmt.Errorf("failed to register job tools: %w", err)
	}
	if err := file.RegisterFileTools(mcpSrv, sc); err != nil {
		return fmt.Errorf("failed to register file tools: %w", err)
	}

	switch config.Transport {
	case transportStdio:
		return runStdioServer(mcpSrv)
	case transportSSE:
		return runSSEServer(shutdownCtx, mcpSrv, config)
	case transportStreamableHTTP:
		return runStreamableHTTPServer(shutdownCtx, mcpSrv, sc, config)
	default:
		return fmt.Errorf("unsupported transport type: %s (supported: %s, %s, %s)",
			config.Transport, transportStdio, transportSSE, transportStreamableHTTP)
	}
}
