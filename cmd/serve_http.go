package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Sweet-and-Fizzy/mcp-ondemand/internal/server"
	"github.com/Sweet-and-Fizzy/mcp-ondemand/internal/server/middleware"
)

// runStreamableHTTPServer runs the server with Streamable HTTP transport
func runStreamableHTTPServer(ctx context.Context, mcpSrv *mcpserver.MCPServer, sc *server.ServerContext, config ServeConfig) error {
	mux := http.NewServeMux()

	// Create Streamable HTTP handler
	mcpHandler := mcpserver.NewStreamableHTTPServer(mcpSrv,
		mcpserver.WithEndpointPath(config.HTTPEndpoint),
	)
	mux.Handle(config.HTTPEndpoint, mcpHandler)

	// Health check and metrics endpoints
	healthChecker := server.NewHealthChecker(sc)
	healthChecker.RegisterHealthEndpoints(mux)
	mux.Handle("/metrics", promhttp.Handler())

	slog.Info("streamable HTTP server starting",
		"addr", config.HTTPAddr,
		"endpoint", config.HTTPEndpoint,
		"health_endpoints", []string{"/healthz", "/readyz"})

	var handler http.Handler = mux
	handler = middleware.HTTPMetrics()(handler)
	handler = middleware.SecurityHeaders(middleware.SecurityHeadersConfig{})(handler)

	// Create HTTP server with security timeouts
	httpServer := &http.Server{
		Addr:              config.HTTPAddr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	healthChecker.SetReady(true)

	// Start server in goroutine
	serverDone := make(chan error, 1)
	go func() {
		defer close(serverDone)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverDone <- err
		}
	}()

	// Wait for either shutdown signal or server completion
	select {
	case <-ctx.Done():
		slog.Info("shutdown signal received, stopping HTTP server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), server.DefaultShutdownTimeout)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("error shutting down HTTP server: %w", err)
		}
	case err := <-serverDone:
		if err != nil {
			return fmt.Errorf("HTTP server stopped with error: %w", err)
		}
		slog.Info("HTTP server stopped normally")
	}

	slog.Info("HTTP server gracefully stopped")
	return nil
}
