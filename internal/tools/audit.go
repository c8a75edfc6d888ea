package tools

import (
	"context"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/Sweet-and-Fizzy/mcp-ondemand/internal/logging"
	"github.com/Sweet-and-Fizzy/mcp-ondemand/internal/server"
)

var toolInvocations = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "mcp_ondemand_tool_invocations_total",
	Help: "Total MCP tool invocations by tool name and outcome.",
}, []string{"tool", "status"})

// WrapWithLogging wraps a tool handler so every invocation is logged with its
// tool name, duration, and outcome, and counted in the invocation metrics.
// An outcome is an error only when the handler returns a Go error or flags
// the result as an error; operation failures rendered into the result text
// are, by contract, successful invocations from the host's point of view.
func WrapWithLogging(
	toolName string,
	handler ToolHandler,
	sc *server.ServerContext,
) func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		start := time.Now()

		result, err := handler(ctx, request, sc)

		failed := err != nil || (result != nil && result.IsError)
		status := logging.StatusSuccess
		if failed {
			status = logging.StatusError
		}

		toolInvocations.WithLabelValues(toolName, status).Inc()
		sc.Metrics().RecordToolCall(failed)

		logger := sc.Logger()
		if err != nil {
			logger.Error("tool invocation failed",
				logging.Tool(toolName),
				logging.Duration(time.Since(start)),
				logging.Err(err),
			)
		} else {
			logger.Debug("tool invocation",
				logging.Tool(toolName),
				logging.Duration(time.Since(start)),
				logging.Status(status),
			)
		}

		return result, err
	}
}
