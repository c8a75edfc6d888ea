// Package tools provides shared utilities and types for MCP tool implementations.
package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/Sweet-and-Fizzy/mcp-ondemand/internal/server"
)

// ToolHandler is the signature for MCP tool handler functions that take ServerContext.
type ToolHandler func(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error)
