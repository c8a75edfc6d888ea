package cmd

import (
	"fmt"

	mcpserver "github.com/mark3labs/mcp-go/server"
)

// runStdioServer runs the MCP server over stdin/stdout. This is the transport
// MCP hosts spawn the binary with, so stdout carries protocol traffic only;
// all logging in this mode goes to stderr.
func runStdioServer(mcpSrv *mcpserver.MCPServer) error {
	serverDone := make(chan error, 1)
	go func() {
		defer close(serverDone)
		if err := mcpserver.ServeStdio(mcpSrv); err != nil {
			serverDone <- err
		}
	}()

	// Block until the host closes stdin or the server fails.
	if err := <-serverDone; err != nil {
		return fmt.Errorf("stdio server stopped with error: %w", err)
	}
	return nil
}
