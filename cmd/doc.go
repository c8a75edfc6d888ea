// Package cmd provides the command-line interface for mcp-ondemand.
//
// This package implements a Cobra-based CLI with multiple subcommands:
//   - serve: Starts the MCP server (default behavior when no subcommand is provided)
//   - version: Displays the application version
//   - self-update: Updates the binary to the latest version from GitHub releases
//
// The CLI maintains backwards compatibility by running the serve command when
// no subcommand is specified, preserving the original behavior of the application.
//
// Command Structure:
//
//	mcp-ondemand [flags]                 # Starts the MCP server (default)
//	mcp-ondemand serve [flags]           # Explicitly starts the MCP server
//	mcp-ondemand version                 # Shows version information
//	mcp-ondemand self-update             # Updates to latest release
//	mcp-ondemand help [command]          # Shows help information
//
// The serve command supports multiple transport options:
//   - stdio: Standard input/output (default) - for command-line integration
//   - sse: Server-Sent Events over HTTP - for web-based clients
//   - streamable-http: Streamable HTTP transport - for HTTP-based integration
//
// Transport Configuration Examples:
//
//	mcp-ondemand serve --transport stdio           # Default STDIO transport
//	mcp-ondemand serve --transport sse --http-addr :8080 --sse-endpoint /sse
//	mcp-ondemand serve --transport streamable-http --http-addr :9000 --http-endpoint /mcp
//
// The serve command also supports flags for the Open OnDemand API connection
// (--ood-url, --ood-token), which fall back to the OOD_API_URL and
// OOD_API_TOKEN environment variables when not set.
package cmd
