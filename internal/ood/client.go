package ood

import "context"

// Client defines the transport operations the MCP tools are built on.
// Implementations must be safe for concurrent use.
type Client interface {
	// Request performs a JSON round trip against the API. The path is
	// API-relative (including any query string) and body, when non-nil, is
	// serialized as the JSON request body. The outcome is always a Result;
	// connection failures are folded into the error variant.
	Request(ctx context.Context, method, path string, body any) Result

	// RequestRaw performs a round trip without JSON content negotiation and
	// returns the literal HTTP status and response bytes. A status of 0 means
	// no response was received and the body holds the failure reason.
	RequestRaw(ctx context.Context, method, path string, body []byte) (int, []byte)
}
