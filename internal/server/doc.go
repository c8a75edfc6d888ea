// Package server provides the ServerContext pattern and related
// infrastructure for the mcp-ondemand server.
//
// ServerContext encapsulates the server's dependencies (the Open OnDemand
// API client, the structured logger, and the configuration) and is injected
// into every tool handler. Dependencies are wired with functional options:
//
//	serverCtx, err := server.NewServerContext(ctx,
//		server.WithAPIClient(client),
//		server.WithLogger(logger),
//		server.WithServerName("mcp-ondemand"),
//	)
//	if err != nil {
//		return err
//	}
//	defer serverCtx.Shutdown()
//
// The package also provides the health check endpoints used by the HTTP
// transports: /healthz (liveness) and /readyz (readiness, probing the OOD
// API's health endpoint).
package server
