// Package middleware provides HTTP middleware for the SSE and streamable-HTTP
// transports: Prometheus request metrics with bounded label cardinality, and
// standard security headers.
package middleware
