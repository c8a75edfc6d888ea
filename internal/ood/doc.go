// Package ood implements the client for the Open OnDemand REST API.
//
// Every tool operation goes through one of two transport chokepoints:
//
//   - Request: a JSON round trip returning a Result, a two-variant union of
//     success payload and normalized error. The API's success envelope is
//     {"data": ...} and its error envelope is {"error": ..., "message": ...};
//     the union is decided once here so operation code never probes response
//     shapes.
//   - RequestRaw: a round trip without JSON content negotiation, returning the
//     literal HTTP status and body bytes. File content may be arbitrary binary
//     data and must not be forced through JSON decoding.
//
// Neither variant ever returns a Go error to the caller. Connection-level
// failures are folded into the same shapes: a Result carrying the
// "connection_error" code, or a raw status of 0 with the failure reason as the
// body.
//
// The client is stateless apart from its immutable configuration and is safe
// for concurrent use.
package ood
