// Package logging provides slog helpers shared across the server: attribute
// key constants and constructors for consistent structured logging, token
// sanitization for safe log output, and logger construction from the
// configured level and format.
package logging
