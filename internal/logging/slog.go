package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"
)

// Common log attribute keys for consistent naming across the codebase.
const (
	KeyTool     = "tool"
	KeyCluster  = "cluster"
	KeyJobID    = "job_id"
	KeyPath     = "path"
	KeyDuration = "duration"
	KeyStatus   = "status"
	KeyError    = "error"
)

// Status values for consistent logging.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Tool returns a slog attribute for the tool name.
func Tool(name string) slog.Attr {
	return slog.String(KeyTool, name)
}

// Cluster returns a slog attribute for the cluster ID.
func Cluster(id string) slog.Attr {
	return slog.String(KeyCluster, id)
}

// JobID returns a slog attribute for the job ID.
func JobID(id string) slog.Attr {
	return slog.String(KeyJobID, id)
}

// Path returns a slog attribute for a file path.
func Path(p string) slog.Attr {
	return slog.String(KeyPath, p)
}

// Status returns a slog attribute for the outcome status.
func Status(status string) slog.Attr {
	return slog.String(KeyStatus, status)
}

// Duration returns a slog attribute for an elapsed duration.
func Duration(d time.Duration) slog.Attr {
	return slog.Duration(KeyDuration, d)
}

// Err returns a slog attribute for an error.
func Err(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}

// SanitizeToken returns a masked version of a token for logging.
// It returns a length indicator without exposing any token content,
// as even partial token prefixes can aid attacks.
func SanitizeToken(token string) string {
	if token == "" {
		return "<empty>"
	}
	return fmt.Sprintf("[token:%d chars]", len(token))
}

// ParseLevel maps a level name to a slog.Level, defaulting to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewLogger builds a slog.Logger writing to w with the given level and format
// ("json" or "text"). The server always passes stderr so the stdio MCP
// transport keeps stdout clean for protocol traffic.
func NewLogger(w io.Writer, level, format string) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}
	opts := &slog.HandlerOptions{Level: ParseLevel(level)}
	if strings.ToLower(format) == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
