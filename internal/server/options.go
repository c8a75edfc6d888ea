package server

import (
	"errors"
	"log/slog"

	"github.com/Sweet-and-Fizzy/mcp-ondemand/internal/ood"
)

// Option is a functional option for configuring ServerContext.
type Option func(*ServerContext) error

// WithAPIClient sets the Open OnDemand API client for the ServerContext.
func WithAPIClient(client ood.Client) Option {
	return func(sc *ServerContext) error {
		if client == nil {
			return ErrMissingAPIClient
		}
		sc.apiClient = client
		return nil
	}
}

// WithLogger sets the logger for the ServerContext.
func WithLogger(logger *slog.Logger) Option {
	return func(sc *ServerContext) error {
		if logger == nil {
			return ErrMissingLogger
		}
		sc.logger = logger
		return nil
	}
}

// WithConfig sets the configuration for the ServerContext.
func WithConfig(config *Config) Option {
	return func(sc *ServerContext) error {
		if config == nil {
			return ErrMissingConfig
		}
		sc.config = config.Clone()
		return nil
	}
}

// WithServerName sets the server name in the configuration.
func WithServerName(name string) Option {
	return func(sc *ServerContext) error {
		if sc.config == nil {
			sc.config = NewDefaultConfig()
		}
		sc.config.ServerName = name
		return nil
	}
}

// WithVersion sets the server version in the configuration.
func WithVersion(version string) Option {
	return func(sc *ServerContext) error {
		if sc.config == nil {
			sc.config = NewDefaultConfig()
		}
		sc.config.Version = version
		return nil
	}
}

// WithLogLevel sets the logging level.
func WithLogLevel(level string) Option {
	return func(sc *ServerContext) error {
		if sc.config == nil {
			sc.config = NewDefaultConfig()
		}
		sc.config.LogLevel = level
		return nil
	}
}

// Error definitions for ServerContext validation and operations.
var (
	ErrMissingAPIClient = errors.New("api client is required")
	ErrMissingLogger    = errors.New("logger is required")
	ErrMissingConfig    = errors.New("configuration is required")
	ErrServerShutdown   = errors.New("server context has been shutdown")
)
