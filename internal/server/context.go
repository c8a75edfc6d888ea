package server

import (
	"context"
	"log/slog"
	"sync"

	"github.com/Sweet-and-Fizzy/mcp-ondemand/internal/ood"
)

// ServerContext encapsulates all dependencies needed by the MCP server
// and provides a clean abstraction for dependency injection and lifecycle
// management. Tool handlers receive it instead of reaching for globals, so
// every unit stays independently testable with a substituted API client.
type ServerContext struct {
	// Core dependencies
	apiClient ood.Client
	logger    *slog.Logger
	config    *Config

	// Metrics tracking
	metrics *Metrics

	// Context management
	ctx    context.Context
	cancel context.CancelFunc

	// Lifecycle management
	mu       sync.RWMutex
	shutdown bool
}

// Metrics tracks per-process tool invocation counts for monitoring.
type Metrics struct {
	ToolCalls  int64
	ToolErrors int64

	mu sync.RWMutex
}

// NewMetrics creates a new Metrics instance.
func NewMetrics() *Metrics {
	return &Metrics{}
}

// RecordToolCall records one tool invocation and whether it failed.
func (m *Metrics) RecordToolCall(failed bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ToolCalls++
	if failed {
		m.ToolErrors++
	}
}

// Snapshot returns the current counters.
func (m *Metrics) Snapshot() (calls, errors int64) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.ToolCalls, m.ToolErrors
}

// NewServerContext creates a new ServerContext with default values.
// Use the provided functional options to customize the context.
func NewServerContext(ctx context.Context, opts ...Option) (*ServerContext, error) {
	serverCtx, cancel := context.WithCancel(ctx)

	sc := &ServerContext{
		ctx:     serverCtx,
		cancel:  cancel,
		config:  NewDefaultConfig(),
		logger:  slog.Default(),
		metrics: NewMetrics(),
	}

	for _, opt := range opts {
		if err := opt(sc); err != nil {
			cancel()
			return nil, err
		}
	}

	if err := sc.validate(); err != nil {
		cancel()
		return nil, err
	}

	return sc, nil
}

// Context returns the server context for cancellation and deadlines.
func (sc *ServerContext) Context() context.Context {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.ctx
}

// APIClient returns the Open OnDemand API client.
func (sc *ServerContext) APIClient() ood.Client {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.apiClient
}

// Logger returns the structured logger.
func (sc *ServerContext) Logger() *slog.Logger {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.logger
}

// Config returns the server configuration.
func (sc *ServerContext) Config() *Config {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.config
}

// Metrics returns the metrics tracker.
func (sc *ServerContext) Metrics() *Metrics {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.metrics
}

// Shutdown gracefully shuts down the server context.
// It cancels the context and is safe to call more than once.
func (sc *ServerContext) Shutdown() error {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	if sc.shutdown {
		return nil
	}

	sc.logger.Info("shutting down server context")

	if sc.cancel != nil {
		sc.cancel()
	}
	sc.shutdown = true

	return nil
}

// IsShutdown returns true if the server context has been shutdown.
func (sc *ServerContext) IsShutdown() bool {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.shutdown
}

// validate ensures all required dependencies are set.
func (sc *ServerContext) validate() error {
	if sc.apiClient == nil {
		return ErrMissingAPIClient
	}
	if sc.logger == nil {
		return ErrMissingLogger
	}
	if sc.config == nil {
		return ErrMissingConfig
	}
	return nil
}

// Config holds the server configuration.
type Config struct {
	// Server identity
	ServerName string `json:"serverName"`
	Version    string `json:"version"`

	// Logging settings
	LogLevel  string `json:"logLevel"`
	LogFormat string `json:"logFormat"`
}

// NewDefaultConfig creates a configuration with sensible defaults.
func NewDefaultConfig() *Config {
	return &Config{
		ServerName: "mcp-ondemand",
		Version:    "0.1.0",
		LogLevel:   "info",
		LogFormat:  "text",
	}
}

// Clone creates a copy of the configuration.
func (c *Config) Clone() *Config {
	if c == nil {
		return nil
	}
	clone := *c
	return &clone
}
