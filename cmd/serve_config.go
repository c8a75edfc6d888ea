package cmd

import (
	"os"

	"github.com/Sweet-and-Fizzy/mcp-ondemand/internal/ood"
)

// ServeConfig holds all configuration for the serve command.
type ServeConfig struct {
	// Transport settings
	Transport string
	HTTPAddr  string

	// Endpoint paths
	SSEEndpoint     string
	MessageEndpoint string
	HTTPEndpoint    string

	// Open OnDemand API connection
	OODBaseURL string
	OODToken   string

	// Logging settings
	DebugMode bool
	LogFormat string
}

// resolveAPIConfig builds the API client configuration from flags and
// environment. Flags take precedence over environment variables; the base
// URL falls back to the local Open OnDemand default.
func resolveAPIConfig(config ServeConfig) ood.Config {
	baseURL := config.OODBaseURL
	if baseURL == "" {
		baseURL = os.Getenv(ood.EnvBaseURL)
	}
	if baseURL == "" {
		baseURL = ood.DefaultBaseURL
	}

	token := config.OODToken
	if token == "" {
		token = os.Getenv(ood.EnvToken)
	}

	return ood.Config{
		BaseURL: baseURL,
		Token:   token,
	}
}

// logLevel maps the debug flag onto a slog level name.
func logLevel(config ServeConfig) string {
	if config.DebugMode {
		return "debug"
	}
	return "info"
}
