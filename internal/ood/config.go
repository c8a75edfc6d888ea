package ood

// Environment variables consulted when no explicit configuration is given.
const (
	// EnvBaseURL overrides the base URL of the Open OnDemand instance.
	EnvBaseURL = "OOD_API_URL"

	// EnvToken supplies the API bearer token.
	EnvToken = "OOD_API_TOKEN"
)

// DefaultBaseURL is used when neither a flag nor OOD_API_URL is set.
const DefaultBaseURL = "http://localhost:9292"

// Config holds the connection settings for the Open OnDemand API.
// It is constructed once at process start and treated as immutable afterwards;
// operations never read configuration from ambient process state.
//
// An empty Token is not an error here. Requests are still issued and the
// remote API rejects them with its own authorization error.
type Config struct {
	// BaseURL is the root of the OOD instance, e.g. "https://ondemand.example.edu".
	BaseURL string

	// Token is the bearer token sent with every request.
	Token string
}
