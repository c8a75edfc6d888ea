package server

import (
	"context"
	"encoding/json"
	"net/http"
	"sync/atomic"
	"time"
)

// DefaultShutdownTimeout bounds graceful shutdown of the HTTP transports.
const DefaultShutdownTimeout = 30 * time.Second

// healthProbeTimeout bounds the readiness probe against the OOD API.
const healthProbeTimeout = 5 * time.Second

// HealthChecker provides health check endpoints for the HTTP transports.
type HealthChecker struct {
	// ready indicates whether the server is ready to receive traffic
	ready atomic.Bool
	// serverContext provides access to dependencies for health checks
	serverContext *ServerContext
	// startTime tracks when the server started
	startTime time.Time
}

// NewHealthChecker creates a new HealthChecker.
func NewHealthChecker(sc *ServerContext) *HealthChecker {
	h := &HealthChecker{
		serverContext: sc,
		startTime:     time.Now(),
	}
	h.ready.Store(true)
	return h
}

// SetReady sets the readiness state of the server.
func (h *HealthChecker) SetReady(ready bool) {
	h.ready.Store(ready)
}

// IsReady returns whether the server is ready to receive traffic.
func (h *HealthChecker) IsReady() bool {
	return h.ready.Load()
}

// HealthResponse represents the JSON response for health endpoints.
type HealthResponse struct {
	Status  string            `json:"status"`
	Checks  map[string]string `json:"checks,omitempty"`
	Version string            `json:"version,omitempty"`
	Uptime  string            `json:"uptime,omitempty"`
}

// LivenessHandler returns an HTTP handler for the /healthz endpoint.
// Liveness only reports that the process is running; it never touches the
// remote API.
func (h *HealthChecker) LivenessHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := HealthResponse{
			Status:  "ok",
			Version: h.serverContext.Config().Version,
			Uptime:  time.Since(h.startTime).Round(time.Second).String(),
		}
		writeHealthResponse(w, http.StatusOK, resp)
	}
}

// ReadinessHandler returns an HTTP handler for the /readyz endpoint.
// Readiness probes the OOD API's health endpoint through the structured
// transport. Any HTTP answer from the API counts as reachable, including
// authorization errors; only a connection-level failure marks the server
// not ready.
func (h *HealthChecker) ReadinessHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if h.serverContext.IsShutdown() || !h.ready.Load() {
			writeHealthResponse(w, http.StatusServiceUnavailable, HealthResponse{Status: "shutting down"})
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), healthProbeTimeout)
		defer cancel()

		checks := map[string]string{"ood_api": "ok"}
		status := http.StatusOK

		result := h.serverContext.APIClient().Request(ctx, http.MethodGet, "/health", nil)
		if !result.OK() && result.Err.Code == "connection_error" {
			checks["ood_api"] = "unreachable: " + result.Err.Message
			status = http.StatusServiceUnavailable
		}

		resp := HealthResponse{
			Status:  "ok",
			Checks:  checks,
			Version: h.serverContext.Config().Version,
			Uptime:  time.Since(h.startTime).Round(time.Second).String(),
		}
		if status != http.StatusOK {
			resp.Status = "not ready"
		}
		writeHealthResponse(w, status, resp)
	}
}

// RegisterHealthEndpoints registers the /healthz and /readyz endpoints on mux.
func (h *HealthChecker) RegisterHealthEndpoints(mux *http.ServeMux) {
	mux.HandleFunc("/healthz", h.LivenessHandler())
	mux.HandleFunc("/readyz", h.ReadinessHandler())
}

func writeHealthResponse(w http.ResponseWriter, status int, resp HealthResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}
