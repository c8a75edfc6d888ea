package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sweet-and-Fizzy/mcp-ondemand/internal/ood"
)

func newHealthTestContext(t *testing.T, client ood.Client) *ServerContext {
	t.Helper()
	sc, err := NewServerContext(context.Background(),
		WithAPIClient(client),
		WithLogger(testLogger()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = sc.Shutdown() })
	return sc
}

func TestLivenessHandlerAlwaysOK(t *testing.T) {
	sc := newHealthTestContext(t, &stubClient{result: ood.Failure("connection_error", "down")})
	h := NewHealthChecker(sc)

	rec := httptest.NewRecorder()
	h.LivenessHandler()(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
}

func TestReadinessHandlerReadyWhenAPIAnswers(t *testing.T) {
	// An authorization error is still an answer; only connection failures
	// make the server not ready.
	sc := newHealthTestContext(t, &stubClient{result: ood.Failure("unauthorized", "Invalid token")})
	h := NewHealthChecker(sc)

	rec := httptest.NewRecorder()
	h.ReadinessHandler()(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestReadinessHandlerNotReadyOnConnectionFailure(t *testing.T) {
	sc := newHealthTestContext(t, &stubClient{result: ood.Failure("connection_error", "connection refused")})
	h := NewHealthChecker(sc)

	rec := httptest.NewRecorder()
	h.ReadinessHandler()(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "not ready", resp.Status)
	assert.Contains(t, resp.Checks["ood_api"], "unreachable")
}

func TestReadinessHandlerNotReadyAfterShutdown(t *testing.T) {
	sc := newHealthTestContext(t, &stubClient{result: ood.Success([]byte(`{}`))})
	h := NewHealthChecker(sc)
	require.NoError(t, sc.Shutdown())

	rec := httptest.NewRecorder()
	h.ReadinessHandler()(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestRegisterHealthEndpoints(t *testing.T) {
	sc := newHealthTestContext(t, &stubClient{result: ood.Success([]byte(`{}`))})
	h := NewHealthChecker(sc)

	mux := http.NewServeMux()
	h.RegisterHealthEndpoints(mux)

	for _, path := range []string{"/healthz", "/readyz"} {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}
}
