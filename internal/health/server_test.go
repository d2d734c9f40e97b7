package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestHealthAndLive(t *testing.T) {
	s := NewServer(Config{ServiceName: "edge-sim", Version: "1.2.0", Port: "0"})

	for _, path := range []string{"/health", "/live"} {
		rec := get(t, s.Handler(), path)
		require.Equal(t, http.StatusOK, rec.Code, path)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

		var body HealthResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
		assert.Equal(t, "ok", body.Status)
		assert.Equal(t, "edge-sim", body.Service)
	}
}

func TestReadyReflectsFlagAndChecks(t *testing.T) {
	var snapshotErr error
	s := NewServer(Config{
		ServiceName: "edge-sim",
		Port:        "0",
		Checks: map[string]Checker{
			"snapshot": CheckerFunc(func(ctx context.Context) error { return snapshotErr }),
		},
	})

	rec := get(t, s.Handler(), "/ready")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	s.SetReady(true)
	snapshotErr = errors.New("no simulation snapshot available")
	rec = get(t, s.Handler(), "/ready")
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var body ReadyResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "not_ready", body.Status)
	assert.Equal(t, "ok", body.Checks["service"])
	assert.Contains(t, body.Checks["snapshot"], "no simulation snapshot")

	snapshotErr = nil
	rec = get(t, s.Handler(), "/ready")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestExtraHandlersMounted(t *testing.T) {
	s := NewServer(Config{
		Port: "0",
		Handlers: map[string]http.Handler{
			"/metrics": http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte("fairway_edge_trials_total 0\n"))
			}),
		},
	})

	rec := get(t, s.Handler(), "/metrics")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "fairway_edge_trials_total")
}

func TestStartAndShutdown(t *testing.T) {
	s := NewServer(Config{Port: "0"})
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, s.Start(ctx))
	assert.NoError(t, s.Shutdown())
}

func TestShutdownWithoutStart(t *testing.T) {
	s := NewServer(Config{})
	assert.NoError(t, s.Shutdown())
}
