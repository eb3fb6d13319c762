package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scrape(t *testing.T, reg *prometheus.Registry) string {
	t.Helper()
	rec := httptest.NewRecorder()
	NewMetricsHandler(reg).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	return rec.Body.String()
}

func TestService(t *testing.T) {
	reg := prometheus.NewRegistry()
	svc := NewService(reg)

	svc.ObserveRequest("GET", "/players", 200, 0.01)
	svc.ObserveRequest("GET", "/players", 200, 0.02)
	svc.IncPassportReplacement(OutcomeInvalidReference)
	svc.IncLeaderboardLookup("sprints")
	svc.IncEventPublishFailed("player-created")
	svc.SetStartupTime(1.5)

	body := scrape(t, reg)
	assert.Contains(t, body, `roster_http_requests_total{method="GET",route="/players",status="200"} 2`)
	assert.Contains(t, body, `roster_http_request_duration_seconds_count{method="GET",route="/players"} 2`)
	assert.Contains(t, body, `roster_passport_replacements_total{outcome="invalid_reference"} 1`)
	assert.Contains(t, body, `roster_leaderboard_lookups_total{metric="sprints"} 1`)
	assert.Contains(t, body, `roster_event_publish_failures_total{topic="player-created"} 1`)
	assert.Contains(t, body, "roster_startup_duration_seconds 1.5")
}

func TestNewService_PanicsOnDoubleRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewService(reg)
	assert.Panics(t, func() { NewService(reg) })
}
