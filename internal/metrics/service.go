package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var _ Metrics = (*Service)(nil)

// NewMetricsHandler returns an http.Handler for the given Gatherer.
// If no gatherer is provided, it uses the default one.
func NewMetricsHandler(gatherer ...prometheus.Gatherer) http.Handler {
	gath := prometheus.DefaultGatherer
	if len(gatherer) > 0 {
		gath = gatherer[0]
	}
	return promhttp.HandlerFor(gath, promhttp.HandlerOpts{})
}

// NewService creates and registers the Prometheus metrics.
// If no registerer is provided, it uses the default Prometheus registerer.
func NewService(registerer ...prometheus.Registerer) *Service {
	reg := prometheus.DefaultRegisterer
	if len(registerer) > 0 {
		reg = registerer[0]
	}

	s := &Service{
		Requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "roster_http_requests_total",
			Help: "HTTP requests served, by method, route pattern and status code.",
		}, []string{"method", "route", "status"}),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "roster_http_request_duration_seconds",
			Help:    "HTTP request latency by method and route pattern.",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}, []string{"method", "route"}),
		PassportReplacements: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "roster_passport_replacements_total",
			Help: "Passport association replacements by outcome.",
		}, []string{"outcome"}),
		LeaderboardLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "roster_leaderboard_lookups_total",
			Help: "Top performer lookups by metric.",
		}, []string{"metric"}),
		EventPublishFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "roster_event_publish_failures_total",
			Help: "Roster events that could not be published, by topic.",
		}, []string{"topic"}),
		StartupTimeSeconds: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "roster_startup_duration_seconds",
			Help: "The duration of the application startup in seconds.",
		}),
	}

	reg.MustRegister(
		s.Requests,
		s.RequestDuration,
		s.PassportReplacements,
		s.LeaderboardLookups,
		s.EventPublishFailures,
		s.StartupTimeSeconds,
	)

	return s
}

func (s *Service) ObserveRequest(method, route string, status int, duration float64) {
	s.Requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	s.RequestDuration.WithLabelValues(method, route).Observe(duration)
}

func (s *Service) IncPassportReplacement(outcome string) {
	s.PassportReplacements.WithLabelValues(outcome).Inc()
}

func (s *Service) IncLeaderboardLookup(metric string) {
	s.LeaderboardLookups.WithLabelValues(metric).Inc()
}

func (s *Service) IncEventPublishFailed(topic string) {
	s.EventPublishFailures.WithLabelValues(topic).Inc()
}

func (s *Service) SetStartupTime(duration float64) {
	s.StartupTimeSeconds.Set(duration)
}
