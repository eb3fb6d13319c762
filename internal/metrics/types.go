package metrics

import "github.com/prometheus/client_golang/prometheus"

// Service holds all the Prometheus metrics for the application.
type Service struct {
	Requests             *prometheus.CounterVec
	RequestDuration      *prometheus.HistogramVec
	PassportReplacements *prometheus.CounterVec
	LeaderboardLookups   *prometheus.CounterVec
	EventPublishFailures *prometheus.CounterVec
	StartupTimeSeconds   prometheus.Gauge
}
