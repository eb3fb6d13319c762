package metrics

// Metrics defines the interface for collecting application metrics.
// This decouples the application from the specific metrics implementation (e.g., Prometheus).
type Metrics interface {
	ObserveRequest(method, route string, status int, duration float64)
	IncPassportReplacement(outcome string)
	IncLeaderboardLookup(metric string)
	IncEventPublishFailed(topic string)
	SetStartupTime(duration float64)
}

// Passport replacement outcomes.
const (
	OutcomeOK               = "ok"
	OutcomeInvalidReference = "invalid_reference"
	OutcomeNotFound         = "not_found"
	OutcomeError            = "error"
)
