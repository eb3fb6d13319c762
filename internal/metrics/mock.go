package metrics

import "sync"

// Mock is a mock implementation of the Metrics interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu                   sync.Mutex
	requests             []string
	passportReplacements map[string]int
	leaderboardLookups   map[string]int
	publishFailures      map[string]int
	startupTime          float64
}

var _ Metrics = (*Mock)(nil)

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{
		passportReplacements: make(map[string]int),
		leaderboardLookups:   make(map[string]int),
		publishFailures:      make(map[string]int),
	}
}

func (m *Mock) ObserveRequest(method, route string, status int, duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requests = append(m.requests, method+" "+route)
}

func (m *Mock) IncPassportReplacement(outcome string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.passportReplacements[outcome]++
}

func (m *Mock) IncLeaderboardLookup(metric string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.leaderboardLookups[metric]++
}

func (m *Mock) IncEventPublishFailed(topic string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.publishFailures[topic]++
}

func (m *Mock) SetStartupTime(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.startupTime = duration
}

// Requests returns "METHOD route" for every observed request.
func (m *Mock) Requests() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.requests))
	copy(out, m.requests)
	return out
}

// PassportReplacements returns how often outcome was recorded.
func (m *Mock) PassportReplacements(outcome string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.passportReplacements[outcome]
}

// LeaderboardLookups returns how often metric was looked up.
func (m *Mock) LeaderboardLookups(metric string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.leaderboardLookups[metric]
}

// PublishFailures returns how many events failed for topic.
func (m *Mock) PublishFailures(topic string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.publishFailures[topic]
}
