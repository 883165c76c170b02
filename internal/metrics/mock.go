package metrics

import "sync"

// Mock is a mock implementation of the Metrics interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu                   sync.Mutex
	submissionsAccepted  map[string]int
	submissionsDuplicate map[string]int
	submissionsUnmatched int
	ingestDurations      []float64
	slackNotifSent       int
	slackNotifFailed     int
	startupTime          float64
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{
		submissionsAccepted:  make(map[string]int),
		submissionsDuplicate: make(map[string]int),
		ingestDurations:      make([]float64, 0),
	}
}

func (m *Mock) IncSubmissionsAccepted(game string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.submissionsAccepted[game]++
}

func (m *Mock) IncSubmissionsDuplicate(game string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.submissionsDuplicate[game]++
}

func (m *Mock) IncSubmissionsUnmatched() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.submissionsUnmatched++
}

func (m *Mock) ObserveIngestDuration(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ingestDurations = append(m.ingestDurations, duration)
}

func (m *Mock) IncSlackNotifSent() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slackNotifSent++
}

func (m *Mock) IncSlackNotifFailed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slackNotifFailed++
}

func (m *Mock) SetStartupTime(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.startupTime = duration
}

// SubmissionsAccepted returns how many submissions were accepted for a game.
func (m *Mock) SubmissionsAccepted(game string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.submissionsAccepted[game]
}

// SubmissionsDuplicate returns how many duplicates were rejected for a game.
func (m *Mock) SubmissionsDuplicate(game string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.submissionsDuplicate[game]
}

// SubmissionsUnmatched returns the number of unmatched messages.
func (m *Mock) SubmissionsUnmatched() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.submissionsUnmatched
}

// SlackNotifSent returns the number of times IncSlackNotifSent was called.
func (m *Mock) SlackNotifSent() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.slackNotifSent
}

// SlackNotifFailed returns the number of times IncSlackNotifFailed was called.
func (m *Mock) SlackNotifFailed() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.slackNotifFailed
}
