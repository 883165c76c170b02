package notifier

import (
	"sync"
	"time"

	"github.com/mauv0809/nyt-rankbot/internal/scores"
)

// Mock is a mock implementation of the Notifier interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu sync.Mutex

	// Call records
	SendScoreboardCalls []struct {
		Today   []scores.RankedResult
		Daily   []scores.PeriodTotal
		Monthly []scores.PeriodTotal
	}
	SendSubmissionAcceptedCalls []struct {
		User  string
		Game  scores.Game
		Score int
	}
	SendDuplicateRejectionCalls []struct {
		User string
		Game scores.Game
	}
	SendClearConfirmationCalls []struct {
		Date    time.Time
		User    string
		Deleted int64
	}
	SendManualAddConfirmationCalls []struct {
		User  string
		Game  scores.Game
		Score int
	}

	// Spies for format functions
	FormatScoreboardResponseFunc func(today []scores.RankedResult, daily, monthly []scores.PeriodTotal) (any, error)
	FormatTextResponseFunc       func(text string) (any, error)
	ResolveUserNameFunc          func(userID string) string
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{}
}

func (m *Mock) SendScoreboard(today []scores.RankedResult, daily, monthly []scores.PeriodTotal, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendScoreboardCalls = append(m.SendScoreboardCalls, struct {
		Today   []scores.RankedResult
		Daily   []scores.PeriodTotal
		Monthly []scores.PeriodTotal
	}{today, daily, monthly})
	return nil
}

func (m *Mock) SendSubmissionAccepted(user string, game scores.Game, score int, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendSubmissionAcceptedCalls = append(m.SendSubmissionAcceptedCalls, struct {
		User  string
		Game  scores.Game
		Score int
	}{user, game, score})
	return nil
}

func (m *Mock) SendDuplicateRejection(user string, game scores.Game, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendDuplicateRejectionCalls = append(m.SendDuplicateRejectionCalls, struct {
		User string
		Game scores.Game
	}{user, game})
	return nil
}

func (m *Mock) SendClearConfirmation(date time.Time, user string, deleted int64, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendClearConfirmationCalls = append(m.SendClearConfirmationCalls, struct {
		Date    time.Time
		User    string
		Deleted int64
	}{date, user, deleted})
	return nil
}

func (m *Mock) SendManualAddConfirmation(user string, game scores.Game, score int, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendManualAddConfirmationCalls = append(m.SendManualAddConfirmationCalls, struct {
		User  string
		Game  scores.Game
		Score int
	}{user, game, score})
	return nil
}

func (m *Mock) FormatScoreboardResponse(today []scores.RankedResult, daily, monthly []scores.PeriodTotal) (any, error) {
	if m.FormatScoreboardResponseFunc != nil {
		return m.FormatScoreboardResponseFunc(today, daily, monthly)
	}
	return nil, nil
}

func (m *Mock) FormatTextResponse(text string) (any, error) {
	if m.FormatTextResponseFunc != nil {
		return m.FormatTextResponseFunc(text)
	}
	return text, nil
}

func (m *Mock) ResolveUserName(userID string) string {
	if m.ResolveUserNameFunc != nil {
		return m.ResolveUserNameFunc(userID)
	}
	return userID
}

// Reset clears all call records.
func (m *Mock) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendScoreboardCalls = nil
	m.SendSubmissionAcceptedCalls = nil
	m.SendDuplicateRejectionCalls = nil
	m.SendClearConfirmationCalls = nil
	m.SendManualAddConfirmationCalls = nil
}
