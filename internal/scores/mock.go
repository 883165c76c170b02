package scores

import (
	"sync"
	"time"
)

// Mock is a mock implementation of the ScoreStore interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu sync.Mutex

	// Call records
	InsertCalls []GameResult
	ClearCalls  []struct {
		Date time.Time
		User string
	}

	// Spies. When nil, Insert succeeds, GetAll returns Results and Clear
	// returns 0.
	InsertFunc func(result GameResult) error
	GetAllFunc func() ([]GameResult, error)
	ClearFunc  func(date time.Time, user string) (int64, error)

	// Results is the canned history returned by the default GetAll.
	Results []GameResult
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{}
}

func (m *Mock) Insert(result GameResult) error {
	m.mu.Lock()
	m.InsertCalls = append(m.InsertCalls, result)
	m.mu.Unlock()
	if m.InsertFunc != nil {
		return m.InsertFunc(result)
	}
	return nil
}

func (m *Mock) GetAll() ([]GameResult, error) {
	if m.GetAllFunc != nil {
		return m.GetAllFunc()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]GameResult(nil), m.Results...), nil
}

func (m *Mock) Clear(date time.Time, user string) (int64, error) {
	m.mu.Lock()
	m.ClearCalls = append(m.ClearCalls, struct {
		Date time.Time
		User string
	}{date, user})
	m.mu.Unlock()
	if m.ClearFunc != nil {
		return m.ClearFunc(date, user)
	}
	return 0, nil
}
