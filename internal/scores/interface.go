package scores

import "time"

// ScoreStore defines the interface for interacting with stored game results.
type ScoreStore interface {
	// Insert stores a new result. The uniqueness check and the insert are a
	// single atomic statement; a result that already exists for the same
	// (user, game, date) returns ErrDuplicateSubmission.
	Insert(result GameResult) error
	// GetAll returns the full submission history.
	GetAll() ([]GameResult, error)
	// Clear deletes all results for the given date. A non-empty user scopes
	// the delete to that user. It returns the number of deleted rows.
	Clear(date time.Time, user string) (int64, error)
}
