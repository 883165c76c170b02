package scores

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
)

// New creates a new ScoreStore.
func New(db *sql.DB) ScoreStore {
	return &store{
		db: db,
	}
}

// Insert stores a new result. INSERT OR IGNORE makes the uniqueness check and
// the insert one atomic statement against the UNIQUE(user, game, date)
// constraint, so two near-simultaneous submissions for the same key cannot
// both land; the loser sees zero affected rows.
func (s *store) Insert(result GameResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.Exec(`
		INSERT OR IGNORE INTO game_results (user, game, score, date)
		VALUES (?, ?, ?, ?)
	`, result.User, string(result.Game), result.Score, result.Date.UTC().Format(dateLayout))
	if err != nil {
		return fmt.Errorf("failed to insert game result: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return ErrDuplicateSubmission
	}

	log.Debug("Stored game result", "user", result.User, "game", result.Game, "score", result.Score, "date", result.Date.Format(dateLayout))
	return nil
}

// GetAll returns the full submission history. Ranking is always derived fresh
// from this scan rather than maintained incrementally.
func (s *store) GetAll() ([]GameResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`SELECT id, user, game, score, date FROM game_results ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query game results: %w", err)
	}
	defer rows.Close()

	var results []GameResult
	for rows.Next() {
		var r GameResult
		var game, date string
		if err := rows.Scan(&r.ID, &r.User, &game, &r.Score, &date); err != nil {
			log.Error("Failed to scan game result row", "error", err)
			continue
		}
		r.Game = Game(game)
		r.Date, err = time.ParseInLocation(dateLayout, date, time.UTC)
		if err != nil {
			log.Error("Failed to parse stored date", "date", date, "error", err)
			continue
		}
		results = append(results, r)
	}
	return results, rows.Err()
}

// Clear deletes all results for the given date, optionally scoped to a user.
func (s *store) Clear(date time.Time, user string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var res sql.Result
	var err error
	if user != "" {
		res, err = s.db.Exec(`DELETE FROM game_results WHERE date = ? AND user = ?`, date.UTC().Format(dateLayout), user)
	} else {
		res, err = s.db.Exec(`DELETE FROM game_results WHERE date = ?`, date.UTC().Format(dateLayout))
	}
	if err != nil {
		return 0, fmt.Errorf("failed to clear game results: %w", err)
	}
	return res.RowsAffected()
}
