package scores

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"
)

// store handles all database operations for game results.
type store struct {
	db *sql.DB
	mu sync.RWMutex
}

// ErrDuplicateSubmission is returned when a result already exists for the
// same (user, game, date) key.
var ErrDuplicateSubmission = errors.New("score already submitted for this user, game and date")

// ErrUnknownGame is returned when a game name falls outside the closed set.
var ErrUnknownGame = errors.New("unknown game")

// Game identifies one of the supported puzzle games.
type Game string

const (
	GameWordle      Game = "Wordle"
	GameConnections Game = "Connections"
	GameMini        Game = "Mini"
)

// GameResult is a single submitted score. Score is lower-is-better for every
// game: attempts for Wordle and Connections, elapsed seconds for the Mini.
type GameResult struct {
	ID    int64     `json:"id"`
	User  string    `json:"user"`
	Game  Game      `json:"game"`
	Score int       `json:"score"`
	Date  time.Time `json:"date"`
}

// RankedResult is a GameResult with the points earned from its rank within
// the (date, game) group. Never persisted.
type RankedResult struct {
	GameResult
	Rank   int `json:"rank"`
	Points int `json:"points"`
}

// PeriodTotal is a user's point total over an aggregation period.
type PeriodTotal struct {
	User   string `json:"user"`
	Points int    `json:"points"`
}

// ParseGame maps a game name onto the closed set of supported games.
// Matching is case-insensitive so admin commands can use lowercase names.
func ParseGame(name string) (Game, error) {
	switch strings.ToLower(name) {
	case "wordle":
		return GameWordle, nil
	case "connections":
		return GameConnections, nil
	case "mini":
		return GameMini, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownGame, name)
}

// dateLayout is how dates are stored in the game_results table.
const dateLayout = "2006-01-02"

// Day truncates a timestamp to its UTC calendar date.
func Day(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
