package ingest

import (
	"time"

	"github.com/mauv0809/nyt-rankbot/internal/notifier"
	"github.com/mauv0809/nyt-rankbot/internal/scores"
)

// Store defines the database operations required by the ingestion service.
type Store interface {
	Insert(result scores.GameResult) error
	GetAll() ([]scores.GameResult, error)
	Clear(date time.Time, user string) (int64, error)
}

// Notifier defines the notification operations required by the ingestion service.
// This is an alias for the main notifier interface for decoupling.
type Notifier interface {
	notifier.Notifier
}
