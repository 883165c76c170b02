package pubsub

import (
	"time"

	"cloud.google.com/go/pubsub"
	"github.com/mauv0809/nyt-rankbot/internal/scores"
)

type client struct {
	client   *pubsub.Client
	teardown func()
}

// EventType represents the type of event/message sent via pubsub.
type EventType string

const (
	EventScoreboardRefresh EventType = "scoreboard-refresh"
)

// ScoreboardRefreshEvent is published after an accepted submission. The push
// endpoint re-derives the scoreboard and broadcasts it.
type ScoreboardRefreshEvent struct {
	EventID string      `msgpack:"event_id"`
	User    string      `msgpack:"user"`
	Game    scores.Game `msgpack:"game"`
	Score   int         `msgpack:"score"`
	Date    time.Time   `msgpack:"date"`
}
