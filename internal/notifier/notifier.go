package notifier

import (
	"time"

	"github.com/mauv0809/nyt-rankbot/internal/scores"
)

// Notifier defines a high-level interface for sending notifications about business events.
// This decouples the rest of the application from the specific notification provider (e.g., Slack).
type Notifier interface {
	// For the scoreboard broadcast after each accepted submission and on demand
	SendScoreboard(today []scores.RankedResult, daily, monthly []scores.PeriodTotal, dryRun bool) error
	SendSubmissionAccepted(user string, game scores.Game, score int, dryRun bool) error
	// For rejected duplicates, naming the user and game
	SendDuplicateRejection(user string, game scores.Game, dryRun bool) error
	// For administrative commands
	SendClearConfirmation(date time.Time, user string, deleted int64, dryRun bool) error
	SendManualAddConfirmation(user string, game scores.Game, score int, dryRun bool) error

	// For formatting responses for slash commands
	FormatScoreboardResponse(today []scores.RankedResult, daily, monthly []scores.PeriodTotal) (any, error)
	FormatTextResponse(text string) (any, error)

	// ResolveUserName maps a provider user ID to a display name. It falls
	// back to the raw ID when the lookup fails so ingestion never blocks on it.
	ResolveUserName(userID string) string
}
