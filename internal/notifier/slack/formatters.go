package slack

import (
	"fmt"
	"time"

	"github.com/mauv0809/nyt-rankbot/internal/report"
	"github.com/mauv0809/nyt-rankbot/internal/scores"
	"github.com/slack-go/slack"
)

// formatScoreboard creates the Slack scoreboard message using Block Kit. The
// block order mirrors the text report: per-game scores, daily totals,
// monthly totals.
func (s *Notifier) formatScoreboard(today []scores.RankedResult, daily, monthly []scores.PeriodTotal) slack.Message {
	blocks := make([]slack.Block, 0)

	headerText := slack.NewTextBlockObject("plain_text", "🏆 Puzzle scoreboard 🏆", true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	for _, block := range report.Blocks(today, daily, monthly) {
		blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", block, true, false), nil, nil))
	}

	return slack.NewBlockMessage(blocks...)
}

// formatSubmissionAccepted creates the broadcast for a freshly detected score.
func (s *Notifier) formatSubmissionAccepted(user string, game scores.Game, score int) slack.Message {
	blocks := make([]slack.Block, 0)

	text := fmt.Sprintf("%s's score of '%d' detected for '%s'!", user, score, game)
	blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", text, true, false), nil, nil))

	return slack.NewBlockMessage(blocks...)
}

// formatTextMessage wraps a plain line of text in a single section block.
func (s *Notifier) formatTextMessage(text string) slack.Message {
	section := slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", text, true, false), nil, nil)
	return slack.NewBlockMessage(section)
}

func clearConfirmationText(date time.Time, user string, deleted int64) string {
	day := date.UTC().Format("2006-01-02")
	if user != "" {
		return fmt.Sprintf("Scores cleared for %s and user %s (%d removed) 🗑️!", day, user, deleted)
	}
	return fmt.Sprintf("Scores cleared for %s (%d removed) 🗑️!", day, deleted)
}
