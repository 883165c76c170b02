package slack

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/nyt-rankbot/internal/metrics"
	"github.com/mauv0809/nyt-rankbot/internal/notifier"
	"github.com/mauv0809/nyt-rankbot/internal/scores"
	"github.com/slack-go/slack"
)

// slackClient is an interface that contains the methods from the slack.Client that we use.
// This allows for easy mocking in tests.
type slackClient interface {
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
	GetUserInfoContext(ctx context.Context, user string) (*slack.User, error)
}

var _ notifier.Notifier = &Notifier{}

// Notifier handles sending notifications to Slack.
type Notifier struct {
	api       slackClient
	channelID string
	metrics   metrics.Metrics
}

// NewNotifier creates a new Notifier.
func NewNotifier(token, channelID string, metrics metrics.Metrics) *Notifier {
	api := slack.New(token)
	return &Notifier{
		api:       api,
		channelID: channelID,
		metrics:   metrics,
	}
}

// NewNotifierWithAPI creates a new Notifier with a specific slack.Client instance.
// Useful for tests that need to intercept API calls.
func NewNotifierWithAPI(api slackClient, channelID string, metrics metrics.Metrics) *Notifier {
	return &Notifier{
		api:       api,
		channelID: channelID,
		metrics:   metrics,
	}
}

func (s *Notifier) sendMessage(message slack.Message, dryRun bool) (string, string, error) {
	if dryRun {
		jsonMsg, _ := json.MarshalIndent(message, "", "  ")
		log.Info("[Dry Run] Would send Slack message", "channel", s.channelID, "message", string(jsonMsg))
		return "dry-run-ts", "dry-run-thread-ts", nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	channelID, timestamp, err := s.api.PostMessageContext(
		ctx,
		s.channelID,
		slack.MsgOptionBlocks(message.Blocks.BlockSet...),
		slack.MsgOptionAsUser(true),
	)

	if err != nil {
		s.metrics.IncSlackNotifFailed()
		log.Error("Failed to send Slack message", "error", err, "channel", channelID)
		return "", "", fmt.Errorf("failed to post message: %w", err)
	}

	s.metrics.IncSlackNotifSent()
	log.Info("Successfully sent Slack message", "channel", channelID, "timestamp", timestamp)
	return channelID, timestamp, nil
}

// Implement the Notifier interface
func (s *Notifier) SendScoreboard(today []scores.RankedResult, daily, monthly []scores.PeriodTotal, dryRun bool) error {
	msg := s.formatScoreboard(today, daily, monthly)
	_, _, err := s.sendMessage(msg, dryRun)
	return err
}

func (s *Notifier) SendSubmissionAccepted(user string, game scores.Game, score int, dryRun bool) error {
	msg := s.formatSubmissionAccepted(user, game, score)
	_, _, err := s.sendMessage(msg, dryRun)
	return err
}

func (s *Notifier) SendDuplicateRejection(user string, game scores.Game, dryRun bool) error {
	msg := s.formatTextMessage(fmt.Sprintf("%s has already submitted a score for '%s' today 🤨!", user, game))
	_, _, err := s.sendMessage(msg, dryRun)
	return err
}

func (s *Notifier) SendClearConfirmation(date time.Time, user string, deleted int64, dryRun bool) error {
	msg := s.formatTextMessage(clearConfirmationText(date, user, deleted))
	_, _, err := s.sendMessage(msg, dryRun)
	return err
}

func (s *Notifier) SendManualAddConfirmation(user string, game scores.Game, score int, dryRun bool) error {
	msg := s.formatTextMessage(fmt.Sprintf("Score added for %s in %s: %d", user, game, score))
	_, _, err := s.sendMessage(msg, dryRun)
	return err
}

func (s *Notifier) FormatScoreboardResponse(today []scores.RankedResult, daily, monthly []scores.PeriodTotal) (any, error) {
	return s.formatScoreboard(today, daily, monthly), nil
}

func (s *Notifier) FormatTextResponse(text string) (any, error) {
	return s.formatTextMessage(text), nil
}

// ResolveUserName looks up the user's profile and prefers their first name,
// so scoreboards read naturally instead of showing raw member IDs.
func (s *Notifier) ResolveUserName(userID string) string {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	user, err := s.api.GetUserInfoContext(ctx, userID)
	if err != nil {
		log.Warn("Failed to look up Slack user, falling back to ID", "user", userID, "error", err)
		return userID
	}
	if user.Profile.FirstName != "" {
		return user.Profile.FirstName
	}
	if user.RealName != "" {
		return user.RealName
	}
	return userID
}
