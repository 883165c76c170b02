// Package ingest enforces at-most-one submission per (user, game, day) and
// drives the notifications that follow a submission.
package ingest

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/mauv0809/nyt-rankbot/internal/metrics"
	"github.com/mauv0809/nyt-rankbot/internal/parser"
	"github.com/mauv0809/nyt-rankbot/internal/pubsub"
	"github.com/mauv0809/nyt-rankbot/internal/ranking"
	"github.com/mauv0809/nyt-rankbot/internal/scores"
)

// New creates a new ingestion Service.
func New(store Store, notifier Notifier, metricsSvc metrics.Metrics, metricsStore metrics.MetricsStore, pubsub pubsub.PubSubClient) *Service {
	return &Service{
		store:        store,
		notifier:     notifier,
		metrics:      metricsSvc,
		metricsStore: metricsStore,
		pubsub:       pubsub,
	}
}

// HandleMessage parses one channel message and, if it is a game result,
// submits it for today. Unrecognized text is counted and silently ignored.
// A duplicate is answered with a rejection message and is not an error for
// the caller.
func (s *Service) HandleMessage(user, text string, dryRun bool) error {
	startTime := time.Now()
	defer func() {
		s.metrics.ObserveIngestDuration(time.Since(startTime).Seconds())
	}()

	res := parser.Parse(text)
	if res.Kind == parser.KindUnrecognized {
		s.metrics.IncSubmissionsUnmatched()
		s.metricsStore.Increment(counterUnmatched)
		log.Debug("Message matched no game pattern", "user", user)
		return nil
	}

	log.Info("Detected game result", "user", user, "kind", res.Kind, "game", res.Game, "score", res.Score)
	err := s.Submit(user, res.Game, res.Score, scores.Day(time.Now()), dryRun)
	if errors.Is(err, scores.ErrDuplicateSubmission) {
		return s.notifier.SendDuplicateRejection(user, res.Game, dryRun)
	}
	return err
}

// Submit stores one result. The duplicate check happens inside the store as
// a single atomic insert. On acceptance the detection broadcast goes out and
// a scoreboard-refresh event is published.
func (s *Service) Submit(user string, game scores.Game, score int, date time.Time, dryRun bool) error {
	result := scores.GameResult{User: user, Game: game, Score: score, Date: scores.Day(date)}
	if err := s.store.Insert(result); err != nil {
		if errors.Is(err, scores.ErrDuplicateSubmission) {
			s.metrics.IncSubmissionsDuplicate(string(game))
			s.metricsStore.Increment(counterDuplicate)
			log.Info("Rejected duplicate submission", "user", user, "game", game, "date", result.Date)
		}
		return err
	}

	s.metrics.IncSubmissionsAccepted(string(game))
	s.metricsStore.Increment(counterAccepted)

	if err := s.notifier.SendSubmissionAccepted(user, game, score, dryRun); err != nil {
		log.Error("Failed to send acceptance broadcast", "error", err, "user", user)
	}

	event := pubsub.ScoreboardRefreshEvent{
		EventID: uuid.NewString(),
		User:    user,
		Game:    game,
		Score:   score,
		Date:    result.Date,
	}
	if err := s.pubsub.SendMessage(pubsub.EventScoreboardRefresh, event); err != nil {
		// The submission is stored; a lost refresh event only delays the
		// next scoreboard broadcast.
		log.Error("Failed to publish scoreboard refresh", "error", err, "eventID", event.EventID)
	}
	return nil
}

// ManualAdd bypasses parsing and inserts a result directly, still subject to
// the same uniqueness rule. The score is stored verbatim.
func (s *Service) ManualAdd(user, gameName string, score int, date time.Time, dryRun bool) error {
	game, err := scores.ParseGame(gameName)
	if err != nil {
		return err
	}

	result := scores.GameResult{User: user, Game: game, Score: score, Date: scores.Day(date)}
	if err := s.store.Insert(result); err != nil {
		if errors.Is(err, scores.ErrDuplicateSubmission) {
			s.metrics.IncSubmissionsDuplicate(string(game))
			s.metricsStore.Increment(counterDuplicate)
		}
		return err
	}

	s.metrics.IncSubmissionsAccepted(string(game))
	s.metricsStore.Increment(counterAccepted)
	return s.notifier.SendManualAddConfirmation(user, game, score, dryRun)
}

// Clear deletes all results for a date, optionally scoped to one user, and
// confirms how many rows went away.
func (s *Service) Clear(date time.Time, user string, dryRun bool) (int64, error) {
	deleted, err := s.store.Clear(scores.Day(date), user)
	if err != nil {
		return 0, fmt.Errorf("failed to clear scores: %w", err)
	}
	log.Info("Cleared scores", "date", scores.Day(date), "user", user, "deleted", deleted)
	return deleted, s.notifier.SendClearConfirmation(scores.Day(date), user, deleted, dryRun)
}

// Scoreboard derives the ranked results for the reference date plus the
// daily and monthly totals, always from the full stored history.
func (s *Service) Scoreboard(ref time.Time) ([]scores.RankedResult, []scores.PeriodTotal, []scores.PeriodTotal, error) {
	all, err := s.store.GetAll()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load results: %w", err)
	}

	ranked := ranking.Rank(all)
	today := ranking.ForDay(ranked, ref)
	daily, err := ranking.Aggregate(ranked, ref, ranking.PeriodDay)
	if err != nil {
		return nil, nil, nil, err
	}
	monthly, err := ranking.Aggregate(ranked, ref, ranking.PeriodMonth)
	if err != nil {
		return nil, nil, nil, err
	}
	return today, daily, monthly, nil
}

// SendScoreboard posts the scoreboard for the reference date to the channel.
func (s *Service) SendScoreboard(ref time.Time, dryRun bool) error {
	today, daily, monthly, err := s.Scoreboard(ref)
	if err != nil {
		return err
	}
	return s.notifier.SendScoreboard(today, daily, monthly, dryRun)
}
