package ingest_test

import (
	"errors"
	"testing"
	"time"

	"github.com/mauv0809/nyt-rankbot/internal/ingest"
	"github.com/mauv0809/nyt-rankbot/internal/metrics"
	"github.com/mauv0809/nyt-rankbot/internal/notifier"
	"github.com/mauv0809/nyt-rankbot/internal/pubsub"
	"github.com/mauv0809/nyt-rankbot/internal/scores"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockMetricsStore is a no-op persistent counter store for tests.
type mockMetricsStore struct {
	counts map[string]int
}

func newMockMetricsStore() *mockMetricsStore {
	return &mockMetricsStore{counts: make(map[string]int)}
}

func (m *mockMetricsStore) Increment(key string) { m.counts[key]++ }

func (m *mockMetricsStore) GetAll() (map[string]int, error) { return m.counts, nil }

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func setup() (*ingest.Service, *scores.Mock, *notifier.Mock, *metrics.Mock, *pubsub.MockPubSubClient, *mockMetricsStore) {
	store := scores.NewMock()
	notif := notifier.NewMock()
	metricsSvc := metrics.NewMock()
	metricsStore := newMockMetricsStore()
	ps := pubsub.NewMock()
	svc := ingest.New(store, notif, metricsSvc, metricsStore, ps)
	return svc, store, notif, metricsSvc, ps, metricsStore
}

func TestSubmit_Accepted(t *testing.T) {
	svc, store, notif, metricsSvc, ps, _ := setup()

	err := svc.Submit("anna", scores.GameWordle, 4, day(2024, 3, 1), false)
	require.NoError(t, err)

	require.Len(t, store.InsertCalls, 1)
	assert.Equal(t, "anna", store.InsertCalls[0].User)
	assert.Equal(t, 4, store.InsertCalls[0].Score)

	require.Len(t, notif.SendSubmissionAcceptedCalls, 1)
	assert.Equal(t, 1, metricsSvc.SubmissionsAccepted("Wordle"))

	require.Len(t, ps.SendMessageCalls, 1)
	assert.Equal(t, string(pubsub.EventScoreboardRefresh), ps.SendMessageCalls[0].Topic)
	event, ok := ps.SendMessageCalls[0].Data.(pubsub.ScoreboardRefreshEvent)
	require.True(t, ok)
	assert.NotEmpty(t, event.EventID)
	assert.Equal(t, "anna", event.User)
}

func TestSubmit_Duplicate(t *testing.T) {
	svc, store, notif, metricsSvc, ps, _ := setup()
	store.InsertFunc = func(result scores.GameResult) error {
		return scores.ErrDuplicateSubmission
	}

	err := svc.Submit("anna", scores.GameWordle, 4, day(2024, 3, 1), false)
	require.Error(t, err)
	assert.True(t, errors.Is(err, scores.ErrDuplicateSubmission))

	assert.Empty(t, notif.SendSubmissionAcceptedCalls)
	assert.Empty(t, ps.SendMessageCalls, "no refresh event for a rejected submission")
	assert.Equal(t, 1, metricsSvc.SubmissionsDuplicate("Wordle"))
}

func TestHandleMessage_DuplicateSendsRejection(t *testing.T) {
	svc, store, notif, _, _, _ := setup()
	store.InsertFunc = func(result scores.GameResult) error {
		return scores.ErrDuplicateSubmission
	}

	err := svc.HandleMessage("anna", "Wordle 900 3/6", false)
	require.NoError(t, err, "a duplicate is handled, not surfaced as an error")

	require.Len(t, notif.SendDuplicateRejectionCalls, 1)
	assert.Equal(t, "anna", notif.SendDuplicateRejectionCalls[0].User)
	assert.Equal(t, scores.GameWordle, notif.SendDuplicateRejectionCalls[0].Game)
}

func TestHandleMessage_UnmatchedIsSilent(t *testing.T) {
	svc, store, notif, metricsSvc, _, counters := setup()

	err := svc.HandleMessage("anna", "lovely weather today", false)
	require.NoError(t, err)

	assert.Empty(t, store.InsertCalls)
	assert.Empty(t, notif.SendDuplicateRejectionCalls)
	assert.Equal(t, 1, metricsSvc.SubmissionsUnmatched())
	assert.Equal(t, 1, counters.counts["submissions_unmatched"])
}

func TestHandleMessage_StoreErrorPropagates(t *testing.T) {
	svc, store, _, _, _, _ := setup()
	storeDown := errors.New("store unavailable")
	store.InsertFunc = func(result scores.GameResult) error {
		return storeDown
	}

	err := svc.HandleMessage("anna", "Wordle 900 3/6", false)
	require.Error(t, err)
	assert.True(t, errors.Is(err, storeDown), "store failures pass through uninterpreted")
}

func TestManualAdd(t *testing.T) {
	svc, store, notif, _, _, _ := setup()

	err := svc.ManualAdd("anna", "Mini", 135, day(2024, 3, 1), false)
	require.NoError(t, err)

	require.Len(t, store.InsertCalls, 1)
	assert.Equal(t, scores.GameMini, store.InsertCalls[0].Game)
	require.Len(t, notif.SendManualAddConfirmationCalls, 1)
}

func TestManualAdd_UnknownGame(t *testing.T) {
	svc, store, _, _, _, _ := setup()

	err := svc.ManualAdd("anna", "Sudoku", 3, day(2024, 3, 1), false)
	require.Error(t, err)
	assert.True(t, errors.Is(err, scores.ErrUnknownGame))
	assert.Empty(t, store.InsertCalls)
}

func TestClear(t *testing.T) {
	svc, store, notif, _, _, _ := setup()
	store.ClearFunc = func(date time.Time, user string) (int64, error) {
		return 3, nil
	}

	deleted, err := svc.Clear(day(2024, 3, 1), "", false)
	require.NoError(t, err)
	assert.Equal(t, int64(3), deleted)

	require.Len(t, store.ClearCalls, 1)
	require.Len(t, notif.SendClearConfirmationCalls, 1)
	assert.Equal(t, int64(3), notif.SendClearConfirmationCalls[0].Deleted)
}

func TestScoreboard(t *testing.T) {
	svc, store, _, _, _, _ := setup()
	d := day(2024, 3, 10)
	store.Results = []scores.GameResult{
		{User: "anna", Game: scores.GameWordle, Score: 3, Date: d},
		{User: "ben", Game: scores.GameWordle, Score: 4, Date: d},
		{User: "cleo", Game: scores.GameWordle, Score: 2, Date: day(2024, 3, 9)},
		{User: "dora", Game: scores.GameWordle, Score: 5, Date: day(2024, 2, 28)},
	}

	today, daily, monthly, err := svc.Scoreboard(d)
	require.NoError(t, err)

	require.Len(t, today, 2, "only the reference date's results are shown")
	assert.Equal(t, "anna", today[0].User, "ranked output is in score order")

	require.Len(t, daily, 2)
	assert.Equal(t, scores.PeriodTotal{User: "anna", Points: 3}, daily[0])

	// cleo's March 9 points count toward the month; dora's February ones do not.
	users := make(map[string]bool)
	for _, total := range monthly {
		users[total.User] = true
	}
	assert.True(t, users["cleo"])
	assert.False(t, users["dora"])
}

func TestSendScoreboard(t *testing.T) {
	svc, store, notif, _, _, _ := setup()
	store.Results = []scores.GameResult{
		{User: "anna", Game: scores.GameMini, Score: 42, Date: day(2024, 3, 10)},
	}

	err := svc.SendScoreboard(day(2024, 3, 10), false)
	require.NoError(t, err)
	require.Len(t, notif.SendScoreboardCalls, 1)
	assert.Len(t, notif.SendScoreboardCalls[0].Today, 1)
}
