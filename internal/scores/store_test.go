package scores_test

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/mauv0809/nyt-rankbot/internal/database"
	"github.com/mauv0809/nyt-rankbot/internal/scores"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestDB creates a temporary in-memory SQLite database for testing.
func setupTestDB(t *testing.T) (scores.ScoreStore, func()) {
	t.Helper()

	db, dbTeardown, err := database.InitDB(":memory:", "", "", "../../migrations")
	require.NoError(t, err)

	store := scores.New(db)
	return store, dbTeardown
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestInsertAndGetAll(t *testing.T) {
	store, teardown := setupTestDB(t)
	defer teardown()

	err := store.Insert(scores.GameResult{User: "anna", Game: scores.GameWordle, Score: 4, Date: day(2024, 3, 1)})
	require.NoError(t, err)
	err = store.Insert(scores.GameResult{User: "ben", Game: scores.GameMini, Score: 95, Date: day(2024, 3, 1)})
	require.NoError(t, err)

	results, err := store.GetAll()
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "anna", results[0].User)
	assert.Equal(t, scores.GameWordle, results[0].Game)
	assert.Equal(t, 4, results[0].Score)
	assert.Equal(t, day(2024, 3, 1), results[0].Date)
}

func TestInsert_DuplicateRejected(t *testing.T) {
	store, teardown := setupTestDB(t)
	defer teardown()

	first := scores.GameResult{User: "anna", Game: scores.GameWordle, Score: 4, Date: day(2024, 3, 1)}
	require.NoError(t, store.Insert(first))

	// A second submission for the same key is rejected even with a
	// different score, and the stored score stays untouched.
	second := first
	second.Score = 2
	err := store.Insert(second)
	require.Error(t, err)
	assert.True(t, errors.Is(err, scores.ErrDuplicateSubmission))

	results, err := store.GetAll()
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, 4, results[0].Score)
}

func TestInsert_SameUserDifferentKey(t *testing.T) {
	store, teardown := setupTestDB(t)
	defer teardown()

	base := scores.GameResult{User: "anna", Game: scores.GameWordle, Score: 4, Date: day(2024, 3, 1)}
	require.NoError(t, store.Insert(base))

	otherGame := base
	otherGame.Game = scores.GameMini
	assert.NoError(t, store.Insert(otherGame), "same user and date but another game is a new key")

	otherDay := base
	otherDay.Date = day(2024, 3, 2)
	assert.NoError(t, store.Insert(otherDay), "same user and game but another date is a new key")
}

func TestInsert_ConcurrentDuplicate(t *testing.T) {
	store, teardown := setupTestDB(t)
	defer teardown()

	result := scores.GameResult{User: "anna", Game: scores.GameConnections, Score: 5, Date: day(2024, 3, 1)}

	const attempts = 8
	errs := make([]error, attempts)
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = store.Insert(result)
		}(i)
	}
	wg.Wait()

	accepted := 0
	for _, err := range errs {
		if err == nil {
			accepted++
		} else {
			assert.True(t, errors.Is(err, scores.ErrDuplicateSubmission))
		}
	}
	assert.Equal(t, 1, accepted, "exactly one concurrent submission should win")

	results, err := store.GetAll()
	require.NoError(t, err)
	assert.Len(t, results, 1)
}

func TestClear(t *testing.T) {
	store, teardown := setupTestDB(t)
	defer teardown()

	require.NoError(t, store.Insert(scores.GameResult{User: "anna", Game: scores.GameWordle, Score: 4, Date: day(2024, 3, 1)}))
	require.NoError(t, store.Insert(scores.GameResult{User: "ben", Game: scores.GameWordle, Score: 5, Date: day(2024, 3, 1)}))
	require.NoError(t, store.Insert(scores.GameResult{User: "anna", Game: scores.GameWordle, Score: 3, Date: day(2024, 3, 2)}))

	t.Run("scoped to user", func(t *testing.T) {
		deleted, err := store.Clear(day(2024, 3, 1), "anna")
		require.NoError(t, err)
		assert.Equal(t, int64(1), deleted)
	})

	t.Run("whole day", func(t *testing.T) {
		deleted, err := store.Clear(day(2024, 3, 1), "")
		require.NoError(t, err)
		assert.Equal(t, int64(1), deleted)

		results, err := store.GetAll()
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, day(2024, 3, 2), results[0].Date, "other days are untouched")
	})
}
