package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitDB_CreatesTables(t *testing.T) {

	db, teardown, err := InitDB(":memory:", "", "", "../../migrations")
	require.NoError(t, err, "InitDB should not return an error")
	defer teardown()

	// Check if the 'game_results' table was created
	var resultsTableName string
	err = db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name='game_results'").Scan(&resultsTableName)
	require.NoError(t, err, "Querying for game_results table should not produce an error")
	assert.Equal(t, "game_results", resultsTableName, "The 'game_results' table should be created")

	// Check if the 'metrics' table was created
	var metricsTableName string
	err = db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name='metrics'").Scan(&metricsTableName)
	require.NoError(t, err, "Querying for metrics table should not produce an error")
	assert.Equal(t, "metrics", metricsTableName, "The 'metrics' table should be created")
}

func TestInitDB_UniqueConstraint(t *testing.T) {
	db, teardown, err := InitDB(":memory:", "", "", "../../migrations")
	require.NoError(t, err)
	defer teardown()

	_, err = db.Exec(`INSERT INTO game_results (user, game, score, date) VALUES ('anna', 'Wordle', 4, '2024-03-01')`)
	require.NoError(t, err)

	_, err = db.Exec(`INSERT INTO game_results (user, game, score, date) VALUES ('anna', 'Wordle', 2, '2024-03-01')`)
	assert.Error(t, err, "A second insert for the same (user, game, date) should violate the unique constraint")
}
