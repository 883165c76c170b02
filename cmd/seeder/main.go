package main

import (
	"database/sql"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	_ "github.com/tursodatabase/libsql-client-go/libsql"
)

// Simplified config loading for the script
func loadConfig() map[string]string {
	err := godotenv.Load()
	if err != nil {
		log.Warn("No .env file found, reading from environment variables")
	}

	config := make(map[string]string)
	required := []string{"TURSO_PRIMARY_URL", "TURSO_AUTH_TOKEN"}

	for _, key := range required {
		if value, ok := os.LookupEnv(key); ok {
			config[key] = value
		} else {
			log.Fatalf("Error: Required environment variable %s is not set.", key)
		}
	}
	return config
}

func main() {
	log.Info("Starting database seeder...")
	cfg := loadConfig()

	// Connect directly to the primary database
	dbURL := fmt.Sprintf("%s?authToken=%s", cfg["TURSO_PRIMARY_URL"], cfg["TURSO_AUTH_TOKEN"])
	db, err := sql.Open("libsql", dbURL)
	if err != nil {
		log.Fatalf("Failed to open primary database: %s", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to connect to primary database: %s", err)
	}

	log.Info("Successfully connected to the primary database.")

	users := []string{"Anna", "Ben", "Clara", "David"}
	games := []struct {
		name     string
		minScore int
		maxScore int
	}{
		{"Wordle", 1, 7},
		{"Connections", 4, 8},
		{"Mini", 20, 300},
	}

	const numDays = 90
	const batchSize = 100

	log.Info("Preparing to insert dummy results...", "days", numDays, "batch_size", batchSize)
	startTime := time.Now()

	tx, err := db.Begin()
	if err != nil {
		log.Fatalf("Failed to begin transaction: %s", err)
	}

	valueStrings := make([]string, 0, batchSize)
	valueArgs := make([]interface{}, 0, batchSize*4)
	inserted := 0

	flush := func() {
		if len(valueStrings) == 0 {
			return
		}
		stmt := fmt.Sprintf(
			"INSERT OR IGNORE INTO game_results (user, game, score, date) VALUES %s;",
			strings.Join(valueStrings, ","),
		)
		if _, err := tx.Exec(stmt, valueArgs...); err != nil {
			tx.Rollback()
			log.Fatalf("Failed to execute batch insert: %s", err)
		}
		log.Info("Inserted batch", "completed", inserted)
		valueStrings = valueStrings[:0]
		valueArgs = valueArgs[:0]
	}

	for day := 0; day < numDays; day++ {
		date := time.Now().UTC().AddDate(0, 0, -day).Format("2006-01-02")
		for _, user := range users {
			for _, game := range games {
				// Not everyone plays every game every day.
				if rand.Intn(100) < 25 {
					continue
				}
				score := game.minScore + rand.Intn(game.maxScore-game.minScore+1)
				valueStrings = append(valueStrings, "(?, ?, ?, ?)")
				valueArgs = append(valueArgs, user, game.name, score, date)
				inserted++

				if len(valueStrings) >= batchSize {
					flush()
				}
			}
		}
	}
	flush()

	if err := tx.Commit(); err != nil {
		log.Fatalf("Failed to commit transaction: %s", err)
	}

	duration := time.Since(startTime)
	log.Info("Successfully inserted all dummy results.", "inserted", inserted, "duration", duration)
}
