// Package report renders ranking output into the plain-text scoreboard. How
// the text is framed for a given transport is up to the notifier.
package report

import (
	"fmt"
	"strings"

	"github.com/mauv0809/nyt-rankbot/internal/scores"
)

const (
	noPointsToday     = "No points scored for today! 😔"
	noPointsThisMonth = "No points scored for this month! 😢"
)

// Format builds the full scoreboard as a single text blob.
func Format(today []scores.RankedResult, dailyTotals, monthlyTotals []scores.PeriodTotal) string {
	return strings.Join(Blocks(today, dailyTotals, monthlyTotals), "\n\n")
}

// Blocks returns the scoreboard as ordered text blocks: one per game present
// in today's results showing raw scores in ranked order, then daily totals,
// then monthly totals. Empty totals are replaced by a fixed no-points
// message.
func Blocks(today []scores.RankedResult, dailyTotals, monthlyTotals []scores.PeriodTotal) []string {
	var blocks []string

	for _, game := range gamesInOrder(today) {
		var b strings.Builder
		fmt.Fprintf(&b, "🔢 %s points 🔢", game)
		for _, r := range today {
			if r.Game == game {
				fmt.Fprintf(&b, "\n%s %d", r.User, r.Score)
			}
		}
		blocks = append(blocks, b.String())
	}

	if len(dailyTotals) == 0 {
		blocks = append(blocks, noPointsToday)
	} else {
		blocks = append(blocks, "👑 Daily totals 👑"+formatTotals(dailyTotals))
	}

	if len(monthlyTotals) == 0 {
		blocks = append(blocks, noPointsThisMonth)
	} else {
		blocks = append(blocks, "📅 Monthly totals 📅"+formatTotals(monthlyTotals))
	}

	return blocks
}

func formatTotals(totals []scores.PeriodTotal) string {
	var b strings.Builder
	for _, t := range totals {
		fmt.Fprintf(&b, "\n%s %d", t.User, t.Points)
	}
	return b.String()
}

// gamesInOrder returns the distinct games in encounter order.
func gamesInOrder(today []scores.RankedResult) []scores.Game {
	var games []scores.Game
	seen := make(map[scores.Game]bool)
	for _, r := range today {
		if !seen[r.Game] {
			seen[r.Game] = true
			games = append(games, r.Game)
		}
	}
	return games
}
