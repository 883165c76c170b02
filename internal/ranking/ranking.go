// Package ranking derives per-day points and period totals from the full
// submission history. Rankings are always recomputed from scratch; nothing is
// cached or maintained incrementally.
package ranking

import (
	"errors"
	"sort"
	"time"

	"github.com/mauv0809/nyt-rankbot/internal/scores"
)

// Period is an aggregation window.
type Period string

const (
	PeriodDay   Period = "day"
	PeriodMonth Period = "month"
)

// ErrInvalidPeriod marks a call with an unsupported aggregation window. This
// is a programming error, not a user-facing condition.
var ErrInvalidPeriod = errors.New("invalid period: use 'day' or 'month'")

// pointMapping awards points for the top three competition ranks; every rank
// below that earns nothing.
var pointMapping = map[int]int{1: 3, 2: 2, 3: 1}

// Rank sorts results by (date, game, score) and assigns competition ranks and
// points within each (date, game) group. Ties share the rank of the first
// tied entry ("min" method), so scores [2,2,4] rank as [1,1,3].
func Rank(results []scores.GameResult) []scores.RankedResult {
	sorted := append([]scores.GameResult(nil), results...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if !sorted[i].Date.Equal(sorted[j].Date) {
			return sorted[i].Date.Before(sorted[j].Date)
		}
		if sorted[i].Game != sorted[j].Game {
			return sorted[i].Game < sorted[j].Game
		}
		return sorted[i].Score < sorted[j].Score
	})

	ranked := make([]scores.RankedResult, 0, len(sorted))
	position := 0
	rank := 0
	for i, r := range sorted {
		newGroup := i == 0 || !r.Date.Equal(sorted[i-1].Date) || r.Game != sorted[i-1].Game
		if newGroup {
			position = 1
			rank = 1
		} else {
			position++
			if r.Score != sorted[i-1].Score {
				rank = position
			}
		}
		ranked = append(ranked, scores.RankedResult{
			GameResult: r,
			Rank:       rank,
			Points:     pointMapping[rank],
		})
	}
	return ranked
}

// Aggregate sums points per user over the period containing the reference
// date and returns totals sorted descending. Users with equal totals keep
// their encounter order; no secondary tie-break is applied.
func Aggregate(ranked []scores.RankedResult, ref time.Time, period Period) ([]scores.PeriodTotal, error) {
	var inWindow func(d time.Time) bool
	switch period {
	case PeriodDay:
		refDay := scores.Day(ref)
		inWindow = func(d time.Time) bool { return scores.Day(d).Equal(refDay) }
	case PeriodMonth:
		year, month := ref.UTC().Year(), ref.UTC().Month()
		inWindow = func(d time.Time) bool {
			d = d.UTC()
			return d.Year() == year && d.Month() == month
		}
	default:
		return nil, ErrInvalidPeriod
	}

	totalsByUser := make(map[string]int)
	var order []string
	for _, r := range ranked {
		if !inWindow(r.Date) {
			continue
		}
		if _, seen := totalsByUser[r.User]; !seen {
			order = append(order, r.User)
		}
		totalsByUser[r.User] += r.Points
	}

	totals := make([]scores.PeriodTotal, 0, len(order))
	for _, user := range order {
		totals = append(totals, scores.PeriodTotal{User: user, Points: totalsByUser[user]})
	}
	sort.SliceStable(totals, func(i, j int) bool {
		return totals[i].Points > totals[j].Points
	})
	return totals, nil
}

// ForDay filters ranked results down to a single calendar date, preserving
// the post-sort order from Rank. The scoreboard shows these raw scores.
func ForDay(ranked []scores.RankedResult, day time.Time) []scores.RankedResult {
	target := scores.Day(day)
	var out []scores.RankedResult
	for _, r := range ranked {
		if scores.Day(r.Date).Equal(target) {
			out = append(out, r)
		}
	}
	return out
}
