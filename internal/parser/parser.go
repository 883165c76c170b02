// Package parser turns raw NYT puzzle share messages into typed game results.
package parser

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/mauv0809/nyt-rankbot/internal/scores"
)

// Kind tags which matcher recognized a message.
type Kind string

const (
	KindWordle       Kind = "WORDLE"
	KindConnections  Kind = "CONNECTIONS"
	KindMiniLink     Kind = "MINI_LINK"
	KindMiniApp      Kind = "MINI_APP"
	KindUnrecognized Kind = "UNRECOGNIZED"
)

// Result is the outcome of parsing one message. For KindUnrecognized, Game
// and Score are zero values and the message must be ignored.
type Result struct {
	Kind  Kind
	Game  scores.Game
	Score int
}

var (
	// Header line containing "Connections", then the "Puzzle #N" line with
	// at most one intervening line.
	connectionsPattern = regexp.MustCompile(`Connections.*\n(?:.*\n)?Puzzle #[0-9]+`)
	miniLinkPattern    = regexp.MustCompile(`badges/games/mini.+t=([0-9]+)`)
	// Mini scores are sent differently when shared from the app.
	miniAppPattern = regexp.MustCompile(`I solved the .* Mini Crossword in ([0-9]+):([0-9]+)!`)
	// Puzzle numbers above 999 are shared with a thousands separator.
	wordlePattern = regexp.MustCompile(`Wordle [0-9,]+ ([1-6X])/6`)
)

// connectionColours are the four category squares, one colour per group.
const connectionColours = "🟨🟩🟦🟪"

// unsolvedConnections is the penalty score when the final guess line is not a
// single uniform colour, i.e. the puzzle was not solved.
const unsolvedConnections = 8

// unsolvedWordle is one past the maximum of six guesses, used for the X/6
// failure marker.
const unsolvedWordle = 7

// Parse tries each game matcher in a fixed order (Connections, Mini link,
// Mini app, Wordle) and returns the first match. Unmatched text yields
// KindUnrecognized.
func Parse(text string) Result {
	if connectionsPattern.MatchString(text) {
		return Result{Kind: KindConnections, Game: scores.GameConnections, Score: connectionsAttempts(text)}
	}
	if m := miniLinkPattern.FindStringSubmatch(text); m != nil {
		seconds, _ := strconv.Atoi(m[1])
		return Result{Kind: KindMiniLink, Game: scores.GameMini, Score: seconds}
	}
	if m := miniAppPattern.FindStringSubmatch(text); m != nil {
		minutes, _ := strconv.Atoi(m[1])
		seconds, _ := strconv.Atoi(m[2])
		return Result{Kind: KindMiniApp, Game: scores.GameMini, Score: minutes*60 + seconds}
	}
	if m := wordlePattern.FindStringSubmatch(text); m != nil {
		if m[1] == "X" {
			return Result{Kind: KindWordle, Game: scores.GameWordle, Score: unsolvedWordle}
		}
		attempts, _ := strconv.Atoi(m[1])
		return Result{Kind: KindWordle, Game: scores.GameWordle, Score: attempts}
	}
	return Result{Kind: KindUnrecognized}
}

// connectionsAttempts counts guess lines, one line per guess made of four
// coloured squares. A final line that mixes colours means the puzzle was not
// solved and scores the fixed penalty instead of the raw line count.
func connectionsAttempts(text string) int {
	var guessLines []string
	for _, line := range strings.Split(text, "\n") {
		if strings.ContainsAny(line, connectionColours) {
			guessLines = append(guessLines, line)
		}
	}
	if len(guessLines) == 0 {
		return 0
	}

	var finalSquares []rune
	for _, r := range guessLines[len(guessLines)-1] {
		if strings.ContainsRune(connectionColours, r) {
			finalSquares = append(finalSquares, r)
		}
	}
	for _, r := range finalSquares {
		if r != finalSquares[0] {
			return unsolvedConnections
		}
	}

	return len(guessLines)
}
