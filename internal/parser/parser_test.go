package parser_test

import (
	"testing"

	"github.com/mauv0809/nyt-rankbot/internal/parser"
	"github.com/mauv0809/nyt-rankbot/internal/scores"
	"github.com/stretchr/testify/assert"
)

func TestParse_Wordle(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		score int
	}{
		{
			name:  "solved in three",
			text:  "Wordle 1,045 3/6\n\n⬛🟨⬛⬛⬛\n🟩🟩⬛🟩🟩\n🟩🟩🟩🟩🟩",
			score: 3,
		},
		{
			name:  "solved on the last guess",
			text:  "Wordle 901 6/6\n\n⬛⬛⬛⬛⬛\n⬛🟨⬛⬛⬛\n⬛🟨🟨⬛⬛\n🟨🟨⬛⬛⬛\n🟩🟩🟩⬛🟩\n🟩🟩🟩🟩🟩",
			score: 6,
		},
		{
			name:  "failure marker maps to seven",
			text:  "Wordle 900 X/6\n\n🟨⬛⬛⬛⬛\n⬛🟩⬛⬛⬛",
			score: 7,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := parser.Parse(tt.text)
			assert.Equal(t, parser.KindWordle, res.Kind)
			assert.Equal(t, scores.GameWordle, res.Game)
			assert.Equal(t, tt.score, res.Score)
		})
	}
}

func TestParse_Wordle_CommaFormattedPuzzleNumber(t *testing.T) {
	// NYT started formatting puzzle numbers with thousands separators; the
	// digits before the separator still satisfy the header shape.
	res := parser.Parse("Wordle 1,234 4/6")
	assert.Equal(t, parser.KindWordle, res.Kind)
	assert.Equal(t, 4, res.Score)
}

func TestParse_Connections_Solved(t *testing.T) {
	text := "Connections \nPuzzle #204\n🟨🟨🟨🟨\n🟩🟩🟩🟩\n🟦🟦🟦🟦\n🟪🟪🟪🟪"
	res := parser.Parse(text)
	assert.Equal(t, parser.KindConnections, res.Kind)
	assert.Equal(t, scores.GameConnections, res.Game)
	assert.Equal(t, 4, res.Score, "one point per guess line when solved")
}

func TestParse_Connections_SolvedWithMistakes(t *testing.T) {
	text := "Connections \nPuzzle #204\n🟨🟨🟩🟨\n🟨🟨🟨🟨\n🟩🟩🟩🟩\n🟦🟦🟦🟦\n🟪🟪🟪🟪"
	res := parser.Parse(text)
	assert.Equal(t, parser.KindConnections, res.Kind)
	assert.Equal(t, 5, res.Score, "wrong guesses count as attempts as long as the final line is uniform")
}

func TestParse_Connections_Unsolved(t *testing.T) {
	// A mixed final line means the puzzle was never completed; the score is
	// the fixed penalty regardless of how many guesses were made.
	text := "Connections \nPuzzle #204\n🟨🟨🟨🟨\n🟩🟩🟩🟩\n🟦🟦🟪🟦"
	res := parser.Parse(text)
	assert.Equal(t, parser.KindConnections, res.Kind)
	assert.Equal(t, 8, res.Score)
}

func TestParse_Connections_InterveningLine(t *testing.T) {
	text := "Connections\nsome shared text\nPuzzle #310\n🟪🟪🟪🟪\n🟦🟦🟦🟦\n🟩🟩🟩🟩\n🟨🟨🟨🟨"
	res := parser.Parse(text)
	assert.Equal(t, parser.KindConnections, res.Kind)
	assert.Equal(t, 4, res.Score)
}

func TestParse_MiniLink(t *testing.T) {
	text := "I finished it! https://www.nytimes.com/badges/games/mini.html?d=2024-03-01&t=42&c=abc"
	res := parser.Parse(text)
	assert.Equal(t, parser.KindMiniLink, res.Kind)
	assert.Equal(t, scores.GameMini, res.Game)
	assert.Equal(t, 42, res.Score)
}

func TestParse_MiniApp(t *testing.T) {
	text := "I solved the 3/1/2024 New York Times Mini Crossword in 2:15!"
	res := parser.Parse(text)
	assert.Equal(t, parser.KindMiniApp, res.Kind)
	assert.Equal(t, scores.GameMini, res.Game)
	assert.Equal(t, 135, res.Score, "minutes and seconds convert to total seconds")
}

func TestParse_Unrecognized(t *testing.T) {
	for _, text := range []string{
		"good morning everyone",
		"Wordle was hard today",
		"Wordle 900 7/6",
		"",
	} {
		res := parser.Parse(text)
		assert.Equal(t, parser.KindUnrecognized, res.Kind, "text %q should not match", text)
	}
}

func TestParse_MatcherOrder(t *testing.T) {
	// A message mentioning several games resolves to the first matcher in
	// the documented order, not to whichever pattern happens to match last.
	text := "Connections \nPuzzle #204\n🟨🟨🟨🟨\n🟩🟩🟩🟩\n🟦🟦🟦🟦\n🟪🟪🟪🟪\nalso Wordle 900 3/6"
	res := parser.Parse(text)
	assert.Equal(t, parser.KindConnections, res.Kind)
}
