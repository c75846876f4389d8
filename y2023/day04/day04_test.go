package day04

import (
	_ "embed"
	"testing"

	"github.com/stretchr/testify/assert"
)

//go:embed testdata/example.txt
var example string

func TestExample(t *testing.T) {
	assert.Equal(t, 13, Part1(example))
	assert.Equal(t, 30, Part2(example))
}

func TestParseCard(t *testing.T) {
	tests := []struct {
		line string
		want Card
	}{
		{"Card 1: 41 48 83 86 17 | 83 86  6 31 17  9 48 53", Card{ID: 1, Matches: 4}},
		{"Card   3:  1 21 53 59 44 | 69 82 63 72 16 21 14  1", Card{ID: 3, Matches: 2}},
		{"Card 7: 1 2 3", Card{ID: 7}},
		{"", Card{ID: 1}},
	}
	for _, tt := range tests {
		if got := ParseCard(tt.line); got != tt.want {
			t.Errorf("ParseCard(%q) = %+v, want %+v", tt.line, got, tt.want)
		}
	}
}

func TestPoints(t *testing.T) {
	for matches, want := range []int{0, 1, 2, 4, 8} {
		if got := (Card{Matches: matches}).Points(); got != want {
			t.Errorf("Points(%d matches) = %v, want %v", matches, got, want)
		}
	}
}

func TestCopiesWithOddIDs(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		// The second card is queued as card 0, which is not a position.
		{"zero-id", "Card 1: 1 | 1\nCard 0: 1 2 | 1 2\n", 3},
		{"duplicate-id", "Card 1: 1 | 1\nCard 1: 1 | 1\n", 4},
		{"unreadable-id", "Card 1: 1 | 1\nCard x: 1 | 1\nCard 3: 5 | 6\n", 7},
		{"negative-id", "Card 1: 1 | 1\nCard -1: 1 | 1\n", 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Part2(tt.input))
		})
	}
}

func TestParseCardNegative(t *testing.T) {
	// Negative numbers are malformed and read as 0, so both owned
	// numbers match the -2.
	assert.Equal(t, Card{ID: 1, Matches: 2}, ParseCard("Card -4: -2 3 | -2 0"))
}

func TestCopiesStopAtLastCard(t *testing.T) {
	cards := []Card{{ID: 1, Matches: 5}, {ID: 2}}
	assert.Equal(t, 3, CountWithCopies(cards))
}
