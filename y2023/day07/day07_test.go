package day07

import (
	_ "embed"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//go:embed testdata/example.txt
var example string

func TestExample(t *testing.T) {
	assert.Equal(t, 6440, Part1(example))
	assert.Equal(t, 5905, Part2(example))
}

func TestCategory(t *testing.T) {
	tests := []struct {
		cards string
		rules Rules
		want  Category
	}{
		{"AAAAA", Standard, FiveOfAKind},
		{"AA8AA", Standard, FourOfAKind},
		{"23332", Standard, FullHouse},
		{"TTT98", Standard, ThreeOfAKind},
		{"23432", Standard, TwoPair},
		{"A23A4", Standard, OnePair},
		{"23456", Standard, HighCard},
		{"KTJJT", Standard, TwoPair},
		{"KTJJT", Jokers, FourOfAKind},
		{"QJJQ2", Jokers, FourOfAKind},
		{"JJJJJ", Jokers, FiveOfAKind},
		{"2345J", Jokers, OnePair},
		{"2245J", Jokers, ThreeOfAKind},
		{"2244J", Jokers, FullHouse},
	}
	for _, tt := range tests {
		h := ParseHand(tt.cards)
		if got := h.Category(tt.rules); got != tt.want {
			t.Errorf("%s.Category(%q) = %v, want %v", tt.cards, tt.rules.Labels, got, tt.want)
		}
	}
}

func TestCategoryOrder(t *testing.T) {
	require.Less(t, HighCard, OnePair)
	require.Less(t, TwoPair, ThreeOfAKind)
	require.Less(t, FullHouse, FourOfAKind)
	require.Less(t, FourOfAKind, FiveOfAKind)
	assert.Equal(t, "full house", FullHouse.String())
}

func TestParseHand(t *testing.T) {
	assert.Equal(t, Hand{Cards: [5]byte{'3', '2', 'T', '3', 'K'}, Bid: 765}, ParseHand("32T3K 765"))
	assert.Equal(t, Hand{Bid: 9}, ParseHand("AK 9"))
	assert.Equal(t, Hand{Cards: [5]byte{'A', 'A', 'A', 'A', 'A'}}, ParseHand("AAAAAK x"))

	// A short hand is five zero cards, which is five of a kind.
	assert.Equal(t, FiveOfAKind, ParseHand("AK 9").Category(Standard))
}

func TestCompare(t *testing.T) {
	tests := []struct {
		a, b  string
		rules Rules
		want  int
	}{
		{"33332", "2AAAA", Standard, 1},
		{"77888", "77788", Standard, 1},
		{"KK677", "KTJJT", Standard, 1},
		{"KK677", "KTJJT", Jokers, -1},
		{"JKKK2", "QQQQ2", Jokers, -1},
		{"T55J5", "T55J5", Standard, 0},
	}
	for _, tt := range tests {
		got := Compare(ParseHand(tt.a), ParseHand(tt.b), tt.rules)
		if got != tt.want {
			t.Errorf("Compare(%s, %s, %q) = %v, want %v", tt.a, tt.b, tt.rules.Labels, got, tt.want)
		}
	}
}

func TestStrengthUnknownLabel(t *testing.T) {
	assert.Equal(t, Standard.Strength('A'), Standard.Strength('?'))
	assert.Equal(t, 1, Standard.Strength('2'))
	assert.Equal(t, 1, Jokers.Strength('J'))
}
