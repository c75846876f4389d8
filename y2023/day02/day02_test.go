package day02

import (
	_ "embed"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

//go:embed testdata/example.txt
var example string

func TestExample(t *testing.T) {
	assert.Equal(t, 8, Part1(example))
	assert.Equal(t, 2286, Part2(example))
}

func TestParseGame(t *testing.T) {
	tests := []struct {
		line string
		want Game
	}{
		{
			line: "Game 1: 3 blue, 4 red; 1 red, 2 green, 6 blue; 2 green",
			want: Game{ID: 1, Draws: []Cubes{
				{Red: 4, Blue: 3},
				{Red: 1, Green: 2, Blue: 6},
				{Green: 2},
			}},
		},
		{
			line: "Game 42: 7 purple, x red",
			want: Game{ID: 42, Draws: []Cubes{{}}},
		},
		{
			line: "Game -3: -5 red, +2 blue",
			want: Game{ID: 1, Draws: []Cubes{{Blue: 2}}},
		},
		{
			line: "garbage",
			want: Game{ID: 1, Draws: []Cubes{{}}},
		},
	}
	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, ParseGame(tt.line)); diff != "" {
			t.Errorf("ParseGame(%q) mismatch (-want +got):\n%s", tt.line, diff)
		}
	}
}

func TestCustomBag(t *testing.T) {
	// Only game 2's draws all fit in a bag of 1 red, 3 green, 4 blue.
	assert.Equal(t, 2, PossibleIDSum(example, Cubes{Red: 1, Green: 3, Blue: 4}))
	assert.Equal(t, 15, PossibleIDSum(example, Cubes{Red: 100, Green: 100, Blue: 100}))
}

func TestFewestCountsAtLeastOne(t *testing.T) {
	g := ParseGame("Game 9: 2 red")
	assert.Equal(t, Cubes{Red: 2, Green: 1, Blue: 1}, g.Fewest())
	assert.Equal(t, 2, g.Fewest().Power())
}
