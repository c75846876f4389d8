package day08

import (
	_ "embed"
	"testing"

	"github.com/google/go-cmp/cmp"
	aoc "github.com/maisem/advent"
	"github.com/stretchr/testify/assert"
)

var (
	//go:embed testdata/example_1.txt
	example1 string
	//go:embed testdata/example_2.txt
	example2 string
	//go:embed testdata/example_3.txt
	example3 string
)

func TestExamples(t *testing.T) {
	tests := []struct {
		name string
		fn   func(string) int
		in   string
		want int
	}{
		{"part1/example1", Part1, example1, 2},
		{"part1/example2", Part1, example2, 6},
		{"part2/example3", Part2, example3, 6},
		{"part2/example2", Part2, example2, 6},
	}
	for _, tt := range tests {
		if got := tt.fn(tt.in); got != tt.want {
			t.Errorf("%s = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestParse(t *testing.T) {
	m := Parse(`
RL

AAA = (BBB, CCC)
BBB = (DDD, EEE)
CCC = (ZZZ, GGG)
`)
	want := Map{
		Tape: []aoc.Direction{aoc.Right, aoc.Left},
		Network: aoc.Graph[string]{Nodes: map[string][2]string{
			"AAA": {"BBB", "CCC"},
			"BBB": {"DDD", "EEE"},
			"CCC": {"ZZZ", "GGG"},
		}},
	}
	if diff := cmp.Diff(want, m); diff != "" {
		t.Errorf("Parse mismatch (-want +got):\n%s", diff)
	}
}

func TestGhostCycles(t *testing.T) {
	m := Parse(example3)
	assert.Equal(t, m.GhostSteps(), m.GhostCycles())
}

func TestMissingNodes(t *testing.T) {
	// BBB is not in the network, so the walk stops after one step.
	assert.Equal(t, 1, Part1("L\n\nAAA = (BBB, BBB)\n"))
	assert.Equal(t, 0, Part1("L\n\nQQQ = (ZZZ, ZZZ)\n"))
	assert.Equal(t, 0, Part1(""))
	assert.Equal(t, 0, Part2("LR\n\nQQQ = (ZZZ, ZZZ)\n"))
}
