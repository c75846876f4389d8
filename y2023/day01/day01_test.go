package day01

import (
	_ "embed"
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	//go:embed testdata/example_1.txt
	example1 string
	//go:embed testdata/example_2.txt
	example2 string
)

func TestExamples(t *testing.T) {
	assert.Equal(t, 142, Part1(example1))
	assert.Equal(t, 281, Part2(example2))
	assert.Equal(t, 142, Part2(example1))
}

func TestSpelledDigits(t *testing.T) {
	tests := []struct {
		line string
		want []int
	}{
		{"two1nine", []int{2, 1, 9}},
		{"eightwothree", []int{8, 2, 3}},
		{"zoneight234", []int{1, 8, 2, 3, 4}},
		{"7pqrstsixteen", []int{7, 6}},
		{"nothing", nil},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SpelledDigits(tt.line, Spelled), "SpelledDigits(%q)", tt.line)
	}
}

func TestNoDigits(t *testing.T) {
	if got := Part1("abc\ndef\n"); got != 0 {
		t.Errorf("Part1 = %v, want 0", got)
	}
	if got := Part1("x5y\n"); got != 55 {
		t.Errorf("Part1 = %v, want 55", got)
	}
}
