// Package day02 solves "Red-Nosed Reports".
package day02

import (
	"slices"

	aoc "github.com/maisem/advent"
)

const Title = "Red-Nosed Reports"

// trend is the direction between two consecutive levels.
type trend int

const (
	increasing trend = iota
	decreasing
	flat
)

func trendOf(a, b int) trend {
	switch {
	case a < b:
		return increasing
	case a > b:
		return decreasing
	}
	return flat
}

// Safe reports whether levels only increase or only decrease, by 1 to 3
// at each step. Reports with fewer than two levels are safe.
func Safe(levels []int) bool {
	for i := 1; i < len(levels); i++ {
		d := aoc.AbsDiff(levels[i], levels[i-1])
		if d < 1 || d > 3 {
			return false
		}
		if i > 1 && trendOf(levels[i-2], levels[i-1]) != trendOf(levels[i-1], levels[i]) {
			return false
		}
	}
	return true
}

// Dampened reports whether levels is safe, or would be with one level
// removed.
func Dampened(levels []int) bool {
	if Safe(levels) {
		return true
	}
	for i := range levels {
		if Safe(slices.Delete(slices.Clone(levels), i, i+1)) {
			return true
		}
	}
	return false
}

func count(input string, ok func([]int) bool) int {
	n := 0
	for _, l := range aoc.Lines(input) {
		if ok(aoc.LenientFields(l)) {
			n++
		}
	}
	return n
}

func Part1(input string) int {
	return count(input, Safe)
}

func Part2(input string) int {
	return count(input, Dampened)
}
