// Package day01 solves "Historian Hysteria": reconcile two lists of
// location ids.
package day01

import (
	"slices"
	"strings"

	aoc "github.com/maisem/advent"
)

const Title = "Historian Hysteria"

// Parse returns the left and right columns. Every line contributes to
// both lists; missing or malformed values are 0.
func Parse(input string) (left, right []int) {
	for _, l := range aoc.Lines(input) {
		f := strings.Fields(l)
		left = append(left, aoc.Lenient(aoc.Field(f, 0)))
		right = append(right, aoc.Lenient(aoc.Field(f, 1)))
	}
	return left, right
}

// Distance pairs the smallest ids of each list, then the next smallest
// and so on, and sums how far apart the pairs are.
func Distance(left, right []int) int {
	left, right = slices.Clone(left), slices.Clone(right)
	slices.Sort(left)
	slices.Sort(right)
	sum := 0
	for i := range min(len(left), len(right)) {
		sum += aoc.AbsDiff(left[i], right[i])
	}
	return sum
}

// Similarity sums each left id times the number of times it appears in
// right.
func Similarity(left, right []int) int {
	seen := map[int]int{}
	for _, v := range right {
		seen[v]++
	}
	sum := 0
	for _, v := range left {
		sum += v * seen[v]
	}
	return sum
}

func Part1(input string) int {
	return Distance(Parse(input))
}

func Part2(input string) int {
	return Similarity(Parse(input))
}
