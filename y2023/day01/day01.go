// Package day01 solves "Trebuchet?!": each line's calibration value is
// its first and last digit read as a two digit number.
package day01

import (
	"strings"

	aoc "github.com/maisem/advent"
)

const Title = "Trebuchet?!"

// Spelled lists the digit words in value order, "one" first.
var Spelled = []string{"one", "two", "three", "four", "five", "six", "seven", "eight", "nine"}

// calibration returns the number formed by the first and last digit, a
// missing digit counting as 0.
func calibration(digits []int) int {
	if len(digits) == 0 {
		return 0
	}
	return digits[0]*10 + digits[len(digits)-1]
}

// Digits returns the ASCII digits of line in order.
func Digits(line string) []int {
	var out []int
	for _, r := range line {
		if aoc.IsDigit(r) {
			out = append(out, aoc.Digit(r))
		}
	}
	return out
}

// SpelledDigits returns the digits of line, including the ones spelled
// out as words. Letters are collected into a buffer that is checked for
// any word after each character. A word match yields its digit and
// restarts the buffer at the current character, so overlapping words
// like "eightwo" produce both digits; a real digit clears the buffer.
func SpelledDigits(line string, words []string) []int {
	var out []int
	var buf strings.Builder
	for _, r := range line {
		buf.WriteRune(r)
		for i, w := range words {
			if strings.Contains(buf.String(), w) {
				out = append(out, i+1)
				buf.Reset()
				buf.WriteRune(r)
				break
			}
		}
		if aoc.IsDigit(r) {
			out = append(out, aoc.Digit(r))
			buf.Reset()
		}
	}
	return out
}

func Part1(input string) int {
	sum := 0
	for _, l := range aoc.Lines(input) {
		sum += calibration(Digits(l))
	}
	return sum
}

func Part2(input string) int {
	sum := 0
	for _, l := range aoc.Lines(input) {
		sum += calibration(SpelledDigits(l, Spelled))
	}
	return sum
}
