package aoc

import (
	"strconv"
	"strings"
)

// The helpers in this file are total: puzzle inputs are trusted, so
// instead of validating they substitute zero values for anything
// missing or malformed and keep going.

// Lines splits s into lines. A trailing newline does not produce an
// empty last line and "\r\n" endings are accepted.
func Lines(s string) []string {
	if s == "" {
		return nil
	}
	lines := strings.Split(strings.TrimSuffix(s, "\n"), "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

// Blocks splits s into blank-line separated blocks, after trimming
// surrounding whitespace.
func Blocks(s string) []string {
	s = strings.TrimSpace(strings.ReplaceAll(s, "\r\n", "\n"))
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n\n")
}

// Lenient parses s as a decimal int, ignoring surrounding space. It
// returns 0 if s is not a number.
func Lenient(s string) int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return v
}

// ParseNatural parses s as a non-negative decimal int, ignoring
// surrounding space. A leading '+' is accepted; a '-' is not.
func ParseNatural(s string) (int, bool) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "+")
	v, err := strconv.ParseUint(s, 10, strconv.IntSize-1)
	if err != nil {
		return 0, false
	}
	return int(v), true
}

// Natural is ParseNatural returning 0 for anything it does not accept,
// negative numbers included.
func Natural(s string) int {
	v, _ := ParseNatural(s)
	return v
}

// NaturalFields is LenientFields for counts and ids: negative tokens
// count as 0 too.
func NaturalFields(s string) []int {
	fields := strings.Fields(s)
	out := make([]int, len(fields))
	for i, f := range fields {
		out[i] = Natural(f)
	}
	return out
}

// LenientFields returns the whitespace separated numbers in s. Tokens
// that are not numbers count as 0.
func LenientFields(s string) []int {
	fields := strings.Fields(s)
	out := make([]int, len(fields))
	for i, f := range fields {
		out[i] = Lenient(f)
	}
	return out
}

// TrimPrefix returns s without prefix, or "" if s does not start with it.
func TrimPrefix(s, prefix string) string {
	s1, ok := strings.CutPrefix(s, prefix)
	if !ok {
		return ""
	}
	return s1
}

// Field returns parts[i], or the zero value if there is no such element.
func Field[T any](parts []T, i int) T {
	if i < 0 || i >= len(parts) {
		var zero T
		return zero
	}
	return parts[i]
}
