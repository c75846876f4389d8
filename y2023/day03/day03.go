// Package day03 solves "Gear Ratios": part numbers are the digit runs of
// an engine schematic that touch a symbol.
package day03

import (
	"slices"

	aoc "github.com/maisem/advent"
	"golang.org/x/exp/maps"
)

const Title = "Gear Ratios"

// Gear is the symbol whose neighbouring numbers are multiplied.
const Gear = '*'

// Number is a maximal run of digits within one row.
type Number struct {
	Start, End int // columns of the first and last digit
	Value      int
}

// Numbers returns the digit runs of row, left to right.
func Numbers(row []byte) []Number {
	var out []Number
	start := -1
	flush := func(end int) {
		if start >= 0 {
			out = append(out, Number{
				Start: start,
				End:   end,
				Value: aoc.Lenient(string(row[start : end+1])),
			})
			start = -1
		}
	}
	for x, c := range row {
		if aoc.IsDigit(c) {
			if start < 0 {
				start = x
			}
			continue
		}
		flush(x - 1)
	}
	flush(len(row) - 1)
	return out
}

// IsSymbol reports whether c is neither a digit nor '.'.
func IsSymbol(c byte) bool {
	return !aoc.IsDigit(c) && c != '.'
}

// window returns the columns [left, right] scanned around n in a row of
// the given width. left saturates at 0; right is pulled back to the last
// column when it would run off the row.
func (n Number) window(width int) (left, right int) {
	left = max(n.Start-1, 0)
	right = n.End + 1
	if right >= width {
		right = max(width-1, 0)
	}
	return left, right
}

// span returns row y of g between columns left and right inclusive. It
// reports false if the row does not exist or is too short to hold the
// whole span; such rows are not scanned at all.
func span(g aoc.Grid[byte], y, left, right int) ([]byte, bool) {
	row, ok := g.Row(y)
	if !ok || right >= len(row) {
		return nil, false
	}
	return row[left : right+1], true
}

// neighbourRows returns the rows scanned above and below row y. The row
// above row 0 is row 0 itself.
func neighbourRows(y int) [2]int {
	return [2]int{max(y-1, 0), y + 1}
}

// Touches reports whether number n in row y has a cell matching is in its
// scan window: the clamped left and right cells of its own row plus the
// clamped spans of the neighbouring rows.
func Touches(g aoc.Grid[byte], y int, n Number, is func(byte) bool) bool {
	row := g[y]
	left, right := n.window(len(row))
	if is(row[left]) || is(row[right]) {
		return true
	}
	for _, yy := range neighbourRows(y) {
		if s, ok := span(g, yy, left, right); ok && slices.ContainsFunc(s, is) {
			return true
		}
	}
	return false
}

// PartSum returns the sum of all numbers touching a symbol.
func PartSum(g aoc.Grid[byte]) int {
	sum := 0
	for y, row := range g {
		for _, n := range Numbers(row) {
			if Touches(g, y, n, IsSymbol) {
				sum += n.Value
			}
		}
	}
	return sum
}

// GearGroups returns, for every gear position, the numbers found next to
// it. A number is recorded for the gear at either end of its own row's
// window and for the first gear in each neighbouring row's span, so the
// same number can be recorded twice for one gear.
func GearGroups(g aoc.Grid[byte], gear byte) map[aoc.Pt][]int {
	isGear := func(c byte) bool { return c == gear }
	groups := make(map[aoc.Pt][]int)
	for y, row := range g {
		for _, n := range Numbers(row) {
			left, right := n.window(len(row))
			if isGear(row[left]) {
				p := aoc.Pt{X: left, Y: y}
				groups[p] = append(groups[p], n.Value)
			}
			if isGear(row[right]) {
				p := aoc.Pt{X: right, Y: y}
				groups[p] = append(groups[p], n.Value)
			}
			for _, yy := range neighbourRows(y) {
				s, ok := span(g, yy, left, right)
				if !ok {
					continue
				}
				if i := slices.IndexFunc(s, isGear); i >= 0 {
					p := aoc.Pt{X: left + i, Y: yy}
					groups[p] = append(groups[p], n.Value)
				}
			}
		}
	}
	return groups
}

// GearRatioSum sums the products of gears with exactly two numbers.
func GearRatioSum(g aoc.Grid[byte], gear byte) int {
	sum := 0
	for _, nums := range maps.Values(GearGroups(g, gear)) {
		if len(nums) == 2 {
			sum += nums[0] * nums[1]
		}
	}
	return sum
}

func Part1(input string) int {
	return PartSum(aoc.ParseGrid(input))
}

func Part2(input string) int {
	return GearRatioSum(aoc.ParseGrid(input), Gear)
}
