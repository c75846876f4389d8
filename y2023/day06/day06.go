// Package day06 solves "Wait For It": holding the boat's button for h of
// a race's t milliseconds moves it h*(t-h) millimetres.
package day06

import (
	"math"
	"strings"

	aoc "github.com/maisem/advent"
)

const Title = "Wait For It"

// chunkSize is how many hold times one worker tries at a time.
const chunkSize = 1 << 16

type Race struct {
	Time   int // ms
	Record int // mm
}

// Distance returns how far the boat goes when the button is held for
// hold ms.
func (r Race) Distance(hold int) int {
	return (r.Time - hold) * hold
}

// Wins counts the hold times in [1, Time) that beat the record. Hold
// times are tried in parallel chunks.
func (r Race) Wins() int {
	holds := aoc.Interval{Start: 1, End: r.Time}
	return aoc.ParallelMapFold(holds.Chunks(chunkSize), r.winsIn, func(sum, n int) int {
		return sum + n
	}, 0)
}

func (r Race) winsIn(holds aoc.Interval) int {
	n := 0
	for h := holds.Start; h < holds.End; h++ {
		if r.Distance(h) > r.Record {
			n++
		}
	}
	return n
}

// WinsClosedForm counts the same hold times as Wins by solving
// h^2 - Time*h + Record = 0 for the boundaries.
func (r Race) WinsClosedForm() int {
	hi, lo, ok := aoc.SolveQuad(1, -r.Time, r.Record)
	if !ok {
		return 0
	}
	first := max(int(math.Floor(lo))+1, 1)
	last := min(int(math.Ceil(hi))-1, r.Time-1)
	return max(last-first+1, 0)
}

// afterColon returns what follows the last ':' in line, or all of line
// if it has none.
func afterColon(line string) string {
	return line[strings.LastIndex(line, ":")+1:]
}

// ParseRaces reads a "Time:" line and a "Distance:" line into races,
// pairing columns. Extra columns on either line are dropped.
func ParseRaces(input string) []Race {
	lines := aoc.Lines(strings.TrimSpace(input))
	times := aoc.LenientFields(afterColon(aoc.Field(lines, 0)))
	records := aoc.LenientFields(afterColon(aoc.Field(lines, 1)))
	races := make([]Race, min(len(times), len(records)))
	for i := range races {
		races[i] = Race{Time: times[i], Record: records[i]}
	}
	return races
}

// ParseKerned reads the same two lines as one race whose numbers had
// bad kerning: the spaces between digits are removed.
func ParseKerned(input string) Race {
	lines := aoc.Lines(strings.TrimSpace(input))
	join := func(line string) int {
		return aoc.Lenient(strings.ReplaceAll(afterColon(line), " ", ""))
	}
	return Race{
		Time:   join(aoc.Field(lines, 0)),
		Record: join(aoc.Field(lines, 1)),
	}
}

func Part1(input string) int {
	races := ParseRaces(input)
	wins := make([]int, len(races))
	for i, r := range races {
		wins[i] = r.Wins()
	}
	return aoc.Product(wins...)
}

func Part2(input string) int {
	return ParseKerned(input).Wins()
}
