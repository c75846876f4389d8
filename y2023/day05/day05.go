// Package day05 solves "If You Give A Seed A Fertilizer": seed numbers
// are pushed through a chain of range remapping stages and the lowest
// resulting location wins.
package day05

import (
	"fmt"
	"math"
	"strings"

	aoc "github.com/maisem/advent"
)

const Title = "If You Give A Seed A Fertilizer"

// chunkSize is how many seeds one worker checks at a time when seeds
// are given as ranges.
const chunkSize = 1 << 20

// Remap sends each value in Source to the value at the same offset in
// Destination. Both intervals have the same length.
type Remap struct {
	Source      aoc.Interval
	Destination aoc.Interval
}

// ParseRemap parses a "destination source length" line. Missing or
// malformed numbers are 0.
func ParseRemap(line string) Remap {
	n := aoc.NaturalFields(line)
	dst, src, length := aoc.Field(n, 0), aoc.Field(n, 1), aoc.Field(n, 2)
	return Remap{
		Source:      aoc.IntervalOf(src, length),
		Destination: aoc.IntervalOf(dst, length),
	}
}

// Map returns where r sends v, or false if v is not in r.Source.
func (r Remap) Map(v int) (int, bool) {
	if !r.Source.Contains(v) {
		return 0, false
	}
	return r.Destination.Start + (v - r.Source.Start), true
}

func (r Remap) String() string {
	return fmt.Sprintf("%d %d %d", r.Destination.Start, r.Source.Start, r.Source.Len())
}

// Stage is one named layer of the pipeline, e.g. "seed-to-soil map:".
type Stage struct {
	Name   string
	Remaps []Remap
}

// ParseStage parses a block made of a header line followed by one remap
// per line.
func ParseStage(block string) Stage {
	lines := aoc.Lines(strings.TrimSpace(block))
	if len(lines) == 0 {
		return Stage{}
	}
	st := Stage{Name: lines[0]}
	for _, l := range lines[1:] {
		st.Remaps = append(st.Remaps, ParseRemap(l))
	}
	return st
}

// Apply maps v through the first remap whose source contains it. Values
// no remap covers come out unchanged. Overlapping sources are allowed;
// declaration order decides.
func (s Stage) Apply(v int) int {
	for _, r := range s.Remaps {
		if out, ok := r.Map(v); ok {
			return out
		}
	}
	return v
}

func (s Stage) String() string {
	var sb strings.Builder
	sb.WriteString(s.Name)
	for _, r := range s.Remaps {
		sb.WriteByte('\n')
		sb.WriteString(r.String())
	}
	return sb.String()
}

// Pipeline is an ordered list of stages.
type Pipeline []Stage

// Apply threads v through every stage in order.
func (p Pipeline) Apply(v int) int {
	for _, s := range p {
		v = s.Apply(v)
	}
	return v
}

// lowest returns the lowest location of any seed in r. r must not be
// empty.
func (p Pipeline) lowest(r aoc.Interval) int {
	low := math.MaxInt
	for v := r.Start; v < r.End; v++ {
		low = min(low, p.Apply(v))
	}
	return low
}

type Almanac struct {
	Seeds    []int
	Pipeline Pipeline
}

// Parse parses an almanac: a "seeds:" line followed by blank-line
// separated stages.
func Parse(input string) Almanac {
	blocks := aoc.Blocks(input)
	if len(blocks) == 0 {
		return Almanac{}
	}
	a := Almanac{
		Seeds: aoc.NaturalFields(aoc.TrimPrefix(blocks[0], "seeds: ")),
	}
	for _, b := range blocks[1:] {
		a.Pipeline = append(a.Pipeline, ParseStage(b))
	}
	return a
}

// String formats a in the same layout Parse reads.
func (a Almanac) String() string {
	var sb strings.Builder
	sb.WriteString("seeds:")
	for _, s := range a.Seeds {
		fmt.Fprintf(&sb, " %d", s)
	}
	for _, st := range a.Pipeline {
		sb.WriteString("\n\n")
		sb.WriteString(st.String())
	}
	sb.WriteByte('\n')
	return sb.String()
}

// SeedRanges reads the seeds as (start, length) pairs. A trailing odd
// value is ignored.
func (a Almanac) SeedRanges() []aoc.Interval {
	var out []aoc.Interval
	for i := 0; i+1 < len(a.Seeds); i += 2 {
		out = append(out, aoc.IntervalOf(a.Seeds[i], a.Seeds[i+1]))
	}
	return out
}

// Lowest returns the lowest location any of seeds ends up at, or 0 if
// there are no seeds.
func (a Almanac) Lowest(seeds []int) int {
	if len(seeds) == 0 {
		return 0
	}
	low := math.MaxInt
	for _, s := range seeds {
		low = min(low, a.Pipeline.Apply(s))
	}
	return low
}

// LowestInRanges is Lowest over every integer in rs. The ranges are cut
// into chunks that are searched in parallel.
func (a Almanac) LowestInRanges(rs []aoc.Interval) int {
	var chunks []aoc.Interval
	for _, r := range rs {
		chunks = append(chunks, r.Chunks(chunkSize)...)
	}
	if len(chunks) == 0 {
		return 0
	}
	return aoc.ParallelMapFold(chunks, a.Pipeline.lowest, func(low, v int) int {
		return min(low, v)
	}, math.MaxInt)
}

func Part1(input string) int {
	a := Parse(input)
	return a.Lowest(a.Seeds)
}

func Part2(input string) int {
	a := Parse(input)
	return a.LowestInRanges(a.SeedRanges())
}
