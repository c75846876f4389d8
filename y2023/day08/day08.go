// Package day08 solves "Haunted Wasteland": walk a left/right network
// following a repeating instruction tape.
package day08

import (
	"strings"

	aoc "github.com/maisem/advent"
)

const Title = "Haunted Wasteland"

const (
	Start = "AAA"
	End   = "ZZZ"
)

// Map is the instruction tape and the network it drives.
type Map struct {
	Tape    []aoc.Direction
	Network aoc.Graph[string]
}

// Parse reads the tape from the first line and "AAA = (BBB, CCC)" nodes
// from the lines after the blank one. Any tape letter other than 'R'
// means left.
func Parse(input string) Map {
	var m Map
	lines := aoc.Lines(strings.TrimSpace(input))
	if len(lines) == 0 {
		return m
	}
	for _, r := range lines[0] {
		m.Tape = append(m.Tape, aoc.DirectionOf(r))
	}
	if len(lines) < 2 {
		return m
	}
	for _, l := range lines[2:] {
		key, rest, _ := strings.Cut(l, " = ")
		rest = strings.NewReplacer("(", "", ")", "").Replace(rest)
		next := strings.Split(rest, ", ")
		m.Network.AddNode(key, aoc.Field(next, 0), aoc.Field(next, 1))
	}
	return m
}

// Steps counts the steps from Start to End.
func (m *Map) Steps() int {
	return m.Network.Walk(Start, m.Tape, func(k string) bool {
		return k == End
	})
}

// GhostSteps counts the steps until walkers started on every node ending
// in 'A' all stand on nodes ending in 'Z' at once.
func (m *Map) GhostSteps() int {
	return m.Network.WalkAll(m.ghosts(), m.Tape, isGhostEnd)
}

// GhostCycles is GhostSteps computed from each walker's own cycle length.
func (m *Map) GhostCycles() int {
	return m.Network.CycleSteps(m.ghosts(), m.Tape, isGhostEnd)
}

func (m *Map) ghosts() []string {
	return m.Network.Select(func(k string) bool {
		return strings.HasSuffix(k, "A")
	})
}

func isGhostEnd(k string) bool {
	return strings.HasSuffix(k, "Z")
}

func Part1(input string) int {
	m := Parse(input)
	return m.Steps()
}

func Part2(input string) int {
	m := Parse(input)
	return m.GhostSteps()
}
