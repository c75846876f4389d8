// Command aoc2024 prints the answers to the 2024 puzzles.
package main

import (
	_ "embed"

	aoc "github.com/maisem/advent"
	"github.com/maisem/advent/y2024/day01"
	"github.com/maisem/advent/y2024/day02"
)

func main() {
	aoc.Run(2024, source, &solver{})
}

//go:embed main.go
var source []byte

type solver struct {
	*aoc.Puzzle
}

func (s solver) Title(day int) string {
	switch day {
	case 1:
		return day01.Title
	case 2:
		return day02.Title
	}
	return ""
}

/*
want=11

3   4
4   3
2   5
1   3
3   9
3   3
*/
func (s solver) D1p1() any {
	return day01.Part1(s.InputString())
}

// want=31
func (s solver) D1p2() any {
	return day01.Part2(s.InputString())
}

/*
want=2

7 6 4 2 1
1 2 7 8 9
9 7 6 2 1
1 3 2 4 5
8 6 4 4 1
1 3 6 7 9
*/
func (s solver) D2p1() any {
	return day02.Part1(s.InputString())
}

// want=4
func (s solver) D2p2() any {
	n := 0
	s.ForLines(func(line string) {
		if day02.Dampened(aoc.LenientFields(line)) {
			n++
		}
	})
	return n
}
