// Package day02 solves "Cube Conundrum".
package day02

import (
	"strings"

	aoc "github.com/maisem/advent"
)

const Title = "Cube Conundrum"

// Cubes counts cubes by color. It is used both for one handful drawn
// from the bag and for the bag's contents.
type Cubes struct {
	Red, Green, Blue int
}

// DefaultBag is the bag the elf asks about.
var DefaultBag = Cubes{Red: 12, Green: 13, Blue: 14}

// Fits reports whether c could have been drawn from bag.
func (c Cubes) Fits(bag Cubes) bool {
	return c.Red <= bag.Red && c.Green <= bag.Green && c.Blue <= bag.Blue
}

func (c Cubes) Power() int {
	return c.Red * c.Green * c.Blue
}

// ParseCubes parses "3 blue, 4 red". Unknown colors are ignored and a
// malformed count is 0.
func ParseCubes(s string) Cubes {
	var c Cubes
	for _, part := range strings.Split(s, ", ") {
		f := strings.Fields(part)
		n := aoc.Natural(aoc.Field(f, 0))
		switch aoc.Field(f, 1) {
		case "red":
			c.Red = n
		case "green":
			c.Green = n
		case "blue":
			c.Blue = n
		}
	}
	return c
}

type Game struct {
	ID    int
	Draws []Cubes
}

// ParseGame parses "Game 1: 3 blue, 4 red; 1 red, 2 green". A game with
// no readable id is game 1.
func ParseGame(line string) Game {
	parts := strings.Split(line, ": ")
	g := Game{ID: 1}
	if id, ok := strings.CutPrefix(aoc.Field(parts, 0), "Game "); ok {
		if v, ok := aoc.ParseNatural(id); ok {
			g.ID = v
		}
	}
	draws := aoc.Or(aoc.Field(parts, 1), "0 red, 0 green, 0 blue")
	for _, d := range strings.Split(draws, "; ") {
		g.Draws = append(g.Draws, ParseCubes(d))
	}
	return g
}

// Possible reports whether every draw of g fits in bag.
func (g Game) Possible(bag Cubes) bool {
	for _, d := range g.Draws {
		if !d.Fits(bag) {
			return false
		}
	}
	return true
}

// Fewest returns the smallest bag g could have been played with. Each
// color counts at least 1.
func (g Game) Fewest() Cubes {
	m := Cubes{Red: 1, Green: 1, Blue: 1}
	for _, d := range g.Draws {
		m.Red = max(m.Red, d.Red)
		m.Green = max(m.Green, d.Green)
		m.Blue = max(m.Blue, d.Blue)
	}
	return m
}

// PossibleIDSum sums the ids of the games possible with bag.
func PossibleIDSum(input string, bag Cubes) int {
	sum := 0
	for _, l := range aoc.Lines(input) {
		if g := ParseGame(l); g.Possible(bag) {
			sum += g.ID
		}
	}
	return sum
}

func Part1(input string) int {
	return PossibleIDSum(input, DefaultBag)
}

func Part2(input string) int {
	sum := 0
	for _, l := range aoc.Lines(input) {
		sum += ParseGame(l).Fewest().Power()
	}
	return sum
}
