// Package day04 solves "Scratchcards".
package day04

import (
	"slices"
	"strings"

	aoc "github.com/maisem/advent"
)

const Title = "Scratchcards"

type Card struct {
	ID      int
	Matches int // how many owned numbers are winning numbers
}

// ParseCard parses "Card 1: 41 48 83 | 83 86  6". A card with no
// readable id is card 1.
func ParseCard(line string) Card {
	parts := strings.Split(line, ": ")
	c := Card{ID: 1}
	if id, ok := strings.CutPrefix(aoc.Field(parts, 0), "Card "); ok {
		if v, ok := aoc.ParseNatural(id); ok {
			c.ID = v
		}
	}
	nums := strings.Split(aoc.Field(parts, 1), " | ")
	winning := aoc.NaturalFields(aoc.Field(nums, 0))
	for _, n := range aoc.NaturalFields(aoc.Field(nums, 1)) {
		if slices.Contains(winning, n) {
			c.Matches++
		}
	}
	return c
}

// Points is 1 for the first match, doubled for each further one.
func (c Card) Points() int {
	if c.Matches == 0 {
		return 0
	}
	return 1 << (c.Matches - 1)
}

func parseCards(input string) []Card {
	lines := aoc.Lines(input)
	cards := make([]Card, len(lines))
	for i, l := range lines {
		cards[i] = ParseCard(l)
	}
	return cards
}

// CountWithCopies returns how many cards end up in hand when each card
// wins one copy of each of the next Matches cards (never past the last
// card), copies winning further copies in turn. Copies are looked up by
// position, so the walk always moves forward even when ids repeat or
// are out of order.
func CountWithCopies(cards []Card) int {
	ids := make([]int, len(cards))
	for i, c := range cards {
		ids[i] = c.ID
	}
	q := aoc.NewQueue(ids...)
	total := 0
	q.While(func(id int) bool {
		total++
		if id < 1 || id > len(cards) {
			return true
		}
		c := cards[id-1]
		pos := id - 1
		last := min(pos+c.Matches, len(cards)-1)
		for i := pos + 1; i <= last; i++ {
			q.Push(i + 1)
		}
		return true
	})
	return total
}

func Part1(input string) int {
	sum := 0
	for _, c := range parseCards(input) {
		sum += c.Points()
	}
	return sum
}

func Part2(input string) int {
	return CountWithCopies(parseCards(input))
}
