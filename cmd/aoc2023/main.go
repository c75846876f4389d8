// Command aoc2023 prints the answers to the 2023 puzzles, checking each
// part against its sample first.
package main

import (
	_ "embed"

	aoc "github.com/maisem/advent"
	"github.com/maisem/advent/y2023/day01"
	"github.com/maisem/advent/y2023/day02"
	"github.com/maisem/advent/y2023/day03"
	"github.com/maisem/advent/y2023/day04"
	"github.com/maisem/advent/y2023/day05"
	"github.com/maisem/advent/y2023/day06"
	"github.com/maisem/advent/y2023/day07"
	"github.com/maisem/advent/y2023/day08"
)

func main() {
	aoc.Run(2023, source, &solver{})
}

//go:embed main.go
var source []byte

type solver struct {
	*aoc.Puzzle
}

var titles = map[int]string{
	1: day01.Title,
	2: day02.Title,
	3: day03.Title,
	4: day04.Title,
	5: day05.Title,
	6: day06.Title,
	7: day07.Title,
	8: day08.Title,
}

func (s solver) Title(day int) string {
	return titles[day]
}

/*
want=142

1abc2
pqr3stu8vwx
a1b2c3d4e5f
treb7uchet
*/
func (s solver) D1p1() any {
	return day01.Part1(s.InputString())
}

/*
want=281

two1nine
eightwothree
abcone2threexyz
xtwone3four
4nineeightseven2
zoneight234
7pqrstsixteen
*/
func (s solver) D1p2() any {
	return day01.Part2(s.InputString())
}

/*
want=8

Game 1: 3 blue, 4 red; 1 red, 2 green, 6 blue; 2 green
Game 2: 1 blue, 2 green; 3 green, 4 blue, 1 red; 1 green, 1 blue
Game 3: 8 green, 6 blue, 20 red; 5 blue, 4 red, 13 green; 5 green, 1 red
Game 4: 1 green, 3 red, 6 blue; 3 green, 6 red; 3 green, 15 blue, 14 red
Game 5: 6 red, 1 blue, 3 green; 2 blue, 1 red, 2 green
*/
func (s solver) D2p1() any {
	return day02.Part1(s.InputString())
}

// want=2286
func (s solver) D2p2() any {
	return day02.Part2(s.InputString())
}

/*
want=4361

467..114..
...*......
..35..633.
......#...
617*......
.....+.58.
..592.....
......755.
...$.*....
.664.598..
*/
func (s solver) D3p1() any {
	return day03.Part1(s.InputString())
}

// want=467835
func (s solver) D3p2() any {
	return day03.Part2(s.InputString())
}

/*
want=13

Card 1: 41 48 83 86 17 | 83 86  6 31 17  9 48 53
Card 2: 13 32 20 16 61 | 61 30 68 82 17 32 24 19
Card 3:  1 21 53 59 44 | 69 82 63 72 16 21 14  1
Card 4: 41 92 73 84 69 | 59 84 76 51 58  5 54 83
Card 5: 87 83 26 28 32 | 88 30 70 12 93 22 82 36
Card 6: 31 18 13 56 72 | 74 77 10 23 35 67 36 11
*/
func (s solver) D4p1() any {
	return day04.Part1(s.InputString())
}

// want=30
func (s solver) D4p2() any {
	return day04.Part2(s.InputString())
}

/*
want=35

seeds: 79 14 55 13

seed-to-soil map:
50 98 2
52 50 48

soil-to-fertilizer map:
0 15 37
37 52 2
39 0 15

fertilizer-to-water map:
49 53 8
0 11 42
42 0 7
57 7 4

water-to-light map:
88 18 7
18 25 70

light-to-temperature map:
45 77 23
81 45 19
68 64 13

temperature-to-humidity map:
0 69 1
1 0 69

humidity-to-location map:
60 56 37
56 93 4
*/
func (s solver) D5p1() any {
	return day05.Part1(s.InputString())
}

// want=46
func (s solver) D5p2() any {
	a := day05.Parse(s.InputString())
	rs := a.SeedRanges()
	s.Debugf("searching %d seed ranges through %d stages", len(rs), len(a.Pipeline))
	return a.LowestInRanges(rs)
}

/*
want=288

Time:      7  15   30
Distance:  9  40  200
*/
func (s solver) D6p1() any {
	return day06.Part1(s.InputString())
}

// want=71503
func (s solver) D6p2() any {
	if s.SampleMode {
		return day06.Part2(s.InputString())
	}
	// Real races are tens of millions of ms long; day06's
	// TestClosedFormAgrees pins the two counts together.
	return day06.ParseKerned(s.InputString()).WinsClosedForm()
}

/*
want=6440

32T3K 765
T55J5 684
KK677 28
KTJJT 220
QQQJA 483
*/
func (s solver) D7p1() any {
	return day07.Part1(s.InputString())
}

// want=5905
func (s solver) D7p2() any {
	return day07.Part2(s.InputString())
}

/*
want=6

LLR

AAA = (BBB, BBB)
BBB = (AAA, ZZZ)
ZZZ = (ZZZ, ZZZ)
*/
func (s solver) D8p1() any {
	return day08.Part1(s.InputString())
}

/*
want=6

LR

11A = (11B, XXX)
11B = (XXX, 11Z)
11Z = (11B, XXX)
22A = (22B, XXX)
22B = (22C, 22C)
22C = (22Z, 22Z)
22Z = (22B, 22B)
XXX = (XXX, XXX)
*/
func (s solver) D8p2() any {
	// Lockstep walking never finishes on real inputs; they are built so
	// every ghost loops on its own cycle. See day08's TestGhostCycles.
	if s.SampleMode {
		return day08.Part2(s.InputString())
	}
	m := day08.Parse(s.InputString())
	return m.GhostCycles()
}
