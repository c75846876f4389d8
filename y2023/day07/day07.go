// Package day07 solves "Camel Cards": hands are ranked by their category
// and then card by card, and each hand wins its bid times its rank.
package day07

import (
	"cmp"
	"slices"
	"strings"

	aoc "github.com/maisem/advent"
)

const Title = "Camel Cards"

// Category is the shape of a hand. Later categories beat earlier ones.
type Category int

const (
	HighCard Category = iota + 1
	OnePair
	TwoPair
	ThreeOfAKind
	FullHouse
	FourOfAKind
	FiveOfAKind
)

func (c Category) String() string {
	switch c {
	case HighCard:
		return "high card"
	case OnePair:
		return "one pair"
	case TwoPair:
		return "two pair"
	case ThreeOfAKind:
		return "three of a kind"
	case FullHouse:
		return "full house"
	case FourOfAKind:
		return "four of a kind"
	case FiveOfAKind:
		return "five of a kind"
	}
	return "unknown"
}

// Rules are the card strength table and, optionally, a wildcard label.
type Rules struct {
	Labels string // strongest first
	Joker  byte   // 0 if there is no wildcard
}

var (
	// Standard is the part 1 table.
	Standard = Rules{Labels: "AKQJT98765432"}
	// Jokers makes J the weakest card but lets it stand in for any other
	// label when categorizing.
	Jokers = Rules{Labels: "AKQT98765432J", Joker: 'J'}
)

// Strength returns how strong label is, higher being stronger. Labels
// missing from the table are ranked as if they were the first entry.
func (r Rules) Strength(label byte) int {
	i := max(strings.IndexByte(r.Labels, label), 0)
	return len(r.Labels) - i
}

// Hand is five cards and a bid.
type Hand struct {
	Cards [5]byte
	Bid   int
}

// ParseHand parses "32T3K 765". With fewer than five cards the hand is
// five zero cards; cards past the fifth are dropped.
func ParseHand(line string) Hand {
	f := strings.Fields(line)
	var h Hand
	if cards := aoc.Field(f, 0); len(cards) >= len(h.Cards) {
		copy(h.Cards[:], cards)
	}
	h.Bid = aoc.Lenient(aoc.Field(f, 1))
	return h
}

func (h Hand) String() string {
	return string(h.Cards[:])
}

// Category classifies h under r. Jokers join whichever label is already
// most common.
func (h Hand) Category(r Rules) Category {
	counts := map[byte]int{}
	for _, c := range h.Cards {
		counts[c]++
	}
	if r.Joker != 0 {
		if j := counts[r.Joker]; j > 0 && j < len(h.Cards) {
			delete(counts, r.Joker)
			var best byte
			for c, n := range counts {
				if n > counts[best] || (n == counts[best] && c > best) {
					best = c
				}
			}
			counts[best] += j
		}
	}
	has := func(n int) bool {
		for _, v := range counts {
			if v == n {
				return true
			}
		}
		return false
	}
	switch {
	case len(counts) == 1:
		return FiveOfAKind
	case len(counts) == 2 && has(4):
		return FourOfAKind
	case len(counts) == 2 && has(3):
		return FullHouse
	case len(counts) == 3 && has(3):
		return ThreeOfAKind
	case len(counts) == 3 && has(2):
		return TwoPair
	case len(counts) == 5:
		return HighCard
	}
	return OnePair
}

// Compare orders hands by category, then by the strength of the first
// card that differs.
func Compare(a, b Hand, r Rules) int {
	if c := cmp.Compare(a.Category(r), b.Category(r)); c != 0 {
		return c
	}
	for i := range a.Cards {
		if c := cmp.Compare(r.Strength(a.Cards[i]), r.Strength(b.Cards[i])); c != 0 {
			return c
		}
	}
	return 0
}

func ParseHands(input string) []Hand {
	lines := aoc.Lines(strings.TrimSpace(input))
	hands := make([]Hand, len(lines))
	for i, l := range lines {
		hands[i] = ParseHand(strings.TrimSpace(l))
	}
	return hands
}

// Winnings ranks hands under r, weakest first with rank 1, and sums
// rank times bid.
func Winnings(hands []Hand, r Rules) int {
	hands = slices.Clone(hands)
	slices.SortStableFunc(hands, func(a, b Hand) int {
		return Compare(a, b, r)
	})
	sum := 0
	for i, h := range hands {
		sum += (i + 1) * h.Bid
	}
	return sum
}

func Part1(input string) int {
	return Winnings(ParseHands(input), Standard)
}

func Part2(input string) int {
	return Winnings(ParseHands(input), Jokers)
}
