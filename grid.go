package aoc

import (
	"reflect"
	"sync"

	"golang.org/x/exp/constraints"
	"tailscale.com/util/deephash"
)

// Grid is a 2D grid indexed [y][x]. Rows need not all be the same
// length; bounds are checked against the row being read.
type Grid[T any] [][]T

// ParseGrid returns the lines of s as a byte grid, one row per line.
func ParseGrid(s string) Grid[byte] {
	lines := Lines(s)
	g := make(Grid[byte], len(lines))
	for y, l := range lines {
		g[y] = []byte(l)
	}
	return g
}

func (g Grid[T]) AtOk(p Pt) (T, bool) {
	if p.Y < 0 || p.Y >= len(g) || p.X < 0 || p.X >= len(g[p.Y]) {
		var zero T
		return zero, false
	}
	return g[p.Y][p.X], true
}

// Row returns row y, or false if there is no such row.
func (g Grid[T]) Row(y int) ([]T, bool) {
	if y < 0 || y >= len(g) {
		return nil, false
	}
	return g[y], true
}

var hashers sync.Map // reflect.Type -> func(*Grid[T]) deephash.Sum

// Hash is safe to call from multiple goroutines.
func (g Grid[T]) Hash() deephash.Sum {
	rt := reflect.TypeOf(g)
	h, ok := hashers.Load(rt)
	if !ok {
		h, _ = hashers.LoadOrStore(rt, deephash.HasherForType[Grid[T]]())
	}
	return h.(func(*Grid[T]) deephash.Sum)(&g)
}

// Fingerprint returns a hash of everything reachable from v. Two values
// parsed from equivalent text have the same fingerprint.
func Fingerprint[T any](v *T) deephash.Sum {
	return deephash.Hash(v)
}

type Direction int

const (
	Up Direction = iota
	Right
	Down
	Left
)

// DirectionOf returns the direction named by a tape letter. 'R' is
// Right and 'U'/'D' are Up/Down; anything else is Left.
func DirectionOf(r rune) Direction {
	switch r {
	case 'R':
		return Right
	case 'U':
		return Up
	case 'D':
		return Down
	}
	return Left
}

func (d Direction) String() string {
	switch d {
	case Left:
		return "<"
	case Right:
		return ">"
	case Up:
		return "^"
	case Down:
		return "v"
	}
	return ""
}

type Pt = Pt2[int]

type Pt2[T constraints.Signed] struct {
	X, Y T
}
