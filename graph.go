package aoc

import (
	"slices"

	"golang.org/x/exp/maps"
)

// Graph is a directed graph where every node has exactly two successors,
// one reached by going Left and one by going Right.
type Graph[K comparable] struct {
	Nodes map[K][2]K // node -> [left, right]
}

func (g *Graph[K]) AddNode(a, left, right K) {
	InitMap(&g.Nodes)
	g.Nodes[a] = [2]K{left, right}
}

// Next returns the successor of a in direction d. Any direction other
// than Right goes left. It reports false if a is not in the graph.
func (g *Graph[K]) Next(a K, d Direction) (K, bool) {
	e, ok := g.Nodes[a]
	if !ok {
		var zero K
		return zero, false
	}
	if d == Right {
		return e[1], true
	}
	return e[0], true
}

// Select returns the nodes for which pred is true, in no particular order.
func (g *Graph[K]) Select(pred func(K) bool) []K {
	ks := maps.Keys(g.Nodes)
	return slices.DeleteFunc(ks, func(k K) bool { return !pred(k) })
}

// Walk follows tape from start, starting over at the beginning of tape
// each time it runs out, and returns the number of steps taken when done
// first reports true. If the walk reaches a node that is not in the
// graph it stops there and returns the steps taken so far. An empty tape
// takes no steps.
//
// Walk does not detect walks that never finish.
func (g *Graph[K]) Walk(start K, tape []Direction, done func(K) bool) int {
	if len(tape) == 0 {
		return 0
	}
	cur := start
	steps := 0
	for !done(cur) {
		next, ok := g.Next(cur, tape[steps%len(tape)])
		if !ok {
			break
		}
		cur = next
		steps++
	}
	return steps
}

// WalkAll moves one walker per start in lockstep along tape and returns
// the first step count at which done is true for every walker at once.
// Like Walk, it stops early if any walker reaches an unknown node.
func (g *Graph[K]) WalkAll(starts []K, tape []Direction, done func(K) bool) int {
	if len(tape) == 0 {
		return 0
	}
	cur := slices.Clone(starts)
	allDone := func() bool {
		for _, k := range cur {
			if !done(k) {
				return false
			}
		}
		return true
	}
	steps := 0
	for !allDone() {
		d := tape[steps%len(tape)]
		for i, k := range cur {
			next, ok := g.Next(k, d)
			if !ok {
				return steps
			}
			cur[i] = next
		}
		steps++
	}
	return steps
}

// CycleSteps is the LCM of the Walk lengths from each start. It equals
// WalkAll when each walker's path loops back to its first terminal node
// after the same number of steps, which is how the puzzle inputs are
// built, and it is much faster.
func (g *Graph[K]) CycleSteps(starts []K, tape []Direction, done func(K) bool) int {
	if len(starts) == 0 {
		return 0
	}
	lengths := make([]int, len(starts))
	for i, s := range starts {
		lengths[i] = g.Walk(s, tape, done)
		if lengths[i] == 0 {
			return 0
		}
	}
	return LCM(lengths...)
}

func InitMap[K comparable, V any](m *map[K]V) {
	if *m == nil {
		*m = make(map[K]V)
	}
}
