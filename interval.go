package aoc

import "fmt"

// Interval is the half-open range [Start, End).
type Interval struct {
	Start, End int
}

// IntervalOf returns the interval of length n starting at start. A
// negative length yields an empty interval.
func IntervalOf(start, n int) Interval {
	return Interval{start, start + max(n, 0)}
}

func (i Interval) Len() int {
	return max(i.End-i.Start, 0)
}

func (i Interval) IsEmpty() bool {
	return i.Start >= i.End
}

func (i Interval) Contains(v int) bool {
	return v >= i.Start && v < i.End
}

// Chunks splits i into consecutive intervals holding at most n values
// each. It returns nil for an empty interval.
func (i Interval) Chunks(n int) []Interval {
	if i.IsEmpty() {
		return nil
	}
	if n <= 0 {
		return []Interval{i}
	}
	out := make([]Interval, 0, (i.Len()+n-1)/n)
	for s := i.Start; s < i.End; s += n {
		out = append(out, Interval{s, min(s+n, i.End)})
	}
	return out
}

func (i Interval) String() string {
	return fmt.Sprintf("[%d,%d)", i.Start, i.End)
}
