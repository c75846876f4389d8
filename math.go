package aoc

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// IsDigit reports whether b is an ASCII digit.
func IsDigit[T byte | rune](b T) bool {
	return b >= '0' && b <= '9'
}

// Digit returns the digit value of the rune, or 0 if it is not a digit.
func Digit(r rune) int {
	if !IsDigit(r) {
		return 0
	}
	return int(r - '0')
}

// SolveQuad returns the roots of the quadratic equation ax^2 + bx + c = 0.
// ok is false if there are no real roots.
func SolveQuad[T Number](a, b, c T) (r1, r2 float64, ok bool) {
	d := float64(b*b - 4*a*c)
	if d < 0 {
		return 0, 0, false
	}
	d = math.Sqrt(d)
	a2 := float64(2 * a)
	return (-float64(b) + d) / a2, (-float64(b) - d) / a2, true
}

// LCM returns the least common multiple of the integers.
func LCM(integers ...int) int {
	if len(integers) == 0 {
		panic("no integers")
	}
	if len(integers) == 1 {
		return integers[0]
	}

	lcm := func(a, b int) int {
		return a * b / GCD(a, b)
	}

	result := 1
	for i := 0; i < len(integers); i++ {
		result = lcm(result, integers[i])
	}

	return result
}

// GCD returns the greatest common divisor of the integers.
func GCD(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// Number is a type that can be used in math functions.
type Number interface {
	constraints.Float | constraints.Integer
}

// Sum returns the sum of the numbers.
func Sum[T Number](nums ...T) T {
	var sum T
	for _, v := range nums {
		sum += v
	}
	return sum
}

// Product returns the product of the numbers, 1 if there are none.
func Product[T Number](nums ...T) T {
	p := T(1)
	for _, v := range nums {
		p *= v
	}
	return p
}

// AbsDiff returns the absolute difference between x and y.
func AbsDiff[T Number](x, y T) T {
	v := x - y
	if v < 0 {
		v = -v
	}
	return v
}

// Int returns the int value of the string. It panics if s is not a
// number; puzzle parsers want Lenient instead.
func Int(s string) int {
	return MustGet(strconv.Atoi(strings.TrimSpace(s)))
}
