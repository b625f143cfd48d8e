package aoc

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// Number is a type that can be used in math functions.
type Number interface {
	constraints.Float | constraints.Integer
}

// Digit returns the digit value of the rune.
// It panics if r is not a decimal digit.
func Digit(r rune) int {
	if r < '0' || r > '9' {
		panic(fmt.Sprintf("not a digit: %q", r))
	}
	return int(r - '0')
}

// Digits returns the individual digits of the string.
func Digits(line string) []int {
	var in []int
	for _, c := range line {
		in = append(in, Digit(c))
	}
	return in
}

// Int returns the int value of the string, ignoring surrounding space.
func Int(s string) int {
	return MustGet(strconv.Atoi(strings.TrimSpace(s)))
}

// Ints returns the int values of the strings.
func Ints(s ...string) []int {
	out := make([]int, 0, len(s))
	for _, v := range s {
		out = append(out, Int(v))
	}
	return out
}

// Fields splits s around runs of whitespace and parses every field with
// parse. It panics on the first field parse rejects.
func Fields[T any](s string, parse func(string) (T, error)) []T {
	fields := strings.Fields(s)
	out := make([]T, 0, len(fields))
	for _, f := range fields {
		v, err := parse(f)
		if err != nil {
			panic(fmt.Sprintf("parsing field %q: %v", f, err))
		}
		out = append(out, v)
	}
	return out
}

// IntFields returns the whitespace separated integers in s.
func IntFields(s string) []int {
	return Fields(s, strconv.Atoi)
}

// Concat returns the number whose decimal digits are those of a followed by
// those of b, e.g. Concat(123, 456) == 123456.
func Concat[T constraints.Integer](a, b T) T {
	s := fmt.Sprint(a) + fmt.Sprint(b)
	if a < 0 || b < 0 {
		panic(fmt.Sprintf("concat of negative numbers: %v, %v", a, b))
	}
	n := MustGet(strconv.ParseUint(s, 10, 64))
	if T(n) < 0 || uint64(T(n)) != n {
		panic(fmt.Sprintf("concat %s overflows %T", s, a))
	}
	return T(n)
}

// Sum returns the sum of the numbers.
func Sum[T Number](nums ...T) T {
	var sum T
	for _, v := range nums {
		sum += v
	}
	return sum
}

// Product returns the product of the numbers, 1 for none.
func Product[T Number](nums ...T) T {
	prod := T(1)
	for _, v := range nums {
		prod *= v
	}
	return prod
}

// AbsDiff returns the absolute difference between x and y.
func AbsDiff[T Number](x, y T) T {
	if x > y {
		return x - y
	}
	return y - x
}

// GCD returns the greatest common divisor of a and b.
func GCD[T constraints.Integer](a, b T) T {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// LCM returns the least common multiple of the integers.
// It panics if there are none.
func LCM[T constraints.Integer](integers ...T) T {
	if len(integers) == 0 {
		panic("LCM of no integers")
	}
	result := integers[0]
	for _, n := range integers[1:] {
		result = result / GCD(result, n) * n
	}
	return result
}

// SolveQuad returns the roots of the quadratic equation ax^2 + bx + c = 0,
// the one using +sqrt(discriminant) first. It panics if there are no real
// roots.
func SolveQuad[T Number](a, b, c T) (float64, float64) {
	fa, fb, fc := float64(a), float64(b), float64(c)
	d := fb*fb - 4*fa*fc
	if d < 0 {
		panic(fmt.Sprintf("no real roots for %vx^2 + %vx + %v", a, b, c))
	}
	d = math.Sqrt(d)
	return (-fb + d) / (2 * fa), (-fb - d) / (2 * fa)
}

// Extrapolate returns the next value in the sequence x.
// If forward is true, it extrapolates the next value, otherwise
// it extrapolates the previous value in the sequence.
func Extrapolate[T Number](x []T, forward bool) T {
	if len(x) == 0 {
		return 0
	}
	diffs := make([]T, 0, len(x)-1)
	allZero := true
	for i := 1; i < len(x); i++ {
		d := x[i] - x[i-1]
		diffs = append(diffs, d)
		if d != 0 {
			allZero = false
		}
	}
	ix := 0
	if forward {
		ix = len(x) - 1
	}
	if allZero {
		return x[ix]
	}
	if forward {
		return x[ix] + Extrapolate(diffs, forward)
	}
	return x[ix] - Extrapolate(diffs, forward)
}

// PolygonArea returns the area of the closed polygon defined by pts (first
// point repeated at the end), using the shoelace formula.
func PolygonArea(pts []Pt) int {
	var area int
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		area += a.X*b.Y - a.Y*b.X
	}
	if area < 0 {
		area = -area
	}
	return area / 2
}

// PolygonInteriorPoints returns the number of integer points strictly inside
// the closed polygon pts whose consecutive points are axis aligned.
func PolygonInteriorPoints(pts []Pt) int {
	// Pick's theorem: A = i + b/2 - 1.
	var b int
	for i := 1; i < len(pts); i++ {
		b += pts[i-1].MDist(pts[i])
	}
	return PolygonArea(pts) - b/2 + 1
}
