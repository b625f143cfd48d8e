package aoc

import (
	"math"
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPolygonArea(t *testing.T) {
	square := []Pt{
		{X: 0, Y: 0},
		{X: 5, Y: 0},
		{X: 5, Y: 5},
		{X: 0, Y: 5},
		{X: 0, Y: 0},
	}
	if got := PolygonArea(square); got != 25 {
		t.Errorf("PolygonArea(%v) = %v, want 25", square, got)
	}
	// 4x4 interior points inside a 5x5 square with corners on lattice points.
	if got := PolygonInteriorPoints(square); got != 16 {
		t.Errorf("PolygonInteriorPoints(%v) = %v, want 16", square, got)
	}
}

func TestGCDLCM(t *testing.T) {
	gcds := []struct {
		a, b, want int
	}{
		{12, 8, 4},
		{105, 252, 21},
		{252, 105, 21},
		{7, 0, 7},
	}
	for _, tt := range gcds {
		if got := GCD(tt.a, tt.b); got != tt.want {
			t.Errorf("GCD(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}

	lcms := []struct {
		in   []int
		want int
	}{
		{[]int{4, 6}, 12},
		{[]int{6, 4}, 12},
		{[]int{2, 3, 4}, 12},
		{[]int{9}, 9},
	}
	for _, tt := range lcms {
		if got := LCM(tt.in...); got != tt.want {
			t.Errorf("LCM(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
	if got := LCM[uint64](1<<40, 3<<40); got != 3<<40 {
		t.Errorf("LCM(1<<40, 3<<40) = %v, want %v", got, uint64(3<<40))
	}
}

func TestConcat(t *testing.T) {
	if got := Concat(123, 456); got != 123456 {
		t.Errorf("Concat(123, 456) = %v, want 123456", got)
	}
	if got := Concat[uint8](2, 5); got != 25 {
		t.Errorf("Concat(2, 5) = %v, want 25", got)
	}
	defer func() {
		if recover() == nil {
			t.Error("Concat[int8](12, 34) did not panic")
		}
	}()
	Concat[int8](12, 34)
}

func TestFields(t *testing.T) {
	if diff := cmp.Diff([]int{1, 2, 3}, IntFields("1 2 3")); diff != "" {
		t.Errorf("IntFields mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{83, 86, 6}, IntFields("  83 86  6 ")); diff != "" {
		t.Errorf("IntFields mismatch (-want +got):\n%s", diff)
	}
	if got := IntFields(""); len(got) != 0 {
		t.Errorf("IntFields(\"\") = %v, want empty", got)
	}
	floats := Fields("0.5 1e3", func(s string) (float64, error) { return strconv.ParseFloat(s, 64) })
	if diff := cmp.Diff([]float64{0.5, 1000}, floats); diff != "" {
		t.Errorf("Fields mismatch (-want +got):\n%s", diff)
	}

	defer func() {
		if recover() == nil {
			t.Error("IntFields(\"1 x\") did not panic")
		}
	}()
	IntFields("1 x")
}

func TestDigits(t *testing.T) {
	if diff := cmp.Diff([]int{1, 2, 0, 9}, Digits("1209")); diff != "" {
		t.Errorf("Digits mismatch (-want +got):\n%s", diff)
	}
	defer func() {
		if recover() == nil {
			t.Error("Digit('x') did not panic")
		}
	}()
	Digit('x')
}

func TestSolveQuad(t *testing.T) {
	// t^2 - 30t + 200 = (t-10)(t-20)
	hi, lo := SolveQuad(1, -30, 200)
	if hi != 20 || lo != 10 {
		t.Errorf("SolveQuad(1, -30, 200) = %v, %v; want 20, 10", hi, lo)
	}
	hi, lo = SolveQuad(2.0, 0, -8)
	if math.Abs(hi-2) > 1e-9 || math.Abs(lo+2) > 1e-9 {
		t.Errorf("SolveQuad(2, 0, -8) = %v, %v; want 2, -2", hi, lo)
	}
	defer func() {
		if recover() == nil {
			t.Error("SolveQuad(1, 0, 1) did not panic")
		}
	}()
	SolveQuad(1, 0, 1)
}

func TestExtrapolate(t *testing.T) {
	tests := []struct {
		in            []int
		next, previous int
	}{
		{[]int{0, 3, 6, 9, 12, 15}, 18, -3},
		{[]int{1, 3, 6, 10, 15, 21}, 28, 0},
		{[]int{10, 13, 16, 21, 30, 45}, 68, 5},
		{[]int{7}, 7, 7},
	}
	for _, tt := range tests {
		if got := Extrapolate(tt.in, true); got != tt.next {
			t.Errorf("Extrapolate(%v, true) = %v, want %v", tt.in, got, tt.next)
		}
		if got := Extrapolate(tt.in, false); got != tt.previous {
			t.Errorf("Extrapolate(%v, false) = %v, want %v", tt.in, got, tt.previous)
		}
	}
}

func TestSumProductAbsDiff(t *testing.T) {
	if got := Sum(1, 2, 3); got != 6 {
		t.Errorf("Sum(1, 2, 3) = %v, want 6", got)
	}
	if got := Product(2, 3, 4); got != 24 {
		t.Errorf("Product(2, 3, 4) = %v, want 24", got)
	}
	if got := Product[int](); got != 1 {
		t.Errorf("Product() = %v, want 1", got)
	}
	if got := AbsDiff[uint](3, 10); got != 7 {
		t.Errorf("AbsDiff(3, 10) = %v, want 7", got)
	}
}
