package aoc

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/goleak"
)

func TestParallel(t *testing.T) {
	defer goleak.VerifyNone(t)

	in := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	got := Parallel(in, func(v int) int { return v * v })
	want := []int{1, 4, 9, 16, 25, 36, 49, 64, 81, 100}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Parallel mismatch (-want +got):\n%s", diff)
	}
	if got := Parallel([]int{}, func(v int) int { return v }); len(got) != 0 {
		t.Errorf("Parallel(empty) = %v", got)
	}
}

func TestParallelMapFold(t *testing.T) {
	defer goleak.VerifyNone(t)

	got := ParallelMapFold([]string{"a", "bb", "ccc"}, func(s string) int {
		return len(s)
	}, func(acc, n int) int {
		return acc + n
	}, 0)
	if got != 6 {
		t.Errorf("ParallelMapFold = %v, want 6", got)
	}
}
