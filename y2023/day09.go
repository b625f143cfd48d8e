package main

import "github.com/maisem/aoc"

/*
want=114

0 3 6 9 12 15
1 3 6 10 15 21
10 13 16 21 30 45
*/
func (s solver) D9p1() any {
	sum := 0
	s.ForLines(func(line string) {
		sum += aoc.Extrapolate(aoc.IntFields(line), true)
	})
	return sum
}

// want=2
func (s solver) D9p2() any {
	sum := 0
	s.ForLines(func(line string) {
		sum += aoc.Extrapolate(aoc.IntFields(line), false)
	})
	return sum
}
