package main

import (
	"math"
	"strings"

	"github.com/maisem/aoc"
)

/*
want=288

Time:      7  15   30
Distance:  9  40  200
*/
func (s solver) D6p1() any {
	var ways []int
	for _, r := range parseRaces(s.Lines()) {
		ways = append(ways, r.waysToWin())
	}
	return aoc.Product(ways...)
}

// want=71503
func (s solver) D6p2() any {
	races := parseRaces(s.Lines())
	merged := aoc.Fold(races[1:], func(a, b race) race {
		return race{Time: aoc.Concat(a.Time, b.Time), Record: aoc.Concat(a.Record, b.Record)}
	}, races[0])
	return merged.waysToWin()
}

type race struct {
	Time, Record int
}

// waysToWin counts the whole button hold times t with t*(Time-t) > Record.
// Those lie strictly between the roots of t^2 - Time*t + Record = 0.
func (r race) waysToWin() int {
	if r.Time*r.Time < 4*r.Record {
		return 0
	}
	hi, lo := aoc.SolveQuad(1, -r.Time, r.Record)
	first := int(math.Floor(lo)) + 1
	last := int(math.Ceil(hi)) - 1
	if last < first {
		return 0
	}
	return last - first + 1
}

func parseRaces(lines []string) []race {
	if len(lines) != 2 {
		panic("want a Time and a Distance line")
	}
	times := aoc.IntFields(aoc.TrimPrefix(lines[0], "Time:"))
	records := aoc.IntFields(aoc.TrimPrefix(strings.TrimSpace(lines[1]), "Distance:"))
	if len(times) != len(records) {
		panic("times and distances differ in length")
	}
	races := make([]race, len(times))
	for i := range times {
		races[i] = race{Time: times[i], Record: records[i]}
	}
	return races
}
