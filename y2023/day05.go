package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/maisem/aoc"
)

/*
want=35

seeds: 79 14 55 13

seed-to-soil map:
50 98 2
52 50 48

soil-to-fertilizer map:
0 15 37
37 52 2
39 0 15

fertilizer-to-water map:
49 53 8
0 11 42
42 0 7
57 7 4

water-to-light map:
88 18 7
18 25 70

light-to-temperature map:
45 77 23
81 45 19
68 64 13

temperature-to-humidity map:
0 69 1
1 0 69

humidity-to-location map:
60 56 37
56 93 4
*/
func (s solver) D5p1() any {
	a := parseAlmanac(s.String())
	lowest := -1
	for _, seed := range a.Seeds {
		loc := a.location(seed)
		s.Debugf("seed %d -> location %d", seed, loc)
		if lowest == -1 || loc < lowest {
			lowest = loc
		}
	}
	return lowest
}

// want=46
func (s solver) D5p2() any {
	a := parseAlmanac(s.String())
	spans := a.seedSpans()
	for _, m := range a.Maps {
		spans = m.mapSpans(spans)
		s.Debugf("%s: %d spans", m.Name, len(spans))
	}
	return slices.MinFunc(spans, func(a, b span) int { return a.Start - b.Start }).Start
}

// span is the half open interval [Start, End).
type span struct {
	Start, End int
}

type mapRange struct {
	Dst, Src, Len int
}

// almanacMap is one "x-to-y map" block. Ranges are sorted by Src and do not
// overlap. Values outside every range map to themselves.
type almanacMap struct {
	Name   string
	Ranges []mapRange
}

func (m almanacMap) lookup(n int) int {
	for _, r := range m.Ranges {
		if n >= r.Src && n < r.Src+r.Len {
			return n - r.Src + r.Dst
		}
	}
	return n
}

// mapSpans maps every value of every span in in, splitting spans at range
// boundaries. The output is not sorted.
func (m almanacMap) mapSpans(in []span) []span {
	var out []span
	for _, sp := range in {
		cur := sp.Start
		for _, r := range m.Ranges {
			if cur >= sp.End || r.Src >= sp.End {
				break
			}
			rEnd := r.Src + r.Len
			if rEnd <= cur {
				continue
			}
			if r.Src > cur {
				out = append(out, span{cur, r.Src})
				cur = r.Src
			}
			end := min(rEnd, sp.End)
			out = append(out, span{cur - r.Src + r.Dst, end - r.Src + r.Dst})
			cur = end
		}
		if cur < sp.End {
			out = append(out, span{cur, sp.End})
		}
	}
	return out
}

type almanac struct {
	Seeds []int
	Maps  []almanacMap
}

func (a almanac) location(seed int) int {
	n := seed
	for _, m := range a.Maps {
		n = m.lookup(n)
	}
	return n
}

// seedSpans reads the seed list as (start, length) pairs.
func (a almanac) seedSpans() []span {
	if len(a.Seeds)%2 != 0 {
		panic(fmt.Sprintf("odd number of seeds: %d", len(a.Seeds)))
	}
	var out []span
	for i := 0; i < len(a.Seeds); i += 2 {
		out = append(out, span{a.Seeds[i], a.Seeds[i] + a.Seeds[i+1]})
	}
	return out
}

func parseAlmanac(text string) almanac {
	blocks := strings.Split(text, "\n\n")
	a := almanac{Seeds: aoc.IntFields(aoc.TrimPrefix(blocks[0], "seeds:"))}
	for _, block := range blocks[1:] {
		lines := strings.Split(strings.TrimSpace(block), "\n")
		m := almanacMap{Name: strings.TrimSuffix(lines[0], " map:")}
		for _, line := range lines[1:] {
			f := aoc.IntFields(line)
			if len(f) != 3 {
				panic(fmt.Sprintf("bad map range %q", line))
			}
			m.Ranges = append(m.Ranges, mapRange{Dst: f[0], Src: f[1], Len: f[2]})
		}
		slices.SortFunc(m.Ranges, func(a, b mapRange) int { return a.Src - b.Src })
		a.Maps = append(a.Maps, m)
	}
	return a
}
