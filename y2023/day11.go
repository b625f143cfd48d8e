package main

import (
	"bytes"

	"github.com/maisem/aoc"
)

/*
want=374

...#......
.......#..
#.........
..........
......#...
.#........
.........#
..........
.......#..
#...#.....
*/
func (s solver) D11p1() any {
	return galaxyDistances(s.Grid(), 2)
}

// want=82000210
func (s solver) D11p2() any {
	return galaxyDistances(s.Grid(), 1_000_000)
}

// expansionOffsets returns, for every row of g, how far it moves once each
// row without a galaxy before it has grown to factor rows.
func expansionOffsets(g aoc.Grid[byte], factor int) []int {
	offsets := make([]int, len(g))
	shift := 0
	for y, row := range g {
		offsets[y] = shift
		if !bytes.ContainsRune(row, '#') {
			shift += factor - 1
		}
	}
	return offsets
}

// galaxyDistances returns the sum of the manhattan distances between every
// pair of galaxies after expanding the universe by factor.
func galaxyDistances(g aoc.Grid[byte], factor int) int {
	rowOff := expansionOffsets(g, factor)
	colOff := expansionOffsets(g.Transpose(), factor)

	var galaxies []aoc.Pt
	g.ForEach(func(p aoc.Pt, c byte) {
		if c == '#' {
			galaxies = append(galaxies, aoc.Pt{X: p.X + colOff[p.X], Y: p.Y + rowOff[p.Y]})
		}
	})

	sum := 0
	for i, a := range galaxies {
		for _, b := range galaxies[i+1:] {
			sum += a.MDist(b)
		}
	}
	return sum
}
