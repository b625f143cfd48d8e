package main

import "github.com/maisem/aoc"

/*
want=4361

467..114..
...*......
..35..633.
......#...
617*......
.....+.58.
..592.....
......755.
...$.*....
.664.598..
*/
func (s solver) D3p1() any {
	sum := 0
	for _, pn := range partNumbers(s.Grid()) {
		sum += pn.Value
	}
	return sum
}

// want=467835
func (s solver) D3p2() any {
	gears := map[aoc.Pt][]int{}
	for _, pn := range partNumbers(s.Grid()) {
		for p, sym := range pn.Symbols {
			if sym == '*' {
				gears[p] = append(gears[p], pn.Value)
			}
		}
	}
	sum := 0
	for _, nums := range gears {
		if len(nums) == 2 {
			sum += nums[0] * nums[1]
		}
	}
	return sum
}

// partNumber is a number in the schematic next to at least one symbol.
type partNumber struct {
	Value   int
	Symbols map[aoc.Pt]byte // adjacent symbols by position
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isSymbol(c byte) bool {
	return c != '.' && !isDigit(c)
}

// partNumbers scans every row for runs of digits and keeps the ones that
// touch a symbol, diagonals included.
func partNumbers(g aoc.Grid[byte]) []partNumber {
	var out []partNumber
	for y, row := range g {
		for x := 0; x < len(row); {
			if !isDigit(row[x]) {
				x++
				continue
			}
			pn := partNumber{Symbols: map[aoc.Pt]byte{}}
			for ; x < len(row) && isDigit(row[x]); x++ {
				pn.Value = pn.Value*10 + int(row[x]-'0')
				aoc.Pt{X: x, Y: y}.ForNeighbors(func(n aoc.Pt) bool {
					if c, ok := g.AtOk(n); ok && isSymbol(c) {
						pn.Symbols[n] = c
					}
					return true
				})
			}
			if len(pn.Symbols) > 0 {
				out = append(out, pn)
			}
		}
	}
	return out
}
