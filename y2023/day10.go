package main

import (
	"fmt"

	"github.com/maisem/aoc"
)

/*
want=4

.....
.S-7.
.|.|.
.L-J.
.....
*/
/*
want=8

..F7.
.FJ|.
SJ.L7
|F--J
LJ...
*/
func (s solver) D10p1() any {
	return len(parseMaze(s.Grid()).trace().Order) / 2
}

/*
want=4

...........
.S-------7.
.|F-----7|.
.||.....||.
.||.....||.
.|L-7.F-J|.
.|..|.|..|.
.L--J.L--J.
...........
*/
/*
want=4

..........
.S------7.
.|F----7|.
.||....||.
.||....||.
.|L-7F-J|.
.|..||..|.
.L--JL--J.
..........
*/
/*
want=8

.F----7F7F7F7F-7....
.|F--7||||||||FJ....
.||.FJ||||||||L7....
FJL7L7LJLJ||LJ.L-7..
L--J.L7...LJS7F-7L7.
....F-J..F7FJ|L7L7L7
....L7.F7||L7|.L7L7|
.....|FJLJ|FJ|F7|.LJ
....FJL-7.||.||||...
....L---J.LJ.LJLJ...
*/
/*
want=10

FF7FSF7F7F7F7F7F---7
L|LJ||||||||||||F--J
FL-7LJLJ||||||LJL-77
F--JF--7||LJLJ7F7FJ-
L---JF-JLJ.||-FJLJJ7
|F|F-JF---7F7-L7L|7|
|FFJF7L7F-JF7|JL---7
7-L-JL7||F7|L7F-7F7|
L.L7LFJ|||||FJL7||LJ
L7JLJL-JLJLJL--JLJ.L
*/
func (s solver) D10p2() any {
	m := parseMaze(s.Grid())
	l := m.trace()
	s.Debugf("loop of %d tiles through %v", len(l.Order), m.Start)
	return l.enclosed(m.Grid)
}

// pipeSides returns the two sides a pipe tile connects. ok is false for
// ground and the start tile.
func pipeSides(c byte) (a, b aoc.Direction, ok bool) {
	switch c {
	case '|':
		return aoc.Up, aoc.Down, true
	case '-':
		return aoc.Left, aoc.Right, true
	case 'L':
		return aoc.Up, aoc.Right, true
	case 'J':
		return aoc.Up, aoc.Left, true
	case '7':
		return aoc.Left, aoc.Down, true
	case 'F':
		return aoc.Down, aoc.Right, true
	case '.', 'S':
		return 0, 0, false
	}
	panic(fmt.Sprintf("unknown tile %q", c))
}

type maze struct {
	Grid  aoc.Grid[byte]
	Start aoc.Pt
}

func parseMaze(g aoc.Grid[byte]) maze {
	// Validate every tile up front.
	g.ForEach(func(_ aoc.Pt, c byte) { pipeSides(c) })
	start, ok := g.Find(func(c byte) bool { return c == 'S' })
	if !ok {
		panic("no start tile")
	}
	return maze{Grid: g, Start: start}
}

// startSides returns the two sides of the start tile whose neighbours
// connect back to it, in Up, Right, Down, Left order.
func (m maze) startSides() (aoc.Direction, aoc.Direction) {
	var sides []aoc.Direction
	for _, d := range aoc.Directions {
		c, ok := m.Grid.AtOk(m.Start.Add(d.Delta()))
		if !ok {
			continue
		}
		if a, b, ok := pipeSides(c); ok && (a == d.Opposite() || b == d.Opposite()) {
			sides = append(sides, d)
		}
	}
	if len(sides) != 2 {
		panic(fmt.Sprintf("start %v connects to %d pipes, want 2", m.Start, len(sides)))
	}
	return sides[0], sides[1]
}

// loopTile records how the traversal passed through a tile: the side it
// entered through and the side it left through.
type loopTile struct {
	From, To aoc.Direction
}

type pipeLoop struct {
	Order []aoc.Pt // in traversal order, starting at S
	Tiles map[aoc.Pt]loopTile
}

// trace follows the loop from the start tile until it returns to it.
func (m maze) trace() pipeLoop {
	first, last := m.startSides()
	l := pipeLoop{
		Order: []aoc.Pt{m.Start},
		Tiles: map[aoc.Pt]loopTile{m.Start: {From: last, To: first}},
	}
	path := aoc.Path{Pt: m.Start, Dir: first}
	for {
		next, ok := m.Grid.Move(path)
		if !ok {
			panic(fmt.Sprintf("loop leaves the grid at %v going %v", path.Pt, path.Dir))
		}
		if next.Pt == m.Start {
			return l
		}
		from := next.Dir.Opposite()
		a, b, ok := pipeSides(m.Grid.At(next.Pt))
		var to aoc.Direction
		switch {
		case !ok:
			panic(fmt.Sprintf("loop runs into ground at %v", next.Pt))
		case a == from:
			to = b
		case b == from:
			to = a
		default:
			panic(fmt.Sprintf("pipe at %v does not connect %v", next.Pt, from))
		}
		l.Order = append(l.Order, next.Pt)
		l.Tiles[next.Pt] = loopTile{From: from, To: to}
		path = aoc.Path{Pt: next.Pt, Dir: to}
	}
}

// enclosed counts the tiles not on the loop with a non-zero winding number.
// Scanning a row from the left, every loop tile connected upwards is a
// crossing of the row's upper edge: +1 if the loop goes up through it, -1 if
// it comes down.
func (l pipeLoop) enclosed(g aoc.Grid[byte]) int {
	inside := 0
	for y, row := range g {
		winding := 0
		for x := range row {
			t, onLoop := l.Tiles[aoc.Pt{X: x, Y: y}]
			switch {
			case !onLoop:
				if winding != 0 {
					inside++
				}
			case t.To == aoc.Up:
				winding++
			case t.From == aoc.Up:
				winding--
			}
		}
	}
	return inside
}
