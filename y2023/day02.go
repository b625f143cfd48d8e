package main

import (
	"fmt"
	"strings"

	"github.com/maisem/aoc"
)

/*
want=8

Game 1: 3 blue, 4 red; 1 red, 2 green, 6 blue; 2 green
Game 2: 1 blue, 2 green; 3 green, 4 blue, 1 red; 8 green, 1 blue
Game 3: 8 green, 6 blue, 20 red; 5 blue, 4 red, 13 green; 5 green, 1 red
Game 4: 1 green, 3 red, 6 blue; 3 green, 6 red; 3 green, 15 blue, 14 red
Game 5: 6 red, 1 blue, 3 green; 2 blue, 1 red, 2 green
*/
func (s solver) D2p1() any {
	bag := cubeSet{R: 12, G: 13, B: 14}
	sum := 0
	s.ForLines(func(line string) {
		g := parseGame(line)
		if g.possibleWith(bag) {
			sum += g.ID
		}
	})
	return sum
}

// want=2286
func (s solver) D2p2() any {
	sum := 0
	s.ForLines(func(line string) {
		sum += parseGame(line).minimumSet().power()
	})
	return sum
}

type cubeSet struct {
	R, G, B int
}

func (c cubeSet) power() int {
	return c.R * c.G * c.B
}

func (c cubeSet) fits(in cubeSet) bool {
	return c.R <= in.R && c.G <= in.G && c.B <= in.B
}

type game struct {
	ID       int
	Revealed []cubeSet
}

func (g game) possibleWith(bag cubeSet) bool {
	for _, set := range g.Revealed {
		if !set.fits(bag) {
			return false
		}
	}
	return true
}

// minimumSet is the fewest cubes of each color the game could have been
// played with.
func (g game) minimumSet() cubeSet {
	var m cubeSet
	for _, set := range g.Revealed {
		m = cubeSet{max(m.R, set.R), max(m.G, set.G), max(m.B, set.B)}
	}
	return m
}

// parseGame parses "Game 1: 3 blue, 4 red; 1 red, 2 green".
func parseGame(line string) game {
	head, sets := aoc.Cut(line, ": ")
	g := game{ID: aoc.Int(aoc.TrimPrefix(head, "Game "))}
	for _, set := range strings.Split(sets, "; ") {
		g.Revealed = append(g.Revealed, parseCubeSet(set))
	}
	return g
}

func parseCubeSet(s string) cubeSet {
	var c cubeSet
	for _, part := range strings.Split(s, ", ") {
		n, color := aoc.Cut(part, " ")
		switch color {
		case "red":
			c.R = aoc.Int(n)
		case "green":
			c.G = aoc.Int(n)
		case "blue":
			c.B = aoc.Int(n)
		default:
			panic(fmt.Sprintf("unknown color %q", color))
		}
	}
	return c
}
