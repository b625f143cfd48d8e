package main

import "github.com/maisem/aoc"

/*
want=13

Card 1: 41 48 83 86 17 | 83 86  6 31  9 48 53
Card 2: 13 32 20 16 61 | 61 30 68 82 17 32 24 19
Card 3:  1 21 53 59 44 | 69 82 63 72 16 21 14  1
Card 4: 41 92 73 84 69 | 59 84 76 51 58  5 54 83
Card 5: 87 83 26 28 32 | 88 30 70 12 93 22 82 36
Card 6: 31 18 13 56 72 | 74 77 10 23 35 67 36 11
*/
func (s solver) D4p1() any {
	sum := 0
	s.ForLines(func(line string) {
		sum += parseCard(line).points()
	})
	return sum
}

// want=30
func (s solver) D4p2() any {
	var cards []card
	s.ForLines(func(line string) {
		cards = append(cards, parseCard(line))
	})
	return countWonCards(cards)
}

type card struct {
	Winning map[int]bool
	Owned   []int
}

// matches is how many owned numbers are winning numbers.
func (c card) matches() int {
	n := 0
	for _, v := range c.Owned {
		if c.Winning[v] {
			n++
		}
	}
	return n
}

func (c card) points() int {
	m := c.matches()
	if m == 0 {
		return 0
	}
	return 1 << (m - 1)
}

// countWonCards returns the total number of cards held once every card with
// m matches has won a copy of each of the m cards after it, once per copy.
func countWonCards(cards []card) int {
	copies := make([]int, len(cards))
	for i := range copies {
		copies[i] = 1
	}
	for i, c := range cards {
		for j := i + 1; j <= i+c.matches() && j < len(cards); j++ {
			copies[j] += copies[i]
		}
	}
	return aoc.Sum(copies...)
}

// parseCard parses "Card 1: 41 48 | 83 86  6".
func parseCard(line string) card {
	_, nums := aoc.Cut(line, ": ")
	winning, owned := aoc.Cut(nums, " | ")
	c := card{
		Winning: map[int]bool{},
		Owned:   aoc.IntFields(owned),
	}
	for _, n := range aoc.IntFields(winning) {
		c.Winning[n] = true
	}
	return c
}
