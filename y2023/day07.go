package main

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/maisem/aoc"
)

/*
want=6440

32T3K 765
T55J5 684
KK677 28
KTJJT 220
QQQJA 483
*/
func (s solver) D7p1() any {
	return totalWinnings(s.Lines(), false)
}

// want=5905
func (s solver) D7p2() any {
	return totalWinnings(s.Lines(), true)
}

type handKind int

const (
	highCard handKind = iota
	onePair
	twoPair
	threeOfAKind
	fullHouse
	fourOfAKind
	fiveOfAKind
)

func (k handKind) String() string {
	return [...]string{"high card", "one pair", "two pair", "three of a kind", "full house", "four of a kind", "five of a kind"}[k]
}

const cardOrder = "23456789TJQKA"

type hand struct {
	Cards string
	Bid   int

	kind     handKind
	strength [5]int // per card, used to break ties
}

func newHand(cards string, bid int, jokers bool) hand {
	if len(cards) != 5 {
		panic(fmt.Sprintf("hand %q: want 5 cards", cards))
	}
	h := hand{Cards: cards, Bid: bid}
	for i := 0; i < len(cards); i++ {
		c := cards[i]
		v := strings.IndexByte(cardOrder, c)
		if v < 0 {
			panic(fmt.Sprintf("unknown card %q", c))
		}
		if jokers && c == 'J' {
			v = -1
		}
		h.strength[i] = v
	}
	h.kind = kindOf(cards, jokers)
	return h
}

// kindOf classifies a hand. With jokers, every J joins the largest group of
// the other cards.
func kindOf(cards string, jokers bool) handKind {
	counts := map[rune]int{}
	wild := 0
	for _, c := range cards {
		if jokers && c == 'J' {
			wild++
			continue
		}
		counts[c]++
	}
	groups := make([]int, 0, len(counts))
	for _, n := range counts {
		groups = append(groups, n)
	}
	slices.Sort(groups)
	slices.Reverse(groups)
	if len(groups) == 0 {
		groups = []int{0}
	}
	groups[0] += wild

	switch {
	case groups[0] == 5:
		return fiveOfAKind
	case groups[0] == 4:
		return fourOfAKind
	case groups[0] == 3 && groups[1] == 2:
		return fullHouse
	case groups[0] == 3:
		return threeOfAKind
	case groups[0] == 2 && groups[1] == 2:
		return twoPair
	case groups[0] == 2:
		return onePair
	}
	return highCard
}

func compareHands(a, b hand) int {
	if c := cmp.Compare(a.kind, b.kind); c != 0 {
		return c
	}
	return slices.Compare(a.strength[:], b.strength[:])
}

func totalWinnings(lines []string, jokers bool) int {
	hands := make([]hand, 0, len(lines))
	for _, line := range lines {
		cards, bid := aoc.Cut(line, " ")
		hands = append(hands, newHand(cards, aoc.Int(bid), jokers))
	}
	slices.SortFunc(hands, compareHands)
	total := 0
	for i, h := range hands {
		total += (i + 1) * h.Bid
	}
	return total
}
