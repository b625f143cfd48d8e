package main

import (
	"fmt"
	"strings"

	"github.com/maisem/aoc"
)

/*
want=2

RL

AAA = (BBB, CCC)
BBB = (DDD, EEE)
CCC = (ZZZ, GGG)
DDD = (DDD, DDD)
EEE = (EEE, EEE)
GGG = (GGG, GGG)
ZZZ = (ZZZ, ZZZ)
*/
/*
want=6

LLR

AAA = (BBB, BBB)
BBB = (AAA, ZZZ)
ZZZ = (ZZZ, ZZZ)
*/
func (s solver) D8p1() any {
	return parseNetwork(s.String()).steps("AAA", func(node string) bool {
		return node == "ZZZ"
	})
}

/*
want=6

LR

11A = (11B, XXX)
11B = (XXX, 11Z)
11Z = (11B, XXX)
22A = (22B, XXX)
22B = (22C, 22C)
22C = (22Z, 22Z)
22Z = (22B, 22B)
XXX = (XXX, XXX)
*/
func (s solver) D8p2() any {
	n := parseNetwork(s.String())
	var counts []int
	for _, start := range n.Starts {
		c := n.steps(start, func(node string) bool {
			return strings.HasSuffix(node, "Z")
		})
		s.Debugf("%s reaches a Z node after %d steps", start, c)
		counts = append(counts, c)
	}
	return aoc.LCM(counts...)
}

type network struct {
	Instructions string
	Nodes        map[string][2]string // left, right
	Starts       []string             // nodes ending in A, in input order
}

// steps follows the instructions, repeating them as needed, from start until
// done reports true.
func (n network) steps(start string, done func(string) bool) int {
	node := start
	count := 0
	for !done(node) {
		next, ok := n.Nodes[node]
		if !ok {
			panic(fmt.Sprintf("unknown node %q", node))
		}
		switch dir := n.Instructions[count%len(n.Instructions)]; dir {
		case 'L':
			node = next[0]
		case 'R':
			node = next[1]
		default:
			panic(fmt.Sprintf("unknown instruction %q", dir))
		}
		count++
	}
	return count
}

func parseNetwork(text string) network {
	instructions, rest := aoc.Cut(text, "\n\n")
	n := network{
		Instructions: strings.TrimSpace(instructions),
		Nodes:        map[string][2]string{},
	}
	for _, line := range strings.Split(strings.TrimSpace(rest), "\n") {
		from, to := aoc.Cut(line, " = ")
		left, right := aoc.Cut(strings.TrimSuffix(aoc.TrimPrefix(to, "("), ")"), ", ")
		n.Nodes[from] = [2]string{left, right}
		if strings.HasSuffix(from, "A") {
			n.Starts = append(n.Starts, from)
		}
	}
	if len(n.Instructions) == 0 {
		panic("no instructions")
	}
	return n
}
