// Command y2023 runs the Advent of Code 2023 solutions.
//
// Each day lives in its own dayNN.go file as methods D{day}p{part} on
// solver. The doc comment of each method declares the example input and
// answer from the puzzle text, which are checked before the real input
// (read from <inputs>/2023/<day>.input) is solved.
package main

import (
	"embed"

	"github.com/maisem/aoc"
)

func main() {
	aoc.Run(2023, source, &solver{})
}

//go:embed *.go
var source embed.FS

type solver struct {
	*aoc.Puzzle
}
