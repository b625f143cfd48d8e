package main

import (
	"fmt"
	"strings"

	"github.com/maisem/aoc"
)

/*
want=142

1abc2
pqr3stu8vwx
a1b2c3d4e5f
treb7uchet
*/
func (s solver) D1p1() any {
	return calibrationSum(s.Lines(), lineDigits)
}

/*
want=281

two1nine
eightwo
abcone2threexyz
xtwone3four
4nineeightseven2
zoneight234
7pqrstsixteen
*/
func (s solver) D1p2() any {
	return calibrationSum(s.Lines(), lineDigitsAndWords)
}

func calibrationSum(lines []string, digits func(string) []int) int {
	sum := 0
	for _, line := range lines {
		sum += calibrationValue(line, digits(line))
	}
	return sum
}

// calibrationValue combines the first and last digit into a two digit
// number.
func calibrationValue(line string, ds []int) int {
	if len(ds) == 0 {
		panic(fmt.Sprintf("no digits in line %q", line))
	}
	return ds[0]*10 + ds[len(ds)-1]
}

func lineDigits(line string) []int {
	var ds []int
	for _, r := range line {
		if r >= '0' && r <= '9' {
			ds = append(ds, aoc.Digit(r))
		}
	}
	return ds
}

var digitWords = [...]string{"one", "two", "three", "four", "five", "six", "seven", "eight", "nine"}

// lineDigitsAndWords returns the digits of line, also counting spelled out
// digits. Words may overlap: "eightwo" is 8, 2.
func lineDigitsAndWords(line string) []int {
	var ds []int
	for i := 0; i < len(line); i++ {
		if c := line[i]; c >= '0' && c <= '9' {
			ds = append(ds, int(c-'0'))
			continue
		}
		for w, word := range digitWords {
			if strings.HasPrefix(line[i:], word) {
				ds = append(ds, w+1)
				break
			}
		}
	}
	return ds
}
