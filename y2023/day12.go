package main

import (
	"fmt"
	"strings"

	"github.com/maisem/aoc"
	"tailscale.com/util/deephash"
)

/*
want=21

???.### 1,1,3
.??..??...?##. 1,1,3
?#?#?#?#?#?#?#? 1,3,1,6
????.#...#... 4,1,1
????.######..#####. 1,6,5
?###???????? 3,2,1
*/
func (s solver) D12p1() any {
	return countAll(parseSpringRows(s.Lines()))
}

// want=525152
func (s solver) D12p2() any {
	rows := parseSpringRows(s.Lines())
	for i, r := range rows {
		rows[i] = r.unfold(5)
	}
	return countAll(rows)
}

// springRow is a condition record: '#' damaged, '.' operational, '?'
// unknown, plus the sizes of the contiguous damaged groups.
type springRow struct {
	Springs string
	Groups  []int
}

func (r springRow) unfold(n int) springRow {
	springs := make([]string, n)
	var groups []int
	for i := range springs {
		springs[i] = r.Springs
		groups = append(groups, r.Groups...)
	}
	return springRow{Springs: strings.Join(springs, "?"), Groups: groups}
}

func parseSpringRows(lines []string) []springRow {
	rows := make([]springRow, 0, len(lines))
	for _, line := range lines {
		springs, groups := aoc.Cut(line, " ")
		if i := strings.IndexFunc(springs, func(r rune) bool { return !strings.ContainsRune("#.?", r) }); i >= 0 {
			panic(fmt.Sprintf("unknown spring %q in %q", springs[i], line))
		}
		rows = append(rows, springRow{
			Springs: springs,
			Groups:  aoc.Ints(strings.Split(groups, ",")...),
		})
	}
	return rows
}

// countAll sums the arrangements of every row, counting rows in parallel.
func countAll(rows []springRow) int {
	return aoc.ParallelMapFold(rows, func(r springRow) int {
		return newArrangementCounter().count(r)
	}, func(sum, n int) int {
		return sum + n
	}, 0)
}

// arrangementCounter counts the ways the unknown springs of a row can be
// filled in to match its groups. It remembers results for every remaining
// (springs, groups) suffix it has seen. It is not safe for concurrent use.
type arrangementCounter struct {
	memo map[deephash.Sum]int
}

var hashSpringRow = deephash.HasherForType[springRow]()

func newArrangementCounter() *arrangementCounter {
	return &arrangementCounter{memo: make(map[deephash.Sum]int)}
}

func (c *arrangementCounter) count(r springRow) int {
	key := hashSpringRow(&r)
	if n, ok := c.memo[key]; ok {
		return n
	}
	n := c.countUncached(r)
	c.memo[key] = n
	return n
}

func (c *arrangementCounter) countUncached(r springRow) int {
	springs := strings.TrimLeft(r.Springs, ".")
	if springs == "" {
		if len(r.Groups) == 0 {
			return 1
		}
		return 0
	}
	if springs[0] == '?' {
		damaged := springRow{Springs: "#" + springs[1:], Groups: r.Groups}
		operational := springRow{Springs: springs[1:], Groups: r.Groups}
		return c.count(damaged) + c.count(operational)
	}

	// springs[0] is '#': the first group must start here.
	if len(r.Groups) == 0 {
		return 0
	}
	g := r.Groups[0]
	if len(springs) < g || strings.ContainsRune(springs[:g], '.') {
		return 0
	}
	rest := springs[g:]
	if rest != "" {
		if rest[0] == '#' {
			return 0
		}
		// The spring after the group must be operational.
		rest = rest[1:]
	}
	return c.count(springRow{Springs: rest, Groups: r.Groups[1:]})
}
