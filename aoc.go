// Package aoc runs Advent of Code solvers and holds the small parsing, math
// and grid helpers they share. (grown out of bradfitz/aoc and maisem/aoc)
package aoc

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/exp/maps"
)

// ErrSampleMismatch is returned when a part does not reproduce the answer of
// one of its samples.
var ErrSampleMismatch = errors.New("sample mismatch")

// Puzzle is embedded (as a pointer) in solver structs. It gives the solver
// access to the input of the part currently running.
type Puzzle struct {
	year       int
	day        int
	SampleMode bool

	solver partSolver
	sample sample
	input  []byte
	log    zerolog.Logger
	debug  bool
}

// Input returns the current input: the sample input in sample mode and the
// real puzzle input otherwise.
func (p *Puzzle) Input() []byte {
	if p.SampleMode {
		return []byte(p.sample.input)
	}
	return p.input
}

func (p *Puzzle) Scanner() *bufio.Scanner {
	s := bufio.NewScanner(bytes.NewReader(p.Input()))
	s.Buffer(nil, 1<<20)
	return s
}

// ForLinesY calls onLine for each line of input.
// The y value is the row number, starting with 0.
func (p *Puzzle) ForLinesY(onLine func(y int, line string)) {
	s := p.Scanner()
	y := -1
	for s.Scan() {
		y++
		onLine(y, s.Text())
	}
	MustDo(s.Err())
}

// ForLines calls onLine for each line of input.
func (p *Puzzle) ForLines(onLine func(line string)) {
	p.ForLinesY(func(_ int, line string) { onLine(line) })
}

// Lines returns all lines of input.
func (p *Puzzle) Lines() []string {
	var lines []string
	p.ForLines(func(line string) { lines = append(lines, line) })
	return lines
}

// String returns the whole input with the trailing newline removed.
func (p *Puzzle) String() string {
	return strings.TrimRight(string(p.Input()), "\n")
}

// Grid returns the input as a grid of bytes, one row per line.
func (p *Puzzle) Grid() Grid[byte] {
	var g Grid[byte]
	p.ForLines(func(line string) {
		g = append(g, []byte(line))
	})
	return g
}

func (p *Puzzle) Debug(v ...any) {
	if p.debug {
		p.log.Debug().Str("part", p.solver.Name).Msg(fmt.Sprint(v...))
	}
}

func (p *Puzzle) Debugf(format string, args ...any) {
	if p.debug && p.SampleMode {
		p.log.Debug().Str("part", p.solver.Name).Msgf(format, args...)
	}
}

type day struct {
	day   int
	parts []partSolver
}

type partSolver struct {
	fn   func() any
	Part string
	Name string
}

var methodRx = regexp.MustCompile(`^D(\d+)p(\d+.*)$`)

// extractMethods finds the methods named D{day}p{part} on the struct x
// points to. Each must have the signature func() any.
func extractMethods(x any) (map[int]day, error) {
	v := reflect.ValueOf(x)
	if v.Kind() != reflect.Pointer || v.Elem().Kind() != reflect.Struct {
		return nil, fmt.Errorf("solver: got %T; want pointer to struct", x)
	}
	v = v.Elem()
	vt := v.Type()
	byDays := map[int][]partSolver{}
	for i := 0; i < vt.NumMethod(); i++ {
		name := vt.Method(i).Name
		m := methodRx.FindStringSubmatch(name)
		if m == nil {
			continue
		}
		fn, ok := v.Method(i).Interface().(func() any)
		if !ok {
			return nil, fmt.Errorf("solver method %s: got %v; want func() any", name, v.Method(i).Type())
		}
		d := Int(m[1])
		byDays[d] = append(byDays[d], partSolver{
			fn:   fn,
			Part: m[2],
			Name: name,
		})
	}
	days := make(map[int]day, len(byDays))
	for d, parts := range byDays {
		slices.SortFunc(parts, func(a, b partSolver) int {
			return strings.Compare(a.Part, b.Part)
		})
		days[d] = day{day: d, parts: parts}
	}
	return days, nil
}

// runner holds everything needed to run the days of one solver.
type runner struct {
	year    int
	slvr    any
	samples map[string][]sample
	cfg     Config
	opts    Options
	out     io.Writer
	log     zerolog.Logger
}

// inputPath is where the real input of day d is expected.
func (r *runner) inputPath(d int) string {
	return filepath.Join(r.cfg.Inputs, strconv.Itoa(r.year), fmt.Sprintf("%d.input", d))
}

func (r *runner) runDay(d day) error {
	log := r.log.With().Int("day", d.day).Logger()
	p := &Puzzle{
		year:  r.year,
		day:   d.day,
		log:   log,
		debug: r.cfg.Debug,
	}
	fmt.Fprintln(r.out, "Running day", d.day)
	reflect.ValueOf(r.slvr).Elem().FieldByName("Puzzle").Set(reflect.ValueOf(p))

	haveInput := false
	if !r.opts.Sample {
		b, err := os.ReadFile(r.inputPath(d.day))
		switch {
		case errors.Is(err, fs.ErrNotExist):
			log.Warn().Str("path", r.inputPath(d.day)).Msg("no puzzle input; running samples only")
		case err != nil:
			return fmt.Errorf("day %d: reading input: %w", d.day, err)
		default:
			p.input = b
			haveInput = true
		}
	}

	for _, ps := range d.parts {
		if r.opts.Part != "" && ps.Part != r.opts.Part {
			continue
		}
		p.solver = ps
		if !r.opts.SkipSample {
			if err := r.runSamples(p, ps); err != nil {
				return err
			}
		}
		if !haveInput {
			continue
		}
		p.SampleMode = false
		t0 := time.Now()
		got := ps.fn()
		fmt.Fprintf(r.out, "part %s: %v (took %v) \n", ps.Part, got, time.Since(t0).Round(time.Microsecond))
	}
	return nil
}

func (r *runner) runSamples(p *Puzzle, ps partSolver) error {
	samples, ok := r.samples[ps.Name]
	if !ok {
		r.log.Warn().Str("part", ps.Name).Msg("no sample declared")
		return nil
	}
	p.SampleMode = true
	for i, s := range samples {
		p.sample = s
		t0 := time.Now()
		got := ps.fn()
		if fmt.Sprint(got) != s.want {
			fmt.Fprintf(r.out, "part %s: %v ❌; want %v\n", ps.Part, got, s.want)
			return fmt.Errorf("%s sample %d: got %v, want %v: %w", ps.Name, i, got, s.want, ErrSampleMismatch)
		}
		fmt.Fprintf(r.out, "part %s sample: %v ✅ (%v) \n", ps.Part, got, time.Since(t0).Round(time.Microsecond))
	}
	return nil
}

func (r *runner) run() error {
	days, err := extractMethods(r.slvr)
	if err != nil {
		return err
	}
	if r.opts.Day != -1 {
		d, ok := days[r.opts.Day]
		if !ok {
			return fmt.Errorf("no day %d", r.opts.Day)
		}
		return r.runDay(d)
	}

	dayNums := maps.Keys(days)
	slices.Sort(dayNums)
	for _, n := range dayNums {
		if err := r.runDay(days[n]); err != nil {
			return err
		}
		fmt.Fprintln(r.out)
	}
	return nil
}

// Run runs the solver slvr for the given year. src must contain the Go
// sources of the solver so that the samples in its doc comments can be
// found. It exits the process on failure.
func Run(year int, src fs.FS, slvr any) {
	if err := NewCommand(year, src, slvr).Execute(); err != nil {
		os.Exit(1)
	}
}

// MustDo panics if err is non-nil.
func MustDo(err error) {
	if err != nil {
		panic(err)
	}
}

// MustGet returns v as is. It panics if err is non-nil.
func MustGet[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// TrimPrefix is strings.TrimPrefix but panics if s does not start with prefix.
func TrimPrefix(s, prefix string) string {
	s1, ok := strings.CutPrefix(s, prefix)
	if !ok {
		panic(fmt.Sprintf("missing prefix %q: %q", prefix, s))
	}
	return s1
}

// Cut is strings.Cut but panics if sep is not found.
func Cut(s, sep string) (before, after string) {
	before, after, ok := strings.Cut(s, sep)
	if !ok {
		panic(fmt.Sprintf("missing separator %q: %q", sep, s))
	}
	return before, after
}

// Or returns the first non-zero value in list.
func Or[T any](list ...T) T {
	for _, v := range list {
		if !reflect.ValueOf(&v).Elem().IsZero() {
			return v
		}
	}
	var zero T
	return zero
}
