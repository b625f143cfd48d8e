package aoc

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"
)

func TestParseSample(t *testing.T) {
	tests := []struct {
		comment string
		want    sample
	}{
		{
			comment: `/*
want=1

some-input
*/`,
			want: sample{
				want: "1",
				input: `some-input
`,
			},
		},
		{
			comment: `/*
want=1234

multi-line-input
other-line
other-line-2
*/`,
			want: sample{
				want: "1234",
				input: `multi-line-input
other-line
other-line-2
`,
			},
		},
		{
			comment: `// want=281`,
			want:    sample{want: "281"},
		},
	}

	for _, tt := range tests {
		if got, ok := parseSample(tt.comment); !ok || got != tt.want {
			t.Errorf("parseSample(%q) = %+v, %v; want %+v", tt.comment, got, ok, tt.want)
		}
	}
}

func TestParseSampleNoMatch(t *testing.T) {
	for _, c := range []string{
		"// D1p1 sums the calibration values.",
		"/* nothing to see */",
	} {
		if got, ok := parseSample(c); ok {
			t.Errorf("parseSample(%q) = %+v; want no sample", c, got)
		}
	}
}

const testSolverSrc = `package main

// D1p1 sums the numbers.
/*
want=6

1 2 3
*/
/*
want=15

4 5 6
*/
func (s solver) D1p1() any { return nil }

// want=1
func (s solver) D1p2() any { return nil }

func helper() {}
`

func TestExtractSamples(t *testing.T) {
	got, err := extractSamples("day01.go", []byte(testSolverSrc))
	if err != nil {
		t.Fatal(err)
	}
	want := map[string][]sample{
		"D1p1": {
			{want: "6", input: "1 2 3\n"},
			{want: "15", input: "4 5 6\n"},
		},
		"D1p2": {
			{want: "1", input: "4 5 6\n"},
		},
	}
	if diff := cmp.Diff(want, got, cmp.AllowUnexported(sample{})); diff != "" {
		t.Errorf("extractSamples mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadSamplesDuplicate(t *testing.T) {
	fsys := fstest.MapFS{
		"a.go": {Data: []byte(testSolverSrc)},
		"b.go": {Data: []byte(testSolverSrc)},
	}
	if _, err := loadSamples(fsys); err == nil {
		t.Error("loadSamples with a part declared twice: got nil error")
	}
}

func TestLoadSamplesSkipsTests(t *testing.T) {
	fsys := fstest.MapFS{
		"day01.go":      {Data: []byte(testSolverSrc)},
		"day01_test.go": {Data: []byte("this is not go")},
	}
	got, err := loadSamples(fsys)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Errorf("loadSamples found %d parts; want 2", len(got))
	}
}

type testSolver struct {
	*Puzzle
}

func (s testSolver) D1p1() any {
	return Sum(IntFields(s.String())...)
}

func (s testSolver) D1p2() any {
	return len(s.Lines())
}

func (s testSolver) Other() any { return nil }

type badSolver struct {
	*Puzzle
}

func (badSolver) D1p1() int { return 0 }

func TestExtractMethods(t *testing.T) {
	days, err := extractMethods(&testSolver{})
	if err != nil {
		t.Fatal(err)
	}
	if len(days) != 1 {
		t.Fatalf("got %d days; want 1", len(days))
	}
	var parts []string
	for _, p := range days[1].parts {
		parts = append(parts, p.Name)
	}
	if diff := cmp.Diff([]string{"D1p1", "D1p2"}, parts); diff != "" {
		t.Errorf("parts mismatch (-want +got):\n%s", diff)
	}

	if _, err := extractMethods(&badSolver{}); err == nil {
		t.Error("extractMethods with a bad signature: got nil error")
	}
	if _, err := extractMethods(testSolver{}); err == nil {
		t.Error("extractMethods with a non-pointer: got nil error")
	}
}

func runCommand(t *testing.T, src string, args ...string) (string, error) {
	t.Helper()
	fsys := fstest.MapFS{"day01.go": {Data: []byte(src)}}
	var out bytes.Buffer
	cmd := NewCommand(2023, fsys, &testSolver{})
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeInput(t *testing.T, day int, input string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "2023"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "2023", fmt.Sprintf("%d.input", day)), []byte(input), 0o644); err != nil {
		t.Fatal(err)
	}
	return dir
}

func TestRunWithInput(t *testing.T) {
	dir := writeInput(t, 1, "10 20\n30\n")
	out, err := runCommand(t, testSolverSrc, "--inputs", dir)
	if err != nil {
		t.Fatalf("run: %v\n%s", err, out)
	}
	for _, want := range []string{
		"Running day 1",
		"part 1 sample: 6 ✅",
		"part 1 sample: 15 ✅",
		"part 1: 60 (took",
		"part 2 sample: 1 ✅",
		"part 2: 2 (took",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRunFlags(t *testing.T) {
	dir := writeInput(t, 1, "1 1\n")

	out, err := runCommand(t, testSolverSrc, "--inputs", dir, "--part", "2", "--skip-sample")
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(out, "sample") || strings.Contains(out, "part 1") {
		t.Errorf("--part 2 --skip-sample ran more than part 2:\n%s", out)
	}
	if !strings.Contains(out, "part 2: 1 (took") {
		t.Errorf("part 2 did not run:\n%s", out)
	}

	out, err = runCommand(t, testSolverSrc, "--inputs", dir, "--sample")
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(out, "took") {
		t.Errorf("--sample ran the real input:\n%s", out)
	}

	if _, err := runCommand(t, testSolverSrc, "--sample", "--skip-sample"); err == nil {
		t.Error("--sample --skip-sample: got nil error")
	}
}

func TestRunMissingInput(t *testing.T) {
	out, err := runCommand(t, testSolverSrc, "--inputs", t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(out, "took") {
		t.Errorf("ran without an input:\n%s", out)
	}
	if !strings.Contains(out, "part 2 sample: 1 ✅") {
		t.Errorf("samples did not run:\n%s", out)
	}
}

func TestRunSampleMismatch(t *testing.T) {
	src := strings.Replace(testSolverSrc, "want=15", "want=16", 1)
	out, err := runCommand(t, src, "--inputs", t.TempDir())
	if !errors.Is(err, ErrSampleMismatch) {
		t.Fatalf("err = %v; want ErrSampleMismatch", err)
	}
	if !strings.Contains(out, "part 1: 15 ❌; want 16") {
		t.Errorf("output missing mismatch report:\n%s", out)
	}
	if strings.Contains(out, "part 2") {
		t.Errorf("kept running after a mismatch:\n%s", out)
	}
}

func TestRunUnknownDay(t *testing.T) {
	if _, err := runCommand(t, testSolverSrc, "--day", "3"); err == nil || !strings.Contains(err.Error(), "no day 3") {
		t.Errorf("err = %v; want no day 3", err)
	}
}

func TestCheckSamples(t *testing.T) {
	CheckSamples(t, fstest.MapFS{"day01.go": {Data: []byte(testSolverSrc)}}, &testSolver{})
}

func TestOr(t *testing.T) {
	if got := Or("", "b", "c"); got != "b" {
		t.Errorf(`Or("", "b", "c") = %q, want "b"`, got)
	}
	if got := Or(0, 0); got != 0 {
		t.Errorf("Or(0, 0) = %v, want 0", got)
	}
}

func TestMustPanics(t *testing.T) {
	for name, f := range map[string]func(){
		"MustDo":     func() { MustDo(errors.New("boom")) },
		"MustGet":    func() { MustGet(0, errors.New("boom")) },
		"TrimPrefix": func() { TrimPrefix("Card 1", "Game ") },
		"Cut":        func() { Cut("a b", ": ") },
	} {
		t.Run(name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("%s did not panic", name)
				}
			}()
			f()
		})
	}
}
