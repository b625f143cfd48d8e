package aoc

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"io/fs"
	"regexp"
	"slices"
	"strings"
)

// sample is an example input together with the answer it must produce.
type sample struct {
	input string
	want  string
}

var sampleRx = regexp.MustCompile(`(?sm)^\s*want=([^\n]*)(?:\s+(.+\n))?\s*`)

// parseSample parses a single comment of the form
//
//	/*
//	want=142
//
//	<input lines>
//	*/
//
// or a one line "// want=281" which reuses the previous input.
func parseSample(comment string) (sample, bool) {
	text := strings.TrimPrefix(comment, "//")
	if v, ok := strings.CutPrefix(text, "/*"); ok {
		text = strings.TrimSuffix(v, "*/")
	}
	m := sampleRx.FindStringSubmatch(text)
	if m == nil {
		return sample{}, false
	}
	return sample{
		want:  strings.TrimSpace(m[1]),
		input: m[2],
	}, true
}

// extractSamples returns the samples found in the doc comments of the
// functions declared in src, keyed by function name. A function may declare
// several samples. A sample without input inherits the most recent input
// seen earlier in the same file.
func extractSamples(filename string, src []byte) (map[string][]sample, error) {
	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, filename, src, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("parsing %s to extract samples: %w", filename, err)
	}
	var lastInput string
	samples := make(map[string][]sample)
	for _, d := range f.Decls {
		fd, ok := d.(*ast.FuncDecl)
		if !ok || fd.Doc == nil {
			continue
		}
		name := fd.Name.Name
		for _, c := range fd.Doc.List {
			s, ok := parseSample(c.Text)
			if !ok {
				continue
			}
			s.input = Or(s.input, lastInput)
			lastInput = s.input
			samples[name] = append(samples[name], s)
		}
	}
	return samples, nil
}

// loadSamples extracts samples from every non-test Go file at the root of
// fsys.
func loadSamples(fsys fs.FS) (map[string][]sample, error) {
	names, err := fs.Glob(fsys, "*.go")
	if err != nil {
		return nil, err
	}
	slices.Sort(names)
	all := make(map[string][]sample)
	for _, name := range names {
		if strings.HasSuffix(name, "_test.go") {
			continue
		}
		src, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", name, err)
		}
		got, err := extractSamples(name, src)
		if err != nil {
			return nil, err
		}
		for fn, ss := range got {
			if _, dup := all[fn]; dup {
				return nil, fmt.Errorf("samples for %s declared twice (again in %s)", fn, name)
			}
			all[fn] = ss
		}
	}
	return all, nil
}
