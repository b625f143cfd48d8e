package aoc

import (
	"fmt"
	"io"
	"io/fs"
	"reflect"
	"slices"
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/exp/maps"
)

// CheckSamples runs every part of slvr against each sample declared in the
// sources in src, as subtests named like "D10p2/1".
func CheckSamples(t *testing.T, src fs.FS, slvr any) {
	t.Helper()
	samples, err := loadSamples(src)
	if err != nil {
		t.Fatal(err)
	}
	days, err := extractMethods(slvr)
	if err != nil {
		t.Fatal(err)
	}
	dayNums := maps.Keys(days)
	slices.Sort(dayNums)
	for _, n := range dayNums {
		for _, ps := range days[n].parts {
			ps := ps
			ss, ok := samples[ps.Name]
			if !ok {
				t.Errorf("%s: no sample declared", ps.Name)
				continue
			}
			for i, s := range ss {
				s := s
				t.Run(fmt.Sprintf("%s/%d", ps.Name, i), func(t *testing.T) {
					p := &Puzzle{
						day:        n,
						SampleMode: true,
						solver:     ps,
						sample:     s,
						log:        zerolog.New(io.Discard),
					}
					reflect.ValueOf(slvr).Elem().FieldByName("Puzzle").Set(reflect.ValueOf(p))
					if got := fmt.Sprint(ps.fn()); got != s.want {
						t.Errorf("%s(sample %d) = %v, want %v", ps.Name, i, got, s.want)
					}
				})
			}
		}
	}
}
