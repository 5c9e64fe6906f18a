// SPDX-License-Identifier: MIT

// Package dataset reads the yearly co-voting CSV files and joins them into the
// rows the core graph is built from.
//
// Two files exist per year, both without header and separated by ';':
//
//	graph<year>.csv        Source;Target;Weight        (raw agreement count)
//	politicians<year>.csv  Politician;Party;Value      (activity value)
//
// A party filter restricts the legislators, and relations are kept only when
// both endpoints are retained legislators.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/votegraph/core"
)

// Sentinel errors for dataset loading.
var (
	// ErrDatasetNotFound indicates a missing yearly CSV file.
	ErrDatasetNotFound = errors.New("dataset: file not found")

	// ErrMalformedRow indicates a row with the wrong arity or an unparsable number.
	ErrMalformedRow = errors.New("dataset: malformed row")
)

const (
	fieldSeparator = ';'
	graphPattern   = "graph%d.csv"
	peoplePattern  = "politicians%d.csv"
)

// Legislator is one row of the politicians file.
type Legislator struct {
	ID       string
	Party    string
	Activity float64
}

// VoteRelation is one row of the graph file.
type VoteRelation struct {
	Source string
	Target string
	Weight float64
}

// Dataset is the filtered content of one year.
type Dataset struct {
	Year        int
	Relations   []VoteRelation
	Legislators []Legislator

	// available holds every party of the year before filtering.
	available []string
}

// Loader reads yearly datasets from Dir.
type Loader struct {
	Dir string
}

// NewLoader returns a Loader rooted at dir.
func NewLoader(dir string) *Loader {
	return &Loader{Dir: dir}
}

// GraphPath returns the path of the relation file for year.
func (l *Loader) GraphPath(year int) string {
	return filepath.Join(l.Dir, fmt.Sprintf(graphPattern, year))
}

// PoliticiansPath returns the path of the legislator file for year.
func (l *Loader) PoliticiansPath(year int) string {
	return filepath.Join(l.Dir, fmt.Sprintf(peoplePattern, year))
}

// Load reads both files of year and applies the party filter.
// An empty parties slice keeps every legislator.
func (l *Loader) Load(year int, parties []string) (*Dataset, error) {
	legislators, err := readFile(l.PoliticiansPath(year), ReadLegislators)
	if err != nil {
		return nil, err
	}
	relations, err := readFile(l.GraphPath(year), ReadRelations)
	if err != nil {
		return nil, err
	}

	return Filter(year, relations, legislators, parties), nil
}

// Filter keeps the legislators of the chosen parties (all when parties is
// empty) and the relations whose endpoints are both kept.
func Filter(year int, relations []VoteRelation, legislators []Legislator, parties []string) *Dataset {
	ds := &Dataset{Year: year, available: distinctParties(legislators)}

	kept := make(map[string]struct{}, len(legislators))
	for _, lg := range legislators {
		if len(parties) > 0 && !slices.Contains(parties, lg.Party) {
			continue
		}
		ds.Legislators = append(ds.Legislators, lg)
		kept[lg.ID] = struct{}{}
	}
	for _, r := range relations {
		_, src := kept[r.Source]
		_, dst := kept[r.Target]
		if src && dst {
			ds.Relations = append(ds.Relations, r)
		}
	}

	return ds
}

// AvailableParties returns every party of the year, sorted, before filtering.
func (d *Dataset) AvailableParties() []string {
	return slices.Clone(d.available)
}

// Parties returns the distinct parties of the retained legislators, sorted.
func (d *Dataset) Parties() []string {
	return distinctParties(d.Legislators)
}

// Activity maps legislator ID → activity value. A legislator listed twice
// keeps the value of its last row.
func (d *Dataset) Activity() map[string]float64 {
	out := make(map[string]float64, len(d.Legislators))
	for _, lg := range d.Legislators {
		out[lg.ID] = lg.Activity
	}
	return out
}

// PartyOf maps legislator ID → party label.
func (d *Dataset) PartyOf() map[string]string {
	out := make(map[string]string, len(d.Legislators))
	for _, lg := range d.Legislators {
		out[lg.ID] = lg.Party
	}
	return out
}

// Graph builds the normalized co-voting graph: every relation becomes an
// undirected edge, then weights are divided by the smaller activity value of
// the two endpoints.
func (d *Dataset) Graph(opts ...core.Option) (*core.Graph, error) {
	g := core.NewGraph(opts...)
	for _, r := range d.Relations {
		if err := g.AddUndirectedEdge(r.Source, r.Target, r.Weight); err != nil {
			return nil, fmt.Errorf("relation %s;%s: %w", r.Source, r.Target, err)
		}
	}
	if err := g.Normalize(d.Activity()); err != nil {
		return nil, err
	}

	return g, nil
}

// ReadRelations parses Source;Target;Weight rows.
func ReadRelations(r io.Reader) ([]VoteRelation, error) {
	var out []VoteRelation
	err := readRows(r, func(line int, rec []string) error {
		w, err := parseNumber(rec[2])
		if err != nil {
			return fmt.Errorf("line %d weight %q: %w", line, rec[2], ErrMalformedRow)
		}
		out = append(out, VoteRelation{
			Source: strings.TrimSpace(rec[0]),
			Target: strings.TrimSpace(rec[1]),
			Weight: w,
		})
		return nil
	})

	return out, err
}

// ReadLegislators parses Politician;Party;Value rows.
func ReadLegislators(r io.Reader) ([]Legislator, error) {
	var out []Legislator
	err := readRows(r, func(line int, rec []string) error {
		v, err := parseNumber(rec[2])
		if err != nil {
			return fmt.Errorf("line %d value %q: %w", line, rec[2], ErrMalformedRow)
		}
		out = append(out, Legislator{
			ID:       strings.TrimSpace(rec[0]),
			Party:    strings.TrimSpace(rec[1]),
			Activity: v,
		})
		return nil
	})

	return out, err
}

// readRows streams three-column records into fn, with 1-based line numbers.
func readRows(r io.Reader, fn func(line int, rec []string) error) error {
	cr := csv.NewReader(r)
	cr.Comma = fieldSeparator
	cr.FieldsPerRecord = 3
	cr.ReuseRecord = true

	for line := 1; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("line %d: %v: %w", line, err, ErrMalformedRow)
		}
		if err = fn(line, rec); err != nil {
			return err
		}
	}
}

// readFile opens path and parses it with parse, mapping a missing file to
// ErrDatasetNotFound.
func readFile[T any](path string, parse func(io.Reader) ([]T, error)) ([]T, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%s: %w", path, ErrDatasetNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	rows, err := parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rows, nil
}

func parseNumber(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}

func distinctParties(legislators []Legislator) []string {
	seen := make(map[string]struct{})
	for _, lg := range legislators {
		seen[lg.Party] = struct{}{}
	}
	out := make([]string, 0, len(seen))
	for p := range seen {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}
