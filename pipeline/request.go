// SPDX-License-Identifier: MIT

package pipeline

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
)

// Year range covered by the published datasets.
const (
	MinYear = 2002
	MaxYear = 2023
)

// Sentinel errors for request validation.
var (
	// ErrInvalidYear indicates a year outside [MinYear, MaxYear].
	ErrInvalidYear = errors.New("pipeline: year out of range")

	// ErrInvalidThreshold indicates a threshold outside [0,1] and (1,100].
	ErrInvalidThreshold = errors.New("pipeline: invalid threshold")

	// ErrUnknownParty indicates a requested party absent from the year's data.
	ErrUnknownParty = errors.New("pipeline: party not found for year")

	// ErrNothingRequested indicates a Run with every output disabled.
	ErrNothingRequested = errors.New("pipeline: no output requested")
)

// Request selects the data slice and the outputs of one run.
type Request struct {
	Year int

	// Parties restricts the legislators; empty means every party.
	Parties []string

	// Threshold is the minimum normalized weight kept, already in [0,1].
	Threshold float64

	Centrality         bool
	Heatmap            bool
	Network            bool
	NetworkHTML        bool
	WeightedCentrality bool
}

// ValidateYear rejects years without a dataset.
func ValidateYear(year int) error {
	if year < MinYear || year > MaxYear {
		return fmt.Errorf("%d not in [%d, %d]: %w", year, MinYear, MaxYear, ErrInvalidYear)
	}
	return nil
}

// ParseThreshold accepts a fraction in [0,1] as is and a percentage in
// (1,100] divided by 100. Anything else, NaN included, is rejected.
func ParseThreshold(v float64) (float64, error) {
	switch {
	case math.IsNaN(v) || v < 0 || v > 100:
		return 0, fmt.Errorf("%g: %w", v, ErrInvalidThreshold)
	case v <= 1:
		return v, nil
	default:
		return v / 100, nil
	}
}

// Validate checks the year, the threshold and the party list.
func (r Request) Validate() error {
	if err := ValidateYear(r.Year); err != nil {
		return err
	}
	if math.IsNaN(r.Threshold) || r.Threshold < 0 || r.Threshold > 1 {
		return fmt.Errorf("%g not in [0, 1]: %w", r.Threshold, ErrInvalidThreshold)
	}
	return nil
}

// Wanted reports whether at least one output is enabled.
func (r Request) Wanted() bool {
	return r.Centrality || r.Heatmap || r.Network || r.NetworkHTML
}

// NormalizeParties trims labels, drops empty and duplicate ones and sorts the rest.
func NormalizeParties(parties []string) []string {
	seen := make(map[string]struct{}, len(parties))
	out := make([]string, 0, len(parties))
	for _, p := range parties {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

// partiesLabel is the party part of titles and file names.
func partiesLabel(parties []string) string {
	if len(parties) == 0 {
		return "todos"
	}
	return strings.Join(parties, "-")
}
