// SPDX-License-Identifier: MIT

// Package matrix - Similarity: co-voting strength between every pair of
// legislators, laid out for a heatmap.
//
// Ordering:
//   - Rows and columns share one order: party ascending, then name ascending.
//   - Nodes without a known party sort first with an empty party label.
//
// Cells:
//   - (i,j) = weight of i→j when g.HasEdge(i,j), else 0. The diagonal is 0.

package matrix

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/votegraph/core"
)

// Similarity is a square matrix with one labelled row/column per legislator.
type Similarity struct {
	*Dense

	// Names are the node IDs in row order.
	Names []string

	// Parties are the party labels aligned with Names.
	Parties []string
}

// NewSimilarity builds the heatmap matrix of g. The axis holds every node of g
// plus every legislator listed in partyOf, so members without any tie still
// appear as an all-zero row.
//
// Errors:
//   - ErrGraphNil when g is nil.
//
// Complexity: Time O(n² + n log n), Space O(n²) with n the axis length.
func NewSimilarity(g *core.Graph, partyOf map[string]string) (*Similarity, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	seen := make(map[string]struct{})
	var names []string
	for _, id := range g.Nodes() {
		seen[id] = struct{}{}
		names = append(names, id)
	}
	for id := range partyOf {
		if _, ok := seen[id]; !ok {
			seen[id] = struct{}{}
			names = append(names, id)
		}
	}
	sort.Slice(names, func(i, j int) bool {
		pi, pj := partyOf[names[i]], partyOf[names[j]]
		if pi != pj {
			return pi < pj
		}
		return names[i] < names[j]
	})

	n := len(names)
	dense, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	parties := make([]string, n)
	for i, a := range names {
		parties[i] = partyOf[a]
		for j, b := range names {
			if !g.HasEdge(a, b) {
				continue
			}
			w, _ := g.EdgeWeight(a, b)
			if err = dense.Set(i, j, w); err != nil {
				return nil, fmt.Errorf("similarity %s→%s: %w", a, b, err)
			}
		}
	}

	return &Similarity{Dense: dense, Names: names, Parties: parties}, nil
}

// Labels returns the axis labels formatted "name-(party)".
func (s *Similarity) Labels() []string {
	out := make([]string, len(s.Names))
	for i, name := range s.Names {
		out[i] = fmt.Sprintf("%s-(%s)", name, s.Parties[i])
	}
	return out
}

// Len returns the axis length.
func (s *Similarity) Len() int { return len(s.Names) }
