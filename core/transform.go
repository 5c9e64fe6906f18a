// SPDX-License-Identifier: MIT
//
// File: transform.go
// Role: In-place pipeline transforms: Normalize/ApplyThreshold/InvertWeights.
// Determinism:
//   - Every transform is a pure per-edge function; map order cannot change the result.
// Concurrency:
//   - Each transform holds mu for writing for its whole duration.

package core

import (
	"fmt"
	"math"
)

// Normalize divides every edge weight by the smaller activity value of its two
// endpoints: w(u,v) ← w(u,v) / min(activity[u], activity[v]).
//
// All endpoints are validated before any weight changes, so on error g is
// left untouched:
//   - ErrMissingActivityValue if an edge endpoint has no entry in activity;
//   - ErrInvalidActivityValue if that entry is zero, negative, NaN or ±Inf.
//
// Results are usually in (0,1] but are not clamped.
//
// Steps:
//  1. Validate the activity of every endpoint of every edge.
//  2. Rewrite each weight in place.
//
// Complexity: O(E).
func (g *Graph) Normalize(activity map[string]float64) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	for from, nbrs := range g.adjacency {
		if len(nbrs) == 0 {
			continue // isolated nodes need no activity value
		}
		if err := checkActivity(activity, from); err != nil {
			return err
		}
		for to := range nbrs {
			if err := checkActivity(activity, to); err != nil {
				return err
			}
		}
	}
	for from, nbrs := range g.adjacency {
		for to, w := range nbrs {
			nbrs[to] = w / math.Min(activity[from], activity[to])
		}
	}

	return nil
}

// ApplyThreshold removes every edge whose weight is strictly below minWeight
// and returns g for chaining. Edges at or above minWeight keep their weight.
// Removal goes through RemoveEdge, so counters stay consistent.
//
// Steps:
//  1. Under the read lock, collect edges with w < minWeight.
//  2. Remove each collected edge.
//
// Complexity: O(E).
func (g *Graph) ApplyThreshold(minWeight float64) *Graph {
	var drop []Edge
	g.mu.RLock()
	for from, nbrs := range g.adjacency {
		for to, w := range nbrs {
			if w < minWeight {
				drop = append(drop, Edge{From: from, To: to, Weight: w})
			}
		}
	}
	g.mu.RUnlock()

	for _, e := range drop {
		g.RemoveEdge(e.From, e.To)
	}

	return g
}

// InvertWeights replaces every weight w with 1 - w and returns g.
// Intended for weights in [0,1]; out-of-range inputs give out-of-range outputs.
// Applying it twice restores the original weights up to rounding.
// Complexity: O(E).
func (g *Graph) InvertWeights() *Graph {
	g.mu.Lock()
	defer g.mu.Unlock()
	for _, nbrs := range g.adjacency {
		for to, w := range nbrs {
			nbrs[to] = 1 - w
		}
	}

	return g
}

// checkActivity validates the activity value of id.
func checkActivity(activity map[string]float64, id string) error {
	v, ok := activity[id]
	if !ok {
		return fmt.Errorf("normalize %q: %w", id, ErrMissingActivityValue)
	}
	if v <= 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("normalize %q (value %v): %w", id, v, ErrInvalidActivityValue)
	}

	return nil
}
