// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/AddUndirectedEdge/RemoveEdge/HasEdge/
//       EdgeWeight/Edges/EdgeCount/Adjacency.
// Determinism:
//   - Edges() is sorted by (From, To) ascending.
// Concurrency:
//   - Mutations under mu write lock, queries under mu read lock.

package core

import (
	"sort"

	"go.uber.org/zap"
)

// AddEdge sets the weight of from→to, inserting missing endpoints first.
//
// An existing from→to is overwritten, not accumulated. The edge count grows
// only when the pair is new, so EdgeCount always equals the number of stored
// directed edges.
//
// Returns ErrEmptyNodeID if either endpoint is empty.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight float64) error {
	if from == "" || to == "" {
		return ErrEmptyNodeID
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.setEdgeLocked(from, to, weight)

	return nil
}

// AddUndirectedEdge stores a→b and b→a with the same weight.
// The two directions are independent afterwards.
// Complexity: O(1) amortized.
func (g *Graph) AddUndirectedEdge(a, b string, weight float64) error {
	if err := g.AddEdge(a, b, weight); err != nil {
		return err
	}

	return g.AddEdge(b, a, weight)
}

// RemoveEdge deletes the directed edge from→to and reports whether it existed.
//
// Removal is tolerant: a missing endpoint or edge is logged as a warning and
// reported as false, never as an error, so bulk pruning can proceed.
// Complexity: O(1).
func (g *Graph) RemoveEdge(from, to string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	nbrs, ok := g.adjacency[from]
	if !ok {
		g.log.Warn("remove edge: source node does not exist",
			zap.String("from", from), zap.String("to", to))
		return false
	}
	if _, ok = nbrs[to]; !ok {
		g.log.Warn("remove edge: edge does not exist",
			zap.String("from", from), zap.String("to", to))
		return false
	}
	delete(nbrs, to)
	g.edgeCount--

	return true
}

// HasEdge reports whether the directed edge from→to exists.
// Self-loops are reported as absent, as are edges touching unknown nodes.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	if from == to {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adjacency[from][to]

	return ok
}

// EdgeWeight returns the weight of from→to; ok is false when there is no such edge.
// Complexity: O(1).
func (g *Graph) EdgeWeight(from, to string) (weight float64, ok bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	weight, ok = g.adjacency[from][to]

	return weight, ok
}

// Edges returns every directed edge sorted by (From, To).
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, 0, g.edgeCount)
	for from, nbrs := range g.adjacency {
		for to, w := range nbrs {
			out = append(out, Edge{From: from, To: to, Weight: w})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		return out[i].To < out[j].To
	})

	return out
}

// EdgeCount returns the cached number of directed edges. O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// Adjacency returns a deep snapshot node → neighbor → weight, including nodes
// without outbound edges. Mutating the result does not affect g.
// Complexity: O(V + E).
func (g *Graph) Adjacency() map[string]map[string]float64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return cloneAdjacency(g.adjacency)
}

// setEdgeLocked stores from→to = weight. Caller holds mu for writing.
func (g *Graph) setEdgeLocked(from, to string, weight float64) {
	g.addNodeLocked(from)
	g.addNodeLocked(to)
	nbrs := g.adjacency[from]
	if _, exists := nbrs[to]; !exists {
		g.edgeCount++
	}
	nbrs[to] = weight
}

// cloneAdjacency copies both the outer and the inner maps of adj.
func cloneAdjacency(adj map[string]map[string]float64) map[string]map[string]float64 {
	out := make(map[string]map[string]float64, len(adj))
	for from, nbrs := range adj {
		inner := make(map[string]float64, len(nbrs))
		for to, w := range nbrs {
			inner[to] = w
		}
		out[from] = inner
	}

	return out
}
