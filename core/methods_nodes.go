// SPDX-License-Identifier: MIT
//
// File: methods_nodes.go
// Role: Node lifecycle & queries: AddNode/HasNode/RemoveNode/OutDegree/Neighbors/Nodes/NodeCount.
// Determinism:
//   - Nodes() and Neighbors() yield IDs sorted ascending.
// Concurrency:
//   - Mutations under mu write lock, queries under mu read lock.

package core

import (
	"fmt"
	"iter"
	"sort"
)

// AddNode inserts id with an empty neighbor map if it is absent.
// Idempotent: an existing id is a no-op and the node count is unchanged.
// Returns ErrEmptyNodeID for an empty id.
// Complexity: O(1) amortized.
func (g *Graph) AddNode(id string) error {
	if id == "" {
		return ErrEmptyNodeID
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.addNodeLocked(id)

	return nil
}

// HasNode reports whether id is a node of g.
// Complexity: O(1).
func (g *Graph) HasNode(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adjacency[id]

	return ok
}

// RemoveNode deletes id together with all inbound and outbound edges.
//
// Steps:
//  1. Drop every inbound edge x→id from the other neighbor maps (edgeCount-- each).
//  2. Drop id's outbound edges (edgeCount -= out-degree).
//  3. Delete id (nodeCount--).
//
// Returns ErrNodeNotFound if id is absent.
// Complexity: O(V + deg(id)).
func (g *Graph) RemoveNode(id string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	out, ok := g.adjacency[id]
	if !ok {
		return fmt.Errorf("remove %q: %w", id, ErrNodeNotFound)
	}
	for from, nbrs := range g.adjacency {
		if from == id {
			continue // self-loop is counted with the outbound edges below
		}
		if _, in := nbrs[id]; in {
			delete(nbrs, id)
			g.edgeCount--
		}
	}
	g.edgeCount -= len(out)
	delete(g.adjacency, id)
	g.nodeCount--

	return nil
}

// OutDegree returns the number of outbound neighbors of id.
// Returns ErrNodeNotFound if id is absent.
// Complexity: O(1).
func (g *Graph) OutDegree(id string) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	nbrs, ok := g.adjacency[id]
	if !ok {
		return 0, fmt.Errorf("out-degree of %q: %w", id, ErrNodeNotFound)
	}

	return len(nbrs), nil
}

// Neighbors returns a lazy sequence over the outbound neighbor IDs of id, in
// ascending order. The sequence is restartable: every range over it takes a
// fresh snapshot of id's neighbors, so it reflects mutations made between runs.
// Removing id entirely makes later runs yield nothing.
//
// Returns ErrNodeNotFound if id is absent at call time.
// Complexity: O(d log d) per run, d = out-degree.
func (g *Graph) Neighbors(id string) (iter.Seq[string], error) {
	if !g.HasNode(id) {
		return nil, fmt.Errorf("neighbors of %q: %w", id, ErrNodeNotFound)
	}

	return func(yield func(string) bool) {
		g.mu.RLock()
		ids := sortedKeys(g.adjacency[id])
		g.mu.RUnlock()
		for _, nbr := range ids {
			if !yield(nbr) {
				return
			}
		}
	}, nil
}

// Nodes returns all node IDs in ascending order.
// Complexity: O(V log V).
func (g *Graph) Nodes() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return sortedKeys(g.adjacency)
}

// NodeCount returns the cached number of nodes. O(1).
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.nodeCount
}

// addNodeLocked inserts id if absent. Caller holds mu for writing.
func (g *Graph) addNodeLocked(id string) {
	if _, ok := g.adjacency[id]; ok {
		return
	}
	g.adjacency[id] = make(map[string]float64)
	g.nodeCount++
}

// sortedKeys returns the keys of m in ascending order.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}
