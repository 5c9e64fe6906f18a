// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: Copying and combining graph instances: Copy/Union.
// Concurrency:
//   - Read locks on the sources; results are fresh graphs never shared with the inputs.

package core

// Copy returns a deep copy of g: new outer and inner maps with the same node
// IDs and weights, the same counters and the same logger. Mutating the copy
// never changes g.
// Complexity: O(V + E).
func (g *Graph) Copy() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return &Graph{
		adjacency: cloneAdjacency(g.adjacency),
		nodeCount: g.nodeCount,
		edgeCount: g.edgeCount,
		log:       g.log,
	}
}

// Union returns a new graph holding the nodes of both graphs, every edge of g,
// and the edges of other whose (from,to) pair is not already present. On a
// conflict the weight of g wins. Neither input is mutated; a nil other yields
// a copy of g.
//
// Steps:
//  1. Insert all nodes of g, then all nodes of other.
//  2. Insert every edge of g.
//  3. Insert every edge of other not yet present.
//
// Complexity: O(V + E) over both inputs.
func (g *Graph) Union(other *Graph) *Graph {
	if other == nil {
		return g.Copy()
	}
	// Snapshots keep the locks of g and other from nesting (g.Union(g) included).
	left := g.Adjacency()
	right := other.Adjacency()

	out := NewGraph(WithLogger(g.log))
	for id := range left {
		out.addNodeLocked(id)
	}
	for id := range right {
		out.addNodeLocked(id)
	}
	for from, nbrs := range left {
		for to, w := range nbrs {
			out.setEdgeLocked(from, to, w)
		}
	}
	for from, nbrs := range right {
		for to, w := range nbrs {
			if _, taken := out.adjacency[from][to]; taken {
				continue
			}
			out.setEdgeLocked(from, to, w)
		}
	}

	return out
}
