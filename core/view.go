// SPDX-License-Identifier: MIT
//
// File: view.go
// Role: Non-mutating export of g as an undirected simple graph for algorithm
//       libraries (gonum).
// Determinism:
//   - gonum node IDs are the positions of the sorted node names.
//   - Edges are visited in (From, To) order; the last visited direction wins.

package core

import (
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
)

// SimpleGraph is an undirected view with at most one edge per unordered node
// pair. It embeds a gonum WeightedUndirectedGraph and keeps the mapping between
// node names and gonum int64 IDs.
type SimpleGraph struct {
	*simple.WeightedUndirectedGraph

	ids   map[string]int64
	names []string
}

// ToSimpleGraph returns the undirected simple-graph view of g.
//
// Every node is kept, isolated ones included. For u→v and v→u with different
// weights, the direction visited last in (From, To) order supplies the weight.
// Self-loops are dropped. g is not mutated. Consumers that need only
// connected nodes (betweenness scaling) filter on degree themselves.
//
// Steps:
//  1. Assign gonum IDs in sorted name order.
//  2. Add every non-loop edge; a second direction overwrites the first.
//
// Complexity: O(V log V + E log E).
func (g *Graph) ToSimpleGraph() *SimpleGraph {
	names := g.Nodes()
	sg := &SimpleGraph{
		WeightedUndirectedGraph: simple.NewWeightedUndirectedGraph(0, 0),
		ids:                     make(map[string]int64, len(names)),
		names:                   names,
	}
	for i, name := range names {
		id := int64(i)
		sg.ids[name] = id
		sg.AddNode(simple.Node(id))
	}
	for _, e := range g.Edges() {
		if e.From == e.To {
			continue
		}
		sg.SetWeightedEdge(simple.WeightedEdge{
			F: simple.Node(sg.ids[e.From]),
			T: simple.Node(sg.ids[e.To]),
			W: e.Weight,
		})
	}

	return sg
}

// ID returns the gonum node ID of name.
func (sg *SimpleGraph) ID(name string) (int64, bool) {
	id, ok := sg.ids[name]
	return id, ok
}

// Name returns the node name behind a gonum node ID.
func (sg *SimpleGraph) Name(id int64) (string, bool) {
	if id < 0 || id >= int64(len(sg.names)) {
		return "", false
	}
	return sg.names[id], true
}

// Names returns the node names ordered by gonum ID.
func (sg *SimpleGraph) Names() []string {
	out := make([]string, len(sg.names))
	copy(out, sg.names)
	return out
}

// WeightBetween returns the weight of the undirected edge a–b.
func (sg *SimpleGraph) WeightBetween(a, b string) (float64, bool) {
	ia, okA := sg.ids[a]
	ib, okB := sg.ids[b]
	if !okA || !okB || ia == ib {
		return 0, false
	}
	e := sg.WeightedEdge(ia, ib)
	if e == nil {
		return 0, false
	}
	return e.Weight(), true
}

// EdgeCount returns the number of undirected edges.
func (sg *SimpleGraph) EdgeCount() int {
	return sg.Edges().Len()
}

var _ graph.WeightedUndirected = (*SimpleGraph)(nil)
