// SPDX-License-Identifier: MIT

// Package core provides the weighted, directed co-voting Graph used by every
// votegraph stage.
//
// The Graph G = (V,E) stores nodes (legislator names) and directed edges with
// float64 weights:
//
//   - Adjacency is a nested map: adjacency[from][to] = weight, which gives
//     constant-time insertion, lookup and deletion plus cheap neighbor scans.
//   - Node and edge counts are cached counters updated inside the same method
//     that mutates the adjacency map; no other code path touches storage.
//   - An "undirected" co-voting relationship is two directed edges inserted
//     together by AddUndirectedEdge; both directions stay independently mutable.
//   - Self-loops may be stored (the input data can carry them) but HasEdge
//     reports them as absent and ToSimpleGraph drops them.
//
// Pipeline transforms:
//
//	Normalize(activity)   // w → w / min(activity[u], activity[v])
//	ApplyThreshold(t)     // drop every edge with w < t
//	InvertWeights()       // w → 1 - w, no clamping
//	Union(other)          // receiver wins on (from,to) conflicts
//	Copy()                // deep clone
//	ToSimpleGraph()       // undirected gonum view for centrality
//
// Error policy:
//
//	ErrNodeNotFound          – RemoveNode, OutDegree, Neighbors on an unknown node
//	ErrMissingActivityValue  – Normalize with a node lacking an activity value
//	ErrInvalidActivityValue  – Normalize with a non-positive activity value
//	RemoveEdge               – tolerant: returns false and logs a warning
//
// Deterministic enumeration: Nodes(), Edges(), Neighbors() are sorted by ID.
package core
