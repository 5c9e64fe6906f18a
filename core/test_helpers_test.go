// SPDX-License-Identifier: MIT
// Package core_test contains fixtures shared by the core tests.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/votegraph/core"
)

// Common node IDs used across core tests.
const (
	NodeEmpty = ""

	NodeA = "A"
	NodeB = "B"
	NodeC = "C"
	NodeD = "D"

	NodeX = "X"
	NodeY = "Y"
)

// Common weights used across core tests.
const (
	Weight02 = 0.2
	Weight05 = 0.5
	Weight08 = 0.8
	Weight1  = 1.0
	Weight2  = 2.0
	Weight5  = 5.0

	Eps = 1e-12
)

// edgeKey is a compact comparable form of an edge for set assertions.
type edgeKey struct{ from, to string }

// edgeSet collects every edge of g as edgeKey → weight.
func edgeSet(g *core.Graph) map[edgeKey]float64 {
	out := make(map[edgeKey]float64)
	for _, e := range g.Edges() {
		out[edgeKey{e.From, e.To}] = e.Weight
	}
	return out
}

// requireCounters checks the cached counters against the stored content.
func requireCounters(t *testing.T, g *core.Graph) {
	t.Helper()
	require.Equal(t, len(g.Nodes()), g.NodeCount(), "NodeCount must equal |nodes|")
	require.Equal(t, len(g.Edges()), g.EdgeCount(), "EdgeCount must equal |edges|")
}

// mustUndirected inserts a–b in both directions and fails the test on error.
func mustUndirected(t *testing.T, g *core.Graph, a, b string, w float64) {
	t.Helper()
	require.NoError(t, g.AddUndirectedEdge(a, b, w))
}

// mustEdge inserts from→to and fails the test on error.
func mustEdge(t *testing.T, g *core.Graph, from, to string, w float64) {
	t.Helper()
	require.NoError(t, g.AddEdge(from, to, w))
}
