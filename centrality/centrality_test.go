// SPDX-License-Identifier: MIT

package centrality_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/votegraph/centrality"
	"github.com/katalvlaran/votegraph/core"
)

// buildGraph inserts undirected edges "a-b" with the given weight.
func buildGraph(t *testing.T, edges map[[2]string]float64, isolated ...string) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for pair, w := range edges {
		require.NoError(t, g.AddUndirectedEdge(pair[0], pair[1], w))
	}
	for _, id := range isolated {
		require.NoError(t, g.AddNode(id))
	}
	return g
}

// TestBetweenness_Star checks that only the hub of a star bridges pairs.
func TestBetweenness_Star(t *testing.T) {
	g := buildGraph(t, map[[2]string]float64{
		{"Hub", "A"}: 1,
		{"Hub", "B"}: 1,
		{"Hub", "C"}: 1,
	}, "Lonely")

	scores := centrality.Betweenness(g.ToSimpleGraph())

	require.Len(t, scores, 5, "every node is scored, isolated ones included")
	assert.InDelta(t, 1.0, scores["Hub"], 1e-12)
	for _, leaf := range []string{"A", "B", "C", "Lonely"} {
		assert.Zero(t, scores[leaf], leaf)
	}
}

// TestBetweenness_ExactValues pins normalized scores on small shapes.
// Isolated nodes are scored 0 and leave the scale of the others unchanged.
func TestBetweenness_ExactValues(t *testing.T) {
	path := map[[2]string]float64{{"A", "B"}: 1, {"B", "C"}: 1}

	scores := centrality.Betweenness(buildGraph(t, path).ToSimpleGraph())
	assert.InDelta(t, 1.0, scores["B"], 1e-12)

	scores = centrality.Betweenness(buildGraph(t, path, "D").ToSimpleGraph())
	require.Len(t, scores, 4)
	assert.InDelta(t, 1.0, scores["B"], 1e-12, "isolated D must not shrink B")
	assert.Zero(t, scores["D"])

	star := buildGraph(t, map[[2]string]float64{
		{"Hub", "A"}: 1,
		{"Hub", "B"}: 1,
		{"Hub", "C"}: 1,
	}, "Lonely", "Loner")
	scores = centrality.Betweenness(star.ToSimpleGraph())
	assert.InDelta(t, 1.0, scores["Hub"], 1e-12)

	weighted, err := centrality.BetweennessWeighted(buildGraph(t, path, "D").ToSimpleGraph())
	require.NoError(t, err)
	assert.InDelta(t, 1.0, weighted["B"], 1e-12)
}

// TestBetweenness_PathOrder checks the ranking along a five-node path.
func TestBetweenness_PathOrder(t *testing.T) {
	// A - B - C - D - E: inner nodes bridge more pairs the closer they are to the middle.
	g := buildGraph(t, map[[2]string]float64{
		{"A", "B"}: 1,
		{"B", "C"}: 1,
		{"C", "D"}: 1,
		{"D", "E"}: 1,
	})

	ranking := centrality.Rank(centrality.Betweenness(g.ToSimpleGraph()))

	require.Len(t, ranking, 5)
	assert.Equal(t, "C", ranking[0].Name)
	assert.Equal(t, []string{"B", "D"}, []string{ranking[1].Name, ranking[2].Name}, "ties break by name")
	assert.InDelta(t, ranking[1].Value, ranking[2].Value, 1e-12)
	assert.Zero(t, ranking[3].Value)
	assert.Zero(t, ranking[4].Value)
}

func TestBetweenness_TinyGraphs(t *testing.T) {
	g := buildGraph(t, map[[2]string]float64{{"A", "B"}: 1})
	scores := centrality.Betweenness(g.ToSimpleGraph())
	assert.Equal(t, map[string]float64{"A": 0, "B": 0}, scores)

	assert.Empty(t, centrality.Betweenness(core.NewGraph().ToSimpleGraph()))
}

func TestBetweennessWeighted_PrefersShortDistances(t *testing.T) {
	// Strong ties A-B-C versus a weak direct tie A-C. After inversion the
	// detour through B is shorter, so B becomes a bridge.
	g := buildGraph(t, map[[2]string]float64{
		{"A", "B"}: 0.9,
		{"B", "C"}: 0.9,
		{"A", "C"}: 0.1,
	})

	hops := centrality.Betweenness(g.ToSimpleGraph())
	assert.Zero(t, hops["B"], "in hop count the direct edge wins")

	weighted, err := centrality.BetweennessWeighted(g.Copy().InvertWeights().ToSimpleGraph())
	require.NoError(t, err)
	assert.Greater(t, weighted["B"], 0.0)
	assert.Zero(t, weighted["A"])
	assert.Zero(t, weighted["C"])
}

func TestBetweennessWeighted_NegativeWeight(t *testing.T) {
	g := buildGraph(t, map[[2]string]float64{{"A", "B"}: 1.5})
	_, err := centrality.BetweennessWeighted(g.InvertWeights().ToSimpleGraph())
	require.ErrorIs(t, err, centrality.ErrNegativeWeight)
}

func TestRankAndTop(t *testing.T) {
	ranking := centrality.Rank(map[string]float64{"Caio": 0.2, "Ana": 0.5, "Bruno": 0.2, "Davi": 0})
	assert.Equal(t, []centrality.Score{
		{Name: "Ana", Value: 0.5},
		{Name: "Bruno", Value: 0.2},
		{Name: "Caio", Value: 0.2},
		{Name: "Davi", Value: 0},
	}, ranking)

	assert.Len(t, centrality.Top(ranking, 2), 2)
	assert.Len(t, centrality.Top(ranking, 0), 4)
	assert.Len(t, centrality.Top(ranking, 10), 4)
}
