// SPDX-License-Identifier: MIT

// Package centrality scores legislators by how often they sit on shortest
// paths between other legislators of a co-voting graph.
//
// Scores are computed on the undirected simple-graph view of core.Graph with
// gonum's Brandes implementation and normalized to [0,1] by 1/((n-1)(n-2)),
// so a node bridging every pair of an n-node graph scores 1. n counts the
// nodes that keep at least one tie; isolated legislators score 0.
//
// Betweenness treats every edge as one hop. BetweennessWeighted reads edge
// weights as distances, so callers feed it an inverted copy where strong
// co-voting ties are short.
package centrality

import (
	"errors"
	"fmt"
	"sort"

	"gonum.org/v1/gonum/graph/network"
	"gonum.org/v1/gonum/graph/path"

	"github.com/katalvlaran/votegraph/core"
)

// ErrNegativeWeight indicates a negative distance, which shortest paths cannot use.
var ErrNegativeWeight = errors.New("centrality: negative edge weight")

// Score is the centrality value of one legislator.
type Score struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// Betweenness returns the normalized hop-count betweenness of every node in sg.
// Nodes that bridge no pair score 0.
//
// Complexity: O(V·E).
func Betweenness(sg *core.SimpleGraph) map[string]float64 {
	return named(sg, network.Betweenness(sg))
}

// BetweennessWeighted returns the normalized betweenness of every node in sg
// using edge weights as path lengths.
//
// Complexity: O(V·(V+E)·log V) for the all-pairs Dijkstra plus path walking.
func BetweennessWeighted(sg *core.SimpleGraph) (map[string]float64, error) {
	edges := sg.WeightedEdges()
	for edges.Next() {
		e := edges.WeightedEdge()
		if e.Weight() < 0 {
			a, _ := sg.Name(e.From().ID())
			b, _ := sg.Name(e.To().ID())
			return nil, fmt.Errorf("%s-%s weight %g: %w", a, b, e.Weight(), ErrNegativeWeight)
		}
	}

	return named(sg, network.BetweennessWeighted(sg, path.DijkstraAllPaths(sg))), nil
}

// Rank orders scores by descending value; ties are broken by name.
func Rank(scores map[string]float64) []Score {
	out := make([]Score, 0, len(scores))
	for name, v := range scores {
		out = append(out, Score{Name: name, Value: v})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Value != out[j].Value {
			return out[i].Value > out[j].Value
		}
		return out[i].Name < out[j].Name
	})

	return out
}

// Top returns at most n leading entries of a ranking. n <= 0 returns all.
func Top(ranking []Score, n int) []Score {
	if n <= 0 || n >= len(ranking) {
		return ranking
	}
	return ranking[:n]
}

// named maps gonum ids back to node names, fills zeros for absent nodes and
// applies the 1/((n-1)(n-2)) scale, where n counts only nodes with at least
// one edge. Isolated nodes are reported with 0 and do not dilute the scores.
func named(sg *core.SimpleGraph, raw map[int64]float64) map[string]float64 {
	names := sg.Names()
	n := connected(sg)
	scale := 0.0
	if n > 2 {
		scale = 1 / float64((n-1)*(n-2))
	}

	out := make(map[string]float64, n)
	for id, name := range names {
		out[name] = raw[int64(id)] * scale
	}
	return out
}

// connected counts the nodes of sg that have at least one edge.
func connected(sg *core.SimpleGraph) int {
	n := 0
	nodes := sg.Nodes()
	for nodes.Next() {
		if sg.From(nodes.Node().ID()).Len() > 0 {
			n++
		}
	}
	return n
}
