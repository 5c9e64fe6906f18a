// SPDX-License-Identifier: MIT

// Package core declares the Graph and Edge types, the sentinel errors and the
// NewGraph constructor.
//
// Errors:
//
//	ErrEmptyNodeID          - node ID is the empty string.
//	ErrNodeNotFound         - requested node does not exist.
//	ErrMissingActivityValue - Normalize found an edge endpoint without activity value.
//	ErrInvalidActivityValue - Normalize found a zero, negative or non-finite activity value.
package core

import (
	"errors"
	"sync"

	"go.uber.org/zap"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyNodeID indicates that the provided node ID is empty.
	ErrEmptyNodeID = errors.New("core: node ID is empty")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrMissingActivityValue indicates Normalize met a node with no activity value.
	ErrMissingActivityValue = errors.New("core: missing activity value")

	// ErrInvalidActivityValue indicates an activity value that cannot divide a weight.
	ErrInvalidActivityValue = errors.New("core: invalid activity value")
)

// Edge is a read-only snapshot of one directed edge.
type Edge struct {
	// From is the source node ID.
	From string

	// To is the target node ID.
	To string

	// Weight is the co-voting weight of From→To.
	Weight float64
}

// Option configures a Graph at construction time.
type Option func(g *Graph)

// WithLogger sets the logger used for tolerated failures (e.g. removing an
// absent edge). A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(g *Graph) {
		if l != nil {
			g.log = l
		}
	}
}

// Graph is a weighted, directed adjacency structure.
//
// mu guards adjacency and both counters. nodeCount and edgeCount always equal
// len(adjacency) and the total number of (from,to) entries; they are only
// written next to the adjacency mutation they account for.
type Graph struct {
	mu sync.RWMutex

	// adjacency[from][to] = weight; every node has a (possibly empty) inner map.
	adjacency map[string]map[string]float64

	nodeCount int
	edgeCount int

	log *zap.Logger
}

// NewGraph creates an empty Graph.
// Complexity: O(1).
func NewGraph(opts ...Option) *Graph {
	g := &Graph{
		adjacency: make(map[string]map[string]float64),
		log:       zap.NewNop(),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
