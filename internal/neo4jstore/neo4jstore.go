// SPDX-License-Identifier: MIT

// Package neo4jstore exports a co-voting graph to Neo4j as
// (:Legislator)-[:COVOTES {year, weight}]->(:Legislator) relationships.
package neo4jstore

import (
	"context"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/katalvlaran/votegraph/core"
)

const (
	mergeLegislator = "MERGE (l:Legislator {name: $name}) SET l.party = $party"
	mergeCovotes    = "MERGE (a:Legislator {name: $from}) " +
		"MERGE (b:Legislator {name: $to}) " +
		"MERGE (a)-[r:COVOTES {year: $year}]->(b) SET r.weight = $weight"
)

// Statement is one parameterized Cypher query.
type Statement struct {
	Cypher string
	Params map[string]any
}

// Statements returns the queries that store g for year: one MERGE per node,
// then one per directed edge, both in sorted order. Self-loops are skipped.
func Statements(year int, g *core.Graph, partyOf map[string]string) []Statement {
	nodes := g.Nodes()
	edges := g.Edges()
	out := make([]Statement, 0, len(nodes)+len(edges))
	for _, name := range nodes {
		out = append(out, Statement{
			Cypher: mergeLegislator,
			Params: map[string]any{"name": name, "party": partyOf[name]},
		})
	}
	for _, e := range edges {
		if e.From == e.To {
			continue
		}
		out = append(out, Statement{
			Cypher: mergeCovotes,
			Params: map[string]any{"from": e.From, "to": e.To, "year": int64(year), "weight": e.Weight},
		})
	}
	return out
}

// Store writes graphs to a Neo4j database.
type Store struct {
	driver neo4j.DriverWithContext
}

// New connects to Neo4j and verifies connectivity.
func New(ctx context.Context, uri, username, password string) (*Store, error) {
	driver, err := neo4j.NewDriverWithContext(uri, neo4j.BasicAuth(username, password, ""))
	if err != nil {
		return nil, fmt.Errorf("neo4j driver: %w", err)
	}
	if err := driver.VerifyConnectivity(ctx); err != nil {
		_ = driver.Close(ctx)
		return nil, fmt.Errorf("neo4j connectivity: %w", err)
	}
	return &Store{driver: driver}, nil
}

// StoreGraph writes g for year in a single write transaction and returns the
// number of statements executed.
func (s *Store) StoreGraph(ctx context.Context, year int, g *core.Graph, partyOf map[string]string) (int, error) {
	stmts := Statements(year, g, partyOf)

	session := s.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close(ctx)

	_, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		for _, st := range stmts {
			if _, err := tx.Run(ctx, st.Cypher, st.Params); err != nil {
				return nil, err
			}
		}
		return nil, nil
	})
	if err != nil {
		return 0, fmt.Errorf("store graph %d: %w", year, err)
	}
	return len(stmts), nil
}

func (s *Store) Close(ctx context.Context) error {
	return s.driver.Close(ctx)
}
