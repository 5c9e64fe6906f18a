// SPDX-License-Identifier: MIT

package neo4jstore_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/votegraph/core"
	"github.com/katalvlaran/votegraph/internal/neo4jstore"
)

func TestStatements_NodesThenEdges(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddUndirectedEdge("Bruno", "Ana", 0.8))
	require.NoError(t, g.AddEdge("Caio", "Caio", 1))
	partyOf := map[string]string{"Ana": "PT", "Bruno": "PL"}

	stmts := neo4jstore.Statements(2019, g, partyOf)

	require.Len(t, stmts, 5, "three nodes plus two directed edges, self-loop skipped")
	for _, st := range stmts[:3] {
		assert.True(t, strings.HasPrefix(st.Cypher, "MERGE (l:Legislator"))
	}
	assert.Equal(t, map[string]any{"name": "Ana", "party": "PT"}, stmts[0].Params)
	assert.Equal(t, map[string]any{"name": "Caio", "party": ""}, stmts[2].Params)

	assert.Contains(t, stmts[3].Cypher, "[r:COVOTES {year: $year}]")
	assert.Equal(t, map[string]any{"from": "Ana", "to": "Bruno", "year": int64(2019), "weight": 0.8}, stmts[3].Params)
	assert.Equal(t, "Bruno", stmts[4].Params["from"])
}

func TestStatements_EmptyGraph(t *testing.T) {
	assert.Empty(t, neo4jstore.Statements(2002, core.NewGraph(), nil))
}
