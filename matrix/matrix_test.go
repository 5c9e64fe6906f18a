// SPDX-License-Identifier: MIT
// Package matrix_test covers Dense accessors and the similarity builder.

package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/votegraph/core"
	"github.com/katalvlaran/votegraph/matrix"
)

// MustDense allocates an r×c *Dense or aborts the test.
func MustDense(t *testing.T, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err)
	return m
}

func TestNewDense_Shape(t *testing.T) {
	m := MustDense(t, 2, 3)
	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 3, m.Cols())

	empty := MustDense(t, 0, 0)
	assert.Nil(t, empty.Row(0))

	_, err := matrix.NewDense(-1, 2)
	require.ErrorIs(t, err, matrix.ErrBadShape)
}

func TestDense_AtSetBounds(t *testing.T) {
	m := MustDense(t, 2, 2)
	require.NoError(t, m.Set(1, 0, 0.5))

	v, err := m.At(1, 0)
	require.NoError(t, err)
	assert.Equal(t, 0.5, v)

	for _, idx := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}} {
		_, err = m.At(idx[0], idx[1])
		assert.ErrorIs(t, err, matrix.ErrOutOfRange)
		assert.ErrorIs(t, m.Set(idx[0], idx[1], 1), matrix.ErrOutOfRange)
	}
}

func TestDense_SetRejectsNonFinite(t *testing.T) {
	m := MustDense(t, 1, 1)
	assert.ErrorIs(t, m.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
	assert.ErrorIs(t, m.Set(0, 0, math.Inf(-1)), matrix.ErrNaNInf)
	v, _ := m.At(0, 0)
	assert.Zero(t, v)
}

func TestDense_RowIsCopy(t *testing.T) {
	m := MustDense(t, 2, 2)
	require.NoError(t, m.Set(0, 1, 1))

	row := m.Row(0)
	assert.Equal(t, []float64{0, 1}, row)
	row[1] = 2
	v, _ := m.At(0, 1)
	assert.Equal(t, 1.0, v)
	assert.Nil(t, m.Row(5))
}

func TestNewSimilarity_OrderAndCells(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddUndirectedEdge("Ana", "Caio", 0.2))
	require.NoError(t, g.AddUndirectedEdge("Ana", "Bruno", 0.8))
	require.NoError(t, g.AddEdge("Bruno", "Bruno", 1)) // self-loop is not a tie
	partyOf := map[string]string{"Ana": "PT", "Bruno": "PT", "Caio": "PSOL", "Davi": "PL"}

	sim, err := matrix.NewSimilarity(g, partyOf)
	require.NoError(t, err)

	assert.Equal(t, []string{"Davi", "Caio", "Ana", "Bruno"}, sim.Names)
	assert.Equal(t, []string{"Davi-(PL)", "Caio-(PSOL)", "Ana-(PT)", "Bruno-(PT)"}, sim.Labels())
	assert.Equal(t, 4, sim.Len())

	want := [][]float64{
		{0, 0, 0, 0},
		{0, 0, 0.2, 0},
		{0, 0.2, 0, 0.8},
		{0, 0, 0.8, 0},
	}
	for i, row := range want {
		assert.Equal(t, row, sim.Row(i), "row %s", sim.Names[i])
	}
}

func TestNewSimilarity_NilGraph(t *testing.T) {
	_, err := matrix.NewSimilarity(nil, nil)
	require.ErrorIs(t, err, matrix.ErrGraphNil)
}
