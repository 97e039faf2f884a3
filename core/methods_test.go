// SPDX-License-Identifier: MIT
// Package core_test verifies Graph construction and query contracts.

package core_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wgraph/core"
)

// TestAddVertex_Idempotent checks insertion order and duplicate no-op.
func TestAddVertex_Idempotent(t *testing.T) {
	g := core.NewGraph[string]()
	g.AddVertex("B")
	g.AddVertex("A")
	g.AddVertex("B")

	assert.Equal(t, []string{"B", "A"}, g.Vertices())
	assert.Equal(t, 2, g.Order())
	assert.Equal(t, 0, g.Size())
	assert.True(t, g.HasVertex("A"))
	assert.False(t, g.HasVertex("Z"))

	nbs, err := g.Neighbors("A")
	require.NoError(t, err)
	assert.Empty(t, nbs)
}

// TestAddEdge_Mirrors checks that an undirected edge yields two entries.
func TestAddEdge_Mirrors(t *testing.T) {
	g := core.NewGraph[string]()
	require.NoError(t, g.AddEdge("A", "B", 4))

	ab, err := g.Neighbors("A")
	require.NoError(t, err)
	ba, err := g.Neighbors("B")
	require.NoError(t, err)

	assert.Equal(t, []core.Neighbor[string]{{To: "B", Weight: 4}}, ab)
	assert.Equal(t, []core.Neighbor[string]{{To: "A", Weight: 4}}, ba)
	assert.Equal(t, 2, g.Size())
	assert.True(t, g.Symmetric())
}

// TestAddEdge_Rejects covers self-loop and weight validation.
func TestAddEdge_Rejects(t *testing.T) {
	g := core.NewGraph[string]()

	assert.ErrorIs(t, g.AddEdge("A", "A", 1), core.ErrSelfLoop)
	assert.ErrorIs(t, g.AddEdge("A", "B", -1), core.ErrNegativeWeight)
	assert.ErrorIs(t, g.AddEdge("A", "B", math.NaN()), core.ErrBadWeight)
	assert.ErrorIs(t, g.AddEdge("A", "B", math.Inf(1)), core.ErrBadWeight)

	// Nothing was inserted by the failed calls.
	assert.Equal(t, 0, g.Order())
}

// TestAddArc_RequiresEndpoints checks that arcs never create vertices.
func TestAddArc_RequiresEndpoints(t *testing.T) {
	g := core.NewGraph[int]()
	g.AddVertex(1)

	assert.ErrorIs(t, g.AddArc(1, 2, 1), core.ErrVertexNotFound)
	assert.ErrorIs(t, g.AddArc(2, 1, 1), core.ErrVertexNotFound)

	g.AddVertex(2)
	require.NoError(t, g.AddArc(1, 2, 0))
	assert.Equal(t, 1, g.Size())
	assert.False(t, g.Symmetric())
}

// TestNeighbors_Missing checks the not-found sentinel.
func TestNeighbors_Missing(t *testing.T) {
	g := core.NewGraph[string]()
	_, err := g.Neighbors("X")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

// TestEdges_DedupesMirrors checks that Edges reports each undirected edge once,
// keeps parallel edges and reports one-way arcs.
func TestEdges_DedupesMirrors(t *testing.T) {
	g := core.NewGraph[string]()
	require.NoError(t, g.AddEdge("A", "B", 2))
	require.NoError(t, g.AddEdge("B", "C", 1))
	require.NoError(t, g.AddEdge("A", "B", 2)) // parallel
	require.NoError(t, g.AddArc("C", "A", 7))  // one-way

	want := []core.Edge[string]{
		{From: "A", To: "B", Weight: 2},
		{From: "A", To: "B", Weight: 2},
		{From: "B", To: "C", Weight: 1},
		{From: "C", To: "A", Weight: 7},
	}
	assert.Equal(t, want, g.Edges())
}

// TestClone_Independent checks that a clone does not share adjacency.
func TestClone_Independent(t *testing.T) {
	g := core.NewGraph[string]()
	require.NoError(t, g.AddEdge("A", "B", 1))
	g.AddVertex("Z")

	c := g.Clone()
	require.NoError(t, c.AddEdge("A", "C", 3))

	assert.Equal(t, []string{"A", "B", "Z"}, g.Vertices())
	assert.Equal(t, []string{"A", "B", "Z", "C"}, c.Vertices())
	assert.Len(t, g.Edges(), 1)
	assert.Len(t, c.Edges(), 2)
}

// TestCheckWeight covers the boundary values.
func TestCheckWeight(t *testing.T) {
	assert.NoError(t, core.CheckWeight(0))
	assert.NoError(t, core.CheckWeight(1e300))
	assert.ErrorIs(t, core.CheckWeight(-0.5), core.ErrNegativeWeight)
	assert.ErrorIs(t, core.CheckWeight(math.Inf(-1)), core.ErrBadWeight)
}
