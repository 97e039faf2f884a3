// SPDX-License-Identifier: MIT

package dfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wgraph/core"
	"github.com/katalvlaran/wgraph/dfs"
)

// diamond builds A–B, A–C, B–D, C–D, D–E plus isolated F and a separate G–H.
func diamond(t *testing.T) *core.Graph[string] {
	t.Helper()
	g, err := core.FromEdges([]core.Edge[string]{
		{From: "A", To: "B", Weight: 1},
		{From: "A", To: "C", Weight: 1},
		{From: "B", To: "D", Weight: 1},
		{From: "C", To: "D", Weight: 1},
		{From: "D", To: "E", Weight: 1},
		{From: "G", To: "H", Weight: 1},
	}, "F")
	require.NoError(t, err)

	return g
}

// buildChain creates a directed chain 0→1→…→n-1.
func buildChain(t testing.TB, n int) *core.Graph[int] {
	t.Helper()
	rows := make([]core.Row[int], n)
	for i := range rows {
		rows[i].Vertex = i
		if i+1 < n {
			rows[i].Neighbors = []core.Entry[int]{core.Plain(i + 1)}
		}
	}
	g, err := core.FromEntries(rows)
	require.NoError(t, err)

	return g
}

func TestDFS_Errors(t *testing.T) {
	_, err := dfs.DFS[string](nil, "A")
	assert.ErrorIs(t, err, dfs.ErrGraphNil)

	_, err = dfs.DFS(core.NewGraph[string](), "missing")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestDFS_PreAndPostOrder(t *testing.T) {
	res, err := dfs.DFS(diamond(t), "A")
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B", "D", "C", "E"}, res.Order)
	assert.Equal(t, []string{"C", "E", "D", "B", "A"}, res.PostOrder)
	assert.Equal(t, "D", res.Parent["C"])
	assert.Equal(t, 3, res.Depth["C"])
	assert.Equal(t, 3, res.Depth["E"])
	_, hasParent := res.Parent["A"]
	assert.False(t, hasParent)
}

func TestDFS_MaxDepthAndFilter(t *testing.T) {
	g := diamond(t)

	res, err := dfs.DFS(g, "A", dfs.WithMaxDepth[string](1))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, res.Order)

	res, err = dfs.DFS(g, "A", dfs.WithFilterNeighbor(func(v string) bool { return v != "D" }))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, res.Order)
	assert.Equal(t, 2, res.SkippedNeighbors)
}

func TestDFS_FullTraversal(t *testing.T) {
	res, err := dfs.DFS(diamond(t), "ignored", dfs.WithFullTraversal[string]())
	require.NoError(t, err)
	assert.Equal(t, []string{"F", "A", "B", "D", "C", "E", "G", "H"}, res.Order)
	assert.Len(t, res.PostOrder, 8)
}

func TestDFS_HookErrors(t *testing.T) {
	g := diamond(t)
	boom := errors.New("boom")

	res, err := dfs.DFS(g, "A", dfs.WithOnVisit(func(v string) error {
		if v == "D" {
			return boom
		}

		return nil
	}))
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, []string{"A", "B", "D"}, res.Order)
	assert.Nil(t, res.PostOrder)

	var exited []string
	_, err = dfs.DFS(g, "A", dfs.WithOnExit(func(v string) error {
		exited = append(exited, v)
		if v == "E" {
			return boom
		}

		return nil
	}))
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, []string{"C", "E"}, exited)
}

func TestDFS_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := dfs.DFS(diamond(t), "A", dfs.WithContext[string](ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDFS_DeepChainIsIterative(t *testing.T) {
	const n = 200000
	res, err := dfs.DFS(buildChain(t, n), 0)
	require.NoError(t, err)
	assert.Len(t, res.Order, n)
	assert.Equal(t, n-1, res.Depth[n-1])
}
