// SPDX-License-Identifier: MIT

package core_test

import (
	"cmp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wgraph/core"
)

func TestEntry_Variants(t *testing.T) {
	p, err := core.Plain("B").Neighbor()
	require.NoError(t, err)
	assert.Equal(t, core.Neighbor[string]{To: "B", Weight: core.DefaultWeight}, p)
	assert.True(t, core.Plain("B").IsPlain())

	w, err := core.Weighted("C", 2.5).Neighbor()
	require.NoError(t, err)
	assert.Equal(t, core.Neighbor[string]{To: "C", Weight: 2.5}, w)
	assert.False(t, core.Weighted("C", 2.5).IsPlain())

	_, err = core.Entry[string]{}.Neighbor()
	assert.ErrorIs(t, err, core.ErrUnknownEntry)
}

func TestFromEdges(t *testing.T) {
	g, err := core.FromEdges([]core.Edge[string]{
		{From: "A", To: "B", Weight: 4},
		{From: "B", To: "C", Weight: 1},
	}, "G")
	require.NoError(t, err)

	assert.Equal(t, []string{"G", "A", "B", "C"}, g.Vertices())
	assert.True(t, g.Symmetric())
	nbs, err := g.Neighbors("G")
	require.NoError(t, err)
	assert.Empty(t, nbs)

	_, err = core.FromEdges([]core.Edge[string]{{From: "A", To: "A", Weight: 1}})
	assert.ErrorIs(t, err, core.ErrSelfLoop)
	assert.ErrorContains(t, err, "edges[0]")
}

func TestFromEntries_MixedEntries(t *testing.T) {
	g, err := core.FromEntries([]core.Row[string]{
		{Vertex: "A", Neighbors: []core.Entry[string]{core.Weighted("B", 4), core.Plain("C")}},
		{Vertex: "B", Neighbors: []core.Entry[string]{core.Weighted("A", 4)}},
		{Vertex: "C", Neighbors: []core.Entry[string]{core.Plain("A")}},
	})
	require.NoError(t, err)

	nbs, err := g.Neighbors("A")
	require.NoError(t, err)
	assert.Equal(t, []core.Neighbor[string]{{To: "B", Weight: 4}, {To: "C", Weight: 1}}, nbs)
	assert.True(t, g.Symmetric())
	assert.Len(t, g.Edges(), 2)
}

func TestFromEntries_Errors(t *testing.T) {
	cases := []struct {
		name string
		rows []core.Row[string]
		want error
	}{
		{
			name: "dangling neighbor",
			rows: []core.Row[string]{{Vertex: "A", Neighbors: []core.Entry[string]{core.Plain("X")}}},
			want: core.ErrVertexNotFound,
		},
		{
			name: "zero entry",
			rows: []core.Row[string]{{Vertex: "A", Neighbors: []core.Entry[string]{{}}}},
			want: core.ErrUnknownEntry,
		},
		{
			name: "self loop",
			rows: []core.Row[string]{{Vertex: "A", Neighbors: []core.Entry[string]{core.Plain("A")}}},
			want: core.ErrSelfLoop,
		},
		{
			name: "negative",
			rows: []core.Row[string]{
				{Vertex: "A", Neighbors: []core.Entry[string]{core.Weighted("B", -3)}},
				{Vertex: "B"},
			},
			want: core.ErrNegativeWeight,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := core.FromEntries(tc.rows)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestFromMap_SortedKeys(t *testing.T) {
	g, err := core.FromMap(map[string][]core.Entry[string]{
		"C": {core.Plain("A")},
		"A": {core.Plain("C"), core.Weighted("B", 2)},
		"B": {core.Weighted("A", 2)},
	}, cmp.Compare[string])
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, g.Vertices())

	assert.Panics(t, func() {
		_, _ = core.FromMap(map[string][]core.Entry[string]{}, nil)
	})
}
