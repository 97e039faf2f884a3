// SPDX-License-Identifier: MIT

package dfs_test

import (
	"math/rand"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/katalvlaran/wgraph/converters"
	"github.com/katalvlaran/wgraph/core"
	"github.com/katalvlaran/wgraph/dfs"
)

func TestHasCycle_Cases(t *testing.T) {
	cases := []struct {
		name  string
		edges []core.Edge[string]
		want  bool
	}{
		{"empty", nil, false},
		{"path", []core.Edge[string]{{From: "A", To: "B", Weight: 1}, {From: "B", To: "C", Weight: 1}}, false},
		{"triangle", []core.Edge[string]{
			{From: "A", To: "B", Weight: 1}, {From: "B", To: "C", Weight: 1}, {From: "C", To: "A", Weight: 1},
		}, true},
		{"parallel", []core.Edge[string]{{From: "A", To: "B", Weight: 1}, {From: "A", To: "B", Weight: 2}}, true},
		{"forest", []core.Edge[string]{{From: "A", To: "B", Weight: 1}, {From: "C", To: "D", Weight: 1}}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := core.FromEdges(tc.edges)
			require.NoError(t, err)
			got, err := dfs.HasCycle(g)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	got, err := dfs.HasCycle[string](nil)
	assert.NoError(t, err)
	assert.False(t, got)
}

func TestHasCycle_RejectsDirected(t *testing.T) {
	_, err := dfs.HasCycle(buildChain(t, 3))
	assert.ErrorIs(t, err, dfs.ErrNotUndirected)
}

// A simple undirected graph is acyclic iff E == V - components.
func TestHasCycle_MatchesEdgeCount(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("cycle iff E > V - components", prop.ForAll(
		func(n int, seed int64) bool {
			rng := rand.New(rand.NewSource(seed))
			g := core.NewGraph[int]()
			for v := 0; v < n; v++ {
				g.AddVertex(v)
			}
			seen := make(map[[2]int]bool)
			edges := 0
			for k := rng.Intn(n + 2); k > 0; k-- {
				u, v := rng.Intn(n), rng.Intn(n)
				if u == v {
					continue
				}
				if u > v {
					u, v = v, u
				}
				if seen[[2]int{u, v}] {
					continue
				}
				seen[[2]int{u, v}] = true
				_ = g.AddEdge(u, v, 1)
				edges++
			}

			gg, _, err := converters.ToGonum(g)
			if err != nil {
				return false
			}
			comps := len(topo.ConnectedComponents(gg))
			got, err := dfs.HasCycle(g)

			return err == nil && got == (edges > n-comps)
		},
		gen.IntRange(1, 12),
		gen.Int64(),
	))

	properties.TestingRun(t)
}
