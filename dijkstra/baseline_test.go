// SPDX-License-Identifier: MIT

package dijkstra_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/wgraph/core"
	"github.com/katalvlaran/wgraph/dijkstra"
)

// TestDijkstra_MatchesGonum compares distances with gonum's Dijkstra on
// random sparse graphs.
func TestDijkstra_MatchesGonum(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for round := 0; round < 20; round++ {
		const n = 25
		g := core.NewGraph[int64]()
		ref := simple.NewWeightedUndirectedGraph(0, math.Inf(1))
		for i := int64(0); i < n; i++ {
			g.AddVertex(i)
			ref.AddNode(simple.Node(i))
		}
		for i := int64(0); i < n; i++ {
			for j := i + 1; j < n; j++ {
				if rng.Float64() > 0.15 {
					continue
				}
				w := float64(rng.Intn(20) + 1)
				require.NoError(t, g.AddEdge(i, j, w))
				ref.SetWeightedEdge(ref.NewWeightedEdge(simple.Node(i), simple.Node(j), w))
			}
		}

		dist, _, err := dijkstra.Dijkstra(g, 0)
		require.NoError(t, err)
		sp := path.DijkstraFrom(simple.Node(0), ref)
		for i := int64(0); i < n; i++ {
			assert.Equal(t, sp.WeightTo(i), dist[i], "round %d vertex %d", round, i)
		}
	}
}
