// SPDX-License-Identifier: MIT

package prim_kruskal_test

import (
	"math"
	"math/rand"
	"reflect"
	"slices"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/wgraph/bfs"
	"github.com/katalvlaran/wgraph/converters"
	"github.com/katalvlaran/wgraph/core"
	"github.com/katalvlaran/wgraph/dfs"
	"github.com/katalvlaran/wgraph/prim_kruskal"
)

// randomGraph returns a graph on vertices 0..n-1. With connected set, a
// random spanning tree is laid first; extra edges follow. Weights are small
// integers so totals compare exactly.
func randomGraph(n int, seed int64, connected bool) *core.Graph[int] {
	rng := rand.New(rand.NewSource(seed))
	g := core.NewGraph[int]()
	for v := 0; v < n; v++ {
		g.AddVertex(v)
	}
	if connected {
		for v := 1; v < n; v++ {
			_ = g.AddEdge(v, rng.Intn(v), float64(rng.Intn(20)))
		}
	}
	for k := rng.Intn(2*n + 1); k > 0; k-- {
		u, v := rng.Intn(n), rng.Intn(n)
		if u == v {
			continue
		}
		_ = g.AddEdge(u, v, float64(rng.Intn(20)))
	}

	return g
}

// gonumMSTWeight runs gonum's Kruskal on the same graph.
func gonumMSTWeight(g *core.Graph[int]) (float64, bool) {
	src, _, err := converters.ToGonum(g)
	if err != nil {
		return 0, false
	}
	dst := simple.NewWeightedUndirectedGraph(0, math.Inf(1))

	return path.Kruskal(dst, src), true
}

// sortedComponents canonicalizes a component list for comparison.
func sortedComponents(comps [][]int) [][]int {
	out := make([][]int, len(comps))
	for i, c := range comps {
		out[i] = slices.Clone(c)
		slices.Sort(out[i])
	}
	slices.SortFunc(out, func(a, b []int) int { return a[0] - b[0] })

	return out
}

func TestProperties_ConnectedTotalsAgree(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 150
	properties := gopter.NewProperties(parameters)

	properties.Property("Kruskal, Prim and gonum agree on the MST weight", prop.ForAll(
		func(n int, seed int64) bool {
			g := randomGraph(n, seed, true)
			kt, kw, err := prim_kruskal.KruskalGraph(g)
			if err != nil {
				return false
			}
			pt, pw, err := prim_kruskal.Prim(g, 0)
			if err != nil {
				return false
			}
			gw, ok := gonumMSTWeight(g)

			return ok && kw == pw && kw == gw &&
				len(kt) == n-1 && len(pt) == n-1 &&
				prim_kruskal.Spanning(n, kt) && prim_kruskal.Spanning(n, pt)
		},
		gen.IntRange(1, 14),
		gen.Int64(),
	))

	properties.Property("Prim total does not depend on the root", prop.ForAll(
		func(n int, seed int64, root int) bool {
			g := randomGraph(n, seed, true)
			_, w0, err0 := prim_kruskal.Prim(g, 0)
			_, wr, errR := prim_kruskal.Prim(g, root%n)

			return err0 == nil && errR == nil && w0 == wr
		},
		gen.IntRange(1, 14),
		gen.Int64(),
		gen.IntRange(0, 100),
	))

	properties.TestingRun(t)
}

func TestProperties_Forest(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 150
	properties := gopter.NewProperties(parameters)

	check := func(g *core.Graph[int], tree []core.Edge[int], total float64) bool {
		comps, err := bfs.Components(g)
		if err != nil || len(tree) != g.Order()-len(comps) {
			return false
		}
		forest, err := core.FromEdges(tree, g.Vertices()...)
		if err != nil {
			return false
		}
		cyclic, err := dfs.HasCycle(forest)
		if err != nil || cyclic {
			return false
		}
		fcomps, err := bfs.Components(forest)
		if err != nil || !reflect.DeepEqual(sortedComponents(comps), sortedComponents(fcomps)) {
			return false
		}
		var sum float64
		for _, e := range tree {
			sum += e.Weight
		}

		return sum == total
	}

	properties.Property("spanning forests are acyclic and keep the components", prop.ForAll(
		func(n int, seed int64) bool {
			g := randomGraph(n, seed, false)
			kt, kw, errK := prim_kruskal.KruskalGraph(g)
			pt, pw, errP := prim_kruskal.PrimForest(g)

			return errK == nil && errP == nil && kw == pw &&
				check(g, kt, kw) && check(g, pt, pw)
		},
		gen.IntRange(1, 14),
		gen.Int64(),
	))

	properties.Property("repeated runs are identical", prop.ForAll(
		func(n int, seed int64) bool {
			g := randomGraph(n, seed, false)
			a, _, _ := prim_kruskal.KruskalGraph(g)
			b, _, _ := prim_kruskal.KruskalGraph(g)
			c, _, _ := prim_kruskal.PrimForest(g)
			d, _, _ := prim_kruskal.PrimForest(g)

			return reflect.DeepEqual(a, b) && reflect.DeepEqual(c, d)
		},
		gen.IntRange(1, 14),
		gen.Int64(),
	))

	properties.TestingRun(t)
}
