// SPDX-License-Identifier: MIT

package prim_kruskal

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/katalvlaran/wgraph/core"
	"github.com/katalvlaran/wgraph/unionfind"
)

// Kruskal computes a minimum spanning forest from an undirected edge list
// (each edge once) and the full vertex set.
//
// Ties in weight keep their order in edges. The result lists accepted edges
// in acceptance order, i.e. by non-decreasing weight. Iteration stops early
// once |nodes|-1 edges are accepted; on disconnected input it runs to the end
// and returns a forest.
//
// The whole edge list is validated before any edge is accepted:
//   - self-loop               → core.ErrSelfLoop
//   - negative / NaN / ±Inf   → core.ErrNegativeWeight / core.ErrBadWeight
//   - endpoint not in nodes   → unionfind.ErrUnknownElement
//
// Complexity: O(E log E + E·α(V)) time, O(V + E) memory.
func Kruskal[N comparable](edges []core.Edge[N], nodes []N, opts ...Option[N]) ([]core.Edge[N], float64, error) {
	o := buildOptions(opts)

	uf := unionfind.New(nodes...)
	for i, e := range edges {
		if e.From == e.To {
			return nil, 0, fmt.Errorf("edges[%d]: %w: %v", i, core.ErrSelfLoop, e.From)
		}
		if err := core.CheckWeight(e.Weight); err != nil {
			return nil, 0, fmt.Errorf("edges[%d]: %w", i, err)
		}
		if _, err := uf.Find(e.From); err != nil {
			return nil, 0, fmt.Errorf("edges[%d]: %w", i, err)
		}
		if _, err := uf.Find(e.To); err != nil {
			return nil, 0, fmt.Errorf("edges[%d]: %w", i, err)
		}
	}

	sorted := slices.Clone(edges)
	slices.SortStableFunc(sorted, func(a, b core.Edge[N]) int {
		return cmp.Compare(a.Weight, b.Weight)
	})

	order := uf.Len()
	tree := make([]core.Edge[N], 0, max(order-1, 0))
	var total float64
	for _, e := range sorted {
		if len(tree) == order-1 {
			break
		}
		merged, _ := uf.Union(e.From, e.To) // endpoints validated above
		if !merged {
			continue
		}
		tree = append(tree, e)
		total += e.Weight
		o.OnSelect(e, total)
	}

	return finish(o, order, tree, total)
}

// KruskalGraph runs Kruskal over graph.Edges() and graph.Vertices().
// Errors: ErrInvalidGraph for a nil or non-symmetric graph.
func KruskalGraph[N comparable](graph *core.Graph[N], opts ...Option[N]) ([]core.Edge[N], float64, error) {
	if err := checkGraph(graph); err != nil {
		return nil, 0, err
	}

	return Kruskal(graph.Edges(), graph.Vertices(), opts...)
}
