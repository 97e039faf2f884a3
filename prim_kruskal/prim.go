// SPDX-License-Identifier: MIT

package prim_kruskal

import (
	"fmt"

	"github.com/katalvlaran/wgraph/core"
	"github.com/katalvlaran/wgraph/frontier"
)

// Prim grows a minimum spanning tree of root's connected component.
//
// The frontier holds candidate edges keyed by weight; equal weights pop in
// the order they were queued, which follows neighbor insertion order.
// Edges are reported oriented away from the tree (From is already visited).
//
// Errors: ErrInvalidGraph, core.ErrVertexNotFound for an unknown root.
// With WithRequireSpanning, ErrDisconnected when root's component is not
// the whole graph.
//
// Complexity: O(E log E) time, O(V + E) memory.
func Prim[N comparable](graph *core.Graph[N], root N, opts ...Option[N]) ([]core.Edge[N], float64, error) {
	if err := checkGraph(graph); err != nil {
		return nil, 0, err
	}
	if !graph.HasVertex(root) {
		return nil, 0, fmt.Errorf("%w: root %v", core.ErrVertexNotFound, root)
	}

	o := buildOptions(opts)
	g := newGrower(graph, o)
	g.grow(root)

	return finish(o, graph.Order(), g.tree, g.total)
}

// PrimForest runs Prim from every vertex not yet visited, in insertion order,
// and returns the concatenated spanning forest. Its total equals the sum of
// the per-component minimum spanning trees.
//
// Errors: ErrInvalidGraph; ErrDisconnected with WithRequireSpanning.
func PrimForest[N comparable](graph *core.Graph[N], opts ...Option[N]) ([]core.Edge[N], float64, error) {
	if err := checkGraph(graph); err != nil {
		return nil, 0, err
	}

	o := buildOptions(opts)
	g := newGrower(graph, o)
	for _, v := range graph.Vertices() {
		if !g.visited[v] {
			g.grow(v)
		}
	}

	return finish(o, graph.Order(), g.tree, g.total)
}

// grower carries the state shared by successive Prim runs.
type grower[N comparable] struct {
	graph   *core.Graph[N]
	opts    MSTOptions[N]
	visited map[N]bool
	pq      *frontier.Queue[core.Edge[N]]
	tree    []core.Edge[N]
	total   float64
}

func newGrower[N comparable](graph *core.Graph[N], o MSTOptions[N]) *grower[N] {
	n := graph.Order()

	return &grower[N]{
		graph:   graph,
		opts:    o,
		visited: make(map[N]bool, n),
		pq:      frontier.New[core.Edge[N]](),
		tree:    make([]core.Edge[N], 0, max(n-1, 0)),
	}
}

// visit marks v and queues its edges to unvisited neighbors.
func (g *grower[N]) visit(v N) {
	g.visited[v] = true
	nbs, _ := g.graph.Neighbors(v) // v is a vertex of graph
	for _, nb := range nbs {
		if !g.visited[nb.To] {
			g.pq.Push(nb.Weight, core.Edge[N]{From: v, To: nb.To, Weight: nb.Weight})
		}
	}
}

// grow spans the component of root. The frontier is empty on return.
func (g *grower[N]) grow(root N) {
	g.visit(root)
	for {
		item, ok := g.pq.Pop()
		if !ok {
			return
		}
		e := item.Item
		if g.visited[e.To] {
			continue // stale
		}
		g.tree = append(g.tree, e)
		g.total += e.Weight
		g.opts.OnSelect(e, g.total)
		g.visit(e.To)
	}
}
