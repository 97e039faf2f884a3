// SPDX-License-Identifier: MIT

package converters

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/wgraph/core"
)

var (
	// ErrNilGraph indicates a nil source graph.
	ErrNilGraph = errors.New("converters: graph is nil")

	// ErrNotUndirected indicates ToGonum was given a graph with one-way arcs.
	ErrNotUndirected = errors.New("converters: graph has one-way arcs")
)

// Index maps core vertices to gonum node IDs and back.
type Index[N comparable] struct {
	ids   map[N]int64
	verts []N
}

func newIndex[N comparable](vs []N) *Index[N] {
	idx := &Index[N]{ids: make(map[N]int64, len(vs)), verts: vs}
	for i, v := range vs {
		idx.ids[v] = int64(i)
	}

	return idx
}

// ID returns the gonum node ID of v.
func (x *Index[N]) ID(v N) (int64, bool) {
	id, ok := x.ids[v]

	return id, ok
}

// Vertex returns the core vertex with gonum node ID id.
func (x *Index[N]) Vertex(id int64) (N, bool) {
	if id < 0 || id >= int64(len(x.verts)) {
		var zero N
		return zero, false
	}

	return x.verts[id], true
}

// Len returns the number of indexed vertices.
func (x *Index[N]) Len() int { return len(x.verts) }

// weightedBuilder is the part of simple's weighted graphs that fill writes to.
type weightedBuilder interface {
	graph.WeightedBuilder
	WeightedEdge(uid, vid int64) graph.WeightedEdge
}

// fill copies the indexed vertices and the given arcs into dst, keeping the
// lightest weight per pair.
func fill[N comparable](dst weightedBuilder, idx *Index[N], arcs []core.Edge[N]) {
	for i := range idx.verts {
		dst.AddNode(simple.Node(int64(i)))
	}
	for _, e := range arcs {
		u, v := idx.ids[e.From], idx.ids[e.To]
		if old := dst.WeightedEdge(u, v); old != nil && old.Weight() <= e.Weight {
			continue
		}
		dst.SetWeightedEdge(dst.NewWeightedEdge(simple.Node(u), simple.Node(v), e.Weight))
	}
}

// ToGonum converts an undirected core graph into a gonum weighted undirected
// graph. Absent edges report weight +Inf; self weight is 0.
//
// Errors: ErrNilGraph, ErrNotUndirected.
func ToGonum[N comparable](g *core.Graph[N]) (*simple.WeightedUndirectedGraph, *Index[N], error) {
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.Symmetric() {
		return nil, nil, ErrNotUndirected
	}
	idx := newIndex(g.Vertices())
	dst := simple.NewWeightedUndirectedGraph(0, math.Inf(1))
	fill(dst, idx, g.Edges())

	return dst, idx, nil
}

// ToGonumDirected converts every adjacency entry of g into a directed gonum
// edge, so an undirected core edge becomes two opposite gonum edges.
//
// Errors: ErrNilGraph.
func ToGonumDirected[N comparable](g *core.Graph[N]) (*simple.WeightedDirectedGraph, *Index[N], error) {
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	idx := newIndex(g.Vertices())
	arcs := make([]core.Edge[N], 0, g.Size())
	for _, u := range idx.verts {
		nbs, _ := g.Neighbors(u)
		for _, nb := range nbs {
			arcs = append(arcs, core.Edge[N]{From: u, To: nb.To, Weight: nb.Weight})
		}
	}
	dst := simple.NewWeightedDirectedGraph(0, math.Inf(1))
	fill(dst, idx, arcs)

	return dst, idx, nil
}

// FromGonum converts a gonum weighted undirected graph into a core graph
// keyed by node ID. Vertices and neighbors are visited in ascending ID
// order.
//
// Errors: ErrNilGraph, and the core errors for edges core rejects
// (self-loops, negative or non-finite weights).
func FromGonum(src graph.WeightedUndirected) (*core.Graph[int64], error) {
	if src == nil {
		return nil, ErrNilGraph
	}
	ids := sortedIDs(src.Nodes())
	g := core.NewGraph[int64]()
	for _, id := range ids {
		g.AddVertex(id)
	}
	for _, uid := range ids {
		for _, vid := range sortedIDs(src.From(uid)) {
			if vid < uid {
				continue // added from the other side
			}
			w := src.WeightedEdge(uid, vid).Weight()
			if err := g.AddEdge(uid, vid, w); err != nil {
				return nil, fmt.Errorf("gonum edge %d-%d: %w", uid, vid, err)
			}
		}
	}

	return g, nil
}

func sortedIDs(it graph.Nodes) []int64 {
	var ids []int64
	for it.Next() {
		ids = append(ids, it.Node().ID())
	}
	slices.Sort(ids)

	return ids
}
