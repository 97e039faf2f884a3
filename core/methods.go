// SPDX-License-Identifier: MIT
//
// File: methods.go
// Role: vertex/edge mutation and read-only queries on Graph.
// Policy:
//   - Weights are validated on every insertion (finite, non-negative).
//   - Every returned slice is a fresh copy; callers may keep or mutate it.

package core

import (
	"fmt"
	"math"
)

// AddVertex inserts v if it is not present yet. Re-adding is a no-op.
// Complexity: O(1) amortized.
func (g *Graph[N]) AddVertex(v N) {
	if _, ok := g.adj[v]; ok {
		return
	}
	g.adj[v] = nil
	g.order = append(g.order, v)
}

// HasVertex reports whether v is a vertex of g.
// Complexity: O(1).
func (g *Graph[N]) HasVertex(v N) bool {
	_, ok := g.adj[v]

	return ok
}

// AddEdge inserts an undirected edge u—v as two adjacency entries carrying
// the same weight. Missing endpoints are created.
//
// Errors: ErrSelfLoop, ErrNegativeWeight, ErrBadWeight.
// Complexity: O(1) amortized.
func (g *Graph[N]) AddEdge(u, v N, weight float64) error {
	if u == v {
		return fmt.Errorf("%w: %v—%v", ErrSelfLoop, u, v)
	}
	if err := CheckWeight(weight); err != nil {
		return fmt.Errorf("edge %v—%v: %w", u, v, err)
	}
	g.AddVertex(u)
	g.AddVertex(v)
	g.adj[u] = append(g.adj[u], Neighbor[N]{To: v, Weight: weight})
	g.adj[v] = append(g.adj[v], Neighbor[N]{To: u, Weight: weight})
	g.arcs += 2

	return nil
}

// AddArc inserts a single directed adjacency entry u→v.
// Unlike AddEdge it does not create missing endpoints: an arc must point
// between known vertices, otherwise ErrVertexNotFound is returned.
//
// Errors: ErrVertexNotFound, ErrSelfLoop, ErrNegativeWeight, ErrBadWeight.
// Complexity: O(1) amortized.
func (g *Graph[N]) AddArc(u, v N, weight float64) error {
	if !g.HasVertex(u) {
		return fmt.Errorf("%w: arc source %v", ErrVertexNotFound, u)
	}
	if !g.HasVertex(v) {
		return fmt.Errorf("%w: arc target %v (from %v)", ErrVertexNotFound, v, u)
	}
	if u == v {
		return fmt.Errorf("%w: %v→%v", ErrSelfLoop, u, v)
	}
	if err := CheckWeight(weight); err != nil {
		return fmt.Errorf("arc %v→%v: %w", u, v, err)
	}
	g.adj[u] = append(g.adj[u], Neighbor[N]{To: v, Weight: weight})
	g.arcs++

	return nil
}

// Neighbors returns a copy of v's adjacency entries in insertion order.
// Complexity: O(deg(v)).
func (g *Graph[N]) Neighbors(v N) ([]Neighbor[N], error) {
	nbs, ok := g.adj[v]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrVertexNotFound, v)
	}
	out := make([]Neighbor[N], len(nbs))
	copy(out, nbs)

	return out, nil
}

// Vertices returns all vertices in insertion order.
// Complexity: O(V).
func (g *Graph[N]) Vertices() []N {
	out := make([]N, len(g.order))
	copy(out, g.order)

	return out
}

// Order returns the number of vertices.
func (g *Graph[N]) Order() int { return len(g.order) }

// Size returns the number of directed adjacency entries. An undirected edge
// counts twice.
func (g *Graph[N]) Size() int { return g.arcs }

// arcKey identifies a pending reverse entry while pairing arcs into edges.
type arcKey[N comparable] struct {
	from, to N
	weight   float64
}

// Edges returns the edge list of g: every undirected edge once (in the
// orientation it was first seen) and every unpaired arc once.
//
// Pairing walks vertices and their neighbors in insertion order; an entry
// v→u with weight w is folded into an earlier u→v with the same weight.
// Complexity: O(V + E).
func (g *Graph[N]) Edges() []Edge[N] {
	out := make([]Edge[N], 0, g.arcs/2)
	pending := make(map[arcKey[N]]int)
	for _, u := range g.order {
		for _, nb := range g.adj[u] {
			mirror := arcKey[N]{from: nb.To, to: u, weight: nb.Weight}
			if pending[mirror] > 0 {
				pending[mirror]--
				continue
			}
			out = append(out, Edge[N]{From: u, To: nb.To, Weight: nb.Weight})
			pending[arcKey[N]{from: u, to: nb.To, weight: nb.Weight}]++
		}
	}

	return out
}

// Symmetric reports whether every entry u→v has a matching v→u entry with
// the same weight, i.e. whether g describes an undirected graph.
// Complexity: O(V + E).
func (g *Graph[N]) Symmetric() bool {
	balance := make(map[arcKey[N]]int)
	for _, u := range g.order {
		for _, nb := range g.adj[u] {
			balance[arcKey[N]{from: u, to: nb.To, weight: nb.Weight}]++
		}
	}
	for k, n := range balance {
		if balance[arcKey[N]{from: k.to, to: k.from, weight: k.weight}] != n {
			return false
		}
	}

	return true
}

// Clone returns a deep copy of g.
// Complexity: O(V + E).
func (g *Graph[N]) Clone() *Graph[N] {
	c := &Graph[N]{
		order: make([]N, len(g.order)),
		adj:   make(map[N][]Neighbor[N], len(g.adj)),
		arcs:  g.arcs,
	}
	copy(c.order, g.order)
	for v, nbs := range g.adj {
		if nbs == nil {
			c.adj[v] = nil
			continue
		}
		c.adj[v] = append([]Neighbor[N](nil), nbs...)
	}

	return c
}

// CheckWeight validates a single edge weight: it must be finite and ≥ 0.
func CheckWeight(w float64) error {
	if math.IsNaN(w) || math.IsInf(w, 0) {
		return fmt.Errorf("%w: got %v", ErrBadWeight, w)
	}
	if w < 0 {
		return fmt.Errorf("%w: got %v", ErrNegativeWeight, w)
	}

	return nil
}
