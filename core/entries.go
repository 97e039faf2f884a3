// SPDX-License-Identifier: MIT
//
// File: entries.go
// Role: tagged neighbor entries and the bulk constructors built on them.
// Determinism:
//   - FromEdges/FromEntries keep caller order.
//   - FromMap sorts keys with the supplied compare function.

package core

import (
	"fmt"
	"slices"
)

// entryKind tags an Entry. The zero value is invalid on purpose so that an
// Entry{} literal is caught by the constructors.
type entryKind uint8

const (
	kindUnknown entryKind = iota
	kindPlain
	kindWeighted
)

// Entry is one raw neighbor entry: either a bare neighbor (Plain) or a
// neighbor with an explicit weight (Weighted).
type Entry[N comparable] struct {
	to     N
	weight float64
	kind   entryKind
}

// Plain returns an entry for neighbor v at DefaultWeight.
func Plain[N comparable](v N) Entry[N] {
	return Entry[N]{to: v, weight: DefaultWeight, kind: kindPlain}
}

// Weighted returns an entry for neighbor v with weight w.
// The weight is validated when the entry is added to a graph.
func Weighted[N comparable](v N, w float64) Entry[N] {
	return Entry[N]{to: v, weight: w, kind: kindWeighted}
}

// Neighbor resolves e into a normalized Neighbor.
// Errors: ErrUnknownEntry for a zero-value Entry.
func (e Entry[N]) Neighbor() (Neighbor[N], error) {
	if e.kind == kindUnknown {
		return Neighbor[N]{}, ErrUnknownEntry
	}

	return Neighbor[N]{To: e.to, Weight: e.weight}, nil
}

// IsPlain reports whether e was built with Plain.
func (e Entry[N]) IsPlain() bool { return e.kind == kindPlain }

// FromEdges builds an undirected graph from an edge list, plus any isolated
// vertices. Vertices appear in order of first mention: isolated ones first,
// then edge endpoints.
//
// Errors: ErrSelfLoop, ErrNegativeWeight, ErrBadWeight (wrapped with the
// offending edge index).
// Complexity: O(V + E).
func FromEdges[N comparable](edges []Edge[N], isolated ...N) (*Graph[N], error) {
	g := NewGraph[N]()
	for _, v := range isolated {
		g.AddVertex(v)
	}
	for i, e := range edges {
		if err := g.AddEdge(e.From, e.To, e.Weight); err != nil {
			return nil, fmt.Errorf("edges[%d]: %w", i, err)
		}
	}

	return g, nil
}

// FromEntries builds a graph from adjacency rows, taken as directed entries
// in the given order. A row repeated for the same vertex extends its list.
// Every neighbor must be the key of some row.
//
// Undirected input is expected to list each edge in both rows; Symmetric
// reports whether it does.
//
// Errors: ErrUnknownEntry, ErrVertexNotFound, ErrSelfLoop,
// ErrNegativeWeight, ErrBadWeight.
// Complexity: O(V + E).
func FromEntries[N comparable](rows []Row[N]) (*Graph[N], error) {
	g := NewGraph[N]()
	for _, r := range rows {
		g.AddVertex(r.Vertex)
	}
	for _, r := range rows {
		for j, e := range r.Neighbors {
			nb, err := e.Neighbor()
			if err != nil {
				return nil, fmt.Errorf("vertex %v entry %d: %w", r.Vertex, j, err)
			}
			if err = g.AddArc(r.Vertex, nb.To, nb.Weight); err != nil {
				return nil, fmt.Errorf("vertex %v entry %d: %w", r.Vertex, j, err)
			}
		}
	}

	return g, nil
}

// FromMap is FromEntries over a map. Keys are sorted with cmp first, so the
// result does not depend on map iteration order. cmp must not be nil.
func FromMap[N comparable](m map[N][]Entry[N], cmp func(a, b N) int) (*Graph[N], error) {
	if cmp == nil {
		panic("core: FromMap requires a compare function")
	}
	keys := make([]N, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, cmp)

	rows := make([]Row[N], len(keys))
	for i, k := range keys {
		rows[i] = Row[N]{Vertex: k, Neighbors: m[k]}
	}

	return FromEntries(rows)
}
