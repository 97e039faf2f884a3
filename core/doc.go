// SPDX-License-Identifier: MIT

// Package core provides the weighted adjacency model used by every algorithm
// in wgraph.
//
// A Graph[N] maps each vertex to an ordered list of (neighbor, weight)
// entries. N is any comparable type: strings for hand-written fixtures,
// gridgraph.Point for grids, int64 for graphs imported from gonum.
//
// Model rules:
//
//   - Vertices are kept in insertion order; so are each vertex's neighbors.
//     Algorithms break ties by that order, so results are reproducible.
//   - Every neighbor referenced by an entry is itself a vertex. Isolated
//     vertices are present with an empty neighbor list.
//   - Weights are finite and ≥ 0. Self-loops are rejected.
//   - Undirected edges are stored as two entries with equal weight
//     (AddEdge). One-way arcs (AddArc) are allowed for directed inputs.
//   - Parallel edges are allowed.
//
// Construction:
//
//	g := core.NewGraph[string]()
//	_ = g.AddEdge("A", "B", 4)
//
//	g, err := core.FromEdges([]core.Edge[string]{{From: "A", To: "B", Weight: 4}}, "G")
//
//	g, err := core.FromEntries([]core.Row[string]{
//		{Vertex: "A", Neighbors: []core.Entry[string]{core.Weighted("B", 4), core.Plain("C")}},
//		...
//	})
//
// Raw neighbor entries are a tagged variant: Plain(v) means "v at the
// default weight 1", Weighted(v, w) carries an explicit weight. A zero-value
// Entry is rejected with ErrUnknownEntry.
//
// Errors:
//
//	ErrVertexNotFound  - requested vertex does not exist.
//	ErrSelfLoop        - an edge or entry references its own endpoint.
//	ErrNegativeWeight  - a weight below zero was supplied.
//	ErrBadWeight       - a weight is NaN or infinite.
//	ErrUnknownEntry    - a zero-value Entry (neither Plain nor Weighted).
//
// Concurrency: Graph carries no locks. Build it, then share it read-only.
package core
