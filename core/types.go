// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Graph, Edge, Neighbor, Row and the sentinel errors.

package core

import "errors"

// Sentinel errors for graph construction and queries.
var (
	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrSelfLoop indicates an edge whose endpoints are the same vertex.
	ErrSelfLoop = errors.New("core: self-loop not allowed")

	// ErrNegativeWeight indicates a weight below zero.
	ErrNegativeWeight = errors.New("core: negative edge weight")

	// ErrBadWeight indicates a NaN or infinite weight.
	ErrBadWeight = errors.New("core: weight must be a finite number")

	// ErrUnknownEntry indicates a zero-value Entry that was built without
	// Plain or Weighted.
	ErrUnknownEntry = errors.New("core: entry is neither plain nor weighted")
)

// DefaultWeight is the implicit cost of a Plain entry.
const DefaultWeight = 1.0

// Edge is a weighted connection between two vertices.
//
// For undirected graphs the orientation From→To only records the order in
// which the edge was first seen; weight(From→To) == weight(To→From).
type Edge[N comparable] struct {
	From   N
	To     N
	Weight float64
}

// Neighbor is one normalized adjacency entry: the vertex reached and the
// cost of the step.
type Neighbor[N comparable] struct {
	To     N
	Weight float64
}

// Row is one line of a raw adjacency list: a vertex and its neighbor entries,
// in the order they should be explored.
type Row[N comparable] struct {
	Vertex    N
	Neighbors []Entry[N]
}

// Graph is an in-memory weighted adjacency list.
//
// Vertices keep their insertion order, and each vertex keeps its neighbors in
// insertion order, so every algorithm that walks a Graph is deterministic.
// Parallel edges are allowed; self-loops are not. Weights are finite and
// non-negative.
//
// Graph has no internal locking. Build it first, then share it: concurrent
// readers are safe as long as nobody mutates the graph.
type Graph[N comparable] struct {
	order []N                 // vertex insertion order
	adj   map[N][]Neighbor[N] // vertex → outgoing entries
	arcs  int                 // number of directed adjacency entries
}

// NewGraph returns an empty Graph.
// Complexity: O(1).
func NewGraph[N comparable]() *Graph[N] {
	return &Graph[N]{
		adj: make(map[N][]Neighbor[N]),
	}
}
