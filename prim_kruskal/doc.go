// SPDX-License-Identifier: MIT

// Package prim_kruskal builds minimum spanning trees (MST) and forests of
// undirected weighted graphs with two independent algorithms that must agree
// on total weight.
//
// Kruskal (greedy edge selection):
//
//  1. Stable-sort all edges by weight; equal weights keep input order.
//  2. Walk the sorted edges; accept an edge when its endpoints are in
//     different disjoint sets (unionfind), and merge the sets.
//  3. Stop as soon as |V|-1 edges are accepted.
//
// Prim (frontier growth):
//
//  1. Mark the root visited and queue its incident edges by weight.
//  2. Pop the lightest edge; skip it when its far endpoint is already
//     visited (stale); otherwise accept it, mark the endpoint and queue the
//     endpoint's edges to unvisited neighbors.
//  3. Stop when the frontier is empty: the root's component is spanned.
//
// PrimForest repeats Prim from every vertex not yet visited, in insertion
// order, sharing one visited set.
//
// Disconnected input is not an error: Kruskal and PrimForest return a
// minimum spanning forest (fewer than |V|-1 edges) and Prim spans the root's
// component only. Spanning reports whether a result is a full tree;
// WithRequireSpanning turns a forest into ErrDisconnected.
//
// Complexity:
//
//   - Kruskal: O(E log E + E·α(V)) time, O(V + E) memory.
//   - Prim:    O(E log E) time with a lazy frontier, O(V + E) memory.
//
// Errors:
//
//   - ErrInvalidGraph:   graph is nil or not symmetric (directed arcs).
//   - ErrUnknownMethod:  Compute was asked for an unsupported method.
//   - ErrDisconnected:   WithRequireSpanning and the result is a forest.
//   - core.ErrVertexNotFound: Prim root is not in the graph.
//   - core.ErrSelfLoop, core.ErrNegativeWeight, core.ErrBadWeight and
//     unionfind.ErrUnknownElement: malformed Kruskal edge list.
//
// Example:
//
//	tree, total, err := prim_kruskal.Compute(g,
//		prim_kruskal.WithMethod[string](prim_kruskal.MethodPrim),
//		prim_kruskal.WithRoot("A"),
//	)
package prim_kruskal
