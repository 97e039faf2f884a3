// SPDX-License-Identifier: MIT

// Package bfs provides breadth-first traversal over a core.Graph.
//
// BFS ignores edge weights and counts hops. It is the enumeration
// collaborator of the weighted algorithms: visit order from a start,
// full-forest coverage of every vertex, and connected components.
//
//	res, err := bfs.BFS(g, "A", bfs.WithMaxDepth(2))
//	path, err := res.PathTo("D")
//
// Determinism: vertices are expanded in queue order and neighbors in
// adjacency insertion order, so Order is reproducible for a given graph.
//
// Complexity: O(V + E) time, O(V) memory.
package bfs
