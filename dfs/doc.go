// SPDX-License-Identifier: MIT

// Package dfs implements depth-first search on core.Graph.
//
// Key features:
//   - DFS(g, start, opts...): pre-order and post-order from a root, or the
//     full forest via WithFullTraversal.
//   - Hooks: OnVisit (pre-order) and OnExit (post-order), errors abort.
//   - Limits: MaxDepth, FilterNeighbor, SkippedNeighbors diagnostic count.
//   - HasCycle: cycle check for undirected graphs (used to verify that
//     spanning forests are acyclic).
//   - TopologicalSort: ordering of a directed graph built from arcs.
//
// Every walk is iterative over an explicit frame stack, so depth is
// bounded by memory, not by the goroutine stack.
//
// Complexity: O(V + E) time, O(V) memory.
package dfs
