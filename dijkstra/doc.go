// SPDX-License-Identifier: MIT

// Package dijkstra implements Dijkstra's single-source shortest-path algorithm
// on a core.Graph.
//
// It is the uninformed baseline for package astar: with astar.Zero as the
// heuristic both compute the same distances, and tests cross-check the two.
//
// Complexity:
//
//   - Time:  O((V + E) log V). Each vertex is finalized once; each relaxation
//     may push one frontier entry (lazy decrease-key).
//   - Space: O(V + E) for the distance/predecessor maps and the frontier.
//
// Options:
//
//   - WithReturnPath():         also return the predecessor map.
//   - WithMaxDistance(d):       do not finalize vertices farther than d.
//   - WithInfEdgeThreshold(t):  edges with weight ≥ t are impassable.
//
// Unreachable vertices keep distance math.Inf(1). Weights are validated by
// core at construction, so no negative-weight scan is needed here.
//
// Example:
//
//	dist, prev, err := dijkstra.Dijkstra(g, "A", dijkstra.WithReturnPath())
//	path := dijkstra.PathTo(prev, "A", "E")
package dijkstra
