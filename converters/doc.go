// SPDX-License-Identifier: MIT

// Package converters provides two-way adapters between core.Graph and
// gonum's graph/simple types, so wgraph results can be cross-checked against
// (or fed into) gonum's path, topo and network packages.
//
// Vertex identity:
//
//   - gonum nodes are int64 IDs. ToGonum assigns IDs 0..n-1 in vertex
//     insertion order and returns an Index to map results back.
//   - FromGonum produces a core.Graph[int64] keyed by the gonum IDs,
//     vertices in ascending ID order.
//
// Multi-edges: gonum simple graphs hold at most one edge per pair, so
// parallel core edges collapse to the lightest one. Shortest paths and
// spanning-tree weights are unchanged by that.
package converters
