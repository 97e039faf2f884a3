// SPDX-License-Identifier: MIT

// Package wgraph is a small toolkit of weighted-graph algorithms over one
// deterministic, generic adjacency list.
//
// What is in the box?
//
//	core/          — Graph[N]: insertion-ordered vertices and neighbors,
//	                 Plain/Weighted entries, Edges, Symmetric, Clone
//	unionfind/     — disjoint sets with path compression and union by rank
//	frontier/      — stable min-priority queue (ties pop in push order)
//	astar/         — A* search with pluggable heuristics
//	dijkstra/      — single-source shortest paths
//	prim_kruskal/  — minimum spanning trees and forests (Kruskal, Prim)
//	bfs/, dfs/     — traversals, components, cycle check, topological order
//	gridgraph/     — 2D grids: walls, 4/8 connectivity, islands, heuristics
//	builder/       — deterministic fixture topologies (cycle, grid, random…)
//	converters/    — round-trips to gonum graphs
//	cmd/wgraph/    — CLI: mst, path, grid, gen
//
// Every algorithm walks vertices and neighbors in insertion order and breaks
// priority ties by insertion sequence, so the same input always yields the
// same tree, path and traversal order.
//
// Quick ASCII example:
//
//	    A──4──B
//	    │   ╱ │
//	    2  1  5
//	    │ ╱   │
//	    C     D
//
// has the minimum spanning tree {B–C 1, A–C 2, B–D 5} of total weight 8,
// and the shortest A→D path A→C→B→D of cost 8.
//
//	go install github.com/katalvlaran/wgraph/cmd/wgraph@latest
package wgraph
