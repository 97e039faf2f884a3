// SPDX-License-Identifier: MIT

// Package builder provides deterministic topology constructors for
// core.Graph[string] fixtures: tests, benchmarks and the `wgraph gen`
// command all draw their graphs from here.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – BuildGraph(bopts, cons...): one graph, options resolved once,
//     constructors applied in order.
//     – ForKind(kind, n, p): constructor lookup by Method name.
//   - Topologies (Constructor factories):
//     – Path, Cycle, Star, Wheel, Complete, CompleteBipartite, Grid,
//     RandomSparse.
//   - Vertex-ID schemes (IDFn implementations):
//     – DefaultIDFn:       decimal strings ("0","1",…).
//     – SymbolIDFn:        single letters ("A","B",…).
//     – ExcelColumnIDFn:   Excel-style columns ("A","Z","AA",…).
//     – AlphanumericIDFn:  base-36 strings ("0"…"z","10",…).
//     – HexIDFn:           lowercase hexadecimal ("0","a","ff",…).
//   - Edge-weight distributions (WeightFn implementations):
//     – DefaultWeightFn:   constant DefaultEdgeWeight.
//     – ConstantWeightFn:  fixed value.
//     – UniformWeightFn:   ∼U[min,max].
//     – IntWeightFn:       integers drawn from [min,max].
//     – NormalWeightFn:    ∼N(mean,stddev), rounded and clipped at 0.
//     – ExponentialWeightFn: ∼Exp(rate), rounded.
//
// Guarantees:
//
//   - Determinism: same options, seed and constructor order give the same
//     graph, down to vertex and neighbor order.
//   - Option constructors panic on meaningless arguments; constructors
//     return wrapped sentinel errors (ErrTooFewVertices, ...).
//   - Weights are always finite and ≥ 0, as core.Graph requires.
//
// Constructors append; running one twice on the same graph adds parallel
// edges.
package builder
