// SPDX-License-Identifier: MIT

// Package graphfile reads and writes the YAML documents the wgraph command
// works on: weighted graph documents and obstacle grid documents.
//
// A graph document lists edges and, optionally, isolated vertices:
//
//	vertices: [G]
//	edges:
//	  - {from: A, to: B, weight: 4}
//	  - {from: B, to: C}            # no weight: unit weight
//
// Documents are decoded strictly (unknown keys are errors) and validated
// with struct tags before they are turned into a core.Graph.
package graphfile
