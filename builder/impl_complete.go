// SPDX-License-Identifier: MIT
//
// impl_complete.go - Complete(n) and CompleteBipartite(n1, n2).

package builder

import "github.com/katalvlaran/wgraph/core"

// Complete returns a Constructor for K_n (n ≥ 1): every pair i<j, emitted
// in row-major order. Complexity: O(n²).
func Complete(n int) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if err := validateMin(MethodComplete, "n", n, 1); err != nil {
			return err
		}

		return addCompleteEdges(g, cfg, MethodComplete, addVertices(g, n, cfg.idFn))
	}
}

// CompleteBipartite returns a Constructor for K_{n1,n2} with sides labeled
// by the partition prefixes ("L0", …, "R0", …). Left vertices are added
// first; edges run Li—Rj in row-major order. Complexity: O(n1·n2).
func CompleteBipartite(n1, n2 int) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if err := validateMin(MethodCompleteBipartite, "n1", n1, MinPartition); err != nil {
			return err
		}
		if err := validateMin(MethodCompleteBipartite, "n2", n2, MinPartition); err != nil {
			return err
		}
		left := makeIDs(cfg.leftPrefix, n1)
		right := makeIDs(cfg.rightPrefix, n2)
		for _, v := range left {
			g.AddVertex(v)
		}
		for _, v := range right {
			g.AddVertex(v)
		}
		for _, u := range left {
			for _, v := range right {
				if err := addEdge(g, cfg, MethodCompleteBipartite, u, v); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
