// SPDX-License-Identifier: MIT
//
// impl_star.go - Star(n) and Wheel(n).
//
// Both use the fixed hub CenterVertexID, added first, and n-1 rim vertices
// cfg.idFn(0..n-2).

package builder

import "github.com/katalvlaran/wgraph/core"

// Star returns a Constructor for K_{1,n-1}: spokes Center—i in index order
// (n ≥ 2). Complexity: O(n).
func Star(n int) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if err := validateMin(MethodStar, "n", n, MinStarNodes); err != nil {
			return err
		}
		g.AddVertex(CenterVertexID)
		for _, leaf := range addVertices(g, n-1, cfg.idFn) {
			if err := addEdge(g, cfg, MethodStar, CenterVertexID, leaf); err != nil {
				return err
			}
		}

		return nil
	}
}

// Wheel returns a Constructor for W_n = C_{n-1} + Center (n ≥ 4).
// Rim edges are emitted first, then spokes. Complexity: O(n).
func Wheel(n int) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if err := validateMin(MethodWheel, "n", n, MinWheelNodes); err != nil {
			return err
		}
		g.AddVertex(CenterVertexID)
		rim := addVertices(g, n-1, cfg.idFn)
		for i := range rim {
			if err := addEdge(g, cfg, MethodWheel, rim[i], rim[(i+1)%len(rim)]); err != nil {
				return err
			}
		}
		for _, v := range rim {
			if err := addEdge(g, cfg, MethodWheel, CenterVertexID, v); err != nil {
				return err
			}
		}

		return nil
	}
}
