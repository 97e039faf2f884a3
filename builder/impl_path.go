// SPDX-License-Identifier: MIT
//
// impl_path.go - Path(n) and Cycle(n).
//
// Contract:
//   - Vertices cfg.idFn(0..n-1) in index order.
//   - Edges (i-1)—i for i=1..n-1; Cycle adds the closing (n-1)—0.
//   - One weight draw per edge, in emission order.

package builder

import "github.com/katalvlaran/wgraph/core"

// Path returns a Constructor that builds the simple path P_n (n ≥ 2).
// Complexity: O(n).
func Path(n int) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if err := validateMin(MethodPath, "n", n, MinPathNodes); err != nil {
			return err
		}
		ids := addVertices(g, n, cfg.idFn)
		for i := 1; i < n; i++ {
			if err := addEdge(g, cfg, MethodPath, ids[i-1], ids[i]); err != nil {
				return err
			}
		}

		return nil
	}
}

// Cycle returns a Constructor that builds the simple cycle C_n (n ≥ 3).
// Complexity: O(n).
func Cycle(n int) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if err := validateMin(MethodCycle, "n", n, MinCycleNodes); err != nil {
			return err
		}
		ids := addVertices(g, n, cfg.idFn)
		for i := 0; i < n; i++ {
			if err := addEdge(g, cfg, MethodCycle, ids[i], ids[(i+1)%n]); err != nil {
				return err
			}
		}

		return nil
	}
}
