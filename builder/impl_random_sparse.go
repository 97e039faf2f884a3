// SPDX-License-Identifier: MIT
//
// impl_random_sparse.go - RandomSparse(n, p), the Erdős–Rényi G(n,p) model.
//
// Contract:
//   - n ≥ 1, p ∈ [0,1].
//   - An RNG is required for 0 < p < 1; p = 0 and p = 1 are deterministic
//     and work without one.
//   - Pairs i<j are tried in row-major order. With an RNG, each pair costs
//     one Float64 draw, followed by a weight draw when the edge is kept.

package builder

import (
	"fmt"

	"github.com/katalvlaran/wgraph/core"
)

// RandomSparse returns a Constructor that keeps each pair with probability p.
// Complexity: O(n²) draws.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if err := validateMin(MethodRandomSparse, "n", n, 1); err != nil {
			return err
		}
		if err := validateProbability(MethodRandomSparse, p); err != nil {
			return err
		}
		if cfg.rng == nil && p > MinProbability && p < MaxProbability {
			return fmt.Errorf("%s: p=%g: %w", MethodRandomSparse, p, ErrNeedRandSource)
		}

		ids := addVertices(g, n, cfg.idFn)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				keep := p == MaxProbability
				if cfg.rng != nil {
					keep = cfg.rng.Float64() < p
				}
				if !keep {
					continue
				}
				if err := addEdge(g, cfg, MethodRandomSparse, ids[i], ids[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
