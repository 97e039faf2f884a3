// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/wgraph/core"
)

// addVertices inserts cfg.idFn(0..n-1) and returns the IDs in index order.
func addVertices(g *core.Graph[string], n int, idFn IDFn) []string {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = idFn(i)
		g.AddVertex(ids[i])
	}

	return ids
}

// addEdge inserts u—v with the next configured weight, tagging errors with
// the method name.
func addEdge(g *core.Graph[string], cfg builderConfig, method, u, v string) error {
	w := cfg.weight()
	if err := g.AddEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%s—%s, w=%g): %w: %w", method, u, v, w, ErrConstructFailed, err)
	}

	return nil
}

// addCompleteEdges connects every pair ids[i]—ids[j], i<j, in row-major order.
func addCompleteEdges(g *core.Graph[string], cfg builderConfig, method string, ids []string) error {
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			if err := addEdge(g, cfg, method, ids[i], ids[j]); err != nil {
				return err
			}
		}
	}

	return nil
}

// makeIDs returns prefix0 .. prefix(n-1).
func makeIDs(prefix string, n int) []string {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = prefix + strconv.Itoa(i)
	}

	return ids
}

// GridVertexID is the ID Grid gives the cell at row r, column c.
func GridVertexID(r, c int) string {
	return strconv.Itoa(r) + "," + strconv.Itoa(c)
}

// validateMin returns ErrTooFewVertices when got < min.
func validateMin(method, param string, got, min int) error {
	if got < min {
		return fmt.Errorf("%s: %s=%d < min=%d: %w", method, param, got, min, ErrTooFewVertices)
	}

	return nil
}

// validateProbability returns ErrInvalidProbability unless p ∈ [0,1].
func validateProbability(method string, p float64) error {
	if !(p >= MinProbability && p <= MaxProbability) {
		return fmt.Errorf("%s: p=%g not in [%.1f,%.1f]: %w", method, p, MinProbability, MaxProbability, ErrInvalidProbability)
	}

	return nil
}
