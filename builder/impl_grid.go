// SPDX-License-Identifier: MIT
//
// impl_grid.go - Grid(rows, cols).
//
// Vertex IDs are GridVertexID(r, c) ("r,c"), added row-major. For each
// cell in row-major order the right edge is emitted before the down edge.
// For obstacle grids with coordinates, see package gridgraph.

package builder

import "github.com/katalvlaran/wgraph/core"

// Grid returns a Constructor for the rows×cols 4-neighborhood lattice
// (rows, cols ≥ 1). Complexity: O(rows·cols).
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if err := validateMin(MethodGrid, "rows", rows, MinGridDim); err != nil {
			return err
		}
		if err := validateMin(MethodGrid, "cols", cols, MinGridDim); err != nil {
			return err
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				g.AddVertex(GridVertexID(r, c))
			}
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := GridVertexID(r, c)
				if c+1 < cols {
					if err := addEdge(g, cfg, MethodGrid, u, GridVertexID(r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := addEdge(g, cfg, MethodGrid, u, GridVertexID(r+1, c)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
