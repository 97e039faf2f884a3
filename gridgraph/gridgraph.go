// SPDX-License-Identifier: MIT

package gridgraph

import (
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/wgraph/core"
)

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice.
// It deep-copies the input.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(W×H) time and memory.
func NewGridGraph(values [][]int, opts GridOptions) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	cells := make([][]int, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		copy(cells[y], values[y])
	}
	offsets := offsets4
	if opts.Conn == Conn8 {
		offsets = offsets8
	}

	return &GridGraph{
		Width:           w,
		Height:          h,
		CellValues:      cells,
		Conn:            opts.Conn,
		LandThreshold:   opts.LandThreshold,
		neighborOffsets: slices.Clone(offsets),
	}, nil
}

// From2D is NewGridGraph with the default threshold and the given connectivity.
func From2D(values [][]int, conn Connectivity) (*GridGraph, error) {
	opts := DefaultGridOptions()
	opts.Conn = conn

	return NewGridGraph(values, opts)
}

// NewWalledGrid builds a width×height grid where every cell is open except
// the listed walls. Duplicate walls are allowed.
// Errors: ErrEmptyGrid for a non-positive size, ErrOutOfBounds for a wall
// outside the grid.
func NewWalledGrid(width, height int, walls []Point, conn Connectivity) (*GridGraph, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyGrid
	}
	values := make([][]int, height)
	for y := range values {
		values[y] = make([]int, width)
		for x := range values[y] {
			values[y][x] = 1
		}
	}
	for _, p := range walls {
		if p.X < 0 || p.X >= width || p.Y < 0 || p.Y >= height {
			return nil, fmt.Errorf("%w: wall %s in %dx%d grid", ErrOutOfBounds, p, width, height)
		}
		values[p.Y][p.X] = 0
	}

	return From2D(values, conn)
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// Passable reports whether p is inside the grid and not a wall.
func (gg *GridGraph) Passable(p Point) bool {
	return gg.InBounds(p.X, p.Y) && gg.CellValues[p.Y][p.X] >= gg.LandThreshold
}

// NeighborOffsets returns a copy of the neighbor offsets for gg.Conn, in the
// order ToCoreGraph lists neighbors.
// Complexity: O(d).
func (gg *GridGraph) NeighborOffsets() [][2]int {
	return slices.Clone(gg.neighborOffsets)
}

// stepCost is 1 for orthogonal and √2 for diagonal offsets.
func stepCost(d [2]int) float64 {
	if d[0] != 0 && d[1] != 0 {
		return math.Sqrt2
	}

	return 1
}

// ToCoreGraph converts passable cells into an undirected *core.Graph[Point].
// Vertices are added in row-major order and each vertex lists its neighbors
// in NeighborOffsets order, so searches over the result are reproducible.
// Complexity: O(W×H×d).
func (gg *GridGraph) ToCoreGraph() *core.Graph[Point] {
	g := core.NewGraph[Point]()
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if p := (Point{X: x, Y: y}); gg.Passable(p) {
				g.AddVertex(p)
			}
		}
	}
	// Each cell writes its own arcs; the mirror is written by the neighbor.
	for _, u := range g.Vertices() {
		for _, d := range gg.neighborOffsets {
			v := Point{X: u.X + d[0], Y: u.Y + d[1]}
			if !gg.Passable(v) {
				continue
			}
			_ = g.AddArc(u, v, stepCost(d)) // both endpoints exist, u != v
		}
	}

	return g
}

// index maps (x,y) to a row-major index: y*Width + x.
func (gg *GridGraph) index(x, y int) int {
	return y*gg.Width + x
}

// Coordinate converts a row-major index back to (x,y).
// Complexity: O(1).
func (gg *GridGraph) Coordinate(idx int) (x, y int) {
	return idx % gg.Width, idx / gg.Width
}

// point converts a row-major index to a Point.
func (gg *GridGraph) point(idx int) Point {
	x, y := gg.Coordinate(idx)

	return Point{X: x, Y: y}
}
