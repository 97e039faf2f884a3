// SPDX-License-Identifier: MIT

// Package gridgraph treats a 2D grid of cells as a weighted graph, the
// classic playground for heuristic search.
//
// What:
//
//   - GridGraph wraps a rectangular [][]int grid. Cells with value ≥
//     LandThreshold are passable, the rest are walls.
//   - NewWalledGrid builds a width×height grid from a list of wall cells.
//   - ToCoreGraph turns passable cells into a *core.Graph[Point]: orthogonal
//     steps cost 1, diagonal steps (Conn8) cost √2.
//   - Manhattan, Euclidean, Octile and Chebyshev are ready-made heuristics
//     for astar.Search.
//   - ConnectedComponents finds regions of passable cells;
//     ExpandIsland finds the fewest walls to clear to join two regions.
//
// Heuristic admissibility:
//
//   - Conn4: Manhattan is exact on an open grid; Euclidean and Octile are
//     admissible but weaker.
//   - Conn8: use Octile (exact on an open grid) or Euclidean. Manhattan
//     overestimates diagonal moves.
//
// Complexity:
//
//   - ToCoreGraph:         O(W×H×d), d = 4 or 8.
//   - ConnectedComponents: O(W×H×d), Memory: O(W×H).
//   - ExpandIsland:        O(W×H×d×log(W×H)), Memory: O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid:       grid has no rows or no columns.
//   - ErrNonRectangular:  rows have differing lengths.
//   - ErrOutOfBounds:     a wall or point lies outside the grid.
//   - ErrComponentIndex:  requested component index out of range.
//   - ErrNoPath:          no conversion path exists between components.
package gridgraph
