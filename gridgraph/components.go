// SPDX-License-Identifier: MIT

package gridgraph

// ConnectedComponents finds all contiguous regions of passable cells
// according to gg.Conn. Components are ordered by their first cell in
// row-major order; cells within a component are in BFS discovery order.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (gg *GridGraph) ConnectedComponents() [][]Point {
	comps := gg.componentIndices()
	out := make([][]Point, len(comps))
	for i, comp := range comps {
		out[i] = make([]Point, len(comp))
		for j, idx := range comp {
			out[i][j] = gg.point(idx)
		}
	}

	return out
}

// componentIndices is ConnectedComponents over row-major indices.
func (gg *GridGraph) componentIndices() [][]int {
	seen := make([]bool, gg.Width*gg.Height)
	var comps [][]int

	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if !gg.Passable(Point{X: x, Y: y}) {
				continue
			}
			i0 := gg.index(x, y)
			if seen[i0] {
				continue
			}
			queue := []int{i0}
			seen[i0] = true

			for qi := 0; qi < len(queue); qi++ {
				ux, uy := gg.Coordinate(queue[qi])
				for _, d := range gg.neighborOffsets {
					v := Point{X: ux + d[0], Y: uy + d[1]}
					if !gg.Passable(v) {
						continue
					}
					if vi := gg.index(v.X, v.Y); !seen[vi] {
						seen[vi] = true
						queue = append(queue, vi)
					}
				}
			}
			comps = append(comps, queue)
		}
	}

	return comps
}
