// SPDX-License-Identifier: MIT

package gridgraph

import (
	"math"

	"github.com/katalvlaran/wgraph/frontier"
)

// ExpandIsland finds the fewest walls to clear so that component srcComp
// joins component dstComp (indices as returned by ConnectedComponents).
// Stepping onto a passable cell costs 0, onto a wall costs 1.
//
// It returns the cells of the bridge, starting in srcComp and ending in
// dstComp, and the number of walls on it.
//
// Behavior:
//  1. Validate component indices.
//  2. Multi-source Dijkstra from all srcComp cells over 0/1 costs.
//  3. Stop when any dstComp cell is popped.
//  4. Reconstruct path via predecessors.
func (gg *GridGraph) ExpandIsland(srcComp, dstComp int) ([]Point, int, error) {
	comps := gg.componentIndices()
	if srcComp < 0 || srcComp >= len(comps) || dstComp < 0 || dstComp >= len(comps) {
		return nil, 0, ErrComponentIndex
	}
	dstSet := make(map[int]struct{}, len(comps[dstComp]))
	for _, i := range comps[dstComp] {
		dstSet[i] = struct{}{}
	}

	n := gg.Width * gg.Height
	dist := make([]float64, n)
	prev := make([]int, n)
	done := make([]bool, n)
	for i := range dist {
		dist[i] = math.Inf(1)
		prev[i] = -1
	}

	pq := frontier.New[int]()
	for _, i := range comps[srcComp] {
		dist[i] = 0
		pq.Push(0, i)
	}

	target := -1
	for target < 0 {
		e, ok := pq.Pop()
		if !ok {
			return nil, 0, ErrNoPath
		}
		u := e.Item
		if done[u] {
			continue
		}
		done[u] = true
		if _, hit := dstSet[u]; hit {
			target = u
			break
		}
		ux, uy := gg.Coordinate(u)
		for _, d := range gg.neighborOffsets {
			vx, vy := ux+d[0], uy+d[1]
			if !gg.InBounds(vx, vy) {
				continue
			}
			step := 0.0
			if !gg.Passable(Point{X: vx, Y: vy}) {
				step = 1
			}
			v := gg.index(vx, vy)
			if nd := dist[u] + step; nd < dist[v] {
				dist[v] = nd
				prev[v] = u
				pq.Push(nd, v)
			}
		}
	}

	var path []Point
	for at := target; at >= 0; at = prev[at] {
		path = append(path, gg.point(at))
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, int(dist[target]), nil
}
