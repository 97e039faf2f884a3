// SPDX-License-Identifier: MIT

package dijkstra

import (
	"fmt"
	"math"

	"github.com/katalvlaran/wgraph/core"
	"github.com/katalvlaran/wgraph/frontier"
)

// Dijkstra computes shortest distances from source to every vertex of g.
//
// Returns:
//
//   - dist: vertex → minimum distance; math.Inf(1) when unreachable (or
//     beyond MaxDistance).
//   - prev: vertex → predecessor on a shortest path, only when ReturnPath is
//     set; the source and unreached vertices have no entry.
//
// Errors: ErrNilGraph, core.ErrVertexNotFound for a missing source.
func Dijkstra[N comparable](g *core.Graph[N], source N, opts ...Option) (map[N]float64, map[N]N, error) {
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.HasVertex(source) {
		return nil, nil, fmt.Errorf("%w: source %v", core.ErrVertexNotFound, source)
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	n := g.Order()
	r := &runner[N]{
		g:       g,
		options: cfg,
		dist:    make(map[N]float64, n),
		prev:    make(map[N]N, n),
		visited: make(map[N]bool, n),
		pq:      frontier.New[N](),
	}
	r.init(source)
	r.process()

	if !cfg.ReturnPath {
		return r.dist, nil, nil
	}

	return r.dist, r.prev, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner[N comparable] struct {
	g       *core.Graph[N]     // read-only input
	options Options            // thresholds
	dist    map[N]float64      // best known distance from source
	prev    map[N]N            // predecessor on the best known path
	visited map[N]bool         // finalized vertices
	pq      *frontier.Queue[N] // lazy min-queue keyed by distance
}

// init sets every distance to +Inf and seeds the frontier with the source.
func (r *runner[N]) init(source N) {
	for _, v := range r.g.Vertices() {
		r.dist[v] = math.Inf(1)
	}
	r.dist[source] = 0
	r.pq.Push(0, source)
}

// process pops the nearest vertex, finalizes it and relaxes its edges until
// the frontier is empty or the nearest entry exceeds MaxDistance.
func (r *runner[N]) process() {
	for {
		e, ok := r.pq.Pop()
		if !ok {
			return
		}
		u := e.Item
		if r.visited[u] {
			continue // stale
		}
		if e.Priority > r.options.MaxDistance {
			// Everything left is farther still; forget the tentative values.
			r.forgetBeyondCap()
			return
		}
		r.visited[u] = true

		nbs, _ := r.g.Neighbors(u)
		for _, nb := range nbs {
			if nb.Weight >= r.options.InfEdgeThreshold || r.visited[nb.To] {
				continue
			}
			if nd := r.dist[u] + nb.Weight; nd < r.dist[nb.To] {
				r.dist[nb.To] = nd
				r.prev[nb.To] = u
				r.pq.Push(nd, nb.To)
			}
		}
	}
}

// forgetBeyondCap resets tentative distances of unfinalized vertices.
func (r *runner[N]) forgetBeyondCap() {
	for v := range r.dist {
		if !r.visited[v] {
			r.dist[v] = math.Inf(1)
			delete(r.prev, v)
		}
	}
}

// PathTo reconstructs source..target from a predecessor map returned with
// WithReturnPath. It returns nil when target was not reached.
func PathTo[N comparable](prev map[N]N, source, target N) []N {
	path := []N{target}
	for cur := target; cur != source; {
		p, ok := prev[cur]
		if !ok {
			return nil
		}
		cur = p
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
