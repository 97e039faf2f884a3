// SPDX-License-Identifier: MIT

package astar

import (
	"fmt"

	"github.com/katalvlaran/wgraph/core"
	"github.com/katalvlaran/wgraph/frontier"
)

// ShortestPath returns the vertices of a minimum-weight path from start to
// goal and its cost. An unreachable goal yields an empty path and +Inf.
//
// Errors: as Search.
func ShortestPath[N comparable](g *core.Graph[N], start, goal N, h Heuristic[N]) ([]N, float64, error) {
	res, err := Search(g, start, goal, h)
	if err != nil {
		return nil, 0, err
	}

	return res.Path, res.Cost, nil
}

// Search runs A* from start to goal and returns the full Result.
//
// Behavior:
//  1. Validate the graph, heuristic and both endpoints.
//  2. Pop the lowest cost+h entry; stop when it is goal.
//  3. Skip stale entries and closed vertices; relax only on strict
//     improvement.
//  4. Rebuild the path from predecessors.
//
// The path is optimal when h is consistent. With an admissible but
// inconsistent h a closed vertex is never re-opened, so the path can be
// longer than optimal; Cost is always the weight of Path.
//
// Errors: ErrNilGraph, ErrNilHeuristic, core.ErrVertexNotFound (wrapped with
// the missing endpoint).
// Complexity: O((V + E)·log E) time, O(V + E) memory.
func Search[N comparable](g *core.Graph[N], start, goal N, h Heuristic[N], opts ...Option[N]) (Result[N], error) {
	if g == nil {
		return Result[N]{}, ErrNilGraph
	}
	if h == nil {
		return Result[N]{}, ErrNilHeuristic
	}
	if !g.HasVertex(start) {
		return Result[N]{}, fmt.Errorf("%w: start %v", core.ErrVertexNotFound, start)
	}
	if !g.HasVertex(goal) {
		return Result[N]{}, fmt.Errorf("%w: goal %v", core.ErrVertexNotFound, goal)
	}

	o := DefaultOptions[N]()
	for _, opt := range opts {
		opt(&o)
	}

	r := &runner[N]{
		g:      g,
		goal:   goal,
		h:      h,
		opts:   o,
		cost:   map[N]float64{start: 0},
		prev:   make(map[N]N),
		closed: make(map[N]struct{}),
		pq:     frontier.New[N](),
	}

	return r.run(start), nil
}

// runner carries the per-call search state.
type runner[N comparable] struct {
	g    *core.Graph[N]
	goal N
	h    Heuristic[N]
	opts Options[N]

	cost   map[N]float64 // best known cost from start
	prev   map[N]N       // predecessor on the best known path
	closed map[N]struct{}
	pq     *frontier.Queue[N]

	expanded, pushed int
}

func (r *runner[N]) push(v N, cost float64) {
	pr := cost + r.h(v, r.goal)
	r.pq.Push(pr, v)
	r.pushed++
	r.opts.OnPush(v, cost, pr)
}

func (r *runner[N]) run(start N) Result[N] {
	r.push(start, 0)

	for {
		e, ok := r.pq.Pop()
		if !ok {
			return notFound[N](r.expanded, r.pushed)
		}
		u := e.Item
		if u == r.goal {
			return Result[N]{
				Path:     r.path(start),
				Cost:     r.cost[u],
				Expanded: r.expanded,
				Pushed:   r.pushed,
			}
		}
		if _, done := r.closed[u]; done {
			continue // stale
		}
		r.closed[u] = struct{}{}
		r.expanded++
		cu := r.cost[u]
		r.opts.OnExpand(u, cu)

		nbs, _ := r.g.Neighbors(u) // u came from the graph
		for _, nb := range nbs {
			if _, done := r.closed[nb.To]; done {
				continue
			}
			tentative := cu + nb.Weight
			if known, seen := r.cost[nb.To]; seen && tentative >= known {
				continue
			}
			r.cost[nb.To] = tentative
			r.prev[nb.To] = u
			r.push(nb.To, tentative)
		}
	}
}

// path walks predecessors from goal back to start and reverses in place.
func (r *runner[N]) path(start N) []N {
	out := []N{r.goal}
	for cur := r.goal; cur != start; {
		cur = r.prev[cur]
		out = append(out, cur)
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}

	return out
}
