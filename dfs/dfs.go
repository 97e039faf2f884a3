// SPDX-License-Identifier: MIT

package dfs

import (
	"fmt"

	"github.com/katalvlaran/wgraph/core"
)

// frame is one level of the explicit DFS stack: a vertex, its neighbor
// snapshot and the index of the next neighbor to try.
type frame[N comparable] struct {
	v     N
	nbs   []core.Neighbor[N]
	next  int
	depth int
}

// walker encapsulates state during DFS.
type walker[N comparable] struct {
	graph   *core.Graph[N]
	opts    Options[N]
	res     *Result[N]
	visited map[N]bool
	stack   []frame[N]
}

// DFS performs depth-first search on g. With WithFullTraversal it covers
// every component; otherwise it explores only the tree rooted at start.
// Neighbors are tried in adjacency insertion order, which makes Order
// identical to a recursive walk.
//
// Errors: ErrGraphNil, core.ErrVertexNotFound (wrapped) for a missing
// start, ctx errors, or a wrapped hook error. On a hook error the partial
// result is returned with Order kept and PostOrder cleared.
func DFS[N comparable](g *core.Graph[N], start N, opts ...Option[N]) (*Result[N], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions[N]()
	for _, fn := range opts {
		fn(&o)
	}
	if !o.FullTraversal && !g.HasVertex(start) {
		return nil, fmt.Errorf("dfs: start: %w: %v", core.ErrVertexNotFound, start)
	}

	n := g.Order()
	w := &walker[N]{
		graph: g,
		opts:  o,
		res: &Result[N]{
			Order:     make([]N, 0, n),
			PostOrder: make([]N, 0, n),
			Depth:     make(map[N]int, n),
			Parent:    make(map[N]N, n),
		},
		visited: make(map[N]bool, n),
	}

	if !o.FullTraversal {
		return w.res, w.tree(start)
	}
	for _, v := range g.Vertices() {
		if w.visited[v] {
			continue
		}
		if err := w.tree(v); err != nil {
			return w.res, err
		}
	}

	return w.res, nil
}

// tree runs one DFS tree from root.
func (w *walker[N]) tree(root N) error {
	if err := w.discover(root, 0); err != nil {
		return err
	}
	for len(w.stack) > 0 {
		top := &w.stack[len(w.stack)-1]
		if top.next == len(top.nbs) {
			if err := w.finish(top.v); err != nil {
				return err
			}
			w.stack = w.stack[:len(w.stack)-1]
			continue
		}
		nb := top.nbs[top.next].To
		top.next++
		if w.visited[nb] {
			continue
		}
		if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(nb) {
			w.res.SkippedNeighbors++
			continue
		}
		depth := top.depth + 1
		if w.opts.MaxDepth >= 0 && depth > w.opts.MaxDepth {
			continue
		}
		w.res.Parent[nb] = top.v
		// discover may grow the stack; top is not used past this point.
		if err := w.discover(nb, depth); err != nil {
			return err
		}
	}

	return nil
}

// discover marks v, runs the pre-order hook and pushes its frame.
func (w *walker[N]) discover(v N, depth int) error {
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	w.visited[v] = true
	w.res.Depth[v] = depth
	w.res.Order = append(w.res.Order, v)
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(v); err != nil {
			w.res.PostOrder = nil

			return fmt.Errorf("dfs: OnVisit hook for %v: %w", v, err)
		}
	}
	nbs, err := w.graph.Neighbors(v)
	if err != nil {
		return fmt.Errorf("dfs: neighbors of %v: %w", v, err)
	}
	w.stack = append(w.stack, frame[N]{v: v, nbs: nbs, depth: depth})

	return nil
}

// finish runs the post-order hook and records v as finished.
func (w *walker[N]) finish(v N) error {
	if w.opts.OnExit != nil {
		if err := w.opts.OnExit(v); err != nil {
			w.res.PostOrder = nil

			return fmt.Errorf("dfs: OnExit hook for %v: %w", v, err)
		}
	}
	w.res.PostOrder = append(w.res.PostOrder, v)

	return nil
}
