// SPDX-License-Identifier: MIT

package bfs

import (
	"fmt"

	"github.com/katalvlaran/wgraph/core"
)

// queueItem pairs a vertex with its BFS depth.
type queueItem[N comparable] struct {
	v     N
	depth int
}

// walker encapsulates mutable BFS state. One walker may run several trees
// (Full, Components); visited and res are shared between them.
type walker[N comparable] struct {
	graph   *core.Graph[N]
	opts    Options[N]
	queue   []queueItem[N]
	visited map[N]bool
	res     *Result[N]
}

// BFS runs breadth-first search on g from start.
//
// Errors: ErrGraphNil, ErrOptionViolation, core.ErrVertexNotFound (wrapped)
// for an absent start, ctx errors, or a wrapped OnVisit error. On abort
// the partial result is returned alongside the error.
func BFS[N comparable](g *core.Graph[N], start N, opts ...Option[N]) (*Result[N], error) {
	w, err := newWalker(g, opts)
	if err != nil {
		return nil, err
	}
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("bfs: start: %w: %v", core.ErrVertexNotFound, start)
	}

	return w.res, w.tree(start)
}

// Full visits every vertex of g: it starts a tree at each vertex, in
// insertion order, that no earlier tree reached. Options apply to every tree.
func Full[N comparable](g *core.Graph[N], opts ...Option[N]) (*Result[N], error) {
	w, err := newWalker(g, opts)
	if err != nil {
		return nil, err
	}
	for _, v := range g.Vertices() {
		if w.visited[v] {
			continue
		}
		if err = w.tree(v); err != nil {
			return w.res, err
		}
	}

	return w.res, nil
}

// Components returns the vertex sets reachable tree by tree, in the order
// Full discovers them. For a symmetric (undirected) graph these are its
// connected components; each component lists vertices in BFS order.
func Components[N comparable](g *core.Graph[N]) ([][]N, error) {
	w, err := newWalker[N](g, nil)
	if err != nil {
		return nil, err
	}
	var comps [][]N
	for _, v := range g.Vertices() {
		if w.visited[v] {
			continue
		}
		from := len(w.res.Order)
		if err = w.tree(v); err != nil {
			return nil, err
		}
		comps = append(comps, append([]N(nil), w.res.Order[from:]...))
	}

	return comps, nil
}

func newWalker[N comparable](g *core.Graph[N], opts []Option[N]) (*walker[N], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions[N]()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	n := g.Order()

	return &walker[N]{
		graph:   g,
		opts:    o,
		queue:   make([]queueItem[N], 0, n),
		visited: make(map[N]bool, n),
		res: &Result[N]{
			Order:  make([]N, 0, n),
			Depth:  make(map[N]int, n),
			Parent: make(map[N]N, n),
		},
	}, nil
}

// tree seeds the queue with root and drains it.
func (w *walker[N]) tree(root N) error {
	w.visited[root] = true
	w.res.Depth[root] = 0
	w.opts.OnEnqueue(root, 0)
	w.queue = append(w.queue[:0], queueItem[N]{v: root})

	return w.loop()
}

// enqueue marks v visited at depth d under parent and appends it to the queue.
func (w *walker[N]) enqueue(v N, d int, parent N) {
	w.visited[v] = true
	w.res.Depth[v] = d
	w.res.Parent[v] = parent
	w.opts.OnEnqueue(v, d)
	w.queue = append(w.queue, queueItem[N]{v: v, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker[N]) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

// dequeue pops the first item, invokes OnDequeue, and returns it.
func (w *walker[N]) dequeue() queueItem[N] {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(item.v, item.depth)

	return item
}

// visit records the vertex in Order and calls OnVisit.
func (w *walker[N]) visit(item queueItem[N]) error {
	w.res.Order = append(w.res.Order, item.v)
	if err := w.opts.OnVisit(item.v, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %v: %w", item.v, err)
	}

	return nil
}

// enqueueNeighbors applies filtering and MaxDepth, and enqueues each
// unseen neighbor of item.
func (w *walker[N]) enqueueNeighbors(item queueItem[N]) error {
	nbs, err := w.graph.Neighbors(item.v)
	if err != nil {
		return fmt.Errorf("bfs: neighbors of %v: %w", item.v, err)
	}
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return nil
	}
	for _, nb := range nbs {
		if w.visited[nb.To] || !w.opts.FilterNeighbor(item.v, nb.To) {
			continue
		}
		w.enqueue(nb.To, next, item.v)
	}

	return nil
}
