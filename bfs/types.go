// SPDX-License-Identifier: MIT

package bfs

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNotReached is returned by PathTo for a vertex the traversal never saw.
	ErrNotReached = errors.New("bfs: vertex not reached")
)

// Option configures BFS behavior via functional arguments.
// An invalid Option (e.g. negative depth) is recorded and surfaced as
// ErrOptionViolation when the traversal starts.
type Option[N comparable] func(*Options[N])

// Options holds parameters and callbacks to customize BFS execution.
type Options[N comparable] struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnEnqueue is called when a vertex is enqueued with its hop depth.
	OnEnqueue func(v N, depth int)

	// OnDequeue is called immediately before visiting a vertex.
	OnDequeue func(v N, depth int)

	// OnVisit is called when visiting a vertex. A returned error aborts
	// the traversal and is propagated wrapped.
	OnVisit func(v N, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// 0 disables the limit.
	MaxDepth int

	// FilterNeighbor skips the step curr→nb when it returns false.
	FilterNeighbor func(curr, nb N) bool

	err error
}

// DefaultOptions returns Options with a background context, no depth
// limit, no filtering and no-op hooks.
func DefaultOptions[N comparable]() Options[N] {
	return Options[N]{
		Ctx:            context.Background(),
		OnEnqueue:      func(N, int) {},
		OnDequeue:      func(N, int) {},
		OnVisit:        func(N, int) error { return nil },
		MaxDepth:       0,
		FilterNeighbor: func(_, _ N) bool { return true },
	}
}

// WithContext sets the cancellation context. A nil ctx is ignored.
func WithContext[N comparable](ctx context.Context) Option[N] {
	return func(o *Options[N]) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue[N comparable](fn func(v N, depth int)) Option[N] {
	return func(o *Options[N]) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue[N comparable](fn func(v N, depth int)) Option[N] {
	return func(o *Options[N]) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from it stops the traversal.
func WithOnVisit[N comparable](fn func(v N, depth int) error) Option[N] {
	return func(o *Options[N]) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search below the given depth.
//
//	d > 0: vertices deeper than d are not enqueued
//	d == 0: no limit
//	d < 0: ErrOptionViolation
func WithMaxDepth[N comparable](d int) Option[N] {
	return func(o *Options[N]) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)

			return
		}
		o.MaxDepth = d
	}
}

// WithFilterNeighbor skips neighbors when fn returns false.
func WithFilterNeighbor[N comparable](fn func(curr, nb N) bool) Option[N] {
	return func(o *Options[N]) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// Result holds the outcome of a traversal:
//   - Order: vertices in visit sequence.
//   - Depth: hop distance from the root of the vertex's tree.
//   - Parent: predecessor in the BFS tree; roots have no entry.
type Result[N comparable] struct {
	Order  []N
	Depth  map[N]int
	Parent map[N]N
}

// PathTo reconstructs the hop-shortest path from the root of dest's tree
// to dest. Returns ErrNotReached if dest was not visited.
func (r *Result[N]) PathTo(dest N) ([]N, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("%w: %v", ErrNotReached, dest)
	}
	path := []N{dest}
	for cur := dest; ; {
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		path = append(path, prev)
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
