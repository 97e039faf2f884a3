// SPDX-License-Identifier: MIT

package dfs

import (
	"context"
	"errors"
)

// Vertex colors used by the cycle and topological walks.
const (
	White = iota // not visited yet
	Gray         // on the current frame stack
	Black        // fully explored
)

// Sentinel errors for DFS operations.
var (
	// ErrGraphNil is returned when a nil graph is passed.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrCycleDetected is returned by TopologicalSort on a cyclic graph.
	ErrCycleDetected = errors.New("dfs: cycle detected")
)

// Option configures DFS.
type Option[N comparable] func(*Options[N])

// Options holds the DFS configuration.
type Options[N comparable] struct {
	// Ctx allows cancellation; checked once per discovered vertex.
	Ctx context.Context

	// OnVisit runs when a vertex is discovered (pre-order).
	OnVisit func(v N) error

	// OnExit runs after all descendants of a vertex are explored (post-order).
	OnExit func(v N) error

	// MaxDepth < 0 means unlimited; otherwise vertices deeper than MaxDepth
	// are not discovered.
	MaxDepth int

	// FilterNeighbor returns false to skip a neighbor.
	FilterNeighbor func(v N) bool

	// FullTraversal starts a new tree at every undiscovered vertex, in
	// insertion order; the start argument of DFS is ignored.
	FullTraversal bool
}

// DefaultOptions returns Options with a background context, no hooks,
// unlimited depth and single-tree traversal.
func DefaultOptions[N comparable]() Options[N] {
	return Options[N]{
		Ctx:      context.Background(),
		MaxDepth: -1,
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

// WithOnVisit sets the pre-order hook.
func WithOnVisit[N comparable](fn func(v N) error) Option[N] {
	return func(o *Options[N]) { o.OnVisit = fn }
}

// WithOnExit sets the post-order hook.
func WithOnExit[N comparable](fn func(v N) error) Option[N] {
	return func(o *Options[N]) { o.OnExit = fn }
}

// WithMaxDepth limits discovery depth; negative means unlimited.
func WithMaxDepth[N comparable](limit int) Option[N] {
	return func(o *Options[N]) { o.MaxDepth = limit }
}

// WithFilterNeighbor skips neighbors for which fn returns false.
func WithFilterNeighbor[N comparable](fn func(v N) bool) Option[N] {
	return func(o *Options[N]) { o.FilterNeighbor = fn }
}

// WithFullTraversal visits every vertex of the graph.
func WithFullTraversal[N comparable]() Option[N] {
	return func(o *Options[N]) { o.FullTraversal = true }
}

// Result captures a DFS run.
type Result[N comparable] struct {
	// Order lists vertices in discovery sequence (pre-order).
	Order []N

	// PostOrder lists vertices in the sequence they finished.
	PostOrder []N

	// Depth maps each vertex to its distance (#edges) from its tree root.
	Depth map[N]int

	// Parent maps each vertex to the vertex it was discovered from.
	// Roots have no entry.
	Parent map[N]N

	// SkippedNeighbors counts neighbors rejected by FilterNeighbor.
	SkippedNeighbors int
}
