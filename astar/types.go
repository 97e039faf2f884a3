// SPDX-License-Identifier: MIT

package astar

import (
	"errors"
	"math"
)

// Sentinel errors for A* search.
var (
	// ErrNilGraph is returned when the graph pointer is nil.
	ErrNilGraph = errors.New("astar: graph is nil")

	// ErrNilHeuristic is returned when no heuristic function is supplied.
	ErrNilHeuristic = errors.New("astar: heuristic is nil")
)

// Heuristic estimates the remaining cost from n to goal. It must be defined
// for every vertex and return a non-negative value.
type Heuristic[N comparable] func(n, goal N) float64

// Zero is the trivial heuristic. With it A* degenerates into Dijkstra's
// algorithm.
func Zero[N comparable](_, _ N) float64 { return 0 }

// Result is the outcome of one search.
type Result[N comparable] struct {
	// Path lists the vertices from start to goal inclusive; empty when the
	// goal is unreachable.
	Path []N

	// Cost is the total edge weight along Path, or +Inf when Path is empty.
	Cost float64

	// Expanded counts vertices finalized (popped and not stale).
	Expanded int

	// Pushed counts frontier insertions, the seed included.
	Pushed int
}

// Found reports whether a path was found.
func (r Result[N]) Found() bool { return len(r.Path) > 0 }

// Option configures a search.
type Option[N comparable] func(*Options[N])

// Options holds the search hooks.
type Options[N comparable] struct {
	// OnExpand is called when a vertex is finalized, with its cost from start.
	OnExpand func(v N, cost float64)

	// OnPush is called for every frontier insertion with the vertex, its
	// tentative cost from start, and its priority (cost + heuristic).
	OnPush func(v N, cost, priority float64)
}

// DefaultOptions returns Options with no-op hooks.
func DefaultOptions[N comparable]() Options[N] {
	return Options[N]{
		OnExpand: func(N, float64) {},
		OnPush:   func(N, float64, float64) {},
	}
}

// WithOnExpand registers a finalize hook. A nil fn keeps the default.
func WithOnExpand[N comparable](fn func(v N, cost float64)) Option[N] {
	return func(o *Options[N]) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithOnPush registers a frontier-insertion hook. A nil fn keeps the default.
func WithOnPush[N comparable](fn func(v N, cost, priority float64)) Option[N] {
	return func(o *Options[N]) {
		if fn != nil {
			o.OnPush = fn
		}
	}
}

// notFound is the result for an unreachable goal.
func notFound[N comparable](expanded, pushed int) Result[N] {
	return Result[N]{Path: []N{}, Cost: math.Inf(1), Expanded: expanded, Pushed: pushed}
}
