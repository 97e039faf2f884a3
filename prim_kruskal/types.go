// SPDX-License-Identifier: MIT

package prim_kruskal

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/wgraph/core"
)

// ErrInvalidGraph indicates that MST algorithms require a non-nil undirected
// graph (every entry mirrored with equal weight).
var ErrInvalidGraph = errors.New("prim_kruskal: MST requires a non-nil undirected graph")

// ErrUnknownMethod indicates that Compute received an unsupported method name.
var ErrUnknownMethod = errors.New("prim_kruskal: unknown MST method")

// ErrDisconnected indicates that the graph is not connected, so only a
// spanning forest exists. Returned only with WithRequireSpanning.
var ErrDisconnected = errors.New("prim_kruskal: graph is disconnected")

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// MethodPrim selects Prim's algorithm from a single root.
const MethodPrim = "prim"

// MethodPrimForest selects Prim's algorithm restarted from every unvisited vertex.
const MethodPrimForest = "forest"

// MSTOptions configures MST computation.
// Use DefaultOptions() to get a default setup (Kruskal).
type MSTOptions[N comparable] struct {
	// Method to use: MethodKruskal, MethodPrim or MethodPrimForest.
	Method string

	// Root is the starting vertex for Compute with MethodPrim. When HasRoot
	// is false the first vertex of the graph is used.
	Root    N
	HasRoot bool

	// RequireSpanning makes a forest result an ErrDisconnected error.
	RequireSpanning bool

	// OnSelect is called for every accepted edge with the running total.
	OnSelect func(e core.Edge[N], total float64)
}

// Option configures MSTOptions.
type Option[N comparable] func(*MSTOptions[N])

// DefaultOptions returns MSTOptions for Kruskal with no root, forests
// allowed and a no-op OnSelect.
func DefaultOptions[N comparable]() MSTOptions[N] {
	return MSTOptions[N]{
		Method:   MethodKruskal,
		OnSelect: func(core.Edge[N], float64) {},
	}
}

// WithMethod sets the algorithm used by Compute.
func WithMethod[N comparable](m string) Option[N] {
	return func(o *MSTOptions[N]) {
		o.Method = m
	}
}

// WithRoot sets the starting vertex for Prim. Ignored by Kruskal and PrimForest.
func WithRoot[N comparable](root N) Option[N] {
	return func(o *MSTOptions[N]) {
		o.Root = root
		o.HasRoot = true
	}
}

// WithRequireSpanning rejects forest results with ErrDisconnected.
func WithRequireSpanning[N comparable]() Option[N] {
	return func(o *MSTOptions[N]) {
		o.RequireSpanning = true
	}
}

// WithOnSelect registers a hook called for every accepted edge.
// A nil fn keeps the default.
func WithOnSelect[N comparable](fn func(e core.Edge[N], total float64)) Option[N] {
	return func(o *MSTOptions[N]) {
		if fn != nil {
			o.OnSelect = fn
		}
	}
}

func buildOptions[N comparable](opts []Option[N]) MSTOptions[N] {
	o := DefaultOptions[N]()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// Spanning reports whether tree is a spanning tree of a graph with order
// vertices, i.e. holds exactly order-1 edges. An empty graph is spanned by
// the empty tree.
func Spanning[N comparable](order int, tree []core.Edge[N]) bool {
	if order == 0 {
		return len(tree) == 0
	}

	return len(tree) == order-1
}

// Compute selects and runs the MST algorithm named by WithMethod.
//
//	MethodKruskal:    KruskalGraph(graph).
//	MethodPrim:       Prim(graph, root); root defaults to the first vertex.
//	MethodPrimForest: PrimForest(graph).
//
// An empty graph yields an empty result for every method.
func Compute[N comparable](graph *core.Graph[N], opts ...Option[N]) ([]core.Edge[N], float64, error) {
	o := buildOptions(opts)
	switch o.Method {
	case MethodKruskal:
		return KruskalGraph(graph, opts...)
	case MethodPrimForest:
		return PrimForest(graph, opts...)
	case MethodPrim:
		if graph == nil {
			return nil, 0, ErrInvalidGraph
		}
		root := o.Root
		if !o.HasRoot {
			vs := graph.Vertices()
			if len(vs) == 0 {
				return []core.Edge[N]{}, 0, nil
			}
			root = vs[0]
		}

		return Prim(graph, root, opts...)
	default:
		return nil, 0, fmt.Errorf("%w: %q", ErrUnknownMethod, o.Method)
	}
}

// finish applies RequireSpanning to a result.
func finish[N comparable](o MSTOptions[N], order int, tree []core.Edge[N], total float64) ([]core.Edge[N], float64, error) {
	if o.RequireSpanning && !Spanning(order, tree) {
		return nil, 0, fmt.Errorf("%w: %d edges for %d vertices", ErrDisconnected, len(tree), order)
	}

	return tree, total, nil
}

// checkGraph validates graph for the adjacency-based entry points.
func checkGraph[N comparable](graph *core.Graph[N]) error {
	if graph == nil {
		return ErrInvalidGraph
	}
	if !graph.Symmetric() {
		return fmt.Errorf("%w: graph has one-way arcs", ErrInvalidGraph)
	}

	return nil
}
