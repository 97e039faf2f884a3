// SPDX-License-Identifier: MIT

package dfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/wgraph/core"
)

// TopoOption configures optional behavior for TopologicalSort.
type TopoOption func(*topoOptions)

// topoOptions holds settings for TopologicalSort, currently only cancellation.
type topoOptions struct {
	ctx context.Context
}

func defaultTopoOptions() topoOptions {
	return topoOptions{ctx: context.Background()}
}

// WithCancelContext makes TopologicalSort abort once ctx is done.
func WithCancelContext(ctx context.Context) TopoOption {
	return func(o *topoOptions) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// TopologicalSort orders the vertices of g so that for every entry u→v,
// u comes before v. Every adjacency entry is read as an arc, so a graph
// holding an undirected edge (two mirrored entries) is cyclic.
//
// Errors: ErrGraphNil, ErrCycleDetected (wrapped with the closing arc),
// ctx errors.
// Complexity: O(V + E).
func TopologicalSort[N comparable](g *core.Graph[N], options ...TopoOption) ([]N, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	opts := defaultTopoOptions()
	for _, opt := range options {
		opt(&opts)
	}

	verts := g.Vertices()
	state := make(map[N]int, len(verts))
	order := make([]N, 0, len(verts))
	var stack []frame[N]

	for _, root := range verts {
		if state[root] != White {
			continue
		}
		nbs, err := g.Neighbors(root)
		if err != nil {
			return nil, err
		}
		state[root] = Gray
		stack = append(stack[:0], frame[N]{v: root, nbs: nbs})

		for len(stack) > 0 {
			select {
			case <-opts.ctx.Done():
				return nil, opts.ctx.Err()
			default:
			}

			top := &stack[len(stack)-1]
			if top.next == len(top.nbs) {
				state[top.v] = Black
				order = append(order, top.v)
				stack = stack[:len(stack)-1]
				continue
			}
			nb := top.nbs[top.next].To
			top.next++
			switch state[nb] {
			case Gray:
				return nil, fmt.Errorf("%w: %v→%v", ErrCycleDetected, top.v, nb)
			case Black:
				continue
			}
			if nbs, err = g.Neighbors(nb); err != nil {
				return nil, err
			}
			state[nb] = Gray
			stack = append(stack, frame[N]{v: nb, nbs: nbs})
		}
	}

	for i, j := 0, len(order)-1; i < j; i, j = i+1, j-1 {
		order[i], order[j] = order[j], order[i]
	}

	return order, nil
}
