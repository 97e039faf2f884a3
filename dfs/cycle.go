// SPDX-License-Identifier: MIT

package dfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/wgraph/core"
)

// ErrNotUndirected is returned by HasCycle for a graph whose adjacency is
// not symmetric.
var ErrNotUndirected = errors.New("dfs: graph is not undirected")

// cycleFrame is a DFS frame that remembers the tree parent. The first entry
// pointing back at the parent is the tree edge itself and is skipped once;
// a second one is a parallel edge and closes a cycle.
type cycleFrame[N comparable] struct {
	frame[N]
	parent     N
	hasParent  bool
	skippedTop bool
}

// HasCycle reports whether the undirected graph g contains a cycle.
// Parallel edges between the same pair count as a cycle of length two.
// A nil graph is cycle-free.
//
// Errors: ErrNotUndirected if g is not Symmetric.
// Complexity: O(V + E).
func HasCycle[N comparable](g *core.Graph[N]) (bool, error) {
	if g == nil {
		return false, nil
	}
	if !g.Symmetric() {
		return false, ErrNotUndirected
	}

	c := &cycleChecker[N]{graph: g, state: make(map[N]int, g.Order())}
	for _, root := range g.Vertices() {
		if c.state[root] != White {
			continue
		}
		var zero N
		if err := c.push(root, zero, false); err != nil {
			return false, err
		}
		found, err := c.drain()
		if err != nil || found {
			return found, err
		}
	}

	return false, nil
}

// cycleChecker holds the colors and the frame stack of one HasCycle call.
type cycleChecker[N comparable] struct {
	graph *core.Graph[N]
	state map[N]int
	stack []cycleFrame[N]
}

func (c *cycleChecker[N]) push(v, parent N, hasParent bool) error {
	nbs, err := c.graph.Neighbors(v)
	if err != nil {
		return fmt.Errorf("dfs: HasCycle: %w", err)
	}
	c.state[v] = Gray
	c.stack = append(c.stack, cycleFrame[N]{
		frame:     frame[N]{v: v, nbs: nbs},
		parent:    parent,
		hasParent: hasParent,
	})

	return nil
}

// drain explores the current tree; it stops at the first non-tree entry
// reaching an already discovered vertex.
func (c *cycleChecker[N]) drain() (bool, error) {
	for len(c.stack) > 0 {
		top := &c.stack[len(c.stack)-1]
		if top.next == len(top.nbs) {
			c.state[top.v] = Black
			c.stack = c.stack[:len(c.stack)-1]
			continue
		}
		nb := top.nbs[top.next].To
		top.next++
		if top.hasParent && !top.skippedTop && nb == top.parent {
			top.skippedTop = true
			continue
		}
		if c.state[nb] != White {
			return true, nil
		}
		if err := c.push(nb, top.v, true); err != nil {
			return false, err
		}
	}

	return false, nil
}
