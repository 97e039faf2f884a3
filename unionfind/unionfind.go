// SPDX-License-Identifier: MIT

package unionfind

import (
	"errors"
	"fmt"
)

// ErrUnknownElement indicates Find or Union was called with an element that
// was never added.
var ErrUnknownElement = errors.New("unionfind: unknown element")

// UnionFind is a disjoint-set forest with path compression and union by rank.
type UnionFind[N comparable] struct {
	parent map[N]N
	rank   map[N]uint8
	sets   int
}

// New returns a UnionFind holding each of elems as a singleton set.
// Duplicates in elems are ignored.
// Complexity: O(len(elems)).
func New[N comparable](elems ...N) *UnionFind[N] {
	uf := &UnionFind[N]{
		parent: make(map[N]N, len(elems)),
		rank:   make(map[N]uint8, len(elems)),
	}
	for _, x := range elems {
		uf.Add(x)
	}

	return uf
}

// Add registers x as a singleton set. Adding a known element is a no-op.
// Complexity: O(1) amortized.
func (uf *UnionFind[N]) Add(x N) {
	if _, ok := uf.parent[x]; ok {
		return
	}
	uf.parent[x] = x
	uf.rank[x] = 0
	uf.sets++
}

// Find returns the representative of x's set. Every element on the walked
// path is re-pointed directly at the representative.
//
// Errors: ErrUnknownElement if x was never added.
// Complexity: O(α(n)) amortized together with union by rank.
func (uf *UnionFind[N]) Find(x N) (N, error) {
	p, ok := uf.parent[x]
	if !ok {
		var zero N
		return zero, fmt.Errorf("%w: %v", ErrUnknownElement, x)
	}

	// First pass: locate the root.
	root := x
	for p != root {
		root = p
		p = uf.parent[root]
	}

	// Second pass: flatten.
	for x != root {
		next := uf.parent[x]
		uf.parent[x] = root
		x = next
	}

	return root, nil
}

// Union merges the sets of x and y. It reports false when they already share
// a representative. The lower-rank root is attached under the higher one;
// on equal ranks y's root goes under x's and x's rank grows.
//
// Errors: ErrUnknownElement if x or y was never added.
// Complexity: O(α(n)) amortized.
func (uf *UnionFind[N]) Union(x, y N) (bool, error) {
	rx, err := uf.Find(x)
	if err != nil {
		return false, err
	}
	ry, err := uf.Find(y)
	if err != nil {
		return false, err
	}
	if rx == ry {
		return false, nil
	}

	switch rkx, rky := uf.rank[rx], uf.rank[ry]; {
	case rkx < rky:
		uf.parent[rx] = ry
	case rkx > rky:
		uf.parent[ry] = rx
	default:
		uf.parent[ry] = rx
		uf.rank[rx]++
	}
	uf.sets--

	return true, nil
}

// Connected reports whether x and y are in the same set.
//
// Errors: ErrUnknownElement if x or y was never added.
// Complexity: O(α(n)) amortized.
func (uf *UnionFind[N]) Connected(x, y N) (bool, error) {
	rx, err := uf.Find(x)
	if err != nil {
		return false, err
	}
	ry, err := uf.Find(y)
	if err != nil {
		return false, err
	}

	return rx == ry, nil
}

// Len returns the number of registered elements.
func (uf *UnionFind[N]) Len() int { return len(uf.parent) }

// Sets returns the number of disjoint sets.
// Complexity: O(1).
func (uf *UnionFind[N]) Sets() int { return uf.sets }
