// SPDX-License-Identifier: MIT

// Package unionfind implements a disjoint-set forest over any comparable
// element type.
//
// Find flattens the whole path it walks (every visited element is re-pointed
// at the root) and Union links by rank, so a sequence of m operations on n
// elements costs O(m·α(n)).
//
// Elements must be registered (New or Add) before Find/Union; an unknown
// element yields ErrUnknownElement instead of being created implicitly.
//
// A UnionFind is a per-call scratch structure and is not safe for concurrent
// use.
package unionfind
