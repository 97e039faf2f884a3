// SPDX-License-Identifier: MIT

// Package frontier provides the min-priority queue shared by the search and
// spanning-tree algorithms.
//
// Entries are ordered by ascending priority and, for equal priorities, by
// ascending insertion sequence, so two runs over the same input pop the same
// entries in the same order. The queue does not suppress duplicates: callers
// that re-push an item with a better priority skip the stale copy on Pop
// (lazy decrease-key).
//
// Complexity: Push and Pop are O(log n), Peek/Len/Empty O(1).
package frontier
