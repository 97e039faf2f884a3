// SPDX-License-Identifier: MIT

// Package astar implements best-first shortest-path search guided by a
// heuristic (A*) over a core.Graph.
//
// The search keeps, per discovered vertex, the best known cost from the start
// and the predecessor on that path. The frontier is ordered by
// cost-from-start + heuristic(vertex, goal); ties pop in insertion order.
// A popped vertex that is already finalized is a stale entry and is skipped.
// A neighbor is re-queued only on strict improvement.
//
// Guarantee: with an admissible and consistent heuristic the returned path
// has minimum total weight. The heuristic contract is documented, not
// checked: a heuristic that overestimates still terminates but may return a
// suboptimal path.
//
// Outcomes:
//
//	path found    - Result.Path runs start..goal, Result.Cost is its weight.
//	start == goal - Result.Path == [start], Cost == 0.
//	unreachable   - Result.Path is empty, Cost == +Inf, error is nil.
//
// Errors are reserved for malformed calls: ErrNilGraph, ErrNilHeuristic,
// and core.ErrVertexNotFound for an absent start or goal.
//
// Complexity: O((V + E) log V) time with a consistent heuristic, O(V) space
// for cost/predecessor maps plus the frontier.
package astar
