// SPDX-License-Identifier: MIT

package frontier

import "container/heap"

// Entry is one queued item.
type Entry[T any] struct {
	Priority float64
	Seq      uint64 // insertion sequence, tie-breaker
	Item     T
}

// entries implements heap.Interface.
type entries[T any] []Entry[T]

func (h entries[T]) Len() int { return len(h) }

func (h entries[T]) Less(i, j int) bool {
	if h[i].Priority != h[j].Priority {
		return h[i].Priority < h[j].Priority
	}

	return h[i].Seq < h[j].Seq
}

func (h entries[T]) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *entries[T]) Push(x any) { *h = append(*h, x.(Entry[T])) }

func (h *entries[T]) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	old[n-1] = Entry[T]{}
	*h = old[:n-1]

	return e
}

// Queue is a min-priority queue with insertion-order tie-breaking.
// The zero value is ready to use.
type Queue[T any] struct {
	h   entries[T]
	seq uint64
}

// New returns an empty Queue.
func New[T any]() *Queue[T] {
	return &Queue[T]{}
}

// Push enqueues item with the given priority. Equal priorities pop in push
// order. An item may be pushed many times; callers skip stale copies.
// Complexity: O(log n).
func (q *Queue[T]) Push(priority float64, item T) {
	heap.Push(&q.h, Entry[T]{Priority: priority, Seq: q.seq, Item: item})
	q.seq++
}

// Pop removes and returns the entry with the smallest (Priority, Seq).
// ok is false when the queue is empty.
// Complexity: O(log n).
func (q *Queue[T]) Pop() (e Entry[T], ok bool) {
	if len(q.h) == 0 {
		return e, false
	}

	return heap.Pop(&q.h).(Entry[T]), true
}

// Peek returns the next entry without removing it.
// Complexity: O(1).
func (q *Queue[T]) Peek() (e Entry[T], ok bool) {
	if len(q.h) == 0 {
		return e, false
	}

	return q.h[0], true
}

// Len returns the number of queued entries, stale copies included.
func (q *Queue[T]) Len() int { return len(q.h) }

// Empty reports whether the queue holds no entries.
func (q *Queue[T]) Empty() bool { return len(q.h) == 0 }
