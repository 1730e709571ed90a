// SPDX-License-Identifier: MIT

//
// File: heap.go
// Role: Binary-heap priority queue over Array[T].
// Policy:
//   - The Order supplied at construction decides which element is "first":
//     Top returns an element x such that no other element y has before(y, x).
//   - Order must be a strict weak ordering; ties leave Top unspecified among
//     equals (no stability promise).
// Complexity:
//   - Push/Pop O(log n), Top/Len O(1).

package container

// Order reports whether a should leave the queue before b.
type Order[T any] func(a, b T) bool

// Ascending orders elements by increasing key: the smallest key is served
// first (min-heap). Search frontiers use this.
func Ascending[T any, K int | int64 | float64](key func(T) K) Order[T] {
	return func(a, b T) bool { return key(a) < key(b) }
}

// Descending orders elements by decreasing key: the largest key is served
// first (max-heap).
func Descending[T any, K int | int64 | float64](key func(T) K) Order[T] {
	return func(a, b T) bool { return key(a) > key(b) }
}

// Reverse flips an Order.
func Reverse[T any](o Order[T]) Order[T] {
	return func(a, b T) bool { return o(b, a) }
}

// PriorityQueue is a binary heap ordered by an Order.
type PriorityQueue[T any] struct {
	items  *Array[T]
	before Order[T]
}

// NewPriorityQueue returns an empty queue ordered by before. Panics if before
// is nil.
func NewPriorityQueue[T any](before Order[T], capacity int) *PriorityQueue[T] {
	if before == nil {
		panic("container: NewPriorityQueue(nil order)")
	}

	return &PriorityQueue[T]{items: NewArray[T](capacity), before: before}
}

// Push inserts v.
func (pq *PriorityQueue[T]) Push(v T) {
	pq.items.PushBack(v)
	pq.up(pq.items.Len() - 1)
}

// Pop removes the first element; no-op on an empty queue.
func (pq *PriorityQueue[T]) Pop() {
	n := pq.items.Len()
	if n == 0 {
		return
	}
	pq.items.Swap(0, n-1)
	pq.items.PopBack()
	if n > 1 {
		pq.down(0)
	}
}

// Top returns the first element or an EmptyContainer error.
func (pq *PriorityQueue[T]) Top() (T, error) {
	if pq.items.Len() == 0 {
		var zero T
		return zero, empty("PriorityQueue.Top")
	}

	return pq.items.Get(0), nil
}

// Len returns the number of queued elements.
func (pq *PriorityQueue[T]) Len() int { return pq.items.Len() }

// IsEmpty reports whether the queue holds no elements.
func (pq *PriorityQueue[T]) IsEmpty() bool { return pq.items.Len() == 0 }

// Clear drops every element. Capacity is retained.
func (pq *PriorityQueue[T]) Clear() { pq.items.Clear() }

func (pq *PriorityQueue[T]) up(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !pq.before(pq.items.Get(i), pq.items.Get(parent)) {
			return
		}
		pq.items.Swap(i, parent)
		i = parent
	}
}

func (pq *PriorityQueue[T]) down(i int) {
	n := pq.items.Len()
	for {
		first := i
		l, r := 2*i+1, 2*i+2
		if l < n && pq.before(pq.items.Get(l), pq.items.Get(first)) {
			first = l
		}
		if r < n && pq.before(pq.items.Get(r), pq.items.Get(first)) {
			first = r
		}
		if first == i {
			return
		}
		pq.items.Swap(i, first)
		i = first
	}
}
