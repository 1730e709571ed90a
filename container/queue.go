// SPDX-License-Identifier: MIT

package container

// Queue is a FIFO over a growable ring buffer.
//
// The zero value is not usable; create queues with NewQueue.
type Queue[T any] struct {
	buf  []T
	head int // index of the front element
	size int
}

// NewQueue returns an empty Queue with room for capacity elements before the
// first growth. A capacity below 1 falls back to DefaultCapacity.
func NewQueue[T any](capacity int) *Queue[T] {
	if capacity < 1 {
		capacity = DefaultCapacity
	}

	return &Queue[T]{buf: make([]T, capacity)}
}

// grow doubles the ring and unwraps it so the front lands at index 0.
func (q *Queue[T]) grow() {
	next := make([]T, 2*len(q.buf))
	n := copy(next, q.buf[q.head:])
	copy(next[n:], q.buf[:q.head])
	q.buf = next
	q.head = 0
}

// Enqueue appends v at the rear. Amortised O(1).
func (q *Queue[T]) Enqueue(v T) {
	if q.size == len(q.buf) {
		q.grow()
	}
	q.buf[(q.head+q.size)%len(q.buf)] = v
	q.size++
}

// Dequeue removes the front element; no-op on an empty queue.
func (q *Queue[T]) Dequeue() {
	if q.size == 0 {
		return
	}
	var zero T
	q.buf[q.head] = zero
	q.head = (q.head + 1) % len(q.buf)
	q.size--
}

// Front returns the oldest element or an EmptyContainer error.
func (q *Queue[T]) Front() (T, error) {
	if q.size == 0 {
		var zero T
		return zero, empty("Queue.Front")
	}

	return q.buf[q.head], nil
}

// Rear returns the newest element or an EmptyContainer error.
func (q *Queue[T]) Rear() (T, error) {
	if q.size == 0 {
		var zero T
		return zero, empty("Queue.Rear")
	}

	return q.buf[(q.head+q.size-1)%len(q.buf)], nil
}

// Len returns the number of queued elements.
func (q *Queue[T]) Len() int { return q.size }

// Cap returns the ring capacity.
func (q *Queue[T]) Cap() int { return len(q.buf) }

// IsEmpty reports whether the queue holds no elements.
func (q *Queue[T]) IsEmpty() bool { return q.size == 0 }

// Clear drops every element. Capacity is retained.
func (q *Queue[T]) Clear() {
	var zero T
	for i := 0; i < q.size; i++ {
		q.buf[(q.head+i)%len(q.buf)] = zero
	}
	q.head, q.size = 0, 0
}

// Clone returns an element-wise copy preserving FIFO order.
func (q *Queue[T]) Clone() *Queue[T] {
	c := &Queue[T]{buf: make([]T, len(q.buf)), size: q.size}
	for i := 0; i < q.size; i++ {
		c.buf[i] = q.buf[(q.head+i)%len(q.buf)]
	}

	return c
}
