// SPDX-License-Identifier: MIT

// Package container provides the generic collections the navigation graph and
// its search algorithms are built on: a growable array, a linked list, a FIFO
// queue and a binary-heap priority queue.
//
// The containers manage their own storage: backing slices are allocated at a
// fixed length and grown by explicit doubling, so capacity and size are under
// the container's control rather than the runtime's append policy.
//
// Overview
//
//	Array[T]          growable array; amortised O(1) PushBack, O(1) PopBack,
//	                  checked (At/Set) and unchecked (Get/Put) index access.
//	List[T]           linked list over an arena of index-addressed slots;
//	                  O(1) push/pop at both ends, forward iteration in
//	                  insertion order, O(n) Contains/IndexOf.
//	Queue[T]          FIFO over a growable ring buffer.
//	PriorityQueue[T]  binary heap over Array[T], ordered by a named Order.
//
// # Errors
//
// Contract violations are reported as *Error values of one of two kinds:
//
//	IndexOutOfBounds  checked index outside [0, size)
//	EmptyContainer    Front/Back/Top/Rear on an empty container
//
// Match them with errors.Is(err, ErrIndexOutOfBounds) or
// errors.Is(err, ErrEmptyContainer). Pops on an empty container are no-ops,
// not errors.
//
// # Concurrency
//
// None of the containers are safe for concurrent mutation. Concurrent readers
// are fine as long as nobody writes.
package container
