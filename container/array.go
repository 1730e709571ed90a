// SPDX-License-Identifier: MIT

//
// File: array.go
// Role: Growable array with explicit capacity doubling.
// Policy:
//   - Size never exceeds capacity; capacity never shrinks.
//   - At/Set are bounds-checked and return IndexOutOfBounds.
//   - Get/Put skip the check and are reserved for proven-safe loops.

package container

import "iter"

// DefaultCapacity is the backing capacity used when NewArray receives a
// non-positive hint.
const DefaultCapacity = 10

// Array is a growable array of T.
//
// The zero value is not usable; create arrays with NewArray.
type Array[T any] struct {
	data []T // backing storage; len(data) is the capacity
	size int // number of live elements
}

// NewArray returns an empty Array with room for capacity elements.
// A capacity below 1 falls back to DefaultCapacity.
//
// Complexity: O(capacity) time and space.
func NewArray[T any](capacity int) *Array[T] {
	if capacity < 1 {
		capacity = DefaultCapacity
	}

	return &Array[T]{data: make([]T, capacity)}
}

// grow doubles the backing capacity and copies the live prefix.
func (a *Array[T]) grow() {
	next := make([]T, 2*len(a.data))
	copy(next, a.data[:a.size])
	a.data = next
}

// PushBack appends v, doubling capacity when the backing storage is full.
//
// Complexity: amortised O(1).
func (a *Array[T]) PushBack(v T) {
	if a.size >= len(a.data) {
		a.grow()
	}
	a.data[a.size] = v
	a.size++
}

// PopBack removes the last element. It never releases backing storage and is
// a no-op on an empty array.
//
// Complexity: O(1).
func (a *Array[T]) PopBack() {
	if a.size == 0 {
		return
	}
	a.size--
	var zero T
	a.data[a.size] = zero // drop the reference for the GC
}

// At returns the element at index i or an IndexOutOfBounds error.
func (a *Array[T]) At(i int) (T, error) {
	if i < 0 || i >= a.size {
		var zero T
		return zero, outOfBounds("Array.At", i, a.size)
	}

	return a.data[i], nil
}

// Set overwrites the element at index i or returns an IndexOutOfBounds error.
func (a *Array[T]) Set(i int, v T) error {
	if i < 0 || i >= a.size {
		return outOfBounds("Array.Set", i, a.size)
	}
	a.data[i] = v

	return nil
}

// Get returns the element at index i without a bounds check against the
// logical size. Indices in [size, capacity) return stale or zero values;
// indices outside the backing storage panic. Use At unless i is proven valid.
func (a *Array[T]) Get(i int) T {
	return a.data[i]
}

// Put overwrites the element at index i without a bounds check against the
// logical size. Same caveats as Get.
func (a *Array[T]) Put(i int, v T) {
	a.data[i] = v
}

// Back returns the last element or an EmptyContainer error.
func (a *Array[T]) Back() (T, error) {
	if a.size == 0 {
		var zero T
		return zero, empty("Array.Back")
	}

	return a.data[a.size-1], nil
}

// Len returns the number of elements.
func (a *Array[T]) Len() int { return a.size }

// Cap returns the backing capacity.
func (a *Array[T]) Cap() int { return len(a.data) }

// IsEmpty reports whether the array holds no elements.
func (a *Array[T]) IsEmpty() bool { return a.size == 0 }

// Clear drops every element. Capacity is retained.
func (a *Array[T]) Clear() {
	var zero T
	for i := 0; i < a.size; i++ {
		a.data[i] = zero
	}
	a.size = 0
}

// Swap exchanges the elements at i and j. Both must be in [0, size).
func (a *Array[T]) Swap(i, j int) {
	a.data[i], a.data[j] = a.data[j], a.data[i]
}

// Clone returns a deep, element-wise copy with the same capacity.
// Elements are copied by assignment; pointer elements share their targets.
func (a *Array[T]) Clone() *Array[T] {
	c := &Array[T]{data: make([]T, len(a.data)), size: a.size}
	copy(c.data, a.data[:a.size])

	return c
}

// All yields (index, element) pairs in index order.
func (a *Array[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < a.size; i++ {
			if !yield(i, a.data[i]) {
				return
			}
		}
	}
}

// Slice returns a copy of the live elements as a plain slice.
func (a *Array[T]) Slice() []T {
	out := make([]T, a.size)
	copy(out, a.data[:a.size])

	return out
}
