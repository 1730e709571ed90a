// SPDX-License-Identifier: MIT

//
// File: list.go
// Role: Linked list stored in an arena of index-addressed slots.
// Policy:
//   - Slots link to each other by index, never by pointer; freed slots are
//     recycled through a free list.
//   - Iteration order is insertion order (PushBack) and is part of the
//     contract: graph adjacency relies on it.
//   - The arena is allocated lazily so empty lists cost a few words.

package container

import "iter"

// nilSlot marks the absence of a slot link.
const nilSlot = -1

// initialSlots is the arena capacity allocated on first insertion.
const initialSlots = 2

// slot is one arena cell.
type slot[T any] struct {
	value T
	prev  int
	next  int
}

// View is the read-only surface of a List handed to consumers that must not
// mutate it (for example a graph's adjacency lists).
type View[T any] interface {
	Len() int
	IsEmpty() bool
	Front() (T, error)
	Back() (T, error)
	All() iter.Seq[T]
	Contains(v T) bool
	IndexOf(v T) int
}

// List is a linked list of T with O(1) insertion and removal at both ends.
type List[T any] struct {
	slots *Array[slot[T]]
	head  int
	tail  int
	free  int
	size  int
	eq    func(a, b T) bool
}

// NewList returns an empty List whose Contains/IndexOf use ==.
func NewList[T comparable]() *List[T] {
	return NewListFunc(func(a, b T) bool { return a == b })
}

// NewListFunc returns an empty List whose Contains/IndexOf use eq.
// Panics if eq is nil.
func NewListFunc[T any](eq func(a, b T) bool) *List[T] {
	if eq == nil {
		panic("container: NewListFunc(nil)")
	}

	return &List[T]{head: nilSlot, tail: nilSlot, free: nilSlot, eq: eq}
}

// alloc stores v in a fresh or recycled slot and returns its index.
func (l *List[T]) alloc(v T) int {
	if l.free != nilSlot {
		i := l.free
		l.free = l.slots.Get(i).next
		l.slots.Put(i, slot[T]{value: v, prev: nilSlot, next: nilSlot})

		return i
	}
	if l.slots == nil {
		l.slots = NewArray[slot[T]](initialSlots)
	}
	l.slots.PushBack(slot[T]{value: v, prev: nilSlot, next: nilSlot})

	return l.slots.Len() - 1
}

// release returns slot i to the free list.
func (l *List[T]) release(i int) {
	l.slots.Put(i, slot[T]{prev: nilSlot, next: l.free})
	l.free = i
}

// PushFront inserts v before the current head.
func (l *List[T]) PushFront(v T) {
	i := l.alloc(v)
	if l.size == 0 {
		l.head, l.tail = i, i
	} else {
		s := l.slots.Get(i)
		s.next = l.head
		l.slots.Put(i, s)

		h := l.slots.Get(l.head)
		h.prev = i
		l.slots.Put(l.head, h)
		l.head = i
	}
	l.size++
}

// PushBack appends v after the current tail.
func (l *List[T]) PushBack(v T) {
	i := l.alloc(v)
	if l.size == 0 {
		l.head, l.tail = i, i
	} else {
		s := l.slots.Get(i)
		s.prev = l.tail
		l.slots.Put(i, s)

		t := l.slots.Get(l.tail)
		t.next = i
		l.slots.Put(l.tail, t)
		l.tail = i
	}
	l.size++
}

// PopFront removes the head element; no-op on an empty list.
func (l *List[T]) PopFront() {
	if l.size == 0 {
		return
	}
	old := l.head
	next := l.slots.Get(old).next
	l.release(old)
	l.head = next
	if next == nilSlot {
		l.tail = nilSlot
	} else {
		n := l.slots.Get(next)
		n.prev = nilSlot
		l.slots.Put(next, n)
	}
	l.size--
}

// PopBack removes the tail element; no-op on an empty list.
func (l *List[T]) PopBack() {
	if l.size == 0 {
		return
	}
	old := l.tail
	prev := l.slots.Get(old).prev
	l.release(old)
	l.tail = prev
	if prev == nilSlot {
		l.head = nilSlot
	} else {
		p := l.slots.Get(prev)
		p.next = nilSlot
		l.slots.Put(prev, p)
	}
	l.size--
}

// Front returns the head element or an EmptyContainer error.
func (l *List[T]) Front() (T, error) {
	if l.size == 0 {
		var zero T
		return zero, empty("List.Front")
	}

	return l.slots.Get(l.head).value, nil
}

// Back returns the tail element or an EmptyContainer error.
func (l *List[T]) Back() (T, error) {
	if l.size == 0 {
		var zero T
		return zero, empty("List.Back")
	}

	return l.slots.Get(l.tail).value, nil
}

// Len returns the number of elements.
func (l *List[T]) Len() int { return l.size }

// IsEmpty reports whether the list holds no elements.
func (l *List[T]) IsEmpty() bool { return l.size == 0 }

// Clear drops every element and the arena.
func (l *List[T]) Clear() {
	l.slots = nil
	l.head, l.tail, l.free = nilSlot, nilSlot, nilSlot
	l.size = 0
}

// All yields the elements from head to tail.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := l.head; i != nilSlot; {
			s := l.slots.Get(i)
			if !yield(s.value) {
				return
			}
			i = s.next
		}
	}
}

// Contains reports whether some element equals v. O(n).
func (l *List[T]) Contains(v T) bool {
	return l.IndexOf(v) >= 0
}

// IndexOf returns the position of the first element equal to v, or -1. O(n).
func (l *List[T]) IndexOf(v T) int {
	pos := 0
	for i := l.head; i != nilSlot; pos++ {
		s := l.slots.Get(i)
		if l.eq(s.value, v) {
			return pos
		}
		i = s.next
	}

	return -1
}

// Clone returns an element-wise copy in the same order with the same equality.
// The copy's arena is compact.
func (l *List[T]) Clone() *List[T] {
	c := NewListFunc(l.eq)
	for v := range l.All() {
		c.PushBack(v)
	}

	return c
}

// ReadOnly returns a View of l that cannot be type-asserted back to *List.
// It observes later changes to l.
func (l *List[T]) ReadOnly() View[T] { return listView[T]{l: l} }

// listView hides a List behind its read-only methods.
type listView[T any] struct{ l *List[T] }

func (v listView[T]) Len() int          { return v.l.Len() }
func (v listView[T]) IsEmpty() bool     { return v.l.IsEmpty() }
func (v listView[T]) Front() (T, error) { return v.l.Front() }
func (v listView[T]) Back() (T, error)  { return v.l.Back() }
func (v listView[T]) All() iter.Seq[T]  { return v.l.All() }
func (v listView[T]) Contains(x T) bool { return v.l.Contains(x) }
func (v listView[T]) IndexOf(x T) int   { return v.l.IndexOf(x) }

var (
	_ View[int] = (*List[int])(nil)
	_ View[int] = listView[int]{}
)
