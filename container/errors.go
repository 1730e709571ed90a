// SPDX-License-Identifier: MIT

//
// File: errors.go
// Role: Closed error-kind enumeration for container contract violations.
// Policy:
//   - Exactly two kinds exist: IndexOutOfBounds and EmptyContainer.
//   - Violations are returned as *Error values; callers branch with errors.Is
//     against the package sentinels, never on message text.

package container

import "fmt"

// ErrorKind classifies a container contract violation.
type ErrorKind uint8

const (
	// IndexOutOfBounds reports a checked index access outside [0, size).
	IndexOutOfBounds ErrorKind = iota + 1

	// EmptyContainer reports a front/back/top access on an empty container.
	EmptyContainer
)

// String returns the kind name.
func (k ErrorKind) String() string {
	switch k {
	case IndexOutOfBounds:
		return "index out of bounds"
	case EmptyContainer:
		return "empty container"
	default:
		return fmt.Sprintf("ErrorKind(%d)", uint8(k))
	}
}

// Sentinel errors matched by kind through errors.Is.
var (
	// ErrIndexOutOfBounds matches any *Error of kind IndexOutOfBounds.
	ErrIndexOutOfBounds error = &Error{Kind: IndexOutOfBounds}

	// ErrEmptyContainer matches any *Error of kind EmptyContainer.
	ErrEmptyContainer error = &Error{Kind: EmptyContainer}
)

// Error describes a single contract violation.
//
// Op names the failing operation ("Array.At", "Queue.Front", ...). Index and
// Size are meaningful only for IndexOutOfBounds.
type Error struct {
	Kind  ErrorKind
	Op    string
	Index int
	Size  int
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Op == "" {
		return "container: " + e.Kind.String()
	}
	if e.Kind == IndexOutOfBounds {
		return fmt.Sprintf("container: %s: index %d out of bounds [0,%d)", e.Op, e.Index, e.Size)
	}

	return fmt.Sprintf("container: %s: %s", e.Op, e.Kind)
}

// Is reports whether target is a container error of the same kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)

	return ok && t.Kind == e.Kind
}

func outOfBounds(op string, index, size int) error {
	return &Error{Kind: IndexOutOfBounds, Op: op, Index: index, Size: size}
}

func empty(op string) error {
	return &Error{Kind: EmptyContainer, Op: op}
}
