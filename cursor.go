// Copyright 2022 by Gilbert Ramirez <gram@alumni.rice.edu>

package genericstack

import (
	"fmt"

	"github.com/pkg/errors"
)

// Cursor is a read-only position in a Stack. It starts at the top
// (Stack.Begin) and can only move toward the bottom, in the same order
// that Pop would return the elements. Moving past the bottom element
// reaches the end position (Stack.End).
//
// A Cursor does not own anything. It stays usable across Push, Pop and
// Flush, although the element at its position may change, but becomes
// invalid once the Stack replaces its storage with Refactor, Assign,
// Initialize or Release.
type Cursor[T any] struct {
	buf *bufferT[T]

	// Distance from the bottom sentinel. The top element of a Stack
	// holding n elements is at depth n; the end position is depth 0.
	depth int
}

func (s Cursor[T]) checkValid() error {
	if s.buf != nil && s.buf.released {
		return errors.WithStack(ErrInvalidCursor)
	}
	return nil
}

// Depth returns the distance of the Cursor from the end position.
func (s Cursor[T]) Depth() int {
	return s.depth
}

// IsEnd reports whether the Cursor is at the end position.
func (s Cursor[T]) IsEnd() bool {
	return s.depth == 0
}

// Value returns a copy of the element at the Cursor.
func (s Cursor[T]) Value() (T, error) {
	var zero T
	if err := s.checkValid(); err != nil {
		return zero, err
	}
	if s.depth == 0 {
		return zero, &cursorError{op: "dereference"}
	}
	return s.buf.slots[s.depth], nil
}

// Decrement moves the Cursor one element toward the bottom of the Stack.
// At the end position it fails and the Cursor does not move.
func (s *Cursor[T]) Decrement() error {
	if err := s.checkValid(); err != nil {
		return err
	}
	if s.depth == 0 {
		return &cursorError{op: "decrement"}
	}
	s.depth--
	return nil
}

// PostDecrement moves the Cursor like Decrement, and returns
// the position it had before moving.
func (s *Cursor[T]) PostDecrement() (Cursor[T], error) {
	prior := *s
	if err := s.Decrement(); err != nil {
		return prior, err
	}
	return prior, nil
}

// Equal reports whether both Cursors are at the same position of the
// same storage.
func (s Cursor[T]) Equal(other Cursor[T]) bool {
	return s.buf == other.buf && s.depth == other.depth
}

// Less orders Cursors by their distance from the top: a Cursor nearer
// the top of the Stack comes first.
func (s Cursor[T]) Less(other Cursor[T]) bool {
	return s.depth > other.depth
}

func (s Cursor[T]) Greater(other Cursor[T]) bool {
	return other.Less(s)
}

// Sub returns the number of elements between the two Cursors. It is
// never negative, whichever of the two is nearer the top.
func (s Cursor[T]) Sub(other Cursor[T]) int {
	if other.depth >= s.depth {
		return other.depth - s.depth
	}
	return s.depth - other.depth
}

// Difference returns the number of elements between a and b. It is the
// same as a.Sub(b) and as b.Sub(a).
func Difference[T any](a, b Cursor[T]) int {
	return a.Sub(b)
}

func (s Cursor[T]) String() string {
	return fmt.Sprintf("<Cursor %p depth:%d>", s.buf, s.depth)
}
