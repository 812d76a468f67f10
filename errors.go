// Copyright 2022 by Gilbert Ramirez <gram@alumni.rice.edu>

package genericstack

import (
	"github.com/pkg/errors"
)

var (
	// ErrAllocationFailure is returned when the storage for a Stack
	// could not be obtained. The Stack involved is left empty, or, for
	// Assign and Refactor, exactly as it was.
	ErrAllocationFailure = errors.New("allocation failure")

	// ErrCapacityExceeded is returned by Push on a full Stack.
	ErrCapacityExceeded = errors.New("push out of range")

	// ErrUnderflow is returned by Pop on an empty Stack. Cursor errors
	// at the end position also match it.
	ErrUnderflow = errors.New("pop out of range")

	// ErrOutOfRange is returned when a Cursor at the end position is
	// dereferenced or decremented.
	ErrOutOfRange = errors.New("cursor out of range")

	// ErrInvalidCursor is returned when a Cursor refers to storage that
	// its Stack has since replaced or released.
	ErrInvalidCursor = errors.New("cursor refers to released storage")

	// ErrMismatchedRange is returned when the two Cursors of a range
	// do not belong to the same Stack.
	ErrMismatchedRange = errors.New("cursors belong to different stacks")
)

// cursorError is what a Cursor returns when asked to move past, or read,
// the end position. It matches both ErrOutOfRange and ErrUnderflow.
type cursorError struct {
	op string
}

func (s *cursorError) Error() string {
	return s.op + ": " + ErrOutOfRange.Error()
}

func (s *cursorError) Is(target error) bool {
	return target == ErrOutOfRange || target == ErrUnderflow
}
