// Copyright 2022 by Gilbert Ramirez <gram@alumni.rice.edu>

package genericstack

import (
	"fmt"
	"math"
	"runtime"

	"github.com/pkg/errors"
)

// The storage owned by a single Stack. slots[0] is the sentinel that
// the end Cursor points at; it always holds the zero T. Elements live
// in slots[1..capacity], the bottom of the stack at slots[1].
//
// The pointer to a bufferT is its identity: Cursors compare it, and a
// Stack hands out a new one whenever its storage is replaced.
type bufferT[T any] struct {
	slots []T

	// Set once the owning Stack has dropped this buffer. Cursors
	// still holding it refuse to be used.
	released bool
}

// Allocate the storage for a Stack of the given capacity.
// Any failure, including a runtime panic from make(), is reported
// as ErrAllocationFailure.
func newBuffer[T any](capacity int) (buf *bufferT[T], err error) {
	if capacity < 0 {
		return nil, errors.Wrapf(ErrAllocationFailure, "negative capacity %d", capacity)
	}
	if capacity > MaxCapacity || capacity == math.MaxInt {
		return nil, errors.Wrapf(ErrAllocationFailure,
			"capacity %d is above the maximum of %d", capacity, min(MaxCapacity, math.MaxInt-1))
	}

	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(runtime.Error); !ok {
				panic(r)
			}
			dlog.Printf("allocating capacity %d: %v", capacity, r)
			buf = nil
			err = errors.Wrapf(ErrAllocationFailure, "allocating capacity %d: %v",
				capacity, r)
		}
	}()

	buf = &bufferT[T]{
		slots: make([]T, capacity+1),
	}
	return buf, nil
}

func (s *bufferT[T]) capacity() int {
	if s == nil || s.slots == nil {
		return 0
	}
	return len(s.slots) - 1
}

func (s *bufferT[T]) release() {
	if s == nil {
		return
	}
	s.released = true
	s.slots = nil
}

func (s *bufferT[T]) String() string {
	if s == nil {
		return "<bufferT nil>"
	}
	return fmt.Sprintf("<bufferT %p cap:%d released:%t>", s, s.capacity(), s.released)
}
