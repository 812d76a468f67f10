// Copyright 2022 by Gilbert Ramirez <gram@alumni.rice.edu>

package genericstack

import (
	"iter"

	"github.com/pkg/errors"
)

// Stack is a last-in, first-out container holding at most Size() elements.
//
// The zero value is an empty Stack of capacity 0; call Initialize to give
// it room. A Stack owns its storage, so it must not be copied by value:
// use Clone or Assign to get an independent copy.
type Stack[T any] struct {
	buf   *bufferT[T]
	count int
}

// Instantiates and initializes a new Stack that can hold capacity elements.
func New[T any](capacity int) (*Stack[T], error) {
	s := &Stack[T]{}
	if err := s.Initialize(capacity); err != nil {
		return nil, err
	}
	return s, nil
}

// Initializes a Stack. Use this if you have allocated a Stack object
// already, and only need to give it storage. Any previous contents are
// dropped, and Cursors into them become invalid. If the storage cannot
// be allocated, the Stack is left as it was.
func (s *Stack[T]) Initialize(capacity int) error {
	buf, err := newBuffer[T](capacity)
	if err != nil {
		return err
	}
	dlog.Printf("Initialize: %s", buf)
	s.swapIn(&Stack[T]{buf: buf})
	return nil
}

// Takes over the storage of other, leaving other empty, and releases
// the storage s held until now.
func (s *Stack[T]) swapIn(other *Stack[T]) {
	old := s.buf
	s.buf, other.buf = other.buf, nil
	s.count, other.count = other.count, 0
	old.release()
}

// Release drops the storage of the Stack. Afterwards the Stack is empty
// with capacity 0, and every Cursor obtained from it is invalid.
func (s *Stack[T]) Release() {
	if s.buf != nil {
		dlog.Printf("Release: %s", s.buf)
	}
	s.buf.release()
	s.buf = nil
	s.count = 0
}

// Size returns the capacity of the Stack, regardless of how many
// elements it currently holds.
func (s *Stack[T]) Size() int {
	return s.buf.capacity()
}

// Count returns the number of elements currently in the Stack.
func (s *Stack[T]) Count() int {
	return s.count
}

func (s *Stack[T]) Empty() bool { return s.count == 0 }
func (s *Stack[T]) Full() bool  { return s.count == s.Size() }

// Push places element on top of the Stack. If the Stack is full,
// ErrCapacityExceeded is returned and nothing changes.
func (s *Stack[T]) Push(element T) error {
	if s.Full() {
		return errors.Wrapf(ErrCapacityExceeded, "stack of capacity %d is full", s.Size())
	}
	s.count++
	s.buf.slots[s.count] = element
	return nil
}

// Pop removes the top element and returns it. If the Stack is empty,
// ErrUnderflow is returned and nothing changes.
func (s *Stack[T]) Pop() (T, error) {
	var zero T
	if s.count == 0 {
		return zero, errors.Wrap(ErrUnderflow, "stack is empty")
	}
	element := s.buf.slots[s.count]
	s.buf.slots[s.count] = zero
	s.count--
	return element, nil
}

// Flush empties the Stack. The storage is kept, so the capacity is
// unchanged and Cursors remain usable.
func (s *Stack[T]) Flush() {
	s.count = 0
}

// Begin returns a Cursor at the top element. On an empty Stack
// it is equal to End().
func (s *Stack[T]) Begin() Cursor[T] {
	return Cursor[T]{buf: s.buf, depth: s.count}
}

// End returns the Cursor past the bottom element. It cannot be
// dereferenced or decremented.
func (s *Stack[T]) End() Cursor[T] {
	return Cursor[T]{buf: s.buf, depth: 0}
}

// Values iterates over the elements from the top of the Stack to the bottom.
func (s *Stack[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		end := s.End()
		for itr := s.Begin(); !itr.Equal(end); {
			element, err := itr.Value()
			if err != nil {
				return
			}
			if !yield(element) {
				return
			}
			if err = itr.Decrement(); err != nil {
				return
			}
		}
	}
}

// Items returns a copy of the elements, top of the Stack first.
func (s *Stack[T]) Items() []T {
	items := make([]T, 0, s.count)
	for element := range s.Values() {
		items = append(items, element)
	}
	return items
}
