// Copyright 2022 by Gilbert Ramirez <gram@alumni.rice.edu>

package genericstack

import (
	"github.com/pkg/errors"
)

// Returns the two ends of a range as (first, last): first is the one
// nearer the top of the Stack, where the traversal begins, and last is
// where it stops. The caller may give them in either order.
func orderRange[T any](start, stop Cursor[T]) (Cursor[T], Cursor[T], error) {
	if start.buf != stop.buf {
		return start, stop, errors.WithStack(ErrMismatchedRange)
	}
	if err := start.checkValid(); err != nil {
		return start, stop, err
	}
	if stop.Greater(start) {
		return start, stop, nil
	}
	return stop, start, nil
}

// Builds a new Stack holding the elements between start and stop, in the
// order they have in the source. The new Stack has room for at least
// minCapacity elements, and never less than the length of the range.
//
// Walking a range from its top visits the elements in pop order, so
// pushing them straight into the destination would reverse them. They
// are pushed into a scratch Stack first, and then the scratch Stack is
// walked, from its own top, into the destination; the second reversal
// restores the original order.
func buildRange[S, T any](start, stop Cursor[S], minCapacity int, conv func(S) T) (*Stack[T], error) {
	first, last, err := orderRange(start, stop)
	if err != nil {
		return nil, err
	}
	n := Difference(first, last)
	dlog.Printf("buildRange: %s .. %s: %d elements", first, last, n)

	var scratch Stack[T]
	if err = scratch.Initialize(n); err != nil {
		return nil, errors.Wrap(err, "allocating scratch stack")
	}
	defer scratch.Release()

	for itr := first; !itr.Equal(last); {
		element, err := itr.Value()
		if err != nil {
			return nil, err
		}
		if err = scratch.Push(conv(element)); err != nil {
			return nil, err
		}
		if err = itr.Decrement(); err != nil {
			return nil, err
		}
	}

	dst := &Stack[T]{}
	if err = dst.Initialize(max(n, minCapacity)); err != nil {
		return nil, err
	}
	end := scratch.End()
	for itr := scratch.Begin(); !itr.Equal(end); {
		element, err := itr.Value()
		if err != nil {
			return nil, err
		}
		if err = dst.Push(element); err != nil {
			return nil, err
		}
		if err = itr.Decrement(); err != nil {
			return nil, err
		}
	}
	return dst, nil
}

func identity[T any](element T) T { return element }

// FromRange builds a new Stack from the elements between two Cursors of
// the same Stack. Its capacity is the number of elements in the range,
// and the elements keep their order: the one nearest the bottom of the
// source is at the bottom of the new Stack. The Cursors may be given in
// either order, so FromRange(b, e) and FromRange(e, b) are the same.
func FromRange[T any](start, stop Cursor[T]) (*Stack[T], error) {
	return buildRange(start, stop, 0, identity[T])
}

// FromRangeConvert is like FromRange, but converts each element of the
// source range with conv.
func FromRangeConvert[S, T any](start, stop Cursor[S], conv func(S) T) (*Stack[T], error) {
	if conv == nil {
		panic("genericstack.FromRangeConvert: conv is nil")
	}
	return buildRange(start, stop, 0, conv)
}

// Clone returns an independent copy of the Stack, with the same capacity
// and the same elements in the same order.
func (s *Stack[T]) Clone() (*Stack[T], error) {
	return buildRange(s.Begin(), s.End(), s.Size(), identity[T])
}

// Assign makes s a copy of other. The copy is built before s is touched,
// so on failure s keeps its previous contents. Cursors into s become
// invalid on success.
func (s *Stack[T]) Assign(other *Stack[T]) error {
	if other == nil {
		panic("genericstack.Stack.Assign: other is nil")
	}
	if s == other {
		return nil
	}
	tmp, err := other.Clone()
	if err != nil {
		return errors.Wrap(err, "assign")
	}
	dlog.Printf("Assign: %s replaced by %s", s.buf, tmp.buf)
	s.swapIn(tmp)
	return nil
}

// Refactor replaces the contents of s with a Stack built by
// FromRange(start, stop). The Cursors may come from s itself. On failure
// s keeps its previous contents; on success its old Cursors are invalid.
func (s *Stack[T]) Refactor(start, stop Cursor[T]) error {
	return RefactorConvert(s, start, stop, identity[T])
}

// RefactorConvert is like Stack.Refactor, but the range may come from a
// Stack of another element type; each element is converted with conv.
func RefactorConvert[S, T any](dst *Stack[T], start, stop Cursor[S], conv func(S) T) error {
	if conv == nil {
		panic("genericstack.RefactorConvert: conv is nil")
	}
	tmp, err := buildRange(start, stop, 0, conv)
	if err != nil {
		return errors.Wrap(err, "refactor")
	}
	dlog.Printf("Refactor: %s replaced by %s", dst.buf, tmp.buf)
	dst.swapIn(tmp)
	return nil
}
