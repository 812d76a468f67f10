// Copyright 2022 by Gilbert Ramirez <gram@alumni.rice.edu>

package genericstack

import (
	"github.com/pkg/errors"
	. "gopkg.in/check.v1"
)

func (s *MySuite) TestCursorWalk(c *C) {
	st := mustStack(c, 7, 3.14, 12.33, 5.689, 28, 111, 57.32113, 85.0098)
	itr := st.Begin()
	c.Check(itr.Depth(), Equals, 7)

	v, err := itr.Value()
	c.Assert(err, IsNil)
	c.Check(v, Equals, 85.0098)

	var got []float64
	for end := st.End(); !itr.Equal(end); {
		v, err := itr.Value()
		c.Assert(err, IsNil)
		got = append(got, v)
		c.Assert(itr.Decrement(), IsNil)
	}
	c.Check(got, DeepEquals, []float64{85.0098, 57.32113, 111, 28, 5.689, 12.33, 3.14})
	c.Check(itr.IsEnd(), Equals, true)
}

func (s *MySuite) TestCursorEnd(c *C) {
	st := mustStack(c, 3, 1, 2)
	end := st.End()

	_, err := end.Value()
	c.Assert(err, NotNil)
	c.Check(errors.Is(err, ErrOutOfRange), Equals, true)
	c.Check(errors.Is(err, ErrUnderflow), Equals, true)
	c.Check(err, ErrorMatches, "dereference: cursor out of range")

	err = end.Decrement()
	c.Assert(err, NotNil)
	c.Check(errors.Is(err, ErrOutOfRange), Equals, true)
	c.Check(end.Depth(), Equals, 0)

	prior, err := end.PostDecrement()
	c.Check(errors.Is(err, ErrOutOfRange), Equals, true)
	c.Check(prior.Equal(end), Equals, true)

	// The zero Cursor is an end Cursor too
	var zero Cursor[int]
	_, err = zero.Value()
	c.Check(errors.Is(err, ErrOutOfRange), Equals, true)

	// As is Begin() of an empty Stack
	st.Flush()
	_, err = st.Begin().Value()
	c.Check(errors.Is(err, ErrOutOfRange), Equals, true)
}

func (s *MySuite) TestCursorPostDecrement(c *C) {
	st := mustStack(c, 3, "a", "b", "c")
	itr := st.Begin()
	prior, err := itr.PostDecrement()
	c.Assert(err, IsNil)

	v, err := prior.Value()
	c.Assert(err, IsNil)
	c.Check(v, Equals, "c")

	v, err = itr.Value()
	c.Assert(err, IsNil)
	c.Check(v, Equals, "b")
	c.Check(prior.Depth()-itr.Depth(), Equals, 1)
}

func (s *MySuite) TestCursorEquality(c *C) {
	a := mustStack(c, 3, 1, 2, 3)
	b := mustStack(c, 3, 1, 2, 3)

	i1 := a.Begin()
	i2 := i1
	c.Check(i1.Equal(i2), Equals, true)
	c.Check(i1.Equal(a.Begin()), Equals, true)

	// Same depth, different Stacks
	c.Check(i1.Equal(b.Begin()), Equals, false)

	c.Assert(i2.Decrement(), IsNil)
	c.Check(i1.Equal(i2), Equals, false)
}

func (s *MySuite) TestCursorOrdering(c *C) {
	st := mustStack(c, 4, 1, 2, 3, 4)
	begin := st.Begin()
	end := st.End()

	c.Check(begin.Less(end), Equals, true)
	c.Check(end.Greater(begin), Equals, true)
	c.Check(begin.Greater(end), Equals, false)
	c.Check(end.Less(begin), Equals, false)
	c.Check(begin.Less(begin), Equals, false)
}

func (s *MySuite) TestCursorDifference(c *C) {
	st := mustStack(c, 7, 1, 2, 3, 4, 5, 6, 7)
	begin := st.Begin()
	end := st.End()
	c.Check(begin.Sub(end), Equals, 7)
	c.Check(end.Sub(begin), Equals, 7)
	c.Check(Difference(begin, end), Equals, 7)
	c.Check(Difference(end, begin), Equals, 7)

	mid := begin
	c.Assert(mid.Decrement(), IsNil)
	c.Assert(mid.Decrement(), IsNil)
	c.Check(Difference(begin, mid), Equals, 2)
	c.Check(Difference(mid, end), Equals, 5)
	c.Check(Difference(mid, mid), Equals, 0)
}

// Push, Pop and Flush keep the storage, so a Cursor stays usable,
// though it may see different values.
func (s *MySuite) TestCursorSurvivesMutation(c *C) {
	st := mustStack(c, 3, 1, 2)
	top := st.Begin()

	_, err := st.Pop()
	c.Assert(err, IsNil)
	c.Assert(st.Push(5), IsNil)

	v, err := top.Value()
	c.Assert(err, IsNil)
	c.Check(v, Equals, 5)

	st.Flush()
	c.Check(top.Decrement(), IsNil)
}
