// Copyright 2022 by Gilbert Ramirez <gram@alumni.rice.edu>

package genericstack

import (
	. "gopkg.in/check.v1"
)

func multipleOf5(a int) bool { return a%5 == 0 }

func equalsRune(target rune) Predicate[rune] {
	return func(r rune) bool { return r == target }
}

func (s *MySuite) TestCheckIf(c *C) {
	ints := mustStack(c, 3, 1, 2)
	c.Check(ints.CheckIf(15, multipleOf5), Equals, true)
	c.Check(ints.CheckIf(16, multipleOf5), Equals, false)

	runes := mustStack(c, 2, 'W')
	c.Check(runes.CheckIf('W', equalsRune('W')), Equals, true)
	c.Check(runes.CheckIf('X', equalsRune('W')), Equals, false)
	c.Check(runes.CheckIf('X', equalsRune('W').Not()), Equals, true)

	// The Stack itself is not involved
	c.Check(ints.Items(), DeepEquals, []int{2, 1})
	c.Check(runes.Count(), Equals, 1)

	var empty Stack[int]
	c.Check(empty.CheckIf(10, multipleOf5), Equals, true)
}

func (s *MySuite) TestCheckIfNil(c *C) {
	var st Stack[int]
	c.Check(func() { st.CheckIf(1, nil) }, PanicMatches, ".*pred is nil")
}
