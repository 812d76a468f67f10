package genericstack

import (
	"bytes"
	"fmt"

	. "gopkg.in/check.v1"
)

type point struct{ x, y int }

func (p point) String() string { return fmt.Sprintf("(%d,%d)", p.x, p.y) }

func (s *MySuite) TestRender(c *C) {
	st := mustStack(c, 5, 1, 2, 3, 17, 1)
	c.Check(st.String(), Equals, "1 17 3 2 1\n")

	var buf bytes.Buffer
	c.Assert(st.Render(&buf), IsNil)
	c.Check(buf.String(), Equals, "1 17 3 2 1\n")

	c.Check(fmt.Sprint(st), Equals, "1 17 3 2 1\n")
}

func (s *MySuite) TestRenderEmpty(c *C) {
	var st Stack[int]
	c.Check(st.String(), Equals, "\n")

	full := mustStack(c, 2, 1, 2)
	full.Flush()
	c.Check(full.String(), Equals, "\n")
}

func (s *MySuite) TestRenderStringer(c *C) {
	st := mustStack(c, 2, point{1, 2}, point{3, 4})
	c.Check(st.String(), Equals, "(3,4) (1,2)\n")

	// Empty strings still get their separator
	words := mustStack(c, 3, "a", "", "b")
	c.Check(words.String(), Equals, "b  a\n")
}
