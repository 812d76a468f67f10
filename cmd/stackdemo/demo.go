// Copyright 2022 by Gilbert Ramirez <gram@alumni.rice.edu>

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/gilramir/genericstack"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// A character element; renders as the character rather than its code point.
type char rune

func (c char) String() string { return string(c) }

var (
	sectionHeader = color.New(color.FgCyan, color.Bold).SprintFunc()
	stepHeader    = color.New(color.FgYellow).SprintFunc()
)

const indent = "         "

type demoT struct {
	out    io.Writer
	logger *zap.Logger
}

func newDemo(out io.Writer, logger *zap.Logger) *demoT {
	return &demoT{out: out, logger: logger}
}

func (s *demoT) section(title string) {
	fmt.Fprintln(s.out, sectionHeader("******** "+title+" ********"))
}

func (s *demoT) step(format string, args ...any) {
	fmt.Fprintln(s.out, stepHeader("-------- "+fmt.Sprintf(format, args...)))
}

// Prints v indented. Stacks render with their own trailing newline.
func (s *demoT) show(v any) {
	text := fmt.Sprint(v)
	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	fmt.Fprint(s.out, indent+text)
}

// Reports an expected failure. If err is not the failure that was
// expected, it is returned so the section stops.
func (s *demoT) expectFailure(err error, target error, what string) error {
	if err == nil {
		return fmt.Errorf("%s: expected %v, got no error", what, target)
	}
	if !errors.Is(err, target) {
		return errors.Wrap(err, what)
	}
	s.logger.Info("expected failure", zap.String("operation", what), zap.Error(err))
	s.step("%s fails with: %v", what, err)
	return nil
}

func toInt(f float64) int { return int(f) }

func (s *demoT) fundamentals() error {
	s.section("fundamental operations")

	gs, err := genericstack.New[int](5)
	if err != nil {
		return err
	}
	if gs.Size() != 5 || gs.Count() != 0 {
		return fmt.Errorf("new stack has size %d count %d", gs.Size(), gs.Count())
	}

	// 17.8 is truncated on the way in
	for _, v := range []int{1, 2, 3, toInt(17.8), 1} {
		if err = gs.Push(v); err != nil {
			return err
		}
	}
	s.step("stack contents after pushing")
	s.show(gs)

	if err = s.expectFailure(gs.Push(22), genericstack.ErrCapacityExceeded,
		"push beyond capacity"); err != nil {
		return err
	}

	gsCopy, err := gs.Clone()
	if err != nil {
		return err
	}
	s.step("copy of the stack (size %d, count %d)", gsCopy.Size(), gsCopy.Count())
	s.show(gsCopy)

	gsEqual, err := genericstack.New[int](8)
	if err != nil {
		return err
	}
	if err = gsEqual.Assign(gs); err != nil {
		return err
	}
	s.step("stack of capacity 8 after assignment (size %d, count %d)", gsEqual.Size(), gsEqual.Count())
	s.show(gsEqual)

	i1, i2, i3 := gs.Begin(), gsCopy.Begin(), gsEqual.Begin()
	if i1.Equal(i2) || i1.Equal(i3) || i2.Equal(i3) {
		return fmt.Errorf("copies share storage")
	}
	s.step("the copies do not share storage")

	s.step("emptying the stack")
	last, err := gs.Pop()
	if err != nil {
		return err
	}
	for gs.Count() > 0 {
		if _, err = gs.Pop(); err != nil {
			return err
		}
	}
	s.step("first element popped: %d", last)
	_, err = gs.Pop()
	if err = s.expectFailure(err, genericstack.ErrUnderflow, "pop on an empty stack"); err != nil {
		return err
	}
	s.step("stack contents")
	s.show(gs)

	fresh, err := genericstack.New[int](8)
	if err != nil {
		return err
	}
	s.step("new empty stack of capacity %d", fresh.Size())
	s.show(fresh)
	fresh.Release()
	s.step("released, size now %d", fresh.Size())
	return nil
}

func (s *demoT) specifics() error {
	s.section("stack specific operations")

	gs, err := genericstack.New[char](10)
	if err != nil {
		return err
	}
	for _, c := range "TSET" {
		if err = gs.Push(char(c)); err != nil {
			return err
		}
	}
	s.step("size of the stack")
	s.show(gs.Size())
	s.step("stack contents after pushing")
	s.show(gs)
	s.step("elements in the stack")
	s.show(gs.Count())

	s.step("stack built from a pair of cursors")
	fromItr, err := genericstack.FromRange(gs.Begin(), gs.End())
	if err != nil {
		return err
	}
	if fromItr.Count() != gs.Count() {
		return fmt.Errorf("range copy has %d elements, want %d", fromItr.Count(), gs.Count())
	}
	s.show(fromItr)

	fromItr.Flush()
	s.step("contents after flush")
	s.show(fromItr)
	s.step("size after flush")
	s.show(fromItr.Size())
	s.step("elements after flush")
	s.show(fromItr.Count())

	gs2, err := genericstack.New[char](6)
	if err != nil {
		return err
	}
	for _, c := range "!OLLEH" {
		if err = gs2.Push(char(c)); err != nil {
			return err
		}
	}
	s.step("refactor from a pair of cursors given end first")
	if err = fromItr.Refactor(gs2.End(), gs2.Begin()); err != nil {
		return err
	}
	s.show(fromItr)
	s.step("size after refactor")
	s.show(fromItr.Size())
	s.step("elements after refactor")
	s.show(fromItr.Count())

	last, err := fromItr.Pop()
	if err != nil {
		return err
	}
	s.step("contents after popping")
	s.show(fromItr)
	s.step("popped element")
	s.show(last)

	if err = fromItr.Push('X'); err != nil {
		return err
	}
	s.step("contents after pushing a new element")
	s.show(fromItr)

	multipleOf5 := func(a int) bool { return a%5 == 0 }
	equalsW := func(c char) bool { return c == 'W' }
	ints, err := genericstack.New[int](3)
	if err != nil {
		return err
	}
	if !ints.CheckIf(15, multipleOf5) {
		return fmt.Errorf("15 is not a multiple of 5")
	}
	if !fromItr.CheckIf('W', equalsW) {
		return fmt.Errorf("'W' does not match 'W'")
	}
	s.step("15 is a multiple of 5, and 'W' matches 'W'")
	return nil
}

func (s *demoT) iterators() error {
	s.section("cursor operations")

	gs, err := genericstack.New[float64](7)
	if err != nil {
		return err
	}
	for _, v := range []float64{3.14, 12.33, 5.689, 28, 'o', 57.32113, 85.0098} {
		if err = gs.Push(v); err != nil {
			return err
		}
	}
	s.step("stack contents")
	s.show(gs)

	begin, end := gs.Begin(), gs.End()
	top, err := begin.Value()
	if err != nil {
		return err
	}
	s.step("value at the begin cursor")
	s.show(top)

	_, err = end.Value()
	if err = s.expectFailure(err, genericstack.ErrOutOfRange, "dereferencing the end cursor"); err != nil {
		return err
	}

	copied := begin
	if !copied.Equal(begin) {
		return fmt.Errorf("copied cursor differs")
	}
	s.step("number of elements, from the difference of cursors")
	s.show(begin.Sub(end))

	if begin.Less(end) && end.Greater(begin) {
		s.step("the begin cursor comes before the end cursor")
	}

	err = end.Decrement()
	if err = s.expectFailure(err, genericstack.ErrOutOfRange, "decrementing the end cursor"); err != nil {
		return err
	}
	_, err = end.Value()
	return s.expectFailure(err, genericstack.ErrUnderflow, "dereferencing the end cursor again")
}
