// Copyright 2022 by Gilbert Ramirez <gram@alumni.rice.edu>

package genericstack

// A Predicate tests a single element.
type Predicate[T any] func(T) bool

// Not returns a Predicate that is true when p is false.
func (p Predicate[T]) Not() Predicate[T] {
	return func(element T) bool { return !p(element) }
}

// CheckIf returns pred(element). The Stack is not consulted or changed;
// it only fixes the element type.
func (s *Stack[T]) CheckIf(element T, pred func(T) bool) bool {
	if pred == nil {
		panic("genericstack.Stack.CheckIf: pred is nil")
	}
	return pred(element)
}
