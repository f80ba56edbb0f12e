/*
Package stack implements a LIFO stack on top of an array list.

ToArray and iteration run from the bottom of the stack to the top, i.e. in
the order elements have been pushed.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package stack

import (
	"fmt"

	"github.com/npillmayer/collect"
	"github.com/npillmayer/collect/arraylist"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'collect.stack'.
func tracer() tracing.Trace {
	return tracing.Select("collect.stack")
}

// Stack is a last-in first-out container. Create stacks with New or
// NewWithEquality; the zero value is not usable.
type Stack[T any] struct {
	elements *arraylist.ArrayList[T] // bottom at index 0
}

var _ collect.Stack[int] = (*Stack[int])(nil)
var _ collect.Iterator[int] = (*Stack[int])(nil)

// New creates an empty stack for comparable elements.
func New[T comparable]() *Stack[T] {
	return &Stack[T]{elements: arraylist.New[T]()}
}

// NewWithEquality creates an empty stack which compares elements with eq.
func NewWithEquality[T any](eq collect.Equality[T]) *Stack[T] {
	return &Stack[T]{elements: arraylist.NewWithEquality(eq)}
}

// Push puts v on top of the stack.
func (s *Stack[T]) Push(v T) {
	s.elements.Add(v)
}

// Pop removes and returns the top element.
func (s *Stack[T]) Pop() (T, error) {
	if s.elements.IsEmpty() {
		var zero T
		tracer().Debugf("pop from empty stack")
		return zero, fmt.Errorf("%w: pop", collect.ErrEmptyContainer)
	}
	return s.elements.RemoveAt(s.elements.Size() - 1)
}

// Peek returns the top element without removing it.
func (s *Stack[T]) Peek() (T, error) {
	if s.elements.IsEmpty() {
		var zero T
		return zero, fmt.Errorf("%w: peek", collect.ErrEmptyContainer)
	}
	return s.elements.Get(s.elements.Size() - 1)
}

// Add is an alias for Push.
func (s *Stack[T]) Add(v T) bool {
	s.Push(v)
	return true
}

// Remove deletes the element nearest to the bottom which equals v.
func (s *Stack[T]) Remove(v T) bool {
	return s.elements.Remove(v)
}

// Contains is a predicate: is an element equal to v on the stack?
func (s *Stack[T]) Contains(v T) bool {
	return s.elements.Contains(v)
}

// Size returns the number of elements.
func (s *Stack[T]) Size() int {
	return s.elements.Size()
}

// IsEmpty is a predicate: does the stack have no elements?
func (s *Stack[T]) IsEmpty() bool {
	return s.elements.IsEmpty()
}

// Clear drops all elements and resets the built-in cursor.
func (s *Stack[T]) Clear() {
	s.elements.Clear()
}

// ToArray returns the elements, bottom first.
func (s *Stack[T]) ToArray() []T {
	return s.elements.ToArray()
}

func (s *Stack[T]) String() string {
	return s.elements.String()
}

// --- Built-in cursor -------------------------------------------------------

// HasNext is a predicate: will Next produce an element?
func (s *Stack[T]) HasNext() bool {
	return s.elements.HasNext()
}

// Next returns the next element, moving from bottom to top.
func (s *Stack[T]) Next() (T, error) {
	return s.elements.Next()
}

// Reset moves the built-in cursor before the bottom element.
func (s *Stack[T]) Reset() {
	s.elements.Reset()
}
