/*
Package queue implements a FIFO queue on top of an array list.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package queue

import (
	"fmt"

	"github.com/npillmayer/collect"
	"github.com/npillmayer/collect/arraylist"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'collect.queue'.
func tracer() tracing.Trace {
	return tracing.Select("collect.queue")
}

// Queue is a first-in first-out container. Elements are enqueued at the back
// and dequeued from the front. Iteration runs from front to back.
// Create queues with New or NewWithEquality; the zero value is not usable.
type Queue[T any] struct {
	elements *arraylist.ArrayList[T]
}

var _ collect.Queue[int] = (*Queue[int])(nil)
var _ collect.Iterator[int] = (*Queue[int])(nil)

// New creates an empty queue for comparable elements.
func New[T comparable]() *Queue[T] {
	return &Queue[T]{elements: arraylist.New[T]()}
}

// NewWithEquality creates an empty queue which compares elements with eq.
func NewWithEquality[T any](eq collect.Equality[T]) *Queue[T] {
	return &Queue[T]{elements: arraylist.NewWithEquality(eq)}
}

// Enqueue puts v at the back of the queue.
func (q *Queue[T]) Enqueue(v T) {
	q.elements.Add(v)
}

// Dequeue removes and returns the front element.
func (q *Queue[T]) Dequeue() (T, error) {
	if q.elements.IsEmpty() {
		var zero T
		tracer().Debugf("dequeue from empty queue")
		return zero, fmt.Errorf("%w: dequeue", collect.ErrEmptyContainer)
	}
	return q.elements.RemoveAt(0)
}

// Peek returns the front element without removing it.
func (q *Queue[T]) Peek() (T, error) {
	if q.elements.IsEmpty() {
		var zero T
		return zero, fmt.Errorf("%w: peek", collect.ErrEmptyContainer)
	}
	return q.elements.Get(0)
}

// Add is an alias for Enqueue. It always returns true.
func (q *Queue[T]) Add(v T) bool {
	q.Enqueue(v)
	return true
}

// Remove deletes the first element equal to v, wherever it is in the queue.
func (q *Queue[T]) Remove(v T) bool {
	return q.elements.Remove(v)
}

// Contains is a predicate: is an element equal to v queued?
func (q *Queue[T]) Contains(v T) bool {
	return q.elements.Contains(v)
}

// Size returns the number of queued elements.
func (q *Queue[T]) Size() int {
	return q.elements.Size()
}

// IsEmpty is a predicate: is the queue empty?
func (q *Queue[T]) IsEmpty() bool {
	return q.elements.IsEmpty()
}

// Clear drops all elements.
func (q *Queue[T]) Clear() {
	q.elements.Clear()
}

// ToArray returns the elements from front to back.
func (q *Queue[T]) ToArray() []T {
	return q.elements.ToArray()
}

func (q *Queue[T]) String() string {
	return q.elements.String()
}

// HasNext is a predicate for the built-in cursor.
func (q *Queue[T]) HasNext() bool {
	return q.elements.HasNext()
}

// Next returns the next element of the built-in cursor, front to back.
func (q *Queue[T]) Next() (T, error) {
	return q.elements.Next()
}

// Reset moves the built-in cursor before the front element.
func (q *Queue[T]) Reset() {
	q.elements.Reset()
}
