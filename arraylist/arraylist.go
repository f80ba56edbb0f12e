package arraylist

import (
	"fmt"

	"golang.org/x/exp/slices"

	"github.com/npillmayer/collect"
	"github.com/npillmayer/collect/internal/cursor"
)

// ArrayList is a list of values of type T, stored in a slice. Create lists with
// New or NewWithEquality; the zero value cannot compare elements.
type ArrayList[T any] struct {
	elements []T
	mod      uint64
	eq       collect.Equality[T]
	cur      *cursor.Index
}

var _ collect.List[int] = (*ArrayList[int])(nil)
var _ collect.Iterator[int] = (*ArrayList[int])(nil)

// Option configures a new list.
type Option func(*config)

type config struct {
	capacity int
}

// WithCapacity pre-allocates room for n elements.
func WithCapacity(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.capacity = n
		}
	}
}

// New creates an empty list for comparable elements, compared with ==.
func New[T comparable](opts ...Option) *ArrayList[T] {
	return NewWithEquality(collect.Natural[T](), opts...)
}

// NewWithEquality creates an empty list which compares elements with eq.
func NewWithEquality[T any](eq collect.Equality[T], opts ...Option) *ArrayList[T] {
	if eq == nil {
		panic("array list requires an equality function")
	}
	var c config
	for _, opt := range opts {
		opt(&c)
	}
	l := &ArrayList[T]{
		elements: make([]T, 0, c.capacity),
		eq:       eq,
	}
	l.cur = cursor.At(l)
	return l
}

// From creates a list for comparable elements, holding values in order.
func From[T comparable](values ...T) *ArrayList[T] {
	l := New[T](WithCapacity(len(values)))
	l.elements = append(l.elements, values...)
	return l
}

// Size returns the number of elements.
func (l *ArrayList[T]) Size() int {
	return len(l.elements)
}

// IsEmpty is a predicate: does the list have no elements?
func (l *ArrayList[T]) IsEmpty() bool {
	return len(l.elements) == 0
}

// ModCount returns the number of structural modifications so far.
func (l *ArrayList[T]) ModCount() uint64 {
	return l.mod
}

// Add appends v. Add always succeeds.
func (l *ArrayList[T]) Add(v T) bool {
	l.elements = append(l.elements, v)
	l.mod++
	return true
}

// Insert puts v at position i, shifting successors. i may equal Size().
func (l *ArrayList[T]) Insert(i int, v T) error {
	if i < 0 || i > len(l.elements) {
		return l.outOfRange(i)
	}
	l.elements = slices.Insert(l.elements, i, v)
	l.mod++
	return nil
}

// Remove deletes the first element equal to v.
func (l *ArrayList[T]) Remove(v T) bool {
	i := l.IndexOf(v)
	if i < 0 {
		return false
	}
	l.delete(i)
	return true
}

// RemoveAt deletes the element at position i and returns it.
func (l *ArrayList[T]) RemoveAt(i int) (T, error) {
	if i < 0 || i >= len(l.elements) {
		var zero T
		return zero, l.outOfRange(i)
	}
	v := l.elements[i]
	l.delete(i)
	return v, nil
}

// Get returns the element at position i.
func (l *ArrayList[T]) Get(i int) (T, error) {
	if i < 0 || i >= len(l.elements) {
		var zero T
		return zero, l.outOfRange(i)
	}
	return l.elements[i], nil
}

// Set replaces the element at position i. This is not a structural
// modification.
func (l *ArrayList[T]) Set(i int, v T) error {
	if i < 0 || i >= len(l.elements) {
		return l.outOfRange(i)
	}
	l.elements[i] = v
	return nil
}

// IndexOf returns the position of the first element equal to v, or -1.
func (l *ArrayList[T]) IndexOf(v T) int {
	return slices.IndexFunc(l.elements, func(e T) bool {
		return l.eq(e, v)
	})
}

// Contains is a predicate: is an element equal to v in the list?
func (l *ArrayList[T]) Contains(v T) bool {
	return l.IndexOf(v) >= 0
}

// Clear drops all elements and resets the built-in cursor.
func (l *ArrayList[T]) Clear() {
	if len(l.elements) > 0 {
		tracer().Debugf("clearing array list of %d elements", len(l.elements))
		l.mod++
	}
	var zero T
	for i := range l.elements {
		l.elements[i] = zero // do not retain references
	}
	l.elements = l.elements[:0]
	l.cur.Reset()
}

// ToArray returns a copy of the elements.
func (l *ArrayList[T]) ToArray() []T {
	if l.elements == nil {
		return []T{}
	}
	return slices.Clone(l.elements)
}

func (l *ArrayList[T]) String() string {
	return fmt.Sprintf("%v", l.elements)
}

func (l *ArrayList[T]) delete(i int) {
	var zero T
	n := len(l.elements)
	l.elements = slices.Delete(l.elements, i, i+1)
	l.elements[:n][n-1] = zero // clear the vacated slot
	l.mod++
}

func (l *ArrayList[T]) outOfRange(i int) error {
	return fmt.Errorf("%w: index %d, size %d", collect.ErrIndexOutOfRange, i, len(l.elements))
}

// --- Built-in cursor -------------------------------------------------------

// HasNext is a predicate: will Next produce an element?
func (l *ArrayList[T]) HasNext() bool {
	return l.cur.HasNext()
}

// Next returns the next element of the built-in cursor.
func (l *ArrayList[T]) Next() (T, error) {
	i, err := l.cur.Advance()
	if err != nil {
		var zero T
		if l.cur.Invalidated() {
			tracer().Debugf("cursor invalidated by array list modification")
		}
		return zero, err
	}
	return l.elements[i], nil
}

// Reset moves the built-in cursor before the first element.
func (l *ArrayList[T]) Reset() {
	l.cur.Reset()
}

// State reports the state of the built-in cursor.
func (l *ArrayList[T]) State() collect.CursorState {
	return l.cur.State()
}
