package linked

import (
	"fmt"
	"strings"

	"github.com/npillmayer/collect"
)

// List is a doubly linked list of values of type T. Create lists with New or
// NewWithEquality; the zero value cannot compare elements.
type List[T any] struct {
	head  *Node[T]
	tail  *Node[T]
	count int
	mod   uint64 // incremented on every structural modification
	eq    collect.Equality[T]
	cur   *Cursor[T] // built-in cursor, created on demand
}

var _ collect.List[int] = (*List[int])(nil)
var _ collect.Iterator[int] = (*List[int])(nil)

// New creates an empty list for comparable elements. Elements are compared
// with ==.
func New[T comparable]() *List[T] {
	return NewWithEquality(collect.Natural[T]())
}

// NewWithEquality creates an empty list which compares elements with eq.
func NewWithEquality[T any](eq collect.Equality[T]) *List[T] {
	if eq == nil {
		panic("linked list requires an equality function")
	}
	return &List[T]{eq: eq}
}

// From creates a list for comparable elements, holding values in order.
func From[T comparable](values ...T) *List[T] {
	l := New[T]()
	for _, v := range values {
		l.Add(v)
	}
	return l
}

// Size returns the number of elements in the list.
func (l *List[T]) Size() int {
	return l.count
}

// IsEmpty is a predicate: does the list have no elements?
func (l *List[T]) IsEmpty() bool {
	return l.count == 0
}

// Head returns the first node of the chain, or nil for an empty list.
func (l *List[T]) Head() *Node[T] {
	return l.head
}

// Tail returns the last node of the chain, or nil for an empty list.
func (l *List[T]) Tail() *Node[T] {
	return l.tail
}

// === Mutation ==============================================================

// Add appends v at the end of the list. Add always succeeds.
func (l *List[T]) Add(v T) bool {
	n := &Node[T]{value: v}
	if l.tail == nil {
		l.head = n
		l.tail = n
	} else {
		l.tail.next = n
		n.prev = l.tail
		l.tail = n
	}
	l.count++
	l.mod++
	return true
}

// Remove unlinks the first node holding a value equal to v.
// Returns false if no such node exists.
func (l *List[T]) Remove(v T) bool {
	for n := l.head; n != nil; n = n.next {
		if l.eq(n.value, v) {
			l.unlink(n)
			return true
		}
	}
	return false
}

// RemoveAt unlinks the node at position i and returns its value.
func (l *List[T]) RemoveAt(i int) (T, error) {
	n, err := l.nodeAt(i)
	if err != nil {
		var zero T
		return zero, err
	}
	l.unlink(n)
	return n.value, nil
}

// Set replaces the value at position i. This is not a structural modification,
// i.e. cursors stay valid.
func (l *List[T]) Set(i int, v T) error {
	n, err := l.nodeAt(i)
	if err != nil {
		return err
	}
	n.value = v
	return nil
}

// Clear drops all elements and resets the built-in cursor. Other cursors
// will report a concurrent modification. Clearing an empty list is a no-op.
func (l *List[T]) Clear() {
	if l.count > 0 {
		tracer().Debugf("clearing list of %d elements", l.count)
		l.mod++
	}
	l.head = nil
	l.tail = nil
	l.count = 0
	if l.cur != nil {
		l.cur.Reset()
	}
}

// unlink rewires the neighbours of n around it. n must be part of the chain.
// The links of n are cleared afterwards.
func (l *List[T]) unlink(n *Node[T]) {
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		l.head = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		l.tail = n.prev
	}
	n.prev, n.next = nil, nil
	l.count--
	l.mod++
}

// === Queries ===============================================================

// Get returns the value at position i.
func (l *List[T]) Get(i int) (T, error) {
	n, err := l.nodeAt(i)
	if err != nil {
		var zero T
		return zero, err
	}
	return n.value, nil
}

// IndexOf returns the position of the first value equal to v, or -1.
func (l *List[T]) IndexOf(v T) int {
	i := 0
	for n := l.head; n != nil; n = n.next {
		if l.eq(n.value, v) {
			return i
		}
		i++
	}
	return -1
}

// Contains is a predicate: is a value equal to v in the list?
func (l *List[T]) Contains(v T) bool {
	return l.IndexOf(v) != -1
}

// Front returns the first value of the list.
func (l *List[T]) Front() (T, error) {
	if l.head == nil {
		var zero T
		return zero, collect.ErrEmptyContainer
	}
	return l.head.value, nil
}

// Back returns the last value of the list.
func (l *List[T]) Back() (T, error) {
	if l.tail == nil {
		var zero T
		return zero, collect.ErrEmptyContainer
	}
	return l.tail.value, nil
}

// ToArray returns the values of the list in order, as a newly allocated slice.
func (l *List[T]) ToArray() []T {
	values := make([]T, 0, l.count)
	for n := l.head; n != nil; n = n.next {
		values = append(values, n.value)
	}
	return values
}

// Each calls f for every position and value, from head to tail, until f
// returns false. f must not modify the list. Each does not touch any cursor.
func (l *List[T]) Each(f func(int, T) bool) {
	i := 0
	for n := l.head; n != nil; n = n.next {
		if !f(i, n.value) {
			return
		}
		i++
	}
}

func (l *List[T]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for n := l.head; n != nil; n = n.next {
		if n != l.head {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%v", n.value)
	}
	b.WriteByte(']')
	return b.String()
}

// nodeAt locates the node at position i, walking from whichever end is
// closer.
func (l *List[T]) nodeAt(i int) (*Node[T], error) {
	if i < 0 || i >= l.count {
		return nil, fmt.Errorf("%w: index %d, size %d", collect.ErrIndexOutOfRange, i, l.count)
	}
	if i < l.count/2 {
		n := l.head
		for ; i > 0; i-- {
			n = n.next
		}
		return n, nil
	}
	n := l.tail
	for j := l.count - 1; j > i; j-- {
		n = n.prev
	}
	return n, nil
}
