package linked

import (
	"fmt"

	"github.com/npillmayer/collect"
)

// Cursor is an external iterator over a list. A cursor starts before the first
// node; every call to Next advances it by one node.
//
// Cursors remember the modification count of the list as of the last Reset or
// Next. After a structural modification of the list, a cursor which has
// already visited a node refuses to continue and reports
// collect.ErrConcurrentModification until it is reset.
type Cursor[T any] struct {
	list *List[T]
	node *Node[T] // last visited node, nil if not started
	mod  uint64
}

var _ collect.Iterator[int] = (*Cursor[int])(nil)

// Iterator returns a new cursor, positioned before the first element.
// Cursors are independent of each other and of the list's built-in cursor.
func (l *List[T]) Iterator() *Cursor[T] {
	return &Cursor[T]{list: l, mod: l.mod}
}

// Reset moves the cursor before the first element.
func (c *Cursor[T]) Reset() {
	c.node = nil
	c.mod = c.list.mod
}

// HasNext is a predicate: will Next produce a value?
// For a cursor invalidated by a modification of the list, HasNext returns true,
// as Next will report the invalidation.
func (c *Cursor[T]) HasNext() bool {
	if c.node == nil {
		return c.list.head != nil
	}
	if c.stale() {
		return true
	}
	return c.node.next != nil
}

// Next advances the cursor and returns the value of the node it moved to.
func (c *Cursor[T]) Next() (T, error) {
	var zero T
	if c.node != nil && c.stale() {
		tracer().Debugf("cursor invalidated by list modification")
		return zero, fmt.Errorf("%w: list of size %d", collect.ErrConcurrentModification,
			c.list.count)
	}
	var n *Node[T]
	if c.node == nil {
		n = c.list.head
	} else {
		n = c.node.next
	}
	if n == nil {
		return zero, collect.ErrIteratorExhausted
	}
	c.node = n
	c.mod = c.list.mod
	return n.value, nil
}

// State returns the traversal state of the cursor.
func (c *Cursor[T]) State() collect.CursorState {
	if c.node == nil {
		return collect.NotStarted
	}
	if c.node.next == nil && !c.stale() {
		return collect.Exhausted
	}
	return collect.InProgress
}

func (c *Cursor[T]) stale() bool {
	return c.mod != c.list.mod
}

// --- Built-in cursor -------------------------------------------------------

func (l *List[T]) builtin() *Cursor[T] {
	if l.cur == nil {
		l.cur = l.Iterator()
	}
	return l.cur
}

// HasNext operates the list's built-in cursor, see Cursor.HasNext.
func (l *List[T]) HasNext() bool {
	return l.builtin().HasNext()
}

// Next operates the list's built-in cursor, see Cursor.Next.
func (l *List[T]) Next() (T, error) {
	return l.builtin().Next()
}

// Reset operates the list's built-in cursor, see Cursor.Reset.
func (l *List[T]) Reset() {
	l.builtin().Reset()
}

// State reports the state of the list's built-in cursor.
func (l *List[T]) State() collect.CursorState {
	return l.builtin().State()
}
