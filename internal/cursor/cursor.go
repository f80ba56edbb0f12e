/*
Package cursor implements positional cursors for containers which are backed
by a slice or by an ordered sequence of keys.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package cursor

import (
	"fmt"

	"github.com/npillmayer/collect"
)

// Sequence is what a positional cursor needs to know about its container.
type Sequence interface {
	Size() int
	ModCount() uint64
}

// Index is a positional cursor. Its zero value is not usable; create it
// with At.
//
// pos is the position of the element Next will produce. A cursor is started
// once it has produced an element; from then on it insists on the modification
// count it saw last.
type Index struct {
	seq     Sequence
	pos     int
	mod     uint64
	started bool
}

// At creates a cursor for seq, positioned before the first element.
func At(seq Sequence) *Index {
	return &Index{seq: seq, mod: seq.ModCount()}
}

// Reset moves the cursor before the first element.
func (c *Index) Reset() {
	c.pos = 0
	c.started = false
	c.mod = c.seq.ModCount()
}

// HasNext is a predicate: will Advance produce a position? Invalidated cursors
// return true, as Advance will report the invalidation.
func (c *Index) HasNext() bool {
	if c.started && c.stale() {
		return true
	}
	return c.pos < c.seq.Size()
}

// Advance returns the position of the next element and moves the cursor past
// it.
func (c *Index) Advance() (int, error) {
	if c.started && c.stale() {
		return -1, fmt.Errorf("%w: container of size %d", collect.ErrConcurrentModification,
			c.seq.Size())
	}
	if c.pos >= c.seq.Size() {
		return -1, collect.ErrIteratorExhausted
	}
	i := c.pos
	c.pos++
	c.started = true
	c.mod = c.seq.ModCount()
	return i, nil
}

// Invalidated is a predicate: has the container been modified after the
// cursor started?
func (c *Index) Invalidated() bool {
	return c.started && c.stale()
}

// State returns the traversal state of the cursor.
func (c *Index) State() collect.CursorState {
	if !c.started {
		return collect.NotStarted
	}
	if c.pos >= c.seq.Size() && !c.stale() {
		return collect.Exhausted
	}
	return collect.InProgress
}

func (c *Index) stale() bool {
	return c.mod != c.seq.ModCount()
}
