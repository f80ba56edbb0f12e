package hashmap

import (
	"fmt"
	"strings"

	"github.com/emirpasic/gods/maps/linkedhashmap"

	"github.com/npillmayer/collect"
	"github.com/npillmayer/collect/internal/cursor"
)

// HashMap is an insertion-ordered map from K to V. The associative store is a
// gods linked hash map; HashMap adds type safety and a built-in cursor over
// the entries. The zero value is an empty map ready to use.
type HashMap[K comparable, V any] struct {
	table *linkedhashmap.Map
	mod   uint64
	order []K  // cached key order
	ordOK bool // is order up to date?
	cur   *cursor.Index
}

var _ collect.Map[string, int] = (*HashMap[string, int])(nil)
var _ collect.Iterator[collect.Entry[string, int]] = (*HashMap[string, int])(nil)

// slot boxes a value for the table. The gods map treats a stored nil as an
// absent key, a slot is never nil.
type slot[V any] struct {
	v V
}

// New creates an empty map.
func New[K comparable, V any]() *HashMap[K, V] {
	m := &HashMap[K, V]{}
	m.init()
	return m
}

func (m *HashMap[K, V]) init() {
	if m.table == nil {
		m.table = linkedhashmap.New()
		m.cur = cursor.At(m)
	}
}

// Size returns the number of entries.
func (m *HashMap[K, V]) Size() int {
	if m.table == nil {
		return 0
	}
	return m.table.Size()
}

// IsEmpty is a predicate: does the map have no entries?
func (m *HashMap[K, V]) IsEmpty() bool {
	return m.Size() == 0
}

// ModCount returns the number of structural modifications so far.
// Replacing the value of a present key is not a structural modification.
func (m *HashMap[K, V]) ModCount() uint64 {
	return m.mod
}

// Put associates v with k. A new key is appended to the key order.
func (m *HashMap[K, V]) Put(k K, v V) {
	m.init()
	if _, found := m.table.Get(k); !found {
		m.touch()
	}
	m.table.Put(k, slot[V]{v})
}

// Get returns the value for k.
func (m *HashMap[K, V]) Get(k K) (V, error) {
	m.init()
	v, found := m.table.Get(k)
	if !found {
		var zero V
		return zero, m.notFound(k)
	}
	return unbox[V](v), nil
}

// ContainsKey is a predicate: is k present?
func (m *HashMap[K, V]) ContainsKey(k K) bool {
	m.init()
	_, found := m.table.Get(k)
	return found
}

// Remove deletes the entry for k and returns its value.
func (m *HashMap[K, V]) Remove(k K) (V, error) {
	m.init()
	v, found := m.table.Get(k)
	if !found {
		var zero V
		return zero, m.notFound(k)
	}
	m.table.Remove(k)
	m.touch()
	return unbox[V](v), nil
}

// Clear drops all entries and resets the built-in cursor.
func (m *HashMap[K, V]) Clear() {
	m.init()
	if !m.table.Empty() {
		tracer().Debugf("clearing map of %d entries", m.table.Size())
		m.touch()
	}
	m.table.Clear()
	m.cur.Reset()
}

// Keys returns the keys in insertion order.
func (m *HashMap[K, V]) Keys() []K {
	m.init()
	keys := m.keys()
	result := make([]K, len(keys))
	copy(result, keys)
	return result
}

// Values returns the values in key order.
func (m *HashMap[K, V]) Values() []V {
	m.init()
	values := make([]V, 0, m.table.Size())
	for _, v := range m.table.Values() {
		values = append(values, unbox[V](v))
	}
	return values
}

// Entries returns all key-value pairs in key order.
func (m *HashMap[K, V]) Entries() []collect.Entry[K, V] {
	m.init()
	entries := make([]collect.Entry[K, V], 0, m.table.Size())
	it := m.table.Iterator()
	for it.Next() {
		entries = append(entries, collect.Entry[K, V]{
			Key:   as[K](it.Key()),
			Value: unbox[V](it.Value()),
		})
	}
	return entries
}

func (m *HashMap[K, V]) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, e := range m.Entries() {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%v:%v", e.Key, e.Value)
	}
	b.WriteByte('}')
	return b.String()
}

func (m *HashMap[K, V]) touch() {
	m.mod++
	m.ordOK = false
}

// keys returns the cached key order, rebuilding it after modifications.
func (m *HashMap[K, V]) keys() []K {
	if !m.ordOK {
		m.order = m.order[:0]
		for _, k := range m.table.Keys() {
			m.order = append(m.order, as[K](k))
		}
		m.ordOK = true
	}
	return m.order
}

// as converts entries of the untyped table. Nil interface values
// convert to the zero value of T.
func as[T any](x interface{}) T {
	t, _ := x.(T)
	return t
}

func unbox[V any](x interface{}) V {
	return as[slot[V]](x).v
}

func (m *HashMap[K, V]) notFound(k K) error {
	return fmt.Errorf("%w: %v", collect.ErrKeyNotFound, k)
}

// --- Built-in cursor -------------------------------------------------------

// HasNext is a predicate: will Next produce an entry?
func (m *HashMap[K, V]) HasNext() bool {
	m.init()
	return m.cur.HasNext()
}

// Next returns the next entry in key order.
func (m *HashMap[K, V]) Next() (collect.Entry[K, V], error) {
	m.init()
	i, err := m.cur.Advance()
	if err != nil {
		if m.cur.Invalidated() {
			tracer().Debugf("cursor invalidated by map modification")
		}
		return collect.Entry[K, V]{}, err
	}
	k := m.keys()[i]
	v, _ := m.table.Get(k)
	return collect.Entry[K, V]{Key: k, Value: unbox[V](v)}, nil
}

// Reset moves the built-in cursor before the first entry.
func (m *HashMap[K, V]) Reset() {
	m.init()
	m.cur.Reset()
}

// State reports the state of the built-in cursor.
func (m *HashMap[K, V]) State() collect.CursorState {
	m.init()
	return m.cur.State()
}
