package collect

// --- Capability interfaces -------------------------------------------------

// Collection is the capability set shared by all element containers.
// Containers are free to implement additional capabilities on top of it.
type Collection[T any] interface {
	Add(T) bool      // add an element; always true for unbounded containers
	Remove(T) bool   // remove the first equal element, if any
	Contains(T) bool // is an equal element present?
	Size() int
	IsEmpty() bool
	Clear()
	ToArray() []T // a fresh slice, independent of the container
}

// List is an indexed Collection. Indices are zero-based. Get, Set and RemoveAt
// fail with ErrIndexOutOfRange for indices outside [0, Size()).
type List[T any] interface {
	Collection[T]
	Get(int) (T, error)
	Set(int, T) error
	IndexOf(T) int // -1 if not found
	RemoveAt(int) (T, error)
}

// Queue is a FIFO Collection. Dequeue and Peek fail with ErrEmptyContainer
// on an empty queue.
type Queue[T any] interface {
	Collection[T]
	Enqueue(T)
	Dequeue() (T, error)
	Peek() (T, error)
}

// Stack is a LIFO Collection. Pop and Peek fail with ErrEmptyContainer
// on an empty stack.
type Stack[T any] interface {
	Collection[T]
	Push(T)
	Pop() (T, error)
	Peek() (T, error)
}

// Map is an associative container with a stable key order.
// Get and Remove fail with ErrKeyNotFound for absent keys.
type Map[K comparable, V any] interface {
	Put(K, V)
	Get(K) (V, error)
	ContainsKey(K) bool
	Remove(K) (V, error)
	Keys() []K
	Values() []V
	Entries() []Entry[K, V]
	Size() int
	IsEmpty() bool
	Clear()
}

// Iterator is a resettable external iterator. Next fails with
// ErrIteratorExhausted if HasNext is false.
//
//    it.Reset()
//    for it.HasNext() {
//        v, err := it.Next()
//        …
//    }
//
type Iterator[T any] interface {
	HasNext() bool
	Next() (T, error)
	Reset()
}

// Entry is a key-value pair, as produced by iterating over a Map.
type Entry[K comparable, V any] struct {
	Key   K
	Value V
}

// --- Cursor states ---------------------------------------------------------

// CursorState is the state of a cursor during a traversal.
type CursorState int8

// Cursors are either not started, positioned on a visited element, or
// positioned on the last element.
const (
	NotStarted CursorState = iota
	InProgress
	Exhausted
)

func (s CursorState) String() string {
	switch s {
	case NotStarted:
		return "not-started"
	case InProgress:
		return "in-progress"
	case Exhausted:
		return "exhausted"
	}
	return "?"
}
