package collect

// Error is a string type for error values, allowing sentinel errors to be
// declared as constants:
//
//    const ErrSomething collect.Error = "something went wrong"
//
type Error string

func (err Error) Error() string { return string(err) }

// Error values reported by the containers of this module. Containers wrap
// them with details (index, size, key); use errors.Is to check.
const (
	ErrIndexOutOfRange        Error = "index out of range"
	ErrIteratorExhausted      Error = "no more elements"
	ErrEmptyContainer         Error = "container is empty"
	ErrKeyNotFound            Error = "key not found"
	ErrConcurrentModification Error = "container modified during iteration"
)
