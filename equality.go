package collect

import (
	"bytes"

	"github.com/cnf/structhash"
)

// Equality decides whether two elements are to be considered equal.
// Containers use it for Remove, Contains and IndexOf.
type Equality[T any] func(a, b T) bool

// Natural is equality by Go's == operator.
func Natural[T comparable]() Equality[T] {
	return func(a, b T) bool {
		return a == b
	}
}

// Structural compares elements by content. Values are serialized in a
// canonical form (see package structhash), which follows pointers and ignores
// struct fields tagged to be skipped by structhash. Unexported struct fields
// do not take part in the comparison.
//
// Structural is considerably slower than Natural and should be reserved for
// element types which are not comparable, e.g. structs holding slices.
func Structural[T any]() Equality[T] {
	return func(a, b T) bool {
		return bytes.Equal(structhash.Dump(a, 1), structhash.Dump(b, 1))
	}
}
