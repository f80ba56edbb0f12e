package linked

import "fmt"

// Node is a link in the chain of a list. Clients may walk the chain with Next
// and Prev, but cannot re-link nodes.
type Node[T any] struct {
	value T
	prev  *Node[T] // back-link, nil for the head node
	next  *Node[T] // nil for the tail node
}

// Value returns the payload of a node.
func (n *Node[T]) Value() T {
	return n.value
}

// Next returns the successor node or nil.
func (n *Node[T]) Next() *Node[T] {
	return n.next
}

// Prev returns the predecessor node or nil.
func (n *Node[T]) Prev() *Node[T] {
	return n.prev
}

func (n *Node[T]) String() string {
	return fmt.Sprintf("<node %v>", n.value)
}
