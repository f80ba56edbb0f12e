package collect

import "github.com/emirpasic/gods/containers"

// Container wraps a Collection as a gods container, to hand it to code
// written against github.com/emirpasic/gods.
func Container[T any](c Collection[T]) containers.Container {
	return godsContainer[T]{c}
}

type godsContainer[T any] struct {
	c Collection[T]
}

var _ containers.Container = godsContainer[int]{}

func (gc godsContainer[T]) Empty() bool {
	return gc.c.IsEmpty()
}

func (gc godsContainer[T]) Size() int {
	return gc.c.Size()
}

func (gc godsContainer[T]) Clear() {
	gc.c.Clear()
}

func (gc godsContainer[T]) Values() []interface{} {
	elems := gc.c.ToArray()
	values := make([]interface{}, len(elems))
	for i, e := range elems {
		values[i] = e
	}
	return values
}
