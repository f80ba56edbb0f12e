/*
Package linked implements a generic doubly linked list.

The list owns a chain of nodes, anchored by a head and a tail node. Appending
and unlinking a node are O(1) operations; indexed access walks the chain.

    l := linked.New[string]()
    l.Add("Jakarta")
    l.Add("Bandung")
    l.Set(1, "Yogyakarta")           // Jakarta, Yogyakarta
    l.Remove("Jakarta")              // Yogyakarta

Traversal is done with cursors. Every list carries a built-in cursor, which is
operated by calling HasNext, Next and Reset on the list itself. Additional
independent cursors are available from Iterator.

    l.Reset()
    for l.HasNext() {
        city, err := l.Next()
        …
    }

A cursor which has started a traversal notices structural modifications of the
list (Add, Remove, RemoveAt, Clear) and fails fast with
collect.ErrConcurrentModification. Overwriting values with Set is not a
structural modification.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package linked

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'collect.linked'.
func tracer() tracing.Trace {
	return tracing.Select("collect.linked")
}
