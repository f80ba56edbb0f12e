/*
Package arraylist implements a list backed by a Go slice.

Indexed access is O(1); removing an element shifts its successors. The list
carries a built-in positional cursor, with the same fail-fast behavior as the
linked list of this module.

    l := arraylist.New[string]()
    l.Add("Apple")
    l.Add("Banana")
    l.Set(1, "Blueberry")

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package arraylist

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'collect.arraylist'.
func tracer() tracing.Trace {
	return tracing.Select("collect.arraylist")
}
