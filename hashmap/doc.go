/*
Package hashmap implements a map which remembers the insertion order of its
keys.

Keys(), Values(), Entries() and iteration all follow insertion order.
Overwriting the value of a present key keeps the key's position; removing a
key and putting it again moves it to the end.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package hashmap

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'collect.hashmap'.
func tracer() tracing.Trace {
	return tracing.Select("collect.hashmap")
}
