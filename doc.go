/*
Package collect is a small toolbox of generic container types.

Every container is self-contained; they share nothing but the capability
interfaces declared in this package. Package structure is as follows:

■ linked: Package linked implements a doubly linked list with in-place node
splicing and stateful cursors.

■ arraylist: Package arraylist implements a list on top of a Go slice.

■ hashmap: Package hashmap implements an insertion-ordered map.

■ queue, stack: Packages queue and stack implement FIFO and LIFO containers,
layered over an array list.

The base package contains the capability interfaces (Collection, List, Map,
Queue, Stack, Iterator), the error values shared by all containers, and helpers
for element equality.

Cursors

All containers carry one built-in cursor (HasNext, Next, Reset). A cursor
remembers the container's modification count. If the container is structurally
modified while a traversal is in progress, the next call to Next fails with
ErrConcurrentModification instead of producing undefined results.
Call Reset to start over.

None of the containers is safe for concurrent use.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package collect
