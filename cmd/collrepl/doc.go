/*
Package collrepl/main provides an interactive command line tool (CollREPL)
to play with the containers of module collect. Users create named containers
and apply operations to them, one command per line:

    coll> new list cities
    coll> cities add Jakarta Bandung Surabaya Medan
    coll> cities set 1 Yogyakarta
    coll> cities show
    coll> ls

Command `demo` replays a demonstration session for each of the five
container kinds, `help` lists the available operations.


License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'collect.repl'
func tracer() tracing.Trace {
	return tracing.Select("collect.repl")
}
