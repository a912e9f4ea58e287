/*
Package textset builds ordered sets of text tokens on top of mway trees.

A text is segmented into line-wrap tokens (UAX#14) and the distinct tokens are
collected into a Tree[string]. Loading from a file may happen asynchronously,
with progress broadcast to subscribers.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package textset

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'mway'
func tracer() tracing.Trace {
	return tracing.Select("mway")
}
