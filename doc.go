/*
Package mway implements an ordered in-memory container shaped like a multiway
search tree.

A binary search tree stores one element per node; an mway tree stores up to M
elements per node (M is called the degree and is fixed per tree). A node
holding k sorted elements partitions its subtree into k+1 ordered sub-ranges.
Unlike a database B-tree, nodes are never split or rebalanced: when an element
arrives at a full node, it overflows downward into a newly allocated child.
Tree shape therefore depends on insertion order, which is part of the
contract. Only the in-order element sequence is prescribed.

Trees reject duplicate elements, support deep copy and move, and offer
bidirectional iterators (mutable and read-only flavors) plus reverse adapters.
Iteration crosses node boundaries in ascending or descending element order.

	tree := mway.NewOrdered[int](3)
	tree.Insert(5)
	tree.Insert(3)
	tree.Insert(8)
	for it := tree.Begin(); it != tree.End(); it.Next() {
		fmt.Println(it.Value()) // 3, 5, 8
	}

Trees are not safe for concurrent mutation. Concurrent readers are fine as
long as no writer runs.

_________________________________________________________________________

# BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package mway

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to a global core-tracer.
//
// A package-level function (rather than a method) keeps the call usable from
// inside generic code, where type parameter names would shadow a short
// helper.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
