package mway

import "sort"

// node is a tree node of fixed element capacity.
//
// A node with k elements uses child slots 0…k; slots above k stay empty while
// the node is not full (their partitioning key does not exist). Children are
// owned by their parent; the parent link is a non-owning back-reference used
// for iterator ascent.
type node[T any] struct {
	// vals is the strictly increasing element buffer, len(vals) <= degree.
	vals []T
	// children holds degree+1 child slots. It stays nil until the node
	// overflows for the first time.
	children []*node[T]
	parent   *node[T]
}

func newNode[T any](degree int, parent *node[T]) *node[T] {
	return &node[T]{
		vals:   make([]T, 0, degree),
		parent: parent,
	}
}

// lowerBound returns the first index whose element does not order before v.
func (n *node[T]) lowerBound(less func(a, b T) bool, v T) int {
	return sort.Search(len(n.vals), func(i int) bool {
		return !less(n.vals[i], v)
	})
}

// childAt returns the child in slot i, or nil for an empty slot.
func (n *node[T]) childAt(i int) *node[T] {
	if n == nil || n.children == nil {
		return nil
	}
	return n.children[i]
}

// ensureChild returns the child in slot i, allocating it on demand.
//
// The child array is materialized lazily: most nodes never overflow and
// should not pay for degree+1 pointer slots.
func (n *node[T]) ensureChild(i, degree int) *node[T] {
	if n.children == nil {
		n.children = make([]*node[T], degree+1)
	}
	if n.children[i] == nil {
		n.children[i] = newNode(degree, n)
	}
	return n.children[i]
}

// insertValAt places v at position at, shifting the tail of the buffer.
//
// The caller must have verified that the node is not full. Elements after at
// move by one slot, which invalidates iterators positioned on this node.
func (n *node[T]) insertValAt(at int, v T) {
	n.vals = append(n.vals, v)
	copy(n.vals[at+1:], n.vals[at:])
	n.vals[at] = v
}

// count returns the number of elements in the subtree rooted at n.
func (n *node[T]) count() int {
	if n == nil {
		return 0
	}
	total := len(n.vals)
	for _, child := range n.children {
		total += child.count()
	}
	return total
}

// clone deep-copies the subtree rooted at n, preserving its shape.
func (n *node[T]) clone(parent *node[T]) *node[T] {
	if n == nil {
		return nil
	}
	cloned := &node[T]{
		vals:   make([]T, len(n.vals), cap(n.vals)),
		parent: parent,
	}
	copy(cloned.vals, n.vals)
	if n.children != nil {
		cloned.children = make([]*node[T], len(n.children))
		for i, child := range n.children {
			cloned.children[i] = child.clone(cloned)
		}
	}
	return cloned
}

// min returns the position of the smallest element in the subtree rooted
// at n. The subtree must not be empty.
func (n *node[T]) min() (*node[T], int) {
	for n.childAt(0) != nil {
		n = n.children[0]
	}
	assert(len(n.vals) > 0, "min called on empty subtree")
	return n, 0
}

// max returns the position of the largest element in the subtree rooted
// at n. The subtree must not be empty.
func (n *node[T]) max() (*node[T], int) {
	for n.childAt(len(n.vals)) != nil {
		n = n.children[len(n.vals)]
	}
	assert(len(n.vals) > 0, "max called on empty subtree")
	return n, len(n.vals) - 1
}

// eachInOrder emits the subtree's elements in ascending order.
//
// Emission stops early if fn returns false; the return value reports whether
// the walk ran to completion.
func (n *node[T]) eachInOrder(fn func(T) bool) bool {
	if n == nil {
		return true
	}
	for i, v := range n.vals {
		if !n.childAt(i).eachInOrder(fn) {
			return false
		}
		if !fn(v) {
			return false
		}
	}
	return n.childAt(len(n.vals)).eachInOrder(fn)
}

// eachReverse emits the subtree's elements in descending order.
func (n *node[T]) eachReverse(fn func(T) bool) bool {
	if n == nil {
		return true
	}
	if !n.childAt(len(n.vals)).eachReverse(fn) {
		return false
	}
	for i := len(n.vals) - 1; i >= 0; i-- {
		if !fn(n.vals[i]) {
			return false
		}
		if !n.childAt(i).eachReverse(fn) {
			return false
		}
	}
	return true
}
