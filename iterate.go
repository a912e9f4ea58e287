package mway

// Iterator is a bidirectional cursor over the in-order element sequence of a
// tree.
//
// An iterator identifies a (node, index) position plus an end flag. The end
// flag marks the past-the-end sentinel: it anchors at the maximum element's
// position but is not dereferenceable. Iterators are value types and compare
// with ==; two iterators are equal iff they reference the same position of
// the same tree with the same end flag.
//
// Any insertion that lands in a node shifts that node's element buffer and
// invalidates all iterators positioned on it. Insertions that merely allocate
// a fresh child leave iterators intact.
type Iterator[T any] struct {
	tree  *Tree[T]
	node  *node[T]
	index int
	end   bool
}

// Begin returns an iterator at the smallest element. On an empty tree,
// Begin() == End().
func (t *Tree[T]) Begin() Iterator[T] {
	n, index, ok := t.minPosition()
	return Iterator[T]{tree: t, node: n, index: index, end: !ok}
}

// End returns the past-the-end sentinel. It anchors at the maximum element's
// position and must not be dereferenced.
func (t *Tree[T]) End() Iterator[T] {
	n, index := t.maxPosition()
	return Iterator[T]{tree: t, node: n, index: index, end: true}
}

// Valid reports whether the iterator is dereferenceable.
func (it Iterator[T]) Valid() bool {
	return it.node != nil && !it.end && it.index < len(it.node.vals)
}

// Value returns the element at the iterator's position.
func (it Iterator[T]) Value() T {
	assert(it.Valid(), "dereference of end or invalid iterator")
	return it.node.vals[it.index]
}

// Ref returns a pointer to the stored element, allowing in-place mutation.
//
// Mutations must not change how the element orders relative to its neighbors.
// The pointer is stable only until the next insertion into the same node.
func (it Iterator[T]) Ref() *T {
	assert(it.Valid(), "dereference of end or invalid iterator")
	return &it.node.vals[it.index]
}

// Next advances the iterator to the successor element in the total order.
// Advancing past the maximum element turns the iterator into the end
// sentinel. Next must not be called on the end sentinel.
func (it *Iterator[T]) Next() {
	assert(it.node != nil && !it.end, "increment of end or zero iterator")
	n, i := it.node, it.index
	if child := n.childAt(i + 1); child != nil {
		// The right-hand subtree holds the successor; take its minimum.
		it.node, it.index = child.min()
		return
	}
	if i+1 < len(n.vals) {
		it.index = i + 1
		return
	}
	// Ascend to the first ancestor with a position to the right of the
	// element we are leaving.
	leaving := n.vals[i]
	less := it.tree.cfg.Less
	for cur := n; ; {
		parent := cur.parent
		if parent == nil {
			// No such ancestor: the leaving element is the tree
			// maximum, so the current position becomes the sentinel.
			it.end = true
			return
		}
		if at := parent.lowerBound(less, leaving); at < len(parent.vals) {
			it.node, it.index = parent, at
			return
		}
		cur = parent
	}
}

// Prev moves the iterator to the predecessor element in the total order.
// Stepping back from the end sentinel lands on the maximum element.
// Stepping back from Begin() is undefined; this implementation parks an
// end-flagged marker at the minimum element.
func (it *Iterator[T]) Prev() {
	if it.end {
		// The sentinel already anchors at the maximum position.
		it.end = false
		return
	}
	assert(it.node != nil, "decrement of zero iterator")
	n, i := it.node, it.index
	if child := n.childAt(i); child != nil {
		it.node, it.index = child.max()
		return
	}
	if i > 0 {
		it.index = i - 1
		return
	}
	leaving := n.vals[i]
	less := it.tree.cfg.Less
	for cur := n; ; {
		parent := cur.parent
		if parent == nil {
			it.end = true
			return
		}
		if at := parent.lowerBound(less, leaving); at > 0 {
			it.node, it.index = parent, at-1
			return
		}
		cur = parent
	}
}

// --- Read-only iterator ----------------------------------------------------

// ConstIterator is the read-only form of Iterator: navigation and equality
// are identical, but the stored element is only accessible by value.
type ConstIterator[T any] struct {
	pos Iterator[T]
}

// CBegin returns a read-only iterator at the smallest element.
func (t *Tree[T]) CBegin() ConstIterator[T] {
	return ConstIterator[T]{pos: t.Begin()}
}

// CEnd returns the read-only past-the-end sentinel.
func (t *Tree[T]) CEnd() ConstIterator[T] {
	return ConstIterator[T]{pos: t.End()}
}

// Valid reports whether the iterator is dereferenceable.
func (it ConstIterator[T]) Valid() bool { return it.pos.Valid() }

// Value returns the element at the iterator's position.
func (it ConstIterator[T]) Value() T { return it.pos.Value() }

// Next advances to the successor element.
func (it *ConstIterator[T]) Next() { it.pos.Next() }

// Prev moves to the predecessor element.
func (it *ConstIterator[T]) Prev() { it.pos.Prev() }

// --- Reverse adapters ------------------------------------------------------

// ReverseIterator adapts a forward iterator to descending traversal. Its
// dereferenced value is the element one step before the wrapped forward
// iterator, so RBegin wraps End and REnd wraps Begin.
type ReverseIterator[T any] struct {
	base Iterator[T]
}

// RBegin returns a reverse iterator at the largest element.
func (t *Tree[T]) RBegin() ReverseIterator[T] {
	return ReverseIterator[T]{base: t.End()}
}

// REnd returns the reverse past-the-end sentinel.
func (t *Tree[T]) REnd() ReverseIterator[T] {
	return ReverseIterator[T]{base: t.Begin()}
}

// Base returns the wrapped forward iterator.
func (r ReverseIterator[T]) Base() Iterator[T] { return r.base }

// Valid reports whether the reverse iterator is dereferenceable.
func (r ReverseIterator[T]) Valid() bool {
	return r.base.tree != nil && r.base != r.base.tree.Begin()
}

// Value returns the element at the reverse iterator's position.
func (r ReverseIterator[T]) Value() T {
	pos := r.base
	pos.Prev()
	return pos.Value()
}

// Ref returns a pointer to the element at the reverse iterator's position.
func (r ReverseIterator[T]) Ref() *T {
	pos := r.base
	pos.Prev()
	return pos.Ref()
}

// Next advances the reverse iterator, i.e. steps the wrapped forward
// iterator back.
func (r *ReverseIterator[T]) Next() { r.base.Prev() }

// Prev steps the reverse iterator back.
func (r *ReverseIterator[T]) Prev() { r.base.Next() }
