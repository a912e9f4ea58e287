package mway

import "iter"

// All returns an iterator over all elements in ascending order.
func (t *Tree[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if t == nil || t.root == nil {
			return
		}
		t.root.eachInOrder(yield)
	}
}

// Backward returns an iterator over all elements in descending order.
func (t *Tree[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		if t == nil || t.root == nil {
			return
		}
		t.root.eachReverse(yield)
	}
}

// Each visits all elements in ascending order.
//
// Iteration stops early if the callback returns false.
func (t *Tree[T]) Each(fn func(e T) bool) {
	if t == nil || t.root == nil || fn == nil {
		return
	}
	t.root.eachInOrder(fn)
}
