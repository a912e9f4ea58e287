package mway

import "cmp"

// Tree is an ordered multiway search tree over element type T.
//
// Every node stores up to Degree sorted elements. Insertion never splits a
// node: once a node is full, new elements descend into child subtrees,
// allocating them on demand. The root node is always present, even for an
// empty tree.
//
// The zero Tree is not usable; construct trees with New or NewOrdered.
type Tree[T any] struct {
	cfg  Config[T]
	root *node[T]
}

// New creates an empty tree with validated configuration.
func New[T any](cfg Config[T]) (*Tree[T], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg = cfg.normalized()
	return &Tree[T]{
		cfg:  cfg,
		root: newNode[T](cfg.Degree, nil),
	}, nil
}

// NewOrdered creates an empty tree for a naturally ordered element type.
// A non-positive degree selects DefaultDegree.
func NewOrdered[T cmp.Ordered](degree int) *Tree[T] {
	if degree <= 0 {
		degree = DefaultDegree
	}
	tree, err := New(Config[T]{
		Degree: degree,
		Less:   cmp.Less[T],
	})
	assert(err == nil, "NewOrdered: configuration cannot be invalid")
	return tree
}

// Config returns a copy of the effective tree configuration.
func (t *Tree[T]) Config() Config[T] {
	return t.cfg
}

// Degree returns the per-node element capacity.
func (t *Tree[T]) Degree() int {
	return t.cfg.Degree
}

// IsEmpty reports whether the tree has no elements.
func (t *Tree[T]) IsEmpty() bool {
	return t == nil || t.root == nil || len(t.root.vals) == 0
}

// Len returns the number of elements in the tree.
func (t *Tree[T]) Len() int {
	if t == nil {
		return 0
	}
	return t.root.count()
}

// Insert adds e to the tree unless an equal element is already present.
//
// It returns an iterator at the stored element, together with true if e was
// inserted and false if an equal element blocked the insertion. Iterators
// positioned on the node that absorbs e are invalidated; insertions that only
// allocate fresh children leave existing iterators intact.
func (t *Tree[T]) Insert(e T) (Iterator[T], bool) {
	assert(t != nil && t.root != nil, "Insert called on an unconstructed tree")
	n := t.root
	for {
		at := n.lowerBound(t.cfg.Less, e)
		if at < len(n.vals) && !t.cfg.Less(e, n.vals[at]) {
			return Iterator[T]{tree: t, node: n, index: at}, false
		}
		if len(n.vals) < t.cfg.Degree {
			n.insertValAt(at, e)
			return Iterator[T]{tree: t, node: n, index: at}, true
		}
		// Node is full: overflow downward into the slot's subtree,
		// materializing it if necessary.
		n = n.ensureChild(at, t.cfg.Degree)
	}
}

// Find returns an iterator at the element equal to e, or End() if the tree
// holds no such element.
func (t *Tree[T]) Find(e T) Iterator[T] {
	assert(t != nil && t.root != nil, "Find called on an unconstructed tree")
	n := t.root
	for n != nil {
		at := n.lowerBound(t.cfg.Less, e)
		if at < len(n.vals) && !t.cfg.Less(e, n.vals[at]) {
			return Iterator[T]{tree: t, node: n, index: at}
		}
		n = n.childAt(at)
	}
	return t.End()
}

// FindConst is the read-only form of Find.
func (t *Tree[T]) FindConst(e T) ConstIterator[T] {
	return ConstIterator[T]{pos: t.Find(e)}
}

// Contains reports whether an element equal to e is stored in the tree.
func (t *Tree[T]) Contains(e T) bool {
	return t.Find(e) != t.End()
}

// Clone returns an independent deep copy of the tree.
//
// No node is shared between source and copy; subsequent insertions into one
// tree do not affect the other. The copy preserves the source's shape.
func (t *Tree[T]) Clone() *Tree[T] {
	if t == nil {
		return nil
	}
	return &Tree[T]{
		cfg:  t.cfg,
		root: t.root.clone(nil),
	}
}

// CopyFrom replaces the tree's contents with a deep copy of src.
// Copying a tree onto itself is a no-op.
func (t *Tree[T]) CopyFrom(src *Tree[T]) {
	if t == src {
		return
	}
	t.cfg = src.cfg
	t.root = src.root.clone(nil)
}

// Move transfers the tree's contents to a new tree.
//
// The receiver is left usable as an empty tree of the same degree.
func (t *Tree[T]) Move() *Tree[T] {
	moved := &Tree[T]{cfg: t.cfg, root: t.root}
	t.root = newNode[T](t.cfg.Degree, nil)
	return moved
}

// MoveFrom replaces the tree's contents with the contents stolen from src,
// leaving src usable as an empty tree of its own degree. Moving a tree onto
// itself is a no-op.
func (t *Tree[T]) MoveFrom(src *Tree[T]) {
	if t == src {
		return
	}
	t.cfg = src.cfg
	t.root = src.root
	src.root = newNode[T](src.cfg.Degree, nil)
}

// minPosition locates the smallest element; ok is false for an empty tree.
func (t *Tree[T]) minPosition() (n *node[T], index int, ok bool) {
	if len(t.root.vals) == 0 {
		return t.root, 0, false
	}
	n, index = t.root.min()
	return n, index, true
}

// maxPosition locates the largest element; for an empty tree it yields the
// root at index 0, the anchor position of the end sentinel.
func (t *Tree[T]) maxPosition() (n *node[T], index int) {
	if len(t.root.vals) == 0 {
		return t.root, 0
	}
	return t.root.max()
}
