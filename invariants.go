package mway

import "fmt"

// Check validates structural tree invariants.
//
// This checker is intentionally strict and meant for tests: it verifies the
// per-node ordering, the subtree partitioning bounds, the empty-slot rule for
// child slots beyond the element count, and the parent back-references.
func (t *Tree[T]) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrInvalidStructure)
	}
	if t.root == nil {
		return fmt.Errorf("%w: tree must always own a root node", ErrInvalidStructure)
	}
	if err := t.cfg.validate(); err != nil {
		return err
	}
	return t.checkNode(t.root, nil, nil, nil)
}

// checkNode validates the subtree rooted at n. lo and hi are exclusive bounds
// inherited from ancestor elements; nil stands for ±infinity.
func (t *Tree[T]) checkNode(n *node[T], parent *node[T], lo, hi *T) error {
	if n.parent != parent {
		return fmt.Errorf("%w: stale parent back-reference", ErrInvalidStructure)
	}
	if len(n.vals) > t.cfg.Degree {
		return fmt.Errorf("%w: node holds %d elements, degree is %d",
			ErrInvalidStructure, len(n.vals), t.cfg.Degree)
	}
	if parent != nil && len(n.vals) == 0 {
		return fmt.Errorf("%w: non-root node must not be empty", ErrInvalidStructure)
	}
	for i, v := range n.vals {
		if i > 0 && !t.cfg.Less(n.vals[i-1], v) {
			return fmt.Errorf("%w: element buffer not strictly increasing at index %d",
				ErrInvalidStructure, i)
		}
		if lo != nil && !t.cfg.Less(*lo, v) {
			return fmt.Errorf("%w: element violates lower subtree bound", ErrInvalidStructure)
		}
		if hi != nil && !t.cfg.Less(v, *hi) {
			return fmt.Errorf("%w: element violates upper subtree bound", ErrInvalidStructure)
		}
	}
	if n.children == nil {
		return nil
	}
	if len(n.children) != t.cfg.Degree+1 {
		return fmt.Errorf("%w: child array has %d slots, want %d",
			ErrInvalidStructure, len(n.children), t.cfg.Degree+1)
	}
	for i, child := range n.children {
		if i > len(n.vals) {
			if child != nil {
				return fmt.Errorf("%w: child slot %d beyond element count must be empty",
					ErrInvalidStructure, i)
			}
			continue
		}
		if child == nil {
			continue
		}
		childLo, childHi := lo, hi
		if i > 0 {
			childLo = &n.vals[i-1]
		}
		if i < len(n.vals) {
			childHi = &n.vals[i]
		}
		if err := t.checkNode(child, n, childLo, childHi); err != nil {
			return err
		}
	}
	return nil
}
