package mway

import (
	"fmt"
	"io"
	"strings"
)

// WriteLevelOrder streams the tree's elements to w in breadth-first node
// order, separated by single spaces.
//
// This is not the sorted in-order sequence: nodes are visited level by level
// and each node's elements appear in stored order, so the output reflects the
// insertion-order-dependent shape of the tree. Nothing but elements is
// written—no prefix, no trailing newline.
func (t *Tree[T]) WriteLevelOrder(w io.Writer) error {
	if t == nil || t.root == nil {
		return nil
	}
	first := true
	queue := []*node[T]{t.root}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		for _, v := range n.vals {
			if !first {
				if _, err := io.WriteString(w, " "); err != nil {
					return err
				}
			}
			if _, err := fmt.Fprint(w, v); err != nil {
				return err
			}
			first = false
		}
		for _, child := range n.children {
			if child != nil {
				queue = append(queue, child)
			}
		}
	}
	return nil
}

// String renders the level-order element sequence, space-separated.
func (t *Tree[T]) String() string {
	var sb strings.Builder
	if err := t.WriteLevelOrder(&sb); err != nil {
		tracer().Errorf("mway level-order dump: %s", err.Error())
	}
	return sb.String()
}
