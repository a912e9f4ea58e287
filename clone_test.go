package mway

import "testing"

func TestCloneIsIndependent(t *testing.T) {
	a := NewOrdered[int](3)
	for _, v := range []int{4, 2, 6, 1, 3, 5, 7} {
		a.Insert(v)
	}
	b := a.Clone()
	a.Insert(8)
	assertSeq(t, collect(b), []int{1, 2, 3, 4, 5, 6, 7})
	assertSeq(t, collect(a), []int{1, 2, 3, 4, 5, 6, 7, 8})
	if err := b.Check(); err != nil {
		t.Fatal(err)
	}
}

func TestCloneSharesNoNodes(t *testing.T) {
	a := NewOrdered[int](2)
	for _, v := range []int{5, 3, 8, 1, 7} {
		a.Insert(v)
	}
	b := a.Clone()
	if a.root == b.root {
		t.Fatalf("clone must not share the root")
	}
	// Mutating an element through the original must not show in the clone.
	// 0 keeps the subtree ordering of the slot that held 1.
	*a.Find(1).Ref() = 0
	if b.Contains(0) || !b.Contains(1) {
		t.Fatalf("clone shares element storage with the original")
	}
}

func TestCopyFromReplacesContents(t *testing.T) {
	src := NewOrdered[int](3)
	for _, v := range []int{2, 1, 3} {
		src.Insert(v)
	}
	dst := NewOrdered[int](5)
	dst.Insert(99)
	dst.CopyFrom(src)
	if dst.Degree() != 3 {
		t.Fatalf("copy assignment must adopt the source degree, got %d", dst.Degree())
	}
	assertSeq(t, collect(dst), []int{1, 2, 3})
	src.Insert(4)
	if dst.Contains(4) {
		t.Fatalf("copy assignment must not share nodes with the source")
	}
}

func TestCopyFromSelfIsNoop(t *testing.T) {
	tree := NewOrdered[int](3)
	tree.Insert(1)
	tree.Insert(2)
	tree.CopyFrom(tree)
	assertSeq(t, collect(tree), []int{1, 2})
	if err := tree.Check(); err != nil {
		t.Fatal(err)
	}
}

func TestMoveStealsContents(t *testing.T) {
	src := NewOrdered[int](3)
	for _, v := range []int{2, 1, 3} {
		src.Insert(v)
	}
	moved := src.Move()
	assertSeq(t, collect(moved), []int{1, 2, 3})
	if !src.IsEmpty() {
		t.Fatalf("moved-from tree should be empty")
	}
	// The moved-from tree stays usable.
	src.Insert(9)
	assertSeq(t, collect(src), []int{9})
	if err := src.Check(); err != nil {
		t.Fatal(err)
	}
}

func TestMoveFromStealsContents(t *testing.T) {
	src := NewOrdered[int](2)
	for _, v := range []int{5, 3, 8} {
		src.Insert(v)
	}
	dst := NewOrdered[int](7)
	dst.Insert(42)
	dst.MoveFrom(src)
	if dst.Degree() != 2 {
		t.Fatalf("move assignment must adopt the source degree")
	}
	assertSeq(t, collect(dst), []int{3, 5, 8})
	if !src.IsEmpty() {
		t.Fatalf("moved-from tree should be empty")
	}
	src.Insert(1)
	if dst.Contains(1) {
		t.Fatalf("moved-from tree must not share nodes with the destination")
	}
}

func TestMoveFromSelfIsNoop(t *testing.T) {
	tree := NewOrdered[int](3)
	tree.Insert(1)
	tree.MoveFrom(tree)
	assertSeq(t, collect(tree), []int{1})
}
