package mway

import (
	"errors"
	"testing"
)

func TestNewRejectsMissingLess(t *testing.T) {
	_, err := New(Config[int]{Degree: 3})
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig for missing less function, got %v", err)
	}
}

func TestNewRejectsNegativeDegree(t *testing.T) {
	_, err := New(Config[int]{
		Degree: -1,
		Less:   func(a, b int) bool { return a < b },
	})
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig for negative degree, got %v", err)
	}
}

func TestNewDefaultsDegree(t *testing.T) {
	tree, err := New(Config[int]{
		Less: func(a, b int) bool { return a < b },
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tree.Degree() != DefaultDegree {
		t.Fatalf("expected default degree %d, got %d", DefaultDegree, tree.Degree())
	}
}

func TestEmptyTree(t *testing.T) {
	tree := NewOrdered[int](3)
	if !tree.IsEmpty() || tree.Len() != 0 {
		t.Fatalf("unexpected empty tree state len=%d", tree.Len())
	}
	if err := tree.Check(); err != nil {
		t.Fatalf("expected empty tree to be valid, got %v", err)
	}
	if tree.Begin() != tree.End() {
		t.Fatalf("expected Begin() == End() on empty tree")
	}
}

func TestInsertReportsNewAndDuplicate(t *testing.T) {
	tree := NewOrdered[int](4)
	for i := 0; i < 3; i++ {
		it, inserted := tree.Insert(10)
		if i == 0 && !inserted {
			t.Fatalf("expected first insert of 10 to report true")
		}
		if i > 0 && inserted {
			t.Fatalf("expected repeated insert of 10 to report false")
		}
		if it.Value() != 10 {
			t.Fatalf("iterator should point at the stored element, got %d", it.Value())
		}
		if tree.Len() != 1 {
			t.Fatalf("size after insert #%d is %d, want 1", i+1, tree.Len())
		}
	}
}

func TestInsertFillsRootBeforeAllocatingChildren(t *testing.T) {
	tree := NewOrdered[int](40)
	for i := 0; i < 39; i++ {
		tree.Insert(i * 7 % 39)
	}
	if tree.Len() != 39 {
		t.Fatalf("unexpected size %d", tree.Len())
	}
	if tree.root.children != nil {
		t.Fatalf("fewer insertions than the degree must all live in the root")
	}
	if err := tree.Check(); err != nil {
		t.Fatal(err)
	}
}

func TestInsertOverflowsDownward(t *testing.T) {
	tree := NewOrdered[int](2)
	for _, v := range []int{5, 3, 8, 1, 4, 7, 9, 2, 6} {
		tree.Insert(v)
	}
	if tree.Len() != 9 {
		t.Fatalf("unexpected size %d", tree.Len())
	}
	// The first two distinct insertions fill the root in sorted order.
	if len(tree.root.vals) != 2 || tree.root.vals[0] != 3 || tree.root.vals[1] != 5 {
		t.Fatalf("unexpected root content %v", tree.root.vals)
	}
	if err := tree.Check(); err != nil {
		t.Fatal(err)
	}
	want := []int{1, 2, 3, 4, 5, 6, 7, 8, 9}
	got := collect(tree)
	assertSeq(t, got, want)
}

func TestFindHitAndMiss(t *testing.T) {
	tree := NewOrdered[int](2)
	for _, v := range []int{1, 2, 3, 4, 5} {
		tree.Insert(v)
	}
	it := tree.Find(3)
	if it == tree.End() || it.Value() != 3 {
		t.Fatalf("Find(3) should locate the element")
	}
	if tree.Find(6) != tree.End() {
		t.Fatalf("Find(6) should return the end sentinel")
	}
	if !tree.Contains(5) || tree.Contains(0) {
		t.Fatalf("Contains disagrees with Find")
	}
}

func TestFindDescendsRightmostSubtree(t *testing.T) {
	// With degree 1 every insertion beyond the first overflows downward;
	// ascending insertions pile up along the rightmost spine.
	tree := NewOrdered[int](1)
	for v := 1; v <= 6; v++ {
		tree.Insert(v)
	}
	for v := 1; v <= 6; v++ {
		if it := tree.Find(v); it == tree.End() || it.Value() != v {
			t.Fatalf("Find(%d) failed on rightmost spine", v)
		}
	}
}

func TestFindConstYieldsValue(t *testing.T) {
	tree := NewOrdered[string](3)
	tree.Insert("beta")
	tree.Insert("alpha")
	it := tree.FindConst("beta")
	if !it.Valid() || it.Value() != "beta" {
		t.Fatalf("FindConst should locate beta")
	}
	if tree.FindConst("gamma").Valid() {
		t.Fatalf("FindConst miss should not be dereferenceable")
	}
}

func TestDegreeOneDegeneratesToOrderedTree(t *testing.T) {
	tree := NewOrdered[int](1)
	for _, v := range []int{4, 2, 6, 1, 3, 5, 7} {
		tree.Insert(v)
	}
	if err := tree.Check(); err != nil {
		t.Fatal(err)
	}
	assertSeq(t, collect(tree), []int{1, 2, 3, 4, 5, 6, 7})
	assertSeq(t, collectBackward(tree), []int{7, 6, 5, 4, 3, 2, 1})
}

func TestRoundTripThroughIteration(t *testing.T) {
	tree := NewOrdered[int](2)
	for _, v := range []int{9, 4, 13, 2, 7, 11, 15, 1, 3} {
		tree.Insert(v)
	}
	rebuilt := NewOrdered[int](2)
	for v := range tree.All() {
		rebuilt.Insert(v)
	}
	if err := rebuilt.Check(); err != nil {
		t.Fatal(err)
	}
	assertSeq(t, collect(rebuilt), collect(tree))
}

// --- Helpers ---------------------------------------------------------------

func collect[T any](tree *Tree[T]) []T {
	var out []T
	end := tree.End()
	for it := tree.Begin(); it != end; it.Next() {
		out = append(out, it.Value())
	}
	return out
}

func collectBackward[T any](tree *Tree[T]) []T {
	var out []T
	rend := tree.REnd()
	for it := tree.RBegin(); it != rend; it.Next() {
		out = append(out, it.Value())
	}
	return out
}

func assertSeq[T comparable](t *testing.T, got, want []T) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("sequence length mismatch: got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("sequence mismatch at %d: got %v, want %v", i, got, want)
		}
	}
}
