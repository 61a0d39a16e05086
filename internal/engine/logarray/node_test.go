package logarray

import (
	"errors"
	"slices"
	"testing"
)

func leaf(values ...int) *Node[int] {
	return newNode(values)
}

func link(n, left, right *Node[int]) *Node[int] {
	n.left, n.right = left, right
	n.update()
	return n
}

func inorder(n *Node[int]) []int {
	return (&Array[int]{root: n, chunkSize: DefaultChunkSize}).ToSlice()
}

func verify(t *testing.T, n *Node[int], chunkSize int) {
	t.Helper()
	if err := (&Array[int]{root: n, chunkSize: chunkSize}).Check(); err != nil {
		t.Fatalf("invariant check failed: %v", err)
	}
}

func TestUpdate(t *testing.T) {
	n := link(leaf(4, 5), link(leaf(2), leaf(1), leaf(3)), nil)
	if n.Size() != 5 {
		t.Errorf("Size() = %d, want 5", n.Size())
	}
	if n.Height() != 3 {
		t.Errorf("Height() = %d, want 3", n.Height())
	}
	if n.balanceFactor() != 2 {
		t.Errorf("balanceFactor() = %d, want 2", n.balanceFactor())
	}
}

func TestRotateRight(t *testing.T) {
	y := link(leaf(4), link(leaf(2), leaf(1), leaf(3)), leaf(5))

	root := rotateRight(y)

	if got := root.Values(); !slices.Equal(got, []int{2}) {
		t.Fatalf("new root = %v, want [2]", got)
	}
	if got := root.Right().Left().Values(); !slices.Equal(got, []int{3}) {
		t.Errorf("right.left = %v, want [3]", got)
	}
	if got := inorder(root); !slices.Equal(got, []int{1, 2, 3, 4, 5}) {
		t.Errorf("in-order = %v, want [1 2 3 4 5]", got)
	}
	if root.Size() != 5 || root.Height() != 3 {
		t.Errorf("root size/height = %d/%d, want 5/3", root.Size(), root.Height())
	}
	if root.Right().Size() != 3 || root.Right().Height() != 2 {
		t.Errorf("demoted size/height = %d/%d, want 3/2", root.Right().Size(), root.Right().Height())
	}
}

func TestRotateLeft(t *testing.T) {
	x := link(leaf(2), leaf(1), link(leaf(4), leaf(3), leaf(5)))

	root := rotateLeft(x)

	if got := root.Values(); !slices.Equal(got, []int{4}) {
		t.Fatalf("new root = %v, want [4]", got)
	}
	if got := inorder(root); !slices.Equal(got, []int{1, 2, 3, 4, 5}) {
		t.Errorf("in-order = %v, want [1 2 3 4 5]", got)
	}
	verify(t, root, DefaultChunkSize)
}

func TestBalance(t *testing.T) {
	tests := []struct {
		name string
		tree func() *Node[int]
		root int
	}{
		{"left-left", func() *Node[int] { return link(leaf(3), link(leaf(2), leaf(1), nil), nil) }, 2},
		{"left-right", func() *Node[int] { return link(leaf(3), link(leaf(1), nil, leaf(2)), nil) }, 2},
		{"right-right", func() *Node[int] { return link(leaf(1), nil, link(leaf(2), nil, leaf(3))) }, 2},
		{"right-left", func() *Node[int] { return link(leaf(1), nil, link(leaf(3), leaf(2), nil)) }, 2},
		{"already balanced", func() *Node[int] { return link(leaf(2), leaf(1), leaf(3)) }, 2},
		{"leaning but legal", func() *Node[int] { return link(leaf(2), leaf(1), nil) }, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := balance(tt.tree())
			if got := root.Value(0); got != tt.root {
				t.Errorf("root = %d, want %d", got, tt.root)
			}
			verify(t, root, DefaultChunkSize)
		})
	}
}

func TestFind(t *testing.T) {
	// [0 1] [2 3 4] [5]
	root := link(leaf(2, 3, 4), leaf(0, 1), leaf(5))

	for i := 0; i < 6; i++ {
		n, offset := find(root, i)
		if got := n.Value(offset); got != i {
			t.Errorf("find(%d) -> %d, want %d", i, got, i)
		}
	}
}

func TestFindPastEndPanics(t *testing.T) {
	root := link(leaf(1), leaf(0), nil)

	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok {
			t.Fatalf("expected error panic, got %v", r)
		}
		var rangeErr *RangeError
		if !errors.As(err, &rangeErr) {
			t.Fatalf("expected *RangeError, got %T", err)
		}
		if rangeErr.Index != 2 || rangeErr.Len != 2 {
			t.Errorf("RangeError = %+v, want index 2 len 2", rangeErr)
		}
	}()
	find(root, 2)
}

func TestInsertAtLeftBoundaryUsesCurrentNode(t *testing.T) {
	root := link(leaf(10, 11), leaf(1), nil)

	root = insert(root, 1, 99, 8)

	if got := root.Values(); !slices.Equal(got, []int{99, 10, 11}) {
		t.Errorf("root chunk = %v, want [99 10 11]", got)
	}
	if got := root.Left().Values(); !slices.Equal(got, []int{1}) {
		t.Errorf("left chunk = %v, want [1]", got)
	}
	verify(t, root, 8)
}

func TestInsertIntoNil(t *testing.T) {
	root := insert[int](nil, 0, 7, 4)
	if root.Len() != 1 || root.Size() != 1 || root.Height() != 1 {
		t.Errorf("singleton len/size/height = %d/%d/%d, want 1/1/1", root.Len(), root.Size(), root.Height())
	}
}

func TestSplitPlacesUpperHalfBeforeOldRight(t *testing.T) {
	root := link(leaf(1, 2, 3, 4), nil, leaf(9))

	root = insert(root, 4, 5, 4)

	if got := inorder(root); !slices.Equal(got, []int{1, 2, 3, 4, 5, 9}) {
		t.Fatalf("in-order = %v, want [1 2 3 4 5 9]", got)
	}
	verify(t, root, 4)
}

func TestSplitDeepRightSubtree(t *testing.T) {
	right := link(leaf(20), link(leaf(10), nil, nil), link(leaf(30), nil, nil))
	root := link(leaf(1, 2, 3, 4), leaf(0), right)

	root = insert(root, 3, 100, 4)

	want := []int{0, 1, 2, 100, 3, 4, 10, 20, 30}
	if got := inorder(root); !slices.Equal(got, want) {
		t.Fatalf("in-order = %v, want %v", got, want)
	}
	verify(t, root, 4)
}

func TestMergePromotesRightMinimum(t *testing.T) {
	left := leaf(1)
	right := link(leaf(5), leaf(3, 4), leaf(6))

	root := merge(left, right)

	if got := root.Values(); !slices.Equal(got, []int{3, 4}) {
		t.Errorf("merged root = %v, want [3 4]", got)
	}
	if got := inorder(root); !slices.Equal(got, []int{1, 3, 4, 5, 6}) {
		t.Errorf("in-order = %v, want [1 3 4 5 6]", got)
	}
	verify(t, root, DefaultChunkSize)
}

func TestMergeWithMissingSide(t *testing.T) {
	only := leaf(1)
	if merge(nil, only) != only {
		t.Error("merge(nil, r) should return r")
	}
	if merge(only, nil) != only {
		t.Error("merge(l, nil) should return l")
	}
	if merge[int](nil, nil) != nil {
		t.Error("merge(nil, nil) should return nil")
	}
}

func TestRemoveEmptiesNode(t *testing.T) {
	root := link(leaf(2), leaf(1), leaf(3))

	root, removed := remove(root, 1)

	if removed != 2 {
		t.Errorf("removed = %d, want 2", removed)
	}
	if got := inorder(root); !slices.Equal(got, []int{1, 3}) {
		t.Errorf("in-order = %v, want [1 3]", got)
	}
	verify(t, root, DefaultChunkSize)
}

func TestRemoveLastElement(t *testing.T) {
	root, removed := remove(leaf(42), 0)
	if root != nil {
		t.Error("removing the only element should leave an empty tree")
	}
	if removed != 42 {
		t.Errorf("removed = %d, want 42", removed)
	}
}

func TestRemovePastEndPanics(t *testing.T) {
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrOutOfRange) {
			t.Fatalf("expected ErrOutOfRange panic, got %v", r)
		}
	}()
	remove(leaf(1), 5)
}

func TestBuild(t *testing.T) {
	for n := 0; n <= 33; n++ {
		chunks := make([][]int, n)
		for i := range chunks {
			chunks[i] = []int{i}
		}
		root := build(chunks)
		verify(t, root, DefaultChunkSize)
		if sizeOf(root) != n {
			t.Errorf("build(%d chunks) size = %d", n, sizeOf(root))
		}
	}
}

func TestNodeClone(t *testing.T) {
	orig := link(leaf(2), leaf(1), leaf(3))
	cp := orig.clone()

	cp.buffer[0] = 20
	cp.left.buffer[0] = 10

	if got := inorder(orig); !slices.Equal(got, []int{1, 2, 3}) {
		t.Errorf("original changed through clone: %v", got)
	}
	if got := inorder(cp); !slices.Equal(got, []int{10, 20, 3}) {
		t.Errorf("clone = %v, want [10 20 3]", got)
	}
}
