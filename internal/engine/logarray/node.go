package logarray

// Node holds one chunk of the sequence together with its two subtrees.
// The subtree rooted at a node covers, in order, every element of its left
// child, then its own chunk, then every element of its right child.
type Node[T any] struct {
	buffer []T
	left   *Node[T]
	right  *Node[T]
	size   int // elements in the whole subtree
	height int // 1 for a node without children
}

// newNode creates a childless node that takes ownership of buffer.
func newNode[T any](buffer []T) *Node[T] {
	return &Node[T]{
		buffer: buffer,
		size:   len(buffer),
		height: 1,
	}
}

// Len returns the number of elements stored directly in this node's chunk.
func (n *Node[T]) Len() int {
	return len(n.buffer)
}

// Size returns the number of elements in the subtree rooted at this node.
func (n *Node[T]) Size() int {
	return n.size
}

// Height returns the height of the subtree rooted at this node.
func (n *Node[T]) Height() int {
	return n.height
}

// Value returns the element at offset within this node's chunk.
func (n *Node[T]) Value(offset int) T {
	return n.buffer[offset]
}

// Values returns a copy of this node's chunk.
func (n *Node[T]) Values() []T {
	out := make([]T, len(n.buffer))
	copy(out, n.buffer)
	return out
}

// Left returns the left child, or nil.
func (n *Node[T]) Left() *Node[T] {
	return n.left
}

// Right returns the right child, or nil.
func (n *Node[T]) Right() *Node[T] {
	return n.right
}

// clone deep-copies the subtree rooted at n.
func (n *Node[T]) clone() *Node[T] {
	if n == nil {
		return nil
	}
	return &Node[T]{
		buffer: n.Values(),
		left:   n.left.clone(),
		right:  n.right.clone(),
		size:   n.size,
		height: n.height,
	}
}

func sizeOf[T any](n *Node[T]) int {
	if n == nil {
		return 0
	}
	return n.size
}

func heightOf[T any](n *Node[T]) int {
	if n == nil {
		return 0
	}
	return n.height
}

// find returns the node holding the element at index and the element's
// offset inside that node's chunk. The index must be inside the subtree.
func find[T any](n *Node[T], index int) (*Node[T], int) {
	total := sizeOf(n)
	start := index
	for n != nil {
		leftSize := sizeOf(n.left)
		if index < leftSize {
			n = n.left
			continue
		}
		index -= leftSize
		if index < len(n.buffer) {
			return n, index
		}
		index -= len(n.buffer)
		n = n.right
	}
	panic(&RangeError{Op: "find", Index: start, Len: total})
}

// update recomputes the cached size and height from the current children.
// It must run before a changed node is read by its parent.
func (n *Node[T]) update() {
	n.size = sizeOf(n.left) + len(n.buffer) + sizeOf(n.right)
	n.height = 1 + max(heightOf(n.left), heightOf(n.right))
}

func (n *Node[T]) balanceFactor() int {
	return heightOf(n.left) - heightOf(n.right)
}

// rotateRight promotes y's left child and returns it as the new subtree root.
func rotateRight[T any](y *Node[T]) *Node[T] {
	x := y.left
	y.left = x.right
	x.right = y

	// y is now below x, so it has to be refreshed first.
	y.update()
	x.update()
	return x
}

// rotateLeft promotes x's right child and returns it as the new subtree root.
func rotateLeft[T any](x *Node[T]) *Node[T] {
	y := x.right
	x.right = y.left
	y.left = x

	x.update()
	y.update()
	return y
}

// balance refreshes n and restores the AVL condition at n, assuming both
// children are balanced and their heights differ by at most two.
// It returns the root of the rebalanced subtree, which may not be n.
func balance[T any](n *Node[T]) *Node[T] {
	n.update()

	switch bf := n.balanceFactor(); {
	case bf > 1:
		if n.left.balanceFactor() < 0 {
			n.left = rotateLeft(n.left)
		}
		return rotateRight(n)
	case bf < -1:
		if n.right.balanceFactor() > 0 {
			n.right = rotateRight(n.right)
		}
		return rotateLeft(n)
	}
	return n
}
