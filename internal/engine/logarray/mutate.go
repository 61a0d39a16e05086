package logarray

import "slices"

// insert places value at index within the subtree rooted at n and returns
// the new subtree root. An index equal to the left subtree's size lands at
// the front of n's own chunk rather than at the end of the left child.
func insert[T any](n *Node[T], index int, value T, chunkSize int) *Node[T] {
	if n == nil {
		return newNode([]T{value})
	}

	leftSize := sizeOf(n.left)
	switch {
	case index < leftSize:
		n.left = insert(n.left, index, value, chunkSize)
	case index <= leftSize+len(n.buffer):
		n.buffer = slices.Insert(n.buffer, index-leftSize, value)
		if len(n.buffer) > chunkSize {
			n.split()
		}
	default:
		n.right = insert(n.right, index-leftSize-len(n.buffer), value, chunkSize)
	}

	return balance(n)
}

// split moves the upper half of an overflowing chunk into a new node that
// sits between n's chunk and the rest of n's right subtree.
func (n *Node[T]) split() {
	mid := len(n.buffer) / 2
	upper := slices.Clone(n.buffer[mid:])

	clear(n.buffer[mid:])
	n.buffer = n.buffer[:mid]

	n.right = attachLeftmost(n.right, newNode(upper))
}

// attachLeftmost hangs leaf in front of every element of n and returns the
// rebalanced subtree root.
func attachLeftmost[T any](n, leaf *Node[T]) *Node[T] {
	if n == nil {
		return leaf
	}
	n.left = attachLeftmost(n.left, leaf)
	return balance(n)
}

// remove deletes the element at index from the subtree rooted at n. It
// returns the new subtree root, which is nil once the last element is gone,
// and the removed element.
func remove[T any](n *Node[T], index int) (*Node[T], T) {
	if n == nil {
		panic(&RangeError{Op: "remove", Index: index, Len: 0})
	}

	var removed T
	leftSize := sizeOf(n.left)
	switch {
	case index < leftSize:
		n.left, removed = remove(n.left, index)
	case index < leftSize+len(n.buffer):
		offset := index - leftSize
		removed = n.buffer[offset]
		n.buffer = slices.Delete(n.buffer, offset, offset+1)
		if len(n.buffer) == 0 {
			return merge(n.left, n.right), removed
		}
	default:
		n.right, removed = remove(n.right, index-leftSize-len(n.buffer))
	}

	return balance(n), removed
}

// merge joins two subtrees whose heights differ by at most one, where every
// element of left precedes every element of right. The leftmost node of
// right becomes the new root.
func merge[T any](left, right *Node[T]) *Node[T] {
	if left == nil {
		return right
	}
	if right == nil {
		return left
	}

	rest, successor := detachMin(right)
	successor.left = left
	successor.right = rest
	return balance(successor)
}

// detachMin unlinks the leftmost node of the subtree rooted at n. It returns
// the rebalanced remainder and the detached node.
func detachMin[T any](n *Node[T]) (rest, first *Node[T]) {
	if n.left == nil {
		rest = n.right
		n.right = nil
		n.update()
		return rest, n
	}
	n.left, first = detachMin(n.left)
	return balance(n), first
}

// build creates a perfectly balanced subtree over chunks.
func build[T any](chunks [][]T) *Node[T] {
	if len(chunks) == 0 {
		return nil
	}
	mid := len(chunks) / 2
	n := newNode(chunks[mid])
	n.left = build(chunks[:mid])
	n.right = build(chunks[mid+1:])
	n.update()
	return n
}
