package logarray

import "iter"

// Iterator walks an array in order, one element per call to Next.
// Mutating the array while an iterator is live gives undefined results.
type Iterator[T any] struct {
	stack  []*Node[T] // ancestors whose chunk has not been visited yet
	node   *Node[T]   // node whose chunk is being visited
	offset int        // offset of the current element in node.buffer
	index  int
}

// Iter returns a fresh iterator positioned before the first element.
func (a *Array[T]) Iter() *Iterator[T] {
	it := &Iterator[T]{
		stack: make([]*Node[T], 0, heightOf(a.root)),
		index: -1,
	}
	it.pushLeft(a.root)
	return it
}

// pushLeft stacks n and its left spine.
func (it *Iterator[T]) pushLeft(n *Node[T]) {
	for n != nil {
		it.stack = append(it.stack, n)
		n = n.left
	}
}

// Next advances to the next element.
// Returns true if there is an element, false if iteration is complete.
func (it *Iterator[T]) Next() bool {
	if it.node != nil && it.offset+1 < len(it.node.buffer) {
		it.offset++
		it.index++
		return true
	}

	// Done with this chunk; everything in its right subtree comes next.
	if it.node != nil {
		it.pushLeft(it.node.right)
		it.node = nil
	}

	if len(it.stack) == 0 {
		return false
	}

	it.node = it.stack[len(it.stack)-1]
	it.stack = it.stack[:len(it.stack)-1]
	it.offset = 0
	it.index++
	return true
}

// Value returns the current element.
func (it *Iterator[T]) Value() T {
	return it.node.buffer[it.offset]
}

// Index returns the index of the current element.
func (it *Iterator[T]) Index() int {
	return it.index
}

// All returns an iterator over index/element pairs in order.
func (a *Array[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		it := a.Iter()
		for it.Next() {
			if !yield(it.Index(), it.Value()) {
				return
			}
		}
	}
}

// Values returns an iterator over the elements in order.
func (a *Array[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		it := a.Iter()
		for it.Next() {
			if !yield(it.Value()) {
				return
			}
		}
	}
}

// Backward returns an iterator over index/element pairs from last to first.
func (a *Array[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		index := a.Len()
		var walk func(n *Node[T]) bool
		walk = func(n *Node[T]) bool {
			if n == nil {
				return true
			}
			if !walk(n.right) {
				return false
			}
			for i := len(n.buffer) - 1; i >= 0; i-- {
				index--
				if !yield(index, n.buffer[i]) {
					return false
				}
			}
			return walk(n.left)
		}
		walk(a.root)
	}
}
