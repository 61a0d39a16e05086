package logarray

// Array is an ordered, mutable sequence with O(log n) indexed access,
// insertion, and deletion. The zero value is an empty array with
// DefaultChunkSize.
type Array[T any] struct {
	root      *Node[T]
	chunkSize int
}

// Position identifies an element by the node that stores it and its offset
// inside that node's chunk.
type Position[T any] struct {
	Node   *Node[T]
	Offset int
}

// Value returns the element the position refers to.
func (p Position[T]) Value() T {
	return p.Node.Value(p.Offset)
}

// New creates an empty array.
func New[T any](opts ...Option) (*Array[T], error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	return &Array[T]{chunkSize: o.chunkSize}, nil
}

// From creates an array holding a copy of values, in order. The tree is
// built directly from full chunks instead of by repeated insertion.
func From[T any](values []T, opts ...Option) (*Array[T], error) {
	a, err := New[T](opts...)
	if err != nil {
		return nil, err
	}

	chunks := make([][]T, 0, (len(values)+a.chunkSize-1)/a.chunkSize)
	for i := 0; i < len(values); i += a.chunkSize {
		end := min(i+a.chunkSize, len(values))
		chunk := make([]T, end-i)
		copy(chunk, values[i:end])
		chunks = append(chunks, chunk)
	}
	a.root = build(chunks)
	return a, nil
}

// Len returns the number of elements.
func (a *Array[T]) Len() int {
	return sizeOf(a.root)
}

// ChunkSize returns the maximum number of elements stored in one node.
func (a *Array[T]) ChunkSize() int {
	if a.chunkSize == 0 {
		return DefaultChunkSize
	}
	return a.chunkSize
}

// Get returns the element at index.
// It returns a *RangeError if index is not in [0, Len()).
func (a *Array[T]) Get(index int) (T, error) {
	if index < 0 || index >= a.Len() {
		var zero T
		return zero, &RangeError{Op: "get", Index: index, Len: a.Len()}
	}
	n, offset := find(a.root, index)
	return n.buffer[offset], nil
}

// Find returns the element at index and true, or the zero value and false
// when index is out of range.
func (a *Array[T]) Find(index int) (T, bool) {
	v, err := a.Get(index)
	return v, err == nil
}

// Set replaces the element at index.
// It returns a *RangeError if index is not in [0, Len()).
func (a *Array[T]) Set(index int, value T) error {
	if index < 0 || index >= a.Len() {
		return &RangeError{Op: "set", Index: index, Len: a.Len()}
	}
	n, offset := find(a.root, index)
	n.buffer[offset] = value
	return nil
}

// Insert places value at index, shifting later elements up by one.
// Index may equal Len() to append. It returns a *RangeError if index is not
// in [0, Len()].
func (a *Array[T]) Insert(index int, value T) error {
	if index < 0 || index > a.Len() {
		return &RangeError{Op: "insert", Index: index, Len: a.Len()}
	}
	a.root = insert(a.root, index, value, a.ChunkSize())
	return nil
}

// Remove deletes and returns the element at index, shifting later elements
// down by one. It returns a *RangeError if index is not in [0, Len()).
func (a *Array[T]) Remove(index int) (T, error) {
	if index < 0 || index >= a.Len() {
		var zero T
		return zero, &RangeError{Op: "remove", Index: index, Len: a.Len()}
	}
	var removed T
	a.root, removed = remove(a.root, index)
	return removed, nil
}

// Delete removes the element at index and reports whether it did.
// Out-of-range indexes leave the array untouched and return false.
func (a *Array[T]) Delete(index int) bool {
	if index < 0 || index >= a.Len() {
		return false
	}
	a.root, _ = remove(a.root, index)
	return true
}

// Push appends values in order and returns how many were added.
func (a *Array[T]) Push(values ...T) int {
	for _, v := range values {
		a.root = insert(a.root, a.Len(), v, a.ChunkSize())
	}
	return len(values)
}

// Unshift inserts each value at index 0 in turn and returns how many were
// added. Later arguments end up in front: Unshift(1, 2) on [3] yields
// [2 1 3].
func (a *Array[T]) Unshift(values ...T) int {
	for _, v := range values {
		a.root = insert(a.root, 0, v, a.ChunkSize())
	}
	return len(values)
}

// Pop removes and returns the last element. It returns false when the
// array is empty.
func (a *Array[T]) Pop() (T, bool) {
	n := a.Len()
	if n == 0 {
		var zero T
		return zero, false
	}
	var last T
	a.root, last = remove(a.root, n-1)
	return last, true
}

// Shift removes and returns the first element. It returns false when the
// array is empty.
func (a *Array[T]) Shift() (T, bool) {
	if a.Len() == 0 {
		var zero T
		return zero, false
	}
	var first T
	a.root, first = remove(a.root, 0)
	return first, true
}

// At returns the node and offset holding the element at index, or false
// for an empty array. Apart from emptiness it does not check bounds: an
// out-of-range index on a non-empty array panics.
//
// The returned node belongs to the array and is only valid until the next
// mutation.
func (a *Array[T]) At(index int) (Position[T], bool) {
	if a.root == nil {
		return Position[T]{}, false
	}
	n, offset := find(a.root, index)
	return Position[T]{Node: n, Offset: offset}, true
}

// Clear removes every element.
func (a *Array[T]) Clear() {
	a.root = nil
}

// Clone returns an independent deep copy with the same chunk size.
func (a *Array[T]) Clone() *Array[T] {
	return &Array[T]{
		root:      a.root.clone(),
		chunkSize: a.ChunkSize(),
	}
}

// ToSlice returns the elements in order as a new slice.
func (a *Array[T]) ToSlice() []T {
	return a.AppendTo(make([]T, 0, a.Len()))
}

// AppendTo appends the elements in order to dst and returns the extended
// slice.
func (a *Array[T]) AppendTo(dst []T) []T {
	var walk func(n *Node[T])
	walk = func(n *Node[T]) {
		if n == nil {
			return
		}
		walk(n.left)
		dst = append(dst, n.buffer...)
		walk(n.right)
	}
	walk(a.root)
	return dst
}
