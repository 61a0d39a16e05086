package logarray

import "fmt"

// Stats summarizes the shape of an array's tree.
type Stats struct {
	Len       int // elements
	Nodes     int // chunks
	Height    int // 0 for an empty array
	ChunkSize int
	MinFill   int // smallest chunk, 0 for an empty array
	MaxFill   int // largest chunk
}

// Fill returns the average chunk occupancy as a fraction of ChunkSize.
func (s Stats) Fill() float64 {
	if s.Nodes == 0 || s.ChunkSize == 0 {
		return 0
	}
	return float64(s.Len) / float64(s.Nodes*s.ChunkSize)
}

// Stats walks the tree and reports its shape.
func (a *Array[T]) Stats() Stats {
	s := Stats{
		Len:       a.Len(),
		Height:    heightOf(a.root),
		ChunkSize: a.ChunkSize(),
	}

	var walk func(n *Node[T])
	walk = func(n *Node[T]) {
		if n == nil {
			return
		}
		s.Nodes++
		if s.Nodes == 1 || len(n.buffer) < s.MinFill {
			s.MinFill = len(n.buffer)
		}
		s.MaxFill = max(s.MaxFill, len(n.buffer))
		walk(n.left)
		walk(n.right)
	}
	walk(a.root)
	return s
}

// Check verifies the structural invariants of the whole tree: cached sizes
// and heights match a bottom-up recount, sibling heights differ by at most
// one, and every chunk holds between 1 and ChunkSize elements. Violations
// are reported as errors wrapping ErrInvariant.
func (a *Array[T]) Check() error {
	_, _, err := a.check(a.root, "root")
	return err
}

// check returns the recounted size and height of the subtree at n.
func (a *Array[T]) check(n *Node[T], path string) (size, height int, err error) {
	if n == nil {
		return 0, 0, nil
	}

	if len(n.buffer) == 0 {
		return 0, 0, fmt.Errorf("%w: %s: empty chunk", ErrInvariant, path)
	}
	if len(n.buffer) > a.ChunkSize() {
		return 0, 0, fmt.Errorf("%w: %s: chunk holds %d elements, limit %d", ErrInvariant, path, len(n.buffer), a.ChunkSize())
	}

	leftSize, leftHeight, err := a.check(n.left, path+".left")
	if err != nil {
		return 0, 0, err
	}
	rightSize, rightHeight, err := a.check(n.right, path+".right")
	if err != nil {
		return 0, 0, err
	}

	size = leftSize + len(n.buffer) + rightSize
	height = 1 + max(leftHeight, rightHeight)

	if n.size != size {
		return 0, 0, fmt.Errorf("%w: %s: cached size %d, counted %d", ErrInvariant, path, n.size, size)
	}
	if n.height != height {
		return 0, 0, fmt.Errorf("%w: %s: cached height %d, counted %d", ErrInvariant, path, n.height, height)
	}
	if bf := leftHeight - rightHeight; bf < -1 || bf > 1 {
		return 0, 0, fmt.Errorf("%w: %s: balance factor %d", ErrInvariant, path, bf)
	}
	return size, height, nil
}
