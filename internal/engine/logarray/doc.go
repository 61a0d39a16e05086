// Package logarray provides a mutable sequence container with logarithmic
// random access, insertion, and deletion.
//
// Elements are stored in small contiguous chunks. Each chunk lives in one node
// of an AVL-balanced binary tree, and every node caches the element count and
// height of its subtree. Index lookups descend the tree by comparing against
// cached left-subtree sizes, so Get, Set, Insert, and Remove all run in
// O(log n) plus O(chunkSize) work inside a single chunk.
//
// Key features:
//   - O(log n) indexed access, insertion, and deletion anywhere in the sequence
//   - Chunked storage keeps the tree small and traversal cache friendly
//   - Sequence helpers: Push, Pop, Shift, Unshift, Map, Filter, Reduce, ForEach
//   - Lazy, restartable iteration via iter.Seq and an explicit Iterator
//
// Basic usage:
//
//	a, _ := logarray.New[int]()
//	a.Push(1, 2, 3)          // [1 2 3]
//	_ = a.Insert(1, 99)      // [1 99 2 3]
//	v, _ := a.Remove(1)      // v == 99, [1 2 3]
//	doubled := logarray.Map(a, func(x, _ int, _ *logarray.Array[int]) int {
//		return x * 2
//	})                        // [2 4 6]
//
// An Array is not safe for concurrent use. Callers that share one across
// goroutines must serialize access themselves.
package logarray
