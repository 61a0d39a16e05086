package logarray

// Map returns a new array holding fn applied to every element of a, in
// order. The result uses a's chunk size; a is not modified.
func Map[T, U any](a *Array[T], fn func(value T, index int, arr *Array[T]) U) *Array[U] {
	out := &Array[U]{chunkSize: a.ChunkSize()}
	it := a.Iter()
	for it.Next() {
		out.Push(fn(it.Value(), it.Index(), a))
	}
	return out
}

// MapWith is Map with a caller-supplied context passed to every call of fn.
func MapWith[T, U, C any](a *Array[T], ctx C, fn func(ctx C, value T, index int, arr *Array[T]) U) *Array[U] {
	return Map(a, func(value T, index int, arr *Array[T]) U {
		return fn(ctx, value, index, arr)
	})
}

// Filter returns a new array holding the elements for which pred reports
// true, in order. The result uses a's chunk size; a is not modified.
func (a *Array[T]) Filter(pred func(value T, index int, arr *Array[T]) bool) *Array[T] {
	out := &Array[T]{chunkSize: a.ChunkSize()}
	it := a.Iter()
	for it.Next() {
		if v := it.Value(); pred(v, it.Index(), a) {
			out.Push(v)
		}
	}
	return out
}

// FilterWith is Filter with a caller-supplied context passed to every call
// of pred.
func FilterWith[T, C any](a *Array[T], ctx C, pred func(ctx C, value T, index int, arr *Array[T]) bool) *Array[T] {
	return a.Filter(func(value T, index int, arr *Array[T]) bool {
		return pred(ctx, value, index, arr)
	})
}

// Reduce folds the elements of a, in order, into an accumulator that starts
// at init.
func Reduce[T, U any](a *Array[T], fn func(acc U, value T, index int, arr *Array[T]) U, init U) U {
	acc := init
	it := a.Iter()
	for it.Next() {
		acc = fn(acc, it.Value(), it.Index(), a)
	}
	return acc
}

// ReduceWith is Reduce with a caller-supplied context passed to every call
// of fn.
func ReduceWith[T, U, C any](a *Array[T], ctx C, fn func(ctx C, acc U, value T, index int, arr *Array[T]) U, init U) U {
	return Reduce(a, func(acc U, value T, index int, arr *Array[T]) U {
		return fn(ctx, acc, value, index, arr)
	}, init)
}

// ForEach calls fn for every element of a, in order.
func (a *Array[T]) ForEach(fn func(value T, index int, arr *Array[T])) {
	it := a.Iter()
	for it.Next() {
		fn(it.Value(), it.Index(), a)
	}
}

// ForEachWith is ForEach with a caller-supplied context passed to every
// call of fn.
func ForEachWith[T, C any](a *Array[T], ctx C, fn func(ctx C, value T, index int, arr *Array[T])) {
	a.ForEach(func(value T, index int, arr *Array[T]) {
		fn(ctx, value, index, arr)
	})
}
