// Package sliceutil holds small generic helpers over plain slices.
package sliceutil

// Tail splits s into everything but its last element and the last element.
// For an empty slice it returns an empty prefix, the zero value, and false.
func Tail[T any](s []T) (prefix []T, last T, ok bool) {
	if len(s) == 0 {
		return s[:0:0], last, false
	}
	return s[: len(s)-1 : len(s)-1], s[len(s)-1], true
}

// FindLastIndex returns the index of the last element of s for which pred
// reports true, or -1 if there is none.
func FindLastIndex[T any](s []T, pred func(value T, index int, s []T) bool) int {
	return FindLastIndexFrom(s, pred, len(s)-1)
}

// FindLastIndexFrom is FindLastIndex that starts scanning backwards at from.
// A from beyond the end is clamped to the last index; a negative from finds
// nothing.
func FindLastIndexFrom[T any](s []T, pred func(value T, index int, s []T) bool, from int) int {
	for i := min(from, len(s)-1); i >= 0; i-- {
		if pred(s[i], i, s) {
			return i
		}
	}
	return -1
}
