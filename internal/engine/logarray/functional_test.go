package logarray

import (
	"slices"
	"strconv"
	"testing"
)

func TestMap(t *testing.T) {
	a := newInts(t)
	a.Push(1, 2, 3)

	doubled := Map(a, func(x, _ int, _ *Array[int]) int { return x * 2 })

	if got := doubled.ToSlice(); !slices.Equal(got, []int{2, 4, 6}) {
		t.Errorf("Map = %v, want [2 4 6]", got)
	}
	if got := a.ToSlice(); !slices.Equal(got, []int{1, 2, 3}) {
		t.Errorf("Map changed the source: %v", got)
	}
}

func TestMapChangesType(t *testing.T) {
	a := newInts(t, WithChunkSize(4))
	a.Push(sequence(10)...)

	labels := Map(a, func(x, i int, arr *Array[int]) string {
		if arr != a {
			t.Error("callback received a different array")
		}
		return strconv.Itoa(x) + "@" + strconv.Itoa(i)
	})

	if labels.Len() != 10 || labels.ChunkSize() != 4 {
		t.Errorf("len/chunk = %d/%d, want 10/4", labels.Len(), labels.ChunkSize())
	}
	if v, _ := labels.Get(7); v != "7@7" {
		t.Errorf("Get(7) = %q", v)
	}
}

func TestFilter(t *testing.T) {
	a := newInts(t, WithChunkSize(5))
	a.Push(1, 2, 3, 4)

	even := a.Filter(func(x, _ int, _ *Array[int]) bool { return x%2 == 0 })

	if got := even.ToSlice(); !slices.Equal(got, []int{2, 4}) {
		t.Errorf("Filter = %v, want [2 4]", got)
	}
	if even.ChunkSize() != 5 {
		t.Errorf("Filter result chunk size = %d, want 5", even.ChunkSize())
	}
	if a.Len() != 4 {
		t.Errorf("Filter changed the source length to %d", a.Len())
	}
}

func TestReduce(t *testing.T) {
	a := newInts(t)
	a.Push(1, 2, 3)

	sum := Reduce(a, func(acc, x, _ int, _ *Array[int]) int { return acc + x }, 0)
	if sum != 6 {
		t.Errorf("Reduce sum = %d, want 6", sum)
	}

	joined := Reduce(a, func(acc string, x, _ int, _ *Array[int]) string { return acc + strconv.Itoa(x) }, "")
	if joined != "123" {
		t.Errorf("Reduce join = %q, want \"123\"", joined)
	}
}

func TestForEach(t *testing.T) {
	a := newInts(t)
	a.Push(1, 2, 3)

	var values, indexes []int
	a.ForEach(func(x, i int, _ *Array[int]) {
		values = append(values, x)
		indexes = append(indexes, i)
	})
	if !slices.Equal(values, []int{1, 2, 3}) || !slices.Equal(indexes, []int{0, 1, 2}) {
		t.Errorf("ForEach visited %v at %v", values, indexes)
	}
}

type scale struct{ factor int }

func TestWithVariantsPassContext(t *testing.T) {
	a := newInts(t)
	a.Push(1, 2, 3)
	ctx := &scale{factor: 10}

	mapped := MapWith(a, ctx, func(c *scale, x, _ int, _ *Array[int]) int { return x * c.factor })
	if got := mapped.ToSlice(); !slices.Equal(got, []int{10, 20, 30}) {
		t.Errorf("MapWith = %v", got)
	}

	kept := FilterWith(a, ctx, func(c *scale, x, _ int, _ *Array[int]) bool { return x*c.factor > 15 })
	if got := kept.ToSlice(); !slices.Equal(got, []int{2, 3}) {
		t.Errorf("FilterWith = %v", got)
	}

	total := ReduceWith(a, ctx, func(c *scale, acc, x, _ int, _ *Array[int]) int { return acc + x*c.factor }, 0)
	if total != 60 {
		t.Errorf("ReduceWith = %d, want 60", total)
	}

	var seen []int
	ForEachWith(a, ctx, func(c *scale, x, _ int, _ *Array[int]) { seen = append(seen, x*c.factor) })
	if !slices.Equal(seen, []int{10, 20, 30}) {
		t.Errorf("ForEachWith saw %v", seen)
	}
}
