package sliceutil

import (
	"slices"
	"testing"
)

func TestTail(t *testing.T) {
	tests := []struct {
		name     string
		input    []int
		wantInit []int
		wantLast int
		wantOK   bool
	}{
		{"three elements", []int{1, 2, 3}, []int{1, 2}, 3, true},
		{"two elements", []int{1, 2}, []int{1}, 2, true},
		{"one element", []int{42}, []int{}, 42, true},
		{"empty", []int{}, []int{}, 0, false},
		{"nil", nil, []int{}, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prefix, last, ok := Tail(tt.input)
			if !slices.Equal(prefix, tt.wantInit) || last != tt.wantLast || ok != tt.wantOK {
				t.Errorf("Tail(%v) = %v, %d, %v; want %v, %d, %v",
					tt.input, prefix, last, ok, tt.wantInit, tt.wantLast, tt.wantOK)
			}
		})
	}
}

func TestTailDoesNotAliasAppend(t *testing.T) {
	s := []int{1, 2, 3}
	prefix, _, _ := Tail(s)
	_ = append(prefix, 99)
	if s[2] != 3 {
		t.Errorf("appending to the prefix overwrote the last element: %v", s)
	}
}

func TestFindLastIndex(t *testing.T) {
	arr := []int{1, 2, 3, 4, 5, 2}
	equals := func(want int) func(int, int, []int) bool {
		return func(v, _ int, _ []int) bool { return v == want }
	}

	tests := []struct {
		name string
		got  int
		want int
	}{
		{"last match", FindLastIndex(arr, equals(2)), 5},
		{"from index", FindLastIndexFrom(arr, equals(2), 4), 1},
		{"not found", FindLastIndex(arr, equals(99)), -1},
		{"empty", FindLastIndex([]int{}, func(int, int, []int) bool { return true }), -1},
		{"from zero", FindLastIndexFrom(arr, equals(1), 0), 0},
		{"from past end", FindLastIndexFrom(arr, equals(2), 100), 5},
		{"negative from", FindLastIndexFrom(arr, equals(1), -1), -1},
	}

	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s: got %d, want %d", tt.name, tt.got, tt.want)
		}
	}
}
