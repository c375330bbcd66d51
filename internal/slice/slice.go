package slice

import (
	"cmp"
	"slices"
)

// Map applies the given function to each element in the input list and returns a new list
// containing the results. Returns an empty list if the input list is empty or if the provided
// function is nil.
func Map[T, R any](list []T, f func(t T) R) []R {
	if f == nil {
		return make([]R, 0)
	}

	output := make([]R, 0, len(list))
	for idx := range list {
		output = append(output, f(list[idx]))
	}

	return output
}

// Filter returns a new slice containing the elements of the input slice that pass the provided
// filter function. A nil filter function keeps every element.
func Filter[T any](list []T, filterFn func(v T) bool) []T {
	output := make([]T, 0, len(list))
	for _, v := range list {
		if filterFn == nil || filterFn(v) {
			output = append(output, v)
		}
	}

	return output
}

// Count returns the number of elements that satisfy f.
func Count[T any](list []T, f func(t T) bool) int {
	var n int
	for idx := range list {
		if f(list[idx]) {
			n++
		}
	}

	return n
}

// Every reports whether all elements satisfy f. It is true for an empty list.
func Every[T any](list []T, f func(t T) bool) bool {
	for idx := range list {
		if !f(list[idx]) {
			return false
		}
	}

	return true
}

// Flat flattens a 2-dimensional slice into one-dimensional slice.
func Flat[T any](list [][]T) []T {
	t := make([]T, 0, len(list))
	for idx := range list {
		t = append(t, list[idx]...)
	}

	return t
}

// SortedKeys returns the keys of m in ascending order.
func SortedKeys[K cmp.Ordered, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	slices.Sort(keys)

	return keys
}
