package util

import "sort"

// Ordered is the set of types that can be sorted with `<`.
type Ordered interface {
	~int | ~int64 | ~float64 | ~string
}

// Contains returns whether the given slice contains the given element.
func Contains[T comparable](slice []T, elem T) bool {
	for _, x := range slice {
		if x == elem {
			return true
		}
	}

	return false
}

// Map applies a function to the given slice and returns the transformed slice.
func Map[T, R any](slice []T, f func(T) R) []R {
	mSlice := make([]R, len(slice))

	for i, elem := range slice {
		mSlice[i] = f(elem)
	}

	return mSlice
}

// SortedSet returns the distinct elements of a slice in ascending order.  The
// given slice is not modified.
func SortedSet[T Ordered](slice []T) []T {
	if len(slice) == 0 {
		return nil
	}

	set := make([]T, len(slice))
	copy(set, slice)
	sort.Slice(set, func(i, j int) bool { return set[i] < set[j] })

	n := 1
	for _, elem := range set[1:] {
		if elem != set[n-1] {
			set[n] = elem
			n++
		}
	}

	return set[:n]
}
