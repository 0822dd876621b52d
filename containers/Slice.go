package containers

import "golang.org/x/exp/slices"

// Slice is an ordered container over contiguous, index addressable storage.
// It reorders by moving elements around within the same backing array,
// so sorting a Slice sorts the slice the caller created it from.
type Slice[V any] []V

// Len returns the number of elements in the slice.
func (s Slice[V]) Len() int { return len(s) }

// SortFunc reorders the elements of the slice in place by the received isLess ordering.
// The sort is the standard unstable comparison sort,
// equal elements may not keep their relative order.
func (s Slice[V]) SortFunc(isLess func(a, b V) bool) {
	slices.SortFunc([]V(s), isLess)
}
