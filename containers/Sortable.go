// Package containers contains ordered in-memory containers and the in-place sorting over them.
package containers

import "golang.org/x/exp/constraints"

// Sortable expresses the capability of a container to reorder its own elements in place.
// Each container type advertises its reordering strategy through this method,
// node based containers relink their nodes, random access containers move their elements,
// so the strategy selection is resolved by the container's method set and not by runtime type inspection.
type Sortable[V any] interface {
	// SortFunc reorders the elements of the container by the received isLess strict weak ordering.
	SortFunc(isLess func(a, b V) bool)
}

// Sort reorders the elements of the received container into ascending order.
//
// After the call the container holds the same elements,
// and no element compares greater than the element that follows it.
func Sort[V constraints.Ordered](c Sortable[V]) {
	c.SortFunc(func(a, b V) bool { return a < b })
}

// SortFunc reorders the elements of the received container by the received isLess ordering.
//
// isLess must be a strict weak ordering.
// When it is not, the elements end up in an unspecified order, but the container stays intact.
// A panicking isLess propagates to the caller.
func SortFunc[V any](c Sortable[V], isLess func(a, b V) bool) {
	c.SortFunc(isLess)
}
