// Package search contains predicate driven element searches over slices.
package search

// BestIf searches for the best element among those for which the qualifies predicate returns true.
//
// The slice is scanned left to right, and an element becomes the new best
// when it qualifies and isBetterThan reports it better than the best so far.
// Because only a strictly better element replaces the incumbent,
// equivalent elements keep the leftmost one.
//
// The qualifying elements don't need to form a contiguous run,
// the search is defined over the filtered subsequence.
//
// It returns the index of the best element,
// or -1 when no element qualifies, including the empty slice case.
//
// The search costs O(n) predicate and comparator calls and O(1) additional space.
func BestIf[V any](values []V, qualifies func(V) bool, isBetterThan func(a, b V) bool) int {
	best := -1
	for i, v := range values {
		if !qualifies(v) {
			continue
		}
		if best == -1 || isBetterThan(v, values[best]) {
			best = i
		}
	}
	return best
}
