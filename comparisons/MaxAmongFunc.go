package comparisons

// MaxAmongFunc returns the maximum among the arguments under the received isLess ordering.
// When several arguments are equivalent under the ordering,
// the leftmost of them is returned,
// which the strict comparison guarantees since an equivalent later argument never replaces the incumbent.
func MaxAmongFunc[V any](isLess func(a, b V) bool, first V, rest ...V) V {
	best := first
	for _, v := range rest {
		if isLess(best, v) {
			best = v
		}
	}
	return best
}
