package comparisons

import "golang.org/x/exp/constraints"

// MaxAmong returns the maximum among the first argument and the rest of the arguments.
// Since every argument belongs to the same type parameter,
// mixing argument types is rejected at compile time.
// When several arguments share the maximum value, the leftmost of them is returned.
func MaxAmong[V constraints.Ordered](first V, rest ...V) V {
	best := first
	for _, v := range rest {
		if v > best {
			best = v
		}
	}
	return best
}
