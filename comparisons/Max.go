package comparisons

import "golang.org/x/exp/constraints"

// Max returns the bigger of the two received values.
func Max[V constraints.Ordered](a, b V) V {
	if a > b {
		return a
	}
	return b
}
