// Package comparisons contains generic minimum/maximum selection utilities.
package comparisons

import "golang.org/x/exp/constraints"

// Min returns the smaller of the two received values.
func Min[V constraints.Ordered](a, b V) V {
	if a < b {
		return a
	}
	return b
}
