// Package booleans contains variadic reductions over boolean values.
package booleans

// And returns the logical conjunction of all the received values.
// When called without arguments it returns true, since true is the identity element of the conjunction.
// The reduction short circuits on the first false value.
func And(values ...bool) bool {
	for _, v := range values {
		if !v {
			return false
		}
	}
	return true
}
