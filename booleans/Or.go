package booleans

// Or returns the logical disjunction of all the received values.
// When called without arguments it returns false, since false is the identity element of the disjunction.
// The reduction short circuits on the first true value.
func Or(values ...bool) bool {
	for _, v := range values {
		if v {
			return true
		}
	}
	return false
}
