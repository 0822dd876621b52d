package comparisons

import "golang.org/x/exp/constraints"

// Number is the constraint for the numeric types MaxAmongTrunc can convert between.
type Number interface {
	constraints.Integer | constraints.Float
}

// MaxAmongTrunc returns the maximum among the first argument and the rest of the arguments,
// after converting each of the rest to the type of the first argument.
// The conversion follows Go's conversion rules,
// so narrowing a floating point value to an integer type truncates it,
// and the caller is responsible for accepting the outcome of that.
// When several arguments share the maximum converted value, the leftmost of them is returned.
func MaxAmongTrunc[V, B Number](first V, rest ...B) V {
	best := first
	for _, b := range rest {
		if v := V(b); v > best {
			best = v
		}
	}
	return best
}
