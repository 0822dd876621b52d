package iterators

import (
	"github.com/Freelancerhu/trx"
)

// BestIf searches for the best value among those the qualifies predicate returns true for,
// then closes the iterator.
//
// A value becomes the new best when it qualifies
// and isBetterThan reports it better than the best seen so far.
// Since only a strictly better value replaces the incumbent,
// equivalent values keep the earliest seen one.
//
// The found flag reports whether any value qualified.
// When the iterator fails, the failure is returned and the found flag is false.
func BestIf[V any](i trx.Iterator[V], qualifies func(V) bool, isBetterThan func(a, b V) bool) (best V, found bool, err error) {
	defer func() {
		cErr := i.Close()

		if err == nil {
			err = cErr
		}
	}()

	for i.Next() {
		v := i.Value()
		if !qualifies(v) {
			continue
		}
		if !found || isBetterThan(v, best) {
			best = v
			found = true
		}
	}

	if err := i.Err(); err != nil {
		var zero V
		return zero, false, err
	}

	return best, found, nil
}
