package iterators

import (
	"github.com/Freelancerhu/trx"
)

// First returns the first value of the iterator and closes the iterator.
// When the iterator has no value at all, ErrNotFound is returned.
func First[V any](i trx.Iterator[V]) (value V, err error) {
	defer func() {
		cErr := i.Close()

		if err == nil {
			err = cErr
		}
	}()

	if !i.Next() {
		if err := i.Err(); err != nil {
			return value, err
		}
		return value, ErrNotFound
	}

	return i.Value(), i.Err()
}
