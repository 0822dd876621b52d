package iterators

import (
	"github.com/Freelancerhu/trx"
)

// Collect drains the iterator into a freshly allocated slice and closes the iterator.
func Collect[V any](i trx.Iterator[V]) (vs []V, err error) {
	defer func() {
		closeErr := i.Close()
		if err == nil {
			err = closeErr
		}
	}()

	for i.Next() {
		vs = append(vs, i.Value())
	}

	return vs, i.Err()
}
