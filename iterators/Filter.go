package iterators

import (
	"github.com/Freelancerhu/trx"
)

// Filter returns an iterator that only yields the values the selector returns true for.
// The selected values don't need to be adjacent in the source iterator.
func Filter[V any](i trx.Iterator[V], selector func(V) bool) *FilterIter[V] {
	return &FilterIter[V]{src: i, match: selector}
}

type FilterIter[V any] struct {
	src   trx.Iterator[V]
	match func(V) bool

	value V
}

func (fi *FilterIter[V]) Close() error {
	return fi.src.Close()
}

func (fi *FilterIter[V]) Err() error {
	return fi.src.Err()
}

func (fi *FilterIter[V]) Next() bool {
	for fi.src.Next() {
		v := fi.src.Value()
		if fi.match(v) {
			fi.value = v
			return true
		}
	}
	return false
}

func (fi *FilterIter[V]) Value() V {
	return fi.value
}
