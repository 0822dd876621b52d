package iterators

// NewSlice returns an iterator that traverses the received slice from the front.
func NewSlice[V any](slice []V) *SliceIter[V] {
	return &SliceIter[V]{Slice: slice}
}

type SliceIter[V any] struct {
	Slice []V

	closed bool
	index  int
	value  V
}

func (i *SliceIter[V]) Close() error {
	i.closed = true
	return nil
}

func (i *SliceIter[V]) Err() error {
	return nil
}

func (i *SliceIter[V]) Next() bool {
	if i.closed {
		return false
	}

	if len(i.Slice) <= i.index {
		return false
	}

	i.value = i.Slice[i.index]
	i.index++
	return true
}

func (i *SliceIter[V]) Value() V {
	return i.value
}
