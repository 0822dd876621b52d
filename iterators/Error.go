package iterators

// NewError returns an iterator that has no element and only returns the received error.
func NewError[V any](err error) *Error[V] {
	return &Error[V]{err}
}

// Error iterator can be used for returning an error wrapped with iterator interface.
// This can be used when a sequence source encounter an unexpected non recoverable error.
type Error[V any] struct {
	err error
}

func (i *Error[V]) Close() error {
	return nil
}

func (i *Error[V]) Next() bool {
	return false
}

func (i *Error[V]) Err() error {
	return i.err
}

func (i *Error[V]) Value() V {
	var v V
	return v
}
