package iterators

// Empty iterator is used to represent nil result with Null object pattern
func Empty[V any]() *EmptyIter[V] {
	return &EmptyIter[V]{}
}

// EmptyIter iterator can help achieve Null Object Pattern when no value is logically expected and iterator should be returned
type EmptyIter[V any] struct{}

func (i *EmptyIter[V]) Close() error {
	return nil
}

func (i *EmptyIter[V]) Next() bool {
	return false
}

func (i *EmptyIter[V]) Err() error {
	return nil
}

func (i *EmptyIter[V]) Value() V {
	var v V
	return v
}
