package iterators

import (
	"github.com/Freelancerhu/trx"
)

func NewMock[V any](i trx.Iterator[V]) *Mock[V] {
	return &Mock[V]{
		Iterator:  i,
		StubValue: i.Value,
		StubClose: i.Close,
		StubNext:  i.Next,
		StubErr:   i.Err,
	}
}

type Mock[V any] struct {
	Iterator  trx.Iterator[V]
	StubValue func() V
	StubClose func() error
	StubNext  func() bool
	StubErr   func() error
}

// wrapper

func (m *Mock[V]) Close() error {
	return m.StubClose()
}

func (m *Mock[V]) Next() bool {
	return m.StubNext()
}

func (m *Mock[V]) Err() error {
	return m.StubErr()
}

func (m *Mock[V]) Value() V {
	return m.StubValue()
}

// Reseting stubs

func (m *Mock[V]) ResetClose() {
	m.StubClose = m.Iterator.Close
}

func (m *Mock[V]) ResetNext() {
	m.StubNext = m.Iterator.Next
}

func (m *Mock[V]) ResetErr() {
	m.StubErr = m.Iterator.Err
}

func (m *Mock[V]) ResetValue() {
	m.StubValue = m.Iterator.Value
}
