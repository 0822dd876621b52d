package containers

import (
	"github.com/Freelancerhu/trx"
)

// NewList returns a List populated with the received values in order.
func NewList[V any](values ...V) *List[V] {
	var l List[V]
	for _, v := range values {
		l.PushBack(v)
	}
	return &l
}

// List is an ordered container whose elements live in independently allocated nodes connected by links.
// The zero value is an empty list, ready to use.
//
// List reorders by relinking its nodes, the element values are never moved or copied,
// and its sorting is stable, equal elements keep their relative order.
type List[V any] struct {
	head, tail *listNode[V]
	length     int
}

type listNode[V any] struct {
	value      V
	prev, next *listNode[V]
}

// Len returns the number of elements in the list.
func (l *List[V]) Len() int { return l.length }

// PushBack appends the received value after the last element of the list.
func (l *List[V]) PushBack(v V) {
	n := &listNode[V]{value: v, prev: l.tail}
	if l.tail != nil {
		l.tail.next = n
	} else {
		l.head = n
	}
	l.tail = n
	l.length++
}

// PushFront inserts the received value before the first element of the list.
func (l *List[V]) PushFront(v V) {
	n := &listNode[V]{value: v, next: l.head}
	if l.head != nil {
		l.head.prev = n
	} else {
		l.tail = n
	}
	l.head = n
	l.length++
}

// Front returns the first element of the list,
// or false when the list is empty.
func (l *List[V]) Front() (V, bool) {
	if l.head == nil {
		var zero V
		return zero, false
	}
	return l.head.value, true
}

// Back returns the last element of the list,
// or false when the list is empty.
func (l *List[V]) Back() (V, bool) {
	if l.tail == nil {
		var zero V
		return zero, false
	}
	return l.tail.value, true
}

// PopFront unlinks and returns the first element of the list,
// or false when the list is empty.
func (l *List[V]) PopFront() (V, bool) {
	if l.head == nil {
		var zero V
		return zero, false
	}
	n := l.head
	l.head = n.next
	if l.head != nil {
		l.head.prev = nil
	} else {
		l.tail = nil
	}
	n.next = nil
	l.length--
	return n.value, true
}

// Values returns the elements of the list as a freshly allocated slice.
func (l *List[V]) Values() []V {
	vs := make([]V, 0, l.length)
	for n := l.head; n != nil; n = n.next {
		vs = append(vs, n.value)
	}
	return vs
}

// Iterate returns an iterator that traverses the list from the front.
// Relinking the list while a traversal is in progress is the caller's synchronization problem.
func (l *List[V]) Iterate() trx.Iterator[V] {
	return &listIter[V]{next: l.head}
}

type listIter[V any] struct {
	next    *listNode[V]
	current *listNode[V]
	closed  bool
}

func (i *listIter[V]) Close() error {
	i.closed = true
	return nil
}

func (i *listIter[V]) Err() error {
	return nil
}

func (i *listIter[V]) Next() bool {
	if i.closed || i.next == nil {
		return false
	}
	i.current = i.next
	i.next = i.next.next
	return true
}

func (i *listIter[V]) Value() V {
	if i.current == nil {
		var zero V
		return zero
	}
	return i.current.value
}

// SortFunc reorders the elements of the list by the received isLess ordering.
// The reordering happens purely by relinking the nodes with a merge sort,
// which keeps the relative order of equal elements.
func (l *List[V]) SortFunc(isLess func(a, b V) bool) {
	if l.length < 2 {
		return
	}

	// The merge sort works on the next links alone,
	// the prev links and the tail are restored in a single pass afterwards.
	head := mergeSortNodes(l.head, isLess)

	head.prev = nil
	l.head = head
	n := head
	for n.next != nil {
		n.next.prev = n
		n = n.next
	}
	l.tail = n
}

func mergeSortNodes[V any](head *listNode[V], isLess func(a, b V) bool) *listNode[V] {
	if head == nil || head.next == nil {
		return head
	}

	// cut the chain in half with the slow/fast runner
	slow, fast := head, head.next
	for fast != nil && fast.next != nil {
		slow = slow.next
		fast = fast.next.next
	}
	second := slow.next
	slow.next = nil

	return mergeNodes(mergeSortNodes(head, isLess), mergeSortNodes(second, isLess), isLess)
}

func mergeNodes[V any](a, b *listNode[V], isLess func(a, b V) bool) *listNode[V] {
	var head, tail *listNode[V]
	link := func(n *listNode[V]) {
		if tail == nil {
			head = n
		} else {
			tail.next = n
		}
		tail = n
	}

	for a != nil && b != nil {
		// taking from the first chain on equivalence keeps the sort stable
		if isLess(b.value, a.value) {
			n := b
			b = b.next
			link(n)
		} else {
			n := a
			a = a.next
			link(n)
		}
	}
	if a != nil {
		tail.next = a
	}
	if b != nil {
		tail.next = b
	}
	return head
}
