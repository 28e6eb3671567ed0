package list

import (
	"fmt"
	"iter"
	"strings"

	"github.com/ib-77/strata/pkg/collections/seq"
	"github.com/ib-77/strata/pkg/rop/option"
)

// LinkedList is a doubly linked list whose nodes live in an arena owned by
// the list. The zero value is an empty list ready to use.
type LinkedList[T any] struct {
	nodes []node[T]
	free  ref
	head  ref
	tail  ref
	size  int
}

// New builds a list holding values in order.
func New[T any](values ...T) *LinkedList[T] {
	return FromSlice(values)
}

// FromSlice builds a list holding the elements of values in order.
func FromSlice[T any](values []T) *LinkedList[T] {
	l := &LinkedList[T]{nodes: make([]node[T], 0, len(values))}
	for _, v := range values {
		l.PushBack(v)
	}
	return l
}

// FromIter drains it into a new list, keeping its order.
func FromIter[T any](it seq.Iterator[T]) *LinkedList[T] {
	l := &LinkedList[T]{}
	for o := it.Next(); o.IsSome(); o = it.Next() {
		l.PushBack(o.Unwrap())
	}
	return l
}

// FromIterRev builds a list holding the elements of it in reverse order.
func FromIterRev[T any](it seq.Iterator[T]) *LinkedList[T] {
	l := &LinkedList[T]{}
	for o := it.Next(); o.IsSome(); o = it.Next() {
		l.PushFront(o.Unwrap())
	}
	return l
}

// Len returns the number of elements.
func (l *LinkedList[T]) Len() int {
	return l.size
}

// IsEmpty reports whether l has no elements.
func (l *LinkedList[T]) IsEmpty() bool {
	return l.size == 0
}

// PushFront inserts v before the head.
func (l *LinkedList[T]) PushFront(v T) {
	r := l.alloc(v)
	n := l.at(r)
	n.next = l.head
	if l.head != nilRef {
		l.at(l.head).prev = r
	} else {
		l.tail = r
	}
	l.head = r
	l.size++
}

// PushBack inserts v after the cached tail.
func (l *LinkedList[T]) PushBack(v T) {
	r := l.alloc(v)
	n := l.at(r)
	n.prev = l.tail
	if l.tail != nilRef {
		l.at(l.tail).next = r
	} else {
		l.head = r
	}
	l.tail = r
	l.size++
}

// PopFront removes and returns the head, or None when l is empty.
func (l *LinkedList[T]) PopFront() option.Option[T] {
	if l.head == nilRef {
		return option.None[T]()
	}
	r := l.head
	l.head = l.at(r).next
	if l.head != nilRef {
		l.at(l.head).prev = nilRef
	} else {
		l.tail = nilRef
	}
	l.size--
	return option.Some(l.release(r))
}

// PopBack removes and returns the tail, or None when l is empty.
func (l *LinkedList[T]) PopBack() option.Option[T] {
	if l.tail == nilRef {
		return option.None[T]()
	}
	r := l.tail
	l.tail = l.at(r).prev
	if l.tail != nilRef {
		l.at(l.tail).next = nilRef
	} else {
		l.head = nilRef
	}
	l.size--
	return option.Some(l.release(r))
}

// Front returns the head without removing it.
func (l *LinkedList[T]) Front() option.Option[T] {
	if l.head == nilRef {
		return option.None[T]()
	}
	return option.Some(l.at(l.head).data)
}

// Back returns the tail without removing it.
func (l *LinkedList[T]) Back() option.Option[T] {
	if l.tail == nilRef {
		return option.None[T]()
	}
	return option.Some(l.at(l.tail).data)
}

// At returns the element at index. Negative indices count from the end,
// so At(-1) is the last element.
func (l *LinkedList[T]) At(index int) option.Option[T] {
	if index < 0 {
		index += l.size
	}
	if index < 0 || index >= l.size {
		return option.None[T]()
	}

	if index <= l.size/2 {
		r := l.head
		for range index {
			r = l.at(r).next
		}
		return option.Some(l.at(r).data)
	}

	r := l.tail
	for range l.size - 1 - index {
		r = l.at(r).prev
	}
	return option.Some(l.at(r).data)
}

// Append moves every element of other to the back of l, in order, and
// leaves other empty. Appending a list to itself does nothing.
//
// Each list owns its own arena, so nodes cannot be spliced across lists.
// Append is O(1) when l is empty, since l takes over other's arena, and
// O(other.Len()) otherwise, since other's values are copied into l.
func (l *LinkedList[T]) Append(other *LinkedList[T]) {
	if other == nil || other == l || other.size == 0 {
		return
	}

	if l.size == 0 {
		*l = *other
		*other = LinkedList[T]{}
		return
	}

	for r := other.head; r != nilRef; r = other.at(r).next {
		l.PushBack(other.at(r).data)
	}
	other.Clear()
}

// AppendFront moves every element of other to the front of l, keeping
// other's order, and leaves other empty.
func (l *LinkedList[T]) AppendFront(other *LinkedList[T]) {
	if other == nil || other == l || other.size == 0 {
		return
	}

	*l, *other = *other, *l
	l.Append(other)
	other.Clear()
}

// Reverse relinks the chain in place.
func (l *LinkedList[T]) Reverse() {
	for r := l.head; r != nilRef; {
		n := l.at(r)
		next := n.next
		n.next, n.prev = n.prev, n.next
		r = next
	}
	l.head, l.tail = l.tail, l.head
}

// Clear drops every node and the arena.
func (l *LinkedList[T]) Clear() {
	*l = LinkedList[T]{}
}

// Iter returns a single-pass forward iterator. The list must not be
// mutated while the iterator is in use.
func (l *LinkedList[T]) Iter() seq.Iterator[T] {
	r := l.head
	return seq.Func[T](func() option.Option[T] {
		if r == nilRef {
			return option.None[T]()
		}
		n := l.at(r)
		r = n.next
		return option.Some(n.data)
	})
}

// Rev iterates from the back by following prev links.
func (l *LinkedList[T]) Rev() seq.Iterator[T] {
	r := l.tail
	return seq.Func[T](func() option.Option[T] {
		if r == nilRef {
			return option.None[T]()
		}
		n := l.at(r)
		r = n.prev
		return option.Some(n.data)
	})
}

// Enumerate pairs each element with its position, head first.
func (l *LinkedList[T]) Enumerate() seq.Iterator[seq.Indexed[T]] {
	return seq.Enumerate(l.Iter())
}

// All ranges over the elements head to tail.
func (l *LinkedList[T]) All() iter.Seq[T] {
	return seq.All(l.Iter())
}

// Values copies the elements into a new slice.
func (l *LinkedList[T]) Values() []T {
	out := make([]T, 0, l.size)
	for r := l.head; r != nilRef; r = l.at(r).next {
		out = append(out, l.at(r).data)
	}
	return out
}

// String joins the elements with " => ".
func (l *LinkedList[T]) String() string {
	parts := make([]string, 0, l.size)
	for v := range l.All() {
		parts = append(parts, fmt.Sprint(v))
	}
	return strings.Join(parts, " => ")
}
