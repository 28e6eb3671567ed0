// Package queue provides a FIFO Queue backed by list.LinkedList.
package queue

import (
	"github.com/ib-77/strata/pkg/collections/list"
	"github.com/ib-77/strata/pkg/collections/seq"
	"github.com/ib-77/strata/pkg/rop/option"
)

type Queue[T any] struct {
	items list.LinkedList[T]
}

// New returns a queue holding values, the first value at the front.
func New[T any](values ...T) *Queue[T] {
	q := &Queue[T]{}
	for _, v := range values {
		q.items.PushBack(v)
	}
	return q
}

func (q *Queue[T]) Enqueue(v T) {
	q.items.PushBack(v)
}

func (q *Queue[T]) Dequeue() option.Option[T] {
	return q.items.PopFront()
}

func (q *Queue[T]) Front() option.Option[T] {
	return q.items.Front()
}

func (q *Queue[T]) Back() option.Option[T] {
	return q.items.Back()
}

func (q *Queue[T]) Len() int {
	return q.items.Len()
}

func (q *Queue[T]) IsEmpty() bool {
	return q.items.IsEmpty()
}

// Iter walks the queue front to back without removing anything.
func (q *Queue[T]) Iter() seq.Iterator[T] {
	return q.items.Iter()
}

// Drain returns an iterator that dequeues as it advances.
func (q *Queue[T]) Drain() seq.Iterator[T] {
	return seq.Func[T](q.Dequeue)
}

func (q *Queue[T]) String() string {
	return "{ " + q.items.String() + " }"
}
