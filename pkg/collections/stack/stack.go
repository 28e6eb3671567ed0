// Package stack provides a LIFO Stack backed by list.LinkedList.
package stack

import (
	"github.com/ib-77/strata/pkg/collections/list"
	"github.com/ib-77/strata/pkg/collections/seq"
	"github.com/ib-77/strata/pkg/rop/option"
)

type Stack[T any] struct {
	items list.LinkedList[T]
}

// New returns a stack with the last value on top.
func New[T any](values ...T) *Stack[T] {
	s := &Stack[T]{}
	for _, v := range values {
		s.items.PushBack(v)
	}
	return s
}

func (s *Stack[T]) Push(v T) {
	s.items.PushBack(v)
}

func (s *Stack[T]) Pop() option.Option[T] {
	return s.items.PopBack()
}

// Peek returns the top of the stack without removing it.
func (s *Stack[T]) Peek() option.Option[T] {
	return s.items.Back()
}

func (s *Stack[T]) Len() int {
	return s.items.Len()
}

func (s *Stack[T]) IsEmpty() bool {
	return s.items.IsEmpty()
}

// Iter walks the stack from top to bottom without removing anything.
func (s *Stack[T]) Iter() seq.Iterator[T] {
	return s.items.Rev()
}

func (s *Stack[T]) String() string {
	return "[ " + s.items.String() + " ]"
}
