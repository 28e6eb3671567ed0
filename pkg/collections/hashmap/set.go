package hashmap

import (
	"github.com/ib-77/strata/pkg/collections/seq"
	"github.com/ib-77/strata/pkg/rop/option"
)

type Set[T comparable] struct {
	m Map[T, struct{}]
}

func NewSet[T comparable](values ...T) *Set[T] {
	s := &Set[T]{}
	for _, v := range values {
		s.Insert(v)
	}
	return s
}

func SetFromIter[T comparable](it seq.Iterator[T]) *Set[T] {
	s := NewSet[T]()
	for v := range seq.All(it) {
		s.Insert(v)
	}
	return s
}

// Insert adds v and reports whether it was absent.
func (s *Set[T]) Insert(v T) bool {
	return s.m.Set(v, struct{}{}).IsNone()
}

// Remove deletes v and reports whether it was present.
func (s *Set[T]) Remove(v T) bool {
	return s.m.Remove(v).IsSome()
}

func (s *Set[T]) Contains(v T) bool {
	return s.m.Has(v)
}

func (s *Set[T]) Len() int {
	return s.m.Len()
}

func (s *Set[T]) Iter() seq.Iterator[T] {
	return seq.Map(s.m.Iter(), func(e Entry[T, struct{}]) T { return e.Key })
}

func (s *Set[T]) Values() []T {
	return seq.Collect(s.Iter())
}

// Any returns an arbitrary member, or None when the set is empty.
func (s *Set[T]) Any() option.Option[T] {
	return s.Iter().Next()
}
