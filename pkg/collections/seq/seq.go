// Package seq defines the single-pass iteration contract shared by the
// collections, and helpers derived from it.
//
// An Iterator yields Some(value) until it is exhausted and None afterwards.
// It cannot be restarted.
package seq

import (
	"iter"

	"github.com/ib-77/strata/pkg/rop/option"
)

type Iterator[T any] interface {
	Next() option.Option[T]
}

// Func adapts a plain function to Iterator.
type Func[T any] func() option.Option[T]

func (f Func[T]) Next() option.Option[T] {
	return f()
}

type Indexed[T any] struct {
	Index int
	Value T
}

func FromSlice[T any](values []T) Iterator[T] {
	i := 0
	return Func[T](func() option.Option[T] {
		if i >= len(values) {
			return option.None[T]()
		}
		v := values[i]
		i++
		return option.Some(v)
	})
}

// Enumerate pairs every element with its position.
func Enumerate[T any](it Iterator[T]) Iterator[Indexed[T]] {
	i := 0
	return Func[Indexed[T]](func() option.Option[Indexed[T]] {
		return option.Map(it.Next(), func(v T) Indexed[T] {
			out := Indexed[T]{Index: i, Value: v}
			i++
			return out
		})
	})
}

// Rev drains it on first use and yields the elements backwards.
func Rev[T any](it Iterator[T]) Iterator[T] {
	var buf []T
	drained := false
	return Func[T](func() option.Option[T] {
		if !drained {
			buf = Collect(it)
			drained = true
		}
		if len(buf) == 0 {
			return option.None[T]()
		}
		v := buf[len(buf)-1]
		buf = buf[:len(buf)-1]
		return option.Some(v)
	})
}

func Map[T, U any](it Iterator[T], f func(T) U) Iterator[U] {
	return Func[U](func() option.Option[U] {
		return option.Map(it.Next(), f)
	})
}

func Filter[T any](it Iterator[T], keep func(T) bool) Iterator[T] {
	return Func[T](func() option.Option[T] {
		for o := it.Next(); o.IsSome(); o = it.Next() {
			if keep(o.Unwrap()) {
				return o
			}
		}
		return option.None[T]()
	})
}

func Collect[T any](it Iterator[T]) []T {
	out := make([]T, 0)
	for o := it.Next(); o.IsSome(); o = it.Next() {
		out = append(out, o.Unwrap())
	}
	return out
}

func Count[T any](it Iterator[T]) int {
	n := 0
	for o := it.Next(); o.IsSome(); o = it.Next() {
		n++
	}
	return n
}

// Nth skips n elements and returns the next one.
func Nth[T any](it Iterator[T], n int) option.Option[T] {
	if n < 0 {
		return option.None[T]()
	}
	for o := it.Next(); o.IsSome(); o = it.Next() {
		if n == 0 {
			return o
		}
		n--
	}
	return option.None[T]()
}

// All exposes it as a range-over-func sequence.
func All[T any](it Iterator[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for o := it.Next(); o.IsSome(); o = it.Next() {
			if !yield(o.Unwrap()) {
				return
			}
		}
	}
}
