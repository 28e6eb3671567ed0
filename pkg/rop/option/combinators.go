package option

import "github.com/ib-77/strata/pkg/rop"

// Map transforms the payload, possibly changing its type.
func Map[T, U any](o Option[T], f func(T) U) Option[U] {
	return rop.Fold[T, rop.Nothing](o,
		func(v T) Option[U] { return Some(f(v)) },
		func(rop.Nothing) Option[U] { return None[U]() })
}

// AndThen is the type-changing form of Option.AndThen.
func AndThen[T, U any](o Option[T], f func(T) Option[U]) Option[U] {
	return rop.Fold[T, rop.Nothing](o, f, func(rop.Nothing) Option[U] { return None[U]() })
}

// MapOr applies f to the payload, or returns def for None.
func MapOr[T, U any](o Option[T], def U, f func(T) U) U {
	return rop.MapOr[T, rop.Nothing](o, def, f)
}

// MapOrElse applies f to the payload, or calls def for None.
func MapOrElse[T, U any](o Option[T], def func() U, f func(T) U) U {
	return rop.MapOrElse[T, rop.Nothing](o, func(rop.Nothing) U { return def() }, f)
}

// Flatten removes one level of nesting.
func Flatten[T any](o Option[Option[T]]) Option[T] {
	return AndThen(o, func(inner Option[T]) Option[T] { return inner })
}

type Pair[A, B any] struct {
	First  A
	Second B
}

// Zip returns Some pair when both options are Some.
func Zip[A, B any](a Option[A], b Option[B]) Option[Pair[A, B]] {
	return AndThen(a, func(first A) Option[Pair[A, B]] {
		return Map(b, func(second B) Pair[A, B] {
			return Pair[A, B]{First: first, Second: second}
		})
	})
}

// Equal is the comparable fast path of Option.Eq.
func Equal[T comparable](a, b Option[T]) bool {
	return rop.Fold[T, rop.Nothing](a,
		func(v T) bool {
			w, ok := b.Get()
			return ok && v == w
		},
		func(rop.Nothing) bool { return b.IsNone() })
}
