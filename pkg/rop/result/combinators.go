package result

import (
	"github.com/ib-77/strata/pkg/rop"
	"github.com/ib-77/strata/pkg/rop/option"
)

// Map transforms the Ok payload, possibly changing its type.
func Map[T, U, E any](r Result[T, E], f func(T) U) Result[U, E] {
	return rop.Fold[T, E](r,
		func(v T) Result[U, E] { return Ok[U, E](f(v)) },
		Err[U, E])
}

// MapErr transforms the Err payload, possibly changing its type.
func MapErr[T, E, F any](r Result[T, E], f func(E) F) Result[T, F] {
	return rop.Fold[T, E](r,
		Ok[T, F],
		func(e E) Result[T, F] { return Err[T](f(e)) })
}

// AndThen is the type-changing form of Result.AndThen.
func AndThen[T, U, E any](r Result[T, E], f func(T) Result[U, E]) Result[U, E] {
	return rop.Fold[T, E](r, f, Err[U, E])
}

// MapOr applies f to the Ok payload, or returns def for Err.
func MapOr[T, E, U any](r Result[T, E], def U, f func(T) U) U {
	return rop.MapOr[T, E](r, def, f)
}

// MapOrElse applies f to the Ok payload, or def to the Err payload.
func MapOrElse[T, E, U any](r Result[T, E], def func(E) U, f func(T) U) U {
	return rop.MapOrElse[T, E](r, def, f)
}

// Fold reduces r with the callback matching its variant.
func Fold[T, E, R any](r Result[T, E], onOk func(T) R, onErr func(E) R) R {
	return rop.Fold[T, E](r, onOk, onErr)
}

// Try lifts a Go (T, error) pair.
func Try[T any](v T, err error) Result[T, error] {
	if err != nil {
		return Err[T](err)
	}
	return Ok[T, error](v)
}

// TryFunc calls f and lifts its return values.
func TryFunc[T any](f func() (T, error)) Result[T, error] {
	return Try(f())
}

// FromOption maps Some(v) to Ok(v) and None to Err(err).
func FromOption[T, E any](o option.Option[T], err E) Result[T, E] {
	v, ok := o.Get()
	if !ok {
		return Err[T](err)
	}
	return Ok[T, E](v)
}

// Transpose turns Result[Option[T]] into Option[Result[T]]. Ok(None) maps
// to None.
func Transpose[T, E any](r Result[option.Option[T], E]) option.Option[Result[T, E]] {
	return rop.Fold[option.Option[T], E](r,
		func(o option.Option[T]) option.Option[Result[T, E]] { return option.Map(o, Ok[T, E]) },
		func(e E) option.Option[Result[T, E]] { return option.Some(Err[T](e)) })
}

// Flatten removes one level of nesting.
func Flatten[T, E any](r Result[Result[T, E], E]) Result[T, E] {
	return AndThen(r, func(inner Result[T, E]) Result[T, E] { return inner })
}

// Collect gathers Ok payloads in order, stopping at the first Err.
func Collect[T, E any](rs []Result[T, E]) Result[[]T, E] {
	out := make([]T, 0, len(rs))
	for _, r := range rs {
		if r.IsErr() {
			return Err[[]T](r.UnwrapErr())
		}
		out = append(out, r.Unwrap())
	}
	return Ok[[]T, E](out)
}

// Inspect calls f with the Ok payload and returns r unchanged.
func Inspect[T, E any](r Result[T, E], f func(T)) Result[T, E] {
	r.Match(f, func(E) {})
	return r
}

// InspectErr calls f with the Err payload and returns r unchanged.
func InspectErr[T, E any](r Result[T, E], f func(E)) Result[T, E] {
	r.Match(func(T) {}, f)
	return r
}

// Equal is the comparable fast path of Result.Eq.
func Equal[T, E comparable](a, b Result[T, E]) bool {
	return rop.Fold[T, E](a,
		func(v T) bool { return b.IsOk() && b.Unwrap() == v },
		func(e E) bool { return b.IsErr() && b.UnwrapErr() == e })
}
