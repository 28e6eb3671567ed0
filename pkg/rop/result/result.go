package result

import (
	"fmt"

	"github.com/ib-77/strata/pkg/rop"
	"github.com/ib-77/strata/pkg/rop/option"
)

// Result holds either an Ok payload of type T or an Err payload of type E.
// The zero value is Err with the zero E.
type Result[T, E any] struct {
	value T
	err   E
	ok    bool
}

var _ rop.Contract[int, error] = Result[int, error]{}

// Ok builds a successful Result holding v.
func Ok[T, E any](v T) Result[T, E] {
	return Result[T, E]{value: v, ok: true}
}

// Err builds a failed Result holding e.
func Err[T, E any](e E) Result[T, E] {
	return Result[T, E]{err: e}
}

// IsOk reports whether r holds an Ok payload.
func (r Result[T, E]) IsOk() bool {
	return r.ok
}

// IsErr reports whether r holds an Err payload.
func (r Result[T, E]) IsErr() bool {
	return !r.ok
}

// IsFailure reports whether the Err variant is active.
func (r Result[T, E]) IsFailure() bool {
	return !r.ok
}

// Contains reports whether the Ok variant is active.
func (r Result[T, E]) Contains() bool {
	return r.ok
}

// ContainsErr reports whether the Err variant is active.
func (r Result[T, E]) ContainsErr() bool {
	return !r.ok
}

// Match calls onOk or onErr with the active payload. Every other accessor
// and combinator reads the payload through it.
func (r Result[T, E]) Match(onOk func(T), onErr func(E)) {
	if r.ok {
		onOk(r.value)
		return
	}
	onErr(r.err)
}

// And returns r if it is Err, otherwise other.
// other is evaluated by the caller; use AndThen to defer it.
func (r Result[T, E]) And(other Result[T, E]) Result[T, E] {
	return rop.Fold[T, E](r,
		func(T) Result[T, E] { return other },
		func(E) Result[T, E] { return r })
}

// AndThen calls f with the Ok payload, or returns r unchanged.
func (r Result[T, E]) AndThen(f func(T) Result[T, E]) Result[T, E] {
	return rop.Fold[T, E](r, f, func(E) Result[T, E] { return r })
}

// Or returns r if it is Ok, otherwise other.
func (r Result[T, E]) Or(other Result[T, E]) Result[T, E] {
	return rop.Fold[T, E](r,
		func(T) Result[T, E] { return r },
		func(E) Result[T, E] { return other })
}

// OrElse returns r if it is Ok, otherwise f applied to the Err payload.
func (r Result[T, E]) OrElse(f func(E) Result[T, E]) Result[T, E] {
	return rop.Fold[T, E](r, func(T) Result[T, E] { return r }, f)
}

// Map transforms the Ok payload; see the free Map to change its type.
func (r Result[T, E]) Map(f func(T) T) Result[T, E] {
	return Map(r, f)
}

// MapErr transforms the Err payload; see the free MapErr to change its type.
func (r Result[T, E]) MapErr(f func(E) E) Result[T, E] {
	return MapErr(r, f)
}

// Ok projects the success payload into an Option.
func (r Result[T, E]) Ok() option.Option[T] {
	return rop.Fold[T, E](r, option.Some[T], func(E) option.Option[T] { return option.None[T]() })
}

// Err projects the failure payload into an Option.
func (r Result[T, E]) Err() option.Option[E] {
	return rop.Fold[T, E](r, func(T) option.Option[E] { return option.None[E]() }, option.Some[E])
}

// Expect returns the Ok payload or aborts with msg and the Err payload.
func (r Result[T, E]) Expect(msg string) T {
	return rop.Fold[T, E](r,
		func(v T) T { return v },
		func(e E) T { return rop.Abort[T](msg, e) })
}

// Unwrap returns the Ok payload or aborts with the Err payload.
func (r Result[T, E]) Unwrap() T {
	return r.Expect("")
}

// ExpectErr returns the Err payload or aborts with msg and the Ok payload.
func (r Result[T, E]) ExpectErr(msg string) E {
	return rop.Fold[T, E](r,
		func(v T) E { return rop.Abort[E](msg, v) },
		func(e E) E { return e })
}

// UnwrapErr returns the Err payload or aborts.
func (r Result[T, E]) UnwrapErr() E {
	return r.ExpectErr("called UnwrapErr on an Ok value")
}

// UnwrapOr returns the Ok payload or def.
func (r Result[T, E]) UnwrapOr(def T) T {
	return rop.Fold[T, E](r,
		func(v T) T { return v },
		func(E) T { return def })
}

// UnwrapOrElse returns the Ok payload or f applied to the Err payload.
func (r Result[T, E]) UnwrapOrElse(f func(E) T) T {
	return rop.UnwrapOrElse[T, E](r, f)
}

// UnwrapUnchecked returns whichever payload is active.
func (r Result[T, E]) UnwrapUnchecked() any {
	return rop.Fold[T, E](r,
		func(v T) any { return v },
		func(e E) any { return e })
}

// Value converts r to a Go (T, error) pair. An Err payload that is not
// an error is wrapped in a *rop.Violation.
func (r Result[T, E]) Value() (v T, err error) {
	r.Match(
		func(t T) { v = t },
		func(e E) {
			if perr, ok := any(e).(error); ok {
				err = perr
				return
			}
			err = &rop.Violation{Payload: e}
		})
	return v, err
}

// Insert replaces the held value with Ok(v) and returns v.
func (r *Result[T, E]) Insert(v T) T {
	*r = Ok[T, E](v)
	return v
}

// GetOrInsert returns the Ok payload, replacing an Err with Ok(v) first.
func (r *Result[T, E]) GetOrInsert(v T) T {
	if !r.ok {
		*r = Ok[T, E](v)
	}
	return r.value
}

// Eq compares the active variant and its payload only.
func (r Result[T, E]) Eq(other Result[T, E]) bool {
	return rop.Fold[T, E](r,
		func(v T) bool {
			return rop.Fold[T, E](other,
				func(w T) bool { return rop.PayloadEqual(v, w) },
				func(E) bool { return false })
		},
		func(e E) bool {
			return rop.Fold[T, E](other,
				func(T) bool { return false },
				func(f E) bool { return rop.PayloadEqual(e, f) })
		})
}

// String renders r as "Ok(v)" or "Err(e)".
func (r Result[T, E]) String() string {
	return rop.Fold[T, E](r,
		func(v T) string { return fmt.Sprintf("Ok(%v)", v) },
		func(e E) string { return fmt.Sprintf("Err(%v)", e) })
}
