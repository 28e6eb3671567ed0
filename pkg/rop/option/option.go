package option

import (
	"fmt"

	"github.com/ib-77/strata/pkg/rop"
)

// Option holds either Some payload of type T or None. The zero value is
// None.
type Option[T any] struct {
	value T
	some  bool
}

var _ rop.Contract[int, rop.Nothing] = Option[int]{}

// Some builds an Option holding v.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, some: true}
}

// None builds an empty Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// FromPair builds an Option from the comma-ok idiom, e.g. a map lookup.
func FromPair[T any](v T, ok bool) Option[T] {
	if !ok {
		return None[T]()
	}
	return Some(v)
}

// FromPtr treats a nil pointer as None.
func FromPtr[T any](p *T) Option[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

// IsSome reports whether o holds a payload.
func (o Option[T]) IsSome() bool {
	return o.some
}

// IsNone reports whether o is empty.
func (o Option[T]) IsNone() bool {
	return !o.some
}

// IsFailure reports whether o is None.
func (o Option[T]) IsFailure() bool {
	return !o.some
}

// Contains reports whether o is Some.
func (o Option[T]) Contains() bool {
	return o.some
}

// Match calls onSome with the payload, or onNone. Every other accessor
// and combinator reads the payload through it.
func (o Option[T]) Match(onSome func(T), onNone func(rop.Nothing)) {
	if o.some {
		onSome(o.value)
		return
	}
	onNone(rop.Nothing{})
}

// And returns None if o is None, otherwise other.
// other is evaluated by the caller; use AndThen to defer it.
func (o Option[T]) And(other Option[T]) Option[T] {
	return rop.Fold[T, rop.Nothing](o,
		func(T) Option[T] { return other },
		func(rop.Nothing) Option[T] { return o })
}

// AndThen calls f with the payload and returns its result, or returns None.
func (o Option[T]) AndThen(f func(T) Option[T]) Option[T] {
	return rop.Fold[T, rop.Nothing](o, f, func(rop.Nothing) Option[T] { return o })
}

// Or returns o if it is Some, otherwise other.
func (o Option[T]) Or(other Option[T]) Option[T] {
	return rop.Fold[T, rop.Nothing](o,
		func(T) Option[T] { return o },
		func(rop.Nothing) Option[T] { return other })
}

// OrElse returns o if it is Some, otherwise the result of f.
func (o Option[T]) OrElse(f func() Option[T]) Option[T] {
	return rop.Fold[T, rop.Nothing](o,
		func(T) Option[T] { return o },
		func(rop.Nothing) Option[T] { return f() })
}

// Xor returns whichever of o and other is Some when exactly one is.
func (o Option[T]) Xor(other Option[T]) Option[T] {
	switch {
	case o.IsSome() && other.IsNone():
		return o
	case o.IsNone() && other.IsSome():
		return other
	}
	return None[T]()
}

// Filter keeps the payload only if keep reports true for it.
func (o Option[T]) Filter(keep func(T) bool) Option[T] {
	return o.AndThen(func(v T) Option[T] {
		if keep(v) {
			return o
		}
		return None[T]()
	})
}

// Map transforms the payload; see the free Map to change its type.
func (o Option[T]) Map(f func(T) T) Option[T] {
	return Map(o, f)
}

// Expect returns the payload or aborts with msg.
func (o Option[T]) Expect(msg string) T {
	return rop.Fold[T, rop.Nothing](o,
		func(v T) T { return v },
		func(n rop.Nothing) T { return rop.Abort[T](msg, n) })
}

// Unwrap returns the payload or aborts.
func (o Option[T]) Unwrap() T {
	return o.Expect("called Unwrap on a None value")
}

// UnwrapOr returns the payload or def.
func (o Option[T]) UnwrapOr(def T) T {
	return rop.Fold[T, rop.Nothing](o,
		func(v T) T { return v },
		func(rop.Nothing) T { return def })
}

// UnwrapOrElse returns the payload or the result of f.
func (o Option[T]) UnwrapOrElse(f func() T) T {
	return rop.UnwrapOrElse[T, rop.Nothing](o, func(rop.Nothing) T { return f() })
}

// UnwrapOrZero returns the payload or the zero value of T.
func (o Option[T]) UnwrapOrZero() T {
	var zero T
	return o.UnwrapOr(zero)
}

// Get returns the payload and whether it was present.
func (o Option[T]) Get() (v T, ok bool) {
	o.Match(
		func(t T) { v, ok = t, true },
		func(rop.Nothing) {})
	return v, ok
}

// Insert stores v, making the holder Some(v), and returns v.
func (o *Option[T]) Insert(v T) T {
	*o = Some(v)
	return v
}

// GetOrInsert returns the payload, storing v first if the holder is None.
func (o *Option[T]) GetOrInsert(v T) T {
	if !o.some {
		*o = Some(v)
	}
	return o.value
}

// Take moves the payload out, leaving None behind.
func (o *Option[T]) Take() Option[T] {
	out := *o
	*o = None[T]()
	return out
}

// Replace stores v and returns the previous value.
func (o *Option[T]) Replace(v T) Option[T] {
	out := *o
	*o = Some(v)
	return out
}

// Eq compares the active variant and, for Some, the payload.
func (o Option[T]) Eq(other Option[T]) bool {
	return rop.Fold[T, rop.Nothing](o,
		func(v T) bool {
			w, ok := other.Get()
			return ok && rop.PayloadEqual(v, w)
		},
		func(rop.Nothing) bool { return other.IsNone() })
}

// String renders o as "Some(v)" or "None".
func (o Option[T]) String() string {
	return rop.Fold[T, rop.Nothing](o,
		func(v T) string { return fmt.Sprintf("Some(%v)", v) },
		func(rop.Nothing) string { return "None" })
}
