package rop

// Nothing is the failure payload of a value that carries no error, such as
// Option's None.
type Nothing struct{}

// Contract is implemented by every "success or failure" value type.
type Contract[T, E any] interface {
	// IsFailure returns true if the failure variant is active
	IsFailure() bool
	// Match calls exactly one of the callbacks with the active payload
	Match(onSuccess func(T), onFailure func(E))
	// Contains returns true if the success variant is active
	Contains() bool
	// Expect returns the success payload or aborts with msg
	Expect(msg string) T
	// Unwrap returns the success payload or aborts with the failure payload
	Unwrap() T
	// UnwrapOr returns the success payload or def
	UnwrapOr(def T) T
}

// Fold reduces c to a single value by applying the callback that matches
// the active variant.
func Fold[T, E, R any](c Contract[T, E], onSuccess func(T) R, onFailure func(E) R) R {
	var out R
	c.Match(
		func(t T) { out = onSuccess(t) },
		func(e E) { out = onFailure(e) })
	return out
}

// MapOr applies f to the success payload, or returns def.
// def is evaluated eagerly; use MapOrElse to defer it.
func MapOr[T, E, U any](c Contract[T, E], def U, f func(T) U) U {
	return Fold(c, f, func(E) U { return def })
}

// MapOrElse applies f to the success payload, or def to the failure payload.
func MapOrElse[T, E, U any](c Contract[T, E], def func(E) U, f func(T) U) U {
	return Fold(c, f, def)
}

// UnwrapOrElse returns the success payload or computes one from the failure.
func UnwrapOrElse[T, E any](c Contract[T, E], f func(E) T) T {
	return Fold(c, func(t T) T { return t }, f)
}

// IsSuccess is the negation of IsFailure, kept for symmetry with callers
// that branch on success first.
func IsSuccess[T, E any](c Contract[T, E]) bool {
	return !c.IsFailure()
}
