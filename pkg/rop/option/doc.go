// Package option provides Option[T], a value that is either Some(T) or None.
//
// Option satisfies rop.Contract[T, rop.Nothing]. The zero value is None.
//
// Highlights:
// - Some/None/FromPair/FromPtr: construct an Option
// - And/AndThen/Or/OrElse/Xor/Filter: combine options of the same type
// - Map/AndThen (free functions): change the payload type
// - Expect/Unwrap: abort with a rop.Violation on None
// - UnwrapOr/UnwrapOrElse/Get: total accessors
package option
