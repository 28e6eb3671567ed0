// Package result provides Result[T, E], a value that is either Ok(T) or
// Err(E), with E chosen by the caller.
//
// Result satisfies rop.Contract[T, E]. Failures are returned up the call
// chain as values; only Expect, ExpectErr, Unwrap and UnwrapErr abort.
//
// Highlights:
// - Ok/Err/Try/FromOption: construct a Result
// - And/AndThen/Or/OrElse: short-circuiting composition
// - Map/MapErr/AndThen (free functions): change the payload types
// - Ok()/Err(): project to option.Option
// - Insert/GetOrInsert: replace the held value with Ok
// - Value: convert to the (T, error) pair at a Go API boundary
package result
