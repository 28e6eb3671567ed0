// Package solo contains single-value, synchronous railway steps over
// result.Result[T, error]. Each step runs only on the success track and passes
// failures through untouched, so a pipeline reads as a sequence of calls.
//
// A failure whose error is context.Canceled or context.DeadlineExceeded is
// treated as a cancellation; DoubleTee, DoubleMap and Finally route it to
// their onCancel handler.
//
// Highlights:
// - Succeed/Fail/Cancel: construct an Outcome
// - Validate/AndValidate/ValidateAll: turn invalid input into a failure
// - Switch/Map/Try: move from Outcome[In] to Outcome[Out]
// - Tee/TeeIf/DoubleTee: side effects
// - Finally: reduce to a plain value
package solo
