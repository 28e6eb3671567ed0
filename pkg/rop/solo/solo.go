package solo

import (
	"context"
	"errors"

	"github.com/ib-77/strata/pkg/rop"
	"github.com/ib-77/strata/pkg/rop/result"
)

// Outcome is the result type every step consumes and produces.
type Outcome[T any] = result.Result[T, error]

func Succeed[T any](input T) Outcome[T] {
	return result.Ok[T, error](input)
}

func Fail[T any](err error) Outcome[T] {
	return result.Err[T](err)
}

// Cancel builds a failure that IsCancel reports as cancelled.
func Cancel[T any](err error) Outcome[T] {
	if err == nil {
		return Fail[T](context.Canceled)
	}
	if !rop.IsCancellationError(err) {
		err = errors.Join(context.Canceled, err)
	}
	return Fail[T](err)
}

func IsCancel[T any](input Outcome[T]) bool {
	return input.IsErr() && rop.IsCancellationError(input.UnwrapErr())
}

func Validate[T any](ctx context.Context, input T,
	validate func(ctx context.Context, in T) (isValid bool, errMsg string)) Outcome[T] {
	return AndValidate(ctx, Succeed(input), validate)
}

func AndValidate[T any](ctx context.Context, input Outcome[T],
	validate func(ctx context.Context, in T) (valid bool, errMsg string)) Outcome[T] {

	return input.AndThen(func(in T) Outcome[T] {
		if valid, errMsg := validate(ctx, in); !valid {
			return Fail[T](errors.New(errMsg))
		}
		return input
	})
}

// ValidateAll runs every check against input and joins the failures they
// report, in check order. With breakOnError it stops at the first failing
// check. A failed input is returned unchanged and no check runs.
func ValidateAll[T any](
	ctx context.Context,
	input Outcome[T],
	breakOnError bool,
	checks ...func(ctx context.Context, in Outcome[T]) Outcome[T]) Outcome[T] {

	if input.IsErr() {
		return input
	}

	var errs []error
	for _, check := range checks {
		if ctx.Err() != nil {
			break
		}

		result.InspectErr(check(ctx, input), func(err error) {
			errs = append(errs, rop.GetErrors(err)...)
		})
		if len(errs) > 0 && breakOnError {
			break
		}
	}

	if len(errs) == 0 {
		return input
	}
	return Fail[T](errors.Join(errs...))
}

func Switch[In any, Out any](ctx context.Context,
	input Outcome[In],
	onSuccess func(ctx context.Context, r In) Outcome[Out]) Outcome[Out] {

	return result.AndThen(input, func(in In) Outcome[Out] {
		return onSuccess(ctx, in)
	})
}

func Map[In any, Out any](ctx context.Context,
	input Outcome[In],
	onSuccess func(ctx context.Context, r In) Out) Outcome[Out] {

	return result.Map(input, func(in In) Out {
		return onSuccess(ctx, in)
	})
}

func Tee[T any](ctx context.Context,
	input Outcome[T],
	onSuccess func(ctx context.Context, r T)) Outcome[T] {

	return result.Inspect(input, func(in T) {
		onSuccess(ctx, in)
	})
}

func TeeIf[T any](ctx context.Context,
	input Outcome[T],
	condition func(ctx context.Context, r T) bool,
	onSuccessAndCondition func(ctx context.Context, r T)) Outcome[T] {

	return result.Inspect(input, func(in T) {
		if condition(ctx, in) {
			onSuccessAndCondition(ctx, in)
		}
	})
}

func DoubleTee[T any](ctx context.Context, input Outcome[T],
	onSuccess func(ctx context.Context, r T),
	onError func(ctx context.Context, err error),
	onCancel func(ctx context.Context, err error)) Outcome[T] {

	input.Match(
		func(in T) { onSuccess(ctx, in) },
		func(err error) { failure(ctx, err, onError, onCancel) },
	)
	return input
}

// DoubleMap maps the success value and reports a failure to onError or
// onCancel. The failure itself is passed through.
func DoubleMap[In any, Out any](ctx context.Context, input Outcome[In],
	onSuccess func(ctx context.Context, r In) Out,
	onError func(ctx context.Context, err error),
	onCancel func(ctx context.Context, err error)) Outcome[Out] {

	return result.Map(result.InspectErr(input, func(err error) {
		failure(ctx, err, onError, onCancel)
	}), func(in In) Out {
		return onSuccess(ctx, in)
	})
}

// Try runs onTryExecute on the success value. A returned error or a
// contract violation inside it becomes a failure.
func Try[In any, Out any](ctx context.Context, input Outcome[In],
	onTryExecute func(ctx context.Context, r In) (Out, error)) Outcome[Out] {

	return result.AndThen(input, func(in In) Outcome[Out] {
		var (
			out Out
			err error
		)
		if violation := rop.Catch(func() { out, err = onTryExecute(ctx, in) }); violation != nil {
			return Fail[Out](violation)
		}
		return result.Try(out, err)
	})
}

func FailOnError[T any](ctx context.Context, input Outcome[T],
	maybeErr func(ctx context.Context, in T) error) Outcome[T] {

	return input.AndThen(func(in T) Outcome[T] {
		if err := maybeErr(ctx, in); err != nil {
			return Fail[T](err)
		}
		return input
	})
}

func Finally[In, Out any](ctx context.Context, input Outcome[In],
	onSuccess func(ctx context.Context, r In) Out,
	onError func(ctx context.Context, err error) Out,
	onCancel func(ctx context.Context, err error) Out) Out {

	return result.Fold(input,
		func(in In) Out { return onSuccess(ctx, in) },
		func(err error) Out {
			if rop.IsCancellationError(err) {
				return onCancel(ctx, err)
			}
			return onError(ctx, err)
		})
}

// Join feeds input through each step, folding every step's outcome with
// concat. It stops early when ctx is done, or on the first failure when
// breakOnError is set.
func Join[T any](ctx context.Context,
	input Outcome[T],
	breakOnError bool,
	concat func(ctx context.Context, current Outcome[T]) Outcome[T],
	steps ...func(ctx context.Context, in Outcome[T]) Outcome[T]) Outcome[T] {

	if len(steps) == 0 || concat == nil || ctx.Err() != nil {
		return input
	}

	final := concat(ctx, steps[0](ctx, input))
	if final.IsErr() && breakOnError {
		return final
	}

	for _, step := range steps[1:] {
		if ctx.Err() != nil {
			return final
		}

		next := concat(ctx, step(ctx, final))
		if next.IsErr() && breakOnError {
			return next
		}
		final = next
	}
	return final
}

func failure(ctx context.Context, err error,
	onError func(ctx context.Context, err error),
	onCancel func(ctx context.Context, err error)) {

	if rop.IsCancellationError(err) {
		onCancel(ctx, err)
		return
	}
	onError(ctx, err)
}
