package chain

import (
	"context"

	"github.com/ib-77/strata/pkg/rop/solo"
)

// Chain carries an outcome and the context each step runs with.
type Chain[T any] struct {
	ctx    context.Context
	result solo.Outcome[T]
}

func Start[T any](ctx context.Context, result solo.Outcome[T]) *Chain[T] {
	return &Chain[T]{
		ctx:    ctx,
		result: result,
	}
}

func FromValue[T any](ctx context.Context, value T) *Chain[T] {
	return Start(ctx, solo.Succeed(value))
}

func (c *Chain[T]) Result() solo.Outcome[T] {
	return c.result
}

// Value unpacks the chain into the usual Go pair.
func (c *Chain[T]) Value() (T, error) {
	return c.result.Value()
}

func Then[T, U any](c *Chain[T], onSuccess func(context.Context, T) solo.Outcome[U]) *Chain[U] {
	return Start(c.ctx, solo.Switch(c.ctx, c.result, onSuccess))
}

func ThenTry[T, U any](c *Chain[T], tryOnSuccess func(context.Context, T) (U, error)) *Chain[U] {
	return Start(c.ctx, solo.Try(c.ctx, c.result, tryOnSuccess))
}

func Map[T, U any](c *Chain[T], onSuccess func(context.Context, T) U) *Chain[U] {
	return Start(c.ctx, solo.Map(c.ctx, c.result, onSuccess))
}

func (c *Chain[T]) Validate(validate func(context.Context, T) (bool, string)) *Chain[T] {
	return Start(c.ctx, solo.AndValidate(c.ctx, c.result, validate))
}

// Ensure performs a side effect on success without changing the result.
func (c *Chain[T]) Ensure(onSuccess func(context.Context, T)) *Chain[T] {
	return Start(c.ctx, solo.Tee(c.ctx, c.result, onSuccess))
}

func Finally[T, U any](c *Chain[T],
	onSuccess func(context.Context, T) U,
	onFailure func(context.Context, error) U,
	onCancel func(context.Context, error) U) U {
	return solo.Finally(c.ctx, c.result, onSuccess, onFailure, onCancel)
}
