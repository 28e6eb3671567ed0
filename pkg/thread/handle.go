package thread

import (
	"context"
	"runtime"

	"github.com/google/uuid"
	"github.com/ib-77/strata/pkg/rop"
	"github.com/ib-77/strata/pkg/rop/result"
	"go.uber.org/zap"
)

// Work is a unit of work run on its own goroutine.
type Work[T any] func(ctx context.Context) (T, error)

type JoinHandle[T any] struct {
	id   uuid.UUID
	name string
	done chan struct{}
	res  result.Result[T, error]
}

type SpawnOption func(*spawnOptions)

type spawnOptions struct {
	name string
}

func WithName(name string) SpawnOption {
	return func(o *spawnOptions) {
		o.name = name
	}
}

func newHandle[T any](opts ...SpawnOption) *JoinHandle[T] {
	o := spawnOptions{}
	for _, opt := range opts {
		opt(&o)
	}
	return &JoinHandle[T]{
		id:   uuid.New(),
		name: o.name,
		done: make(chan struct{}),
	}
}

// Spawn starts work on a new goroutine.
func Spawn[T any](ctx context.Context, work Work[T], opts ...SpawnOption) *JoinHandle[T] {
	h := newHandle[T](opts...)
	go h.run(ctx, work)
	return h
}

func (h *JoinHandle[T]) run(ctx context.Context, work Work[T]) {
	zap.S().Debugw("thread started", "id", h.id, "name", h.name)

	var out T
	var err error
	if perr := rop.Catch(func() { out, err = work(ctx) }); perr != nil {
		zap.S().Warnw("thread panicked", "id", h.id, "name", h.name, "error", perr)
		err = perr
	}
	h.finish(result.Try(out, err))
}

func (h *JoinHandle[T]) finish(r result.Result[T, error]) {
	h.res = r
	close(h.done)
}

func (h *JoinHandle[T]) ID() uuid.UUID {
	return h.id
}

func (h *JoinHandle[T]) Name() string {
	return h.name
}

// IsFinished reports whether the work has completed, without blocking.
func (h *JoinHandle[T]) IsFinished() bool {
	select {
	case <-h.done:
		return true
	default:
		return false
	}
}

// Join blocks until the work completes and returns its outcome.
func (h *JoinHandle[T]) Join() result.Result[T, error] {
	<-h.done
	return h.res
}

// JoinContext is Join bounded by ctx. A cancelled wait returns ctx's error
// but does not stop the work.
func (h *JoinHandle[T]) JoinContext(ctx context.Context) result.Result[T, error] {
	select {
	case <-h.done:
		return h.res
	case <-ctx.Done():
		return result.Err[T](ctx.Err())
	}
}

// Done is closed once the work has completed.
func (h *JoinHandle[T]) Done() <-chan struct{} {
	return h.done
}

// AvailableParallelism is the default number of lines for Scope and Pool.
func AvailableParallelism() int {
	return runtime.GOMAXPROCS(0)
}
