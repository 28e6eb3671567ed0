package thread

import (
	"context"
	"sync"

	"github.com/ib-77/strata/pkg/collections/queue"
	"github.com/ib-77/strata/pkg/rop"
	"github.com/ib-77/strata/pkg/rop/option"
	"github.com/ib-77/strata/pkg/rop/result"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type task[T any] struct {
	work   Work[T]
	handle *JoinHandle[T]
}

// Pool holds submitted work in a FIFO queue until Run drains it.
type Pool[T any] struct {
	lines   int
	mu      sync.Mutex
	pending queue.Queue[task[T]]
}

// NewPool creates a pool that runs work on the given number of lines. A
// value below one uses AvailableParallelism.
func NewPool[T any](lines int) *Pool[T] {
	if lines < 1 {
		lines = AvailableParallelism()
	}
	return &Pool[T]{lines: lines}
}

// Submit queues work and returns its handle. The work starts once Run
// picks it up.
func (p *Pool[T]) Submit(work Work[T], opts ...SpawnOption) *JoinHandle[T] {
	h := newHandle[T](opts...)

	p.mu.Lock()
	p.pending.Enqueue(task[T]{work: work, handle: h})
	p.mu.Unlock()

	return h
}

func (p *Pool[T]) Pending() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.pending.Len()
}

func (p *Pool[T]) next() option.Option[task[T]] {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.pending.Dequeue()
}

// Run drains the queue on p's lines and returns when it is empty. Work
// still queued when ctx ends is not started; its handles finish with the
// context error, and Run returns that error.
func (p *Pool[T]) Run(ctx context.Context) error {
	g := &errgroup.Group{}

	for range p.lines {
		g.Go(func() error {
			return p.line(ctx)
		})
	}

	return g.Wait()
}

func (p *Pool[T]) line(ctx context.Context) error {
	var skipped error
	for t := p.next(); t.IsSome(); t = p.next() {
		tk := t.Unwrap()

		if err := ctx.Err(); err != nil {
			tk.handle.finish(resultErr[T](err))
			skipped = err
			continue
		}

		tk.handle.run(ctx, tk.work)
	}

	if skipped != nil {
		if rop.IsCancellationError(skipped) {
			zap.S().Debugw("pool line cancelled", "error", skipped)
		} else {
			zap.S().Warnw("pool line stopped", "error", skipped)
		}
	}
	return skipped
}

func resultErr[T any](err error) result.Result[T, error] {
	return result.Err[T](err)
}
