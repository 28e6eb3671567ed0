package thread

import (
	"context"
	"sync"

	"golang.org/x/sync/semaphore"
)

// Scope bounds how many spawned goroutines run at once and lets the caller
// wait for all of them.
type Scope struct {
	ctx context.Context
	sem *semaphore.Weighted
	wg  sync.WaitGroup
}

// NewScope allows at most limit goroutines to run work concurrently. A
// limit below one uses AvailableParallelism.
func NewScope(ctx context.Context, limit int) *Scope {
	if limit < 1 {
		limit = AvailableParallelism()
	}
	return &Scope{ctx: ctx, sem: semaphore.NewWeighted(int64(limit))}
}

// Go spawns work inside s. If s's context ends before a slot frees up, the
// handle finishes with the context error and work never runs.
func Go[T any](s *Scope, work Work[T], opts ...SpawnOption) *JoinHandle[T] {
	h := newHandle[T](opts...)
	s.wg.Add(1)

	go func() {
		defer s.wg.Done()

		if err := s.ctx.Err(); err != nil {
			h.finish(resultErr[T](err))
			return
		}
		if err := s.sem.Acquire(s.ctx, 1); err != nil {
			h.finish(resultErr[T](err))
			return
		}
		defer s.sem.Release(1)

		h.run(s.ctx, work)
	}()

	return h
}

// Wait blocks until every goroutine started with Go has finished.
func (s *Scope) Wait() {
	s.wg.Wait()
}
