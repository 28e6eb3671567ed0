package seq

import (
	"context"

	"github.com/ib-77/strata/pkg/rop/option"
)

// ToChan sends the elements of it on the returned channel from a new
// goroutine. The channel is closed when it is exhausted or ctx is done;
// elements not yet sent stay in it.
func ToChan[T any](ctx context.Context, it Iterator[T]) <-chan T {
	out := make(chan T)

	go func() {
		defer close(out)

		for ctx.Err() == nil {
			o := it.Next()
			if o.IsNone() {
				return
			}

			select {
			case out <- o.Unwrap():
			case <-ctx.Done():
				return
			}
		}
	}()

	return out
}

// FromChan yields values received from ch until it is closed or ctx is done.
func FromChan[T any](ctx context.Context, ch <-chan T) Iterator[T] {
	return Func[T](func() option.Option[T] {
		if ctx.Err() != nil {
			return option.None[T]()
		}
		select {
		case v, ok := <-ch:
			return option.FromPair(v, ok)
		case <-ctx.Done():
			return option.None[T]()
		}
	})
}
