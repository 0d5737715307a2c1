package stream

import (
	"context"

	"github.com/justscale/result/pkg/result"
)

// Emit feeds the given results into a fresh channel, in order, closing it
// when they are exhausted or when ctx is done. Sends block until the
// consumer pulls, so production stays one element ahead at most.
func Emit[T, E any](ctx context.Context, rs []result.Result[T, E]) <-chan result.Result[T, E] {
	out := make(chan result.Result[T, E])

	go func() {
		defer close(out)

		for _, r := range rs {
			select {
			case out <- r:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out
}

// EmitValues feeds plain values into a fresh channel as successes. Useful as
// the head of a pipeline that introduces failures further down.
func EmitValues[T, E any](ctx context.Context, vs []T) <-chan result.Result[T, E] {
	rs := make([]result.Result[T, E], len(vs))
	for i, v := range vs {
		rs[i] = result.Ok[T, E](v)
	}
	return Emit(ctx, rs)
}
