package stream

import (
	"iter"

	"github.com/justscale/result/pkg/result"
)

// Collect consumes the channel sequentially and fail-fast: success values
// accumulate in arrival order until the first failure, which is returned
// as-is without requesting anything further from the source. If the channel
// closes without a failure, all accumulated values are returned.
func Collect[T, E any](ch <-chan result.Result[T, E]) result.Result[[]T, E] {
	values := make([]T, 0)
	for r := range ch {
		v, ok := r.Value()
		if !ok {
			e, _ := r.Err()
			return result.Err[[]T, E](e)
		}
		values = append(values, v)
	}
	return result.Ok[[]T, E](values)
}

// CollectAll drains the channel to close, accumulating successes and
// failures separately in arrival order. Any failure makes the outcome a
// failure carrying every failure payload; otherwise all successes are
// returned.
func CollectAll[T, E any](ch <-chan result.Result[T, E]) result.Result[[]T, result.Accumulated[E]] {
	values := make([]T, 0)
	errs := make([]E, 0)
	for r := range ch {
		if v, ok := r.Value(); ok {
			values = append(values, v)
			continue
		}
		e, _ := r.Err()
		errs = append(errs, e)
	}
	if len(errs) > 0 {
		return result.Err[[]T, result.Accumulated[E]](result.NewAccumulated(errs...))
	}
	return result.Ok[[]T, result.Accumulated[E]](values)
}

// TakeUntilErr returns a lazy sequence of the channel's success values and a
// terminal lookup. The sequence pulls one element per advancement, so at
// most one element is in flight; it ends when the source closes, when the
// consumer stops ranging, or when the source yields a failure. In the last
// case the terminal func reports the failure payload that stopped
// consumption; otherwise it reports absence. The terminal verdict is only
// meaningful once the sequence has ended.
func TakeUntilErr[T, E any](ch <-chan result.Result[T, E]) (iter.Seq[T], func() result.Option[E]) {
	terminal := result.None[E]()

	seq := func(yield func(T) bool) {
		for r := range ch {
			v, ok := r.Value()
			if !ok {
				e, _ := r.Err()
				terminal = result.Some(e)
				return
			}
			if !yield(v) {
				return
			}
		}
	}

	return seq, func() result.Option[E] { return terminal }
}
