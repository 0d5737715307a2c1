package collect

import "github.com/justscale/result/pkg/result"

// Collect reduces a slice of results fail-fast: the first failure is
// returned as-is and everything after it is ignored. With no failures it
// returns all success values in input order. An empty input collects to a
// success over an empty slice.
func Collect[T, E any](rs []result.Result[T, E]) result.Result[[]T, E] {
	values := make([]T, 0, len(rs))
	for _, r := range rs {
		v, ok := r.Value()
		if !ok {
			e, _ := r.Err()
			return result.Err[[]T, E](e)
		}
		values = append(values, v)
	}
	return result.Ok[[]T, E](values)
}

// CollectAll reduces a slice of results accumulating every failure: one scan
// partitions the input, and if any failure exists the outcome is a failure
// carrying all failure payloads in input order (successes are discarded).
// Otherwise it returns all success values in input order.
func CollectAll[T, E any](rs []result.Result[T, E]) result.Result[[]T, result.Accumulated[E]] {
	values, errs := Partition(rs)
	if len(errs) > 0 {
		return result.Err[[]T, result.Accumulated[E]](result.NewAccumulated(errs...))
	}
	return result.Ok[[]T, result.Accumulated[E]](values)
}

// Partition never fails: it splits the input into success values and failure
// payloads, both in input order. The two lengths always sum to len(rs).
func Partition[T, E any](rs []result.Result[T, E]) ([]T, []E) {
	values := make([]T, 0, len(rs))
	errs := make([]E, 0)
	for _, r := range rs {
		if v, ok := r.Value(); ok {
			values = append(values, v)
			continue
		}
		e, _ := r.Err()
		errs = append(errs, e)
	}
	return values, errs
}
