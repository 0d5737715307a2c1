package result

// Result holds either a success value of type T or a failure payload of
// type E. The zero value is neither; always construct via Ok or Err.
// Results are plain values: every transformation returns a new Result and
// nothing is ever mutated in place.
type Result[T, E any] struct {
	ok    bool
	value T
	err   E
}

func Ok[T, E any](v T) Result[T, E] {
	return Result[T, E]{
		ok:    true,
		value: v,
	}
}

func Err[T, E any](e E) Result[T, E] {
	return Result[T, E]{
		ok:  false,
		err: e,
	}
}

// IsOk returns true if the result holds a success value.
func (r Result[T, E]) IsOk() bool {
	return r.ok
}

// IsErr returns true if the result holds a failure payload.
func (r Result[T, E]) IsErr() bool {
	return !r.ok
}

// Value returns the success value and whether it is present.
func (r Result[T, E]) Value() (T, bool) {
	return r.value, r.ok
}

// Err returns the failure payload and whether it is present.
func (r Result[T, E]) Err() (E, bool) {
	return r.err, !r.ok
}

// ValueOr returns the success value, or def when the result is a failure.
func (r Result[T, E]) ValueOr(def T) T {
	if r.ok {
		return r.value
	}
	return def
}

// Map transforms the success value and carries a failure through untouched.
func Map[In, Out, E any](input Result[In, E], onOk func(In) Out) Result[Out, E] {
	if input.ok {
		return Ok[Out, E](onOk(input.value))
	}
	return Err[Out, E](input.err)
}

// MapErr transforms the failure payload and carries a success through untouched.
func MapErr[T, In, Out any](input Result[T, In], onErr func(In) Out) Result[T, Out] {
	if input.ok {
		return Ok[T, Out](input.value)
	}
	return Err[T, Out](onErr(input.err))
}

// AndThen composes a function that itself may fail. A failure short-circuits:
// onOk is never called and the payload is carried through unchanged.
func AndThen[In, Out, E any](input Result[In, E], onOk func(In) Result[Out, E]) Result[Out, E] {
	if input.ok {
		return onOk(input.value)
	}
	return Err[Out, E](input.err)
}

// Flatten collapses a nested result by one level.
func Flatten[T, E any](input Result[Result[T, E], E]) Result[T, E] {
	return AndThen(input, func(inner Result[T, E]) Result[T, E] { return inner })
}

// And returns other if input is a success, else input's failure.
func And[In, Out, E any](input Result[In, E], other Result[Out, E]) Result[Out, E] {
	if input.ok {
		return other
	}
	return Err[Out, E](input.err)
}

// Or returns input if it is a success, else other.
func Or[T, E any](input Result[T, E], other Result[T, E]) Result[T, E] {
	if input.ok {
		return input
	}
	return other
}
