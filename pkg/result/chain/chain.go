package chain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/justscale/result/pkg/result"
)

// Chain wraps a single result.Result to enable fluent composition with
// short-circuit on failure. Every operation returns a new Chain; the id and
// creation time stamped at Start survive every transformation, so a chain
// can be traced across a pipeline.
type Chain[T, E any] struct {
	id        uuid.UUID
	createdAt time.Time
	res       result.Result[T, E]
}

// Start creates a new chain from a result.
func Start[T, E any](r result.Result[T, E]) Chain[T, E] {
	return Chain[T, E]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		res:       r,
	}
}

// Of creates a new chain from a success value.
func Of[T, E any](v T) Chain[T, E] {
	return Start(result.Ok[T, E](v))
}

// From creates a chain over r stamped with the given id and creation time,
// so chain identity can carry across container kinds (see optchain.ToResultChain).
func From[T, E any](id uuid.UUID, createdAt time.Time, r result.Result[T, E]) Chain[T, E] {
	return Chain[T, E]{
		id:        id,
		createdAt: createdAt,
		res:       r,
	}
}

// Result returns the underlying result. This is the way out of the chain.
func (c Chain[T, E]) Result() result.Result[T, E] {
	return c.res
}

func (c Chain[T, E]) Id() uuid.UUID {
	return c.id
}

// CreatedAt is the chain creation time (UTC).
func (c Chain[T, E]) CreatedAt() time.Time {
	return c.createdAt
}

// Map transforms the success value in place of type. For a transformation
// to a different type use the package-level Map.
func (c Chain[T, E]) Map(onOk func(T) T) Chain[T, E] {
	return from(c, result.Map(c.res, onOk))
}

// MapErr transforms the failure payload; a success passes through untouched.
func (c Chain[T, E]) MapErr(onErr func(E) E) Chain[T, E] {
	return from(c, result.MapErr(c.res, onErr))
}

// Then composes a function that may itself fail. On failure onOk is never
// called and the payload short-circuits through the rest of the chain.
func (c Chain[T, E]) Then(onOk func(T) result.Result[T, E]) Chain[T, E] {
	return from(c, result.AndThen(c.res, onOk))
}

// And returns a chain over other if c holds a success, else c unchanged.
func (c Chain[T, E]) And(other result.Result[T, E]) Chain[T, E] {
	return from(c, result.And(c.res, other))
}

// Or returns c if it holds a success, else a chain over other.
func (c Chain[T, E]) Or(other result.Result[T, E]) Chain[T, E] {
	return from(c, result.Or(c.res, other))
}

// Ensure triggers side effects for the current variant without changing it.
// Either handler may be nil.
func (c Chain[T, E]) Ensure(onOk func(T), onErr func(E)) Chain[T, E] {
	if v, ok := c.res.Value(); ok {
		if onOk != nil {
			onOk(v)
		}
	} else if e, isErr := c.res.Err(); isErr && onErr != nil {
		onErr(e)
	}
	return c
}

// Unwrap returns the success value. On failure it panics with the held
// failure payload itself, so diagnostic context is not lost.
func (c Chain[T, E]) Unwrap() T {
	v, ok := c.res.Value()
	if !ok {
		e, _ := c.res.Err()
		panic(e)
	}
	return v
}

// UnwrapOr returns the success value or def. Never panics.
func (c Chain[T, E]) UnwrapOr(def T) T {
	return c.res.ValueOr(def)
}

// UnwrapOrElse returns the success value or onErr applied to the failure
// payload. Never panics.
func (c Chain[T, E]) UnwrapOrElse(onErr func(E) T) T {
	if v, ok := c.res.Value(); ok {
		return v
	}
	e, _ := c.res.Err()
	return onErr(e)
}

// UnwrapErr returns the failure payload, panicking if the chain holds a
// success.
func (c Chain[T, E]) UnwrapErr() E {
	e, isErr := c.res.Err()
	if !isErr {
		panic("chain: UnwrapErr called on a success")
	}
	return e
}

// Value returns the success value, panicking on the wrong variant. Meant
// for quick inspection, not chained control flow.
func (c Chain[T, E]) Value() T {
	v, ok := c.res.Value()
	if !ok {
		e, _ := c.res.Err()
		panic(fmt.Sprintf("chain: Value called on a failure: %v", e))
	}
	return v
}

// Error returns the failure payload, panicking on the wrong variant.
func (c Chain[T, E]) Error() E {
	e, isErr := c.res.Err()
	if !isErr {
		v, _ := c.res.Value()
		panic(fmt.Sprintf("chain: Error called on a success: %v", v))
	}
	return e
}

// Map transforms the success value to a new type, carrying a failure through.
func Map[In, Out, E any](c Chain[In, E], onOk func(In) Out) Chain[Out, E] {
	return from(c, result.Map(c.res, onOk))
}

// MapErr transforms the failure payload to a new type, carrying a success
// through.
func MapErr[T, In, Out any](c Chain[T, In], onErr func(In) Out) Chain[T, Out] {
	return from(c, result.MapErr(c.res, onErr))
}

// Then composes a function producing a result of a new type. A failure
// short-circuits: onOk is never called.
func Then[In, Out, E any](c Chain[In, E], onOk func(In) result.Result[Out, E]) Chain[Out, E] {
	return from(c, result.AndThen(c.res, onOk))
}

// Flatten collapses a chain over a nested result by one level.
func Flatten[T, E any](c Chain[result.Result[T, E], E]) Chain[T, E] {
	return from(c, result.Flatten(c.res))
}

// And returns a chain over other if c holds a success, else c's failure.
func And[In, Out, E any](c Chain[In, E], other result.Result[Out, E]) Chain[Out, E] {
	return from(c, result.And(c.res, other))
}

// Finally collapses the chain to a final value: exactly one of the two
// handlers runs, depending on the variant.
func Finally[T, E, Out any](c Chain[T, E], onOk func(T) Out, onErr func(E) Out) Out {
	if v, ok := c.res.Value(); ok {
		return onOk(v)
	}
	e, _ := c.res.Err()
	return onErr(e)
}

// from keeps the originating chain's stamp across transformations.
func from[In, InE, Out, OutE any](c Chain[In, InE], r result.Result[Out, OutE]) Chain[Out, OutE] {
	return Chain[Out, OutE]{
		id:        c.id,
		createdAt: c.createdAt,
		res:       r,
	}
}
