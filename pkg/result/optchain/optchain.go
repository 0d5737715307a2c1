package optchain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/justscale/result/pkg/result"
	"github.com/justscale/result/pkg/result/chain"
)

// Chain wraps a single result.Option to enable fluent composition with
// short-circuit on absence. It mirrors the chain package, with None playing
// the role of the failure variant.
type Chain[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	opt       result.Option[T]
}

// Start creates a new chain from an option.
func Start[T any](o result.Option[T]) Chain[T] {
	return Chain[T]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		opt:       o,
	}
}

// Of creates a new chain from a present value.
func Of[T any](v T) Chain[T] {
	return Start(result.Some(v))
}

// Option returns the underlying option. This is the way out of the chain.
func (c Chain[T]) Option() result.Option[T] {
	return c.opt
}

func (c Chain[T]) Id() uuid.UUID {
	return c.id
}

// CreatedAt is the chain creation time (UTC).
func (c Chain[T]) CreatedAt() time.Time {
	return c.createdAt
}

// Map transforms the value in place of type. For a transformation to a
// different type use the package-level Map.
func (c Chain[T]) Map(onSome func(T) T) Chain[T] {
	return from(c, result.MapOpt(c.opt, onSome))
}

// Then composes a function that may itself come up empty. Absence
// short-circuits: onSome is never called.
func (c Chain[T]) Then(onSome func(T) result.Option[T]) Chain[T] {
	return from(c, result.AndThenOpt(c.opt, onSome))
}

// Filter keeps the value only when the predicate holds; otherwise the chain
// becomes empty.
func (c Chain[T]) Filter(pred func(T) bool) Chain[T] {
	return from(c, result.Filter(c.opt, pred))
}

// Or returns c if it holds a value, else a chain over other.
func (c Chain[T]) Or(other result.Option[T]) Chain[T] {
	if c.opt.IsSome() {
		return c
	}
	return from(c, other)
}

// Ensure triggers side effects for the current variant without changing it.
// Either handler may be nil.
func (c Chain[T]) Ensure(onSome func(T), onNone func()) Chain[T] {
	if v, ok := c.opt.Get(); ok {
		if onSome != nil {
			onSome(v)
		}
	} else if onNone != nil {
		onNone()
	}
	return c
}

// Unwrap returns the value, panicking with a fixed message when the chain is
// empty. There is no payload to surface for absence.
func (c Chain[T]) Unwrap() T {
	v, ok := c.opt.Get()
	if !ok {
		panic("optchain: Unwrap called on an empty option")
	}
	return v
}

// UnwrapOr returns the value or def. Never panics.
func (c Chain[T]) UnwrapOr(def T) T {
	return c.opt.GetOr(def)
}

// UnwrapOrElse returns the value or the result of onNone. Never panics.
func (c Chain[T]) UnwrapOrElse(onNone func() T) T {
	if v, ok := c.opt.Get(); ok {
		return v
	}
	return onNone()
}

// Value returns the value, panicking on absence. Meant for quick inspection,
// not chained control flow.
func (c Chain[T]) Value() T {
	v, ok := c.opt.Get()
	if !ok {
		panic(fmt.Sprintf("optchain: Value called on an empty Option[%T]", v))
	}
	return v
}

// Map transforms the value to a new type, carrying absence through.
func Map[In, Out any](c Chain[In], onSome func(In) Out) Chain[Out] {
	return from(c, result.MapOpt(c.opt, onSome))
}

// Then composes a function producing an option of a new type. Absence
// short-circuits: onSome is never called.
func Then[In, Out any](c Chain[In], onSome func(In) result.Option[Out]) Chain[Out] {
	return from(c, result.AndThenOpt(c.opt, onSome))
}

// Flatten collapses a chain over a nested option by one level.
func Flatten[T any](c Chain[result.Option[T]]) Chain[T] {
	return from(c, result.FlattenOpt(c.opt))
}

// And returns a chain over other if c holds a value, else an empty chain.
func And[In, Out any](c Chain[In], other result.Option[Out]) Chain[Out] {
	if c.opt.IsSome() {
		return from(c, other)
	}
	return from(c, result.None[Out]())
}

// Finally collapses the chain to a final value: exactly one of the two
// handlers runs, depending on the variant.
func Finally[T, Out any](c Chain[T], onSome func(T) Out, onNone func() Out) Out {
	if v, ok := c.opt.Get(); ok {
		return onSome(v)
	}
	return onNone()
}

// ToResult converts the chain to a plain result, using err as the failure
// payload for absence.
func ToResult[T, E any](c Chain[T], err E) result.Result[T, E] {
	return result.ToResult(c.opt, err)
}

// ToResultChain converts the chain to a result-side chain, using err as the
// failure payload for absence. The stamp carries over.
func ToResultChain[T, E any](c Chain[T], err E) chain.Chain[T, E] {
	return chain.From(c.id, c.createdAt, result.ToResult(c.opt, err))
}

// from keeps the originating chain's stamp across transformations.
func from[In, Out any](c Chain[In], o result.Option[Out]) Chain[Out] {
	return Chain[Out]{
		id:        c.id,
		createdAt: c.createdAt,
		opt:       o,
	}
}
