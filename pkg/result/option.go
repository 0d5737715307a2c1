package result

// Option holds a value of type T or marks its absence. The zero value is
// None, so independently constructed absences compare equal for comparable T.
type Option[T any] struct {
	some  bool
	value T
}

func Some[T any](v T) Option[T] {
	return Option[T]{
		some:  true,
		value: v,
	}
}

func None[T any]() Option[T] {
	return Option[T]{}
}

// IsSome returns true if the option holds a value.
func (o Option[T]) IsSome() bool {
	return o.some
}

// IsNone returns true if the option is empty.
func (o Option[T]) IsNone() bool {
	return !o.some
}

// Get returns the value and whether it is present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.some
}

// GetOr returns the value, or def when the option is empty.
func (o Option[T]) GetOr(def T) T {
	if o.some {
		return o.value
	}
	return def
}

// MapOpt transforms the value of a non-empty option; None passes through.
func MapOpt[In, Out any](input Option[In], onSome func(In) Out) Option[Out] {
	if input.some {
		return Some(onSome(input.value))
	}
	return None[Out]()
}

// AndThenOpt composes a function that may itself come up empty. None
// short-circuits: onSome is never called.
func AndThenOpt[In, Out any](input Option[In], onSome func(In) Option[Out]) Option[Out] {
	if input.some {
		return onSome(input.value)
	}
	return None[Out]()
}

// FlattenOpt collapses a nested option by one level.
func FlattenOpt[T any](input Option[Option[T]]) Option[T] {
	return AndThenOpt(input, func(inner Option[T]) Option[T] { return inner })
}

// Filter keeps the value only when the predicate holds; otherwise None.
func Filter[T any](input Option[T], pred func(T) bool) Option[T] {
	if input.some && pred(input.value) {
		return input
	}
	return None[T]()
}

// ToResult converts presence to success and absence to the supplied failure
// payload. The option carries no payload of its own, so the caller decides
// what absence means as an error.
func ToResult[T, E any](input Option[T], err E) Result[T, E] {
	if input.some {
		return Ok[T, E](input.value)
	}
	return Err[T, E](err)
}
