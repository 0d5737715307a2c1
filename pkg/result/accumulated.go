package result

// Accumulated is an ordered list of failure payloads gathered from many
// results. It is a distinct type rather than a bare slice so that a
// fail-fast Result[T, E] and an accumulating Result[T, Accumulated[E]]
// cannot be confused at compile time.
type Accumulated[E any] struct {
	errs []E
}

// NewAccumulated builds an accumulated payload preserving argument order.
func NewAccumulated[E any](errs ...E) Accumulated[E] {
	out := make([]E, len(errs))
	copy(out, errs)
	return Accumulated[E]{errs: out}
}

// Errors returns a copy of the individual payloads, in accumulation order.
func (a Accumulated[E]) Errors() []E {
	out := make([]E, len(a.errs))
	copy(out, a.errs)
	return out
}

// Len returns the number of accumulated payloads.
func (a Accumulated[E]) Len() int {
	return len(a.errs)
}
