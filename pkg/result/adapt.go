package result

import (
	"errors"
	"fmt"
)

// Try lifts a Go-native fallible call into a Result.
func Try[T any](f func() (T, error)) Result[T, error] {
	v, err := f()
	if err != nil {
		return Err[T, error](err)
	}
	return Ok[T, error](v)
}

// Catch runs f and converts a panic into a failure. A panic value that is
// already an error passes through as-is; anything else is coerced into an
// error whose message is the value's textual form, so panic(42) yields an
// error reading "42".
func Catch[T any](f func() T) (res Result[T, error]) {
	defer func() {
		if v := recover(); v != nil {
			res = Err[T, error](coercePanic(v))
		}
	}()
	return Ok[T, error](f())
}

// CatchAsync runs f in its own goroutine and awaits the outcome. A panic in
// spawned work is only recoverable inside that goroutine, so the recovery
// happens there and the verdict travels back over a one-slot channel.
func CatchAsync[T any](f func() T) Result[T, error] {
	done := make(chan Result[T, error], 1)

	go func() {
		defer func() {
			if v := recover(); v != nil {
				done <- Err[T, error](coercePanic(v))
			}
		}()
		done <- Ok[T, error](f())
	}()

	return <-done
}

func coercePanic(v any) error {
	if err, ok := v.(error); ok {
		return err
	}
	return errors.New(fmt.Sprint(v))
}
