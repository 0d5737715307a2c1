package result

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOkErrGuards(t *testing.T) {
	t.Parallel()

	ok := Ok[int, string](5)
	assert.True(t, ok.IsOk())
	assert.False(t, ok.IsErr())

	v, present := ok.Value()
	require.True(t, present)
	assert.Equal(t, 5, v)

	_, isErr := ok.Err()
	assert.False(t, isErr)

	fail := Err[int, string]("boom")
	assert.False(t, fail.IsOk())
	assert.True(t, fail.IsErr())

	e, isErr := fail.Err()
	require.True(t, isErr)
	assert.Equal(t, "boom", e)
}

func TestValueOr(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 5, Ok[int, string](5).ValueOr(9))
	assert.Equal(t, 9, Err[int, string]("boom").ValueOr(9))
}

func TestMap(t *testing.T) {
	t.Parallel()

	doubled := Map(Ok[int, string](21), func(v int) int { return v * 2 })
	v, _ := doubled.Value()
	assert.Equal(t, 42, v)

	// identity keeps the container equal
	same := Map(Ok[int, string](7), func(v int) int { return v })
	assert.Equal(t, Ok[int, string](7), same)

	called := false
	failed := Map(Err[int, string]("boom"), func(v int) int {
		called = true
		return v
	})
	assert.False(t, called)
	e, _ := failed.Err()
	assert.Equal(t, "boom", e)
}

func TestMapErr(t *testing.T) {
	t.Parallel()

	wrapped := MapErr(Err[int, string]("boom"), func(e string) error { return errors.New(e) })
	e, isErr := wrapped.Err()
	require.True(t, isErr)
	assert.EqualError(t, e, "boom")

	called := false
	passed := MapErr(Ok[int, string](3), func(e string) error {
		called = true
		return nil
	})
	assert.False(t, called)
	assert.True(t, passed.IsOk())
}

func TestAndThen_ShortCircuit(t *testing.T) {
	t.Parallel()

	calls := 0
	half := func(v int) Result[int, string] {
		calls++
		if v%2 != 0 {
			return Err[int, string]("odd")
		}
		return Ok[int, string](v / 2)
	}

	out := AndThen(AndThen(AndThen(Ok[int, string](20), half), half), half)
	assert.True(t, out.IsErr())
	e, _ := out.Err()
	assert.Equal(t, "odd", e)
	// 20 -> 10 -> 5 -> odd; the third call fails, no fourth exists
	assert.Equal(t, 3, calls)

	calls = 0
	out = AndThen(AndThen(Err[int, string]("boom"), half), half)
	assert.Equal(t, 0, calls)
	e, _ = out.Err()
	assert.Equal(t, "boom", e)
}

func TestFlatten(t *testing.T) {
	t.Parallel()

	nested := Ok[Result[int, string], string](Ok[int, string](7))
	assert.Equal(t, Ok[int, string](7), Flatten(nested))

	nestedErr := Ok[Result[int, string], string](Err[int, string]("inner"))
	assert.Equal(t, Err[int, string]("inner"), Flatten(nestedErr))

	outerErr := Err[Result[int, string], string]("outer")
	assert.Equal(t, Err[int, string]("outer"), Flatten(outerErr))
}

func TestAndOr(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Ok[string, string]("b"), And(Ok[int, string](1), Ok[string, string]("b")))
	assert.Equal(t, Err[string, string]("boom"), And(Err[int, string]("boom"), Ok[string, string]("b")))

	assert.Equal(t, Ok[int, string](1), Or(Ok[int, string](1), Ok[int, string](2)))
	assert.Equal(t, Ok[int, string](2), Or(Err[int, string]("boom"), Ok[int, string](2)))
}

func TestAccumulated(t *testing.T) {
	t.Parallel()

	acc := NewAccumulated("a", "b", "c")
	assert.Equal(t, 3, acc.Len())
	assert.Equal(t, []string{"a", "b", "c"}, acc.Errors())

	// accessors hand out copies, not the backing slice
	errs := acc.Errors()
	errs[0] = "mutated"
	assert.Equal(t, []string{"a", "b", "c"}, acc.Errors())
}
