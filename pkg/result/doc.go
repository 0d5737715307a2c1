// Package result provides the two algebraic containers Result[T, E] and
// Option[T], plus the building blocks the rest of the module composes:
//
// - Ok/Err, Some/None: construct containers
// - Map/MapErr/AndThen/Flatten: transform results with short-circuit on failure
// - MapOpt/AndThenOpt/Filter/ToResult: the same for options
// - Accumulated: a distinctly typed ordered list of failure payloads,
//   produced only by the collect and stream packages
// - Try/Catch/CatchAsync: lift fallible or panicking calls into a Result
//
// Containers are plain immutable values with no hidden state; both marshal
// to a two-field JSON form and round-trip losslessly. The plain accessors
// are total (comma-ok); panicking accessors exist only on the fluent
// wrappers in the chain and optchain packages.
package result
