// Package chain provides a fluent, immutable wrapper over a single
// result.Result for method-chained composition.
//
// Type-preserving operations are methods (Map, MapErr, Then, And, Or,
// Ensure); operations that change a type parameter are package-level
// functions (Map, MapErr, Then, Flatten, And, Finally), since Go methods
// cannot introduce type parameters.
//
// A chain never mutates: every operation returns a new Chain over a new
// result, so reusing a chain across branches is safe. The unwrap family and
// the Value/Error accessors are the only operations that panic, and only on
// the wrong variant; everything else reports failure as a value.
package chain
