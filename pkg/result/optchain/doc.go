// Package optchain provides a fluent, immutable wrapper over a single
// result.Option, mirroring the chain package with None in the role of the
// failure variant.
//
// Additions over the result side: Filter turns a present-but-unwanted value
// into absence, and ToResult/ToResultChain convert to the result side with a
// caller-supplied failure payload, since an option carries none of its own.
package optchain
