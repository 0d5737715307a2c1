// Package collect reduces a finite, ordered slice of results into one
// aggregate result under two policies:
//
// - Collect: fail-fast, the first failure wins and later elements are
//   dropped from the output
// - CollectAll: accumulating, every failure is gathered into a distinctly
//   typed result.Accumulated payload
//
// Partition is the non-failing split underneath CollectAll. None of these
// functions ever panics; failure is always a return value.
package collect
