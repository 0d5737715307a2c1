// Package stream consumes an unbounded asynchronous sequence of results,
// delivered over a channel the caller owns. It is the asynchronous analogue
// of the collect package:
//
// - Collect: fail-fast, stops pulling at the first failure
// - CollectAll: drains the source fully, gathering every failure
// - TakeUntilErr: lazy pull-based sequence of successes plus the failure
//   that stopped it, transported rather than raised
//
// Consumption is strictly sequential with no prefetching beyond the element
// in flight. The consumers take no context: abandoning the sequence is the
// only cancellation, and a stalled source stalls the consumer. The Emit
// producers are the context-aware half for tests and pipeline heads.
package stream
