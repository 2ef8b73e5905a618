// Package engine implements closed-form contact-center staffing math:
// traffic-intensity derivation, the Erlang B/C/A probability models, the
// monotone agent search that inverts service level into a headcount, and
// the reverse evaluator that reports what a fixed headcount can achieve.
//
// Every function in this package is pure and synchronous. There is no I/O,
// no shared state, and no unbounded loop: callers may invoke the engine
// concurrently from any number of goroutines without coordination.
//
// Infinite ASA (math.Inf(1)) is a sentinel for an unstable queue, not a
// number to feed into further arithmetic. All probabilities are clamped to
// [0,1] after derivation to absorb floating-point drift.
package engine
