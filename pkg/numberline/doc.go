// Package numberline models sets of real numbers as unions of intervals.
//
// A NumberLine is built from Range values, each delimited by two Bound
// values that carry their own inclusivity. Lines support union, subtraction,
// inversion and containment checks, which makes them a convenient way to
// express numeric constraints such as "positive", "between 0 and 1
// exclusive" or "anything except zero" as a single value.
//
// All operations return new values; a NumberLine is never mutated after
// construction, so instances can be shared freely between goroutines.
//
// # Usage
//
//	line := numberline.Positive(false)
//	line.Contains(1.5) // true
//	line.Contains(0)   // false
//
//	nonzero := numberline.Full().Subtract(numberline.Single(0))
//	nonzero.Contains(0) // false
package numberline
