// Package checker provides a reusable, configurable value checker for
// validating single values and record fields against simple constraints:
// type-tag membership, literal membership, numeric ranges, and custom check
// functions, with optional conversion of mistyped input.
//
// The central type is Checker, an immutable rule object built once with
// functional options (or one of the named constructors) and then applied to
// any number of values. Validation failures are reported as
// ValidationErrors, a slice of field-level ValidationError values carrying
// the offending value, the variable name, a human-readable reason and
// translation metadata.
//
// # Architecture
//
// A Checker holds up to four check categories: an allowed Kind set, a
// literal set, a number line (pkg/numberline) and extra CheckFunc hooks.
// All configured categories are evaluated on every Validate call and their
// failures aggregated, so a caller sees every violated constraint at once.
// When the value's kind is not allowed and a converter is configured, the
// converter runs first and its result replaces the value for the remaining
// checks. The package holds no global state and checkers are safe for
// concurrent use.
//
// Core building blocks:
//   - Checker           – immutable rule object with Validate(value, name)
//   - Option            – functional configuration (WithKinds, WithLiterals, ...)
//   - Kind              – enumerated runtime type tag
//   - ValidationError   – describes a single failure and supports i18n keys
//   - ValidationErrors  – slice type that implements the error interface
//
// # Usage
//
//	price, err := checker.Positive(false).Validate(19.99, "price")
//	if err != nil {
//	    if verrs := checker.Extract(err); verrs != nil {
//	        // iterate over field-level messages or translate them
//	    }
//	}
//
//	c, err := checker.New(
//	    checker.WithKinds(checker.KindFloat),
//	    checker.WithConverter(checker.ToFloat),
//	    checker.WithPositive(true),
//	)
//
// Named constructors such as Positive, IsInt or Literals return ready-made
// checkers; construction and immediate validation compose into one chained
// call: checker.IsInt().Validate(v, "count").
//
// # Error Handling
//
// ValidationErrors implements the error interface and works with errors.As,
// so validation failures can be detected while preserving field details.
// Converter failures are normalized into ValidationError values rather than
// surfacing the converter's native error.
package checker
