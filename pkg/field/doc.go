// Package field binds checkers to named record attributes, validating every
// assignment the way a data-modeling layer validates its fields.
//
// A Field wraps one checker together with an optional default and the
// attribute name it belongs to. Bind resolves the name at definition time
// and validates the default through the same checker that guards explicit
// assignments, so an invalid default fails as early as an invalid value
// would. Set validates (and possibly converts) the incoming value before
// storing it; a failed Set leaves the previously stored value untouched.
//
// Record groups fields into an ordered, named collection and models the
// host structured record: Define registers and binds a field, Fill performs
// construction-time assignment of many values at once, aggregating all
// failures.
//
// # Usage
//
//	price := field.New[float64](checker.PositiveFloat(true), field.WithDefault(0.0))
//
//	rec := field.NewRecord()
//	if err := rec.Define("price", price); err != nil { ... }
//	if err := rec.Set("price", 19.99); err != nil { ... }
//	fmt.Println(price.Get()) // 19.99
package field
