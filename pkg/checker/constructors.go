package checker

import "github.com/dmitrymomot/checkkit/pkg/numberline"

// Named constructors return ready-made checkers for the common cases. Extra
// options compose with the base configuration, so a default or converter
// can be attached in the same call:
//
//	checker.IsFloat(checker.WithDefault(1.5))
//
// Each constructor panics when combined with options that produce an
// invalid configuration, matching MustNew.

// Positive checks for a positive number.
func Positive(includeZero bool, opts ...Option) *Checker {
	return build(opts, WithKinds(KindInt, KindFloat), WithPositive(includeZero))
}

// Negative checks for a negative number.
func Negative(includeZero bool, opts ...Option) *Checker {
	return build(opts, WithKinds(KindInt, KindFloat), WithNegative(includeZero))
}

// PositiveInt checks for a positive integer.
func PositiveInt(includeZero bool, opts ...Option) *Checker {
	return build(opts, WithKinds(KindInt), WithPositive(includeZero))
}

// PositiveFloat checks for a positive float.
func PositiveFloat(includeZero bool, opts ...Option) *Checker {
	return build(opts, WithKinds(KindFloat), WithPositive(includeZero))
}

// NegativeInt checks for a negative integer.
func NegativeInt(includeZero bool, opts ...Option) *Checker {
	return build(opts, WithKinds(KindInt), WithNegative(includeZero))
}

// NegativeFloat checks for a negative float.
func NegativeFloat(includeZero bool, opts ...Option) *Checker {
	return build(opts, WithKinds(KindFloat), WithNegative(includeZero))
}

// IsInt checks for an integer value.
func IsInt(opts ...Option) *Checker {
	return build(opts, WithKinds(KindInt))
}

// IsFloat checks for a float value.
func IsFloat(opts ...Option) *Checker {
	return build(opts, WithKinds(KindFloat))
}

// IsNumber checks for an integer or float value.
func IsNumber(opts ...Option) *Checker {
	return build(opts, WithKinds(KindInt, KindFloat))
}

// IsString checks for a string value.
func IsString(opts ...Option) *Checker {
	return build(opts, WithKinds(KindString))
}

// IsBool checks for a boolean value.
func IsBool(opts ...Option) *Checker {
	return build(opts, WithKinds(KindBool))
}

// IsSlice checks for a slice or array value.
func IsSlice(opts ...Option) *Checker {
	return build(opts, WithKinds(KindSlice))
}

// IsMap checks for a map value.
func IsMap(opts ...Option) *Checker {
	return build(opts, WithKinds(KindMap))
}

// GreaterThan checks for a number above min.
func GreaterThan(min float64, inclusive bool, opts ...Option) *Checker {
	return build(opts, WithKinds(KindInt, KindFloat), WithLine(numberline.GreaterThan(min, inclusive)))
}

// LessThan checks for a number below max.
func LessThan(max float64, inclusive bool, opts ...Option) *Checker {
	return build(opts, WithKinds(KindInt, KindFloat), WithLine(numberline.LessThan(max, inclusive)))
}

// InRange checks for a number between start and end, bounds included.
func InRange(start, end float64, opts ...Option) *Checker {
	line, err := numberline.Between(start, end, true, true)
	if err != nil {
		panic(err)
	}
	return build(opts, WithKinds(KindInt, KindFloat), WithLine(line))
}

// Between checks for a number strictly between start and end.
func Between(start, end float64, opts ...Option) *Checker {
	line, err := numberline.Between(start, end, false, false)
	if err != nil {
		panic(err)
	}
	return build(opts, WithKinds(KindInt, KindFloat), WithLine(line))
}

// NonZero checks that a number is not zero.
func NonZero(opts ...Option) *Checker {
	return build(opts, WithKinds(KindInt, KindFloat), WithLine(numberline.Full().Subtract(numberline.Single(0))))
}

// Literals checks that the value equals one of the given literals.
func Literals(values ...any) *Checker {
	return MustNew(WithLiterals(values...))
}

// Even checks for an even integer.
func Even(opts ...Option) *Checker {
	return build(opts, WithKinds(KindInt), WithChecks(checkEven))
}

// Odd checks for an odd integer.
func Odd(opts ...Option) *Checker {
	return build(opts, WithKinds(KindInt), WithChecks(checkOdd))
}

// OfLength checks that a string, slice or map has exactly length elements.
func OfLength(length int, opts ...Option) *Checker {
	return build(opts, WithChecks(checkLength(length)))
}

// LengthBetween checks that a string, slice or map has between min and max
// elements, both inclusive.
func LengthBetween(min, max int, opts ...Option) *Checker {
	return build(opts, WithChecks(checkLengthBetween(min, max)))
}

// Sorted checks that a slice of numbers or strings is sorted ascending.
func Sorted(opts ...Option) *Checker {
	return build(opts, WithKinds(KindSlice), WithChecks(checkSorted))
}

// Contains checks that a string contains the given substring, or that a
// slice contains it as an element.
func Contains(substr string, opts ...Option) *Checker {
	return build(opts, WithChecks(checkContains(substr)))
}

// SliceOf checks for a slice whose elements are all of the given kind.
func SliceOf(kind Kind, opts ...Option) *Checker {
	return build(opts, WithKinds(KindSlice), WithChecks(checkElementKind(kind)))
}

func build(extra []Option, base ...Option) *Checker {
	return MustNew(append(base, extra...)...)
}
