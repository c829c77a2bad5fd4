package checker

import (
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/dmitrymomot/checkkit/pkg/numberline"
)

type noValue struct{}

// NoValue is the sentinel passed to Validate in place of a missing value.
// A checker substitutes its default for it, or fails when it has none.
var NoValue any = noValue{}

// IsNoValue reports whether value is the NoValue sentinel.
func IsNoValue(value any) bool {
	_, ok := value.(noValue)
	return ok
}

// ConvertFunc coerces a value into an acceptable type.
type ConvertFunc func(value any) (any, error)

// CheckFunc is a custom per-value check. A non-nil return marks the value
// invalid; the error text becomes the validation message.
type CheckFunc func(value any) error

// Checker validates a single value against its configured constraints.
// It is immutable after construction and safe for concurrent use.
type Checker struct {
	kinds      []Kind
	literals   []any
	line       *numberline.NumberLine
	convert    ConvertFunc
	checks     []CheckFunc
	def        any
	defFunc    func() any
	hasDefault bool
	replaceNil bool

	// distinguishes a set configured empty from one not configured at all
	kindsSet    bool
	literalsSet bool
}

// Option configures a Checker during construction.
type Option func(*Checker)

// WithKinds restricts values to the given type tags.
func WithKinds(kinds ...Kind) Option {
	return func(c *Checker) {
		c.kinds = append(c.kinds, kinds...)
		c.kindsSet = true
	}
}

// WithLiterals restricts values to an enumerated set of exact values.
func WithLiterals(values ...any) Option {
	return func(c *Checker) {
		c.literals = append(c.literals, values...)
		c.literalsSet = true
	}
}

// WithLine restricts numeric values to the given number line.
func WithLine(line *numberline.NumberLine) Option {
	return func(c *Checker) {
		c.line = line
	}
}

// WithPositive restricts numeric values to positive ones.
func WithPositive(includeZero bool) Option {
	return WithLine(numberline.Positive(includeZero))
}

// WithNegative restricts numeric values to negative ones.
func WithNegative(includeZero bool) Option {
	return WithLine(numberline.Negative(includeZero))
}

// WithConverter sets the conversion fallback used when a value's kind is
// not allowed.
func WithConverter(fn ConvertFunc) Option {
	return func(c *Checker) {
		c.convert = fn
	}
}

// WithChecks appends custom check functions.
func WithChecks(checks ...CheckFunc) Option {
	return func(c *Checker) {
		c.checks = append(c.checks, checks...)
	}
}

// WithDefault sets the value substituted for NoValue input.
func WithDefault(value any) Option {
	return func(c *Checker) {
		c.def = value
		c.hasDefault = true
	}
}

// WithDefaultFunc sets a factory producing a fresh default per call,
// for mutable defaults such as slices or maps.
func WithDefaultFunc(fn func() any) Option {
	return func(c *Checker) {
		c.defFunc = fn
	}
}

// WithReplaceNil makes a nil value behave like NoValue, substituting the
// default instead of failing the kind check.
func WithReplaceNil(replace bool) Option {
	return func(c *Checker) {
		c.replaceNil = replace
	}
}

// New builds a checker from the given options. Configuring an empty kind,
// literal or number-line set is a construction error; a checker with no
// configured category trivially passes everything.
func New(opts ...Option) (*Checker, error) {
	c := &Checker{}
	for _, opt := range opts {
		opt(c)
	}
	if err := c.normalize(); err != nil {
		return nil, err
	}
	return c, nil
}

// MustNew is like New but panics on a construction error. It backs the
// named constructors, whose base configurations are statically valid.
func MustNew(opts ...Option) *Checker {
	c, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return c
}

// normalize dedupes the configured sets and cross-prunes literals against
// kinds: literals of a disallowed kind are dropped, and kinds unmatched by
// any literal are dropped with them.
func (c *Checker) normalize() error {
	if c.kindsSet {
		c.kinds = dedupeKinds(c.kinds)
		if len(c.kinds) == 0 {
			return ErrEmptyKinds
		}
	}
	if c.literalsSet {
		c.literals = dedupeLiterals(c.literals)
		if len(c.literals) == 0 {
			return ErrEmptyLiterals
		}
	}
	if c.line != nil && c.line.IsEmpty() {
		return ErrEmptyLine
	}

	if c.kindsSet && c.literalsSet {
		var kept []any
		for _, literal := range c.literals {
			if slices.Contains(c.kinds, KindOf(literal)) {
				kept = append(kept, literal)
			}
		}
		if len(kept) == 0 {
			return fmt.Errorf("%w: no literals are of an allowed kind", ErrEmptyLiterals)
		}
		c.literals = kept

		var keptKinds []Kind
		for _, kind := range c.kinds {
			if slices.ContainsFunc(c.literals, func(l any) bool { return KindOf(l) == kind }) {
				keptKinds = append(keptKinds, kind)
			}
		}
		c.kinds = keptKinds
	}

	// A number line cannot constrain non-numeric kinds.
	if c.line != nil && c.kindsSet &&
		!slices.Contains(c.kinds, KindInt) && !slices.Contains(c.kinds, KindFloat) {
		c.line = nil
	}

	return nil
}

// Merge combines two checkers into a new one: set-like attributes union,
// number lines union, and single-slot attributes (default, converter) must
// be configured on at most one side.
func (c *Checker) Merge(other *Checker) (*Checker, error) {
	if other == nil {
		return c, nil
	}

	merged := &Checker{}

	if c.hasDefaultValue() && other.hasDefaultValue() {
		return nil, fmt.Errorf("%w: default values", ErrMergeConflict)
	}
	if c.hasDefaultValue() {
		merged.def, merged.defFunc, merged.hasDefault = c.def, c.defFunc, c.hasDefault
	} else {
		merged.def, merged.defFunc, merged.hasDefault = other.def, other.defFunc, other.hasDefault
	}

	if c.convert != nil && other.convert != nil {
		return nil, fmt.Errorf("%w: converters", ErrMergeConflict)
	}
	merged.convert = c.convert
	if merged.convert == nil {
		merged.convert = other.convert
	}

	merged.kinds = append(slices.Clone(c.kinds), other.kinds...)
	merged.kindsSet = c.kindsSet || other.kindsSet
	merged.literals = append(slices.Clone(c.literals), other.literals...)
	merged.literalsSet = c.literalsSet || other.literalsSet
	merged.checks = append(slices.Clone(c.checks), other.checks...)
	merged.replaceNil = c.replaceNil || other.replaceNil

	switch {
	case c.line != nil:
		merged.line = c.line.Add(other.line)
	case other.line != nil:
		merged.line = other.line
	}

	if err := merged.normalize(); err != nil {
		return nil, err
	}
	return merged, nil
}

// Validate checks value against every configured constraint and returns the
// final value, which is the converter output when conversion took place.
// All category failures are reported together as ValidationErrors.
func (c *Checker) Validate(value any, name string) (any, error) {
	if IsNoValue(value) || (value == nil && c.replaceNil) {
		if !c.hasDefaultValue() {
			return nil, ValidationErrors{{
				Field:          name,
				Value:          value,
				Message:        "no value given and no default value",
				TranslationKey: "checker.no_value",
				TranslationValues: map[string]any{
					"field": name,
				},
			}}
		}
		value = c.defaultValue()
		name = "default of " + name
	}

	var errs ValidationErrors

	if c.literalsSet && !containsLiteral(c.literals, value) {
		errs.Add(ValidationError{
			Field:          name,
			Value:          value,
			Message:        "must be one of: " + literalList(c.literals),
			TranslationKey: "checker.literal",
			TranslationValues: map[string]any{
				"field":          name,
				"allowed_values": slices.Clone(c.literals),
			},
		})
	}

	if c.kindsSet && !slices.Contains(c.kinds, KindOf(value)) {
		if c.convert == nil {
			errs.Add(ValidationError{
				Field:          name,
				Value:          value,
				Message:        fmt.Sprintf("value (%s) must be one of the following types: %s", KindOf(value), kindList(c.kinds)),
				TranslationKey: "checker.kind",
				TranslationValues: map[string]any{
					"field":         name,
					"allowed_kinds": kindList(c.kinds),
				},
			})
		} else {
			converted, err := c.convert(value)
			switch {
			case err != nil:
				errs.Add(ValidationError{
					Field:          name,
					Value:          value,
					Message:        fmt.Sprintf("cannot be converted: %v", err),
					TranslationKey: "checker.convert",
					TranslationValues: map[string]any{
						"field": name,
					},
				})
			case !slices.Contains(c.kinds, KindOf(converted)):
				errs.Add(ValidationError{
					Field:          name,
					Value:          converted,
					Message:        fmt.Sprintf("converted to %s, must be one of the following types: %s", KindOf(converted), kindList(c.kinds)),
					TranslationKey: "checker.convert_kind",
					TranslationValues: map[string]any{
						"field":         name,
						"allowed_kinds": kindList(c.kinds),
					},
				})
			default:
				value = converted
			}
		}
	}

	if c.line != nil {
		if f, ok := asFloat(value); ok {
			if !c.line.Contains(f) {
				errs.Add(ValidationError{
					Field:          name,
					Value:          value,
					Message:        c.line.Describe(f),
					TranslationKey: "checker.number_line",
					TranslationValues: map[string]any{
						"field": name,
						"line":  c.line.String(),
					},
				})
			}
		} else {
			errs.Add(ValidationError{
				Field:          name,
				Value:          value,
				Message:        fmt.Sprintf("must be a number to check against a number line, got %s", KindOf(value)),
				TranslationKey: "checker.number_line",
				TranslationValues: map[string]any{
					"field": name,
				},
			})
		}
	}

	for _, check := range c.checks {
		if err := check(value); err != nil {
			errs.Add(ValidationError{
				Field:          name,
				Value:          value,
				Message:        err.Error(),
				TranslationKey: "checker.check",
				TranslationValues: map[string]any{
					"field": name,
				},
			})
		}
	}

	if !errs.IsEmpty() {
		return nil, errs
	}
	return value, nil
}

// HasDefault reports whether the checker substitutes a default for NoValue.
func (c *Checker) HasDefault() bool {
	return c.hasDefaultValue()
}

func (c *Checker) hasDefaultValue() bool {
	return c.hasDefault || c.defFunc != nil
}

func (c *Checker) defaultValue() any {
	if c.defFunc != nil {
		return c.defFunc()
	}
	return c.def
}

func containsLiteral(literals []any, value any) bool {
	return slices.ContainsFunc(literals, func(l any) bool {
		return reflect.DeepEqual(l, value)
	})
}

func literalList(literals []any) string {
	parts := make([]string, len(literals))
	for i, l := range literals {
		parts[i] = fmt.Sprintf("%v", l)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

func kindList(kinds []Kind) string {
	parts := make([]string, len(kinds))
	for i, k := range kinds {
		parts[i] = k.String()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

func dedupeKinds(kinds []Kind) []Kind {
	var out []Kind
	for _, k := range kinds {
		if !slices.Contains(out, k) {
			out = append(out, k)
		}
	}
	return out
}

// dedupeLiterals keeps the first occurrence of each literal, preserving
// the configured order.
func dedupeLiterals(literals []any) []any {
	var out []any
	for _, l := range literals {
		if !containsLiteral(out, l) {
			out = append(out, l)
		}
	}
	return out
}

func asFloat(value any) (float64, bool) {
	if value == nil {
		return 0, false
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	default:
		return 0, false
	}
}
