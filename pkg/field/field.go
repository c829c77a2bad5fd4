package field

import (
	"fmt"

	"github.com/dmitrymomot/checkkit/pkg/checker"
)

// Accessor is the attribute get/set surface a structured-record
// implementation calls. Field implements it for any element type.
type Accessor interface {
	Name() string
	Bind(name string) error
	Set(value any) error
	Any() any
	IsSet() bool
}

// Field wraps a checker around one typed record attribute. The zero value
// is not usable; construct with New.
type Field[T any] struct {
	checker  *checker.Checker
	name     string
	def      any
	defFunc  func() T
	hasDef   bool
	value    T
	assigned bool
}

// Option configures a Field during construction.
type Option[T any] func(*Field[T])

// WithDefault sets the value returned before any assignment. The default is
// validated when the field is bound to its name.
func WithDefault[T any](def T) Option[T] {
	return func(f *Field[T]) {
		f.def = def
		f.hasDef = true
	}
}

// WithDefaultFunc sets a factory producing a fresh default per use, for
// mutable defaults such as slices or maps.
func WithDefaultFunc[T any](fn func() T) Option[T] {
	return func(f *Field[T]) {
		f.defFunc = fn
	}
}

// New creates an unbound field guarded by c. A nil checker means every
// assignment passes unchecked.
func New[T any](c *checker.Checker, opts ...Option[T]) *Field[T] {
	if c == nil {
		c = checker.MustNew()
	}
	f := &Field[T]{checker: c}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Name returns the bound attribute name.
func (f *Field[T]) Name() string {
	return f.name
}

// Bind resolves the attribute name and validates the configured default
// through the field's checker. Defaults obey the same contract as any
// assigned value, so a non-conforming default fails here, at definition
// time.
func (f *Field[T]) Bind(name string) error {
	f.name = name
	if !f.hasDefault() {
		return nil
	}
	_, err := f.checker.Validate(f.defaultValue(), "default value for `"+name+"`")
	return err
}

// Set validates value and stores the result. Conversion output replaces the
// input, as with a direct checker call. On failure the previously stored
// value is untouched and the error describes every violated constraint.
// Passing checker.NoValue stores the field default instead, failing when
// there is none.
func (f *Field[T]) Set(value any) error {
	name := f.name
	if checker.IsNoValue(value) {
		if !f.hasDefault() {
			return checker.ValidationErrors{{
				Field:          f.name,
				Value:          value,
				Message:        "no value given and no default value",
				TranslationKey: "field.no_value",
				TranslationValues: map[string]any{
					"field": f.name,
				},
			}}
		}
		value = f.defaultValue()
		name = "default value for `" + f.name + "`"
	}

	out, err := f.checker.Validate(value, name)
	if err != nil {
		return err
	}

	// A nil result has no dynamic type to assert; it stores as the zero
	// value of T.
	if out == nil {
		var zero T
		f.value = zero
		f.assigned = true
		return nil
	}

	typed, ok := out.(T)
	if !ok {
		return checker.ValidationErrors{{
			Field:          f.name,
			Value:          out,
			Message:        fmt.Sprintf("cannot store %T in a field of %T", out, f.value),
			TranslationKey: "field.type",
			TranslationValues: map[string]any{
				"field": f.name,
			},
		}}
	}

	f.value = typed
	f.assigned = true
	return nil
}

// Get returns the stored value, the default when nothing was assigned yet,
// or the zero value of T when there is neither.
func (f *Field[T]) Get() T {
	if f.assigned {
		return f.value
	}
	if d, ok := f.defaultValue().(T); ok {
		return d
	}
	var zero T
	return zero
}

// Any returns the current value as an interface, for the Accessor surface.
func (f *Field[T]) Any() any {
	return f.Get()
}

// IsSet reports whether an explicit value was assigned.
func (f *Field[T]) IsSet() bool {
	return f.assigned
}

func (f *Field[T]) hasDefault() bool {
	return f.hasDef || f.defFunc != nil
}

func (f *Field[T]) defaultValue() any {
	if f.defFunc != nil {
		return f.defFunc()
	}
	return f.def
}
