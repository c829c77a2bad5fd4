package field

import (
	"errors"
	"fmt"
	"slices"

	"github.com/dmitrymomot/checkkit/pkg/checker"
)

var (
	// ErrFieldRedefined is returned when Define is called twice for a name.
	ErrFieldRedefined = errors.New("field already defined")

	// ErrUnknownField is returned when accessing a field that was never defined.
	ErrUnknownField = errors.New("unknown field")
)

// Record is an ordered collection of named fields modeling a structured
// record. Defaults are validated at definition time and every assignment
// goes through the owning field's checker.
type Record struct {
	fields map[string]Accessor
	order  []string
}

// NewRecord creates an empty record.
func NewRecord() *Record {
	return &Record{fields: make(map[string]Accessor)}
}

// Define registers a field under name and binds it, which validates the
// field's default value.
func (r *Record) Define(name string, a Accessor) error {
	if _, exists := r.fields[name]; exists {
		return fmt.Errorf("%w: %s", ErrFieldRedefined, name)
	}
	if err := a.Bind(name); err != nil {
		return err
	}
	r.fields[name] = a
	r.order = append(r.order, name)
	return nil
}

// Set assigns a value to the named field.
func (r *Record) Set(name string, value any) error {
	a, ok := r.fields[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownField, name)
	}
	return a.Set(value)
}

// Get returns the current value of the named field.
func (r *Record) Get(name string) (any, error) {
	a, ok := r.fields[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownField, name)
	}
	return a.Any(), nil
}

// Names returns the field names in definition order.
func (r *Record) Names() []string {
	return slices.Clone(r.order)
}

// Fill performs construction-time assignment: every provided value is set
// on its field and all failures are aggregated, so a caller sees every
// invalid field at once. Unknown keys are reported as validation errors.
// Fields absent from values keep their defaults.
func (r *Record) Fill(values map[string]any) error {
	var errs checker.ValidationErrors

	for _, name := range r.order {
		value, ok := values[name]
		if !ok {
			continue
		}
		if err := r.fields[name].Set(value); err != nil {
			if verrs := checker.Extract(err); verrs != nil {
				errs = append(errs, verrs...)
			} else {
				errs.Add(checker.ValidationError{
					Field:   name,
					Value:   value,
					Message: err.Error(),
				})
			}
		}
	}

	for name := range values {
		if _, ok := r.fields[name]; !ok {
			errs.Add(checker.ValidationError{
				Field:          name,
				Value:          values[name],
				Message:        "unknown field",
				TranslationKey: "field.unknown",
				TranslationValues: map[string]any{
					"field": name,
				},
			})
		}
	}

	if errs.IsEmpty() {
		return nil
	}
	return errs
}
