package kwargs

import (
	"errors"
	"fmt"
	"maps"

	"github.com/dmitrymomot/checkkit/pkg/checker"
)

var (
	// ErrUnexpectedArgument is returned for a key the schema does not name.
	ErrUnexpectedArgument = errors.New("unexpected argument")

	// ErrArgumentKind is returned when an argument fails its kind check.
	ErrArgumentKind = errors.New("argument has wrong kind")
)

// Spec describes the expected shape of one argument: either a bare kind or
// a full checker.
type Spec struct {
	kind checker.Kind
	chk  *checker.Checker
}

// OfKind expects an argument of the given type tag.
func OfKind(k checker.Kind) Spec {
	return Spec{kind: k}
}

// Checked validates an argument with a full checker.
func Checked(c *checker.Checker) Spec {
	return Spec{chk: c}
}

// Defaults returns a copy of defaults overridden by args. Mutable default
// values are shared between results; pass a copy when that matters.
func Defaults(args, defaults map[string]any) map[string]any {
	out := maps.Clone(defaults)
	if out == nil {
		out = make(map[string]any, len(args))
	}
	maps.Copy(out, args)
	return out
}

// Check validates args and defaults against schema and returns args merged
// over defaults. fn names the call site in error messages. Keys missing
// from the schema, kind mismatches and checker failures are all errors;
// defaults are held to the same contract as the provided arguments.
func Check(fn string, args map[string]any, schema map[string]Spec, defaults map[string]any) (map[string]any, error) {
	if err := check(fn, args, schema, false); err != nil {
		return nil, err
	}
	if err := check(fn, defaults, schema, true); err != nil {
		return nil, err
	}
	return Defaults(args, defaults), nil
}

func check(fn string, args map[string]any, schema map[string]Spec, isDefault bool) error {
	qualifier, keyQualifier := "", ""
	if isDefault {
		qualifier = "default value of "
		keyQualifier = "default value "
	}

	for key, value := range args {
		spec, ok := schema[key]
		if !ok {
			return fmt.Errorf("%w: %s got an unexpected %sargument %q", ErrUnexpectedArgument, fn, keyQualifier, key)
		}

		if spec.chk != nil {
			if _, err := spec.chk.Validate(value, key); err != nil {
				return fmt.Errorf("validation failed for %sargument %q of %s: %w", qualifier, key, fn, err)
			}
			continue
		}

		if got := checker.KindOf(value); got != spec.kind {
			return fmt.Errorf("%w: expected %s for %sargument %q of %s, got %s",
				ErrArgumentKind, spec.kind, qualifier, key, fn, got)
		}
	}
	return nil
}
