package schema

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"slices"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/checkkit/pkg/checker"
	"github.com/dmitrymomot/checkkit/pkg/field"
	"github.com/dmitrymomot/checkkit/pkg/numberline"
)

var (
	// ErrParseFailed is returned when the document is not valid YAML.
	ErrParseFailed = errors.New("failed to parse schema document")

	// ErrNoFields is returned for a document without a fields section.
	ErrNoFields = errors.New("schema document defines no fields")

	// ErrUnknownType is returned for an unrecognized type name.
	ErrUnknownType = errors.New("unknown type name")

	// ErrUnknownConverter is returned for an unrecognized converter name.
	ErrUnknownConverter = errors.New("unknown converter name")

	// ErrConflictingSigns is returned when a field is both positive and negative.
	ErrConflictingSigns = errors.New("field cannot be positive and negative at once")
)

// Definition is the YAML shape of one field's constraints.
type Definition struct {
	Types        []string `yaml:"types"`
	Literals     []any    `yaml:"literals"`
	Min          *float64 `yaml:"min"`
	Max          *float64 `yaml:"max"`
	ExclusiveMin bool     `yaml:"exclusive_min"`
	ExclusiveMax bool     `yaml:"exclusive_max"`
	Positive     bool     `yaml:"positive"`
	Negative     bool     `yaml:"negative"`
	IncludeZero  bool     `yaml:"include_zero"`
	NonZero      bool     `yaml:"non_zero"`
	Convert      string   `yaml:"convert"`
	Default      any      `yaml:"default"`
	ReplaceNil   bool     `yaml:"replace_nil"`
}

type document struct {
	Fields map[string]Definition `yaml:"fields"`
}

// Schema holds the checkers built from a parsed document.
type Schema struct {
	names    []string
	checkers map[string]*checker.Checker
	defs     map[string]Definition
	log      *slog.Logger
}

// Option configures a Schema during parsing.
type Option func(*Schema)

// WithLogger provides a logger for schema building. If not specified,
// a discard logger is used.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Schema) {
		if logger != nil {
			s.log = logger
		}
	}
}

// Parse reads a YAML schema document and builds a checker per field.
func Parse(data []byte, opts ...Option) (*Schema, error) {
	s := &Schema{
		checkers: make(map[string]*checker.Checker),
		defs:     make(map[string]Definition),
		log:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}

	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Join(ErrParseFailed, err)
	}
	if len(doc.Fields) == 0 {
		return nil, ErrNoFields
	}

	// YAML maps are unordered; sort for a stable record layout.
	for name := range doc.Fields {
		s.names = append(s.names, name)
	}
	sort.Strings(s.names)

	for _, name := range s.names {
		def := doc.Fields[name]
		c, err := build(def)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", name, err)
		}
		s.checkers[name] = c
		s.defs[name] = def
		s.log.Debug("built checker from schema",
			slog.String("field", name),
			slog.Any("types", def.Types),
			slog.Bool("has_default", def.Default != nil),
		)
	}

	return s, nil
}

// Names returns the field names in record order.
func (s *Schema) Names() []string {
	return slices.Clone(s.names)
}

// Checker returns the checker built for the named field.
func (s *Schema) Checker(name string) (*checker.Checker, bool) {
	c, ok := s.checkers[name]
	return c, ok
}

// Record assembles the schema into a field.Record; field defaults from the
// document are validated while the record is defined.
func (s *Schema) Record() (*field.Record, error) {
	rec := field.NewRecord()
	for _, name := range s.names {
		def := s.defs[name]
		var opts []field.Option[any]
		if def.Default != nil {
			opts = append(opts, field.WithDefault[any](def.Default))
		}
		if err := rec.Define(name, field.New[any](s.checkers[name], opts...)); err != nil {
			return nil, err
		}
	}
	return rec, nil
}

func build(def Definition) (*checker.Checker, error) {
	var opts []checker.Option

	if len(def.Types) > 0 {
		kinds := make([]checker.Kind, 0, len(def.Types))
		for _, name := range def.Types {
			if name == "number" {
				kinds = append(kinds, checker.KindInt, checker.KindFloat)
				continue
			}
			kind, err := kindByName(name)
			if err != nil {
				return nil, err
			}
			kinds = append(kinds, kind)
		}
		opts = append(opts, checker.WithKinds(kinds...))
	}

	if len(def.Literals) > 0 {
		opts = append(opts, checker.WithLiterals(def.Literals...))
	}

	line, err := buildLine(def)
	if err != nil {
		return nil, err
	}
	if line != nil {
		opts = append(opts, checker.WithLine(line))
	}

	if def.Convert != "" {
		convert, err := converterByName(def.Convert)
		if err != nil {
			return nil, err
		}
		opts = append(opts, checker.WithConverter(convert))
	}

	if def.Default != nil {
		opts = append(opts, checker.WithDefault(def.Default))
	}
	if def.ReplaceNil {
		opts = append(opts, checker.WithReplaceNil(true))
	}

	return checker.New(opts...)
}

// buildLine intersects the sign constraint with the min/max bracket and
// punches out zero when non_zero is set.
func buildLine(def Definition) (*numberline.NumberLine, error) {
	var line *numberline.NumberLine

	switch {
	case def.Positive && def.Negative:
		return nil, ErrConflictingSigns
	case def.Positive:
		line = numberline.Positive(def.IncludeZero)
	case def.Negative:
		line = numberline.Negative(def.IncludeZero)
	}

	if def.Min != nil || def.Max != nil {
		lo, hi := math.Inf(-1), math.Inf(1)
		loIncl, hiIncl := true, true
		if def.Min != nil {
			lo, loIncl = *def.Min, !def.ExclusiveMin
		}
		if def.Max != nil {
			hi, hiIncl = *def.Max, !def.ExclusiveMax
		}
		bracket, err := numberline.Between(lo, hi, loIncl, hiIncl)
		if err != nil {
			return nil, err
		}
		if line == nil {
			line = bracket
		} else {
			line = line.Intersect(bracket)
		}
	}

	if def.NonZero {
		if line == nil {
			line = numberline.Full()
		}
		line = line.Subtract(numberline.Single(0))
	}

	return line, nil
}

func kindByName(name string) (checker.Kind, error) {
	switch name {
	case "int", "integer":
		return checker.KindInt, nil
	case "float":
		return checker.KindFloat, nil
	case "string", "str":
		return checker.KindString, nil
	case "bool", "boolean":
		return checker.KindBool, nil
	case "slice", "list":
		return checker.KindSlice, nil
	case "map", "dict":
		return checker.KindMap, nil
	default:
		return checker.KindInvalid, fmt.Errorf("%w: %q", ErrUnknownType, name)
	}
}

func converterByName(name string) (checker.ConvertFunc, error) {
	switch name {
	case "int":
		return checker.ToInt, nil
	case "float":
		return checker.ToFloat, nil
	case "string":
		return checker.ToString, nil
	case "bool":
		return checker.ToBool, nil
	case "uuid":
		return checker.ToUUID, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownConverter, name)
	}
}
