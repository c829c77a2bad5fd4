package checker

import "errors"

// Construction-time errors returned by New and Merge.
var (
	// ErrEmptyLiterals is returned when a literal set is configured empty,
	// or when normalization removes every literal.
	ErrEmptyLiterals = errors.New("literal set is empty")

	// ErrEmptyKinds is returned when a kind set is configured empty.
	ErrEmptyKinds = errors.New("kind set is empty")

	// ErrEmptyLine is returned when the configured number line contains no values.
	ErrEmptyLine = errors.New("number line is empty")

	// ErrMergeConflict is returned when two merged checkers both configure a
	// single-slot attribute such as the default value or the converter.
	ErrMergeConflict = errors.New("cannot merge conflicting checker attributes")
)
