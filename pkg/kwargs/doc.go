// Package kwargs validates maps of named arguments against a schema of
// expected kinds or full checkers, filling in defaults for missing keys.
// It is the map-shaped counterpart of validating one record field at a
// time: useful for option maps, decoded JSON objects and similar loosely
// typed inputs.
package kwargs
