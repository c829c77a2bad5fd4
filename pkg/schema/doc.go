// Package schema builds checkers from declarative YAML definitions, so
// field constraints can live next to configuration instead of code.
//
// A schema document is a map of field definitions:
//
//	fields:
//	  price:
//	    types: [float]
//	    positive: true
//	    include_zero: true
//	    convert: float
//	    default: 0.0
//	  mode:
//	    literals: [fast, slow]
//
// Parse turns each definition into a checker.Checker; Record assembles the
// whole schema into a field.Record ready for Fill.
package schema
