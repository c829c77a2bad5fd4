package checker

import "reflect"

// Kind is an enumerated runtime type tag. The integer kinds of the language
// collapse into KindInt and the float kinds into KindFloat, so checkers talk
// about types at the same granularity as the values being validated.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindSlice
	KindMap
)

// KindOf classifies a value into its Kind. Nil values and unsupported types
// classify as KindInvalid.
func KindOf(value any) Kind {
	if value == nil {
		return KindInvalid
	}
	switch reflect.TypeOf(value).Kind() {
	case reflect.Bool:
		return KindBool
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return KindInt
	case reflect.Float32, reflect.Float64:
		return KindFloat
	case reflect.String:
		return KindString
	case reflect.Slice, reflect.Array:
		return KindSlice
	case reflect.Map:
		return KindMap
	default:
		return KindInvalid
	}
}

func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindSlice:
		return "slice"
	case KindMap:
		return "map"
	default:
		return "invalid"
	}
}
