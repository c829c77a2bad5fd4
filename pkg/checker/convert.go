package checker

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
)

// Converters for the common kinds. Each satisfies ConvertFunc and is meant
// to be attached with WithConverter; non-convertible input is an error, not
// a best-effort guess.

// ToInt converts numeric values and decimal strings to int. Floats must be
// integral. Integer input never takes a float round trip, so 64-bit values
// beyond float64 precision convert exactly.
func ToInt(value any) (any, error) {
	switch v := value.(type) {
	case int:
		return v, nil
	case string:
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("cannot convert %q to int", v)
		}
		return n, nil
	case bool:
		return nil, fmt.Errorf("cannot convert bool to int")
	case nil:
		return nil, fmt.Errorf("cannot convert %s to int", KindOf(value))
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n := rv.Int()
		if int64(int(n)) != n {
			return nil, fmt.Errorf("cannot convert %v to int without overflow", value)
		}
		return int(n), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u := rv.Uint()
		if u > math.MaxInt {
			return nil, fmt.Errorf("cannot convert %v to int without overflow", value)
		}
		return int(u), nil
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if math.Trunc(f) != f {
			return nil, fmt.Errorf("cannot convert %v to int without losing precision", value)
		}
		return int(f), nil
	default:
		return nil, fmt.Errorf("cannot convert %s to int", KindOf(value))
	}
}

// ToFloat converts numeric values and decimal strings to float64.
func ToFloat(value any) (any, error) {
	if f, ok := asFloat(value); ok {
		return f, nil
	}
	if s, ok := value.(string); ok {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("cannot convert %q to float", s)
		}
		return f, nil
	}
	return nil, fmt.Errorf("cannot convert %s to float", KindOf(value))
}

// ToString converts scalar values to their string form.
func ToString(value any) (any, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case bool:
		return strconv.FormatBool(v), nil
	}
	if value == nil {
		return nil, fmt.Errorf("cannot convert nil to string")
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(rv.Uint(), 10), nil
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'g', -1, 64), nil
	default:
		return nil, fmt.Errorf("cannot convert %s to string", KindOf(value))
	}
}

// ToBool converts booleans and boolean-like strings ("true", "0", ...) to bool.
func ToBool(value any) (any, error) {
	switch v := value.(type) {
	case bool:
		return v, nil
	case string:
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("cannot convert %q to bool", v)
		}
		return b, nil
	default:
		return nil, fmt.Errorf("cannot convert %s to bool", KindOf(value))
	}
}
