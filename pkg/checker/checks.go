package checker

import (
	"fmt"
	"math"
	"reflect"
	"strings"
)

func checkEven(value any) error {
	p, ok := parityOf(value)
	if !ok {
		return fmt.Errorf("must be an integer to check parity")
	}
	if p != 0 {
		return fmt.Errorf("must be even")
	}
	return nil
}

func checkOdd(value any) error {
	p, ok := parityOf(value)
	if !ok {
		return fmt.Errorf("must be an integer to check parity")
	}
	if p == 0 {
		return fmt.Errorf("must be odd")
	}
	return nil
}

// parityOf returns value mod 2 without a float round trip, so 64-bit
// integers beyond float64 precision keep their parity. Non-integral values
// have no parity.
func parityOf(value any) (int64, bool) {
	if value == nil {
		return 0, false
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() % 2, true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return int64(rv.Uint() % 2), true
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if math.Trunc(f) != f {
			return 0, false
		}
		return int64(math.Mod(f, 2)), true
	default:
		return 0, false
	}
}

func checkLength(length int) CheckFunc {
	return func(value any) error {
		n, ok := lengthOf(value)
		if !ok {
			return fmt.Errorf("has no length")
		}
		if n != length {
			return fmt.Errorf("must have length %d, has %d", length, n)
		}
		return nil
	}
}

func checkLengthBetween(min, max int) CheckFunc {
	return func(value any) error {
		n, ok := lengthOf(value)
		if !ok {
			return fmt.Errorf("has no length")
		}
		if n < min || n > max {
			return fmt.Errorf("must have length between %d and %d, has %d", min, max, n)
		}
		return nil
	}
}

func checkSorted(value any) error {
	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return fmt.Errorf("must be a slice to check ordering")
	}
	for i := 1; i < rv.Len(); i++ {
		prev, cur := rv.Index(i-1).Interface(), rv.Index(i).Interface()
		pf, pok := asFloat(prev)
		cf, cok := asFloat(cur)
		switch {
		case pok && cok:
			if pf > cf {
				return fmt.Errorf("must be sorted")
			}
		default:
			ps, pok := prev.(string)
			cs, cok := cur.(string)
			if !pok || !cok {
				return fmt.Errorf("elements are not orderable")
			}
			if ps > cs {
				return fmt.Errorf("must be sorted")
			}
		}
	}
	return nil
}

func checkContains(substr string) CheckFunc {
	return func(value any) error {
		switch v := value.(type) {
		case string:
			if !strings.Contains(v, substr) {
				return fmt.Errorf("must contain %q", substr)
			}
			return nil
		}
		rv := reflect.ValueOf(value)
		if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
			for i := 0; i < rv.Len(); i++ {
				if reflect.DeepEqual(rv.Index(i).Interface(), any(substr)) {
					return nil
				}
			}
			return fmt.Errorf("must contain %q", substr)
		}
		return fmt.Errorf("must be a string or slice to check containment")
	}
}

func checkElementKind(kind Kind) CheckFunc {
	return func(value any) error {
		rv := reflect.ValueOf(value)
		if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
			return fmt.Errorf("must be a slice of %s", kind)
		}
		for i := 0; i < rv.Len(); i++ {
			if got := KindOf(rv.Index(i).Interface()); got != kind {
				return fmt.Errorf("element %d must be %s, got %s", i, kind, got)
			}
		}
		return nil
	}
}

func lengthOf(value any) (int, bool) {
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.String, reflect.Slice, reflect.Array, reflect.Map:
		return rv.Len(), true
	default:
		return 0, false
	}
}
