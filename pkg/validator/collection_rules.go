package validator

import (
	"fmt"
	"reflect"
	"strings"
)

// MinItems validates that a list has at least min items.
func MinItems[T any](path string, value []T, min int) Rule {
	return Rule{
		Check: func() bool {
			return len(value) >= min
		},
		Error: newError(path, KindMinItems, fmt.Sprintf("must have at least %d items", min), value),
	}
}

// MaxItems validates that a list has at most max items.
func MaxItems[T any](path string, value []T, max int) Rule {
	return Rule{
		Check: func() bool {
			return len(value) <= max
		},
		Error: newError(path, KindMaxItems, fmt.Sprintf("must have at most %d items", max), value),
	}
}

// OneOf validates that value is deeply equal to one of options.
// Numbers of different Go types compare by value, so 3 matches 3.0.
func OneOf(path string, value any, options []any) Rule {
	return Rule{
		Check: func() bool {
			for _, opt := range options {
				if equalValues(value, opt) {
					return true
				}
			}
			return false
		},
		Error: newError(path, KindEnum, "must be one of: "+joinOptions(options), value),
	}
}

func equalValues(a, b any) bool {
	if fa, ok := toFloat(a); ok {
		if fb, ok := toFloat(b); ok {
			return fa == fb
		}
	}
	return reflect.DeepEqual(a, b)
}

func toFloat(v any) (float64, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}

func joinOptions(options []any) string {
	parts := make([]string, len(options))
	for i, opt := range options {
		parts[i] = fmt.Sprint(opt)
	}
	return strings.Join(parts, ", ")
}
