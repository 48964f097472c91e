package kind

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
	"time"
)

// Kind is the semantic classification of a runtime value.
type Kind uint8

const (
	Undefined Kind = iota
	Null
	String
	Number
	Boolean
	Array
	Object
	Date
)

var names = [...]string{
	Undefined: "undefined",
	Null:      "null",
	String:    "string",
	Number:    "number",
	Boolean:   "boolean",
	Array:     "array",
	Object:    "object",
	Date:      "date",
}

// String returns the lowercase kind name.
func (k Kind) String() string {
	if int(k) < len(names) {
		return names[k]
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Parse returns the kind with the given name. Names are case-insensitive.
func Parse(name string) (Kind, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for k, s := range names {
		if s == n {
			return Kind(k), nil
		}
	}
	return Undefined, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

type missing struct{}

func (missing) String() string { return "undefined" }

// MarshalJSON writes undefined as null.
func (missing) MarshalJSON() ([]byte, error) { return []byte("null"), nil }

// Missing represents a value that is not present at all.
var Missing any = missing{}

// IsMissing reports whether v is the Missing sentinel.
func IsMissing(v any) bool {
	_, ok := v.(missing)
	return ok
}

// IsAbsent reports whether v is null or undefined.
func IsAbsent(v any) bool {
	k := Of(v)
	return k == Null || k == Undefined
}

var timeType = reflect.TypeOf(time.Time{})

// Of returns the kind of v.
func Of(v any) Kind {
	switch v.(type) {
	case nil:
		return Null
	case missing:
		return Undefined
	case string:
		return String
	case bool:
		return Boolean
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, uintptr,
		float32, float64, json.Number:
		return Number
	case time.Time, *time.Time:
		if t, ok := v.(*time.Time); ok && t == nil {
			return Null
		}
		return Date
	case []any:
		if v.([]any) == nil {
			return Null
		}
		return Array
	case map[string]any:
		if v.(map[string]any) == nil {
			return Null
		}
		return Object
	}
	return ofReflect(reflect.ValueOf(v))
}

func ofReflect(rv reflect.Value) Kind {
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return Null
		}
		rv = rv.Elem()
	}

	if rv.Type() == timeType {
		return Date
	}

	switch rv.Kind() {
	case reflect.String:
		return String
	case reflect.Bool:
		return Boolean
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return Number
	case reflect.Slice:
		if rv.IsNil() {
			return Null
		}
		return Array
	case reflect.Array:
		return Array
	case reflect.Map:
		if rv.IsNil() {
			return Null
		}
		return Object
	case reflect.Func, reflect.Chan, reflect.UnsafePointer:
		if rv.IsNil() {
			return Null
		}
		return Object
	default:
		return Object
	}
}
