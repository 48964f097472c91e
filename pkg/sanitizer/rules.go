package sanitizer

import "github.com/dmitrymomot/schemakit/pkg/kind"

// Rules selects the cleanup applied by Sanitize. Only the rule set matching
// the value's kind is used; a non-nil Transform replaces kind dispatch.
type Rules struct {
	Transform func(value any) any `yaml:"-" json:"-"`

	String *StringRules `yaml:"string,omitempty" json:"string,omitempty"`
	Number *NumberRules `yaml:"number,omitempty" json:"number,omitempty"`
	Object *ObjectRules `yaml:"object,omitempty" json:"object,omitempty"`
	Array  *ArrayRules  `yaml:"array,omitempty" json:"array,omitempty"`
}

// Func wraps a transform function into Rules.
func Func(fn func(value any) any) Rules {
	return Rules{Transform: fn}
}

// Sanitize applies rules to value. Values without a matching rule set are
// returned unchanged. A string with Number rules but no String rules is
// coerced to a number.
func Sanitize(value any, rules Rules) any {
	if rules.Transform != nil {
		return rules.Transform(value)
	}

	switch kind.Of(value) {
	case kind.String:
		s, _ := kind.Text(value)
		if rules.String != nil {
			return SanitizeString(s, *rules.String)
		}
		if rules.Number != nil {
			return SanitizeNumber(s, *rules.Number)
		}
	case kind.Number:
		if rules.Number != nil {
			return SanitizeNumber(value, *rules.Number)
		}
	case kind.Object:
		if rules.Object != nil {
			if m, ok := kind.Map(value); ok {
				return SanitizeObject(m, *rules.Object)
			}
		}
	case kind.Array:
		if rules.Array != nil {
			if items, ok := kind.Slice(value); ok {
				return SanitizeArray(items, *rules.Array)
			}
		}
	case kind.Null, kind.Undefined, kind.Boolean, kind.Date:
	}
	return value
}
