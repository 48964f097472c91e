package sanitizer

import (
	"reflect"

	"github.com/dmitrymomot/schemakit/pkg/kind"
)

// ArrayRules configures SanitizeArray. Steps run in order: items, compact,
// unique, max items.
type ArrayRules struct {
	Items *Rules `yaml:"items,omitempty" json:"items,omitempty"`

	// Compact drops null, missing and empty-string elements.
	Compact bool `yaml:"compact,omitempty" json:"compact,omitempty"`

	// Unique keeps the first occurrence of deeply equal elements.
	Unique bool `yaml:"unique,omitempty" json:"unique,omitempty"`

	MaxItems int `yaml:"maxItems,omitempty" json:"maxItems,omitempty"`
}

// SanitizeArray returns a sanitized copy of items.
func SanitizeArray(items []any, rules ArrayRules) []any {
	out := make([]any, 0, len(items))
	for _, item := range items {
		if rules.Items != nil {
			item = Sanitize(item, *rules.Items)
		}
		if rules.Compact && isEmpty(item) {
			continue
		}
		if rules.Unique && containsEqual(out, item) {
			continue
		}
		out = append(out, item)
	}

	if rules.MaxItems > 0 && len(out) > rules.MaxItems {
		out = out[:rules.MaxItems]
	}
	return out
}

func containsEqual(items []any, v any) bool {
	for _, item := range items {
		if a, ok := kind.Float(item); ok {
			if b, ok := kind.Float(v); ok && a == b {
				return true
			}
			continue
		}
		if reflect.DeepEqual(item, v) {
			return true
		}
	}
	return false
}
