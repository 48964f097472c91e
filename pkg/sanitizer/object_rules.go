package sanitizer

import (
	"maps"
	"slices"

	"github.com/dmitrymomot/schemakit/pkg/kind"
)

// ObjectRules configures SanitizeObject. Steps run in declaration order.
// Key-level steps iterate keys in sorted order so collisions resolve the
// same way on every run.
type ObjectRules struct {
	// Defaults fills keys that are absent or null.
	Defaults map[string]any `yaml:"defaults,omitempty" json:"defaults,omitempty"`

	Pick   []string          `yaml:"pick,omitempty" json:"pick,omitempty"`
	Omit   []string          `yaml:"omit,omitempty" json:"omit,omitempty"`
	Rename map[string]string `yaml:"rename,omitempty" json:"rename,omitempty"`

	// Properties sanitizes the values of the named keys when present.
	Properties map[string]Rules `yaml:"properties,omitempty" json:"properties,omitempty"`

	Filter    func(key string, value any) bool `yaml:"-" json:"-"`
	MapKeys   func(key string) string          `yaml:"-" json:"-"`
	MapValues func(key string, value any) any  `yaml:"-" json:"-"`

	// RemoveEmpty drops null, missing and empty-string values.
	RemoveEmpty bool `yaml:"removeEmpty,omitempty" json:"removeEmpty,omitempty"`

	// MaxProperties keeps the first N keys in sorted order when positive.
	MaxProperties int `yaml:"maxProperties,omitempty" json:"maxProperties,omitempty"`
}

// SanitizeObject returns a sanitized copy of obj. The input map is not modified.
func SanitizeObject(obj map[string]any, rules ObjectRules) map[string]any {
	out := maps.Clone(obj)
	if out == nil {
		out = make(map[string]any)
	}

	// An explicit null is kept; only absent keys are filled.
	for key, def := range rules.Defaults {
		if v, ok := out[key]; !ok || kind.IsMissing(v) {
			out[key] = def
		}
	}

	if len(rules.Pick) > 0 {
		for key := range out {
			if !slices.Contains(rules.Pick, key) {
				delete(out, key)
			}
		}
	}
	for _, key := range rules.Omit {
		delete(out, key)
	}

	for _, from := range sortedKeys(rules.Rename) {
		v, ok := out[from]
		if !ok {
			continue
		}
		delete(out, from)
		out[rules.Rename[from]] = v
	}

	for key, r := range rules.Properties {
		if v, ok := out[key]; ok {
			out[key] = Sanitize(v, r)
		}
	}

	if rules.Filter != nil {
		for key, v := range out {
			if !rules.Filter(key, v) {
				delete(out, key)
			}
		}
	}

	if rules.MapKeys != nil {
		mapped := make(map[string]any, len(out))
		for _, key := range sortedKeys(out) {
			mapped[rules.MapKeys(key)] = out[key]
		}
		out = mapped
	}

	if rules.MapValues != nil {
		for key, v := range out {
			out[key] = rules.MapValues(key, v)
		}
	}

	if rules.RemoveEmpty {
		for key, v := range out {
			if isEmpty(v) {
				delete(out, key)
			}
		}
	}

	if rules.MaxProperties > 0 && len(out) > rules.MaxProperties {
		for _, key := range sortedKeys(out)[rules.MaxProperties:] {
			delete(out, key)
		}
	}

	return out
}

func sortedKeys[V any](m map[string]V) []string {
	return slices.Sorted(maps.Keys(m))
}

func isEmpty(v any) bool {
	if kind.IsAbsent(v) {
		return true
	}
	s, ok := kind.Text(v)
	return ok && s == ""
}
