package jsonschema

import (
	"encoding/json"
	"maps"
	"slices"

	"sigs.k8s.io/yaml"

	"github.com/dmitrymomot/schemakit/pkg/kind"
	"github.com/dmitrymomot/schemakit/pkg/schema"
)

// Draft is the meta-schema every exported document declares.
const Draft = "http://json-schema.org/draft-07/schema#"

const (
	alphanumericPattern = `^[a-zA-Z0-9]*$`
	uuidPattern         = `^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`
)

type options struct {
	id     string
	title  string
	strict bool
}

// Option configures Export.
type Option func(*options)

// WithID sets the document $id.
func WithID(id string) Option {
	return func(o *options) { o.id = id }
}

// WithTitle sets the document title.
func WithTitle(title string) Option {
	return func(o *options) { o.title = title }
}

// WithStrict closes every object that declares properties, matching
// validation with unknown keys rejected.
func WithStrict() Option {
	return func(o *options) { o.strict = true }
}

// Export converts n into a JSON Schema document.
func Export(n *schema.Node, opts ...Option) map[string]any {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	doc := convert(n, o)
	doc["$schema"] = Draft
	if o.id != "" {
		doc["$id"] = o.id
	}
	if o.title != "" {
		doc["title"] = o.title
	}
	return doc
}

// MarshalJSON returns the indented JSON form of Export.
func MarshalJSON(n *schema.Node, opts ...Option) ([]byte, error) {
	return json.MarshalIndent(Export(n, opts...), "", "  ")
}

// MarshalYAML returns the YAML form of Export.
func MarshalYAML(n *schema.Node, opts ...Option) ([]byte, error) {
	b, err := json.Marshal(Export(n, opts...))
	if err != nil {
		return nil, err
	}
	return yaml.JSONToYAML(b)
}

func convert(n *schema.Node, o options) map[string]any {
	out := map[string]any{}
	if n == nil {
		return out
	}

	if types := jsonTypes(n); len(types) == 1 {
		out["type"] = types[0]
	} else if len(types) > 1 {
		out["type"] = types
	}
	if len(n.Type) == 1 && n.Type[0] == kind.Date {
		out["format"] = "date-time"
	}

	if n.Default != nil && n.DefaultFunc == nil {
		out["default"] = n.Default
	}
	if len(n.Enum) > 0 {
		out["enum"] = slices.Clone(n.Enum)
	}

	if n.MinLength != nil {
		out["minLength"] = *n.MinLength
	}
	if n.MaxLength != nil {
		out["maxLength"] = *n.MaxLength
	}
	addPatterns(out, n)
	switch {
	case n.Email:
		out["format"] = "email"
	case n.URL:
		out["format"] = "uri"
	}

	if n.Min != nil {
		out["minimum"] = *n.Min
	}
	if n.Max != nil {
		out["maximum"] = *n.Max
	}
	if n.Integer && !slices.Contains(n.Type, kind.Number) {
		out["multipleOf"] = 1
	}

	if n.Properties != nil {
		props := make(map[string]any, len(n.Properties))
		var required []string
		for _, key := range slices.Sorted(maps.Keys(n.Properties)) {
			child := n.Properties[key]
			props[key] = convert(child, o)
			if child != nil && child.Required {
				required = append(required, key)
			}
		}
		out["properties"] = props
		if len(required) > 0 {
			out["required"] = required
		}
		if o.strict {
			out["additionalProperties"] = false
		}
	}

	if n.Items != nil {
		out["items"] = convert(n.Items, o)
	}
	if n.MinItems != nil {
		out["minItems"] = *n.MinItems
	}
	if n.MaxItems != nil {
		out["maxItems"] = *n.MaxItems
	}
	return out
}

// jsonTypes maps node kinds to JSON Schema type names. Dates travel as
// strings; an integer number node becomes "integer".
func jsonTypes(n *schema.Node) []string {
	var out []string
	for _, k := range n.Type {
		var name string
		switch k {
		case kind.Number:
			name = "number"
			if n.Integer {
				name = "integer"
			}
		case kind.Date:
			name = "string"
		case kind.Undefined:
			continue
		default:
			name = k.String()
		}
		if !slices.Contains(out, name) {
			out = append(out, name)
		}
	}
	return out
}

// addPatterns writes a single pattern directly and several as allOf.
func addPatterns(out map[string]any, n *schema.Node) {
	var patterns []string
	if n.Pattern != "" {
		patterns = append(patterns, n.Pattern)
	}
	if n.Alphanumeric {
		patterns = append(patterns, alphanumericPattern)
	}
	if n.UUID {
		patterns = append(patterns, uuidPattern)
	}

	switch len(patterns) {
	case 0:
	case 1:
		out["pattern"] = patterns[0]
	default:
		all := make([]any, len(patterns))
		for i, p := range patterns {
			all[i] = map[string]any{"pattern": p}
		}
		out["allOf"] = all
	}
}
