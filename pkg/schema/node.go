package schema

import (
	"context"
	"maps"

	"github.com/dmitrymomot/schemakit/pkg/kind"
	"github.com/dmitrymomot/schemakit/pkg/sanitizer"
)

// Node describes one expected value. Zero-valued fields impose no
// constraint. A Node must not be modified while a validation using it is
// running.
type Node struct {
	// Type lists the accepted kinds; empty accepts any kind.
	Type kind.Types `yaml:"type,omitempty" json:"type,omitempty"`

	Required bool `yaml:"required,omitempty" json:"required,omitempty"`

	// Default is used when the value is absent and not required.
	// DefaultFunc takes precedence and is invoked on every use.
	Default     any        `yaml:"default,omitempty" json:"default,omitempty"`
	DefaultFunc func() any `yaml:"-" json:"-"`

	// Sanitize runs right after presence resolution.
	Sanitize *sanitizer.Rules `yaml:"sanitize,omitempty" json:"sanitize,omitempty"`

	// Coerce converts string input to the declared number, boolean or date
	// kind before the type check.
	Coerce bool `yaml:"coerce,omitempty" json:"coerce,omitempty"`

	// Enum restricts the value to the listed options.
	Enum []any `yaml:"enum,omitempty" json:"enum,omitempty"`

	// String constraints.
	Trim         bool   `yaml:"trim,omitempty" json:"trim,omitempty"`
	Lowercase    bool   `yaml:"lowercase,omitempty" json:"lowercase,omitempty"`
	Uppercase    bool   `yaml:"uppercase,omitempty" json:"uppercase,omitempty"`
	MinLength    *int   `yaml:"minLength,omitempty" json:"minLength,omitempty"`
	MaxLength    *int   `yaml:"maxLength,omitempty" json:"maxLength,omitempty"`
	Pattern      string `yaml:"pattern,omitempty" json:"pattern,omitempty"`
	Email        bool   `yaml:"email,omitempty" json:"email,omitempty"`
	URL          bool   `yaml:"url,omitempty" json:"url,omitempty"`
	Alphanumeric bool   `yaml:"alphanumeric,omitempty" json:"alphanumeric,omitempty"`
	UUID         bool   `yaml:"uuid,omitempty" json:"uuid,omitempty"`

	// Number constraints.
	Min     *float64 `yaml:"min,omitempty" json:"min,omitempty"`
	Max     *float64 `yaml:"max,omitempty" json:"max,omitempty"`
	Integer bool     `yaml:"integer,omitempty" json:"integer,omitempty"`

	// Object constraints. A nil Properties map leaves the object open:
	// unknown-key options only apply to nodes that declare properties.
	Properties map[string]*Node `yaml:"properties,omitempty" json:"properties,omitempty"`

	// Array constraints.
	Items    *Node `yaml:"items,omitempty" json:"items,omitempty"`
	MinItems *int  `yaml:"minItems,omitempty" json:"minItems,omitempty"`
	MaxItems *int  `yaml:"maxItems,omitempty" json:"maxItems,omitempty"`

	// Validate is a custom check; a nil error passes. A non-nil error is
	// recorded as a custom violation with the error's message.
	Validate func(value any, c Context) error `yaml:"-" json:"-"`

	// ValidateAsync runs only on the asynchronous path, before Validate.
	ValidateAsync func(ctx context.Context, value any, c Context) error `yaml:"-" json:"-"`
}

// Ptr returns a pointer to v, for the optional numeric fields of Node.
func Ptr[T any](v T) *T {
	return &v
}

// Object is shorthand for an object node with the given properties.
func Object(props map[string]*Node) *Node {
	return &Node{Type: kind.Types{kind.Object}, Properties: props}
}

// Array is shorthand for an array node with the given item node.
func Array(items *Node) *Node {
	return &Node{Type: kind.Types{kind.Array}, Items: items}
}

// Clone returns a deep copy of the node tree. Function fields and Sanitize
// rules are shared.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	c := *n
	c.Type = append(kind.Types(nil), n.Type...)
	c.Enum = append([]any(nil), n.Enum...)
	c.Items = n.Items.Clone()
	if n.Properties != nil {
		c.Properties = make(map[string]*Node, len(n.Properties))
		for key, child := range n.Properties {
			c.Properties[key] = child.Clone()
		}
	}
	return &c
}

func (n *Node) hasDefault() bool {
	return n.DefaultFunc != nil || n.Default != nil
}

// resolveDefault returns a copy of the default so results never alias the
// node's own map or slice.
func (n *Node) resolveDefault() any {
	v := n.Default
	if n.DefaultFunc != nil {
		v = n.DefaultFunc()
	}
	switch d := v.(type) {
	case map[string]any:
		return maps.Clone(d)
	case []any:
		return append([]any(nil), d...)
	}
	return v
}
