package kind

import (
	"encoding/json"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// Types is a set of acceptable kinds. An empty set accepts any kind.
// In YAML and JSON documents it is written either as a single name
// ("string") or as a list of names (["string", "null"]).
type Types []Kind

// Accepts reports whether k is one of the kinds in the set.
func (t Types) Accepts(k Kind) bool {
	return len(t) == 0 || slices.Contains(t, k)
}

// String joins the kind names with "|".
func (t Types) String() string {
	parts := make([]string, len(t))
	for i, k := range t {
		parts[i] = k.String()
	}
	return strings.Join(parts, "|")
}

func (t *Types) set(names []string) error {
	out := make(Types, 0, len(names))
	for _, n := range names {
		k, err := Parse(n)
		if err != nil {
			return err
		}
		out = append(out, k)
	}
	*t = out
	return nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (t *Types) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		return t.set([]string{node.Value})
	case yaml.SequenceNode:
		var names []string
		if err := node.Decode(&names); err != nil {
			return err
		}
		return t.set(names)
	}
	return ErrInvalidTypes
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *Types) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		return t.set([]string{name})
	}
	var names []string
	if err := json.Unmarshal(data, &names); err != nil {
		return ErrInvalidTypes
	}
	return t.set(names)
}

// MarshalJSON writes a single kind as a plain name and several as a list.
func (t Types) MarshalJSON() ([]byte, error) {
	if len(t) == 1 {
		return json.Marshal(t[0].String())
	}
	names := make([]string, len(t))
	for i, k := range t {
		names[i] = k.String()
	}
	return json.Marshal(names)
}
