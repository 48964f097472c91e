package jsonschema

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/dmitrymomot/schemakit/pkg/schema"
)

const resourceURL = "schema.json"

// Compile exports n and compiles the document with format assertions on.
// A failure means the node holds a constraint JSON Schema cannot express,
// such as a pattern outside the ECMA-262 dialect.
func Compile(n *schema.Node, opts ...Option) (*jsonschema.Schema, error) {
	doc, err := roundTrip(Export(n, opts...))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCompile, err)
	}

	c := jsonschema.NewCompiler()
	c.DefaultDraft(jsonschema.Draft7)
	c.AssertFormat()
	if err := c.AddResource(resourceURL, doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCompile, err)
	}
	sch, err := c.Compile(resourceURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCompile, err)
	}
	return sch, nil
}

// Check validates value against a compiled document.
func Check(sch *jsonschema.Schema, value any) error {
	v, err := roundTrip(value)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrMismatch, err)
	}
	if err := sch.Validate(v); err != nil {
		return fmt.Errorf("%w: %w", ErrMismatch, err)
	}
	return nil
}

// roundTrip re-reads v through the decoder the compiler expects, so
// numbers arrive as json.Number.
func roundTrip(v any) (any, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return jsonschema.UnmarshalJSON(bytes.NewReader(b))
}
