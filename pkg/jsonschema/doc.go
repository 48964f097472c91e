// Package jsonschema exports schema nodes as JSON Schema (draft-07)
// documents so that non-Go clients can check payloads against the same
// contract.
//
// The exported document describes the value a successful validation
// produces. Transformations such as trimming, sanitization and coercion are
// not representable and are left out, as are custom validators.
//
//	doc := jsonschema.Export(catalog.Order(), jsonschema.WithID("https://example.com/order.json"))
//	sch, err := jsonschema.Compile(catalog.Order())
//	if err != nil {
//		return err
//	}
//	err = jsonschema.Check(sch, payload)
package jsonschema
