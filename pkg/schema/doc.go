// Package schema validates arbitrary values against declarative Node trees.
//
// A Node lists the constraints for one value. Validate walks the value and
// the node together and returns a Result holding the processed value and
// every violation found:
//
//	node := schema.Object(map[string]*schema.Node{
//	    "email": {Type: kind.Types{kind.String}, Required: true, Trim: true, Email: true},
//	    "age":   {Type: kind.Types{kind.Number}, Min: schema.Ptr(0.0), Max: schema.Ptr(120.0)},
//	    "role":  {Default: "member", Enum: []any{"member", "admin"}},
//	})
//
//	res := schema.Validate(input, node)
//	if !res.Valid {
//	    for _, e := range res.Errors {
//	        fmt.Println(e.Path, e.Kind, e.Message)
//	    }
//	}
//
// # Walk order
//
// At every node the walker resolves presence (required or default), applies
// Sanitize rules, coerces strings when Coerce is set, checks Type, runs the
// custom hooks and finally the constraints for the value's actual kind.
// Object properties are walked in sorted key order, so violations come out
// in the same order on every run. Absent keys are passed as kind.Missing;
// nil is null.
//
// # Options
//
// WithAbortEarly stops recording after the first violation while still
// completing the walk. WithAllowUnknown(false) reports undeclared object
// keys and WithStripUnknown removes them. WithConcurrency lets
// ValidateAsync walk sibling properties concurrently.
//
// # Custom validators
//
// Node.Validate and Node.ValidateAsync return nil to pass. A returned error
// becomes a custom (or asyncCustom) violation with the error's message. A
// panicking hook is recorded the same way.
//
// # Errors
//
// Violations are never returned as Go errors from the walk itself; use
// Result.Err for call sites that want one. A malformed node, such as an
// invalid Pattern, yields a single exception violation instead.
package schema
