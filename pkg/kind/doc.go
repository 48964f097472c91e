// Package kind classifies arbitrary Go values into the closed set of semantic
// kinds used by the schema validator and the sanitizer.
//
// Every value maps to exactly one Kind:
//
//	kind.Of(nil)                    // kind.Null
//	kind.Of(kind.Missing)           // kind.Undefined
//	kind.Of("text")                 // kind.String
//	kind.Of(42), kind.Of(3.14)      // kind.Number
//	kind.Of(true)                   // kind.Boolean
//	kind.Of([]any{1, 2})            // kind.Array
//	kind.Of(map[string]any{})       // kind.Object
//	kind.Of(time.Now())             // kind.Date
//
// Null and Undefined are distinct: nil (including typed nil pointers, maps and
// slices) is Null, while the Missing sentinel stands for a value that is not
// present at all, such as an absent map key.
//
// The package has no state and all functions are safe for concurrent use.
package kind
