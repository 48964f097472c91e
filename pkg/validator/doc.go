// Package validator holds the error model shared by the schema engine and
// any caller that renders validation results, plus a small set of composable
// rules and format predicates.
//
// A violation is a ValidationError: the dot-joined path of the offending
// field, a human readable message, a stable kind (see the Kind* constants)
// and the value that failed. ValidationErrors aggregates them, implements the
// error interface and offers grouping, filtering and rendering helpers:
//
//	errs.Messages()        // ["age: must be at most 120"]
//	errs.Has("age")        // true
//	errs.GetErrors("age")  // []ValidationError
//	errs.GroupByPath()     // map[string][]ValidationError
//	errs.OfKind("max")     // ValidationErrors
//	json.Marshal(errs)     // {"message": "...", "errors": [...]}
//
// # Rules
//
// A Rule couples a Check with the ValidationError it produces. Rules are
// evaluated with Apply, which returns nil or ValidationErrors:
//
//	err := validator.Apply(
//	    validator.MinLen("name", name, 2),
//	    validator.ValidEmail("email", email),
//	    validator.Max("age", age, 120),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    // inspect field errors
//	}
//
// The predicates IsEmail, IsURL, IsAlphanumeric and IsUUID are exported for
// callers that only need a boolean answer.
//
// The package is stateless and safe for concurrent use.
package validator
