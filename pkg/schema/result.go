package schema

import (
	"encoding/json"

	"github.com/dmitrymomot/schemakit/pkg/validator"
)

// Result is the outcome of a validation run. Errors is never nil.
type Result struct {
	Valid  bool
	Errors validator.ValidationErrors
	Value  any
}

// Err returns nil for valid results and the violations otherwise.
func (r Result) Err() error {
	if r.Valid {
		return nil
	}
	return r.Errors
}

// MarshalJSON renders {"valid", "errors", "value"} with errors as a list.
func (r Result) MarshalJSON() ([]byte, error) {
	errs := []validator.ValidationError(r.Errors)
	if errs == nil {
		errs = []validator.ValidationError{}
	}
	return json.Marshal(struct {
		Valid  bool                        `json:"valid"`
		Errors []validator.ValidationError `json:"errors"`
		Value  any                         `json:"value"`
	}{r.Valid, errs, r.Value})
}

func newResult(value any, errs validator.ValidationErrors) Result {
	if errs == nil {
		errs = validator.ValidationErrors{}
	}
	return Result{Valid: len(errs) == 0, Errors: errs, Value: value}
}
