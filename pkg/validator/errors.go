package validator

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Error kinds recorded on ValidationError.Kind.
const (
	KindRequired     = "required"
	KindType         = "type"
	KindMinLength    = "minLength"
	KindMaxLength    = "maxLength"
	KindPattern      = "pattern"
	KindEmail        = "email"
	KindURL          = "url"
	KindAlphanumeric = "alphanumeric"
	KindUUID         = "uuid"
	KindMin          = "min"
	KindMax          = "max"
	KindInteger      = "integer"
	KindEnum         = "enum"
	KindMinItems     = "minItems"
	KindMaxItems     = "maxItems"
	KindUnknown      = "unknown"
	KindCustom       = "custom"
	KindAsyncCustom  = "asyncCustom"
	KindException    = "exception"
)

// ErrValidationFailed is matched by errors.Is for any ValidationErrors value.
var ErrValidationFailed = errors.New("validation failed")

// ValidationError describes a single violation.
type ValidationError struct {
	Path    string `json:"path"`
	Message string `json:"message"`
	Kind    string `json:"kind"`
	Value   any    `json:"value"`
}

// Error renders the violation as "path: message", or just the message at the root.
func (e ValidationError) Error() string {
	if e.Path == "" {
		return e.Message
	}
	return e.Path + ": " + e.Message
}

// ValidationErrors represents a collection of validation errors.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}
	return "validation failed: " + strings.Join(ve.Messages(), "; ")
}

// Is makes errors.Is(err, ErrValidationFailed) true for any ValidationErrors.
func (ve ValidationErrors) Is(target error) bool {
	return target == ErrValidationFailed
}

func (ve *ValidationErrors) Add(err ValidationError) {
	*ve = append(*ve, err)
}

// Has reports whether any error was recorded at path.
func (ve ValidationErrors) Has(path string) bool {
	for _, err := range ve {
		if err.Path == path {
			return true
		}
	}
	return false
}

// Get returns the messages recorded at path.
func (ve ValidationErrors) Get(path string) []string {
	var messages []string
	for _, err := range ve {
		if err.Path == path {
			messages = append(messages, err.Message)
		}
	}
	return messages
}

// GetErrors returns the errors recorded at path.
func (ve ValidationErrors) GetErrors(path string) []ValidationError {
	var out []ValidationError
	for _, err := range ve {
		if err.Path == path {
			out = append(out, err)
		}
	}
	return out
}

// Messages returns every error rendered with its path prefix.
func (ve ValidationErrors) Messages() []string {
	out := make([]string, len(ve))
	for i, err := range ve {
		out[i] = err.Error()
	}
	return out
}

// Paths returns the distinct paths in first-seen order.
func (ve ValidationErrors) Paths() []string {
	var paths []string
	seen := make(map[string]bool)
	for _, err := range ve {
		if !seen[err.Path] {
			paths = append(paths, err.Path)
			seen[err.Path] = true
		}
	}
	return paths
}

// GroupByPath groups the errors by path, preserving order within each group.
func (ve ValidationErrors) GroupByPath() map[string][]ValidationError {
	out := make(map[string][]ValidationError)
	for _, err := range ve {
		out[err.Path] = append(out[err.Path], err)
	}
	return out
}

// OfKind returns the errors with the given kind.
func (ve ValidationErrors) OfKind(kind string) ValidationErrors {
	return ve.Filter(func(err ValidationError) bool { return err.Kind == kind })
}

// Filter returns the errors matching keep.
func (ve ValidationErrors) Filter(keep func(ValidationError) bool) ValidationErrors {
	out := ValidationErrors{}
	for _, err := range ve {
		if keep(err) {
			out = append(out, err)
		}
	}
	return out
}

func (ve ValidationErrors) IsEmpty() bool {
	return len(ve) == 0
}

// Format renders one line per path: "path: message, message".
// Paths are sorted; the root path is rendered as "(root)".
func (ve ValidationErrors) Format() string {
	groups := ve.GroupByPath()
	paths := make([]string, 0, len(groups))
	for p := range groups {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	var b strings.Builder
	for _, p := range paths {
		label := p
		if label == "" {
			label = "(root)"
		}
		msgs := make([]string, len(groups[p]))
		for i, err := range groups[p] {
			msgs[i] = err.Message
		}
		fmt.Fprintf(&b, "%s: %s\n", label, strings.Join(msgs, ", "))
	}
	return b.String()
}

type errorsJSON struct {
	Message string            `json:"message"`
	Errors  []ValidationError `json:"errors"`
}

// MarshalJSON writes {"message": ..., "errors": [...]}.
func (ve ValidationErrors) MarshalJSON() ([]byte, error) {
	list := []ValidationError(ve)
	if list == nil {
		list = []ValidationError{}
	}
	return json.Marshal(errorsJSON{Message: ve.Error(), Errors: list})
}

// UnmarshalJSON accepts both the object form written by MarshalJSON and a bare list.
func (ve *ValidationErrors) UnmarshalJSON(data []byte) error {
	var list []ValidationError
	if err := json.Unmarshal(data, &list); err == nil {
		*ve = list
		return nil
	}
	var obj errorsJSON
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	*ve = obj.Errors
	return nil
}

// ExtractValidationErrors extracts ValidationErrors from an error.
func ExtractValidationErrors(err error) ValidationErrors {
	if err == nil {
		return nil
	}

	var validationErr ValidationErrors
	if errors.As(err, &validationErr) {
		return validationErr
	}

	return nil
}

func IsValidationError(err error) bool {
	if err == nil {
		return false
	}

	var validationErr ValidationErrors
	return errors.As(err, &validationErr)
}
