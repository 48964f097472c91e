package validator

import "fmt"

// RequiredError is the violation recorded for a missing value.
func RequiredError(path string) ValidationError {
	return newError(path, KindRequired, "is required", nil)
}

// TypeError is the violation recorded when a value has an unexpected kind.
func TypeError(path string, expected, actual fmt.Stringer, value any) ValidationError {
	return newError(path, KindType, fmt.Sprintf("expected %s, got %s", expected, actual), value)
}

// UnknownError is the violation recorded for an undeclared object key.
func UnknownError(path string, value any) ValidationError {
	return newError(path, KindUnknown, "is not allowed", value)
}

// CustomError is the violation recorded for a failed custom check.
// An empty message falls back to a generic one.
func CustomError(path, kind, message string, value any) ValidationError {
	if message == "" {
		if kind == KindAsyncCustom {
			message = "failed async validation"
		} else {
			message = "failed custom validation"
		}
	}
	return newError(path, kind, message, value)
}

// ExceptionError is the violation recorded when schema evaluation panics.
func ExceptionError(path string, cause any) ValidationError {
	return newError(path, KindException, fmt.Sprint(cause), nil)
}
