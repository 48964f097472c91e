package validator

// Rule represents a single validation rule.
type Rule struct {
	Check func() bool
	Error ValidationError
}

// Apply executes multiple validation rules and returns any validation errors.
func Apply(rules ...Rule) error {
	errs := Collect(false, rules...)
	if errs.IsEmpty() {
		return nil
	}
	return errs
}

// Collect evaluates rules in order and returns the failures.
// With firstOnly set it stops at the first failing rule.
// The result is never nil.
func Collect(firstOnly bool, rules ...Rule) ValidationErrors {
	errs := ValidationErrors{}
	for _, rule := range rules {
		if rule.Check() {
			continue
		}
		errs = append(errs, rule.Error)
		if firstOnly {
			break
		}
	}
	return errs
}

func newError(path, kind, message string, value any) ValidationError {
	return ValidationError{Path: path, Kind: kind, Message: message, Value: value}
}
