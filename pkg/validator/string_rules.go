package validator

import (
	"fmt"
	"regexp"
	"unicode/utf8"

	"github.com/dmitrymomot/schemakit/pkg/cache"
)

// MinLen validates that a string has at least min characters.
// Length is counted in Unicode code points.
func MinLen(path, value string, min int) Rule {
	return Rule{
		Check: func() bool {
			return utf8.RuneCountInString(value) >= min
		},
		Error: newError(path, KindMinLength, fmt.Sprintf("must be at least %d characters long", min), value),
	}
}

// MaxLen validates that a string has at most max characters.
func MaxLen(path, value string, max int) Rule {
	return Rule{
		Check: func() bool {
			return utf8.RuneCountInString(value) <= max
		},
		Error: newError(path, KindMaxLength, fmt.Sprintf("must be at most %d characters long", max), value),
	}
}

// Matches validates a string against a compiled pattern.
func Matches(path, value string, re *regexp.Regexp) Rule {
	return Rule{
		Check: func() bool {
			return re.MatchString(value)
		},
		Error: newError(path, KindPattern, fmt.Sprintf("must match pattern %s", re.String()), value),
	}
}

// MatchesPattern compiles pattern and validates value against it.
// It panics if the pattern is not a valid regular expression.
func MatchesPattern(path, value, pattern string) Rule {
	return Matches(path, value, cache.MustRegexp(pattern))
}
