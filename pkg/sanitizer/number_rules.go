package sanitizer

import (
	"math"
	"strconv"
	"strings"

	"github.com/dmitrymomot/schemakit/pkg/kind"
)

// RoundMode selects integral rounding.
type RoundMode string

const (
	RoundNone    RoundMode = ""
	RoundCeil    RoundMode = "ceil"
	RoundFloor   RoundMode = "floor"
	RoundNearest RoundMode = "round"
)

// NumberRules configures SanitizeNumber. Steps run in order: coercion,
// rounding, clamping, precision, sign, finiteness.
type NumberRules struct {
	// Default replaces input that cannot be coerced, and non-finite results.
	// Zero is used when nil.
	Default *float64 `yaml:"default,omitempty" json:"default,omitempty"`

	Round RoundMode `yaml:"round,omitempty" json:"round,omitempty"`

	// Min and Max only change the value when Clamp is set; enforcing bounds
	// is the validator's job.
	Min   *float64 `yaml:"min,omitempty" json:"min,omitempty"`
	Max   *float64 `yaml:"max,omitempty" json:"max,omitempty"`
	Clamp bool     `yaml:"clamp,omitempty" json:"clamp,omitempty"`

	// Precision is the number of decimal places to keep.
	Precision *int `yaml:"precision,omitempty" json:"precision,omitempty"`

	// Positive zeroes negative values, Negative zeroes positive ones.
	// With Abs the sign is flipped instead; Abs alone takes the absolute value.
	Positive bool `yaml:"positive,omitempty" json:"positive,omitempty"`
	Negative bool `yaml:"negative,omitempty" json:"negative,omitempty"`
	Abs      bool `yaml:"abs,omitempty" json:"abs,omitempty"`
}

// ToNumber coerces numbers, numeric strings and booleans to float64.
func ToNumber(value any) (float64, bool) {
	if f, ok := kind.Float(value); ok {
		return f, true
	}
	if s, ok := kind.Text(value); ok {
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		return f, err == nil
	}
	if b, ok := value.(bool); ok {
		if b {
			return 1, true
		}
		return 0, true
	}
	return 0, false
}

// SanitizeNumber coerces value and applies rules. The result is always a float64.
func SanitizeNumber(value any, rules NumberRules) float64 {
	fallback := 0.0
	if rules.Default != nil {
		fallback = *rules.Default
	}

	n, ok := ToNumber(value)
	if !ok {
		n = fallback
	}

	n = rules.Round.Apply(n)

	if rules.Clamp {
		lo, hi := math.Inf(-1), math.Inf(1)
		if rules.Min != nil {
			lo = *rules.Min
		}
		if rules.Max != nil {
			hi = *rules.Max
		}
		n = Clamp(n, lo, hi)
	}

	if rules.Precision != nil {
		n = RoundTo(n, *rules.Precision)
	}

	switch {
	case rules.Negative && rules.Abs:
		n = -math.Abs(n)
	case rules.Negative && n > 0:
		n = 0
	case rules.Abs:
		n = math.Abs(n)
	case rules.Positive && n < 0:
		n = 0
	}

	if math.IsNaN(n) || math.IsInf(n, 0) {
		n = fallback
	}
	return n
}
