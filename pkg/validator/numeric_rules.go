package validator

import (
	"fmt"
	"math"
)

type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Min validates that a numeric value is greater than or equal to the minimum.
func Min[T Numeric](path string, value T, min T) Rule {
	return Rule{
		Check: func() bool {
			return value >= min
		},
		Error: newError(path, KindMin, fmt.Sprintf("must be at least %v", min), value),
	}
}

// Max validates that a numeric value is less than or equal to the maximum.
func Max[T Numeric](path string, value T, max T) Rule {
	return Rule{
		Check: func() bool {
			return value <= max
		},
		Error: newError(path, KindMax, fmt.Sprintf("must be at most %v", max), value),
	}
}

// Integer validates that a float has no fractional component.
func Integer(path string, value float64) Rule {
	return Rule{
		Check: func() bool {
			return !math.IsInf(value, 0) && value == math.Trunc(value)
		},
		Error: newError(path, KindInteger, "must be an integer", value),
	}
}
