package sanitizer

import (
	"cmp"
	"math"
)

// Float represents floating-point numeric types.
type Float interface {
	~float32 | ~float64
}

// Clamp constrains value to the range [lo, hi].
func Clamp[T cmp.Ordered](value, lo, hi T) T {
	return min(max(value, lo), hi)
}

// MaxPlaces is the largest precision RoundTo applies; beyond it value is
// returned unchanged.
const MaxPlaces = 15

// RoundTo rounds value to the given number of decimal places.
// Negative places are treated as zero. Values whose scaled form overflows
// are returned unchanged.
func RoundTo[T Float](value T, places int) T {
	if places > MaxPlaces {
		return value
	}
	multiplier := math.Pow(10, float64(max(places, 0)))
	scaled := float64(value) * multiplier
	if math.IsInf(scaled, 0) || math.IsNaN(scaled) {
		return value
	}
	return T(math.Round(scaled) / multiplier)
}

// Apply rounds value according to the mode. RoundNone and unknown modes
// return value unchanged.
func (m RoundMode) Apply(value float64) float64 {
	switch m {
	case RoundCeil:
		return math.Ceil(value)
	case RoundFloor:
		return math.Floor(value)
	case RoundNearest:
		return math.Round(value)
	case RoundNone:
	}
	return value
}
