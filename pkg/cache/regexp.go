package cache

import (
	"fmt"
	"regexp"
)

// PatternCapacity bounds the shared compiled-pattern cache.
const PatternCapacity = 1024

var patterns = NewLRU[string, *regexp.Regexp](PatternCapacity)

// Regexp compiles pattern, serving repeats from a shared LRU.
func Regexp(pattern string) (*regexp.Regexp, error) {
	return patterns.GetOrAdd(pattern, func() (*regexp.Regexp, error) {
		return regexp.Compile(pattern)
	})
}

// MustRegexp is Regexp that panics on an invalid pattern.
func MustRegexp(pattern string) *regexp.Regexp {
	re, err := Regexp(pattern)
	if err != nil {
		panic(fmt.Errorf("invalid pattern %q: %w", pattern, err))
	}
	return re
}
