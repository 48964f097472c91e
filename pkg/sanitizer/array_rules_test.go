package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/schemakit/pkg/sanitizer"
)

func TestSanitizeArray(t *testing.T) {
	t.Parallel()

	t.Run("items sanitized", func(t *testing.T) {
		t.Parallel()
		got := sanitizer.SanitizeArray([]any{" A ", "b "}, sanitizer.ArrayRules{
			Items: &sanitizer.Rules{String: &sanitizer.StringRules{Trim: true, Lowercase: true}},
		})
		assert.Equal(t, []any{"a", "b"}, got)
	})

	t.Run("compact drops empty values", func(t *testing.T) {
		t.Parallel()
		got := sanitizer.SanitizeArray([]any{"a", "", nil, 0, false}, sanitizer.ArrayRules{Compact: true})
		assert.Equal(t, []any{"a", 0, false}, got)
	})

	t.Run("unique keeps first occurrence", func(t *testing.T) {
		t.Parallel()
		got := sanitizer.SanitizeArray([]any{"go", 1, "go", 1.0, map[string]any{"k": 1}, map[string]any{"k": 1}}, sanitizer.ArrayRules{Unique: true})
		assert.Equal(t, []any{"go", 1, map[string]any{"k": 1}}, got)
	})

	t.Run("unique after item sanitizing", func(t *testing.T) {
		t.Parallel()
		got := sanitizer.SanitizeArray([]any{"Tag", "tag ", "other"}, sanitizer.ArrayRules{
			Items:  &sanitizer.Rules{String: &sanitizer.StringRules{Trim: true, Lowercase: true}},
			Unique: true,
		})
		assert.Equal(t, []any{"tag", "other"}, got)
	})

	t.Run("max items", func(t *testing.T) {
		t.Parallel()
		got := sanitizer.SanitizeArray([]any{1, 2, 3, 4}, sanitizer.ArrayRules{MaxItems: 2})
		assert.Equal(t, []any{1, 2}, got)
	})

	t.Run("input is not modified", func(t *testing.T) {
		t.Parallel()
		in := []any{" a "}
		_ = sanitizer.SanitizeArray(in, sanitizer.ArrayRules{Items: &sanitizer.Rules{String: &sanitizer.StringRules{Trim: true}}})
		assert.Equal(t, []any{" a "}, in)
	})
}
