package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/schemakit/pkg/validator"
)

func TestIsEmail(t *testing.T) {
	valid := []string{"user@example.com", "first.last+tag@sub.example.co"}
	invalid := []string{"", "   ", "not-an-email", "user@localhost", "user@.example.com", "user@example..com", "John <john@example.com>"}

	for _, v := range valid {
		assert.True(t, validator.IsEmail(v), v)
	}
	for _, v := range invalid {
		assert.False(t, validator.IsEmail(v), v)
	}
}

func TestIsURL(t *testing.T) {
	assert.True(t, validator.IsURL("https://example.com/path?q=1"))
	assert.True(t, validator.IsURL("ftp://files.example.com"))
	assert.False(t, validator.IsURL("example.com"))
	assert.False(t, validator.IsURL("/relative/path"))
	assert.False(t, validator.IsURL(""))
}

func TestIsAlphanumeric(t *testing.T) {
	assert.True(t, validator.IsAlphanumeric("abc123"))
	assert.False(t, validator.IsAlphanumeric("abc 123"))
	assert.False(t, validator.IsAlphanumeric("abc-123"))
	assert.False(t, validator.IsAlphanumeric(""))
}

func TestIsUUID(t *testing.T) {
	assert.True(t, validator.IsUUID("123e4567-e89b-12d3-a456-426614174000"))
	assert.False(t, validator.IsUUID("123e4567e89b12d3a456426614174000"))
	assert.False(t, validator.IsUUID("123e4567-e89b-12d3-a456-42661417400z"))
}

func TestFormatRules(t *testing.T) {
	tests := []struct {
		name string
		rule validator.Rule
		kind string
	}{
		{"email", validator.ValidEmail("f", "x"), validator.KindEmail},
		{"url", validator.ValidURL("f", "x"), validator.KindURL},
		{"alphanumeric", validator.ValidAlphanumeric("f", "x-y"), validator.KindAlphanumeric},
		{"uuid", validator.ValidUUID("f", "x"), validator.KindUUID},
	}
	for _, tt := range tests {
		t.Run(tt.name+" failure carries its kind", func(t *testing.T) {
			assert.False(t, tt.rule.Check())
			assert.Equal(t, tt.kind, tt.rule.Error.Kind)
			assert.Equal(t, "f", tt.rule.Error.Path)
		})
	}
}
