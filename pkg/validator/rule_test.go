package validator_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/schemakit/pkg/validator"
)

func TestApply(t *testing.T) {
	t.Run("returns nil when all rules pass", func(t *testing.T) {
		err := validator.Apply(
			validator.MinLen("name", "Ann", 2),
			validator.ValidEmail("email", "ann@example.com"),
			validator.Max("age", 30, 120),
		)
		assert.NoError(t, err)
	})

	t.Run("collects every failure", func(t *testing.T) {
		err := validator.Apply(
			validator.MinLen("name", "A", 2),
			validator.ValidEmail("email", "nope"),
			validator.Max("age", 150, 120),
		)
		errs := validator.ExtractValidationErrors(err)
		require.Len(t, errs, 3)
		assert.Equal(t, []string{"name", "email", "age"}, errs.Paths())
	})
}

func TestCollect(t *testing.T) {
	rules := []validator.Rule{
		validator.MinLen("name", "", 1),
		validator.MaxLen("name", "", 0),
		validator.ValidAlphanumeric("name", ""),
	}

	t.Run("stops at the first failure", func(t *testing.T) {
		errs := validator.Collect(true, rules...)
		require.Len(t, errs, 1)
		assert.Equal(t, validator.KindMinLength, errs[0].Kind)
	})

	t.Run("never returns nil", func(t *testing.T) {
		errs := validator.Collect(false)
		assert.NotNil(t, errs)
		assert.Empty(t, errs)
	})
}

func TestStringRules(t *testing.T) {
	t.Run("length counts code points", func(t *testing.T) {
		assert.True(t, validator.MinLen("s", "héllo", 5).Check())
		assert.True(t, validator.MaxLen("s", "héllo", 5).Check())
		assert.False(t, validator.MaxLen("s", "héllo!", 5).Check())
	})

	t.Run("bounds are inclusive", func(t *testing.T) {
		assert.True(t, validator.MinLen("s", "abc", 3).Check())
		assert.False(t, validator.MinLen("s", "ab", 3).Check())
	})

	t.Run("min length message names the bound", func(t *testing.T) {
		rule := validator.MinLen("name", "a", 3)
		assert.Equal(t, "must be at least 3 characters long", rule.Error.Message)
		assert.Equal(t, "a", rule.Error.Value)
	})

	t.Run("pattern rules", func(t *testing.T) {
		re := regexp.MustCompile(`^[a-z]+$`)
		assert.True(t, validator.Matches("slug", "abc", re).Check())
		rule := validator.Matches("slug", "ABC", re)
		assert.False(t, rule.Check())
		assert.Equal(t, validator.KindPattern, rule.Error.Kind)
	})

	t.Run("invalid pattern panics", func(t *testing.T) {
		assert.Panics(t, func() { validator.MatchesPattern("x", "y", "(") })
	})
}

func TestNumericRules(t *testing.T) {
	t.Run("min and max are inclusive", func(t *testing.T) {
		assert.True(t, validator.Min("n", 0.0, 0).Check())
		assert.True(t, validator.Max("n", 120.0, 120).Check())
		assert.False(t, validator.Min("n", -1, 0).Check())
		assert.False(t, validator.Max("n", 121, 120).Check())
	})

	t.Run("max message contains the bound", func(t *testing.T) {
		rule := validator.Max("age", 150.0, 120)
		assert.Equal(t, "must be at most 120", rule.Error.Message)
		assert.Equal(t, validator.KindMax, rule.Error.Kind)
	})

	t.Run("integer rejects fractions", func(t *testing.T) {
		assert.True(t, validator.Integer("n", 4).Check())
		assert.True(t, validator.Integer("n", -12).Check())
		assert.False(t, validator.Integer("n", 4.5).Check())
		assert.False(t, validator.Integer("n", 0.0001).Check())
	})
}

func TestCollectionRules(t *testing.T) {
	t.Run("item counts", func(t *testing.T) {
		assert.True(t, validator.MinItems("tags", []any{1}, 1).Check())
		assert.False(t, validator.MinItems("tags", []any{}, 1).Check())
		assert.False(t, validator.MaxItems("tags", []string{"a", "b"}, 1).Check())
	})

	t.Run("one of compares numbers by value", func(t *testing.T) {
		assert.True(t, validator.OneOf("n", 3, []any{1.0, 3.0}).Check())
		assert.True(t, validator.OneOf("s", "b", []any{"a", "b"}).Check())
		rule := validator.OneOf("s", "c", []any{"a", "b"})
		assert.False(t, rule.Check())
		assert.Equal(t, "must be one of: a, b", rule.Error.Message)
	})
}

func TestPresenceErrors(t *testing.T) {
	t.Run("custom error falls back to a generic message", func(t *testing.T) {
		assert.Equal(t, "failed custom validation", validator.CustomError("x", validator.KindCustom, "", 1).Message)
		assert.Equal(t, "failed async validation", validator.CustomError("x", validator.KindAsyncCustom, "", 1).Message)
		assert.Equal(t, "bad value", validator.CustomError("x", validator.KindCustom, "bad value", 1).Message)
	})

	t.Run("required error has no value", func(t *testing.T) {
		err := validator.RequiredError("user.email")
		assert.Equal(t, "user.email", err.Path)
		assert.Equal(t, validator.KindRequired, err.Kind)
		assert.Nil(t, err.Value)
	})
}
