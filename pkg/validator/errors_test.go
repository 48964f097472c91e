package validator_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/schemakit/pkg/validator"
)

func sampleErrors() validator.ValidationErrors {
	return validator.ValidationErrors{
		{Path: "email", Message: "is required", Kind: validator.KindRequired},
		{Path: "password", Message: "must be at least 8 characters long", Kind: validator.KindMinLength, Value: "short"},
		{Path: "password", Message: "failed custom validation", Kind: validator.KindCustom, Value: "short"},
	}
}

func TestValidationError_Error(t *testing.T) {
	t.Run("prefixes the path", func(t *testing.T) {
		err := validator.ValidationError{Path: "user.email", Message: "must be a valid email address"}
		assert.Equal(t, "user.email: must be a valid email address", err.Error())
	})

	t.Run("omits an empty root path", func(t *testing.T) {
		err := validator.ValidationError{Message: "is required"}
		assert.Equal(t, "is required", err.Error())
	})
}

func TestValidationErrors_Error(t *testing.T) {
	t.Run("returns default message when no errors", func(t *testing.T) {
		var errs validator.ValidationErrors
		assert.Equal(t, "validation failed", errs.Error())
	})

	t.Run("joins path prefixed messages", func(t *testing.T) {
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{Path: "email", Message: "is required"})
		errs.Add(validator.ValidationError{Path: "age", Message: "must be at most 120"})
		assert.Equal(t, "validation failed: email: is required; age: must be at most 120", errs.Error())
	})
}

func TestValidationErrors_Accessors(t *testing.T) {
	errs := sampleErrors()

	t.Run("has reports paths with errors", func(t *testing.T) {
		assert.True(t, errs.Has("password"))
		assert.False(t, errs.Has("username"))
	})

	t.Run("get returns messages for a path", func(t *testing.T) {
		assert.Equal(t, []string{"must be at least 8 characters long", "failed custom validation"}, errs.Get("password"))
		assert.Nil(t, errs.Get("username"))
	})

	t.Run("get errors returns records for a path", func(t *testing.T) {
		got := errs.GetErrors("email")
		require.Len(t, got, 1)
		assert.Equal(t, validator.KindRequired, got[0].Kind)
	})

	t.Run("messages are path prefixed", func(t *testing.T) {
		assert.Equal(t, []string{
			"email: is required",
			"password: must be at least 8 characters long",
			"password: failed custom validation",
		}, errs.Messages())
	})

	t.Run("paths are distinct in first seen order", func(t *testing.T) {
		assert.Equal(t, []string{"email", "password"}, errs.Paths())
	})

	t.Run("group by path keeps order within groups", func(t *testing.T) {
		groups := errs.GroupByPath()
		require.Len(t, groups, 2)
		require.Len(t, groups["password"], 2)
		assert.Equal(t, validator.KindMinLength, groups["password"][0].Kind)
		assert.Equal(t, validator.KindCustom, groups["password"][1].Kind)
	})

	t.Run("of kind filters records", func(t *testing.T) {
		got := errs.OfKind(validator.KindCustom)
		require.Len(t, got, 1)
		assert.Equal(t, "password", got[0].Path)
		assert.Empty(t, errs.OfKind(validator.KindEmail))
		assert.NotNil(t, errs.OfKind(validator.KindEmail))
	})
}

func TestValidationErrors_Format(t *testing.T) {
	errs := validator.ValidationErrors{
		{Path: "b", Message: "two"},
		{Path: "", Message: "root"},
		{Path: "a", Message: "one"},
		{Path: "b", Message: "three"},
	}
	assert.Equal(t, "(root): root\na: one\nb: two, three\n", errs.Format())
}

func TestValidationErrors_JSON(t *testing.T) {
	t.Run("marshals an object with message and errors", func(t *testing.T) {
		data, err := json.Marshal(sampleErrors()[:1])
		require.NoError(t, err)
		assert.JSONEq(t, `{
			"message": "validation failed: email: is required",
			"errors": [{"path": "email", "message": "is required", "kind": "required", "value": null}]
		}`, string(data))
	})

	t.Run("marshals empty errors as an empty list", func(t *testing.T) {
		data, err := json.Marshal(validator.ValidationErrors(nil))
		require.NoError(t, err)
		assert.JSONEq(t, `{"message": "validation failed", "errors": []}`, string(data))
	})

	t.Run("unmarshals both forms", func(t *testing.T) {
		data, err := json.Marshal(sampleErrors())
		require.NoError(t, err)

		var fromObject validator.ValidationErrors
		require.NoError(t, json.Unmarshal(data, &fromObject))
		assert.Len(t, fromObject, 3)

		var fromList validator.ValidationErrors
		require.NoError(t, json.Unmarshal([]byte(`[{"path":"a","message":"m","kind":"min"}]`), &fromList))
		require.Len(t, fromList, 1)
		assert.Equal(t, validator.KindMin, fromList[0].Kind)
	})
}

func TestExtractValidationErrors(t *testing.T) {
	t.Run("returns nil for nil error", func(t *testing.T) {
		assert.Nil(t, validator.ExtractValidationErrors(nil))
		assert.False(t, validator.IsValidationError(nil))
	})

	t.Run("unwraps wrapped validation errors", func(t *testing.T) {
		wrapped := fmt.Errorf("create user: %w", sampleErrors())
		got := validator.ExtractValidationErrors(wrapped)
		assert.Len(t, got, 3)
		assert.True(t, validator.IsValidationError(wrapped))
		assert.True(t, errors.Is(wrapped, validator.ErrValidationFailed))
	})

	t.Run("returns nil for other errors", func(t *testing.T) {
		err := errors.New("boom")
		assert.Nil(t, validator.ExtractValidationErrors(err))
		assert.False(t, validator.IsValidationError(err))
	})
}
