package validator_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/validator"
)

func TestOutcome(t *testing.T) {
	t.Run("pass has no message", func(t *testing.T) {
		o := validator.Pass()
		assert.True(t, o.Valid)
		assert.Empty(t, o.Message)
	})

	t.Run("fail keeps message", func(t *testing.T) {
		o := validator.Fail("too short")
		assert.False(t, o.Valid)
		assert.Equal(t, "too short", o.Message)
	})

	t.Run("fail without message falls back to generic one", func(t *testing.T) {
		o := validator.Fail("")
		assert.False(t, o.Valid)
		assert.Equal(t, "validation failed", o.Message)
	})
}

func TestValidationErrors_Error(t *testing.T) {
	t.Run("returns default message when no errors", func(t *testing.T) {
		var errs validator.ValidationErrors
		assert.Equal(t, "validation failed", errs.Error())
	})

	t.Run("returns formatted message with single error", func(t *testing.T) {
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{Field: "email", Message: "is required"})
		assert.Equal(t, "validation failed: email: is required", errs.Error())
	})

	t.Run("joins multiple errors in insertion order", func(t *testing.T) {
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{Field: "email", Message: "is required"})
		errs.Add(validator.ValidationError{Field: "password", Message: "too short"})
		assert.Equal(t, "validation failed: email: is required; password: too short", errs.Error())
	})
}

func TestValidationErrors_Accessors(t *testing.T) {
	var errs validator.ValidationErrors
	errs.Add(validator.ValidationError{Field: "email", Message: "is required"})
	errs.Add(validator.ValidationError{Field: "age", Message: "out of range"})

	t.Run("has", func(t *testing.T) {
		assert.True(t, errs.Has("email"))
		assert.False(t, errs.Has("password"))
	})

	t.Run("get", func(t *testing.T) {
		assert.Equal(t, "out of range", errs.Get("age"))
		assert.Empty(t, errs.Get("nonexistent"))
	})

	t.Run("fields keeps order", func(t *testing.T) {
		assert.Equal(t, []string{"email", "age"}, errs.Fields())
	})

	t.Run("is empty", func(t *testing.T) {
		assert.False(t, errs.IsEmpty())
		assert.True(t, validator.ValidationErrors{}.IsEmpty())
	})
}

func TestExtractValidationErrors(t *testing.T) {
	t.Run("returns nil for nil error", func(t *testing.T) {
		assert.Nil(t, validator.ExtractValidationErrors(nil))
		assert.False(t, validator.IsValidationError(nil))
	})

	t.Run("returns nil for unrelated error", func(t *testing.T) {
		err := errors.New("boom")
		assert.Nil(t, validator.ExtractValidationErrors(err))
		assert.False(t, validator.IsValidationError(err))
	})

	t.Run("unwraps wrapped validation errors", func(t *testing.T) {
		verrs := validator.ValidationErrors{{Field: "email", Message: "is required"}}
		err := fmt.Errorf("register: %w", verrs)

		require.True(t, validator.IsValidationError(err))
		extracted := validator.ExtractValidationErrors(err)
		require.NotNil(t, extracted)
		assert.Equal(t, "is required", extracted.Get("email"))
	})
}
