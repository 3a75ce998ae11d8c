package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/validator"
)

func TestNewRegistry(t *testing.T) {
	t.Run("keeps declaration order", func(t *testing.T) {
		reg, err := validator.NewRegistry(
			validator.FieldRule{Field: "b", Required: true},
			validator.FieldRule{Field: "a", Required: true},
			validator.FieldRule{Field: "c"},
		)
		require.NoError(t, err)
		assert.Equal(t, []string{"b", "a", "c"}, reg.Fields())
		assert.Equal(t, 3, reg.Len())
	})

	t.Run("fields returns a copy", func(t *testing.T) {
		reg := validator.MustNewRegistry(validator.FieldRule{Field: "a"})
		fields := reg.Fields()
		fields[0] = "mutated"
		assert.Equal(t, []string{"a"}, reg.Fields())
	})

	t.Run("rejects duplicate fields", func(t *testing.T) {
		_, err := validator.NewRegistry(
			validator.FieldRule{Field: "email", Required: true},
			validator.FieldRule{Field: "email"},
		)
		require.Error(t, err)
		assert.ErrorIs(t, err, validator.ErrDuplicateField)
	})

	t.Run("rejects empty field identifier", func(t *testing.T) {
		_, err := validator.NewRegistry(validator.FieldRule{Required: true})
		assert.ErrorIs(t, err, validator.ErrEmptyField)
	})

	t.Run("rejects constrained rule without message", func(t *testing.T) {
		_, err := validator.NewRegistry(validator.FieldRule{Field: "bio", MaxLength: validator.Limit(10)})
		assert.ErrorIs(t, err, validator.ErrMissingMessage)
	})

	t.Run("allows required-only rule without message", func(t *testing.T) {
		_, err := validator.NewRegistry(validator.FieldRule{Field: "name", Required: true})
		assert.NoError(t, err)
	})

	t.Run("rejects inverted bounds", func(t *testing.T) {
		_, err := validator.NewRegistry(validator.FieldRule{
			Field:   "age",
			Min:     validator.Limit(10),
			Max:     validator.Limit(5),
			Message: "bad age",
		})
		assert.ErrorIs(t, err, validator.ErrInvalidBounds)

		_, err = validator.NewRegistry(validator.FieldRule{
			Field:     "code",
			MinLength: validator.Limit(4),
			MaxLength: validator.Limit(2),
			Message:   "bad code",
		})
		assert.ErrorIs(t, err, validator.ErrInvalidBounds)
	})

	t.Run("reports every problem at once", func(t *testing.T) {
		_, err := validator.NewRegistry(
			validator.FieldRule{},
			validator.FieldRule{Field: "x", Pattern: validator.MustFullMatch(`x`)},
		)
		require.Error(t, err)
		assert.ErrorIs(t, err, validator.ErrEmptyField)
		assert.ErrorIs(t, err, validator.ErrMissingMessage)
	})

	t.Run("must variant panics on error", func(t *testing.T) {
		assert.Panics(t, func() { validator.MustNewRegistry(validator.FieldRule{}) })
	})
}

func TestRegistry_Lookup(t *testing.T) {
	reg := validator.MustNewRegistry(validator.FieldRule{Field: "email", Required: true})

	t.Run("finds registered rule", func(t *testing.T) {
		rule, ok := reg.Lookup("email")
		require.True(t, ok)
		assert.True(t, rule.Required)
	})

	t.Run("missing field is unconstrained", func(t *testing.T) {
		_, ok := reg.Lookup("nickname")
		assert.False(t, ok)
		assert.Equal(t, validator.Pass(), reg.Evaluate("nickname", ""))
	})

	t.Run("nil registry is empty", func(t *testing.T) {
		var nilReg *validator.Registry
		_, ok := nilReg.Lookup("email")
		assert.False(t, ok)
		assert.Nil(t, nilReg.Fields())
		assert.Zero(t, nilReg.Len())
		assert.True(t, nilReg.Evaluate("email", "").Valid)
	})
}

func TestRegistry_Evaluate(t *testing.T) {
	reg := validator.MustNewRegistry(validator.FieldRule{
		Field:    "email",
		Required: true,
		Pattern:  validator.MustFullMatch(`[^\s@]+@[^\s@]+\.[^\s@]+`),
		Message:  "Please enter a valid email address",
	})

	assert.Equal(t, validator.Fail("email is required"), reg.Evaluate("email", ""))
	assert.Equal(t, validator.Fail("Please enter a valid email address"), reg.Evaluate("email", "not-an-email"))
	assert.Equal(t, validator.Pass(), reg.Evaluate("email", "a@b.co"))
}
