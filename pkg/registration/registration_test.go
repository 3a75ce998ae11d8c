package registration_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/registration"
	"github.com/dmitrymomot/formkit/pkg/validator"
)

func validValues() registration.Values {
	return registration.Values{
		registration.FullName:        "John Doe",
		registration.Email:           "john@example.com",
		registration.Phone:           "+1 (555) 123-4567",
		registration.Password:        "Secret1!",
		registration.ConfirmPassword: "Secret1!",
		registration.Age:             "30",
		registration.Website:         "https://example.com",
		registration.Bio:             "Hello there",
	}
}

func TestParseField(t *testing.T) {
	t.Run("parses every declared field", func(t *testing.T) {
		for _, f := range registration.Fields() {
			parsed, err := registration.ParseField(f.String())
			require.NoError(t, err)
			assert.Equal(t, f, parsed)
		}
	})

	t.Run("rejects unknown names", func(t *testing.T) {
		_, err := registration.ParseField("nickname")
		require.Error(t, err)
		assert.ErrorIs(t, err, registration.ErrUnknownField)
	})

	t.Run("names are case sensitive", func(t *testing.T) {
		_, err := registration.ParseField("Email")
		assert.ErrorIs(t, err, registration.ErrUnknownField)
	})
}

func TestField_Flags(t *testing.T) {
	assert.True(t, registration.ConfirmPassword.IsConfirmation())
	assert.False(t, registration.Password.IsConfirmation())
	assert.True(t, registration.Password.Secret())
	assert.True(t, registration.ConfirmPassword.Secret())
	assert.False(t, registration.Email.Secret())
}

func TestRules(t *testing.T) {
	t.Run("every field except the confirmation has exactly one rule", func(t *testing.T) {
		for _, f := range registration.Fields() {
			_, ok := registration.Rule(f)
			assert.Equal(t, !f.IsConfirmation(), ok, f.String())
		}
		assert.Equal(t, len(registration.Fields())-1, registration.Rules().Len())
	})

	t.Run("form order matches display order", func(t *testing.T) {
		want := make([]string, 0, len(registration.Fields()))
		for _, f := range registration.Fields() {
			want = append(want, f.String())
		}
		assert.Equal(t, want, registration.Form().Fields())
	})
}

func TestRequiredFields(t *testing.T) {
	for _, f := range []registration.Field{registration.FullName, registration.Email, registration.Password} {
		for _, blank := range []string{"", " ", "\t\n"} {
			o := registration.Evaluate(f, blank)
			assert.False(t, o.Valid, "%s %q", f, blank)
			assert.Equal(t, f.String()+" is required", o.Message)
		}
	}
}

func TestOptionalFields(t *testing.T) {
	for _, f := range []registration.Field{registration.Phone, registration.Age, registration.Website, registration.Bio} {
		assert.Equal(t, validator.Pass(), registration.Evaluate(f, ""), f.String())
		assert.Equal(t, validator.Pass(), registration.Evaluate(f, "   "), f.String())
	}
}

func TestFullName(t *testing.T) {
	const msg = "Name must contain only letters and spaces (min 2 characters)"

	assert.Equal(t, validator.Pass(), registration.Evaluate(registration.FullName, "John Doe"))
	assert.Equal(t, validator.Fail(msg), registration.Evaluate(registration.FullName, "J"))
	assert.Equal(t, validator.Fail(msg), registration.Evaluate(registration.FullName, "John3"))
}

func TestEmail(t *testing.T) {
	assert.True(t, registration.Evaluate(registration.Email, "a@b.co").Valid)

	for _, bad := range []string{"not-an-email", "a@b", "a b@c.de", "@b.co"} {
		o := registration.Evaluate(registration.Email, bad)
		assert.False(t, o.Valid, bad)
		assert.Equal(t, "Please enter a valid email address", o.Message)
	}
}

func TestPhone(t *testing.T) {
	assert.True(t, registration.Evaluate(registration.Phone, "+1 (555) 123-4567").Valid)
	assert.True(t, registration.Evaluate(registration.Phone, "5551234567").Valid)
	assert.False(t, registration.Evaluate(registration.Phone, "555-1234").Valid)
	assert.False(t, registration.Evaluate(registration.Phone, "call me maybe").Valid)
}

func TestPassword(t *testing.T) {
	const msg = "Password must be 8+ chars with uppercase, lowercase, number, and special character"

	tests := []struct {
		value string
		valid bool
	}{
		{"Secret1!", true},
		{"Abcdef1@", true},
		{"Sec1!", false},      // too short
		{"secret1!", false},   // no uppercase
		{"SECRET1!", false},   // no lowercase
		{"Secretty!", false},  // no digit
		{"Secret12", false},   // no special character
		{"Secret1!#", false},  // character outside the allowed set
		{"Secret 1!x", false}, // whitespace is not allowed
	}

	for _, tt := range tests {
		o := registration.Evaluate(registration.Password, tt.value)
		assert.Equal(t, tt.valid, o.Valid, tt.value)
		if !tt.valid {
			assert.Equal(t, msg, o.Message, tt.value)
		}
	}
}

func TestAge(t *testing.T) {
	assert.False(t, registration.Evaluate(registration.Age, "12").Valid)
	assert.True(t, registration.Evaluate(registration.Age, "13").Valid)
	assert.True(t, registration.Evaluate(registration.Age, "120").Valid)
	assert.False(t, registration.Evaluate(registration.Age, "121").Valid)
	assert.Equal(t, validator.Fail("Age must be between 13 and 120"), registration.Evaluate(registration.Age, "abc"))

	t.Run("leading integer is used", func(t *testing.T) {
		for _, v := range []string{"13.5", "20 years", "13abc", "  42"} {
			assert.True(t, registration.Evaluate(registration.Age, v).Valid, v)
		}
		for _, v := range []string{"12.9", "121 years", "years 20", "-"} {
			assert.False(t, registration.Evaluate(registration.Age, v).Valid, v)
		}
	})
}

func TestWebsite(t *testing.T) {
	assert.True(t, registration.Evaluate(registration.Website, "http://example.com").Valid)
	assert.True(t, registration.Evaluate(registration.Website, "https://sub.example.org/path").Valid)
	assert.False(t, registration.Evaluate(registration.Website, "example.com").Valid)
	assert.False(t, registration.Evaluate(registration.Website, "ftp://example.com").Valid)
}

func TestBio(t *testing.T) {
	assert.True(t, registration.Evaluate(registration.Bio, strings.Repeat("a", 200)).Valid)
	assert.Equal(t,
		validator.Fail("Bio must be less than 200 characters"),
		registration.Evaluate(registration.Bio, strings.Repeat("a", 201)),
	)

	t.Run("length counts characters not UTF-16 units", func(t *testing.T) {
		assert.True(t, registration.Evaluate(registration.Bio, strings.Repeat("😀", 150)).Valid)
		assert.False(t, registration.Evaluate(registration.Bio, strings.Repeat("😀", 201)).Valid)
	})
}

func TestEvaluateConfirmation(t *testing.T) {
	assert.Equal(t, validator.Fail("Please confirm your password"), registration.EvaluateConfirmation("Secret1!", ""))
	assert.Equal(t, validator.Fail("Passwords do not match"), registration.EvaluateConfirmation("Secret1!", "Mismatch"))
	assert.Equal(t, validator.Pass(), registration.EvaluateConfirmation("Secret1!", "Secret1!"))
}

func TestEvaluateField(t *testing.T) {
	v := validValues()
	v[registration.ConfirmPassword] = "Secret2!"

	assert.Equal(t, validator.Fail("Passwords do not match"), registration.EvaluateField(registration.ConfirmPassword, v))
	assert.True(t, registration.EvaluateField(registration.Email, v).Valid)
}

func TestEvaluateIsIdempotent(t *testing.T) {
	for _, f := range registration.Fields() {
		for _, value := range []string{"", "John Doe", "12", "Secret1!", "https://x.y"} {
			first := registration.Evaluate(f, value)
			second := registration.Evaluate(f, value)
			assert.Equal(t, first, second)
		}
	}
}

func TestSubmit(t *testing.T) {
	t.Run("accepts a fully valid record", func(t *testing.T) {
		res := registration.Submit(validValues())
		assert.True(t, res.Accepted)
		assert.Len(t, res.Outcomes, len(registration.Fields()))
		assert.NoError(t, res.Err())
	})

	t.Run("one invalid among five fields reports all five", func(t *testing.T) {
		five := validator.NewForm(validator.MustNewRegistry(
			mustRule(t, registration.FullName),
			mustRule(t, registration.Email),
			mustRule(t, registration.Age),
			mustRule(t, registration.Website),
			mustRule(t, registration.Bio),
		))
		rec := validator.Record{
			"fullName": "John Doe",
			"email":    "a@b.co",
			"age":      "12",
			"website":  "https://example.com",
			"bio":      "hi",
		}

		res := five.Submit(rec)
		assert.False(t, res.Accepted)
		require.Len(t, res.Outcomes, 5)
		assert.Equal(t, []string{"age"}, res.Failed())
		for field, o := range res.Outcomes {
			assert.Equal(t, field != "age", o.Valid, field)
		}
	})

	t.Run("rejected record surfaces every message", func(t *testing.T) {
		v := validValues()
		v[registration.FullName] = "J"
		v[registration.Age] = "abc"
		v[registration.ConfirmPassword] = ""

		res := registration.Submit(v)
		assert.False(t, res.Accepted)
		assert.Equal(t, []string{"fullName", "confirmPassword", "age"}, res.Failed())

		verrs := validator.ExtractValidationErrors(res.Err())
		require.NotNil(t, verrs)
		assert.Equal(t, "Please confirm your password", verrs.Get("confirmPassword"))
	})

	t.Run("missing values behave like empty inputs", func(t *testing.T) {
		res := registration.Submit(registration.Values{})
		assert.False(t, res.Accepted)
		assert.Equal(t, []string{"fullName", "email", "password", "confirmPassword"}, res.Failed())
	})
}

func mustRule(t *testing.T, f registration.Field) validator.FieldRule {
	t.Helper()
	rule, ok := registration.Rule(f)
	require.True(t, ok)
	return rule
}

func TestLabels(t *testing.T) {
	assert.Equal(t, "Full name", registration.FullName.Label())
	assert.Equal(t, "custom", registration.Field("custom").Label())

	labels := registration.Labels()
	assert.Len(t, labels, len(registration.Fields()))
	assert.Equal(t, "Confirm password", labels["confirmPassword"])

	assert.Equal(t, []string{"password", "confirmPassword"}, registration.SecretFields())
}
