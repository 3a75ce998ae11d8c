package registration

import "github.com/dmitrymomot/formkit/pkg/validator"

var passwordConfirmation = validator.Confirmation{
	Field:           ConfirmPassword.String(),
	Primary:         Password.String(),
	EmptyMessage:    validator.ConfirmEmptyMessage,
	MismatchMessage: validator.ConfirmMismatchMessage,
}

var form = validator.NewForm(rules,
	validator.WithConfirmation(passwordConfirmation),
	validator.WithFieldOrder(fieldNames(allFields)...),
)

// Form returns the aggregator for the registration form.
func Form() *validator.Form {
	return form
}

// Values holds raw input keyed by typed field.
type Values map[Field]string

// Record converts v into a validator record.
func (v Values) Record() validator.Record {
	rec := make(validator.Record, len(v))
	for f, value := range v {
		rec[f.String()] = value
	}
	return rec
}

// Evaluate validates a single rule-backed field. For ConfirmPassword use
// EvaluateField or EvaluateConfirmation, which need the password as well.
func Evaluate(f Field, raw string) validator.Outcome {
	return rules.Evaluate(f.String(), raw)
}

// EvaluateConfirmation checks the confirmation value against the password.
func EvaluateConfirmation(password, confirmation string) validator.Outcome {
	return passwordConfirmation.Evaluate(validator.Record{
		Password.String():        password,
		ConfirmPassword.String(): confirmation,
	})
}

// EvaluateField validates f using the other values where it depends on them.
func EvaluateField(f Field, v Values) validator.Outcome {
	return form.EvaluateField(f.String(), v.Record())
}

// Submit validates every field of the form.
func Submit(v Values) validator.Result {
	return form.Submit(v.Record())
}

func fieldNames(fields []Field) []string {
	out := make([]string, len(fields))
	for i, f := range fields {
		out[i] = f.String()
	}
	return out
}
