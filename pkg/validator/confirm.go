package validator

// Default confirmation messages.
const (
	ConfirmEmptyMessage    = "Please confirm your password"
	ConfirmMismatchMessage = "Passwords do not match"
)

// Confirmation describes a field whose value must repeat another field.
// Confirmation fields are never looked up in a Registry.
type Confirmation struct {
	// Field is the confirming field, e.g. "confirmPassword".
	Field string
	// Primary is the field being confirmed, e.g. "password".
	Primary string

	EmptyMessage    string
	MismatchMessage string
}

// Evaluate checks the confirmation against the values in record.
func (c Confirmation) Evaluate(record Record) Outcome {
	return c.compare(record.Get(c.Primary), record.Get(c.Field))
}

func (c Confirmation) compare(primary, confirmation string) Outcome {
	if confirmation == "" {
		return Fail(orDefault(c.EmptyMessage, ConfirmEmptyMessage))
	}
	if confirmation != primary {
		return Fail(orDefault(c.MismatchMessage, ConfirmMismatchMessage))
	}
	return Pass()
}

// EvaluateConfirmation compares a confirmation value to its primary value
// using exact string equality and the default messages.
func EvaluateConfirmation(primary, confirmation string) Outcome {
	return Confirmation{}.compare(primary, confirmation)
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
