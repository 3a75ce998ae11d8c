package registration

import (
	"fmt"
	"slices"
)

// Field identifies one input of the registration form.
type Field string

const (
	FullName        Field = "fullName"
	Email           Field = "email"
	Phone           Field = "phone"
	Password        Field = "password"
	ConfirmPassword Field = "confirmPassword"
	Age             Field = "age"
	Website         Field = "website"
	Bio             Field = "bio"
)

// allFields is the display and evaluation order of the form.
var allFields = []Field{FullName, Email, Phone, Password, ConfirmPassword, Age, Website, Bio}

// Fields returns every field of the form in display order.
func Fields() []Field {
	return slices.Clone(allFields)
}

// ParseField maps a raw identifier to a Field.
func ParseField(name string) (Field, error) {
	f := Field(name)
	if !slices.Contains(allFields, f) {
		return "", fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
	return f, nil
}

func (f Field) String() string {
	return string(f)
}

var labels = map[Field]string{
	FullName:        "Full name",
	Email:           "Email address",
	Phone:           "Phone number",
	Password:        "Password",
	ConfirmPassword: "Confirm password",
	Age:             "Age",
	Website:         "Website",
	Bio:             "Bio",
}

// Label is the human readable name of the field.
func (f Field) Label() string {
	if l, ok := labels[f]; ok {
		return l
	}
	return string(f)
}

// Labels returns the labels of every field keyed by identifier.
func Labels() map[string]string {
	out := make(map[string]string, len(labels))
	for f, l := range labels {
		out[f.String()] = l
	}
	return out
}

// SecretFields returns the identifiers of fields whose values are masked.
func SecretFields() []string {
	var out []string
	for _, f := range allFields {
		if f.Secret() {
			out = append(out, f.String())
		}
	}
	return out
}

// IsConfirmation reports whether the field is checked against another field
// instead of a rule.
func (f Field) IsConfirmation() bool {
	return f == ConfirmPassword
}

// Secret reports whether the field value should be masked when echoed.
func (f Field) Secret() bool {
	return f == Password || f == ConfirmPassword
}
