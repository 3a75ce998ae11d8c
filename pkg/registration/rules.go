package registration

import "github.com/dmitrymomot/formkit/pkg/validator"

var (
	uppercase   = validator.Contains(`[A-Z]`)
	lowercase   = validator.Contains(`[a-z]`)
	digit       = validator.Contains(`[0-9]`)
	specialChar = validator.Contains(`[@$!%*?&]`)

	// strongPassword needs one character of each class and nothing outside them.
	strongPassword = validator.MatchAll(
		lowercase,
		uppercase,
		digit,
		specialChar,
		validator.MustFullMatch(`[A-Za-z0-9@$!%*?&]+`),
	)
)

var rules = validator.MustNewRegistry(
	validator.FieldRule{
		Field:     FullName.String(),
		Required:  true,
		MinLength: validator.Limit(2),
		Pattern:   validator.MustFullMatch(`[a-zA-Z\s]+`),
		Message:   "Name must contain only letters and spaces (min 2 characters)",
	},
	validator.FieldRule{
		Field:    Email.String(),
		Required: true,
		Pattern:  validator.MustFullMatch(`[^\s@]+@[^\s@]+\.[^\s@]+`),
		Message:  "Please enter a valid email address",
	},
	validator.FieldRule{
		Field:   Phone.String(),
		Pattern: validator.MustFullMatch(`\+?[\d\s\-()]{10,}`),
		Message: "Please enter a valid phone number (min 10 digits)",
	},
	validator.FieldRule{
		Field:     Password.String(),
		Required:  true,
		MinLength: validator.Limit(8),
		Pattern:   strongPassword,
		Message:   "Password must be 8+ chars with uppercase, lowercase, number, and special character",
	},
	validator.FieldRule{
		Field:   Age.String(),
		Min:     validator.Limit(13),
		Max:     validator.Limit(120),
		Message: "Age must be between 13 and 120",
	},
	validator.FieldRule{
		Field:   Website.String(),
		Pattern: validator.MustFullMatch(`https?://.+\..+`),
		Message: "Please enter a valid URL (starting with http:// or https://)",
	},
	validator.FieldRule{
		Field:     Bio.String(),
		MaxLength: validator.Limit(200),
		Message:   "Bio must be less than 200 characters",
	},
)

// Rules returns the rule registry of the form. It is built once and shared.
func Rules() *validator.Registry {
	return rules
}

// Rule returns the rule for f. The confirmation field has no rule.
func Rule(f Field) (validator.FieldRule, bool) {
	return rules.Lookup(f.String())
}
