// Package validator provides a small declarative engine for validating form
// fields given as raw strings.
//
// A form is described by a Registry of FieldRule values, one per field. Each
// rule combines a required flag, optional length and numeric bounds, an
// optional full-text Matcher and a single failure message. Evaluating a value
// against a rule yields an Outcome; evaluating a whole Record through a Form
// yields a Result that carries one Outcome per field and a single accept or
// reject verdict.
//
// # Architecture
//
// The package is split by concern:
//   - rule.go         – FieldRule, Bound, Matcher and matcher constructors
//   - registry.go     – immutable field id to FieldRule mapping
//   - evaluate.go     – the per-field evaluation pipeline
//   - confirm.go      – cross-field confirmation checks
//   - form.go         – the form aggregator and its Result
//   - record.go       – snapshots of submitted values
//   - core.go         – Outcome, ValidationError and ValidationErrors
//
// There is no hidden global state. A Registry and a Form never change after
// construction, so both are safe for concurrent use without locking.
//
// # Usage
//
//	reg := validator.MustNewRegistry(
//	    validator.FieldRule{
//	        Field:     "fullName",
//	        Required:  true,
//	        MinLength: validator.Limit(2),
//	        Pattern:   validator.MustFullMatch(`[a-zA-Z\s]+`),
//	        Message:   "Name must contain only letters and spaces (min 2 characters)",
//	    },
//	)
//	form := validator.NewForm(reg,
//	    validator.WithConfirmation(validator.Confirmation{Field: "confirmPassword", Primary: "password"}),
//	)
//
//	res := form.Submit(validator.Record{"fullName": "John Doe"})
//	if err := res.Err(); err != nil {
//	    if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	        // iterate over field-level messages
//	    }
//	}
//
// # Evaluation order
//
// Checks run in a fixed order and the first failure wins: required, empty
// optional short-circuit, minimum length, maximum length, numeric range and
// finally the pattern. Only the required check has its own message
// ("<field> is required"); every other failure reports FieldRule.Message.
//
// Fields absent from the Registry are always valid. Callers that want a
// closed set of fields should wrap the Registry with typed identifiers, as
// package registration does.
package validator
