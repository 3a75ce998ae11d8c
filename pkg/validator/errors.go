package validator

import "errors"

// Registry construction errors.
var (
	// ErrEmptyField is returned when a rule has no field identifier.
	ErrEmptyField = errors.New("field identifier is empty")

	// ErrDuplicateField is returned when two rules share a field identifier.
	ErrDuplicateField = errors.New("duplicate field rule")

	// ErrMissingMessage is returned when a constrained rule has no failure message.
	ErrMissingMessage = errors.New("rule has constraints but no message")

	// ErrInvalidBounds is returned when a lower bound exceeds its upper bound.
	ErrInvalidBounds = errors.New("lower bound exceeds upper bound")

	// ErrInvalidPattern is returned when a pattern expression does not compile.
	ErrInvalidPattern = errors.New("invalid pattern")
)

// ErrValidationFailed is the generic message used when an invalid outcome
// would otherwise carry no message.
var ErrValidationFailed = errors.New("validation failed")
