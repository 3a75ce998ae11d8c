package registration

import "errors"

// ErrUnknownField is returned by ParseField for names the form does not declare.
var ErrUnknownField = errors.New("unknown registration field")
