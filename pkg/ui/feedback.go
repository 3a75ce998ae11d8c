package ui

import "github.com/dmitrymomot/formkit/pkg/validator"

// Field state classes.
const (
	ClassSuccess = "success"
	ClassError   = "error"
)

// FieldState is how one input and its messages should be displayed.
type FieldState struct {
	Field string `json:"field"`
	// Class is the class the input carries, "success" or "error".
	Class string `json:"class"`

	ErrorText      string `json:"error_text,omitempty"`
	ErrorVisible   bool   `json:"error_visible"`
	SuccessVisible bool   `json:"success_visible"`

	ErrorElementID   string `json:"error_element_id"`
	SuccessElementID string `json:"success_element_id"`
}

// Present maps an outcome for field to its display state.
func Present(field string, o validator.Outcome) FieldState {
	st := FieldState{
		Field:            field,
		ErrorElementID:   field + "Error",
		SuccessElementID: field + "Success",
	}
	if o.Valid {
		st.Class = ClassSuccess
		st.SuccessVisible = true
		return st
	}
	st.Class = ClassError
	st.ErrorText = o.Message
	st.ErrorVisible = true
	return st
}

// PresentResult maps every outcome of res in evaluation order.
func PresentResult(res validator.Result) []FieldState {
	out := make([]FieldState, 0, len(res.Order))
	for _, field := range res.Order {
		if o, ok := res.Outcomes[field]; ok {
			out = append(out, Present(field, o))
		}
	}
	return out
}
