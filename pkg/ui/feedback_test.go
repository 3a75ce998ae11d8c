package ui_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/dmitrymomot/formkit/pkg/ui"
	"github.com/dmitrymomot/formkit/pkg/validator"
)

func TestPresent(t *testing.T) {
	tests := []struct {
		name    string
		field   string
		outcome validator.Outcome
		want    ui.FieldState
	}{
		{
			name:    "valid outcome shows success",
			field:   "email",
			outcome: validator.Pass(),
			want: ui.FieldState{
				Field:            "email",
				Class:            ui.ClassSuccess,
				SuccessVisible:   true,
				ErrorElementID:   "emailError",
				SuccessElementID: "emailSuccess",
			},
		},
		{
			name:    "invalid outcome shows message",
			field:   "age",
			outcome: validator.Fail("Age must be between 13 and 120"),
			want: ui.FieldState{
				Field:            "age",
				Class:            ui.ClassError,
				ErrorText:        "Age must be between 13 and 120",
				ErrorVisible:     true,
				ErrorElementID:   "ageError",
				SuccessElementID: "ageSuccess",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, ui.Present(tt.field, tt.outcome)); diff != "" {
				t.Errorf("Present() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPresentResult(t *testing.T) {
	res := validator.Result{
		Outcomes: map[string]validator.Outcome{
			"email": validator.Pass(),
			"age":   validator.Fail("bad age"),
		},
		Order: []string{"age", "email", "missing"},
	}

	got := ui.PresentResult(res)
	want := []ui.FieldState{
		ui.Present("age", validator.Fail("bad age")),
		ui.Present("email", validator.Pass()),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("PresentResult() mismatch (-want +got):\n%s", diff)
	}
}
