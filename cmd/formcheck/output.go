package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/dmitrymomot/formkit/pkg/registration"
	"github.com/dmitrymomot/formkit/pkg/ui"
	"github.com/dmitrymomot/formkit/pkg/validator"
)

const (
	outputText = "text"
	outputJSON = "json"
)

func (a *app) jsonOutput() bool {
	return strings.EqualFold(a.cfg.Output, outputJSON)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

type ruleView struct {
	Field     string `json:"field"`
	Required  bool   `json:"required"`
	MinLength *int   `json:"min_length,omitempty"`
	MaxLength *int   `json:"max_length,omitempty"`
	Min       *int   `json:"min,omitempty"`
	Max       *int   `json:"max,omitempty"`
	Pattern   bool   `json:"pattern"`
	Message   string `json:"message,omitempty"`
}

func boundPtr(b validator.Bound) *int {
	if !b.Set {
		return nil
	}
	v := b.Value
	return &v
}

func (a *app) printRules(w io.Writer, reg *validator.Registry) error {
	views := make([]ruleView, 0, reg.Len())
	for _, field := range reg.Fields() {
		rule, _ := reg.Lookup(field)
		views = append(views, ruleView{
			Field:     field,
			Required:  rule.Required,
			MinLength: boundPtr(rule.MinLength),
			MaxLength: boundPtr(rule.MaxLength),
			Min:       boundPtr(rule.Min),
			Max:       boundPtr(rule.Max),
			Pattern:   rule.Pattern != nil,
			Message:   rule.Message,
		})
	}

	if a.jsonOutput() {
		return writeJSON(w, views)
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "FIELD\tREQUIRED\tLENGTH\tRANGE\tPATTERN")
	for _, v := range views {
		fmt.Fprintf(tw, "%s\t%t\t%s\t%s\t%t\n", v.Field, v.Required,
			span(v.MinLength, v.MaxLength), span(v.Min, v.Max), v.Pattern)
	}
	fmt.Fprintf(tw, "%s\t%t\t%s\t%s\t%t\n", registration.ConfirmPassword, true, "-", "-", false)
	return tw.Flush()
}

func span(lo, hi *int) string {
	if lo == nil && hi == nil {
		return "-"
	}
	format := func(p *int) string {
		if p == nil {
			return ""
		}
		return fmt.Sprintf("%d", *p)
	}
	return format(lo) + ".." + format(hi)
}

func (a *app) printOutcome(w io.Writer, field string, o validator.Outcome) error {
	if a.jsonOutput() {
		return writeJSON(w, ui.Present(field, o))
	}
	_, err := fmt.Fprintln(w, outcomeLine(field, o))
	return err
}

func (a *app) printResult(w io.Writer, res validator.Result) error {
	if a.jsonOutput() {
		return writeJSON(w, struct {
			Accepted bool            `json:"accepted"`
			Fields   []ui.FieldState `json:"fields"`
		}{
			Accepted: res.Accepted,
			Fields:   ui.PresentResult(res),
		})
	}

	for _, field := range res.Order {
		if _, err := fmt.Fprintln(w, outcomeLine(field, res.Outcomes[field])); err != nil {
			return err
		}
	}
	verdict := "accepted"
	if !res.Accepted {
		verdict = fmt.Sprintf("rejected (%d invalid)", len(res.Failed()))
	}
	_, err := fmt.Fprintln(w, verdict)
	return err
}

func outcomeLine(field string, o validator.Outcome) string {
	if o.Valid {
		return "ok    " + field
	}
	return "error " + field + ": " + o.Message
}

func printTheme(w io.Writer, theme ui.Theme) {
	fmt.Fprintf(w, "theme: %s\nbutton: %s\n", theme, theme.ButtonLabel())
}
