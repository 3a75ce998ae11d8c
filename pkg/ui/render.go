package ui

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/a-h/templ"
)

// Element identifiers used by the page markup.
const (
	ThemeToggleID    = "themeToggle"
	CounterDisplayID = "counterDisplay"
	FormID           = "registrationForm"
	FormSuccessID    = "formSuccess"
)

// FieldInput is the render state of one form field.
type FieldInput struct {
	Field  string
	Label  string
	Value  string
	Secret bool
	// State is the zero FieldState until the field has been evaluated.
	State FieldState
}

// FieldComponent renders the input of one field together with its error and
// success elements.
func FieldComponent(in FieldInput) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		writeField(h, in)
		return h.err
	})
}

// PageComponent renders the page: theme toggle, counter, FAQ, tabs and the
// registration form with its feedback.
func PageComponent(p *Page) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}

		h.raw(`<body`)
		if class := p.theme.BodyClass(); class != "" {
			h.attr("class", class)
		}
		h.raw(">\n")

		h.raw(`<button`)
		h.attr("id", ThemeToggleID)
		h.attr("type", "button")
		h.raw(">")
		h.text(p.theme.ButtonLabel())
		h.raw("</button>\n")

		writeCounter(h, &p.Counter)
		if p.FAQ != nil && p.FAQ.Len() > 0 {
			writeFAQ(h, p.FAQ)
		}
		if p.Tabs != nil {
			writeTabs(h, p.Tabs)
		}

		h.raw(`<form`)
		h.attr("id", FormID)
		h.attr("style", display(p.formVisible))
		h.raw(" novalidate>\n")
		for _, in := range p.Inputs() {
			writeField(h, in)
		}
		h.raw("<button type=\"submit\">Register</button>\n</form>\n")

		h.raw(`<div`)
		h.attr("id", FormSuccessID)
		h.attr("style", display(p.successVisible))
		h.raw(">Registration successful!</div>\n</body>\n")
		return h.err
	})
}

func writeField(h *htmlWriter, in FieldInput) {
	errorID, successID := in.State.ErrorElementID, in.State.SuccessElementID
	if errorID == "" {
		errorID, successID = in.Field+"Error", in.Field+"Success"
	}
	inputType := "text"
	if in.Secret {
		inputType = "password"
	}

	h.raw(`<div class="form-group">` + "\n")
	h.raw(`<label`)
	h.attr("for", in.Field)
	h.raw(">")
	h.text(in.Label)
	h.raw("</label>\n<input")
	h.attr("id", in.Field)
	h.attr("name", in.Field)
	h.attr("type", inputType)
	if in.State.Class != "" {
		h.attr("class", in.State.Class)
	}
	if in.Value != "" {
		h.attr("value", in.Value)
	}
	h.raw(">\n<div")
	h.attr("id", errorID)
	h.attr("class", "error-message")
	h.attr("style", display(in.State.ErrorVisible))
	h.raw(">")
	h.text(in.State.ErrorText)
	h.raw("</div>\n<div")
	h.attr("id", successID)
	h.attr("class", "success-message")
	h.attr("style", display(in.State.SuccessVisible))
	h.raw(">✓</div>\n</div>\n")
}

func writeCounter(h *htmlWriter, c *Counter) {
	h.raw(`<div class="counter">` + "\n<span")
	h.attr("id", CounterDisplayID)
	h.attr("style", "color: "+c.Color())
	h.raw(">")
	h.text(strconv.Itoa(c.Value()))
	h.raw("</span>\n")
	h.raw(`<button id="decrementBtn" type="button">-</button>` + "\n")
	h.raw(`<button id="resetBtn" type="button">Reset</button>` + "\n")
	h.raw(`<button id="incrementBtn" type="button">+</button>` + "\n</div>\n")
}

func writeFAQ(h *htmlWriter, a *Accordion) {
	h.raw(`<div class="faq">` + "\n")
	for i := 0; i < a.Len(); i++ {
		open := a.IsOpen(i)
		h.raw(`<div class="faq-item">` + "\n<button")
		h.attr("class", "faq-question")
		h.attr("type", "button")
		h.raw(">")
		h.text(fmt.Sprintf("Question %d", i+1))
		h.raw("<span")
		h.attr("class", templ.Classes("faq-arrow", templ.KV("rotated", open)).String())
		h.raw("></span></button>\n<div")
		h.attr("class", templ.Classes("faq-answer", templ.KV("active", open)).String())
		h.raw("></div>\n</div>\n")
	}
	h.raw("</div>\n")
}

func writeTabs(h *htmlWriter, t *Tabs) {
	h.raw(`<div class="tabs">` + "\n")
	for _, id := range t.IDs() {
		h.raw("<button")
		h.attr("class", templ.Classes("tab-btn", templ.KV("active", t.IsActive(id))).String())
		h.attr("data-tab", id)
		h.attr("type", "button")
		h.raw(">")
		h.text(id)
		h.raw("</button>\n")
	}
	for _, id := range t.IDs() {
		h.raw("<div")
		h.attr("id", PanelID(id))
		h.attr("class", templ.Classes("tab-panel", templ.KV("active", t.IsActive(id))).String())
		h.raw("></div>\n")
	}
	h.raw("</div>\n")
}

func display(visible bool) string {
	if visible {
		return "display: block"
	}
	return "display: none"
}

// htmlWriter keeps the first write error so markup can be emitted without
// checking every call.
type htmlWriter struct {
	w   io.Writer
	err error
}

func (h *htmlWriter) raw(s string) {
	if h.err != nil {
		return
	}
	_, h.err = io.WriteString(h.w, s)
}

func (h *htmlWriter) text(s string) {
	h.raw(templ.EscapeString(s))
}

func (h *htmlWriter) attr(name, value string) {
	h.raw(" " + name + `="` + templ.EscapeString(value) + `"`)
}
