package ui

import (
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/formkit/pkg/logger"
	"github.com/dmitrymomot/formkit/pkg/validator"
)

// EventKind is the kind of a user interaction with a form field.
type EventKind string

const (
	EventInput  EventKind = "input"
	EventBlur   EventKind = "blur"
	EventSubmit EventKind = "submit"
)

// Event is one user interaction. Field and Value are ignored for submit.
type Event struct {
	Kind  EventKind
	Field string
	Value string
}

// View is what changed after an event.
type View struct {
	Fields []FieldState
	// Result is set for submit events.
	Result *validator.Result
}

// Page owns the state of the registration page.
type Page struct {
	Counter Counter
	FAQ     *Accordion
	Tabs    *Tabs

	theme Theme
	store ThemeStore
	log   *slog.Logger

	form   *validator.Form
	record validator.Record
	fields map[string]FieldState
	labels map[string]string
	secret map[string]bool

	formVisible    bool
	successVisible bool
}

// PageOption configures a Page.
type PageOption func(*Page)

// WithThemeStore persists the theme through store.
func WithThemeStore(store ThemeStore) PageOption {
	return func(p *Page) {
		if store != nil {
			p.store = store
		}
	}
}

// WithLogger sets the page logger.
func WithLogger(l *slog.Logger) PageOption {
	return func(p *Page) {
		if l != nil {
			p.log = l
		}
	}
}

// WithFAQ sets the number of FAQ items.
func WithFAQ(items int) PageOption {
	return func(p *Page) {
		p.FAQ = NewAccordion(items)
	}
}

// WithTabs declares the page tabs. Invalid tab sets are ignored.
func WithTabs(ids ...string) PageOption {
	return func(p *Page) {
		if tabs, err := NewTabs(ids...); err == nil {
			p.Tabs = tabs
		}
	}
}

// WithLabels sets the label shown next to each field. Fields without a label
// are shown with their identifier.
func WithLabels(labels map[string]string) PageOption {
	return func(p *Page) {
		for field, label := range labels {
			p.labels[field] = label
		}
	}
}

// WithSecretFields renders the given fields as password inputs. Their values
// are never written back into the markup.
func WithSecretFields(fields ...string) PageOption {
	return func(p *Page) {
		for _, field := range fields {
			p.secret[field] = true
		}
	}
}

// NewPage creates a page around form and restores the saved theme.
func NewPage(form *validator.Form, opts ...PageOption) (*Page, error) {
	p := &Page{
		FAQ:         NewAccordion(0),
		store:       &MemoryStore{},
		log:         logger.Discard(),
		form:        form,
		record:      validator.Record{},
		fields:      make(map[string]FieldState),
		labels:      make(map[string]string),
		secret:      make(map[string]bool),
		formVisible: true,
		theme:       ThemeLight,
	}
	for _, opt := range opts {
		opt(p)
	}

	theme, err := p.store.LoadTheme()
	if err != nil {
		return nil, fmt.Errorf("load theme: %w", err)
	}
	p.theme = theme
	return p, nil
}

func (p *Page) Theme() Theme {
	return p.theme
}

// ToggleTheme switches the theme and saves it.
func (p *Page) ToggleTheme() (Theme, error) {
	p.theme = p.theme.Toggle()
	if err := p.store.SaveTheme(p.theme); err != nil {
		return p.theme, fmt.Errorf("save theme: %w", err)
	}
	p.log.Debug("theme toggled", slog.String("theme", string(p.theme)))
	return p.theme, nil
}

// Dispatch applies ev and returns the field states it produced.
func (p *Page) Dispatch(ev Event) (View, error) {
	switch ev.Kind {
	case EventInput:
		return View{Fields: []FieldState{p.input(ev.Field, ev.Value)}}, nil
	case EventBlur:
		p.record[ev.Field] = ev.Value
		if ev.Value == "" {
			return View{}, nil
		}
		return View{Fields: []FieldState{p.input(ev.Field, ev.Value)}}, nil
	case EventSubmit:
		res := p.submit()
		return View{Fields: PresentResult(res), Result: &res}, nil
	default:
		return View{}, fmt.Errorf("%w: %q", ErrUnknownEvent, ev.Kind)
	}
}

func (p *Page) input(field, value string) FieldState {
	p.record[field] = value
	st := Present(field, p.form.EvaluateField(field, p.record))
	p.fields[field] = st
	p.log.Debug("field evaluated", logger.Field(field), slog.String("class", st.Class))
	return st
}

func (p *Page) submit() validator.Result {
	res := p.form.Submit(p.record)
	for _, st := range PresentResult(res) {
		p.fields[st.Field] = st
	}
	p.formVisible = !res.Accepted
	p.successVisible = res.Accepted
	p.log.Info("form submitted", logger.Accepted(res.Accepted), logger.Failed(res.Failed()))
	return res
}

// FieldState returns the last rendered state of field.
func (p *Page) FieldState(field string) (FieldState, bool) {
	st, ok := p.fields[field]
	return st, ok
}

// Value returns the current value of field.
func (p *Page) Value(field string) string {
	return p.record.Get(field)
}

// FormVisible reports whether the form is still shown. It is hidden after an
// accepted submission.
func (p *Page) FormVisible() bool {
	return p.formVisible
}

// Inputs returns the render state of every form field in evaluation order.
func (p *Page) Inputs() []FieldInput {
	fields := p.form.Fields()
	out := make([]FieldInput, 0, len(fields))
	for _, field := range fields {
		in := FieldInput{
			Field:  field,
			Label:  field,
			Secret: p.secret[field],
			State:  p.fields[field],
		}
		if label, ok := p.labels[field]; ok && label != "" {
			in.Label = label
		}
		if !in.Secret {
			in.Value = p.record.Get(field)
		}
		out = append(out, in)
	}
	return out
}

// SuccessVisible reports whether the success panel is shown.
func (p *Page) SuccessVisible() bool {
	return p.successVisible
}
