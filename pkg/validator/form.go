package validator

import "slices"

// Form aggregates a Registry and its confirmation fields into a single
// submission check. A Form is immutable and safe for concurrent use.
type Form struct {
	registry      *Registry
	confirmations map[string]Confirmation
	order         []string
}

// FormOption configures a Form.
type FormOption func(*formConfig)

type formConfig struct {
	confirmations []Confirmation
	order         []string
}

// WithConfirmation adds a cross-field confirmation. Confirmations without a
// field or primary field are ignored.
func WithConfirmation(c Confirmation) FormOption {
	return func(cfg *formConfig) {
		if c.Field == "" || c.Primary == "" {
			return
		}
		cfg.confirmations = append(cfg.confirmations, c)
	}
}

// WithFieldOrder sets the evaluation and reporting order. Known fields left
// out of fields are appended in their default order; unknown ones are dropped.
func WithFieldOrder(fields ...string) FormOption {
	return func(cfg *formConfig) {
		cfg.order = append(cfg.order[:0], fields...)
	}
}

// NewForm creates a Form over reg.
func NewForm(reg *Registry, opts ...FormOption) *Form {
	cfg := &formConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	f := &Form{
		registry:      reg,
		confirmations: make(map[string]Confirmation, len(cfg.confirmations)),
	}
	for _, c := range cfg.confirmations {
		f.confirmations[c.Field] = c
	}

	f.order = f.defaultOrder(cfg.confirmations)
	if len(cfg.order) > 0 {
		f.order = f.customOrder(cfg.order)
	}
	return f
}

// defaultOrder lists registry fields in declaration order with every
// confirmation placed right after its primary field.
func (f *Form) defaultOrder(confirmations []Confirmation) []string {
	order := make([]string, 0, f.registry.Len()+len(confirmations))
	placed := make(map[string]bool, len(confirmations))

	for _, field := range f.registry.Fields() {
		if _, isConfirmation := f.confirmations[field]; isConfirmation {
			continue
		}
		order = append(order, field)
		for _, c := range confirmations {
			if c.Primary == field && !placed[c.Field] {
				order = append(order, c.Field)
				placed[c.Field] = true
			}
		}
	}
	for _, c := range confirmations {
		if !placed[c.Field] {
			order = append(order, c.Field)
			placed[c.Field] = true
		}
	}
	return order
}

func (f *Form) customOrder(fields []string) []string {
	order := make([]string, 0, len(f.order))
	seen := make(map[string]bool, len(f.order))
	for _, field := range fields {
		if seen[field] || !f.known(field) {
			continue
		}
		order = append(order, field)
		seen[field] = true
	}
	for _, field := range f.order {
		if !seen[field] {
			order = append(order, field)
		}
	}
	return order
}

func (f *Form) known(field string) bool {
	if _, ok := f.confirmations[field]; ok {
		return true
	}
	_, ok := f.registry.Lookup(field)
	return ok
}

// Fields returns the evaluation order of the form.
func (f *Form) Fields() []string {
	return slices.Clone(f.order)
}

// Registry returns the rule registry behind the form.
func (f *Form) Registry() *Registry {
	return f.registry
}

// Confirmation returns the confirmation registered for field, if any.
func (f *Form) Confirmation(field string) (Confirmation, bool) {
	c, ok := f.confirmations[field]
	return c, ok
}

// EvaluateField validates a single field against the current record.
// Confirmation fields are compared with their primary field; all other fields
// go through the Registry.
func (f *Form) EvaluateField(field string, record Record) Outcome {
	if c, ok := f.confirmations[field]; ok {
		return c.Evaluate(record)
	}
	return f.registry.Evaluate(field, record.Get(field))
}

// Submit evaluates every field of the form against a snapshot of record.
// All fields are evaluated even after a failure so that every message is
// available to the caller.
func (f *Form) Submit(record Record) Result {
	snapshot := record.Clone()
	res := Result{
		Accepted: true,
		Outcomes: make(map[string]Outcome, len(f.order)),
		Order:    f.Fields(),
	}
	for _, field := range f.order {
		outcome := f.EvaluateField(field, snapshot)
		res.Outcomes[field] = outcome
		res.Accepted = res.Accepted && outcome.Valid
	}
	return res
}

// Result is the verdict of a form submission.
type Result struct {
	Accepted bool               `json:"accepted" yaml:"accepted"`
	Outcomes map[string]Outcome `json:"outcomes" yaml:"outcomes"`
	// Order lists the fields of Outcomes in evaluation order.
	Order []string `json:"-" yaml:"-"`
}

// Failed returns the invalid fields in evaluation order.
func (r Result) Failed() []string {
	var out []string
	for _, field := range r.Order {
		if o, ok := r.Outcomes[field]; ok && !o.Valid {
			out = append(out, field)
		}
	}
	return out
}

// Err returns nil for an accepted result and ValidationErrors listing every
// failing field otherwise.
func (r Result) Err() error {
	if r.Accepted {
		return nil
	}
	var errs ValidationErrors
	for _, field := range r.Failed() {
		errs.Add(ValidationError{Field: field, Message: r.Outcomes[field].Message})
	}
	if errs.IsEmpty() {
		return ValidationErrors{}
	}
	return errs
}
