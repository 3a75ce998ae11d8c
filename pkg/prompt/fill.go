package prompt

import (
	"context"
	"errors"

	"github.com/dmitrymomot/formkit/pkg/validator"
)

// Option configures Fill.
type Option func(*filler)

// WithLabels sets the prompt text per field. Fields without a label are
// prompted with their identifier.
func WithLabels(labels map[string]string) Option {
	return func(f *filler) {
		for field, label := range labels {
			f.labels[field] = label
		}
	}
}

// WithSecretFields masks the answers of the given fields.
func WithSecretFields(fields ...string) Option {
	return func(f *filler) {
		for _, field := range fields {
			f.secret[field] = true
		}
	}
}

// WithMaxAttempts bounds how often a field is re-asked when the driver
// returns an invalid answer. The last answer is kept either way.
func WithMaxAttempts(n int) Option {
	return func(f *filler) {
		if n > 0 {
			f.maxAttempts = n
		}
	}
}

type filler struct {
	driver      Driver
	form        *validator.Form
	labels      map[string]string
	secret      map[string]bool
	maxAttempts int
}

// Fill asks for every field of form and submits the collected record.
func Fill(ctx context.Context, d Driver, form *validator.Form, opts ...Option) (validator.Record, validator.Result, error) {
	f := &filler{
		driver:      d,
		form:        form,
		labels:      make(map[string]string),
		secret:      make(map[string]bool),
		maxAttempts: 3,
	}
	for _, opt := range opts {
		opt(f)
	}

	record := validator.Record{}
	for _, field := range form.Fields() {
		value, err := f.ask(ctx, field, record)
		if err != nil {
			return record, validator.Result{}, err
		}
		record[field] = value
	}

	return record, form.Submit(record), nil
}

func (f *filler) ask(ctx context.Context, field string, record validator.Record) (string, error) {
	cfg := InputConfig{
		Message:   f.label(field),
		Validator: f.validatorFor(field, record),
	}

	var value string
	for attempt := 0; attempt < f.maxAttempts; attempt++ {
		var err error
		if f.secret[field] {
			value, err = f.driver.Password(ctx, cfg)
		} else {
			value, err = f.driver.Input(ctx, cfg)
		}
		if err != nil {
			return "", err
		}

		verr := cfg.Validator(value)
		if verr == nil {
			return value, nil
		}
		if err := f.driver.Info(ctx, verr.Error()); err != nil {
			return "", err
		}
	}
	return value, nil
}

func (f *filler) validatorFor(field string, record validator.Record) func(string) error {
	return func(value string) error {
		candidate := record.Clone()
		candidate[field] = value
		if o := f.form.EvaluateField(field, candidate); !o.Valid {
			return errors.New(o.Message)
		}
		return nil
	}
}

func (f *filler) label(field string) string {
	if label, ok := f.labels[field]; ok && label != "" {
		return label
	}
	return field
}
