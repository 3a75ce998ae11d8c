package validator

import (
	"errors"
	"fmt"
)

// Registry is an immutable mapping from field identifier to FieldRule.
// It keeps the declaration order of its rules.
type Registry struct {
	rules map[string]FieldRule
	order []string
}

// NewRegistry builds a Registry from rules. Every rule must name a distinct
// field; all problems are reported together.
func NewRegistry(rules ...FieldRule) (*Registry, error) {
	reg := &Registry{
		rules: make(map[string]FieldRule, len(rules)),
		order: make([]string, 0, len(rules)),
	}

	var errs []error
	for _, rule := range rules {
		if err := rule.validate(); err != nil {
			errs = append(errs, err)
			continue
		}
		if _, exists := reg.rules[rule.Field]; exists {
			errs = append(errs, fmt.Errorf("%w: %s", ErrDuplicateField, rule.Field))
			continue
		}
		reg.rules[rule.Field] = rule
		reg.order = append(reg.order, rule.Field)
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return reg, nil
}

// MustNewRegistry is like NewRegistry but panics on error.
func MustNewRegistry(rules ...FieldRule) *Registry {
	reg, err := NewRegistry(rules...)
	if err != nil {
		panic(fmt.Sprintf("validator: invalid rule registry: %v", err))
	}
	return reg
}

// Lookup returns the rule registered for field. A missing field is not an
// error: it means the field is unconstrained.
func (r *Registry) Lookup(field string) (FieldRule, bool) {
	if r == nil {
		return FieldRule{}, false
	}
	rule, ok := r.rules[field]
	return rule, ok
}

// Fields returns the registered field identifiers in declaration order.
func (r *Registry) Fields() []string {
	if r == nil {
		return nil
	}
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.order)
}

// Evaluate validates raw against the rule registered for field.
// Unknown fields are always valid.
func (r *Registry) Evaluate(field, raw string) Outcome {
	rule, ok := r.Lookup(field)
	if !ok {
		return Pass()
	}
	return rule.Evaluate(raw)
}
