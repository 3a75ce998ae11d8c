package validator

import (
	"fmt"
	"regexp"
)

// Bound is an optional integer limit. The zero Bound is unset; a Bound built
// with Limit is set even when its value is zero.
type Bound struct {
	Value int
	Set   bool
}

// Limit returns a set Bound with the given value.
func Limit(n int) Bound {
	return Bound{Value: n, Set: true}
}

func (b Bound) String() string {
	if !b.Set {
		return "unset"
	}
	return fmt.Sprintf("%d", b.Value)
}

// Matcher reports whether a raw value satisfies a pattern.
// *regexp.Regexp implements it.
type Matcher interface {
	MatchString(s string) bool
}

// MatcherFunc adapts a plain function to the Matcher interface.
type MatcherFunc func(s string) bool

func (f MatcherFunc) MatchString(s string) bool {
	return f(s)
}

// FieldRule describes the constraints of one form field.
type FieldRule struct {
	// Field is the identifier the rule is registered under.
	Field string

	Required bool

	// MinLength and MaxLength bound the value length in Unicode code points.
	// Characters outside the Basic Multilingual Plane, such as most emoji,
	// count once here where a UTF-16 length would count them twice.
	MinLength Bound
	MaxLength Bound

	// Min and Max bound the leading base-10 integer of the value. Text after
	// the digits is ignored, so "13.5" reads as 13.
	Min Bound
	Max Bound

	// Pattern must match the entire raw value.
	Pattern Matcher

	// Message is reported for every failure except the required check.
	Message string
}

// constrained reports whether the rule can fail for a non-empty value.
func (r FieldRule) constrained() bool {
	return r.MinLength.Set || r.MaxLength.Set || r.Min.Set || r.Max.Set || r.Pattern != nil
}

func (r FieldRule) numeric() bool {
	return r.Min.Set || r.Max.Set
}

func (r FieldRule) validate() error {
	if r.Field == "" {
		return ErrEmptyField
	}
	if r.constrained() && r.Message == "" {
		return fmt.Errorf("%w: %s", ErrMissingMessage, r.Field)
	}
	if r.MinLength.Set && r.MaxLength.Set && r.MinLength.Value > r.MaxLength.Value {
		return fmt.Errorf("%w: %s length %d > %d", ErrInvalidBounds, r.Field, r.MinLength.Value, r.MaxLength.Value)
	}
	if r.Min.Set && r.Max.Set && r.Min.Value > r.Max.Value {
		return fmt.Errorf("%w: %s range %d > %d", ErrInvalidBounds, r.Field, r.Min.Value, r.Max.Value)
	}
	return nil
}

// FullMatch compiles expr so that it must match the whole input.
func FullMatch(expr string) (*regexp.Regexp, error) {
	re, err := regexp.Compile(`^(?:` + expr + `)$`)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPattern, err)
	}
	return re, nil
}

// MustFullMatch is like FullMatch but panics if expr does not compile.
// Intended for statically declared rule tables.
func MustFullMatch(expr string) *regexp.Regexp {
	re, err := FullMatch(expr)
	if err != nil {
		panic(err)
	}
	return re
}

// Contains returns a Matcher satisfied when expr matches anywhere in the input.
// It is meant to be combined with MatchAll.
func Contains(expr string) Matcher {
	return regexp.MustCompile(expr)
}

// MatchAll returns a Matcher satisfied only when every matcher is.
// It stands in for look-ahead assertions, which RE2 does not support.
func MatchAll(matchers ...Matcher) Matcher {
	return MatcherFunc(func(s string) bool {
		for _, m := range matchers {
			if m != nil && !m.MatchString(s) {
				return false
			}
		}
		return true
	})
}
