package validator

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Evaluate validates raw against the rule. Checks run in a fixed order and
// the first failing check determines the outcome.
func (r FieldRule) Evaluate(raw string) Outcome {
	blank := strings.TrimSpace(raw) == ""

	if r.Required && blank {
		return Fail(r.Field + " is required")
	}
	if blank {
		return Pass()
	}

	length := utf8.RuneCountInString(raw)
	if r.MinLength.Set && length < r.MinLength.Value {
		return Fail(r.Message)
	}
	if r.MaxLength.Set && length > r.MaxLength.Value {
		return Fail(r.Message)
	}

	if r.numeric() && !r.inRange(raw) {
		return Fail(r.Message)
	}

	if r.Pattern != nil && !r.Pattern.MatchString(raw) {
		return Fail(r.Message)
	}

	return Pass()
}

func (r FieldRule) inRange(raw string) bool {
	n, ok := leadingInt(raw)
	if !ok {
		return false
	}
	if r.Min.Set && n < r.Min.Value {
		return false
	}
	if r.Max.Set && n > r.Max.Value {
		return false
	}
	return true
}

// leadingInt reads an optional sign and the decimal digits that follow it,
// skipping leading white space and ignoring anything after the digits.
// "20 years" and "13.5" read as 20 and 13. Values that overflow int saturate.
func leadingInt(raw string) (int, bool) {
	s := strings.TrimLeftFunc(raw, unicode.IsSpace)

	sign := ""
	if s != "" && (s[0] == '+' || s[0] == '-') {
		sign, s = s[:1], s[1:]
	}

	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0, false
	}

	n, err := strconv.Atoi(sign + s[:end])
	if errors.Is(err, strconv.ErrRange) {
		if sign == "-" {
			return math.MinInt, true
		}
		return math.MaxInt, true
	}
	return n, err == nil
}
