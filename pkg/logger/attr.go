package logger

import (
	"log/slog"
	"strconv"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups multiple non-nil errors under the key "errors".
// If all errors are nil, it returns an empty Attr.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Event records the event name under the key "event".
func Event(name string) slog.Attr {
	return slog.String("event", name)
}

// Field records a form field identifier under the key "field".
func Field(name string) slog.Attr {
	return slog.String("field", name)
}

// Accepted records a submission verdict under the key "accepted".
func Accepted(ok bool) slog.Attr {
	return slog.Bool("accepted", ok)
}

// Outcome groups a field verdict under the field name.
// The message is only present when the field is invalid.
func Outcome(field string, valid bool, message string) slog.Attr {
	attrs := []slog.Attr{slog.Bool("valid", valid)}
	if !valid {
		attrs = append(attrs, slog.String("message", message))
	}
	return Group(field, attrs...)
}

// Failed records the identifiers of failing fields under the key "failed".
func Failed(fields []string) slog.Attr {
	return slog.Any("failed", fields)
}
