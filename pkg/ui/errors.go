package ui

import "errors"

var (
	// ErrUnknownTab is returned when selecting a tab that was not declared.
	ErrUnknownTab = errors.New("ui: unknown tab")

	// ErrNoTabs is returned when creating a tab set without tabs.
	ErrNoTabs = errors.New("ui: at least one tab is required")

	// ErrItemOutOfRange is returned when toggling a FAQ item that does not exist.
	ErrItemOutOfRange = errors.New("ui: accordion item out of range")

	// ErrUnknownEvent is returned for events with an unsupported kind.
	ErrUnknownEvent = errors.New("ui: unknown event kind")
)
