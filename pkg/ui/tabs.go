package ui

import (
	"fmt"
	"slices"
)

// PanelSuffix is appended to a tab id to form its panel id.
const PanelSuffix = "-panel"

// Tabs is a set of tabs with exactly one active tab.
type Tabs struct {
	ids    []string
	active string
}

// NewTabs creates a tab set with the first id active.
func NewTabs(ids ...string) (*Tabs, error) {
	if len(ids) == 0 {
		return nil, ErrNoTabs
	}
	return &Tabs{ids: slices.Clone(ids), active: ids[0]}, nil
}

// Select makes id the active tab.
func (t *Tabs) Select(id string) error {
	if !slices.Contains(t.ids, id) {
		return fmt.Errorf("%w: %q", ErrUnknownTab, id)
	}
	t.active = id
	return nil
}

func (t *Tabs) Active() string {
	return t.active
}

func (t *Tabs) IsActive(id string) bool {
	return t.active == id
}

func (t *Tabs) IDs() []string {
	return slices.Clone(t.ids)
}

// PanelID returns the id of the panel shown for tab id.
func PanelID(id string) string {
	return id + PanelSuffix
}
