package ui

import "fmt"

// Accordion is a list of collapsible items of which at most one is open.
type Accordion struct {
	items int
	open  int
}

// NewAccordion returns an accordion with n closed items.
func NewAccordion(n int) *Accordion {
	if n < 0 {
		n = 0
	}
	return &Accordion{items: n, open: -1}
}

// Toggle closes every other item and flips item i.
func (a *Accordion) Toggle(i int) error {
	if i < 0 || i >= a.items {
		return fmt.Errorf("%w: %d of %d", ErrItemOutOfRange, i, a.items)
	}
	if a.open == i {
		a.open = -1
	} else {
		a.open = i
	}
	return nil
}

func (a *Accordion) IsOpen(i int) bool {
	return a.open >= 0 && a.open == i
}

// Open returns the index of the open item, if any.
func (a *Accordion) Open() (int, bool) {
	return a.open, a.open >= 0
}

func (a *Accordion) Len() int {
	return a.items
}
