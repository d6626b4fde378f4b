package model

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownMode is returned by ParseMode for unrecognized names.
var ErrUnknownMode = errors.New("unknown view mode")

// Mode is the combined category filter and chart grouping selection.
type Mode int

const (
	ModeBoth Mode = iota
	ModePersonal
	ModeBusiness
)

// Modes lists every mode in display order.
var Modes = []Mode{ModePersonal, ModeBusiness, ModeBoth}

// Category returns the category filter for the mode; ok is false when
// the mode shows every record.
func (m Mode) Category() (category string, ok bool) {
	switch m {
	case ModePersonal:
		return CategoryPersonal, true
	case ModeBusiness:
		return CategoryBusiness, true
	default:
		return "", false
	}
}

// GroupKey returns how the chart segments records in this mode.
// A filtered view groups by name, the unfiltered view by category.
func (m Mode) GroupKey() GroupKey {
	if _, ok := m.Category(); ok {
		return ByName
	}
	return ByCategory
}

// Label is the human-readable scope shown as the chart title.
func (m Mode) Label() string {
	if c, ok := m.Category(); ok {
		return c
	}
	return "Both"
}

func (m Mode) String() string {
	return strings.ToLower(m.Label())
}

// Next cycles Personal -> Business -> Both -> Personal.
func (m Mode) Next() Mode {
	for i, mode := range Modes {
		if mode == m {
			return Modes[(i+1)%len(Modes)]
		}
	}
	return ModeBoth
}

// ParseMode accepts personal, business or both in any case.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "both", "all":
		return ModeBoth, nil
	case "personal":
		return ModePersonal, nil
	case "business":
		return ModeBusiness, nil
	}
	return ModeBoth, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}
