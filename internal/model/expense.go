// Package model defines domain types for iexpense records and view modes.
package model

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Category labels offered by the add form and the view modes.
const (
	CategoryPersonal = "Personal"
	CategoryBusiness = "Business"
)

// Record is one user-entered expense. Records are immutable once created.
type Record struct {
	ID       string
	Name     string
	Category string
	Amount   decimal.Decimal
}

// NewRecord creates a record with a fresh unique ID. Fields are not validated.
func NewRecord(name, category string, amount decimal.Decimal) Record {
	return Record{
		ID:       uuid.NewString(),
		Name:     name,
		Category: category,
		Amount:   amount,
	}
}

// ErrInvalidAmount is returned by ParseAmount for non-numeric input.
var ErrInvalidAmount = errors.New("invalid amount")

// ParseAmount parses a signed decimal amount. Both dot and comma are
// accepted as the decimal separator.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	if s == "" {
		return decimal.Zero, ErrInvalidAmount
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, ErrInvalidAmount
	}
	return d, nil
}

// AmountTier buckets an amount for color coding.
type AmountTier int

const (
	TierNonPositive AmountTier = iota
	TierPositive
	TierHigh
)

var highThreshold = decimal.NewFromInt(1000)

// Tier returns the display tier for an amount: above 1000 is high,
// above zero is positive, everything else non-positive.
func Tier(amount decimal.Decimal) AmountTier {
	switch {
	case amount.GreaterThan(highThreshold):
		return TierHigh
	case amount.IsPositive():
		return TierPositive
	default:
		return TierNonPositive
	}
}

// GroupKey selects the field records are grouped by for the chart.
type GroupKey int

const (
	ByCategory GroupKey = iota
	ByName
)

// Of returns the grouping key value of r.
func (k GroupKey) Of(r Record) string {
	if k == ByName {
		return r.Name
	}
	return r.Category
}

func (k GroupKey) String() string {
	if k == ByName {
		return "name"
	}
	return "category"
}
