package expense

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/iexpense/internal/model"

	"github.com/shopspring/decimal"
)

// ChartAggregate selects how chart segments are derived from records.
type ChartAggregate string

const (
	// AggregateExemplar draws one exemplar record per group.
	AggregateExemplar ChartAggregate = "exemplar"
	// AggregateTotal sums amounts per group.
	AggregateTotal ChartAggregate = "total"
)

// ParseChartAggregate accepts "exemplar" (or empty) and "total".
func ParseChartAggregate(s string) (ChartAggregate, error) {
	switch ChartAggregate(strings.ToLower(strings.TrimSpace(s))) {
	case "", AggregateExemplar:
		return AggregateExemplar, nil
	case AggregateTotal:
		return AggregateTotal, nil
	}
	return AggregateExemplar, fmt.Errorf("unknown chart aggregate %q", s)
}

// Segment is one slice of the chart.
type Segment struct {
	Label  string
	Amount decimal.Decimal
	Share  float64 // fraction of the sum of positive segment amounts
}

// ChartSegments derives the chart for mode. Segments keep the order in
// which their key first appears. Non-positive amounts get a zero share.
func (s *Store) ChartSegments(mode model.Mode, agg ChartAggregate) []Segment {
	key := mode.GroupKey()

	var segs []Segment
	if agg == AggregateTotal {
		idx := make(map[string]int)
		for r := range s.View(mode) {
			k := key.Of(r)
			i, ok := idx[k]
			if !ok {
				idx[k] = len(segs)
				segs = append(segs, Segment{Label: k, Amount: r.Amount})
				continue
			}
			segs[i].Amount = segs[i].Amount.Add(r.Amount)
		}
	} else {
		for _, r := range GroupedFirstByKey(s.View(mode), key) {
			segs = append(segs, Segment{Label: key.Of(r), Amount: r.Amount})
		}
	}

	total := decimal.Zero
	for _, seg := range segs {
		if seg.Amount.IsPositive() {
			total = total.Add(seg.Amount)
		}
	}
	if !total.IsPositive() {
		return segs
	}
	for i := range segs {
		if segs[i].Amount.IsPositive() {
			segs[i].Share = segs[i].Amount.Div(total).InexactFloat64()
		}
	}
	return segs
}

// Total sums the amounts of the records displayed under mode.
func (s *Store) Total(mode model.Mode) decimal.Decimal {
	sum := decimal.Zero
	for r := range s.View(mode) {
		sum = sum.Add(r.Amount)
	}
	return sum
}
