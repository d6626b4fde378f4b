package expense

import (
	"testing"

	"github.com/theirongolddev/iexpense/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seeded(t *testing.T) *Store {
	t.Helper()
	s := New(&fakeSlot{})
	s.Add(rec("Coffee", model.CategoryPersonal, "5"))
	s.Add(rec("Rent", model.CategoryBusiness, "15"))
	s.Add(rec("Coffee", model.CategoryPersonal, "10"))
	s.Add(rec("Refund", model.CategoryPersonal, "-3"))
	return s
}

func TestChartSegmentsExemplar(t *testing.T) {
	segs := seeded(t).ChartSegments(model.ModeBoth, AggregateExemplar)
	require.Len(t, segs, 2)
	assert.Equal(t, "Personal", segs[0].Label)
	assert.True(t, segs[0].Amount.Equal(decimal.NewFromInt(5)))
	assert.Equal(t, "Business", segs[1].Label)
	assert.InDelta(t, 0.25, segs[0].Share, 1e-9)
	assert.InDelta(t, 0.75, segs[1].Share, 1e-9)
}

func TestChartSegmentsTotal(t *testing.T) {
	segs := seeded(t).ChartSegments(model.ModePersonal, AggregateTotal)
	require.Len(t, segs, 2)
	assert.Equal(t, "Coffee", segs[0].Label)
	assert.True(t, segs[0].Amount.Equal(decimal.NewFromInt(15)))
	assert.InDelta(t, 1.0, segs[0].Share, 1e-9)
	assert.Equal(t, "Refund", segs[1].Label)
	assert.Zero(t, segs[1].Share)
}

func TestChartSegmentsEmpty(t *testing.T) {
	assert.Empty(t, New(&fakeSlot{}).ChartSegments(model.ModeBoth, AggregateTotal))
}

func TestTotal(t *testing.T) {
	s := seeded(t)
	assert.True(t, s.Total(model.ModePersonal).Equal(decimal.NewFromInt(12)))
	assert.True(t, s.Total(model.ModeBoth).Equal(decimal.NewFromInt(27)))
}

func TestParseChartAggregate(t *testing.T) {
	agg, err := ParseChartAggregate("TOTAL")
	require.NoError(t, err)
	assert.Equal(t, AggregateTotal, agg)

	agg, err = ParseChartAggregate("")
	require.NoError(t, err)
	assert.Equal(t, AggregateExemplar, agg)

	_, err = ParseChartAggregate("median")
	assert.Error(t, err)
}
