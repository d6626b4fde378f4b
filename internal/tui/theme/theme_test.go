package theme

import (
	"testing"

	"github.com/theirongolddev/iexpense/internal/model"
)

func TestByNameFallsBackToDefault(t *testing.T) {
	if got := ByName("tokyo-night").Name; got != "tokyo-night" {
		t.Fatalf("ByName(tokyo-night) = %q", got)
	}
	if got := ByName("nope").Name; got != FlexokiDark.Name {
		t.Fatalf("ByName(nope) = %q, want %q", got, FlexokiDark.Name)
	}
}

func TestSegmentColorWraps(t *testing.T) {
	th := FlexokiDark
	n := len(th.Palette())
	if th.SegmentColor(0) != th.SegmentColor(n) {
		t.Fatalf("SegmentColor(%d) does not wrap to SegmentColor(0)", n)
	}
}

func TestAmountColor(t *testing.T) {
	th := FlexokiDark
	if th.AmountColor(model.TierHigh) != th.Green {
		t.Fatal("high amounts should be green")
	}
	if th.AmountColor(model.TierPositive) != th.Blue {
		t.Fatal("positive amounts should be blue")
	}
	if th.AmountColor(model.TierNonPositive) != th.Red {
		t.Fatal("non-positive amounts should be red")
	}
}
