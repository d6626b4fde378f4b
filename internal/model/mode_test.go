package model

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestModeCategoryAndGrouping(t *testing.T) {
	cases := []struct {
		mode  Mode
		cat   string
		ok    bool
		key   GroupKey
		label string
	}{
		{ModeBoth, "", false, ByCategory, "Both"},
		{ModePersonal, "Personal", true, ByName, "Personal"},
		{ModeBusiness, "Business", true, ByName, "Business"},
	}
	for _, tc := range cases {
		cat, ok := tc.mode.Category()
		if cat != tc.cat || ok != tc.ok {
			t.Fatalf("%v.Category() = (%q, %v), want (%q, %v)", tc.mode, cat, ok, tc.cat, tc.ok)
		}
		if got := tc.mode.GroupKey(); got != tc.key {
			t.Fatalf("%v.GroupKey() = %v, want %v", tc.mode, got, tc.key)
		}
		if got := tc.mode.Label(); got != tc.label {
			t.Fatalf("%v.Label() = %q, want %q", tc.mode, got, tc.label)
		}
	}
}

func TestModeNextCycles(t *testing.T) {
	m := ModePersonal
	seen := []Mode{m}
	for i := 0; i < 3; i++ {
		m = m.Next()
		seen = append(seen, m)
	}
	want := []Mode{ModePersonal, ModeBusiness, ModeBoth, ModePersonal}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("cycle[%d] = %v, want %v", i, seen[i], want[i])
		}
	}
}

func TestParseMode(t *testing.T) {
	for in, want := range map[string]Mode{
		"personal": ModePersonal,
		"Business": ModeBusiness,
		"BOTH":     ModeBoth,
		"":         ModeBoth,
	} {
		got, err := ParseMode(in)
		if err != nil {
			t.Fatalf("ParseMode(%q) error: %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseMode(%q) = %v, want %v", in, got, want)
		}
	}

	if _, err := ParseMode("family"); !errors.Is(err, ErrUnknownMode) {
		t.Fatalf("ParseMode(family) err = %v, want ErrUnknownMode", err)
	}
}

func TestTier(t *testing.T) {
	cases := map[string]AmountTier{
		"1200":  TierHigh,
		"1000":  TierPositive,
		"3.50":  TierPositive,
		"0":     TierNonPositive,
		"-5.25": TierNonPositive,
	}
	for in, want := range cases {
		if got := Tier(decimal.RequireFromString(in)); got != want {
			t.Fatalf("Tier(%s) = %v, want %v", in, got, want)
		}
	}
}

func TestNewRecordUniqueIDs(t *testing.T) {
	a := NewRecord("Coffee", CategoryPersonal, decimal.RequireFromString("3.50"))
	b := NewRecord("Coffee", CategoryPersonal, decimal.RequireFromString("3.50"))
	if a.ID == "" || a.ID == b.ID {
		t.Fatalf("IDs not unique: %q %q", a.ID, b.ID)
	}
}

func TestParseAmount(t *testing.T) {
	for in, want := range map[string]string{
		"3.50":    "3.5",
		" 12,75 ": "12.75",
		"-20":     "-20",
		"0":       "0",
	} {
		got, err := ParseAmount(in)
		if err != nil {
			t.Fatalf("ParseAmount(%q) error: %v", in, err)
		}
		if !got.Equal(decimal.RequireFromString(want)) {
			t.Fatalf("ParseAmount(%q) = %s, want %s", in, got, want)
		}
	}
	for _, in := range []string{"", "abc", "1.2.3"} {
		if _, err := ParseAmount(in); !errors.Is(err, ErrInvalidAmount) {
			t.Fatalf("ParseAmount(%q) err = %v, want ErrInvalidAmount", in, err)
		}
	}
}
