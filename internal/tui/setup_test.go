package tui

import (
	"testing"

	"github.com/theirongolddev/iexpense/internal/config"
)

func TestSetupValuesApply(t *testing.T) {
	cfg := config.DefaultConfig()
	vals := SetupValuesFrom(cfg)
	if vals.Currency != "PEN" || vals.Backend != config.BackendSQLite {
		t.Fatalf("seeded values = %+v", vals)
	}

	vals.Currency = " usd "
	vals.Backend = config.BackendFile
	vals.Mode = "business"
	vals.Aggregate = "total"
	vals.Theme = "tokyo-night"
	vals.Apply(&cfg)

	if cfg.General.Currency != "USD" {
		t.Errorf("Currency = %q, want USD", cfg.General.Currency)
	}
	if cfg.General.Backend != config.BackendFile || cfg.General.DefaultMode != "business" {
		t.Errorf("General = %+v", cfg.General)
	}
	if cfg.Chart.Aggregate != "total" || cfg.Appearance.Theme != "tokyo-night" {
		t.Errorf("Chart = %+v, Appearance = %+v", cfg.Chart, cfg.Appearance)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}
