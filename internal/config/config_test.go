package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingReturnsDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.General.Backend != BackendSQLite {
		t.Fatalf("Backend = %q, want %q", cfg.General.Backend, BackendSQLite)
	}
	if cfg.General.Currency != "PEN" {
		t.Fatalf("Currency = %q, want PEN", cfg.General.Currency)
	}
	if Exists() {
		t.Fatal("Exists() = true before Save")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.General.Backend = BackendFile
	cfg.General.Currency = "EUR"
	cfg.Chart.Aggregate = "total"
	cfg.Appearance.Theme = "tokyo-night"
	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != cfg {
		t.Fatalf("Load() = %+v, want %+v", got, cfg)
	}
}

func TestLoadRejectsUnknownBackend(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	path := filepath.Join(dir, "iexpense", "config.toml")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("[general]\nbackend = \"redis\"\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(); err == nil {
		t.Fatal("Load accepted backend redis")
	}
}

func TestDataDirPrecedence(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/xdg/data")
	t.Setenv("IEXPENSE_DATA_DIR", "")

	cfg := DefaultConfig()
	if got := DataDir(cfg); got != filepath.Join("/xdg/data", "iexpense") {
		t.Fatalf("DataDir = %q, want xdg default", got)
	}

	cfg.General.DataDir = "/from/config"
	if got := DataDir(cfg); got != "/from/config" {
		t.Fatalf("DataDir = %q, want /from/config", got)
	}

	t.Setenv("IEXPENSE_DATA_DIR", "/from/env")
	if got := DataDir(cfg); got != "/from/env" {
		t.Fatalf("DataDir = %q, want /from/env", got)
	}

	cfg.DataDirOverride = "/from/flag"
	if got := DataDir(cfg); got != "/from/flag" {
		t.Fatalf("DataDir = %q, want /from/flag", got)
	}
	if got := os.Getenv("IEXPENSE_DATA_DIR"); got != "/from/env" {
		t.Fatalf("IEXPENSE_DATA_DIR = %q, override must not touch the environment", got)
	}
}

func TestDataDirOverrideNotSaved(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.DataDirOverride = "/from/flag"
	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.DataDirOverride != "" {
		t.Fatalf("DataDirOverride = %q after reload, want empty", got.DataDirOverride)
	}
}
