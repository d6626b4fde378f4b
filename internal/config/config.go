package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Backends accepted by General.Backend.
const (
	BackendSQLite = "sqlite"
	BackendFile   = "file"
	BackendMemory = "memory"
)

// Config holds all iexpense configuration.
type Config struct {
	General    GeneralConfig    `toml:"general"`
	Chart      ChartConfig      `toml:"chart"`
	Appearance AppearanceConfig `toml:"appearance"`
	Log        LogConfig        `toml:"log"`

	// DataDirOverride comes from the command line and is never saved.
	DataDirOverride string `toml:"-"`
}

// GeneralConfig holds storage and display preferences.
type GeneralConfig struct {
	DataDir     string `toml:"data_dir,omitempty"`
	Backend     string `toml:"backend"`
	Currency    string `toml:"currency"`
	DefaultMode string `toml:"default_mode"`
}

// ChartConfig controls how chart segments are derived.
type ChartConfig struct {
	// Aggregate is "exemplar" (one record per group) or "total" (summed).
	Aggregate string `toml:"aggregate"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// LogConfig holds log file settings.
type LogConfig struct {
	Level string `toml:"level"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			Backend:     BackendSQLite,
			Currency:    "PEN",
			DefaultMode: "both",
		},
		Chart: ChartConfig{
			Aggregate: "exemplar",
		},
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "iexpense")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "iexpense")
}

// ConfigPath returns the full path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// DataDir resolves where expense data and logs live. A command-line
// override wins over IEXPENSE_DATA_DIR, which wins over the config file,
// which wins over the XDG data home.
func DataDir(cfg Config) string {
	if cfg.DataDirOverride != "" {
		return expandHome(cfg.DataDirOverride)
	}
	if dir := os.Getenv("IEXPENSE_DATA_DIR"); dir != "" {
		return expandHome(dir)
	}
	if cfg.General.DataDir != "" {
		return expandHome(cfg.General.DataDir)
	}
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "iexpense")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "iexpense")
}

func expandHome(p string) string {
	if p == "~" || strings.HasPrefix(p, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, strings.TrimPrefix(p, "~"))
	}
	return p
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(ConfigPath())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks enumerated fields.
func (c Config) Validate() error {
	switch c.General.Backend {
	case BackendSQLite, BackendFile, BackendMemory:
	default:
		return fmt.Errorf("invalid backend %q (want sqlite, file or memory)", c.General.Backend)
	}
	switch strings.ToLower(c.Chart.Aggregate) {
	case "", "exemplar", "total":
	default:
		return fmt.Errorf("invalid chart aggregate %q (want exemplar or total)", c.Chart.Aggregate)
	}
	return nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	dir := ConfigDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(ConfigPath(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(ConfigPath())
	return err == nil
}
