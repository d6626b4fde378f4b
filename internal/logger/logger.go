// Package logger builds the zap logger iexpense writes to its log file.
// The TUI owns stdout, so logs never go to the terminal.
package logger

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	logEnvKey     = "LOG_ENV"
	defaultLogEnv = "prod"

	// FileName is the log file created inside the data directory.
	FileName = "iexpense.log"
)

// New returns a logger appending to dir/iexpense.log at the given level
// ("debug", "info", "warn", "error"). LOG_ENV=dev switches to the
// human-readable development encoder.
func New(dir, level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parsing log level: %w", err)
	}
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating log dir: %w", err)
	}

	env := os.Getenv(logEnvKey)
	if env == "" {
		env = defaultLogEnv
	}

	var cfg zap.Config
	if env == "dev" {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.OutputPaths = []string{filepath.Join(dir, FileName)}
	cfg.ErrorOutputPaths = []string{filepath.Join(dir, FileName)}

	l, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("building logger: %w", err)
	}
	return l, nil
}

// Nop returns a logger that discards everything.
func Nop() *zap.Logger {
	return zap.NewNop()
}
