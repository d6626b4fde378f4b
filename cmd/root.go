package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/theirongolddev/iexpense/internal/config"
	"github.com/theirongolddev/iexpense/internal/expense"
	"github.com/theirongolddev/iexpense/internal/logger"
	"github.com/theirongolddev/iexpense/internal/model"
	"github.com/theirongolddev/iexpense/internal/store"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	flagDataDir   string
	flagBackend   string
	flagMode      string
	flagEphemeral bool
)

var rootCmd = &cobra.Command{
	Use:   "iexpense",
	Short: "Personal and business expense tracker",
	Long:  "Track expenses by name, type and amount; browse them as a list and a chart.",
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		// A .env in the working directory may set IEXPENSE_DATA_DIR or LOG_ENV.
		_ = godotenv.Load()
	},
	RunE: runTUI,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "Directory holding expense data and the log file")
	rootCmd.PersistentFlags().StringVar(&flagBackend, "backend", "", "Storage backend: sqlite, file or memory")
	rootCmd.PersistentFlags().StringVarP(&flagMode, "mode", "m", "", "View mode: personal, business or both")
	rootCmd.PersistentFlags().BoolVar(&flagEphemeral, "ephemeral", false, "Keep expenses in memory only")
}

// loadConfig reads the config file and applies command-line overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return cfg, err
	}
	cfg.DataDirOverride = flagDataDir
	if flagBackend != "" {
		cfg.General.Backend = flagBackend
	}
	if flagEphemeral {
		cfg.General.Backend = config.BackendMemory
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// session is the shared state every data command works on.
type session struct {
	cfg    config.Config
	store  *expense.Store
	log    *zap.Logger
	closer io.Closer
}

func (s *session) Close() {
	_ = s.log.Sync()
	if err := s.closer.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "  closing storage: %v\n", err)
	}
}

// openSession is the shared loading path used by all data commands.
func openSession() (*session, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	dir := config.DataDir(cfg)
	log, err := logger.New(dir, cfg.Log.Level)
	if err != nil {
		// Logging is best effort; the data path still works without it.
		fmt.Fprintf(os.Stderr, "  Log file unavailable: %v\n", err)
		log = logger.Nop()
	}

	slot, closer, err := store.OpenSlot(cfg)
	if err != nil {
		_ = log.Sync()
		return nil, fmt.Errorf("opening %s storage in %s: %w", cfg.General.Backend, dir, err)
	}
	log.Debug("storage opened", zap.String("backend", cfg.General.Backend), zap.String("dir", dir))

	return &session{
		cfg:    cfg,
		store:  expense.New(slot, expense.WithLogger(log)),
		log:    log,
		closer: closer,
	}, nil
}

// resolveMode picks the --mode flag, falling back to the configured default.
func resolveMode(cfg config.Config) (model.Mode, error) {
	if flagMode != "" {
		return model.ParseMode(flagMode)
	}
	return model.ParseMode(cfg.General.DefaultMode)
}
