// Package cmd implements the iexpense CLI commands.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/theirongolddev/iexpense/internal/config"
	"github.com/theirongolddev/iexpense/internal/logger"
	"github.com/theirongolddev/iexpense/internal/store"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.ConfigPath())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	dir := config.DataDir(cfg)
	fmt.Println("  [General]")
	fmt.Printf("    Data directory: %s", dir)
	switch {
	case cfg.DataDirOverride != "":
		fmt.Print(" (from --data-dir)")
	case os.Getenv("IEXPENSE_DATA_DIR") != "":
		fmt.Print(" (from IEXPENSE_DATA_DIR)")
	}
	fmt.Println()
	fmt.Printf("    Backend:        %s\n", cfg.General.Backend)
	fmt.Printf("    Currency:       %s\n", cfg.General.Currency)
	fmt.Printf("    Default mode:   %s\n", cfg.General.DefaultMode)
	if keys, err := store.StoredKeys(cfg); err != nil {
		fmt.Printf("    Stored keys:    unavailable (%v)\n", err)
	} else if len(keys) > 0 {
		fmt.Printf("    Stored keys:    %s\n", strings.Join(keys, ", "))
	}
	fmt.Println()

	fmt.Println("  [Chart]")
	fmt.Printf("    Aggregate: %s\n", cfg.Chart.Aggregate)
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  [Log]")
	fmt.Printf("    Level: %s\n", cfg.Log.Level)
	fmt.Printf("    File:  %s\n", filepath.Join(dir, logger.FileName))
	fmt.Println()

	fmt.Println("  Run `iexpense setup` to reconfigure.")
	return nil
}
