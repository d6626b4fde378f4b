package cmd

import (
	"fmt"
	"strconv"

	"github.com/theirongolddev/iexpense/internal/cli"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var rmCmd = &cobra.Command{
	Use:     "rm POSITION...",
	Aliases: []string{"remove"},
	Short:   "Remove expenses by the positions shown by list",
	Long: "Remove expenses by position. Positions refer to the list shown by\n" +
		"`iexpense list` in the same --mode.",
	Args: cobra.MinimumNArgs(1),
	RunE: runRemove,
}

func init() {
	rootCmd.AddCommand(rmCmd)
}

func runRemove(_ *cobra.Command, args []string) error {
	positions := make([]int, 0, len(args))
	for _, a := range args {
		p, err := strconv.Atoi(a)
		if err != nil {
			return fmt.Errorf("invalid position %q", a)
		}
		positions = append(positions, p)
	}

	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	mode, err := resolveMode(s.cfg)
	if err != nil {
		return err
	}

	removed := s.store.Remove(mode, positions...)
	if len(removed) == 0 {
		fmt.Println("  Nothing removed.")
		return nil
	}
	for _, r := range removed {
		s.log.Info("expense removed",
			zap.String("id", r.ID),
			zap.String("name", r.Name),
			zap.String("mode", mode.String()))
		fmt.Printf("  Removed %s (%s) %s\n", r.Name, r.Category, cli.FormatAmount(r.Amount, s.cfg.General.Currency))
	}
	return nil
}
