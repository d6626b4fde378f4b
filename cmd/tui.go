package cmd

import (
	"fmt"

	"github.com/theirongolddev/iexpense/internal/expense"
	"github.com/theirongolddev/iexpense/internal/tui"
	"github.com/theirongolddev/iexpense/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch interactive TUI dashboard",
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(_ *cobra.Command, _ []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	mode, err := resolveMode(s.cfg)
	if err != nil {
		return err
	}
	agg, err := expense.ParseChartAggregate(s.cfg.Chart.Aggregate)
	if err != nil {
		return err
	}

	theme.SetActive(s.cfg.Appearance.Theme)

	// Force TrueColor profile so all background styling produces ANSI codes
	lipgloss.SetColorProfile(termenv.TrueColor)

	app := tui.NewApp(s.store, tui.Options{
		Currency:  s.cfg.General.Currency,
		Aggregate: agg,
		Mode:      mode,
		Backend:   s.cfg.General.Backend,
		Logger:    s.log,
	})
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
