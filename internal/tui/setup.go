package tui

import (
	"strings"

	"github.com/theirongolddev/iexpense/internal/config"
	"github.com/theirongolddev/iexpense/internal/expense"
	"github.com/theirongolddev/iexpense/internal/tui/theme"

	"github.com/charmbracelet/huh"
)

// SetupValues is bound to the setup wizard fields.
type SetupValues struct {
	Currency  string
	Theme     string
	Backend   string
	Mode      string
	Aggregate string
}

// SetupValuesFrom seeds the wizard with cfg.
func SetupValuesFrom(cfg config.Config) *SetupValues {
	return &SetupValues{
		Currency:  cfg.General.Currency,
		Theme:     cfg.Appearance.Theme,
		Backend:   cfg.General.Backend,
		Mode:      cfg.General.DefaultMode,
		Aggregate: cfg.Chart.Aggregate,
	}
}

// Apply copies the wizard answers into cfg.
func (v *SetupValues) Apply(cfg *config.Config) {
	cfg.General.Currency = strings.ToUpper(strings.TrimSpace(v.Currency))
	cfg.General.Backend = v.Backend
	cfg.General.DefaultMode = v.Mode
	cfg.Chart.Aggregate = v.Aggregate
	cfg.Appearance.Theme = v.Theme
}

// NewSetupForm builds the first-run wizard.
func NewSetupForm(vals *SetupValues) *huh.Form {
	themeOpts := make([]huh.Option[string], 0, len(theme.All))
	for _, t := range theme.All {
		themeOpts = append(themeOpts, huh.NewOption(t.Name, t.Name))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Welcome to iexpense!").
				Description("Track personal and business expenses.\nAnswers are saved to "+config.ConfigPath()),
			huh.NewInput().
				Title("Currency code").
				Description("Shown next to every amount.").
				Placeholder("PEN").
				Value(&vals.Currency),
			huh.NewSelect[string]().
				Title("Storage").
				Options(
					huh.NewOption("SQLite database", config.BackendSQLite),
					huh.NewOption("JSON file", config.BackendFile),
					huh.NewOption("Memory only (nothing saved)", config.BackendMemory),
				).
				Value(&vals.Backend),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Start in view").
				Options(
					huh.NewOption("Both", "both"),
					huh.NewOption("Personal", "personal"),
					huh.NewOption("Business", "business"),
				).
				Value(&vals.Mode),
			huh.NewSelect[string]().
				Title("Chart amounts").
				Options(
					huh.NewOption("First expense of each group", string(expense.AggregateExemplar)),
					huh.NewOption("Sum of each group", string(expense.AggregateTotal)),
				).
				Value(&vals.Aggregate),
			huh.NewSelect[string]().
				Title("Color theme").
				Options(themeOpts...).
				Value(&vals.Theme),
		),
	).WithShowHelp(true)
}
