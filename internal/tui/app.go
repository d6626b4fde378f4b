// Package tui provides the interactive Bubble Tea dashboard for iexpense.
package tui

import (
	"fmt"
	"slices"

	"github.com/theirongolddev/iexpense/internal/cli"
	"github.com/theirongolddev/iexpense/internal/expense"
	"github.com/theirongolddev/iexpense/internal/model"
	"github.com/theirongolddev/iexpense/internal/tui/components"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Options configures the dashboard.
type Options struct {
	Currency  string
	Aggregate expense.ChartAggregate
	Mode      model.Mode
	Backend   string
	Logger    *zap.Logger
}

// App is the root Bubble Tea model.
type App struct {
	store *expense.Store
	opts  Options
	log   *zap.Logger

	// Derived for the current mode
	mode     model.Mode
	visible  []model.Record
	segments []expense.Segment
	total    decimal.Decimal

	// UI state
	width    int
	height   int
	cursor   int
	showHelp bool
	flash    string

	// Add-expense form (huh); nil when closed
	addForm *huh.Form
	addVals *addValues
}

const (
	minTerminalWidth = 60
	maxContentWidth  = 140
	minContentHeight = 5

	modeBarRow    = 1 // below the title line
	maxLegendRows = 6
	bandHeight    = 2
)

// NewApp creates the dashboard model over store.
func NewApp(store *expense.Store, opts Options) App {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Aggregate == "" {
		opts.Aggregate = expense.AggregateExemplar
	}
	a := App{
		store: store,
		opts:  opts,
		log:   opts.Logger,
		mode:  opts.Mode,
	}
	a.recompute()
	return a
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return tea.EnableMouseCellMotion
}

// Mode returns the active view mode.
func (a App) Mode() model.Mode {
	return a.mode
}

// Cursor returns the display position of the selected row.
func (a App) Cursor() int {
	return a.cursor
}

// Visible returns the records displayed under the active mode.
func (a App) Visible() []model.Record {
	return slices.Clone(a.visible)
}

func (a *App) recompute() {
	a.visible = slices.Collect(a.store.View(a.mode))
	a.segments = a.store.ChartSegments(a.mode, a.opts.Aggregate)
	a.total = a.store.Total(a.mode)

	if a.cursor >= len(a.visible) {
		a.cursor = len(a.visible) - 1
	}
	if a.cursor < 0 {
		a.cursor = 0
	}
}

func (a *App) setMode(m model.Mode) {
	if m == a.mode {
		return
	}
	a.mode = m
	a.cursor = 0
	a.flash = ""
	a.recompute()
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.addForm != nil {
			a.addForm = a.addForm.WithWidth(min(msg.Width, 60))
		}
		return a, nil

	case tea.MouseMsg:
		if a.showHelp || a.addForm != nil {
			return a, nil
		}
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			a.moveCursor(-1)
		case tea.MouseButtonWheelDown:
			a.moveCursor(1)
		case tea.MouseButtonLeft:
			if msg.Action == tea.MouseActionPress && msg.Y == modeBarRow {
				if m, ok := components.ModeAtX(a.mode, msg.X); ok {
					a.setMode(m)
				}
			}
		}
		return a, nil

	case tea.KeyMsg:
		key := msg.String()

		// Global: quit
		if key == "ctrl+c" {
			return a, tea.Quit
		}

		// The add form intercepts all keys
		if a.addForm != nil {
			if key == "esc" {
				a.closeAddForm()
				return a, nil
			}
			return a.updateAddForm(msg)
		}

		if key == "?" {
			a.showHelp = !a.showHelp
			return a, nil
		}
		if a.showHelp {
			a.showHelp = false
			return a, nil
		}

		if m, ok := components.ModeByKey(key); ok {
			a.setMode(m)
			return a, nil
		}

		switch key {
		case "q":
			return a, tea.Quit
		case "tab":
			a.setMode(a.mode.Next())
		case "j", "down":
			a.moveCursor(1)
		case "k", "up":
			a.moveCursor(-1)
		case "g", "home":
			a.cursor = 0
		case "G", "end":
			a.cursor = max(len(a.visible)-1, 0)
		case "n", "+":
			return a.openAddForm()
		case "d", "x", "delete":
			a.deleteAtCursor()
		}
		return a, nil
	}

	// Forward unhandled messages to the form (cursor blinks, etc.)
	if a.addForm != nil {
		return a.updateAddForm(msg)
	}

	return a, nil
}

func (a *App) moveCursor(delta int) {
	a.cursor += delta
	if a.cursor >= len(a.visible) {
		a.cursor = len(a.visible) - 1
	}
	if a.cursor < 0 {
		a.cursor = 0
	}
}

// deleteAtCursor removes the record at the cursor's display position in
// the current mode.
func (a *App) deleteAtCursor() {
	if len(a.visible) == 0 {
		return
	}
	removed := a.store.Remove(a.mode, a.cursor)
	for _, r := range removed {
		a.log.Info("expense removed",
			zap.String("id", r.ID),
			zap.String("name", r.Name),
			zap.String("mode", a.mode.String()),
			zap.Int("position", a.cursor))
		a.flash = fmt.Sprintf("Deleted %s", r.Name)
	}
	a.recompute()
}

func (a App) openAddForm() (tea.Model, tea.Cmd) {
	a.addVals = &addValues{category: model.CategoryPersonal}
	if c, ok := a.mode.Category(); ok {
		a.addVals.category = c
	}
	a.addForm = newAddForm(a.addVals)
	if a.width > 0 {
		a.addForm = a.addForm.WithWidth(min(a.width, 60))
	}
	a.flash = ""
	return a, a.addForm.Init()
}

func (a *App) closeAddForm() {
	a.addForm = nil
	a.addVals = nil
}

func (a App) updateAddForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.addForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.addForm = f
	}

	switch a.addForm.State {
	case huh.StateCompleted:
		r := a.addVals.record()
		a.store.Add(r)
		a.log.Info("expense added",
			zap.String("id", r.ID),
			zap.String("name", r.Name),
			zap.String("category", r.Category),
			zap.String("amount", r.Amount.String()))
		a.flash = "Added " + r.Name + " " + cli.FormatAmount(r.Amount, a.opts.Currency)
		a.closeAddForm()
		a.recompute()
		if i := slices.IndexFunc(a.visible, func(v model.Record) bool { return v.ID == r.ID }); i >= 0 {
			a.cursor = i
		}
		return a, nil
	case huh.StateAborted:
		a.closeAddForm()
		return a, nil
	}

	return a, cmd
}

func (a App) contentWidth() int {
	return min(a.width, maxContentWidth)
}
