package components

import (
	"strings"

	"github.com/theirongolddev/iexpense/internal/model"
	"github.com/theirongolddev/iexpense/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// ModeButton is one button of the view-mode bar.
type ModeButton struct {
	Mode model.Mode
	Key  rune
}

// ModeButtons defines the buttons in display order.
var ModeButtons = []ModeButton{
	{Mode: model.ModePersonal, Key: 'p'},
	{Mode: model.ModeBusiness, Key: 'b'},
	{Mode: model.ModeBoth, Key: 'a'},
}

const buttonGap = 2

func buttonStyle(active bool) lipgloss.Style {
	t := theme.Active
	if active {
		return lipgloss.NewStyle().
			Foreground(t.Background).
			Background(t.Accent).
			Bold(true).
			Padding(0, 2)
	}
	return lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.SurfaceHover).
		Padding(0, 2)
}

func buttonLabel(b ModeButton) string {
	return b.Mode.Label() + " [" + string(b.Key) + "]"
}

// ButtonVisualWidth returns the rendered width of a mode button.
func ButtonVisualWidth(b ModeButton, active bool) int {
	return lipgloss.Width(buttonStyle(active).Render(buttonLabel(b)))
}

// RenderModeBar renders the Personal / Business / Both buttons with the
// active mode highlighted, padded to width.
func RenderModeBar(active model.Mode, width int) string {
	t := theme.Active
	gap := lipgloss.NewStyle().Background(t.Background).Render(strings.Repeat(" ", buttonGap))

	parts := make([]string, 0, len(ModeButtons))
	for _, b := range ModeButtons {
		parts = append(parts, buttonStyle(b.Mode == active).Render(buttonLabel(b)))
	}
	bar := gap + strings.Join(parts, gap)

	return lipgloss.NewStyle().Background(t.Background).Width(width).Render(bar)
}

// ModeAtX returns the mode whose button covers column x of the bar
// rendered by RenderModeBar.
func ModeAtX(active model.Mode, x int) (model.Mode, bool) {
	pos := buttonGap
	for _, b := range ModeButtons {
		w := ButtonVisualWidth(b, b.Mode == active)
		if x >= pos && x < pos+w {
			return b.Mode, true
		}
		pos += w + buttonGap
	}
	return active, false
}

// ModeByKey returns the mode bound to key.
func ModeByKey(key string) (model.Mode, bool) {
	for _, b := range ModeButtons {
		if key == string(b.Key) {
			return b.Mode, true
		}
	}
	return model.ModeBoth, false
}
