package components

import (
	"strings"

	"github.com/theirongolddev/iexpense/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// RenderStatusBar renders the bottom status bar: key hints on the left,
// an optional flash message in the middle and info on the right.
func RenderStatusBar(width int, flash, info string) string {
	t := theme.Active

	hintStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	flashStyle := lipgloss.NewStyle().Foreground(t.Yellow).Background(t.Surface)
	infoStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	fill := lipgloss.NewStyle().Background(t.Surface)

	left := hintStyle.Render(" [n]ew  [d]elete  [?]help  [q]uit")
	if flash != "" {
		left += hintStyle.Render("  ") + flashStyle.Render(flash)
	}
	right := infoStyle.Render(info + " ")

	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 0 {
		padding = 0
	}
	return left + fill.Render(strings.Repeat(" ", padding)) + right
}
