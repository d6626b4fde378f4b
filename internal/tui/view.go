package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/iexpense/internal/cli"
	"github.com/theirongolddev/iexpense/internal/model"
	"github.com/theirongolddev/iexpense/internal/tui/components"
	"github.com/theirongolddev/iexpense/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}

	if a.addForm != nil {
		return a.viewAddForm()
	}

	if a.showHelp {
		return a.viewHelp()
	}

	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := max(a.height, 5)

	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  iexpense needs at least %d columns.\n",
		a.width,
		minTerminalWidth,
	)

	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewAddForm() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Padding(1, 2)

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center,
		cardStyle.Render(a.addForm.View()),
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface).Bold(true)
	sectionStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	keyStyle := lipgloss.NewStyle().Foreground(t.Cyan).Background(t.Surface).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	sections := []struct {
		title    string
		bindings []struct{ key, desc string }
	}{
		{"View", []struct{ key, desc string }{
			{"p b a", "Personal / Business / Both"},
			{"tab", "Next view mode"},
			{"j k", "Move selection"},
			{"g G", "First / Last expense"},
		}},
		{"Actions", []struct{ key, desc string }{
			{"n", "Add expense"},
			{"d x", "Delete selected expense"},
			{"Esc", "Cancel form"},
			{"?", "Toggle help"},
			{"q", "Quit"},
		}},
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n")
	for _, sec := range sections {
		b.WriteString("\n")
		b.WriteString(sectionStyle.Render(sec.title))
		b.WriteString("\n")
		for _, bind := range sec.bindings {
			fmt.Fprintf(&b, "  %s  %s\n",
				keyStyle.Render(fmt.Sprintf("%-8s", bind.key)),
				descStyle.Render(bind.desc))
		}
	}
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center,
		cardStyle.Render(b.String()),
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	// Header: title line, then the mode bar on row modeBarRow
	titleStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Background).Bold(true)
	subStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Background)
	titleRow := lipgloss.NewStyle().Background(t.Background).Width(w).
		Render(titleStyle.Render(" ◈ iexpense") + subStyle.Render(" · "+a.mode.Label()))
	header := titleRow + "\n" + components.RenderModeBar(a.mode, w)

	info := fmt.Sprintf("%d expenses │ %s │ %s",
		a.store.Len(), cli.FormatAmount(a.total, a.opts.Currency), a.opts.Backend)
	statusBar := components.RenderStatusBar(w, a.flash, info)

	contentH := max(h-lipgloss.Height(header)-lipgloss.Height(statusBar), minContentHeight)

	metrics := components.MetricRow([]components.Metric{
		{Label: "Shown", Value: cli.FormatNumber(int64(len(a.visible)))},
		{Label: "Total", Value: cli.FormatAmount(a.total, a.opts.Currency)},
		{Label: "Scope", Value: a.mode.Label()},
	}, cw)

	chart := components.ContentCard("Chart", a.renderChart(components.CardInnerWidth(cw)), cw)

	listH := max(contentH-lipgloss.Height(metrics)-lipgloss.Height(chart)-3, 1)
	list := components.ContentCard(a.listTitle(), a.renderList(components.CardInnerWidth(cw), listH), cw)

	content := lipgloss.JoinVertical(lipgloss.Left, metrics, chart, list)
	content = padHeight(truncateHeight(content, contentH), contentH)
	content = fillLinesWithBackground(content, cw, t.Background)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	output := lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)

	return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) listTitle() string {
	if len(a.visible) == 0 {
		return "Expenses"
	}
	return fmt.Sprintf("Expenses [%d/%d]", a.cursor+1, len(a.visible))
}

// renderChart draws the ring band over the legend. Only the first
// maxLegendRows segments get a legend line.
func (a App) renderChart(innerW int) string {
	t := theme.Active

	slices := make([]components.Slice, 0, len(a.segments))
	for _, seg := range a.segments {
		slices = append(slices, components.Slice{
			Label: seg.Label,
			Value: cli.FormatAmount(seg.Amount, a.opts.Currency),
			Share: seg.Share,
		})
	}

	ring := components.RingChart(slices, a.mode.Label(), "Expenses", innerW, bandHeight)

	shown := slices
	if len(shown) > maxLegendRows {
		shown = shown[:maxLegendRows]
	}
	legend := components.Legend(shown, innerW)
	if more := len(slices) - len(shown); more > 0 {
		legend += "\n" + lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface).
			Render(fmt.Sprintf("… %d more", more))
	}

	return ring + "\n\n" + legend
}

// renderList draws a window of the visible records that keeps the cursor
// on screen.
func (a App) renderList(innerW, rows int) string {
	t := theme.Active

	mutedStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	if len(a.visible) == 0 {
		return mutedStyle.Render("No expenses yet. Press n to add one.")
	}

	amounts := make([]string, len(a.visible))
	amountW := 0
	for i, r := range a.visible {
		amounts[i] = cli.FormatAmount(r.Amount, a.opts.Currency)
		amountW = max(amountW, len(amounts[i]))
	}
	catW := len(model.CategoryBusiness)
	nameW := max(innerW-amountW-catW-6, 8)

	offset := 0
	if a.cursor >= rows {
		offset = a.cursor - rows + 1
	}
	end := min(offset+rows, len(a.visible))

	var b strings.Builder
	for i := offset; i < end; i++ {
		r := a.visible[i]
		bg := t.Surface
		marker := "  "
		if i == a.cursor {
			bg = t.SurfaceHover
			marker = "▸ "
		}
		base := lipgloss.NewStyle().Background(bg)
		nameStyle := base.Foreground(t.TextPrimary)
		catStyle := base.Foreground(t.TextMuted)
		amountStyle := base.Foreground(t.AmountColor(model.Tier(r.Amount))).Bold(true)

		line := base.Foreground(t.Accent).Render(marker) +
			nameStyle.Render(fmt.Sprintf("%-*s", nameW, components.Truncate(r.Name, nameW))) +
			base.Render("  ") +
			catStyle.Render(fmt.Sprintf("%-*s", catW, components.Truncate(r.Category, catW))) +
			base.Render("  ") +
			amountStyle.Render(fmt.Sprintf("%*s", amountW, amounts[i]))
		b.WriteString(line)
		if i < end-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	return s + strings.Repeat("\n", h-len(lines))
}

// fillLinesWithBackground pads each line to width w with background color.
func fillLinesWithBackground(s string, w int, bg lipgloss.Color) string {
	lines := strings.Split(s, "\n")

	var result strings.Builder
	for i, line := range lines {
		result.WriteString(lipgloss.PlaceHorizontal(w, lipgloss.Left, line,
			lipgloss.WithWhitespaceBackground(bg)))
		if i < len(lines)-1 {
			result.WriteString("\n")
		}
	}
	return result.String()
}
