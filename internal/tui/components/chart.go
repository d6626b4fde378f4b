package components

import (
	"cmp"
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/theirongolddev/iexpense/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// Slice is one segment of a RingChart.
type Slice struct {
	Label string
	Value string  // preformatted amount
	Share float64 // 0-1
}

// SliceWidths splits width columns between shares using largest
// remainders, so the result sums to width whenever any share is positive.
// Every positive share gets at least one column when width allows.
func SliceWidths(shares []float64, width int) []int {
	widths := make([]int, len(shares))
	total := 0.0
	var positive []int
	for i, s := range shares {
		if s > 0 {
			total += s
			positive = append(positive, i)
		}
	}
	if total <= 0 || width <= 0 {
		return widths
	}

	used := 0
	rems := make([]float64, len(shares))
	for _, i := range positive {
		exact := shares[i] / total * float64(width)
		widths[i] = int(math.Floor(exact))
		rems[i] = exact - float64(widths[i])
		used += widths[i]
	}

	order := slices.Clone(positive)
	slices.SortStableFunc(order, func(a, b int) int {
		return cmp.Compare(rems[b], rems[a])
	})
	for k := 0; used < width; k++ {
		widths[order[k%len(order)]]++
		used++
	}

	if len(positive) <= width {
		for _, i := range positive {
			if widths[i] == 0 {
				widths[widest(widths)]--
				widths[i]++
			}
		}
	}
	return widths
}

func widest(widths []int) int {
	best := 0
	for i, w := range widths {
		if w > widths[best] {
			best = i
		}
	}
	return best
}

// RingChart renders the chart as a segmented band with the title and
// subtitle centered beneath it, the terminal stand-in for a donut chart.
func RingChart(slices []Slice, title, subtitle string, width, bandHeight int) string {
	t := theme.Active
	width = max(width, 10)
	bandHeight = max(bandHeight, 1)

	shares := make([]float64, len(slices))
	for i, s := range slices {
		shares[i] = s.Share
	}
	widths := SliceWidths(shares, width)

	var band strings.Builder
	filled := 0
	for i, w := range widths {
		if w == 0 {
			continue
		}
		style := lipgloss.NewStyle().Foreground(t.SegmentColor(i)).Background(t.Surface)
		band.WriteString(style.Render(strings.Repeat("█", w)))
		filled += w
	}
	if filled < width {
		empty := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
		band.WriteString(empty.Render(strings.Repeat("░", width-filled)))
	}

	titleStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface).Bold(true).
		Width(width).Align(lipgloss.Center)
	subStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface).
		Width(width).Align(lipgloss.Center)

	rows := make([]string, 0, bandHeight+2)
	for i := 0; i < bandHeight; i++ {
		rows = append(rows, band.String())
	}
	rows = append(rows, titleStyle.Render(title), subStyle.Render(subtitle))
	return strings.Join(rows, "\n")
}

// Legend renders one line per slice: color swatch, label, value and share bar.
func Legend(slices []Slice, width int) string {
	t := theme.Active
	if len(slices) == 0 {
		return lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface).Render("No expenses to chart")
	}

	valueW := 0
	for _, s := range slices {
		valueW = max(valueW, lipgloss.Width(s.Value))
	}
	barW := 16
	labelW := width - 2 - valueW - barW - 8
	if labelW < 8 {
		barW = max(barW-(8-labelW), 4)
		labelW = 8
	}

	labelStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	space := lipgloss.NewStyle().Background(t.Surface)

	lines := make([]string, 0, len(slices))
	for i, s := range slices {
		swatch := lipgloss.NewStyle().Foreground(t.SegmentColor(i)).Background(t.Surface).Render("■")
		lines = append(lines, swatch+
			space.Render(" ")+
			labelStyle.Render(fmt.Sprintf("%-*s", labelW, Truncate(s.Label, labelW)))+
			space.Render(" ")+
			valueStyle.Render(fmt.Sprintf("%*s", valueW, s.Value))+
			space.Render(" ")+
			ShareBar(s.Share, t.SegmentColor(i), barW))
	}
	return strings.Join(lines, "\n")
}

// Truncate shortens s to limit runes, marking the cut with an ellipsis.
func Truncate(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}
