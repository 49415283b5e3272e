package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"wordvis/internal/chart"
)

const minBarWidth = 10

type segment struct {
	color  string
	amount int
}

// renderChart draws fig as horizontal stacked bars, one line per chunk that
// has visible rows. Chunks outside the figure's x-range are left out.
func renderChart(fig chart.Figure, width int) string {
	muted := lipgloss.NewStyle().Foreground(mutedColor)
	if fig.Empty || len(fig.Series) == 0 {
		return muted.Render("select a word to chart its occurrences")
	}

	stacks := make(map[int][]segment)
	for _, s := range fig.Series {
		for i, c := range s.Chunks {
			if !fig.InRange(c) {
				continue
			}
			stacks[c] = append(stacks[c], segment{color: s.Color, amount: s.Amounts[i]})
		}
	}
	if len(stacks) == 0 {
		return muted.Render("no occurrences in full chunks")
	}

	chunks := make([]int, 0, len(stacks))
	peak := 0
	for c, segs := range stacks {
		chunks = append(chunks, c)
		total := 0
		for _, s := range segs {
			total += s.amount
		}
		peak = max(peak, total)
	}
	sort.Ints(chunks)

	label := len(fmt.Sprint(fig.XRange[1]))
	barWidth := max(width-label-8, minBarWidth)

	var b strings.Builder
	b.WriteString(legend(fig))
	b.WriteString("\n\n")
	for _, c := range chunks {
		total := 0
		b.WriteString(muted.Render(fmt.Sprintf("%*d │", label, c)))
		for _, s := range stacks[c] {
			total += s.amount
			n := max(s.amount*barWidth/peak, 1)
			b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(s.color)).Render(strings.Repeat("█", n)))
		}
		b.WriteString(muted.Render(fmt.Sprintf(" %d", total)))
		b.WriteString("\n")
	}
	b.WriteString(muted.Render(fmt.Sprintf("%s chunk (1..%d)", strings.Repeat(" ", label), fig.XRange[1]-1)))
	return b.String()
}

func legend(fig chart.Figure) string {
	parts := make([]string, len(fig.Series))
	for i, s := range fig.Series {
		parts[i] = lipgloss.NewStyle().Foreground(lipgloss.Color(s.Color)).Render("■ " + s.Word)
	}
	return strings.Join(parts, "  ")
}
