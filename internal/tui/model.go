// Package tui is the terminal dashboard: a word picker, the overview grid
// and a stacked bar chart of the selected words per chunk.
package tui

import (
	"log/slog"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"wordvis/internal/chart"
	"wordvis/internal/indexer"
	"wordvis/internal/selection"
)

// Corpus is the part of the index the dashboard reads.
type Corpus interface {
	selection.Counter
	Vocabulary() []string
	Overview() []indexer.WordCount
	ChunkCount() int
}

type pane int

const (
	panePicker pane = iota
	paneGrid
)

// Color scheme
var (
	primaryColor = lipgloss.Color("#00CC96")
	mutedColor   = lipgloss.Color("#6B7280")
	textColor    = lipgloss.Color("#FFFFFF")
	borderColor  = lipgloss.Color("#374151")
)

type wordItem string

func (i wordItem) Title() string       { return string(i) }
func (i wordItem) Description() string { return "" }
func (i wordItem) FilterValue() string { return string(i) }

// Model is the bubbletea model of the dashboard.
type Model struct {
	aggregator *selection.Aggregator
	state      selection.State
	chunkCount int
	theme      chart.Theme

	picker list.Model
	grid   table.Model
	focus  pane

	width    int
	height   int
	quitting bool
}

// New builds the dashboard over corpus.
func New(corpus Corpus, theme chart.Theme) Model {
	words := corpus.Vocabulary()
	items := make([]list.Item, len(words))
	for i, w := range words {
		items[i] = wordItem(w)
	}

	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = false
	delegate.SetSpacing(0)

	l := list.New(items, delegate, 24, 20)
	l.Title = "Words"
	l.SetShowHelp(false)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = lipgloss.NewStyle().Foreground(textColor).Background(primaryColor).Padding(0, 1)

	overview := corpus.Overview()
	rows := make([]table.Row, len(overview))
	for i, wc := range overview {
		rows[i] = table.Row{wc.Word, strconv.Itoa(wc.Count)}
	}
	grid := table.New(
		table.WithColumns([]table.Column{
			{Title: "Word", Width: 16},
			{Title: "Count", Width: 7},
		}),
		table.WithRows(rows),
		table.WithHeight(20),
		table.WithFocused(false),
	)

	return Model{
		aggregator: selection.NewAggregator(corpus),
		chunkCount: corpus.ChunkCount(),
		theme:      theme,
		picker:     l,
		grid:       grid,
		focus:      panePicker,
	}
}

// State returns the current selection and table.
func (m Model) State() selection.State {
	return m.state
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		paneHeight := max(msg.Height-4, 5)
		m.picker.SetSize(24, paneHeight)
		m.grid.SetHeight(paneHeight - 1)
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
		// While the picker filter is open every key edits the filter.
		if m.focus == panePicker && m.picker.FilterState() == list.Filtering {
			break
		}

		switch {
		case key.Matches(msg, keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, keys.Focus):
			m.toggleFocus()
			return m, nil

		case key.Matches(msg, keys.Enter):
			m.enter()
			return m, nil

		case key.Matches(msg, keys.Remove):
			if n := len(m.state.Selection); n > 0 {
				word := m.state.Selection[n-1]
				m.state = m.aggregator.Apply(m.state, selection.WordRemoved{Word: word})
				slog.Debug("word removed", "word", word, "selection", m.state.Selection)
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	if m.focus == panePicker {
		m.picker, cmd = m.picker.Update(msg)
	} else {
		m.grid, cmd = m.grid.Update(msg)
	}
	return m, cmd
}

func (m *Model) toggleFocus() {
	if m.focus == panePicker {
		m.focus = paneGrid
		m.grid.Focus()
	} else {
		m.focus = panePicker
		m.grid.Blur()
	}
}

// enter applies the selection event of the focused pane.
func (m *Model) enter() {
	switch m.focus {
	case panePicker:
		item, ok := m.picker.SelectedItem().(wordItem)
		if !ok {
			return
		}
		selected := append(append([]string(nil), m.state.Selection...), string(item))
		m.state = m.aggregator.Apply(m.state, selection.SelectionChanged{Selected: selected})
		slog.Debug("word selected", "word", string(item), "rows", len(m.state.Table))

	case paneGrid:
		var cell *selection.Cell
		if row := m.grid.SelectedRow(); len(row) > 0 {
			cell = selection.NewCell(row[0])
		}
		m.state = m.aggregator.Apply(m.state, selection.CellClicked{Cell: cell})
		slog.Debug("cell clicked", "selection", m.state.Selection)
	}
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	pickerView := m.paneStyle(panePicker).Render(m.picker.View())
	gridView := m.paneStyle(paneGrid).Render(m.grid.View())

	chartWidth := m.width - lipgloss.Width(pickerView) - lipgloss.Width(gridView) - 4
	fig := chart.Build(m.state.Table, m.state.Selection, m.chunkCount, m.theme)
	chartView := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Padding(0, 1).
		Render(renderChart(fig, chartWidth))

	var b strings.Builder
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, pickerView, gridView, chartView))
	b.WriteString("\n")
	b.WriteString(m.selectionLine())
	b.WriteString("\n")
	b.WriteString(m.helpLine())
	return b.String()
}

func (m Model) paneStyle(p pane) lipgloss.Style {
	border := borderColor
	if m.focus == p {
		border = primaryColor
	}
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(border)
}

func (m Model) selectionLine() string {
	muted := lipgloss.NewStyle().Foreground(mutedColor)
	if len(m.state.Selection) == 0 {
		return muted.Render("selected: none")
	}
	return muted.Render("selected:") + " " + lipgloss.NewStyle().Foreground(textColor).Render(strings.Join(m.state.Selection, ", "))
}

func (m Model) helpLine() string {
	parts := make([]string, 0, len(keys.help()))
	for _, k := range keys.help() {
		h := k.Help()
		parts = append(parts, h.Key+": "+h.Desc)
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Render(strings.Join(parts, " • "))
}
