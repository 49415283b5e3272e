package chart

import "wordvis/internal/selection"

const (
	// BarMode stacks bars of different words in the same chunk.
	BarMode = "relative"
	// BarWidth is the width of each bar in chunk units.
	BarWidth = 0.7
	// TransitionMS is the animation duration between figures.
	TransitionMS = 500
)

// Theme holds the colors of a figure.
type Theme struct {
	Background string   `json:"background"`
	Text       string   `json:"text"`
	Palette    []string `json:"palette"`
}

// DefaultTheme returns the dark theme with Plotly's qualitative palette.
func DefaultTheme() Theme {
	return Theme{
		Background: "#313131",
		Text:       "#FFFFFF",
		Palette: []string{
			"#636EFA", "#EF553B", "#00CC96", "#AB63FA", "#FFA15A",
			"#19D3F3", "#FF6692", "#B6E880", "#FF97FF", "#FECB52",
		},
	}
}

// Series is the bars of one word, one per chunk where it occurs.
type Series struct {
	Word    string `json:"word"`
	Color   string `json:"color"`
	Chunks  []int  `json:"chunks"`
	Amounts []int  `json:"amounts"`
}

// Figure is a renderable bar chart of per-chunk word counts.
type Figure struct {
	Empty        bool     `json:"empty"`
	Series       []Series `json:"series"`
	XRange       [2]int   `json:"x_range"`
	BarMode      string   `json:"bar_mode"`
	BarWidth     float64  `json:"bar_width"`
	TransitionMS int      `json:"transition_ms"`
	Theme        Theme    `json:"theme"`
}

// Build projects table onto the selected words and lays the rows out as a figure.
// The x-axis spans (0, chunkCount+1), so a trailing partial chunk at index
// chunkCount+1 sits on the edge of the range. An empty table yields an empty figure.
func Build(table selection.Table, selected []string, chunkCount int, theme Theme) Figure {
	fig := Figure{
		Series:       []Series{},
		XRange:       [2]int{0, chunkCount + 1},
		BarMode:      BarMode,
		BarWidth:     BarWidth,
		TransitionMS: TransitionMS,
		Theme:        theme,
	}
	if len(table) == 0 {
		fig.Empty = true
		return fig
	}

	byWord := make(map[string]int)
	for _, r := range table.Project(selected) {
		i, ok := byWord[r.Word]
		if !ok {
			i = len(fig.Series)
			byWord[r.Word] = i
			fig.Series = append(fig.Series, Series{
				Word:  r.Word,
				Color: theme.color(i),
			})
		}
		fig.Series[i].Chunks = append(fig.Series[i].Chunks, r.Chunk)
		fig.Series[i].Amounts = append(fig.Series[i].Amounts, r.Count)
	}

	return fig
}

// InRange reports whether chunk lies strictly inside the x-axis range.
func (f Figure) InRange(chunk int) bool {
	return chunk > f.XRange[0] && chunk < f.XRange[1]
}

func (t Theme) color(i int) string {
	if len(t.Palette) == 0 {
		return t.Text
	}
	return t.Palette[i%len(t.Palette)]
}
