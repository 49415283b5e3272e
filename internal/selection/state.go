package selection

// State is the explorer state threaded through every interaction.
type State struct {
	Selection []string `json:"selection"`
	Table     Table    `json:"table"`
}

// Visible returns the rows of the currently selected words.
func (s State) Visible() Table {
	return s.Table.Project(s.Selection)
}

// Event is a user interaction applied to a State.
type Event interface {
	event()
}

// SelectionChanged replaces the selection, as a multi-select control does.
type SelectionChanged struct {
	Selected []string
}

// CellClicked is a click on the overview grid.
type CellClicked struct {
	Cell *Cell
}

// WordRemoved drops every occurrence of Word from the selection.
type WordRemoved struct {
	Word string
}

func (SelectionChanged) event() {}
func (CellClicked) event()      {}
func (WordRemoved) event()      {}

// Apply returns the state that results from ev. s is not modified.
func (a *Aggregator) Apply(s State, ev Event) State {
	switch e := ev.(type) {
	case SelectionChanged:
		selected := append([]string(nil), e.Selected...)
		return State{
			Selection: selected,
			Table:     a.OnSelectionChanged(selected, s.Table),
		}
	case CellClicked:
		selected := Reconcile(s.Selection, e.Cell)
		return State{
			Selection: selected,
			Table:     a.OnSelectionChanged(selected, s.Table),
		}
	case WordRemoved:
		selected := make([]string, 0, len(s.Selection))
		for _, w := range s.Selection {
			if w != e.Word {
				selected = append(selected, w)
			}
		}
		return State{Selection: selected, Table: s.Table}
	default:
		return s
	}
}
