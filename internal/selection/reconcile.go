package selection

// Cell is a click on a cell of the overview grid.
// A nil Value means the event arrived without its value field.
type Cell struct {
	Value *string `json:"value"`
}

// NewCell returns a Cell carrying value.
func NewCell(value string) *Cell {
	return &Cell{Value: &value}
}

// Reconcile merges a grid click into the current selection.
// A missing click, or a click without a value, leaves the selection as is.
// A nil selection is treated as empty. current is never modified in place.
func Reconcile(current []string, clicked *Cell) []string {
	if clicked == nil || clicked.Value == nil || *clicked.Value == "" {
		return current
	}

	out := make([]string, len(current), len(current)+1)
	copy(out, current)
	return append(out, *clicked.Value)
}
