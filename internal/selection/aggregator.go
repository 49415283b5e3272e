package selection

import "wordvis/internal/indexer"

// Counter supplies the nonzero per-chunk counts of a word.
type Counter interface {
	Counts(word string) []indexer.Occurrence
}

// Aggregator grows a Table as words are selected.
type Aggregator struct {
	counter Counter
}

// NewAggregator creates an Aggregator backed by counter.
func NewAggregator(counter Counter) *Aggregator {
	return &Aggregator{counter: counter}
}

// OnSelectionChanged indexes the most recently selected word into current.
//
// Only the last element of selected is considered. If it already has rows in
// current (it was indexed before, whatever its position now), current is
// returned unchanged. Otherwise one row per chunk with a nonzero count is
// appended. The input table is never modified in place.
func (a *Aggregator) OnSelectionChanged(selected []string, current Table) Table {
	if len(selected) == 0 {
		return current
	}

	word := selected[len(selected)-1]
	if current.HasWord(word) {
		return current
	}

	occurrences := a.counter.Counts(word)
	if len(occurrences) == 0 {
		return current
	}

	out := make(Table, len(current), len(current)+len(occurrences))
	copy(out, current)
	for _, o := range occurrences {
		if o.Count <= 0 {
			continue
		}
		out = append(out, Row{Chunk: o.Chunk, Word: word, Count: o.Count})
	}
	return out
}
