package selection

// Row is the nonzero count of one word within one chunk.
type Row struct {
	Chunk int    `json:"chunk"`  // Chunk index (starts at 1)
	Word  string `json:"word"`   // Selected word
	Count int    `json:"amount"` // Occurrences in the chunk, always > 0
}

// Table holds the rows of every word that has ever been selected.
// It only grows; deselected words keep their rows and are hidden by Project.
type Table []Row

// HasWord reports whether any row belongs to word.
func (t Table) HasWord(word string) bool {
	for _, r := range t {
		if r.Word == word {
			return true
		}
	}
	return false
}

// Words returns the distinct words in the table in order of first appearance.
func (t Table) Words() []string {
	seen := make(map[string]bool)
	var words []string
	for _, r := range t {
		if !seen[r.Word] {
			seen[r.Word] = true
			words = append(words, r.Word)
		}
	}
	return words
}

// Filter returns a new table with the rows for which keep returns true.
func (t Table) Filter(keep func(Row) bool) Table {
	out := make(Table, 0, len(t))
	for _, r := range t {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}

// Project returns the rows whose word is currently selected.
func (t Table) Project(selected []string) Table {
	return t.Filter(Selected(selected))
}

// Selected returns a predicate matching rows whose word is in words.
func Selected(words []string) func(Row) bool {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return func(r Row) bool {
		_, ok := set[r.Word]
		return ok
	}
}
