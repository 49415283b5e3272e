package service

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_corpus.go -package=mocks wordvis/internal/service Corpus
//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_explorer_service.go -package=mocks wordvis/internal/service ExplorerService

import (
	"context"
	"fmt"

	"github.com/sahilm/fuzzy"

	"wordvis/internal/chart"
	"wordvis/internal/contextutil"
	"wordvis/internal/indexer"
	"wordvis/internal/selection"
)

// Corpus is the read side of the word index.
// This interface is defined from the service layer's perspective (consumer-first).
type Corpus interface {
	// Counts returns the nonzero per-chunk counts of word.
	Counts(word string) []indexer.Occurrence
	// Vocabulary returns the distinct non-stopword tokens.
	Vocabulary() []string
	// Overview returns the global non-stopword counts, most frequent first.
	Overview() []indexer.WordCount
	// ChunkCount returns the number of full chunks.
	ChunkCount() int
	// TotalChunks returns the number of chunks including a trailing partial chunk.
	TotalChunks() int
	// Stats returns summary statistics.
	Stats() indexer.Stats
}

// TableRequest carries the selection and the table built so far.
type TableRequest struct {
	Selected []string
	Table    selection.Table
}

// TableResponse carries the updated table.
type TableResponse struct {
	Table selection.Table
}

// ClickRequest carries the selection and a grid click, either of which may be absent.
type ClickRequest struct {
	Selection []string
	Cell      *selection.Cell
}

// ClickResponse carries the reconciled selection.
type ClickResponse struct {
	Selection []string
}

// ChartRequest carries the table and the words to display.
type ChartRequest struct {
	Selected []string
	Table    selection.Table
}

// ExplorerService answers the interactions of a presentation adapter.
// It holds no per-client state: callers pass their selection and table in
// and get the new values back.
type ExplorerService interface {
	// Vocabulary returns the words available for selection, fuzzy-filtered by query.
	Vocabulary(ctx context.Context, query string, limit int) []string
	// Overview returns the global word counts.
	Overview(ctx context.Context, limit int) []indexer.WordCount
	// UpdateTable indexes the most recently selected word into the table.
	UpdateTable(ctx context.Context, req TableRequest) (TableResponse, error)
	// ClickCell merges a grid click into the selection.
	ClickCell(ctx context.Context, req ClickRequest) (ClickResponse, error)
	// Chart builds the figure for the selected words.
	Chart(ctx context.Context, req ChartRequest) (chart.Figure, error)
	// Stats returns corpus statistics.
	Stats(ctx context.Context) indexer.Stats
}

// explorerService implements ExplorerService.
type explorerService struct {
	corpus     Corpus
	aggregator *selection.Aggregator
	theme      chart.Theme
}

// NewExplorerService creates a new ExplorerService over corpus.
func NewExplorerService(corpus Corpus, theme chart.Theme) ExplorerService {
	return &explorerService{
		corpus:     corpus,
		aggregator: selection.NewAggregator(corpus),
		theme:      theme,
	}
}

// Vocabulary returns the sorted vocabulary, or fuzzy matches ranked by score when query is set.
func (s *explorerService) Vocabulary(ctx context.Context, query string, limit int) []string {
	words := s.corpus.Vocabulary()
	if query != "" {
		matches := fuzzy.Find(query, words)
		words = make([]string, len(matches))
		for i, m := range matches {
			words[i] = m.Str
		}
	}
	if limit > 0 && len(words) > limit {
		words = words[:limit]
	}
	contextutil.LoggerFromContext(ctx).DebugContext(ctx, "vocabulary listed", "query", query, "limit", limit, "words", len(words))
	return words
}

// Overview returns the overview grid rows.
func (s *explorerService) Overview(ctx context.Context, limit int) []indexer.WordCount {
	rows := s.corpus.Overview()
	if limit > 0 && len(rows) > limit {
		rows = rows[:limit]
	}
	contextutil.LoggerFromContext(ctx).DebugContext(ctx, "overview listed", "limit", limit, "rows", len(rows))
	return rows
}

// UpdateTable validates the incoming table and runs the aggregator.
func (s *explorerService) UpdateTable(ctx context.Context, req TableRequest) (TableResponse, error) {
	logger := contextutil.LoggerFromContext(ctx)

	if err := s.validateTable(req.Table); err != nil {
		logger.WarnContext(ctx, "rejected table", "error", err)
		return TableResponse{}, WrapError(err, "failed to update table")
	}

	table := s.aggregator.OnSelectionChanged(req.Selected, req.Table)
	if table == nil {
		table = selection.Table{}
	}

	if added := len(table) - len(req.Table); added > 0 {
		logger.DebugContext(ctx, "word indexed", "word", req.Selected[len(req.Selected)-1], "rows", added)
	}
	return TableResponse{Table: table}, nil
}

// ClickCell reconciles a grid click with the selection. Malformed clicks are no-ops.
func (s *explorerService) ClickCell(ctx context.Context, req ClickRequest) (ClickResponse, error) {
	logger := contextutil.LoggerFromContext(ctx)

	if req.Cell != nil && req.Cell.Value == nil {
		logger.DebugContext(ctx, "ignoring click without value")
	}

	selected := selection.Reconcile(req.Selection, req.Cell)
	if selected == nil {
		selected = []string{}
	}
	return ClickResponse{Selection: selected}, nil
}

// Chart validates the table and projects it onto the selected words.
func (s *explorerService) Chart(ctx context.Context, req ChartRequest) (chart.Figure, error) {
	if err := s.validateTable(req.Table); err != nil {
		contextutil.LoggerFromContext(ctx).WarnContext(ctx, "rejected table", "error", err)
		return chart.Figure{}, WrapError(err, "failed to build chart")
	}
	return chart.Build(req.Table, req.Selected, s.corpus.ChunkCount(), s.theme), nil
}

// Stats returns corpus statistics.
func (s *explorerService) Stats(ctx context.Context) indexer.Stats {
	stats := s.corpus.Stats()
	contextutil.LoggerFromContext(ctx).DebugContext(ctx, "stats requested", "tokens", stats.Tokens, "chunks", stats.TotalChunks)
	return stats
}

// validateTable checks a client-supplied table against the row invariants.
func (s *explorerService) validateTable(table selection.Table) error {
	total := s.corpus.TotalChunks()
	seen := make(map[selection.Row]bool, len(table))
	for i, r := range table {
		switch {
		case r.Word == "":
			return &ValidationError{Field: "table", Message: fmt.Sprintf("row %d has an empty word", i)}
		case r.Count <= 0:
			return &ValidationError{Field: "table", Message: fmt.Sprintf("row %d has non-positive amount %d", i, r.Count)}
		case r.Chunk < 1 || r.Chunk > total:
			return &ValidationError{Field: "table", Message: fmt.Sprintf("row %d chunk %d is outside 1..%d", i, r.Chunk, total)}
		}
		key := selection.Row{Chunk: r.Chunk, Word: r.Word}
		if seen[key] {
			return &ValidationError{Field: "table", Message: fmt.Sprintf("row %d duplicates chunk %d word %q", i, r.Chunk, r.Word)}
		}
		seen[key] = true
	}
	return nil
}
