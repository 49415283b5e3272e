package indexer

import (
	"bytes"
	"context"
	"crypto/sha256"
	"fmt"
	"os"

	"wordvis/internal/contextutil"
	"wordvis/internal/transcript"
)

// Pipeline loads a transcript from disk and builds its Index.
type Pipeline struct {
	path      string
	chunkSize int
	filter    Filter
}

// NewPipeline creates a pipeline for the transcript at path.
func NewPipeline(path string, chunkSize int, filter Filter) *Pipeline {
	return &Pipeline{
		path:      path,
		chunkSize: chunkSize,
		filter:    filter,
	}
}

// Build reads, tokenizes and indexes the transcript.
// The chunk size is checked before the file is read.
func (p *Pipeline) Build(ctx context.Context) (*Index, error) {
	logger := contextutil.LoggerFromContext(ctx)

	if p.chunkSize <= 0 {
		return nil, fmt.Errorf("%w: chunk size must be positive, got %d", ErrInvalidConfiguration, p.chunkSize)
	}

	content, err := os.ReadFile(p.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read transcript %s: %w", p.path, err)
	}

	hash := sha256.Sum256(content)
	format := transcript.FormatFromPath(p.path)
	logger.DebugContext(ctx, "transcript read",
		"path", p.path,
		"bytes", len(content),
		"format", format.String(),
		"hash", fmt.Sprintf("%x", hash[:8]),
	)

	tr, err := transcript.Parse(bytes.NewReader(content), format)
	if err != nil {
		return nil, fmt.Errorf("failed to parse transcript %s: %w", p.path, err)
	}
	if len(tr.Tokens) == 0 {
		logger.WarnContext(ctx, "transcript has no tokens", "path", p.path)
	}

	ix, err := NewIndex(tr.Tokens, p.chunkSize, p.filter)
	if err != nil {
		return nil, err
	}

	stats := ix.Stats()
	logger.InfoContext(ctx, "index built",
		"path", p.path,
		"tokens", stats.Tokens,
		"speakers", len(tr.Speakers),
		"chunk_size", stats.ChunkSize,
		"chunks", stats.ChunkCount,
		"total_chunks", stats.TotalChunks,
		"vocabulary", stats.Vocabulary,
		"index_version", stats.IndexVersion,
	)
	return ix, nil
}
