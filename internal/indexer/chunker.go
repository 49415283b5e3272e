package indexer

import (
	"errors"
	"fmt"

	"wordvis/internal/transcript"
)

const (
	// DefaultChunkSize is the number of tokens per chunk when none is configured.
	DefaultChunkSize = 100
)

// ErrInvalidConfiguration is returned when the chunking scheme cannot be built.
var ErrInvalidConfiguration = errors.New("invalid configuration")

// Split divides tokens into consecutive, non-overlapping chunks of size tokens.
// The final chunk may hold fewer tokens and is still returned as a distinct chunk.
// Chunk indices start at 1.
func Split(tokens []transcript.Token, size int) ([]Chunk, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: chunk size must be greater than 0, got %d", ErrInvalidConfiguration, size)
	}

	chunks := make([]Chunk, 0, (len(tokens)+size-1)/size)
	for start := 0; start < len(tokens); start += size {
		end := min(start+size, len(tokens))
		chunks = append(chunks, Chunk{
			Index:  len(chunks) + 1,
			Tokens: tokens[start:end:end],
		})
	}

	return chunks, nil
}

// FullChunks returns the number of full chunks for tokenCount tokens.
// It bounds the chart's x-axis, so a trailing partial chunk sits at the
// edge of the visible range.
func FullChunks(tokenCount, size int) int {
	if size <= 0 {
		return 0
	}
	return tokenCount / size
}
