package indexer

import "wordvis/internal/transcript"

// Chunk represents a contiguous run of transcript tokens.
type Chunk struct {
	Index  int                // Chunk index within the transcript (starts at 1)
	Tokens []transcript.Token // At most chunkSize tokens; only the last chunk may be shorter
}

// Occurrence is the nonzero count of one word within one chunk.
type Occurrence struct {
	Chunk int
	Count int
}

// WordCount is the global count of one word across the transcript.
type WordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// Filter reports whether a token is excluded from vocabulary and overview counts.
type Filter interface {
	Contains(word string) bool
}
