package indexer

import (
	"sort"

	"wordvis/internal/transcript"
)

// CountInChunk returns the number of tokens in c exactly equal to word.
func CountInChunk(c Chunk, word string) int {
	count := 0
	for _, tok := range c.Tokens {
		if tok.Text == word {
			count++
		}
	}
	return count
}

// Index holds the chunked token stream of one transcript.
// It is immutable after NewIndex returns and safe for concurrent readers.
type Index struct {
	tokenCount int
	chunkSize  int
	chunks     []Chunk
	fullChunks int
	vocabulary []string
	overview   []WordCount
	stats      Stats
}

// NewIndex chunks tokens and precomputes the vocabulary and overview counts.
// Tokens matched by filter are left out of the vocabulary and overview but
// remain in the chunks. A nil filter excludes nothing.
func NewIndex(tokens []transcript.Token, chunkSize int, filter Filter) (*Index, error) {
	chunks, err := Split(tokens, chunkSize)
	if err != nil {
		return nil, err
	}

	ix := &Index{
		tokenCount: len(tokens),
		chunkSize:  chunkSize,
		chunks:     chunks,
		fullChunks: FullChunks(len(tokens), chunkSize),
	}

	counts := make(map[string]int)
	for _, tok := range tokens {
		if filter != nil && filter.Contains(tok.Text) {
			continue
		}
		counts[tok.Text]++
	}

	ix.overview = make([]WordCount, 0, len(counts))
	ix.vocabulary = make([]string, 0, len(counts))
	for word, count := range counts {
		ix.overview = append(ix.overview, WordCount{Word: word, Count: count})
		ix.vocabulary = append(ix.vocabulary, word)
	}
	sort.Strings(ix.vocabulary)
	sort.Slice(ix.overview, func(i, j int) bool {
		if ix.overview[i].Count != ix.overview[j].Count {
			return ix.overview[i].Count > ix.overview[j].Count
		}
		return ix.overview[i].Word < ix.overview[j].Word
	})

	ix.stats = ix.computeStats(filter)

	return ix, nil
}

// Counts returns the nonzero per-chunk counts of word, in chunk order.
// A word that does not occur yields an empty slice.
func (ix *Index) Counts(word string) []Occurrence {
	var occurrences []Occurrence
	for _, c := range ix.chunks {
		if n := CountInChunk(c, word); n > 0 {
			occurrences = append(occurrences, Occurrence{Chunk: c.Index, Count: n})
		}
	}
	return occurrences
}

// Chunks returns all chunks, including a trailing partial chunk.
func (ix *Index) Chunks() []Chunk {
	return ix.chunks
}

// ChunkCount returns the number of full chunks, floor(tokens / chunkSize).
func (ix *Index) ChunkCount() int {
	return ix.fullChunks
}

// TotalChunks returns the number of chunks including a trailing partial chunk.
func (ix *Index) TotalChunks() int {
	return len(ix.chunks)
}

// ChunkSize returns the configured tokens per chunk.
func (ix *Index) ChunkSize() int {
	return ix.chunkSize
}

// TokenCount returns the number of tokens in the stream.
func (ix *Index) TokenCount() int {
	return ix.tokenCount
}

// Vocabulary returns the distinct non-stopword tokens in sorted order.
func (ix *Index) Vocabulary() []string {
	out := make([]string, len(ix.vocabulary))
	copy(out, ix.vocabulary)
	return out
}

// Overview returns the global non-stopword counts, most frequent first.
// Ties are ordered by word.
func (ix *Index) Overview() []WordCount {
	out := make([]WordCount, len(ix.overview))
	copy(out, ix.overview)
	return out
}

// Stats returns summary statistics about the index.
func (ix *Index) Stats() Stats {
	return ix.stats
}
