package indexer

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"math"
	"sort"
)

const (
	// ChunkerVersion is the version identifier for the chunker implementation.
	// Update this when chunking logic changes significantly.
	ChunkerVersion = "v1.0"
)

// Stats contains summary statistics about an index.
type Stats struct {
	// Tokens is the total number of tokens in the transcript.
	Tokens int `json:"tokens"`
	// ChunkSize is the configured number of tokens per chunk.
	ChunkSize int `json:"chunk_size"`
	// ChunkCount is the number of full chunks (bounds the chart x-axis).
	ChunkCount int `json:"chunk_count"`
	// TotalChunks includes a trailing partial chunk.
	TotalChunks int `json:"total_chunks"`
	// Vocabulary is the number of distinct non-stopword tokens.
	Vocabulary int `json:"vocabulary"`
	// ChunkWordStats describes distinct non-stopword words per chunk.
	ChunkWordStats ChunkWordStats `json:"chunk_word_stats"`
	// ChunkerVersion is the version of the chunker used.
	ChunkerVersion string `json:"chunker_version"`
	// IndexVersion is a hash identifying the index build (chunker + params + token count).
	IndexVersion string `json:"index_version"`
}

// ChunkWordStats contains statistics about distinct words per chunk.
type ChunkWordStats struct {
	Min  int     `json:"min"`
	Max  int     `json:"max"`
	Mean float64 `json:"mean"`
	P95  int     `json:"p95"`
}

func (ix *Index) computeStats(filter Filter) Stats {
	stats := Stats{
		Tokens:         ix.tokenCount,
		ChunkSize:      ix.chunkSize,
		ChunkCount:     ix.fullChunks,
		TotalChunks:    len(ix.chunks),
		Vocabulary:     len(ix.vocabulary),
		ChunkerVersion: ChunkerVersion,
	}

	distinct := make([]int, 0, len(ix.chunks))
	for _, c := range ix.chunks {
		seen := make(map[string]struct{}, len(c.Tokens))
		for _, tok := range c.Tokens {
			if filter != nil && filter.Contains(tok.Text) {
				continue
			}
			seen[tok.Text] = struct{}{}
		}
		distinct = append(distinct, len(seen))
	}
	stats.ChunkWordStats = computeWordStats(distinct)

	versionInput := fmt.Sprintf("%s|chunkSize=%d|tokens=%d", ChunkerVersion, ix.chunkSize, ix.tokenCount)
	hash := sha256.Sum256([]byte(versionInput))
	stats.IndexVersion = hex.EncodeToString(hash[:])[:16] // 16 hex chars = 64 bits

	return stats
}

// computeWordStats computes min, max, mean, and p95 from per-chunk counts.
func computeWordStats(counts []int) ChunkWordStats {
	if len(counts) == 0 {
		return ChunkWordStats{}
	}

	sorted := make([]int, len(counts))
	copy(sorted, counts)
	sort.Ints(sorted)

	sum := 0
	for _, c := range counts {
		sum += c
	}
	mean := float64(sum) / float64(len(counts))

	p95Index := int(math.Ceil(float64(len(sorted)) * 0.95))
	if p95Index >= len(sorted) {
		p95Index = len(sorted) - 1
	}

	return ChunkWordStats{
		Min:  sorted[0],
		Max:  sorted[len(sorted)-1],
		Mean: math.Round(mean*100) / 100, // Round to 2 decimal places
		P95:  sorted[p95Index],
	}
}
