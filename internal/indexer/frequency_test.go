package indexer

import (
	"errors"
	"reflect"
	"testing"

	"wordvis/internal/stopwords"
)

func TestCountInChunk(t *testing.T) {
	tests := []struct {
		name  string
		chunk Chunk
		word  string
		want  int
	}{
		{
			name:  "single occurrence",
			chunk: Chunk{Index: 1, Tokens: tokens("a", "b")},
			word:  "a",
			want:  1,
		},
		{
			name:  "repeated occurrences",
			chunk: Chunk{Index: 1, Tokens: tokens("news!", "Fake", "news!")},
			word:  "news!",
			want:  2,
		},
		{
			name:  "case-sensitive",
			chunk: Chunk{Index: 1, Tokens: tokens("Fake", "fake")},
			word:  "fake",
			want:  1,
		},
		{
			name:  "no substring matches",
			chunk: Chunk{Index: 1, Tokens: tokens("news.", "newsroom")},
			word:  "news",
			want:  0,
		},
		{
			name:  "empty chunk",
			chunk: Chunk{Index: 1},
			word:  "a",
			want:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CountInChunk(tt.chunk, tt.word); got != tt.want {
				t.Errorf("CountInChunk() = %d, want %d", got, tt.want)
			}
			// Repeated calls are side-effect-free
			if got := CountInChunk(tt.chunk, tt.word); got != tt.want {
				t.Errorf("CountInChunk() second call = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestNewIndex_InvalidChunkSize(t *testing.T) {
	ix, err := NewIndex(tokens("a"), 0, nil)
	if !errors.Is(err, ErrInvalidConfiguration) {
		t.Errorf("NewIndex() error = %v, want ErrInvalidConfiguration", err)
	}
	if ix != nil {
		t.Error("NewIndex() should return nil index on error")
	}
}

func TestIndex_Counts(t *testing.T) {
	ix, err := NewIndex(tokens("a", "b", "a", "c", "a", "b"), 2, nil)
	if err != nil {
		t.Fatalf("NewIndex() error = %v", err)
	}

	tests := []struct {
		word string
		want []Occurrence
	}{
		{"a", []Occurrence{{Chunk: 1, Count: 1}, {Chunk: 2, Count: 1}, {Chunk: 3, Count: 1}}},
		{"b", []Occurrence{{Chunk: 1, Count: 1}, {Chunk: 3, Count: 1}}},
		{"c", []Occurrence{{Chunk: 2, Count: 1}}},
		{"missing", nil},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			if got := ix.Counts(tt.word); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Counts(%q) = %v, want %v", tt.word, got, tt.want)
			}
		})
	}
}

func TestIndex_CountsTrailingPartialChunk(t *testing.T) {
	ix, err := NewIndex(tokens("a", "b", "c", "d", "a"), 2, nil)
	if err != nil {
		t.Fatalf("NewIndex() error = %v", err)
	}

	if ix.ChunkCount() != 2 {
		t.Errorf("ChunkCount() = %d, want 2", ix.ChunkCount())
	}
	if ix.TotalChunks() != 3 {
		t.Errorf("TotalChunks() = %d, want 3", ix.TotalChunks())
	}

	want := []Occurrence{{Chunk: 1, Count: 1}, {Chunk: 3, Count: 1}}
	if got := ix.Counts("a"); !reflect.DeepEqual(got, want) {
		t.Errorf("Counts(a) = %v, want %v", got, want)
	}
}

func TestIndex_VocabularyAndOverview(t *testing.T) {
	words := []string{"Fake", "news!", "the", "Fake", "news!", "You're", "fake", "news!", "the"}
	ix, err := NewIndex(tokens(words...), 4, stopwords.New("the"))
	if err != nil {
		t.Fatalf("NewIndex() error = %v", err)
	}

	wantVocabulary := []string{"Fake", "You're", "fake", "news!"}
	if got := ix.Vocabulary(); !reflect.DeepEqual(got, wantVocabulary) {
		t.Errorf("Vocabulary() = %v, want %v", got, wantVocabulary)
	}

	wantOverview := []WordCount{
		{Word: "news!", Count: 3},
		{Word: "Fake", Count: 2},
		{Word: "You're", Count: 1},
		{Word: "fake", Count: 1},
	}
	if got := ix.Overview(); !reflect.DeepEqual(got, wantOverview) {
		t.Errorf("Overview() = %v, want %v", got, wantOverview)
	}

	// Stopwords are excluded from the vocabulary but still counted in chunks
	if got := ix.Counts("the"); len(got) != 2 {
		t.Errorf("Counts(the) = %v, want 2 occurrences", got)
	}

	// Returned slices are copies
	v := ix.Vocabulary()
	v[0] = "mutated"
	if ix.Vocabulary()[0] != "Fake" {
		t.Error("Vocabulary() should return a copy")
	}
}

func TestIndex_Accessors(t *testing.T) {
	ix, err := NewIndex(tokens("a", "b", "c"), 2, nil)
	if err != nil {
		t.Fatalf("NewIndex() error = %v", err)
	}

	if ix.ChunkSize() != 2 {
		t.Errorf("ChunkSize() = %d, want 2", ix.ChunkSize())
	}
	if ix.TokenCount() != 3 {
		t.Errorf("TokenCount() = %d, want 3", ix.TokenCount())
	}
	if len(ix.Chunks()) != 2 {
		t.Errorf("Chunks() len = %d, want 2", len(ix.Chunks()))
	}
}
