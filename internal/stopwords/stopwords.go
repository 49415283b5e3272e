package stopwords

import (
	"fmt"
	"sort"

	"github.com/BurntSushi/toml"
)

// Set is a set of tokens excluded from frequency analysis.
// Matching is exact and case-sensitive.
type Set map[string]struct{}

// Overrides is the on-disk format of a stopword override file.
//
//	replace = false
//	extra   = ["crosstalk", "[applause]"]
//	keep    = ["not"]
type Overrides struct {
	Replace bool     `toml:"replace"` // Start from an empty list instead of the English list
	Extra   []string `toml:"extra"`
	Keep    []string `toml:"keep"`
}

// New builds a set from the given words.
func New(words ...string) Set {
	s := make(Set, len(words))
	for _, w := range words {
		s[w] = struct{}{}
	}
	return s
}

// English returns the standard English stopword list.
func English() Set {
	return New(english...)
}

// Load returns the English list adjusted by the TOML override file at path.
// An empty path returns the English list unchanged.
func Load(path string) (Set, error) {
	if path == "" {
		return English(), nil
	}

	var o Overrides
	if _, err := toml.DecodeFile(path, &o); err != nil {
		return nil, fmt.Errorf("failed to decode stopword file %s: %w", path, err)
	}
	return o.Apply(), nil
}

// Apply builds the stopword set described by the overrides.
func (o Overrides) Apply() Set {
	s := English()
	if o.Replace {
		s = New()
	}
	for _, w := range o.Extra {
		s[w] = struct{}{}
	}
	for _, w := range o.Keep {
		delete(s, w)
	}
	return s
}

// Contains reports whether word is a stopword.
func (s Set) Contains(word string) bool {
	_, ok := s[word]
	return ok
}

// Words returns the stopwords in sorted order.
func (s Set) Words() []string {
	words := make([]string, 0, len(s))
	for w := range s {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}

// english is the NLTK English stopword corpus.
var english = []string{
	"i", "me", "my", "myself", "we", "our", "ours", "ourselves", "you", "you're",
	"you've", "you'll", "you'd", "your", "yours", "yourself", "yourselves", "he", "him", "his",
	"himself", "she", "she's", "her", "hers", "herself", "it", "it's", "its", "itself",
	"they", "them", "their", "theirs", "themselves", "what", "which", "who", "whom", "this",
	"that", "that'll", "these", "those", "am", "is", "are", "was", "were", "be",
	"been", "being", "have", "has", "had", "having", "do", "does", "did", "doing",
	"a", "an", "the", "and", "but", "if", "or", "because", "as", "until",
	"while", "of", "at", "by", "for", "with", "about", "against", "between", "into",
	"through", "during", "before", "after", "above", "below", "to", "from", "up", "down",
	"in", "out", "on", "off", "over", "under", "again", "further", "then", "once",
	"here", "there", "when", "where", "why", "how", "all", "any", "both", "each",
	"few", "more", "most", "other", "some", "such", "no", "nor", "not", "only",
	"own", "same", "so", "than", "too", "very", "s", "t", "can", "will",
	"just", "don", "don't", "should", "should've", "now", "d", "ll", "m", "o",
	"re", "ve", "y", "ain", "aren", "aren't", "couldn", "couldn't", "didn", "didn't",
	"doesn", "doesn't", "hadn", "hadn't", "hasn", "hasn't", "haven", "haven't", "isn", "isn't",
	"ma", "mightn", "mightn't", "mustn", "mustn't", "needn", "needn't", "shan", "shan't", "shouldn",
	"shouldn't", "wasn", "wasn't", "weren", "weren't", "won", "won't", "wouldn", "wouldn't",
}
