package transcript

// Token is a single whitespace-delimited word from a transcript.
type Token struct {
	Text     string // Word text, punctuation kept
	Position int    // Position in the token stream (starts at 0)
	Speaker  string // Speaker of the utterance the token belongs to, empty if unknown
}

// Transcript is the ordered token stream of one transcript plus its speakers.
type Transcript struct {
	Tokens   []Token
	Speakers []string // In order of first appearance
}

// Words returns the token texts in stream order.
func (t *Transcript) Words() []string {
	words := make([]string, len(t.Tokens))
	for i, tok := range t.Tokens {
		words[i] = tok.Text
	}
	return words
}

// Format identifies how a transcript source is encoded.
type Format int

const (
	// FormatText is a plain, line-delimited transcript.
	FormatText Format = iota
	// FormatMarkdown is a markdown transcript; headings name speakers.
	FormatMarkdown
)

func (f Format) String() string {
	switch f {
	case FormatMarkdown:
		return "markdown"
	default:
		return "text"
	}
}
