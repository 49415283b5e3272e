package transcript

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

const maxLineBytes = 1024 * 1024

// speakerLabel matches a leading upper-case "SPEAKER NAME:" label of one to four words.
// Mixed-case text before a colon is speech.
var speakerLabel = regexp.MustCompile(`^([A-Z][A-Z0-9.'-]*(?:\s+[A-Z0-9.'-]+){0,3}):(?:\s+(.*))?$`)

// FormatFromPath picks the transcript format from the file extension.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		return FormatMarkdown
	default:
		return FormatText
	}
}

// Load reads and tokenizes the transcript at path.
func Load(path string) (*Transcript, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read transcript %s: %w", path, err)
	}

	t, err := Parse(bytes.NewReader(content), FormatFromPath(path))
	if err != nil {
		return nil, fmt.Errorf("failed to parse transcript %s: %w", path, err)
	}
	return t, nil
}

// Parse tokenizes a transcript read from r.
// Lines that start with an upper-case "SPEAKER:" label, or with the name of a
// speaker already seen, switch the current speaker; the label itself is not
// part of the token stream.
func Parse(r io.Reader, format Format) (*Transcript, error) {
	if format == FormatMarkdown {
		content, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("failed to read markdown: %w", err)
		}
		return parseMarkdown(content), nil
	}

	b := newBuilder()
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for scanner.Scan() {
		b.addLine(scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan transcript: %w", err)
	}
	return b.transcript(), nil
}

// builder accumulates tokens while tracking the current speaker.
type builder struct {
	tokens   []Token
	speakers []string
	seen     map[string]bool
	speaker  string
}

func newBuilder() *builder {
	return &builder{seen: make(map[string]bool)}
}

func (b *builder) setSpeaker(name string) {
	name = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(name), ":"))
	if name == "" {
		return
	}
	b.speaker = name
	if !b.seen[name] {
		b.seen[name] = true
		b.speakers = append(b.speakers, name)
	}
}

func (b *builder) addLine(line string) {
	line = strings.TrimSpace(line)
	if line == "" {
		return
	}
	if name, rest, ok := b.label(line); ok {
		b.setSpeaker(name)
		line = rest
	}
	b.addText(line)
}

// label splits a leading speaker label off line.
func (b *builder) label(line string) (name, rest string, ok bool) {
	if m := speakerLabel.FindStringSubmatch(line); m != nil {
		return m[1], m[2], true
	}
	if name, rest, found := strings.Cut(line, ":"); found && b.seen[strings.TrimSpace(name)] {
		return name, strings.TrimSpace(rest), true
	}
	return "", line, false
}

func (b *builder) addText(text string) {
	for _, field := range strings.Fields(text) {
		b.tokens = append(b.tokens, Token{
			Text:     field,
			Position: len(b.tokens),
			Speaker:  b.speaker,
		})
	}
}

func (b *builder) transcript() *Transcript {
	tokens := b.tokens
	if tokens == nil {
		tokens = []Token{}
	}
	return &Transcript{Tokens: tokens, Speakers: b.speakers}
}
