package transcript

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

var markdownParser = goldmark.New()

// parseMarkdown walks the markdown AST and feeds block text into the builder.
// Headings name the speaker of the blocks that follow them.
func parseMarkdown(content []byte) *Transcript {
	b := newBuilder()
	if len(content) == 0 {
		return b.transcript()
	}

	doc := markdownParser.Parser().Parse(text.NewReader(content))

	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch node := n.(type) {
		case *ast.Heading:
			b.setSpeaker(extractText(node, content))
			return ast.WalkSkipChildren, nil
		case *ast.Paragraph, *ast.TextBlock:
			for _, line := range strings.Split(extractText(node, content), "\n") {
				b.addLine(line)
			}
			return ast.WalkSkipChildren, nil
		case *ast.FencedCodeBlock, *ast.CodeBlock, *ast.HTMLBlock, *ast.ThematicBreak:
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})

	return b.transcript()
}

// extractText collects the inline text of a block, keeping line breaks.
func extractText(n ast.Node, content []byte) string {
	var sb strings.Builder

	_ = ast.Walk(n, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch v := node.(type) {
		case *ast.Text:
			sb.Write(v.Segment.Value(content))
			if v.SoftLineBreak() || v.HardLineBreak() {
				sb.WriteByte('\n')
			}
		case *ast.String:
			sb.Write(v.Value)
		}
		return ast.WalkContinue, nil
	})

	return strings.TrimSpace(sb.String())
}
