package parser

import (
	"bytes"
	"io"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// MarkdownParser handles Markdown files using goldmark. Headings become
// bare lines with their markers stripped, list items become bullet lines,
// and other blocks become paragraphs.
type MarkdownParser struct{}

func (p *MarkdownParser) Parse(r io.Reader, _ string) (string, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}

	md := goldmark.New()
	reader := text.NewReader(src)
	doc := md.Parser().Parse(reader)

	var b strings.Builder
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		switch node := n.(type) {
		case *ast.Heading:
			b.WriteString("\n")
			b.WriteString(string(node.Text(src)))
			b.WriteString("\n\n")
		case *ast.List:
			for item := node.FirstChild(); item != nil; item = item.NextSibling() {
				t := extractText(item, src)
				if t != "" {
					b.WriteString("- ")
					b.WriteString(t)
					b.WriteString("\n")
				}
			}
			b.WriteString("\n")
		default:
			t := extractText(n, src)
			if t != "" {
				b.WriteString(t)
				b.WriteString("\n\n")
			}
		}
	}

	return normalize(b.String()), nil
}

// extractText gets the text content of a goldmark AST node. Blocks that
// carry source lines use them directly; container blocks recurse.
func extractText(n ast.Node, src []byte) string {
	var buf bytes.Buffer
	if n.Type() == ast.TypeBlock && n.Lines().Len() > 0 {
		lines := n.Lines()
		for i := 0; i < lines.Len(); i++ {
			line := lines.At(i)
			buf.Write(line.Value(src))
		}
		return strings.TrimSpace(buf.String())
	}
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*ast.Text); ok {
			buf.Write(t.Value(src))
			if t.HardLineBreak() || t.SoftLineBreak() {
				buf.WriteByte('\n')
			}
		} else {
			s := extractText(c, src)
			if s != "" {
				if buf.Len() > 0 {
					buf.WriteByte('\n')
				}
				buf.WriteString(s)
			}
		}
	}
	return strings.TrimSpace(buf.String())
}
