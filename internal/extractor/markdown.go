package extractor

import (
	"bytes"
	"strings"

	"github.com/dgallion1/docsight/internal/fragment"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// markdownSource handles Markdown files using goldmark. ATX heading levels
// are mapped to synthetic font-size tiers so the heading classifier sees the
// same evidence it gets from PDFs.
type markdownSource struct{}

// syntheticHeadingSize maps a structural heading level onto the font-size
// tiers the classifier keys off (>16 -> H1, >14 -> H2, else H3).
func syntheticHeadingSize(level int) float64 {
	switch level {
	case 1:
		return 18
	case 2:
		return 15
	default:
		return fragment.DefaultFontSize
	}
}

func (s *markdownSource) extract(data []byte, filename string) ([]fragment.TextFragment, error) {
	md := goldmark.New()
	doc := md.Parser().Parse(text.NewReader(data))

	var frags []fragment.TextFragment
	lineNo := 0

	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		switch node := n.(type) {
		case *ast.Heading:
			title := strings.TrimSpace(string(nodeText(node, data)))
			if title == "" {
				continue
			}
			lineNo++
			frags = append(frags, lineFragment(title, 1, lineNo,
				syntheticHeadingSize(node.Level), fragment.FlagBold))
		default:
			t := strings.TrimSpace(string(nodeText(n, data)))
			if t == "" {
				continue
			}
			lineNo++
			frags = append(frags, lineFragment(t, 1, lineNo, fragment.DefaultFontSize, 0))
		}
	}

	return frags, nil
}

// nodeText gets the text content of a goldmark AST node.
func nodeText(n ast.Node, src []byte) []byte {
	var buf bytes.Buffer
	if n.Type() == ast.TypeBlock && n.Lines().Len() > 0 {
		lines := n.Lines()
		for i := 0; i < lines.Len(); i++ {
			line := lines.At(i)
			buf.Write(line.Value(src))
		}
		return bytes.TrimSpace(buf.Bytes())
	}
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*ast.Text); ok {
			buf.Write(t.Value(src))
			if t.HardLineBreak() || t.SoftLineBreak() {
				buf.WriteByte('\n')
			}
		} else {
			buf.Write(nodeText(c, src))
			buf.WriteByte(' ')
		}
	}
	return bytes.TrimSpace(buf.Bytes())
}
