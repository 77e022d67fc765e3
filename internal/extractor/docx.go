package extractor

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/dgallion1/docsight/internal/fragment"
	"github.com/fumiama/go-docx"
)

// docxSource handles .docx files. Heading paragraph styles map to synthetic
// font-size tiers.
type docxSource struct{}

func (s *docxSource) extract(data []byte, filename string) ([]fragment.TextFragment, error) {
	doc, err := docx.Parse(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("parse docx: %w", err)
	}

	var frags []fragment.TextFragment
	lineNo := 0

	for _, item := range doc.Document.Body.Items {
		para, ok := item.(*docx.Paragraph)
		if !ok {
			continue
		}
		text := paragraphText(para)
		if text == "" {
			continue
		}
		lineNo++

		if level := paragraphHeadingLevel(para); level > 0 {
			frags = append(frags, lineFragment(text, 1, lineNo,
				syntheticHeadingSize(level), fragment.FlagBold))
		} else {
			frags = append(frags, lineFragment(text, 1, lineNo, fragment.DefaultFontSize, 0))
		}
	}

	return frags, nil
}

func paragraphHeadingLevel(para *docx.Paragraph) int {
	if para.Properties == nil || para.Properties.Style == nil {
		return 0
	}
	style := strings.ToLower(strings.ReplaceAll(para.Properties.Style.Val, " ", ""))
	switch style {
	case "heading1":
		return 1
	case "heading2":
		return 2
	case "heading3":
		return 3
	case "heading4":
		return 4
	case "heading5":
		return 5
	case "heading6":
		return 6
	}
	return 0
}

func paragraphText(para *docx.Paragraph) string {
	var buf bytes.Buffer
	for _, child := range para.Children {
		run, ok := child.(*docx.Run)
		if !ok {
			continue
		}
		for _, rc := range run.Children {
			if t, ok := rc.(*docx.Text); ok {
				buf.WriteString(t.Text)
			}
		}
	}
	return strings.TrimSpace(buf.String())
}
