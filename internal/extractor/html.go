package extractor

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/dgallion1/docsight/internal/fragment"
	"golang.org/x/net/html"
)

// htmlSource handles HTML files. Heading tags map to synthetic font-size
// tiers; paragraph-level elements become body fragments.
type htmlSource struct{}

func (s *htmlSource) extract(data []byte, filename string) ([]fragment.TextFragment, error) {
	doc, err := html.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	var frags []fragment.TextFragment
	lineNo := 0

	emit := func(text string, fontSize float64, flags fragment.StyleFlags) {
		text = strings.TrimSpace(text)
		if text == "" {
			return
		}
		lineNo++
		frags = append(frags, lineFragment(text, 1, lineNo, fontSize, flags))
	}

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			if level := headingTagLevel(n.Data); level > 0 {
				emit(textContent(n), syntheticHeadingSize(level), fragment.FlagBold)
				return
			}
			switch n.Data {
			case "script", "style", "nav", "footer", "header":
				return
			case "p", "li", "td", "blockquote", "pre":
				emit(textContent(n), fragment.DefaultFontSize, 0)
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	if body := findElement(doc, "body"); body != nil {
		walk(body)
	} else {
		walk(doc)
	}

	return frags, nil
}

func headingTagLevel(tag string) int {
	switch tag {
	case "h1":
		return 1
	case "h2":
		return 2
	case "h3":
		return 3
	case "h4":
		return 4
	case "h5":
		return 5
	case "h6":
		return 6
	}
	return 0
}

func textContent(n *html.Node) string {
	var buf strings.Builder
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	extract(n)
	return strings.TrimSpace(buf.String())
}

func findElement(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tag {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, tag); found != nil {
			return found
		}
	}
	return nil
}
