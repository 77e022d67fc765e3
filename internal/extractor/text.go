package extractor

import (
	"bufio"
	"bytes"
	"strings"

	"github.com/dgallion1/docsight/internal/fragment"
)

// textSource handles plain text files. Each non-empty line becomes one
// fragment with synthetic line positions and the default font size.
type textSource struct{}

const syntheticLineHeight = 20.0

func (s *textSource) extract(data []byte, filename string) ([]fragment.TextFragment, error) {
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var frags []fragment.TextFragment
	lineNo := 0
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		lineNo++
		if line == "" {
			continue
		}
		frags = append(frags, lineFragment(line, 1, lineNo, fragment.DefaultFontSize, 0))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return frags, nil
}

// lineFragment builds a fragment with a synthetic bounding box for sources
// that carry no real layout.
func lineFragment(text string, page, lineNo int, fontSize float64, flags fragment.StyleFlags) fragment.TextFragment {
	y := float64(lineNo-1) * syntheticLineHeight
	return fragment.TextFragment{
		Text:     text,
		Page:     page,
		BBox:     fragment.BBox{X0: 0, Y0: y, X1: 100, Y1: y + syntheticLineHeight},
		FontSize: fontSize,
		FontName: "default",
		Flags:    flags,
	}
}
