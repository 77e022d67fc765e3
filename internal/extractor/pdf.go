package extractor

import (
	"bytes"
	"fmt"
	"math"
	"strings"

	"github.com/dgallion1/docsight/internal/fragment"
	pdflib "github.com/ledongthuc/pdf"
)

// pdfSource reads positioned text from PDF content streams.
type pdfSource struct{}

// lineYTolerance groups glyph runs onto one line when their baselines are
// within this many points.
const lineYTolerance = 0.5

func (s *pdfSource) extract(data []byte, filename string) ([]fragment.TextFragment, error) {
	reader, err := pdflib.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}

	var frags []fragment.TextFragment
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		content := page.Content()
		frags = append(frags, groupLines(content.Text, i)...)
	}
	return frags, nil
}

// groupLines merges per-run PDF text into line fragments with a bounding box
// and the dominant font of the line.
func groupLines(texts []pdflib.Text, page int) []fragment.TextFragment {
	var frags []fragment.TextFragment

	var (
		b          strings.Builder
		minX, maxX float64
		lineY      float64
		fontSize   float64
		fontName   string
		lastEndX   float64
		open       bool
	)

	flush := func() {
		if !open {
			return
		}
		text := strings.TrimSpace(b.String())
		if text != "" {
			frags = append(frags, fragment.TextFragment{
				Text:     text,
				Page:     page,
				// PDF origin is bottom-left; flip Y so ascending Y0 is
				// top-to-bottom document order.
				BBox:     fragment.BBox{X0: minX, Y0: -lineY, X1: maxX, Y1: -lineY + fontSize},
				FontSize: fontSize,
				FontName: fontName,
				Flags:    styleFromFont(fontName),
			})
		}
		b.Reset()
		open = false
	}

	for _, t := range texts {
		if t.S == "" {
			continue
		}
		if open && math.Abs(t.Y-lineY) > lineYTolerance {
			flush()
		}
		if !open {
			lineY = t.Y
			minX = t.X
			maxX = t.X + t.W
			fontSize = t.FontSize
			fontName = t.Font
			lastEndX = t.X
			open = true
		}
		// Insert a space across visible horizontal gaps between runs.
		if b.Len() > 0 && t.X-lastEndX > 1.0 {
			b.WriteByte(' ')
		}
		b.WriteString(t.S)
		if t.X < minX {
			minX = t.X
		}
		if t.X+t.W > maxX {
			maxX = t.X + t.W
		}
		if t.FontSize > fontSize {
			fontSize = t.FontSize
			fontName = t.Font
		}
		lastEndX = t.X + t.W
	}
	flush()

	return frags
}

func styleFromFont(font string) fragment.StyleFlags {
	var flags fragment.StyleFlags
	lower := strings.ToLower(font)
	if strings.Contains(lower, "bold") {
		flags |= fragment.FlagBold
	}
	if strings.Contains(lower, "italic") || strings.Contains(lower, "oblique") {
		flags |= fragment.FlagItalic
	}
	return flags
}
