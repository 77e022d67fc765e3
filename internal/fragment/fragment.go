package fragment

import "sort"

// StyleFlags carries font style bits for a text fragment.
type StyleFlags uint8

const (
	FlagBold StyleFlags = 1 << iota
	FlagItalic
)

func (f StyleFlags) Bold() bool   { return f&FlagBold != 0 }
func (f StyleFlags) Italic() bool { return f&FlagItalic != 0 }

// BBox is a fragment's bounding box in page coordinates.
type BBox struct {
	X0, Y0, X1, Y1 float64
}

// TextFragment is one positioned, font-annotated span of text, the atomic
// unit produced by text extraction. Fragments are created once by an
// extractor and treated as immutable afterwards.
type TextFragment struct {
	Text     string
	Page     int
	BBox     BBox
	FontSize float64
	FontName string
	Flags    StyleFlags
}

// DefaultFontSize is assumed when a source format carries no font metrics.
const DefaultFontSize = 12.0

// Stats summarizes an extraction run.
type Stats struct {
	Fragments   int     `json:"fragments"`
	AvgFontSize float64 `json:"avg_font_size"`
	Pages       int     `json:"pages"`
}

// Summarize computes document statistics over a fragment list.
func Summarize(frags []TextFragment) Stats {
	if len(frags) == 0 {
		return Stats{AvgFontSize: DefaultFontSize}
	}

	var sum float64
	pages := make(map[int]struct{})
	for _, f := range frags {
		sum += f.FontSize
		pages[f.Page] = struct{}{}
	}
	return Stats{
		Fragments:   len(frags),
		AvgFontSize: sum / float64(len(frags)),
		Pages:       len(pages),
	}
}

// SortByPosition orders fragments into document order: page ascending, then
// vertical position ascending, then horizontal position. Coordinates grow
// down the page.
func SortByPosition(frags []TextFragment) {
	sort.SliceStable(frags, func(i, j int) bool {
		if frags[i].Page != frags[j].Page {
			return frags[i].Page < frags[j].Page
		}
		if frags[i].BBox.Y0 != frags[j].BBox.Y0 {
			return frags[i].BBox.Y0 < frags[j].BBox.Y0
		}
		return frags[i].BBox.X0 < frags[j].BBox.X0
	})
}
