// Package section slices a document's fragment stream into titled sections
// ready for relevance ranking.
package section

import (
	"fmt"
	"strings"

	"github.com/dgallion1/docsight/internal/fragment"
	"github.com/dgallion1/docsight/internal/outline"
	"github.com/dgallion1/docsight/internal/textproc"
)

// Section is one titled span of document content.
type Section struct {
	Title     string `json:"title"`
	Level     string `json:"level"`
	Page      int    `json:"page"`
	Content   string `json:"content"`
	Document  string `json:"document"`
	WordCount int    `json:"word_count"`
}

// Subsection is one topic segment within a section.
type Subsection struct {
	Content  string `json:"content"`
	Document string `json:"document"`
	Page     int    `json:"page"`
	Index    int    `json:"subsection_index"`
}

// Config bounds section and subsection extraction.
type Config struct {
	// MinPageChars is the minimum cleaned length for a page to become a
	// section on the fallback path.
	MinPageChars int
	// MinSubsectionChars is the minimum length for a topic segment to
	// survive as a subsection.
	MinSubsectionChars int
	// MaxSubsections caps how many segments one section yields.
	MaxSubsections int
}

func DefaultConfig() Config {
	return Config{
		MinPageChars:       100,
		MinSubsectionChars: 50,
		MaxSubsections:     5,
	}
}

// Extract builds sections from the outline when one exists, otherwise falls
// back to per-page sections. Fragments must already be in document order.
func Extract(frags []fragment.TextFragment, doc outline.Document, docName string, cfg Config) []Section {
	if len(frags) == 0 {
		return nil
	}
	if len(doc.Outline) > 0 {
		return fromOutline(frags, doc.Outline, docName)
	}
	return fromPages(frags, docName, cfg)
}

// fromOutline carves one section per outline entry. Content starts after the
// fragment matching the entry's title and runs until the next entry's title
// shows up, or until the stream moves past the next entry's page.
func fromOutline(frags []fragment.TextFragment, entries []outline.Entry, docName string) []Section {
	sections := make([]Section, 0, len(entries))
	for i, entry := range entries {
		if entry.Text == "" {
			continue
		}
		var next *outline.Entry
		if i+1 < len(entries) {
			next = &entries[i+1]
		}
		content := sectionContent(frags, entry, next)
		if content == "" {
			continue
		}
		sections = append(sections, Section{
			Title:     entry.Text,
			Level:     entry.Level,
			Page:      entry.Page,
			Content:   content,
			Document:  docName,
			WordCount: len(strings.Fields(content)),
		})
	}
	return sections
}

func sectionContent(frags []fragment.TextFragment, entry outline.Entry, next *outline.Entry) string {
	var parts []string
	titleFound := false
	for _, f := range frags {
		if f.Page < entry.Page {
			continue
		}
		if !titleFound {
			if titleMatches(f.Text, entry.Text) {
				titleFound = true
			}
			continue
		}
		if next != nil {
			if titleMatches(f.Text, next.Text) {
				break
			}
			if f.Page > next.Page {
				break
			}
		}
		if t := textproc.Clean(f.Text); t != "" {
			parts = append(parts, t)
		}
	}
	return strings.Join(parts, "\n\n")
}

// titleMatches accepts an exact substring hit or a 70% word overlap, which
// tolerates the line merging and hyphenation that extraction introduces.
func titleMatches(fragText, title string) bool {
	fragClean := strings.ToLower(textproc.Clean(fragText))
	titleClean := strings.ToLower(title)
	if titleClean == "" || fragClean == "" {
		return false
	}
	if strings.Contains(fragClean, titleClean) {
		return true
	}
	words := strings.Fields(titleClean)
	if len(words) < 2 {
		return false
	}
	matched := 0
	for _, w := range words {
		if strings.Contains(fragClean, w) {
			matched++
		}
	}
	return float64(matched) >= float64(len(words))*0.7
}

// fromPages is the no-outline fallback: every page with enough content
// becomes its own level-1 section.
func fromPages(frags []fragment.TextFragment, docName string, cfg Config) []Section {
	byPage := map[int][]fragment.TextFragment{}
	var pageOrder []int
	for _, f := range frags {
		if _, ok := byPage[f.Page]; !ok {
			pageOrder = append(pageOrder, f.Page)
		}
		byPage[f.Page] = append(byPage[f.Page], f)
	}

	var sections []Section
	for _, page := range pageOrder {
		pageFrags := byPage[page]
		var parts []string
		for _, f := range pageFrags {
			if t := textproc.Clean(f.Text); t != "" {
				parts = append(parts, t)
			}
		}
		content := strings.Join(parts, "\n\n")
		if len(strings.TrimSpace(content)) <= cfg.MinPageChars {
			continue
		}
		title := pageTitle(pageFrags)
		if title == "" {
			title = fmt.Sprintf("Page %d Content", page)
		}
		sections = append(sections, Section{
			Title:     title,
			Level:     outline.LevelName(1),
			Page:      page,
			Content:   content,
			Document:  docName,
			WordCount: len(strings.Fields(content)),
		})
	}
	return sections
}

// pageTitle looks for a heading-shaped line near the top of the page.
func pageTitle(frags []fragment.TextFragment) string {
	limit := 5
	if len(frags) < limit {
		limit = len(frags)
	}
	for _, f := range frags[:limit] {
		text := strings.TrimSpace(f.Text)
		if len(text) <= 5 || len(text) >= 100 {
			continue
		}
		if looksLikeHeading(text, f) {
			return textproc.Clean(text)
		}
	}
	return ""
}

func looksLikeHeading(text string, f fragment.TextFragment) bool {
	if strings.HasSuffix(text, ".") || strings.HasSuffix(text, ",") {
		return false
	}
	first := rune(text[0])
	if first < 'A' || first > 'Z' {
		return false
	}
	if f.FontSize > fragment.DefaultFontSize || f.Flags&fragment.FlagBold != 0 {
		return true
	}
	return len(strings.Fields(text)) <= 10
}

// Subsections splits section content into topic segments.
func Subsections(content, docName string, page int, cfg Config) []Subsection {
	if content == "" {
		return nil
	}
	segments := textproc.SegmentByTopics(content, cfg.MinSubsectionChars, cfg.MaxSubsections)
	subs := make([]Subsection, 0, len(segments))
	for _, seg := range segments {
		seg = strings.TrimSpace(seg)
		if len(seg) <= cfg.MinSubsectionChars {
			continue
		}
		subs = append(subs, Subsection{
			Content:  seg,
			Document: docName,
			Page:     page,
			Index:    len(subs) + 1,
		})
	}
	return subs
}
