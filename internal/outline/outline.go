// Package outline reconstructs a document's heading hierarchy from the flat
// fragment stream produced by extraction.
package outline

import "github.com/dgallion1/docsight/internal/fragment"

// Candidate is a fragment evaluated for heading-ness.
type Candidate struct {
	fragment.TextFragment

	IsHeading  bool
	Confidence float64
	Level      int
}

// Node is one section in the reconstructed hierarchy. Sibling roots form a
// forest when a document has multiple top-level headings.
type Node struct {
	Title       string
	Level       int
	Page        int
	Subsections []*Node
}

// Entry is one row of the flat serialized outline.
type Entry struct {
	Level string `json:"level"`
	Text  string `json:"text"`
	Page  int    `json:"page"`
}

// Document is the serializable outline of one document: the title plus the
// flat H1/H2/H3 entry list in document order.
type Document struct {
	Title   string  `json:"title"`
	Outline []Entry `json:"outline"`
}

// MaxLevel caps outline depth; deeper numbering collapses to H3.
const MaxLevel = 3

var levelNames = map[int]string{1: "H1", 2: "H2", 3: "H3"}

// LevelName renders a numeric level as its serialized form, capped at H3.
func LevelName(level int) string {
	if level < 1 {
		level = 1
	}
	if level > MaxLevel {
		level = MaxLevel
	}
	return levelNames[level]
}
