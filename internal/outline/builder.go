package outline

import (
	"sort"
	"strings"

	"github.com/dgallion1/docsight/internal/fragment"
)

// Build assembles classified heading candidates into a forest of nodes.
//
// Candidates are processed in page/position order against an explicit
// open-ancestor stack: attaching a level-N heading first closes every open
// node at level >= N, then hangs the heading off the new stack top (or makes
// it a root). Level gaps never lose nodes: an orphaned H3 with no open H2
// attaches to the nearest open H1 or becomes a root.
func Build(cands []Candidate) []*Node {
	headings := make([]Candidate, 0, len(cands))
	for _, c := range cands {
		if c.IsHeading {
			headings = append(headings, c)
		}
	}
	if len(headings) == 0 {
		return nil
	}

	sort.SliceStable(headings, func(i, j int) bool {
		if headings[i].Page != headings[j].Page {
			return headings[i].Page < headings[j].Page
		}
		return headings[i].BBox.Y0 < headings[j].BBox.Y0
	})

	// Arena allocation keeps node ownership in one place; the stack holds
	// indexes into it.
	arena := make([]Node, len(headings))
	var roots []*Node
	var stack []int

	for i, h := range headings {
		level := h.Level
		if level < 1 {
			level = 1
		}
		if level > MaxLevel {
			level = MaxLevel
		}
		arena[i] = Node{
			Title: strings.TrimSpace(h.Text),
			Level: level,
			Page:  h.Page,
		}

		for len(stack) > 0 && arena[stack[len(stack)-1]].Level >= level {
			stack = stack[:len(stack)-1]
		}
		if len(stack) == 0 {
			roots = append(roots, &arena[i])
		} else {
			parent := &arena[stack[len(stack)-1]]
			parent.Subsections = append(parent.Subsections, &arena[i])
		}
		stack = append(stack, i)
	}

	return roots
}

// Flatten serializes a forest into the flat outline entry list in document
// order (depth-first).
func Flatten(roots []*Node) []Entry {
	entries := []Entry{}
	var walk func(nodes []*Node)
	walk = func(nodes []*Node) {
		for _, n := range nodes {
			entries = append(entries, Entry{
				Level: LevelName(n.Level),
				Text:  n.Title,
				Page:  n.Page,
			})
			walk(n.Subsections)
		}
	}
	walk(roots)
	return entries
}

// CountNodes returns the total node count of a forest.
func CountNodes(roots []*Node) int {
	count := 0
	var walk func(nodes []*Node)
	walk = func(nodes []*Node) {
		for _, n := range nodes {
			count++
			walk(n.Subsections)
		}
	}
	walk(roots)
	return count
}

// Title picks a document title: the most senior heading (smallest level,
// earliest page/position wins ties), falling back to the first non-empty
// fragment verbatim when nothing classified as a heading.
func Title(cands []Candidate, frags []fragment.TextFragment) string {
	var best *Candidate
	for i := range cands {
		c := &cands[i]
		if !c.IsHeading {
			continue
		}
		if best == nil || c.Level < best.Level {
			best = c
		}
	}
	if best != nil {
		return strings.TrimSpace(best.Text)
	}

	for _, f := range frags {
		if t := strings.TrimSpace(f.Text); t != "" {
			return t
		}
	}
	return ""
}
