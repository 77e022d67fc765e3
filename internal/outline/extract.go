package outline

import (
	"context"
	"log/slog"

	"github.com/dgallion1/docsight/internal/fragment"
)

// Extractor runs the full outline reconstruction: classify fragments, build
// the hierarchy, flatten, and pick a title.
type Extractor struct {
	classifier *Classifier
	log        *slog.Logger
}

func NewExtractor(classifier *Classifier, log *slog.Logger) *Extractor {
	return &Extractor{classifier: classifier, log: log}
}

// Extract produces the outline document for one fragment stream. It always
// returns a valid Document; empty input yields an empty title and outline.
func (e *Extractor) Extract(ctx context.Context, frags []fragment.TextFragment) Document {
	if len(frags) == 0 {
		return Document{Title: "", Outline: []Entry{}}
	}

	ordered := make([]fragment.TextFragment, len(frags))
	copy(ordered, frags)
	fragment.SortByPosition(ordered)

	cands := e.ClassifyAll(ctx, ordered)
	roots := Build(cands)

	doc := Document{
		Title:   Title(cands, ordered),
		Outline: Flatten(roots),
	}
	e.log.Debug("outline extracted", "headings", len(doc.Outline), "title", doc.Title)
	return doc
}

// ClassifyAll evaluates every fragment in order.
func (e *Extractor) ClassifyAll(ctx context.Context, frags []fragment.TextFragment) []Candidate {
	cands := make([]Candidate, 0, len(frags))
	for _, f := range frags {
		cands = append(cands, e.classifier.Classify(ctx, f))
	}
	return cands
}
