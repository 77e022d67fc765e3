// Package analyze orchestrates the full persona-driven pipeline over a
// document collection: profile, section extraction, ranking, refinement and
// output formatting.
package analyze

import (
	"context"
	"log/slog"
	"time"

	"github.com/dgallion1/docsight/internal/fragment"
	"github.com/dgallion1/docsight/internal/outline"
	"github.com/dgallion1/docsight/internal/persona"
	"github.com/dgallion1/docsight/internal/rank"
	"github.com/dgallion1/docsight/internal/section"
)

// Output caps.
const (
	MaxSections    = 15
	MaxSubsections = 20
	RefineTop      = 10
)

// Input is one extracted document entering analysis.
type Input struct {
	Document  string
	Fragments []fragment.TextFragment
}

// Analyzer runs the batch analysis.
type Analyzer struct {
	personaBuilder *persona.Builder
	outliner       *outline.Extractor
	ranker         *rank.Ranker
	sectionCfg     section.Config
	log            *slog.Logger
}

func NewAnalyzer(pb *persona.Builder, outliner *outline.Extractor, ranker *rank.Ranker, sectionCfg section.Config, log *slog.Logger) *Analyzer {
	return &Analyzer{
		personaBuilder: pb,
		outliner:       outliner,
		ranker:         ranker,
		sectionCfg:     sectionCfg,
		log:            log,
	}
}

// Analyze processes the whole collection. One bad document contributes no
// sections but never aborts the batch.
func (a *Analyzer) Analyze(ctx context.Context, inputs []Input, personaText, jobText string) Result {
	meta := Metadata{
		InputDocuments:      documentNames(inputs),
		Persona:             personaText,
		JobToBeDone:         jobText,
		ProcessingTimestamp: time.Now().UTC().Format(time.RFC3339),
	}

	profile := a.personaBuilder.Build(ctx, personaText, jobText)

	var allSections []section.Section
	for _, in := range inputs {
		secs := a.documentSections(ctx, in)
		allSections = append(allSections, secs...)
	}
	if len(allSections) == 0 {
		return Empty(meta)
	}

	ranked := a.ranker.Rank(ctx, allSections, profile)

	return Result{
		Metadata:           meta,
		ExtractedSections:  formatSections(ranked),
		SubsectionAnalysis: a.refineSubsections(ranked, profile),
	}
}

// documentSections extracts one document's sections behind a recover
// boundary so a malformed document cannot take the batch down.
func (a *Analyzer) documentSections(ctx context.Context, in Input) (secs []section.Section) {
	defer func() {
		if r := recover(); r != nil {
			a.log.Error("section extraction panicked, skipping document",
				"document", in.Document, "panic", r)
			secs = nil
		}
	}()
	doc := a.outliner.Extract(ctx, in.Fragments)
	return section.Extract(in.Fragments, doc, in.Document, a.sectionCfg)
}

func (a *Analyzer) refineSubsections(ranked []rank.ScoredSection, profile persona.Profile) []SubsectionEntry {
	entries := []SubsectionEntry{}
	top := ranked
	if len(top) > RefineTop {
		top = top[:RefineTop]
	}
	for _, sec := range top {
		for _, sub := range section.Subsections(sec.Content, sec.Document, sec.Page, a.sectionCfg) {
			refined := rank.Refine(sub.Content, profile)
			if refined == "" {
				continue
			}
			entries = append(entries, SubsectionEntry{
				Document:    sub.Document,
				PageNumber:  sub.Page,
				RefinedText: refined,
			})
			if len(entries) >= MaxSubsections {
				return entries
			}
		}
	}
	return entries
}

func formatSections(ranked []rank.ScoredSection) []ExtractedSection {
	out := []ExtractedSection{}
	for _, sec := range ranked {
		if len(out) >= MaxSections {
			break
		}
		out = append(out, ExtractedSection{
			Document:       sec.Document,
			SectionTitle:   sec.Title,
			ImportanceRank: sec.Rank,
			PageNumber:     sec.Page,
		})
	}
	return out
}

func documentNames(inputs []Input) []string {
	names := make([]string, len(inputs))
	for i, in := range inputs {
		names[i] = in.Document
	}
	return names
}
