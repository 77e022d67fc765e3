package rank

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/dgallion1/docsight/internal/langmodel"
	"github.com/dgallion1/docsight/internal/persona"
	"github.com/dgallion1/docsight/internal/section"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testScorer() *Scorer {
	return NewScorer(langmodel.None(), DefaultWeights(), testLogger())
}

func analystProfile() persona.Profile {
	return persona.Profile{
		Role:        "analyst",
		Domain:      "finance",
		JobType:     "review",
		Keywords:    []string{"revenue", "market", "investment"},
		JobKeywords: []string{"trends", "performance"},
	}
}

func financeSection() section.Section {
	return section.Section{
		Title:     "Revenue Analysis",
		Level:     "H1",
		Page:      2,
		Document:  "report.pdf",
		Content:   "Revenue grew 12% on strong market performance. Investment in new data metrics showed clear trends across financial benchmarks.",
		WordCount: 19,
	}
}

func TestScore_Range(t *testing.T) {
	s := testScorer()
	sections := []section.Section{
		financeSection(),
		{Title: "X", Level: "H3", Page: 40, Content: "unrelated filler text", WordCount: 3},
		{Title: "", Level: "", Page: 1, Content: "some words 123 here. What about questions?", WordCount: 7},
	}
	for _, sec := range sections {
		got := s.Score(context.Background(), sec, analystProfile())
		if got < 0 || got > 1 {
			t.Errorf("score %f out of range for %q", got, sec.Title)
		}
	}
}

func TestScore_EmptyContentIsZero(t *testing.T) {
	s := testScorer()
	got := s.Score(context.Background(), section.Section{Title: "T"}, analystProfile())
	if got != 0 {
		t.Errorf("expected 0 for empty content, got %f", got)
	}
}

func TestScore_RelevantOutscoresIrrelevant(t *testing.T) {
	s := testScorer()
	p := analystProfile()

	relevant := s.Score(context.Background(), financeSection(), p)
	irrelevant := s.Score(context.Background(), section.Section{
		Title:     "Garden Maintenance",
		Level:     "H3",
		Page:      30,
		Content:   "Water the roses weekly and prune the hedges in spring.",
		WordCount: 10,
	}, p)

	if relevant <= irrelevant {
		t.Errorf("expected relevant (%f) > irrelevant (%f)", relevant, irrelevant)
	}
}

func TestScore_UnknownVocabulariesContributeZero(t *testing.T) {
	// A profile whose role, domain and job type have no scoring vocabulary
	// must not produce a semantic contribution.
	p := persona.Profile{Role: "general", Domain: "general", JobType: "plan"}
	got := vocabularySemanticScore(financeSection(), p)
	if got != 0 {
		t.Errorf("expected 0 semantic score for empty vocabularies, got %f", got)
	}
}

func TestKeywordScore_EmptyProfileIsZero(t *testing.T) {
	got := keywordScore(financeSection(), persona.Profile{})
	if got != 0 {
		t.Errorf("expected 0, got %f", got)
	}
}

func TestKeywordScore_Capped(t *testing.T) {
	p := persona.Profile{
		Keywords:        []string{"revenue"},
		JobKeywords:     []string{"market"},
		SuccessCriteria: []string{"revenue trends"},
	}
	got := keywordScore(financeSection(), p)
	if got > 1.3 {
		t.Errorf("keyword score %f above component caps", got)
	}
	if got <= 0 {
		t.Errorf("expected positive keyword score, got %f", got)
	}
}

func TestStructuralScore_LevelAndPage(t *testing.T) {
	early := structuralScore(section.Section{Level: "H1", Page: 1, WordCount: 100})
	late := structuralScore(section.Section{Level: "H3", Page: 20, WordCount: 100})
	if early <= late {
		t.Errorf("expected early H1 (%f) > late H3 (%f)", early, late)
	}

	// Page decay bottoms out instead of going negative.
	far := structuralScore(section.Section{Level: "H3", Page: 100, WordCount: 2000})
	if far < 0 {
		t.Errorf("structural score went negative: %f", far)
	}
}

func TestStructuralScore_WordCountBands(t *testing.T) {
	moderate := structuralScore(section.Section{Level: "H2", Page: 1, WordCount: 200})
	huge := structuralScore(section.Section{Level: "H2", Page: 1, WordCount: 5000})
	tiny := structuralScore(section.Section{Level: "H2", Page: 1, WordCount: 10})
	if moderate <= huge {
		t.Errorf("expected moderate length (%f) > very long (%f)", moderate, huge)
	}
	if huge <= tiny {
		t.Errorf("expected very long (%f) > trivially short (%f)", huge, tiny)
	}
}

func TestQualityScore_Range(t *testing.T) {
	contents := []string{
		"",
		"word",
		"Table 3 shows results: 45% of 120 samples. A finding worth noting?",
		"repeat repeat repeat repeat repeat repeat repeat repeat",
	}
	for _, content := range contents {
		got := qualityScore(content)
		if got < 0 || got > 1 {
			t.Errorf("quality score %f out of range for %q", got, content)
		}
	}
}

func TestQualityScore_EvidentiaryMarkers(t *testing.T) {
	with := qualityScore("The table shows a clear result across samples.")
	without := qualityScore("The sky was blue and the day was long and calm.")
	if with <= without {
		t.Errorf("expected marker content (%f) > plain content (%f)", with, without)
	}
}

// similarityProvider stubs the similarity capability.
type similarityProvider struct {
	langmodel.Provider
	sim float64
}

func (p similarityProvider) Available(c langmodel.Capability) bool {
	return c == langmodel.CapSimilarity
}

func (p similarityProvider) Similarity(ctx context.Context, a, b string) (float64, error) {
	return p.sim, nil
}

func TestSemanticScore_UsesProviderWhenAvailable(t *testing.T) {
	s := NewScorer(similarityProvider{Provider: langmodel.None(), sim: 0.9}, DefaultWeights(), testLogger())
	got := s.semanticScore(context.Background(), financeSection(), persona.Profile{RawPersona: "Analyst", RawJob: "review"})
	if got != 0.9 {
		t.Errorf("expected provider similarity 0.9, got %f", got)
	}
}
