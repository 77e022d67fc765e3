package outline

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/dgallion1/docsight/internal/fragment"
	"github.com/dgallion1/docsight/internal/langmodel"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func frag(text string, fontSize float64) fragment.TextFragment {
	return fragment.TextFragment{Text: text, Page: 1, FontSize: fontSize}
}

func TestClassify_NumberedHeading(t *testing.T) {
	c := NewClassifier(langmodel.None(), testLogger())
	cand := c.Classify(context.Background(), frag("1. Introduction", 12))

	if !cand.IsHeading {
		t.Fatal("expected heading")
	}
	if cand.Confidence < 0.9 {
		t.Errorf("expected confidence >= 0.9, got %f", cand.Confidence)
	}
	if cand.Level != 1 {
		t.Errorf("expected level 1, got %d", cand.Level)
	}
}

func TestClassify_BulletExcluded(t *testing.T) {
	c := NewClassifier(langmodel.None(), testLogger())
	cand := c.Classify(context.Background(), frag("- see appendix", 12))

	if cand.IsHeading {
		t.Error("bullet lines must never be headings")
	}
	if cand.Confidence != 0 {
		t.Errorf("expected confidence 0, got %f", cand.Confidence)
	}
}

func TestClassify_HardExclusions(t *testing.T) {
	c := NewClassifier(langmodel.None(), testLogger())
	for _, text := range []string{
		"This sentence ends with a period.",
		"Trailing comma,",
		"Trailing colon:",
		"lowercase start",
		"* bullet",
		"ab", // below length floor
	} {
		cand := c.Classify(context.Background(), frag(text, 18))
		if cand.IsHeading {
			t.Errorf("expected %q excluded", text)
		}
	}
}

func TestClassify_StructuralHeading(t *testing.T) {
	c := NewClassifier(langmodel.None(), testLogger())
	cand := c.Classify(context.Background(), frag("Chapter 3 The Voyage Home", 12))

	if !cand.IsHeading {
		t.Fatal("expected heading")
	}
	if cand.Level != 1 {
		t.Errorf("structural headings are level 1, got %d", cand.Level)
	}
}

func TestClassify_CanonicalSection(t *testing.T) {
	c := NewClassifier(langmodel.None(), testLogger())
	cand := c.Classify(context.Background(), frag("Conclusion", 12))

	if !cand.IsHeading {
		t.Fatal("expected heading")
	}
	if cand.Confidence < 0.9 {
		t.Errorf("expected confidence >= 0.9, got %f", cand.Confidence)
	}
	if cand.Level != 1 {
		t.Errorf("expected level 1, got %d", cand.Level)
	}
}

func TestClassify_TitleCase(t *testing.T) {
	c := NewClassifier(langmodel.None(), testLogger())
	cand := c.Classify(context.Background(), frag("Market Trends Report", 12))

	if !cand.IsHeading {
		t.Fatal("expected title-case heading")
	}
	// 0.7 base plus the length bonus.
	if cand.Confidence < 0.7 {
		t.Errorf("expected confidence >= 0.7, got %f", cand.Confidence)
	}
}

func TestClassify_AllCapsLevel2(t *testing.T) {
	c := NewClassifier(langmodel.None(), testLogger())
	cand := c.Classify(context.Background(), frag("RISK FACTORS", 12))

	if !cand.IsHeading {
		t.Fatal("expected all-caps heading")
	}
	if cand.Level != 2 {
		t.Errorf("expected level 2, got %d", cand.Level)
	}
}

func TestClassify_NumberingDepthSetsLevel(t *testing.T) {
	c := NewClassifier(langmodel.None(), testLogger())

	cand := c.Classify(context.Background(), frag("2.3 Data Collection", 12))
	if !cand.IsHeading {
		t.Fatal("expected heading")
	}
	if cand.Level != 2 {
		t.Errorf("expected level 2 from numbering depth, got %d", cand.Level)
	}

	// Depth past three collapses to the maximum level.
	deep := c.Classify(context.Background(), frag("1.2.3.4 Deep Nesting", 12))
	if deep.IsHeading && deep.Level != MaxLevel {
		t.Errorf("expected level %d, got %d", MaxLevel, deep.Level)
	}
}

func TestClassify_FontSizeTiers(t *testing.T) {
	c := NewClassifier(langmodel.None(), testLogger())

	big := c.Classify(context.Background(), frag("Quarterly Report", 18))
	if big.Level != 1 {
		t.Errorf("font > 16 should be level 1, got %d", big.Level)
	}
	mid := c.Classify(context.Background(), frag("Quarterly Report", 15))
	if mid.Level != 2 {
		t.Errorf("font > 14 should be level 2, got %d", mid.Level)
	}
	small := c.Classify(context.Background(), frag("Quarterly Report", 12))
	if small.Level != MaxLevel {
		t.Errorf("default level should be %d, got %d", MaxLevel, small.Level)
	}
}

// classifyProvider stubs only the classification capability.
type classifyProvider struct {
	langmodel.Provider
	conf float64
	err  error
}

func (p classifyProvider) Available(c langmodel.Capability) bool {
	return c == langmodel.CapClassify
}

func (p classifyProvider) ClassifyHeading(ctx context.Context, text string) (float64, error) {
	return p.conf, p.err
}

func TestClassify_ModelOverridesRules(t *testing.T) {
	c := NewClassifier(classifyProvider{Provider: langmodel.None(), conf: 0.5}, testLogger())

	// Rules alone would score this well past the rule threshold, but the
	// model's 0.5 is below the model threshold.
	cand := c.Classify(context.Background(), frag("1. Introduction", 12))
	if cand.IsHeading {
		t.Error("model confidence below model threshold should reject")
	}

	c = NewClassifier(classifyProvider{Provider: langmodel.None(), conf: 0.8}, testLogger())
	cand = c.Classify(context.Background(), frag("an unlikely heading", 12))
	if cand.IsHeading {
		t.Error("hard exclusions must win even with a confident model")
	}
}

func TestClassify_ModelErrorFallsBackToRules(t *testing.T) {
	c := NewClassifier(classifyProvider{Provider: langmodel.None(), err: errors.New("boom")}, testLogger())
	cand := c.Classify(context.Background(), frag("1. Introduction", 12))
	if !cand.IsHeading {
		t.Error("expected rule-based result when the model errors")
	}
}
