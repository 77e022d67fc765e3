package outline

import (
	"context"
	"log/slog"
	"regexp"
	"strings"
	"unicode"

	"github.com/dgallion1/docsight/internal/fragment"
	"github.com/dgallion1/docsight/internal/langmodel"
)

// Decision thresholds. The model-based threshold is deliberately higher than
// the rule-based one because model confidence is noisier.
const (
	DefaultRuleThreshold  = 0.65
	DefaultModelThreshold = 0.75
)

var (
	bulletRe    = regexp.MustCompile(`^[-*•‣◦]`)
	numberedRe  = regexp.MustCompile(`^(\d+(?:\.\d+)*)\.?\s+([A-Z]\w*)`)
	structureRe = regexp.MustCompile(`(?i)^(chapter|section|part)\s+\d+`)
	titleCaseRe = regexp.MustCompile(`^[A-Z][a-z]*(?:\s+[A-Z][a-z]*)*$`)
)

// canonicalSections are heading titles recognized on exact match alone.
var canonicalSections = map[string]struct{}{
	"introduction": {},
	"conclusion":   {},
	"summary":      {},
	"abstract":     {},
	"methodology":  {},
	"results":      {},
	"discussion":   {},
}

// commonHeadingWords earn a small positive bonus when present.
var commonHeadingWords = []string{
	"overview", "background", "introduction", "conclusion", "summary",
	"references", "appendix", "acknowledgment", "contents",
}

// Classifier decides per fragment whether it is a heading, with what
// confidence, and at what level. An optional classification capability can
// override the rule-derived confidence.
type Classifier struct {
	provider langmodel.Provider
	log      *slog.Logger

	RuleThreshold  float64
	ModelThreshold float64
}

func NewClassifier(provider langmodel.Provider, log *slog.Logger) *Classifier {
	if provider == nil {
		provider = langmodel.None()
	}
	return &Classifier{
		provider:       provider,
		log:            log,
		RuleThreshold:  DefaultRuleThreshold,
		ModelThreshold: DefaultModelThreshold,
	}
}

// Classify evaluates one fragment. Exclusions always win: excluded text gets
// confidence 0 before any positive evidence is considered.
func (c *Classifier) Classify(ctx context.Context, f fragment.TextFragment) Candidate {
	cand := Candidate{TextFragment: f, Level: MaxLevel}

	text := strings.TrimSpace(f.Text)
	if len(text) < 3 || len(text) > 200 {
		return cand
	}
	if excluded(text) {
		return cand
	}

	confidence, patternLevel := ruleConfidence(text)
	threshold := c.RuleThreshold

	if c.provider.Available(langmodel.CapClassify) {
		if modelConf, err := c.provider.ClassifyHeading(ctx, text); err != nil {
			c.log.Warn("heading classification capability failed, using rules",
				"error", err)
		} else {
			confidence = modelConf
			threshold = c.ModelThreshold
		}
	}

	cand.Confidence = clamp01(confidence)
	cand.IsHeading = cand.Confidence >= threshold
	cand.Level = headingLevel(text, f.FontSize, patternLevel)
	return cand
}

// excluded applies the hard exclusions: bullet prefixes, sentence
// terminators, and lowercase starts are never headings.
func excluded(text string) bool {
	if bulletRe.MatchString(text) {
		return true
	}
	switch text[len(text)-1] {
	case '.', ',', ';', ':':
		return true
	}
	first := []rune(text)[0]
	return unicode.IsLower(first)
}

// ruleConfidence scores positive heading evidence and reports a level implied
// by pattern evidence (0 when no pattern fired). Pattern evidence outranks
// raw font size during level assignment.
func ruleConfidence(text string) (confidence float64, patternLevel int) {
	lower := strings.ToLower(text)
	words := strings.Fields(text)

	switch {
	case isNumberedHeading(text):
		confidence = 0.9
		patternLevel = numberingDepth(text)
	case structureRe.MatchString(text):
		confidence = 0.95
		patternLevel = 1
	case isCanonicalSection(lower):
		confidence = 0.9
		patternLevel = 1
	case titleCaseRe.MatchString(text) && len(words) <= 5:
		confidence = 0.7
	case isAllCaps(text) && len(text) >= 3 && len(text) <= 20:
		confidence = 0.6
		patternLevel = 2
	}

	if len(text) >= 5 && len(text) <= 60 && !strings.HasSuffix(text, ".") {
		confidence += 0.1
	}
	for _, w := range commonHeadingWords {
		if strings.Contains(lower, w) {
			confidence += 0.2
			break
		}
	}

	return confidence, patternLevel
}

// isNumberedHeading matches "N." / "N.N" numbering followed by a capitalized
// word, with no period elsewhere in the remainder.
func isNumberedHeading(text string) bool {
	m := numberedRe.FindStringSubmatch(text)
	if m == nil {
		return false
	}
	rest := text[len(m[1]):]
	rest = strings.TrimPrefix(rest, ".")
	return !strings.Contains(rest, ".")
}

// numberingDepth counts numbering components: "1." is depth 1, "1.2" depth 2.
// Capped at MaxLevel.
func numberingDepth(text string) int {
	m := numberedRe.FindStringSubmatch(text)
	if m == nil {
		return 0
	}
	depth := strings.Count(m[1], ".") + 1
	if depth > MaxLevel {
		depth = MaxLevel
	}
	return depth
}

func isCanonicalSection(lower string) bool {
	_, ok := canonicalSections[lower]
	return ok
}

func isAllCaps(text string) bool {
	hasLetter := false
	for _, r := range text {
		if unicode.IsLetter(r) {
			hasLetter = true
			if unicode.IsLower(r) {
				return false
			}
		}
	}
	return hasLetter
}

// headingLevel combines pattern evidence, font-size tiers, and keyword
// overrides. Pattern evidence wins over raw font size; no signal at all
// defaults to the deepest level.
func headingLevel(text string, fontSize float64, patternLevel int) int {
	if structureRe.MatchString(text) {
		return 1
	}
	if patternLevel > 0 {
		return patternLevel
	}
	if fontSize > 16 {
		return 1
	}
	if fontSize > 14 {
		return 2
	}
	return MaxLevel
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
