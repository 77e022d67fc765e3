package rank

import (
	"context"
	"log/slog"
	"strings"

	"github.com/dgallion1/docsight/internal/langmodel"
	"github.com/dgallion1/docsight/internal/persona"
	"github.com/dgallion1/docsight/internal/section"
	"github.com/dgallion1/docsight/internal/textproc"
)

// Weights blend the four relevance signals. They should sum to 1.
type Weights struct {
	Semantic   float64
	Keyword    float64
	Structural float64
	Quality    float64
}

func DefaultWeights() Weights {
	return Weights{Semantic: 0.4, Keyword: 0.25, Structural: 0.2, Quality: 0.15}
}

// Scorer computes a relevance score in [0,1] for one section against a
// persona profile. A language model provider improves the semantic signal
// when available; everything else is deterministic.
type Scorer struct {
	provider langmodel.Provider
	weights  Weights
	log      *slog.Logger
}

func NewScorer(provider langmodel.Provider, weights Weights, log *slog.Logger) *Scorer {
	return &Scorer{provider: provider, weights: weights, log: log}
}

// semanticSampleLen bounds how much section text is sent to the provider.
const semanticSampleLen = 1500

// Score combines the weighted signals, capped at 1. Sections with no
// content score zero.
func (s *Scorer) Score(ctx context.Context, sec section.Section, profile persona.Profile) float64 {
	if sec.Content == "" {
		return 0
	}
	total := s.semanticScore(ctx, sec, profile)*s.weights.Semantic +
		keywordScore(sec, profile)*s.weights.Keyword +
		structuralScore(sec)*s.weights.Structural +
		qualityScore(sec.Content)*s.weights.Quality
	if total > 1 {
		total = 1
	}
	return total
}

func (s *Scorer) semanticScore(ctx context.Context, sec section.Section, profile persona.Profile) float64 {
	if s.provider.Available(langmodel.CapSimilarity) {
		sample := sec.Title + " " + sec.Content
		if len(sample) > semanticSampleLen {
			sample = sample[:semanticSampleLen]
		}
		sim, err := s.provider.Similarity(ctx, profile.RawPersona+" "+profile.RawJob, sample)
		if err == nil {
			return clamp01(sim)
		}
		s.log.Warn("model similarity failed, using vocabulary overlap", "error", err)
	}
	return vocabularySemanticScore(sec, profile)
}

// vocabularySemanticScore approximates semantic fit from role, domain and
// job-type vocabulary overlap. Each component is capped so a section cannot
// max the signal from one vocabulary alone.
func vocabularySemanticScore(sec section.Section, profile persona.Profile) float64 {
	fullText := strings.ToLower(sec.Title + " " + sec.Content)
	score := 0.0
	score += overlapScore(fullText, roleKeywords[profile.Role], 0.4)
	score += overlapScore(fullText, domainKeywords[profile.Domain], 0.3)
	score += overlapScore(fullText, jobTypeKeywords[profile.JobType], 0.3)
	return score
}

// overlapScore scales the fraction of vocabulary terms present by cap. An
// empty vocabulary contributes nothing.
func overlapScore(text string, vocab []string, cap float64) float64 {
	if len(vocab) == 0 {
		return 0
	}
	matches := 0
	for _, kw := range vocab {
		if strings.Contains(text, kw) {
			matches++
		}
	}
	v := float64(matches) / float64(len(vocab)) * cap
	if v > cap {
		v = cap
	}
	return v
}

func keywordScore(sec section.Section, profile persona.Profile) float64 {
	fullText := strings.ToLower(sec.Title + " " + sec.Content)
	score := 0.0

	if len(profile.Keywords) > 0 {
		matches := 0
		for _, kw := range profile.Keywords {
			if strings.Contains(fullText, strings.ToLower(kw)) {
				matches++
			}
		}
		score += capped(float64(matches)/float64(len(profile.Keywords))*0.5, 0.5)
	}
	if len(profile.JobKeywords) > 0 {
		matches := 0
		for _, kw := range profile.JobKeywords {
			if strings.Contains(fullText, strings.ToLower(kw)) {
				matches++
			}
		}
		score += capped(float64(matches)/float64(len(profile.JobKeywords))*0.5, 0.5)
	}
	if len(profile.SuccessCriteria) > 0 {
		matches := 0
		for _, criterion := range profile.SuccessCriteria {
			for _, word := range strings.Fields(strings.ToLower(criterion)) {
				if strings.Contains(fullText, word) {
					matches++
					break
				}
			}
		}
		score += capped(float64(matches)/float64(len(profile.SuccessCriteria))*0.3, 0.3)
	}
	return score
}

func structuralScore(sec section.Section) float64 {
	score := 0.0

	switch sec.Level {
	case "H1":
		score += 0.4
	case "H2":
		score += 0.3
	case "H3":
		score += 0.2
	}

	// Earlier pages tend to matter more; decay over the first ten pages.
	pageScore := 1 - float64(sec.Page-1)/10
	if pageScore < 0 {
		pageScore = 0
	}
	score += pageScore * 0.3

	switch {
	case sec.WordCount >= 50 && sec.WordCount <= 500:
		score += 0.3
	case sec.WordCount > 500 && sec.WordCount <= 1000:
		score += 0.2
	case sec.WordCount > 1000:
		score += 0.1
	}

	return score
}

func qualityScore(content string) float64 {
	if content == "" {
		return 0
	}
	score := 0.0
	words := strings.Fields(strings.ToLower(content))
	wordCount := len(words)

	if wordCount > 0 {
		unique := map[string]struct{}{}
		numeric := 0
		for _, w := range words {
			unique[w] = struct{}{}
			if hasDigit(w) {
				numeric++
			}
		}
		score += capped(float64(len(unique))/float64(wordCount)*2, 0.3)
		if numeric > 0 {
			score += capped(float64(numeric)/float64(wordCount)*10, 0.2)
		}
	}

	score += textproc.Complexity(content) * 0.2

	lower := strings.ToLower(content)
	for _, marker := range evidentiaryMarkers {
		if strings.Contains(lower, marker) {
			score += 0.2
			break
		}
	}
	if textproc.IsQuestion(content) {
		score += 0.1
	}

	if score > 1 {
		score = 1
	}
	return score
}

func hasDigit(s string) bool {
	for _, r := range s {
		if r >= '0' && r <= '9' {
			return true
		}
	}
	return false
}

func capped(v, cap float64) float64 {
	if v > cap {
		return cap
	}
	return v
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
