package rank

import (
	"sort"
	"strings"

	"github.com/dgallion1/docsight/internal/persona"
	"github.com/dgallion1/docsight/internal/textproc"
)

const (
	refineMinSentenceLen = 20
	refineThreshold      = 0.3
	refineTopSentences   = 3
)

// Refine condenses subsection content to the sentences most relevant to the
// profile: score each sentence, keep those above the threshold, take the top
// three and join them back in original order. Returns "" when nothing
// qualifies.
func Refine(content string, profile persona.Profile) string {
	if content == "" {
		return ""
	}

	type scoredSentence struct {
		text  string
		pos   int
		score float64
	}

	var kept []scoredSentence
	for i, sentence := range textproc.Sentences(content) {
		sentence = strings.TrimSpace(sentence)
		if len(sentence) <= refineMinSentenceLen {
			continue
		}
		score := sentenceRelevance(sentence, profile)
		if score > refineThreshold {
			kept = append(kept, scoredSentence{text: sentence, pos: i, score: score})
		}
	}
	if len(kept) == 0 {
		return ""
	}

	sort.SliceStable(kept, func(i, j int) bool { return kept[i].score > kept[j].score })
	if len(kept) > refineTopSentences {
		kept = kept[:refineTopSentences]
	}
	sort.Slice(kept, func(i, j int) bool { return kept[i].pos < kept[j].pos })

	parts := make([]string, len(kept))
	for i, s := range kept {
		parts[i] = s.text
	}
	refined := strings.Join(parts, ". ")
	if !strings.HasSuffix(refined, ".") {
		refined += "."
	}
	return refined
}

func sentenceRelevance(sentence string, profile persona.Profile) float64 {
	lower := strings.ToLower(sentence)
	score := 0.0

	for _, kw := range profile.Keywords {
		if strings.Contains(lower, strings.ToLower(kw)) {
			score += 0.2
		}
	}
	for _, kw := range profile.JobKeywords {
		if strings.Contains(lower, strings.ToLower(kw)) {
			score += 0.3
		}
	}
	if len(sentence) > 50 {
		score += 0.1
	}
	for _, marker := range conclusionMarkers {
		if strings.Contains(lower, marker) {
			score += 0.2
			break
		}
	}

	if score > 1 {
		score = 1
	}
	return score
}
