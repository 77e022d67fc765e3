package textproc

import (
	"regexp"
	"strings"
)

var (
	sentenceSplitRe  = regexp.MustCompile(`[.!?]+`)
	paragraphSplitRe = regexp.MustCompile(`\n\s*\n`)
	wordRe           = regexp.MustCompile(`\b\w+\b`)
)

// Sentences splits text on sentence terminators and trims the pieces.
// Empty pieces are dropped.
func Sentences(text string) []string {
	if text == "" {
		return nil
	}
	parts := sentenceSplitRe.Split(text, -1)
	out := parts[:0:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Words returns the word tokens of text without lowercasing.
func Words(text string) []string {
	return wordRe.FindAllString(text, -1)
}

// SegmentByTopics splits text into topic segments at blank-line boundaries,
// keeping segments longer than minChars and capping the result at maxSegments.
func SegmentByTopics(text string, minChars, maxSegments int) []string {
	if text == "" || maxSegments <= 0 {
		return nil
	}
	var out []string
	for _, p := range paragraphSplitRe.Split(text, -1) {
		p = strings.TrimSpace(p)
		if len(p) > minChars {
			out = append(out, p)
		}
		if len(out) == maxSegments {
			break
		}
	}
	return out
}

var questionLeads = map[string]struct{}{
	"what": {}, "how": {}, "why": {}, "when": {}, "where": {}, "who": {}, "which": {},
}

// IsQuestion reports whether text reads as a question.
func IsQuestion(text string) bool {
	text = strings.TrimSpace(text)
	if strings.HasSuffix(text, "?") {
		return true
	}
	words := strings.Fields(strings.ToLower(text))
	if len(words) == 0 {
		return false
	}
	_, ok := questionLeads[words[0]]
	return ok
}
