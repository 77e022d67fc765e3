package textproc

import (
	"regexp"
	"sort"
	"strings"
)

// TopKeywords extracts up to topN content words ranked by frequency.
// Ties are broken alphabetically so the result is deterministic.
func TopKeywords(text string, topN int) []string {
	if text == "" || topN <= 0 {
		return nil
	}

	counts := make(map[string]int)
	for _, w := range ContentWords(text) {
		counts[w]++
	}
	if len(counts) == 0 {
		return nil
	}

	words := make([]string, 0, len(counts))
	for w := range counts {
		words = append(words, w)
	}
	sort.Slice(words, func(i, j int) bool {
		if counts[words[i]] != counts[words[j]] {
			return counts[words[i]] > counts[words[j]]
		}
		return words[i] < words[j]
	})

	if len(words) > topN {
		words = words[:topN]
	}
	return words
}

var (
	capitalizedRunRe = regexp.MustCompile(`\b[A-Z][a-z]+(?:\s+[A-Z][a-z]+)*\b`)
	capitalizedOneRe = regexp.MustCompile(`\b[A-Z][a-z]+\b`)
	quotedRe         = regexp.MustCompile(`"([^"]*)"`)
)

// CapitalizedEntities extracts runs of capitalized words as candidate named
// entities. This is the rule-based stand-in for real entity recognition.
func CapitalizedEntities(text string) []string {
	return dedupe(capitalizedRunRe.FindAllString(text, -1))
}

// CapitalizedWords extracts single Capitalized-Word tokens, lower-cased.
func CapitalizedWords(text string) []string {
	matches := capitalizedOneRe.FindAllString(text, -1)
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, strings.ToLower(m))
	}
	return dedupe(out)
}

// QuotedPhrases extracts double-quoted substrings, lower-cased.
func QuotedPhrases(text string) []string {
	var out []string
	for _, m := range quotedRe.FindAllStringSubmatch(text, -1) {
		if p := strings.ToLower(strings.TrimSpace(m[1])); p != "" {
			out = append(out, p)
		}
	}
	return dedupe(out)
}

func dedupe(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(in))
	out := in[:0:0]
	for _, s := range in {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
