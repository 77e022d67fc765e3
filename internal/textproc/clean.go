package textproc

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	unsupportedRe = regexp.MustCompile(`[^\w\s.,!?\-:;()\[\]"'/]`)
	multiSpaceRe  = regexp.MustCompile(`\s+`)
)

// Clean normalizes whitespace and strips symbols outside the supported set,
// keeping basic punctuation.
func Clean(text string) string {
	if text == "" {
		return ""
	}
	text = unsupportedRe.ReplaceAllString(text, " ")
	text = multiSpaceRe.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// Tokenize lowercases text and splits it into alphanumeric word tokens.
func Tokenize(text string) []string {
	if text == "" {
		return nil
	}
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range strings.ToLower(text) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		} else {
			b.WriteRune(' ')
		}
	}
	return strings.Fields(b.String())
}

var stopwords = map[string]struct{}{
	"the": {}, "a": {}, "an": {}, "and": {}, "or": {}, "but": {}, "in": {},
	"on": {}, "at": {}, "to": {}, "for": {}, "of": {}, "with": {}, "by": {},
	"is": {}, "are": {}, "was": {}, "were": {}, "be": {}, "been": {},
	"have": {}, "has": {}, "had": {}, "do": {}, "does": {}, "did": {},
	"will": {}, "would": {}, "could": {}, "should": {}, "may": {},
	"might": {}, "must": {}, "can": {}, "this": {}, "that": {},
	"these": {}, "those": {}, "i": {}, "you": {}, "he": {}, "she": {},
	"it": {}, "we": {}, "they": {}, "me": {}, "him": {}, "her": {},
	"us": {}, "them": {},
}

// IsStopword reports whether a lowercase token is a common stop word.
func IsStopword(tok string) bool {
	_, ok := stopwords[tok]
	return ok
}

// ContentWords returns the tokens of text with stop words and very short
// tokens removed.
func ContentWords(text string) []string {
	toks := Tokenize(text)
	out := toks[:0:0]
	for _, t := range toks {
		if len(t) > 2 && !IsStopword(t) {
			out = append(out, t)
		}
	}
	return out
}
