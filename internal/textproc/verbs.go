package textproc

import (
	"regexp"
	"sort"
	"strings"
)

// actionVerbRes covers common task verbs across tenses. This is the
// deterministic fallback when no verb-tagging capability is available.
var actionVerbRes = []*regexp.Regexp{
	regexp.MustCompile(`\b(analyze|analyzing|analyzed)\b`),
	regexp.MustCompile(`\b(study|studying|studied)\b`),
	regexp.MustCompile(`\b(research|researching|researched)\b`),
	regexp.MustCompile(`\b(review|reviewing|reviewed)\b`),
	regexp.MustCompile(`\b(examine|examining|examined)\b`),
	regexp.MustCompile(`\b(investigate|investigating|investigated)\b`),
	regexp.MustCompile(`\b(identify|identifying|identified)\b`),
	regexp.MustCompile(`\b(find|finding|found)\b`),
	regexp.MustCompile(`\b(discover|discovering|discovered)\b`),
	regexp.MustCompile(`\b(determine|determining|determined)\b`),
	regexp.MustCompile(`\b(prepare|preparing|prepared)\b`),
	regexp.MustCompile(`\b(create|creating|created)\b`),
	regexp.MustCompile(`\b(develop|developing|developed)\b`),
	regexp.MustCompile(`\b(build|building|built)\b`),
	regexp.MustCompile(`\b(design|designing|designed)\b`),
	regexp.MustCompile(`\b(learn|learning|learned)\b`),
	regexp.MustCompile(`\b(understand|understanding|understood)\b`),
	regexp.MustCompile(`\b(compare|comparing|compared)\b`),
	regexp.MustCompile(`\b(evaluate|evaluating|evaluated)\b`),
	regexp.MustCompile(`\b(assess|assessing|assessed)\b`),
	regexp.MustCompile(`\b(summarize|summarizing|summarized)\b`),
	regexp.MustCompile(`\b(plan|planning|planned)\b`),
}

// ActionWords extracts task verbs from lower-cased text using the fixed
// verb pattern list. The result is sorted and deduplicated.
func ActionWords(text string) []string {
	if text == "" {
		return nil
	}
	lower := strings.ToLower(text)
	seen := make(map[string]struct{})
	for _, re := range actionVerbRes {
		for _, m := range re.FindAllString(lower, -1) {
			seen[m] = struct{}{}
		}
	}
	if len(seen) == 0 {
		return nil
	}
	out := make([]string, 0, len(seen))
	for w := range seen {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}
