package persona

import (
	"context"
	"log/slog"
	"regexp"
	"sort"
	"strings"

	"github.com/dgallion1/docsight/internal/langmodel"
	"github.com/dgallion1/docsight/internal/textproc"
)

// Builder turns free-text persona and job descriptions into a structured
// Profile. A language model provider sharpens keyword and entity extraction
// when one is configured; every step has a rule-based fallback so the
// profile is always complete.
type Builder struct {
	provider langmodel.Provider
	log      *slog.Logger
}

func NewBuilder(provider langmodel.Provider, log *slog.Logger) *Builder {
	return &Builder{provider: provider, log: log}
}

const (
	personaKeywordLimit = 15
	jobKeywordLimit     = 20
	maxSuccessCriteria  = 5
)

// Build extracts the full profile. Empty inputs produce the general/analyze
// defaults rather than an error.
func (b *Builder) Build(ctx context.Context, personaText, jobText string) Profile {
	role := ExtractRole(personaText)
	p := Profile{
		RawPersona:      personaText,
		RawJob:          jobText,
		Role:            role,
		Domain:          ExtractDomain(personaText),
		ExpertiseLevel:  ExtractExpertiseLevel(personaText),
		Keywords:        b.personaKeywords(ctx, personaText, role),
		JobType:         ExtractJobType(jobText),
		JobKeywords:     b.jobKeywords(ctx, jobText),
		ActionWords:     b.actionWords(ctx, jobText),
		SuccessCriteria: ExtractSuccessCriteria(jobText),
	}
	b.log.Debug("persona profile built",
		"role", p.Role, "domain", p.Domain, "expertise", p.ExpertiseLevel,
		"job_type", p.JobType, "keywords", len(p.Keywords))
	return p
}

// ExtractRole finds the reader's primary role. Role names are matched
// verbatim first, then by looser pattern.
func ExtractRole(personaText string) string {
	if personaText == "" {
		return RoleGeneral
	}
	lower := strings.ToLower(personaText)
	for _, role := range roleOrder {
		if strings.Contains(lower, role) {
			return role
		}
	}
	for _, rp := range rolePatterns {
		if rp.re.MatchString(lower) {
			return rp.role
		}
	}
	return RoleGeneral
}

// ExtractDomain finds the field of work mentioned in the persona.
func ExtractDomain(personaText string) string {
	lower := strings.ToLower(personaText)
	for _, dv := range domainVocab {
		for _, kw := range dv.keywords {
			if strings.Contains(lower, kw) {
				return dv.domain
			}
		}
	}
	return DomainGeneral
}

// ExtractExpertiseLevel reads seniority markers out of the persona text.
// Unknown personas are treated as intermediate.
func ExtractExpertiseLevel(personaText string) string {
	lower := strings.ToLower(personaText)
	if containsAny(lower, expertVocab) {
		return ExpertiseExpert
	}
	if containsAny(lower, intermediateVocab) {
		return ExpertiseIntermediate
	}
	if containsAny(lower, beginnerVocab) {
		return ExpertiseBeginner
	}
	return ExpertiseIntermediate
}

// ExtractJobType classifies the job description into one of the action
// buckets, defaulting to "analyze".
func ExtractJobType(jobText string) string {
	lower := strings.ToLower(jobText)
	for _, ja := range jobActions {
		if containsAny(lower, ja.actions) {
			return ja.jobType
		}
	}
	return DefaultJobType
}

func (b *Builder) personaKeywords(ctx context.Context, personaText, role string) []string {
	set := map[string]struct{}{}

	if b.provider.Available(langmodel.CapKeywords) {
		kws, err := b.provider.Keywords(ctx, personaText, personaKeywordLimit)
		if err != nil {
			b.log.Warn("model keyword extraction failed, using frequency ranking", "error", err)
			kws = textproc.TopKeywords(personaText, personaKeywordLimit)
		}
		addAll(set, kws)
	} else {
		addAll(set, textproc.TopKeywords(personaText, personaKeywordLimit))
	}

	// The role vocabulary rounds out terse personas.
	addAll(set, roleDomains[role])

	if b.provider.Available(langmodel.CapEntities) {
		ents, err := b.provider.Entities(ctx, personaText)
		if err != nil {
			b.log.Warn("model entity extraction failed, using capitalization heuristic", "error", err)
			addAll(set, lowerAll(textproc.CapitalizedEntities(personaText)))
		} else {
			for _, kind := range []string{"org", "person", "place"} {
				addAll(set, lowerAll(ents[kind]))
			}
		}
	} else {
		addAll(set, lowerAll(textproc.CapitalizedEntities(personaText)))
	}

	return sortedKeys(set)
}

var quotedRe = regexp.MustCompile(`"([^"]*)"`)

func (b *Builder) jobKeywords(ctx context.Context, jobText string) []string {
	set := map[string]struct{}{}

	if b.provider.Available(langmodel.CapKeywords) {
		kws, err := b.provider.Keywords(ctx, jobText, jobKeywordLimit)
		if err != nil {
			b.log.Warn("model keyword extraction failed, using frequency ranking", "error", err)
			kws = textproc.TopKeywords(jobText, jobKeywordLimit)
		}
		addAll(set, kws)
	} else {
		addAll(set, textproc.TopKeywords(jobText, jobKeywordLimit))
	}

	// Quoted and capitalized terms usually carry the concepts the job is
	// actually about.
	for _, m := range quotedRe.FindAllStringSubmatch(jobText, -1) {
		if t := strings.ToLower(strings.TrimSpace(m[1])); t != "" {
			set[t] = struct{}{}
		}
	}
	addAll(set, textproc.CapitalizedWords(jobText))

	return sortedKeys(set)
}

func (b *Builder) actionWords(ctx context.Context, jobText string) []string {
	if b.provider.Available(langmodel.CapVerbs) {
		verbs, err := b.provider.Verbs(ctx, jobText)
		if err == nil {
			return verbs
		}
		b.log.Warn("model verb extraction failed, using pattern matching", "error", err)
	}
	return textproc.ActionWords(jobText)
}

// ExtractSuccessCriteria pulls result-oriented phrases from the job
// description, keeping at most five of sensible length.
func ExtractSuccessCriteria(jobText string) []string {
	var criteria []string
	for _, re := range criteriaPatterns {
		for _, m := range re.FindAllStringSubmatch(jobText, -1) {
			c := strings.TrimSpace(m[1])
			if len(c) > 5 && len(c) < 100 {
				criteria = append(criteria, c)
			}
			if len(criteria) >= maxSuccessCriteria {
				return criteria
			}
		}
	}
	return criteria
}

func containsAny(haystack string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(haystack, n) {
			return true
		}
	}
	return false
}

func addAll(set map[string]struct{}, items []string) {
	for _, it := range items {
		if it != "" {
			set[it] = struct{}{}
		}
	}
}

func lowerAll(items []string) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = strings.ToLower(it)
	}
	return out
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
