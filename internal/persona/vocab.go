package persona

import "regexp"

// roleDomains maps each recognized role to the vocabulary that tends to show
// up around it. The role's vocabulary is folded into the profile keywords so
// a terse persona like "Travel Planner" still carries useful signal.
var roleDomains = map[string][]string{
	"researcher":   {"research", "study", "analysis", "methodology", "findings", "literature", "academic", "paper", "journal"},
	"student":      {"learn", "study", "exam", "concept", "understand", "knowledge", "education", "course", "textbook"},
	"analyst":      {"analyze", "data", "trend", "report", "financial", "business", "metric", "performance", "investment"},
	"journalist":   {"news", "article", "report", "story", "interview", "source", "media", "press", "journalism"},
	"entrepreneur": {"business", "startup", "market", "opportunity", "strategy", "growth", "innovation", "venture"},
	"developer":    {"code", "software", "programming", "development", "technical", "system", "application", "framework"},
	"manager":      {"team", "project", "management", "leadership", "strategy", "planning", "execution", "operations"},
	"travel planner": {
		"travel", "trip", "destination", "itinerary", "activities", "attractions", "hotels", "restaurants",
		"transport", "booking", "vacation", "tourism", "sightseeing", "accommodation", "flight", "guide",
		"explore", "visit", "experience",
	},
	"tourist":  {"travel", "vacation", "sightseeing", "attractions", "culture", "local", "experience", "explore", "visit", "leisure", "holiday"},
	"traveler": {"journey", "destination", "adventure", "culture", "local", "experience", "explore", "discover", "immerse"},
}

// rolePatterns is the second pass: when no role name appears verbatim, these
// looser patterns catch common phrasings ("PhD candidate", "startup founder").
// Order matters since the first match wins.
var rolePatterns = []struct {
	role string
	re   *regexp.Regexp
}{
	{"researcher", regexp.MustCompile(`phd|research|scientist|academic`)},
	{"student", regexp.MustCompile(`student|undergraduate|graduate|learner`)},
	{"analyst", regexp.MustCompile(`analyst|investment|financial|business`)},
	{"journalist", regexp.MustCompile(`journalist|reporter|writer|media`)},
	{"entrepreneur", regexp.MustCompile(`entrepreneur|founder|startup|business owner`)},
	{"developer", regexp.MustCompile(`developer|programmer|engineer|coder`)},
	{"manager", regexp.MustCompile(`manager|director|executive|lead`)},
	{"travel planner", regexp.MustCompile(`travel planner|trip planner|travel agent|travel advisor`)},
	{"tourist", regexp.MustCompile(`tourist|vacationer|visitor`)},
	{"traveler", regexp.MustCompile(`traveler|traveller|backpacker|explorer`)},
}

// roleOrder fixes the iteration order for the direct-match pass. Multi-word
// roles come first so "travel planner" is not shadowed by a later match.
var roleOrder = []string{
	"travel planner", "researcher", "student", "analyst", "journalist",
	"entrepreneur", "developer", "manager", "tourist", "traveler",
}

// domainVocab maps a field of work to the terms that signal it.
var domainVocab = []struct {
	domain   string
	keywords []string
}{
	{"technology", []string{"tech", "technology", "software", "computer", "ai", "ml", "data science"}},
	{"biology", []string{"biology", "bio", "life science", "medical", "health"}},
	{"chemistry", []string{"chemistry", "chemical", "organic", "inorganic"}},
	{"finance", []string{"finance", "financial", "investment", "banking", "economics"}},
	{"business", []string{"business", "management", "marketing", "sales"}},
	{"education", []string{"education", "teaching", "academic", "school"}},
	{"engineering", []string{"engineering", "mechanical", "electrical", "civil"}},
	{"law", []string{"law", "legal", "attorney", "lawyer"}},
	{"travel", []string{"travel", "tourism", "hospitality", "destination", "vacation", "trip", "journey"}},
}

// jobActions maps a job type to the action words that imply it. First bucket
// with any hit wins, so the order below is part of the contract.
var jobActions = []struct {
	jobType string
	actions []string
}{
	{"review", []string{"review", "analyze", "examine", "evaluate", "assess", "critique"}},
	{"summarize", []string{"summarize", "overview", "abstract", "synopsis", "brief", "condensed"}},
	{"compare", []string{"compare", "contrast", "difference", "similarity", "versus", "benchmark"}},
	{"identify", []string{"identify", "find", "locate", "discover", "detect", "recognize"}},
	{"prepare", []string{"prepare", "create", "develop", "build", "design", "construct"}},
	{"learn", []string{"learn", "understand", "study", "master", "comprehend", "grasp"}},
	{"plan", []string{"plan", "organize", "schedule", "arrange", "coordinate", "itinerary", "trip", "travel", "book", "reserve"}},
}

var expertVocab = []string{"phd", "doctor", "professor", "senior", "expert", "lead"}
var intermediateVocab = []string{"master", "graduate", "experienced", "analyst"}
var beginnerVocab = []string{"student", "undergraduate", "beginner", "junior"}

// criteriaPatterns pull result-oriented phrases out of the job description.
var criteriaPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)focus(?:ing)? on ([^.]+)`),
	regexp.MustCompile(`(?i)identify ([^.]+)`),
	regexp.MustCompile(`(?i)analyze ([^.]+)`),
	regexp.MustCompile(`(?i)summarize ([^.]+)`),
	regexp.MustCompile(`(?i)review ([^.]+)`),
	regexp.MustCompile(`(?i)prepare ([^.]+)`),
}
