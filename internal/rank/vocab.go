package rank

// Scoring vocabularies. These are intentionally separate from the persona
// package's detection vocabularies: detection answers "who is this reader",
// these answer "what content does that reader care about".

var roleKeywords = map[string][]string{
	"researcher":   {"research", "study", "analysis", "methodology", "findings", "literature", "hypothesis", "experiment"},
	"student":      {"learn", "understand", "concept", "theory", "practice", "exercise", "example", "explanation"},
	"analyst":      {"analyze", "data", "trend", "metric", "performance", "benchmark", "comparison", "insight"},
	"journalist":   {"report", "news", "story", "source", "interview", "investigation", "fact", "evidence"},
	"entrepreneur": {"business", "opportunity", "market", "strategy", "growth", "innovation", "venture", "competitive"},
	"developer":    {"code", "implementation", "system", "architecture", "framework", "library", "api", "technical"},
	"manager":      {"team", "project", "planning", "execution", "strategy", "leadership", "operations", "coordination"},
}

var domainKeywords = map[string][]string{
	"technology":  {"software", "hardware", "digital", "computer", "internet", "ai", "machine learning", "data"},
	"biology":     {"cell", "organism", "gene", "protein", "evolution", "ecosystem", "species", "molecular"},
	"chemistry":   {"molecule", "reaction", "compound", "element", "bond", "synthesis", "catalyst", "organic"},
	"finance":     {"investment", "revenue", "profit", "market", "financial", "economic", "capital", "asset"},
	"business":    {"management", "strategy", "marketing", "sales", "customer", "product", "service", "operation"},
	"education":   {"teaching", "learning", "curriculum", "assessment", "pedagogy", "instruction", "academic", "school"},
	"engineering": {"design", "system", "process", "optimization", "manufacturing", "construction", "technical", "specification"},
	"law":         {"legal", "regulation", "compliance", "contract", "liability", "court", "statute", "precedent"},
}

var jobTypeKeywords = map[string][]string{
	"review":    {"review", "evaluate", "assess", "critique", "examination", "analysis", "overview", "summary"},
	"summarize": {"summary", "overview", "brief", "abstract", "condensed", "key points", "main ideas", "synopsis"},
	"compare":   {"compare", "contrast", "difference", "similarity", "versus", "benchmark", "relative", "comparison"},
	"identify":  {"identify", "find", "locate", "discover", "detect", "recognize", "determine", "specify"},
	"prepare":   {"prepare", "create", "develop", "build", "design", "construct", "formulate", "establish"},
	"learn":     {"learn", "understand", "study", "master", "comprehend", "grasp", "acquire", "absorb"},
}

// evidentiaryMarkers signal content that carries concrete information.
var evidentiaryMarkers = []string{"figure", "table", "example", "case study", "result", "finding"}

// conclusionMarkers boost sentences that state outcomes during refinement.
var conclusionMarkers = []string{"therefore", "conclusion", "result", "finding"}
