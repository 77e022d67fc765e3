package persona

// Profile captures everything the ranker needs to know about who is reading
// and what they are trying to get done.
type Profile struct {
	RawPersona string `json:"raw_persona"`
	RawJob     string `json:"raw_job"`

	Role           string   `json:"role"`
	Domain         string   `json:"domain"`
	ExpertiseLevel string   `json:"expertise_level"`
	Keywords       []string `json:"keywords"`

	JobType         string   `json:"job_type"`
	JobKeywords     []string `json:"job_keywords"`
	ActionWords     []string `json:"action_words"`
	SuccessCriteria []string `json:"success_criteria"`
}

// Fallback values used when nothing in the text matches a known category.
const (
	RoleGeneral    = "general"
	DomainGeneral  = "general"
	DefaultJobType = "analyze"
)

// Expertise levels.
const (
	ExpertiseExpert       = "expert"
	ExpertiseIntermediate = "intermediate"
	ExpertiseBeginner     = "beginner"
)
