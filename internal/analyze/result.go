package analyze

// Metadata records what went into an analysis run.
type Metadata struct {
	InputDocuments      []string `json:"input_documents"`
	Persona             string   `json:"persona"`
	JobToBeDone         string   `json:"job_to_be_done"`
	ProcessingTimestamp string   `json:"processing_timestamp"`
}

// ExtractedSection is one ranked section in the analysis output.
type ExtractedSection struct {
	Document       string `json:"document"`
	SectionTitle   string `json:"section_title"`
	ImportanceRank int    `json:"importance_rank"`
	PageNumber     int    `json:"page_number"`
}

// SubsectionEntry is one refined subsection in the analysis output.
type SubsectionEntry struct {
	Document    string `json:"document"`
	PageNumber  int    `json:"page_number"`
	RefinedText string `json:"refined_text"`
}

// Result is the complete analysis payload.
type Result struct {
	Metadata           Metadata           `json:"metadata"`
	ExtractedSections  []ExtractedSection `json:"extracted_sections"`
	SubsectionAnalysis []SubsectionEntry  `json:"subsection_analysis"`
}

// Empty returns the skeleton produced when analysis cannot proceed.
func Empty(meta Metadata) Result {
	return Result{
		Metadata:           meta,
		ExtractedSections:  []ExtractedSection{},
		SubsectionAnalysis: []SubsectionEntry{},
	}
}
