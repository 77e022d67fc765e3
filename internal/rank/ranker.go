package rank

import (
	"context"
	"log/slog"
	"sort"

	"github.com/dgallion1/docsight/internal/persona"
	"github.com/dgallion1/docsight/internal/section"
)

// ScoredSection is a section with its relevance score and final importance
// rank attached.
type ScoredSection struct {
	section.Section

	Score float64 `json:"relevance_score"`
	Rank  int     `json:"importance_rank"`
}

// DiversityConfig controls the cross-document re-rank that keeps one long
// document from monopolizing the top of the list.
type DiversityConfig struct {
	// MaxPerDocument is how many sections a document may contribute
	// before all of its sections are penalized.
	MaxPerDocument int
	// PenaltyStep is the multiplicative penalty per section the document
	// holds past the allowance.
	PenaltyStep float64
	// MaxPenalty caps the total penalty.
	MaxPenalty float64
}

func DefaultDiversityConfig() DiversityConfig {
	return DiversityConfig{MaxPerDocument: 3, PenaltyStep: 0.10, MaxPenalty: 0.50}
}

// Ranker scores sections and produces the final diversity-adjusted order.
type Ranker struct {
	scorer    *Scorer
	diversity DiversityConfig
	log       *slog.Logger
}

func NewRanker(scorer *Scorer, diversity DiversityConfig, log *slog.Logger) *Ranker {
	return &Ranker{scorer: scorer, diversity: diversity, log: log}
}

// Rank scores every section, orders them, applies the diversity penalty and
// assigns dense 1-based importance ranks. The input slice is not modified.
func (r *Ranker) Rank(ctx context.Context, sections []section.Section, profile persona.Profile) []ScoredSection {
	if len(sections) == 0 {
		return []ScoredSection{}
	}

	scored := make([]ScoredSection, 0, len(sections))
	for _, sec := range sections {
		scored = append(scored, ScoredSection{
			Section: sec,
			Score:   r.scorer.Score(ctx, sec, profile),
		})
	}

	sort.SliceStable(scored, func(i, j int) bool { return scored[i].Score > scored[j].Score })
	r.applyDiversityPenalty(scored)
	sort.SliceStable(scored, func(i, j int) bool { return scored[i].Score > scored[j].Score })
	assignDenseRanks(scored)

	r.log.Debug("sections ranked", "count", len(scored))
	return scored
}

// applyDiversityPenalty discounts every section of an over-represented
// document by one flat penalty derived from how far past the allowance the
// document's total section count runs. The penalty is capped so a uniquely
// relevant document can still surface.
func (r *Ranker) applyDiversityPenalty(scored []ScoredSection) {
	if r.diversity.MaxPerDocument <= 0 {
		return
	}
	counts := map[string]int{}
	for i := range scored {
		counts[scored[i].Document]++
	}
	for i := range scored {
		over := counts[scored[i].Document] - r.diversity.MaxPerDocument
		if over <= 0 {
			continue
		}
		penalty := r.diversity.PenaltyStep * float64(over)
		if penalty > r.diversity.MaxPenalty {
			penalty = r.diversity.MaxPenalty
		}
		scored[i].Score *= 1 - penalty
	}
}

// assignDenseRanks gives equal scores equal ranks with no gaps.
func assignDenseRanks(scored []ScoredSection) {
	rank := 0
	prev := -1.0
	for i := range scored {
		if scored[i].Score != prev {
			rank++
			prev = scored[i].Score
		}
		scored[i].Rank = rank
	}
}
