package langmodel

import (
	"context"
	"errors"
)

// Capability names one optional language-model operation.
type Capability string

const (
	CapKeywords   Capability = "keywords"
	CapEntities   Capability = "entities"
	CapVerbs      Capability = "verbs"
	CapSimilarity Capability = "similarity"
	CapClassify   Capability = "classify"
)

// ErrUnavailable is returned when a capability is not configured. Callers
// branch to their rule-based fallback rather than failing the pipeline.
var ErrUnavailable = errors.New("language model capability unavailable")

// Provider is the optional language-model surface consumed by the analysis
// core. Every method may be unavailable; callers must check Available (or
// treat any error as absence) and degrade to a deterministic fallback.
type Provider interface {
	// Available reports whether a capability can be called at all.
	Available(c Capability) bool

	// Keywords extracts up to topN salient terms from text.
	Keywords(ctx context.Context, text string, topN int) ([]string, error)

	// Entities extracts named entities grouped by entity type
	// (e.g. "organization", "person", "place").
	Entities(ctx context.Context, text string) (map[string][]string, error)

	// Verbs extracts action verbs from text.
	Verbs(ctx context.Context, text string) ([]string, error)

	// Similarity scores semantic similarity of two texts in [0,1].
	Similarity(ctx context.Context, a, b string) (float64, error)

	// ClassifyHeading scores the likelihood in [0,1] that text is a
	// document heading.
	ClassifyHeading(ctx context.Context, text string) (float64, error)
}

// None returns a Provider with no capabilities. All calls report
// ErrUnavailable, forcing the rule-based paths.
func None() Provider { return noneProvider{} }

type noneProvider struct{}

func (noneProvider) Available(Capability) bool { return false }

func (noneProvider) Keywords(context.Context, string, int) ([]string, error) {
	return nil, ErrUnavailable
}

func (noneProvider) Entities(context.Context, string) (map[string][]string, error) {
	return nil, ErrUnavailable
}

func (noneProvider) Verbs(context.Context, string) ([]string, error) {
	return nil, ErrUnavailable
}

func (noneProvider) Similarity(context.Context, string, string) (float64, error) {
	return 0, ErrUnavailable
}

func (noneProvider) ClassifyHeading(context.Context, string) (float64, error) {
	return 0, ErrUnavailable
}
