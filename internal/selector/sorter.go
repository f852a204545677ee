package selector

import (
	"sort"

	"github.com/alexanderramin/liftplan/internal/domain"
	"github.com/alexanderramin/liftplan/internal/scoring"
)

// Candidate is an exercise paired with its static score for one day.
type Candidate struct {
	Exercise domain.Exercise
	Static   float64
}

func (c Candidate) ID() int {
	return c.Exercise.ID
}

// NewCandidates scores every exercise once and returns them in canonical order.
func NewCandidates(scorer *scoring.Scorer, exercises []domain.Exercise) []Candidate {
	out := make([]Candidate, 0, len(exercises))
	for _, ex := range exercises {
		out = append(out, Candidate{Exercise: ex, Static: scorer.Static(ex)})
	}
	CanonicalSort(out)
	return out
}

// CanonicalSort orders candidates by the deterministic canonical rules:
// 1. Static score: higher first
// 2. Exercise ID: ascending
//
// Every tie-break in the selectors prefers the earlier candidate in this order.
func CanonicalSort(candidates []Candidate) {
	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.Static != b.Static {
			return a.Static > b.Static
		}
		return a.Exercise.ID < b.Exercise.ID
	})
}

// canonical returns a sorted copy so callers' slices are never reordered.
func canonical(pool []Candidate) []Candidate {
	out := make([]Candidate, len(pool))
	copy(out, pool)
	CanonicalSort(out)
	return out
}
