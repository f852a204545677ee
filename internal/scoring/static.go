package scoring

import (
	"math"

	"github.com/alexanderramin/liftplan/internal/domain"
)

// Scorer computes static and dynamic exercise scores against one
// classification index, weight set and preference map.
type Scorer struct {
	weights Weights
	cls     *domain.Classification
	prefs   map[string]float64
	factors []factor
}

// NewScorer wires a scorer. prefs maps preference categories to coefficients;
// categories absent from prefs default to 1.0.
func NewScorer(w Weights, cls *domain.Classification, prefs map[string]float64) *Scorer {
	if cls == nil {
		cls = &domain.Classification{}
	}
	s := &Scorer{
		weights: w,
		cls:     cls,
		prefs:   prefs,
	}
	s.factors = s.buildFactors()
	return s
}

func (s *Scorer) Weights() Weights {
	return s.weights
}

func (s *Scorer) Classification() *domain.Classification {
	return s.cls
}

// Static returns the context-free score of ex.
func (s *Scorer) Static(ex domain.Exercise) float64 {
	score := s.listScore(ex.PrimaryMuscles, s.weights.PrimaryBase) +
		s.listScore(ex.SecondaryMuscles, s.weights.SecondaryBase)
	if s.cls.IsCommon(ex.ID) {
		score += s.weights.CommonBonus
	}
	return score
}

func (s *Scorer) listScore(muscles []string, base float64) float64 {
	if len(muscles) == 0 {
		return 0
	}

	var score float64
	if s.weights.Policy == domain.PolicyEqualShare {
		share := base / float64(len(muscles))
		for _, m := range muscles {
			score += share * s.Preference(m)
		}
		return score
	}

	limit := s.weights.FullScoreLimit
	for i, m := range muscles {
		contribution := base
		if i >= limit {
			contribution = base * math.Pow(s.weights.DecayFactor, float64(i-limit+1))
		}
		score += contribution * s.Preference(m)
	}
	return score
}

// Preference resolves the coefficient for a specific muscle tag via its
// preference category. Unmapped muscles and categories resolve to 1.0.
func (s *Scorer) Preference(muscle string) float64 {
	cat, ok := s.cls.PreferenceCategory(muscle)
	if !ok {
		return 1.0
	}
	if coef, ok := s.prefs[cat]; ok {
		return coef
	}
	return 1.0
}
