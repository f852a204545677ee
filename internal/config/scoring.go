package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/alexanderramin/liftplan/internal/domain"
	"github.com/alexanderramin/liftplan/internal/scoring"
	"github.com/alexanderramin/liftplan/internal/selector"
)

// ErrMissingParameter marks a required numeric scoring parameter that is
// absent from config.json.
var ErrMissingParameter = errors.New("missing scoring parameter")

// Scoring is the validated content of config.json.
type Scoring struct {
	Weights scoring.Weights
	Params  selector.Params
}

// DefaultScoring mirrors the stock config.json.
func DefaultScoring() Scoring {
	return Scoring{
		Weights: scoring.DefaultWeights(),
		Params:  selector.DefaultParams(),
	}
}

// Fields are pointers so an absent key is distinguishable from zero.
type scoringFile struct {
	ScoringWeights struct {
		PrimaryMuscle       baseScore `json:"primary_muscle"`
		SecondaryMuscle     baseScore `json:"secondary_muscle"`
		FullScoreLimit      *int      `json:"full_score_limit"`
		DecayFactor         *float64  `json:"decay_factor"`
		CommonExerciseBonus struct {
			Score *float64 `json:"score"`
		} `json:"common_exercise_bonus"`
		Policy string `json:"policy"`
	} `json:"scoring_weights"`

	PositionScores struct {
		MajorMuscle scoreList `json:"major_muscle"`
		MinorMuscle scoreList `json:"minor_muscle"`
		Compound    scoreList `json:"compound"`
		Isolation   scoreList `json:"isolation"`
		FreeWeight  scoreList `json:"free_weight"`
		Equipment   scoreList `json:"equipment"`
	} `json:"position_scores"`

	DiversityRules struct {
		BalanceThreshold *int     `json:"balance_threshold"`
		BalancePenalty   *float64 `json:"balance_penalty"`
		Penalties        struct {
			SameFamily      *float64 `json:"same_family"`
			WeeklyRepeat    *float64 `json:"weekly_repeat"`
			SameMuscleGroup *float64 `json:"same_muscle_group"`
		} `json:"penalties"`
		Axes map[string]axisRule `json:"axes"`
	} `json:"diversity_rules"`

	AlgorithmParams struct {
		ExercisesPerDay      *int `json:"exercises_per_day"`
		ExhaustiveCeiling    *int `json:"exhaustive_ceiling"`
		MaxLocalSearchPasses *int `json:"max_local_search_passes"`
	} `json:"algorithm_params"`
}

type baseScore struct {
	BaseScore *float64 `json:"base_score"`
}

type scoreList struct {
	Scores []float64 `json:"scores"`
}

type positionSource struct {
	axis      domain.Axis
	firstKey  string
	first     []float64
	secondKey string
	second    []float64
}

type axisRule struct {
	Threshold *int     `json:"threshold"`
	Penalty   *float64 `json:"penalty"`
}

// defaultBalanceAxes get the global balance rule unless overridden.
var defaultBalanceAxes = []domain.Axis{domain.AxisLaterality, domain.AxisMechanics, domain.AxisEquipment}

// LoadScoring reads and validates a config.json file.
func LoadScoring(path string) (*Scoring, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scoring config: %w", err)
	}
	return ParseScoring(data)
}

// ParseScoring decodes config.json content. Every problem is reported at once.
func ParseScoring(data []byte) (*Scoring, error) {
	var f scoringFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing scoring config: %w", err)
	}
	s, errs := f.convert()
	if len(errs) > 0 {
		return nil, fmt.Errorf("scoring config validation: %w", errors.Join(errs...))
	}
	return s, nil
}

func (f *scoringFile) convert() (*Scoring, []error) {
	var errs []error
	missing := func(key string) {
		errs = append(errs, fmt.Errorf("%w: %s", ErrMissingParameter, key))
	}
	float := func(key string, v *float64) float64 {
		if v == nil {
			missing(key)
			return 0
		}
		return *v
	}
	integer := func(key string, v *int) int {
		if v == nil {
			missing(key)
			return 0
		}
		return *v
	}

	sw := &f.ScoringWeights
	w := scoring.Weights{
		Policy:         domain.PolicyDecay,
		PrimaryBase:    float("scoring_weights.primary_muscle.base_score", sw.PrimaryMuscle.BaseScore),
		SecondaryBase:  float("scoring_weights.secondary_muscle.base_score", sw.SecondaryMuscle.BaseScore),
		FullScoreLimit: integer("scoring_weights.full_score_limit", sw.FullScoreLimit),
		DecayFactor:    float("scoring_weights.decay_factor", sw.DecayFactor),
		CommonBonus:    float("scoring_weights.common_exercise_bonus.score", sw.CommonExerciseBonus.Score),
	}
	switch sw.Policy {
	case "", string(domain.PolicyDecay):
	case string(domain.PolicyEqualShare):
		w.Policy = domain.PolicyEqualShare
	default:
		errs = append(errs, fmt.Errorf("scoring_weights.policy: invalid value %q (expected decay or equal_share)", sw.Policy))
	}

	ap := &f.AlgorithmParams
	params := selector.Params{
		PositionsPerDay:      integer("algorithm_params.exercises_per_day", ap.ExercisesPerDay),
		ExhaustiveCeiling:    integer("algorithm_params.exhaustive_ceiling", ap.ExhaustiveCeiling),
		MaxLocalSearchPasses: integer("algorithm_params.max_local_search_passes", ap.MaxLocalSearchPasses),
	}

	ps := &f.PositionScores
	tables := []positionSource{
		{domain.AxisSize, "major_muscle", ps.MajorMuscle.Scores, "minor_muscle", ps.MinorMuscle.Scores},
		{domain.AxisMechanics, "compound", ps.Compound.Scores, "isolation", ps.Isolation.Scores},
		{domain.AxisEquipment, "free_weight", ps.FreeWeight.Scores, "equipment", ps.Equipment.Scores},
	}
	w.Position = make(map[domain.Axis]scoring.PositionTable, len(tables))
	checkTable := func(name string, scores []float64) {
		key := "position_scores." + name + ".scores"
		if scores == nil {
			missing(key)
			return
		}
		if ap.ExercisesPerDay != nil && len(scores) != params.PositionsPerDay {
			errs = append(errs, fmt.Errorf("%s: has %d entries, exercises_per_day is %d", key, len(scores), params.PositionsPerDay))
		}
	}
	for _, t := range tables {
		checkTable(t.firstKey, t.first)
		checkTable(t.secondKey, t.second)
		w.Position[t.axis] = scoring.PositionTable{First: t.first, Second: t.second}
	}

	dr := &f.DiversityRules
	threshold := integer("diversity_rules.balance_threshold", dr.BalanceThreshold)
	penalty := float("diversity_rules.balance_penalty", dr.BalancePenalty)
	w.Penalties = scoring.Penalties{
		SameFamily:      float("diversity_rules.penalties.same_family", dr.Penalties.SameFamily),
		WeeklyRepeat:    float("diversity_rules.penalties.weekly_repeat", dr.Penalties.WeeklyRepeat),
		SameMuscleGroup: float("diversity_rules.penalties.same_muscle_group", dr.Penalties.SameMuscleGroup),
	}

	w.Balance = make(map[domain.Axis]scoring.BalanceRule)
	for _, axis := range defaultBalanceAxes {
		w.Balance[axis] = scoring.BalanceRule{Threshold: threshold, Penalty: penalty}
	}
	names := make([]string, 0, len(dr.Axes))
	for name := range dr.Axes {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		axis, ok := domain.ParseAxis(name)
		if !ok {
			errs = append(errs, fmt.Errorf("diversity_rules.axes: unknown axis %q", name))
			continue
		}
		rule := scoring.BalanceRule{Threshold: threshold, Penalty: penalty}
		if o := dr.Axes[name]; o.Threshold != nil {
			rule.Threshold = *o.Threshold
		}
		if o := dr.Axes[name]; o.Penalty != nil {
			rule.Penalty = *o.Penalty
		}
		w.Balance[axis] = rule
	}

	if len(errs) == 0 {
		errs = validateRanges(w, params)
	}
	if len(errs) > 0 {
		return nil, errs
	}
	return &Scoring{Weights: w, Params: params}, nil
}

type signedParam struct {
	key   string
	value float64
}

func validateRanges(w scoring.Weights, p selector.Params) []error {
	var errs []error

	if w.PrimaryBase < 0 || w.SecondaryBase < 0 {
		errs = append(errs, fmt.Errorf("scoring_weights: base scores must not be negative"))
	}
	if w.FullScoreLimit < 0 {
		errs = append(errs, fmt.Errorf("scoring_weights.full_score_limit must not be negative"))
	}
	if w.DecayFactor < 0 || w.DecayFactor > 1 {
		errs = append(errs, fmt.Errorf("scoring_weights.decay_factor must be within [0, 1], got %g", w.DecayFactor))
	}
	if w.CommonBonus < 0 {
		errs = append(errs, fmt.Errorf("scoring_weights.common_exercise_bonus.score must not be negative"))
	}

	penalties := []signedParam{
		{"diversity_rules.penalties.same_family", w.Penalties.SameFamily},
		{"diversity_rules.penalties.weekly_repeat", w.Penalties.WeeklyRepeat},
		{"diversity_rules.penalties.same_muscle_group", w.Penalties.SameMuscleGroup},
	}
	for _, axis := range domain.Axes {
		rule, ok := w.Balance[axis]
		if !ok {
			continue
		}
		penalties = append(penalties, signedParam{"balance penalty for " + axis.String(), rule.Penalty})
		if rule.Threshold < 1 {
			errs = append(errs, fmt.Errorf("balance threshold for %s must be at least 1, got %d", axis, rule.Threshold))
		}
	}
	for _, pen := range penalties {
		if pen.value > 0 {
			errs = append(errs, fmt.Errorf("%s must be zero or negative, got %g", pen.key, pen.value))
		}
	}

	if p.PositionsPerDay < 1 {
		errs = append(errs, fmt.Errorf("algorithm_params.exercises_per_day must be at least 1, got %d", p.PositionsPerDay))
	}
	if p.ExhaustiveCeiling < 0 {
		errs = append(errs, fmt.Errorf("algorithm_params.exhaustive_ceiling must not be negative, got %d", p.ExhaustiveCeiling))
	}
	if p.MaxLocalSearchPasses < 1 {
		errs = append(errs, fmt.Errorf("algorithm_params.max_local_search_passes must be at least 1, got %d", p.MaxLocalSearchPasses))
	}

	return errs
}
