package scoring

import "github.com/alexanderramin/liftplan/internal/domain"

// PositionTable holds per-position bonuses for the two sides of one axis.
type PositionTable struct {
	First  []float64
	Second []float64
}

// BalanceRule penalises a candidate once Threshold records on the same
// side of the axis have already been placed today.
type BalanceRule struct {
	Threshold int
	Penalty   float64
}

// Penalties are signed deltas (<= 0) added to the dynamic score.
type Penalties struct {
	SameFamily      float64
	WeeklyRepeat    float64
	SameMuscleGroup float64
}

// Weights is the resolved numeric scoring configuration.
type Weights struct {
	Policy         domain.ScoringPolicy
	PrimaryBase    float64
	SecondaryBase  float64
	FullScoreLimit int
	DecayFactor    float64
	CommonBonus    float64

	Position  map[domain.Axis]PositionTable
	Balance   map[domain.Axis]BalanceRule
	Penalties Penalties
}

// DefaultWeights mirrors the shipped data/config.json for five positions.
func DefaultWeights() Weights {
	front := []float64{8, 5, 0, 0, 0}
	back := []float64{0, 0, 0, 5, 8}
	return Weights{
		Policy:         domain.PolicyDecay,
		PrimaryBase:    3.0,
		SecondaryBase:  2.0,
		FullScoreLimit: 2,
		DecayFactor:    0.5,
		CommonBonus:    2.0,
		Position: map[domain.Axis]PositionTable{
			domain.AxisSize:      {First: front, Second: back},
			domain.AxisMechanics: {First: front, Second: back},
			domain.AxisEquipment: {First: []float64{3, 2, 0, 0, 0}, Second: []float64{0, 0, 0, 2, 3}},
		},
		Balance: map[domain.Axis]BalanceRule{
			domain.AxisLaterality: {Threshold: 3, Penalty: -3},
			domain.AxisMechanics:  {Threshold: 3, Penalty: -3},
			domain.AxisEquipment:  {Threshold: 3, Penalty: -3},
		},
		Penalties: Penalties{
			SameFamily:      -10,
			WeeklyRepeat:    -8,
			SameMuscleGroup: -1,
		},
	}
}
