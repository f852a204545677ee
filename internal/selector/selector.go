package selector

import (
	"context"
	"fmt"

	"github.com/alexanderramin/liftplan/internal/domain"
	"github.com/alexanderramin/liftplan/internal/scoring"
)

// Params bounds the day selection.
type Params struct {
	PositionsPerDay      int
	ExhaustiveCeiling    int
	MaxLocalSearchPasses int
}

func DefaultParams() Params {
	return Params{
		PositionsPerDay:      5,
		ExhaustiveCeiling:    30,
		MaxLocalSearchPasses: 100,
	}
}

// Selection is the ordered result for one day plus search telemetry.
type Selection struct {
	Records []domain.SelectionRecord
	Method  domain.Method

	// Evaluated counts full orderings scored (exhaustive subsets).
	Evaluated int
	// Passes counts local-search pair scans, including the final
	// non-improving one.
	Passes int
	// InitialScore is the greedy seed's total before local search.
	InitialScore float64
}

func (s Selection) TotalScore() float64 {
	return domain.SumTotals(s.Records)
}

// Selector picks an ordered subset of the pool for one day. The weekly set
// is read-only to selectors; the caller folds the result in afterwards.
type Selector interface {
	Strategy() domain.Strategy
	Select(ctx context.Context, pool []Candidate, weekly domain.IDSet) (Selection, error)
}

type SelectErrorCode string

const (
	ErrPoolExceedsCeiling SelectErrorCode = "POOL_EXCEEDS_CEILING"
	ErrCancelled          SelectErrorCode = "CANCELLED"
)

type SelectError struct {
	Code    SelectErrorCode
	Message string
	Err     error
}

func (e *SelectError) Error() string {
	return string(e.Code) + ": " + e.Message
}

func (e *SelectError) Unwrap() error {
	return e.Err
}

func cancelled(err error, stage string) error {
	return &SelectError{
		Code:    ErrCancelled,
		Message: fmt.Sprintf("%s interrupted: %v", stage, err),
		Err:     err,
	}
}

// New returns the selector for strategy.
func New(strategy domain.Strategy, scorer *scoring.Scorer, params Params) (Selector, error) {
	switch strategy {
	case domain.StrategyGreedy:
		return NewGreedy(scorer, params), nil
	case domain.StrategyExhaustive:
		return NewExhaustive(scorer, params), nil
	case domain.StrategyHybrid:
		return NewHybrid(scorer, params), nil
	default:
		return nil, fmt.Errorf("unknown strategy %q", strategy)
	}
}

// orderScore is the cumulative total of order when placed at positions
// 0..len-1. day is reset and reused.
func orderScore(scorer *scoring.Scorer, order []Candidate, day *scoring.Day) float64 {
	day.Reset()
	var total float64
	for pos, c := range order {
		total += c.Static + scorer.Dynamic(c.ID(), pos, day)
		day.Place(c.ID())
	}
	return total
}

// buildRecords scores order from scratch and materialises its records.
func buildRecords(scorer *scoring.Scorer, order []Candidate, weekly domain.IDSet) []domain.SelectionRecord {
	day := scorer.NewDay(weekly)
	records := make([]domain.SelectionRecord, 0, len(order))
	for pos, c := range order {
		dynamic := scorer.Dynamic(c.ID(), pos, day)
		records = append(records, domain.SelectionRecord{
			ExerciseID:       c.Exercise.ID,
			Name:             c.Exercise.Name,
			PrimaryMuscles:   c.Exercise.PrimaryMuscles,
			SecondaryMuscles: c.Exercise.SecondaryMuscles,
			StaticScore:      c.Static,
			DynamicScore:     dynamic,
			TotalScore:       c.Static + dynamic,
			Position:         pos + 1,
		})
		day.Place(c.ID())
	}
	return records
}
