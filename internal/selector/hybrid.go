package selector

import (
	"context"

	"github.com/alexanderramin/liftplan/internal/domain"
	"github.com/alexanderramin/liftplan/internal/scoring"
)

// Hybrid runs Exhaustive for pools within the ceiling. Larger pools get a
// greedy seed refined by pairwise-swap local search.
type Hybrid struct {
	scorer     *scoring.Scorer
	params     Params
	exhaustive *Exhaustive
}

func NewHybrid(scorer *scoring.Scorer, params Params) *Hybrid {
	return &Hybrid{
		scorer:     scorer,
		params:     params,
		exhaustive: NewExhaustive(scorer, params),
	}
}

func (h *Hybrid) Strategy() domain.Strategy {
	return domain.StrategyHybrid
}

func (h *Hybrid) Select(ctx context.Context, pool []Candidate, weekly domain.IDSet) (Selection, error) {
	if len(pool) <= h.params.ExhaustiveCeiling {
		return h.exhaustive.Select(ctx, pool, weekly)
	}

	ordered := canonical(pool)
	seed := greedyOrder(h.scorer, ordered, h.params.PositionsPerDay, weekly)
	initial := orderScore(h.scorer, seed, h.scorer.NewDay(weekly))

	order, passes, err := swapSearch(ctx, h.scorer, seed, weekly, h.params.MaxLocalSearchPasses)
	if err != nil {
		return Selection{}, err
	}

	return Selection{
		Records:      buildRecords(h.scorer, order, weekly),
		Method:       domain.MethodLocalSearch,
		Passes:       passes,
		InitialScore: initial,
	}, nil
}

// swapSearch tries position swaps in (i, j) order, accepts the first strict
// improvement and rescans from the start. It stops on a pass with no
// improvement or once maxPasses scans have run.
func swapSearch(ctx context.Context, scorer *scoring.Scorer, seed []Candidate, weekly domain.IDSet, maxPasses int) ([]Candidate, int, error) {
	current := append([]Candidate(nil), seed...)
	trial := make([]Candidate, len(current))
	day := scorer.NewDay(weekly)
	best := orderScore(scorer, current, day)

	passes := 0
	improved := true
	for improved && passes < maxPasses {
		if err := ctx.Err(); err != nil {
			return nil, passes, cancelled(err, "local search")
		}
		improved = false
		passes++

	scan:
		for i := 0; i < len(current); i++ {
			for j := i + 1; j < len(current); j++ {
				copy(trial, current)
				trial[i], trial[j] = trial[j], trial[i]
				if score := orderScore(scorer, trial, day); score > best {
					best = score
					current, trial = trial, current
					improved = true
					break scan
				}
			}
		}
	}

	return current, passes, nil
}
