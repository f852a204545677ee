package selector

import (
	"context"
	"fmt"

	"github.com/alexanderramin/liftplan/internal/domain"
	"github.com/alexanderramin/liftplan/internal/scoring"
)

// ctxCheckEvery is how many subsets are scored between context checks.
const ctxCheckEvery = 4096

// Exhaustive scores every size-N subset of the pool. Each subset is placed in
// generation order; the greedy result is the starting incumbent so the
// outcome never scores below Greedy.
type Exhaustive struct {
	scorer *scoring.Scorer
	params Params
}

func NewExhaustive(scorer *scoring.Scorer, params Params) *Exhaustive {
	return &Exhaustive{scorer: scorer, params: params}
}

func (e *Exhaustive) Strategy() domain.Strategy {
	return domain.StrategyExhaustive
}

func (e *Exhaustive) Select(ctx context.Context, pool []Candidate, weekly domain.IDSet) (Selection, error) {
	if len(pool) > e.params.ExhaustiveCeiling {
		return Selection{}, &SelectError{
			Code:    ErrPoolExceedsCeiling,
			Message: fmt.Sprintf("%d candidates exceed the exhaustive ceiling of %d; use the hybrid strategy", len(pool), e.params.ExhaustiveCeiling),
		}
	}

	ordered := canonical(pool)
	k := min(e.params.PositionsPerDay, len(ordered))
	day := e.scorer.NewDay(weekly)

	best := greedyOrder(e.scorer, ordered, k, weekly)
	bestScore := orderScore(e.scorer, best, day)

	combo := make([]Candidate, k)
	evaluated := 0
	err := forEachCombination(len(ordered), k, func(idx []int) error {
		for i, j := range idx {
			combo[i] = ordered[j]
		}
		score := orderScore(e.scorer, combo, day)
		evaluated++
		if score > bestScore {
			bestScore = score
			best = append(best[:0:0], combo...)
		}
		if evaluated%ctxCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return cancelled(err, "exhaustive search")
			}
		}
		return nil
	})
	if err != nil {
		return Selection{}, err
	}

	return Selection{
		Records:   buildRecords(e.scorer, best, weekly),
		Method:    domain.MethodExhaustive,
		Evaluated: evaluated,
	}, nil
}

// forEachCombination calls fn with every k-subset of 0..n-1 as ascending
// index slices, in lexicographic order. fn must not retain idx.
func forEachCombination(n, k int, fn func(idx []int) error) error {
	if k < 0 || k > n {
		return nil
	}
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}
	for {
		if err := fn(idx); err != nil {
			return err
		}
		i := k - 1
		for i >= 0 && idx[i] == n-k+i {
			i--
		}
		if i < 0 {
			return nil
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}
