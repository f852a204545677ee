package selector

import (
	"context"

	"github.com/alexanderramin/liftplan/internal/domain"
	"github.com/alexanderramin/liftplan/internal/scoring"
)

// Greedy fills positions in order, each with the best remaining candidate.
type Greedy struct {
	scorer *scoring.Scorer
	params Params
}

func NewGreedy(scorer *scoring.Scorer, params Params) *Greedy {
	return &Greedy{scorer: scorer, params: params}
}

func (g *Greedy) Strategy() domain.Strategy {
	return domain.StrategyGreedy
}

func (g *Greedy) Select(_ context.Context, pool []Candidate, weekly domain.IDSet) (Selection, error) {
	order := greedyOrder(g.scorer, canonical(pool), g.params.PositionsPerDay, weekly)
	return Selection{
		Records: buildRecords(g.scorer, order, weekly),
		Method:  domain.MethodGreedy,
	}, nil
}

// greedyOrder expects pool in canonical order; ties keep the earlier candidate.
func greedyOrder(scorer *scoring.Scorer, pool []Candidate, positions int, weekly domain.IDSet) []Candidate {
	day := scorer.NewDay(weekly)
	taken := make([]bool, len(pool))
	order := make([]Candidate, 0, min(positions, len(pool)))

	for pos := 0; pos < positions && pos < len(pool); pos++ {
		best := -1
		var bestScore float64
		for i, c := range pool {
			if taken[i] {
				continue
			}
			total := c.Static + scorer.Dynamic(c.ID(), pos, day)
			if best < 0 || total > bestScore {
				best = i
				bestScore = total
			}
		}
		taken[best] = true
		order = append(order, pool[best])
		day.Place(pool[best].ID())
	}

	return order
}
