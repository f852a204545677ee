package planner

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/liftplan/internal/catalog"
	"github.com/alexanderramin/liftplan/internal/domain"
)

// StrategyRun is one strategy's weekly plan and how long it took.
type StrategyRun struct {
	Strategy domain.Strategy
	Plan     *domain.WeeklyPlan
	Elapsed  time.Duration
}

func (r StrategyRun) Score() float64 {
	return r.Plan.TotalScore()
}

// Comparison holds runs in the order requested; the first is the baseline.
type Comparison struct {
	Runs []StrategyRun
}

func (c *Comparison) Baseline() StrategyRun {
	return c.Runs[0]
}

// Improvement returns run i's score gain over the baseline, absolute and as
// a percentage. The percentage is 0 when the baseline scored 0.
func (c *Comparison) Improvement(i int) (float64, float64) {
	base := c.Baseline().Score()
	diff := c.Runs[i].Score() - base
	if base == 0 {
		return diff, 0
	}
	return diff, diff / base * 100
}

// TimeRatio is run i's elapsed time divided by the baseline's.
func (c *Comparison) TimeRatio(i int) float64 {
	base := c.Baseline().Elapsed
	if base <= 0 {
		return 0
	}
	return float64(c.Runs[i].Elapsed) / float64(base)
}

// Best returns the index of the highest-scoring run; ties keep the earlier.
func (c *Comparison) Best() int {
	best := 0
	for i := range c.Runs {
		if c.Runs[i].Score() > c.Runs[best].Score() {
			best = i
		}
	}
	return best
}

// Compare generates a plan per strategy from identical inputs.
func Compare(ctx context.Context, cat *catalog.Catalog, opts Options, strategies []domain.Strategy, tpl domain.WeekTemplate) (*Comparison, error) {
	if len(strategies) == 0 {
		return nil, errors.New("compare needs at least one strategy")
	}

	cmp := &Comparison{Runs: make([]StrategyRun, 0, len(strategies))}
	for _, strategy := range strategies {
		o := opts
		o.Strategy = strategy
		p, err := New(cat, o)
		if err != nil {
			return nil, err
		}

		start := time.Now()
		plan, err := p.GenerateWeeklyPlan(ctx, tpl)
		if err != nil {
			return nil, fmt.Errorf("running %s: %w", strategy, err)
		}
		cmp.Runs = append(cmp.Runs, StrategyRun{
			Strategy: strategy,
			Plan:     plan,
			Elapsed:  time.Since(start),
		})
	}
	return cmp, nil
}
