package planner

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/liftplan/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompare_GreedyVsHybrid(t *testing.T) {
	cat := loadSample(t)
	tpl, err := cat.Template(3)
	require.NoError(t, err)

	cmp, err := Compare(context.Background(), cat, fixedOptions(nil),
		[]domain.Strategy{domain.StrategyGreedy, domain.StrategyHybrid}, tpl)
	require.NoError(t, err)
	require.Len(t, cmp.Runs, 2)

	assert.Equal(t, domain.StrategyGreedy, cmp.Baseline().Strategy)
	assert.Equal(t, domain.StrategyHybrid, cmp.Runs[1].Strategy)
	assert.Equal(t, domain.StrategyHybrid, cmp.Runs[1].Plan.Strategy)
	assert.GreaterOrEqual(t, cmp.Runs[1].Score()+1e-9, cmp.Runs[0].Score())

	diff, pct := cmp.Improvement(1)
	assert.InDelta(t, cmp.Runs[1].Score()-cmp.Runs[0].Score(), diff, 1e-9)
	assert.GreaterOrEqual(t, pct, -1e-9)

	base, basePct := cmp.Improvement(0)
	assert.Equal(t, 0.0, base)
	assert.Equal(t, 0.0, basePct)
}

func TestCompare_NoStrategies(t *testing.T) {
	cat := loadSample(t)
	tpl, err := cat.Template(1)
	require.NoError(t, err)

	_, err = Compare(context.Background(), cat, fixedOptions(nil), nil, tpl)
	assert.Error(t, err)
}

func TestComparison_Ratios(t *testing.T) {
	week := func(score float64) *domain.WeeklyPlan {
		p := domain.NewWeeklyPlan("x", domain.StrategyGreedy, time.Time{})
		p.AppendDay(domain.DayPlan{Name: "Day 1", TotalScore: score})
		return p
	}
	c := &Comparison{Runs: []StrategyRun{
		{Strategy: domain.StrategyGreedy, Plan: week(100), Elapsed: 2 * time.Millisecond},
		{Strategy: domain.StrategyHybrid, Plan: week(110), Elapsed: 10 * time.Millisecond},
		{Strategy: domain.StrategyExhaustive, Plan: week(110), Elapsed: 30 * time.Millisecond},
	}}

	diff, pct := c.Improvement(1)
	assert.InDelta(t, 10.0, diff, 1e-9)
	assert.InDelta(t, 10.0, pct, 1e-9)
	assert.InDelta(t, 5.0, c.TimeRatio(1), 1e-9)
	assert.Equal(t, 1, c.Best(), "ties keep the earlier run")

	zero := &Comparison{Runs: []StrategyRun{
		{Plan: week(0)},
		{Plan: week(5), Elapsed: time.Millisecond},
	}}
	_, pct = zero.Improvement(1)
	assert.Equal(t, 0.0, pct)
	assert.Equal(t, 0.0, zero.TimeRatio(1))
}
