package planner

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/alexanderramin/liftplan/internal/catalog"
	"github.com/alexanderramin/liftplan/internal/domain"
	"github.com/alexanderramin/liftplan/internal/scoring"
	"github.com/alexanderramin/liftplan/internal/selector"
	"github.com/google/uuid"
)

// Options configures a Planner. Zero values fall back to the stock scoring
// configuration, the hybrid strategy and no exclusions.
type Options struct {
	Strategy      domain.Strategy
	Weights       *scoring.Weights
	Params        *selector.Params
	Preferences   map[string]float64
	ExcludedIDs   domain.IDSet
	ExcludedNames []string
	Observer      Observer

	// Now stamps GeneratedAt; NewID produces the run id.
	Now   func() time.Time
	NewID func() string
}

// Planner runs one selector over a catalog, day by day.
type Planner struct {
	catalog       *catalog.Catalog
	scorer        *scoring.Scorer
	selector      selector.Selector
	excludedIDs   domain.IDSet
	excludedNames []string
	observer      Observer
	now           func() time.Time
	newID         func() string
}

func New(cat *catalog.Catalog, opts Options) (*Planner, error) {
	strategy := opts.Strategy
	if strategy == "" {
		strategy = domain.StrategyHybrid
	}
	weights := scoring.DefaultWeights()
	if opts.Weights != nil {
		weights = *opts.Weights
	}
	params := selector.DefaultParams()
	if opts.Params != nil {
		params = *opts.Params
	}

	scorer := scoring.NewScorer(weights, cat.Classification(), opts.Preferences)
	sel, err := selector.New(strategy, scorer, params)
	if err != nil {
		return nil, err
	}

	p := &Planner{
		catalog:     cat,
		scorer:      scorer,
		selector:    sel,
		excludedIDs: opts.ExcludedIDs,
		observer:    observerOrNoop(opts.Observer),
		now:         opts.Now,
		newID:       opts.NewID,
	}
	if p.excludedIDs == nil {
		p.excludedIDs = domain.NewIDSet()
	}
	for _, name := range opts.ExcludedNames {
		if name = strings.ToLower(strings.TrimSpace(name)); name != "" {
			p.excludedNames = append(p.excludedNames, name)
		}
	}
	if p.now == nil {
		p.now = func() time.Time { return time.Now().UTC() }
	}
	if p.newID == nil {
		p.newID = uuid.NewString
	}
	return p, nil
}

func (p *Planner) Strategy() domain.Strategy {
	return p.selector.Strategy()
}

func (p *Planner) Scorer() *scoring.Scorer {
	return p.scorer
}

func (p *Planner) Catalog() *catalog.Catalog {
	return p.catalog
}

// GenerateWeeklyPlan walks the template in order. Each day sees every id
// chosen on earlier days and none of its own until it is finished.
func (p *Planner) GenerateWeeklyPlan(ctx context.Context, tpl domain.WeekTemplate) (_ *domain.WeeklyPlan, err error) {
	start := time.Now()
	plan := domain.NewWeeklyPlan(p.newID(), p.Strategy(), p.now())

	defer func() {
		fields := map[string]any{
			"run_id":        plan.ID,
			"strategy":      string(plan.Strategy),
			"training_days": tpl.TrainingDays,
			"days":          len(tpl.Days),
		}
		if err == nil {
			fields["total_score"] = round2(plan.TotalScore())
			fields["unique_exercises"] = plan.Used().Len()
		}
		p.observer.Observe(ctx, Event{
			Name:      EventPlanWeek,
			Duration:  time.Since(start),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
			StartedAt: start,
		})
	}()

	for i, dt := range tpl.Days {
		day, err := p.PlanDay(ctx, i, dt, plan.Used())
		if err != nil {
			return nil, fmt.Errorf("planning %s: %w", domain.DayName(i), err)
		}
		plan.AppendDay(day)
	}

	return plan, nil
}

// PlanDay selects one day against a read-only weekly-used set.
func (p *Planner) PlanDay(ctx context.Context, index int, dt domain.DayTemplate, weekly domain.IDSet) (domain.DayPlan, error) {
	day := domain.DayPlan{
		Name:         domain.DayName(index),
		Label:        DayLabel(dt.MuscleGroups),
		MuscleGroups: dt.MuscleGroups,
		Rest:         dt.IsRest(),
		Selections:   []domain.SelectionRecord{},
	}
	if day.Rest {
		return day, nil
	}

	start := time.Now()
	pool, res := p.Pool(dt.MuscleGroups)
	sel, err := p.selector.Select(ctx, pool, weekly)

	fields := map[string]any{
		"day":           day.Name,
		"label":         day.Label,
		"candidates":    len(pool),
		"weekly_before": weekly.Len(),
	}
	if len(res.Unknown) > 0 {
		fields["unknown_tags"] = strings.Join(res.Unknown, ",")
	}
	if res.Excluded > 0 {
		fields["excluded"] = res.Excluded
	}
	if err == nil {
		day.Method = sel.Method
		day.Selections = sel.Records
		day.TotalScore = sel.TotalScore()

		fields["method"] = string(sel.Method)
		fields["selected"] = len(sel.Records)
		fields["score"] = round2(day.TotalScore)
		fields["weekly_after"] = weekly.Len() + countNew(sel.Records, weekly)
		if sel.Method == domain.MethodExhaustive {
			fields["evaluated"] = sel.Evaluated
		}
		if sel.Method == domain.MethodLocalSearch {
			fields["passes"] = sel.Passes
			fields["initial_score"] = round2(sel.InitialScore)
		}
	}
	p.observer.Observe(ctx, Event{
		Name:      EventPlanDay,
		Duration:  time.Since(start),
		Success:   err == nil,
		Err:       err,
		Fields:    fields,
		StartedAt: start,
	})
	if err != nil {
		return domain.DayPlan{}, err
	}
	return day, nil
}

// Resolution describes how a day's muscle groups became a candidate pool.
type Resolution struct {
	IDs      []int
	Unknown  []string
	Excluded int
	All      bool
}

// Resolve maps muscle-group tags to candidate ids, ascending. Unknown tags
// are skipped; an empty result or the lone "all" tag selects the whole
// catalog. Ids absent from the catalog and excluded exercises are dropped.
func (p *Planner) Resolve(groups []string) Resolution {
	cls := p.catalog.Classification()
	var res Resolution
	ids := domain.NewIDSet()
	seen := make(map[string]bool, len(groups))

	for _, g := range groups {
		if g == catalog.AllTag || seen[g] {
			continue
		}
		seen[g] = true
		members, ok := cls.Categories[g]
		if !ok {
			res.Unknown = append(res.Unknown, g)
			continue
		}
		for id := range members {
			if p.catalog.Has(id) {
				ids.Add(id)
			}
		}
	}

	if ids.Len() == 0 || (len(groups) == 1 && groups[0] == catalog.AllTag) {
		res.All = true
		for _, ex := range p.catalog.Exercises() {
			ids.Add(ex.ID)
		}
	}

	for _, id := range ids.Sorted() {
		ex, _ := p.catalog.Exercise(id)
		if p.isExcluded(ex) {
			res.Excluded++
			continue
		}
		res.IDs = append(res.IDs, id)
	}
	return res
}

// Pool resolves groups and statically scores the survivors in canonical order.
func (p *Planner) Pool(groups []string) ([]selector.Candidate, Resolution) {
	res := p.Resolve(groups)
	exercises := make([]domain.Exercise, 0, len(res.IDs))
	for _, id := range res.IDs {
		ex, _ := p.catalog.Exercise(id)
		exercises = append(exercises, ex)
	}
	return selector.NewCandidates(p.scorer, exercises), res
}

func (p *Planner) isExcluded(ex domain.Exercise) bool {
	if p.excludedIDs.Has(ex.ID) {
		return true
	}
	name := strings.ToLower(ex.Name)
	for _, sub := range p.excludedNames {
		if strings.Contains(name, sub) {
			return true
		}
	}
	return false
}

// ExcludedExercises lists the catalog entries removed by id or name, by id.
func (p *Planner) ExcludedExercises() []domain.Exercise {
	var out []domain.Exercise
	for _, ex := range p.catalog.Exercises() {
		if p.isExcluded(ex) {
			out = append(out, ex)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// DayExplanation holds the dynamic-score breakdown for each record of a day.
type DayExplanation struct {
	Day     string             `json:"day"`
	Reasons [][]scoring.Reason `json:"reasons"`
}

// Explain replays plan and returns why each record scored what it did.
// Days are replayed in order so every record sees the same context it was
// selected in.
func (p *Planner) Explain(plan *domain.WeeklyPlan) []DayExplanation {
	weekly := domain.NewIDSet()
	out := make([]DayExplanation, 0, len(plan.Days))
	for _, day := range plan.Days {
		exp := DayExplanation{Day: day.Name, Reasons: make([][]scoring.Reason, len(day.Selections))}
		ctx := p.scorer.NewDay(weekly)
		for i, rec := range day.Selections {
			exp.Reasons[i] = p.scorer.Explain(rec.ExerciseID, i, ctx)
			ctx.Place(rec.ExerciseID)
		}
		for _, rec := range day.Selections {
			weekly.Add(rec.ExerciseID)
		}
		out = append(out, exp)
	}
	return out
}

func countNew(records []domain.SelectionRecord, weekly domain.IDSet) int {
	n := 0
	seen := domain.NewIDSet()
	for _, r := range records {
		if !weekly.Has(r.ExerciseID) && !seen.Has(r.ExerciseID) {
			n++
		}
		seen.Add(r.ExerciseID)
	}
	return n
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
