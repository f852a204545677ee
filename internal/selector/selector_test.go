package selector

import (
	"context"
	"errors"
	"testing"

	"github.com/alexanderramin/liftplan/internal/domain"
	"github.com/alexanderramin/liftplan/internal/scoring"
	"github.com/alexanderramin/liftplan/internal/testutil"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func candidates(statics ...float64) []Candidate {
	out := make([]Candidate, len(statics))
	for i, s := range statics {
		out[i] = Candidate{
			Exercise: testutil.NewTestExercise(i+1, "Ex"),
			Static:   s,
		}
	}
	return out
}

func ids(records []domain.SelectionRecord) []int {
	out := make([]int, len(records))
	for i, r := range records {
		out[i] = r.ExerciseID
	}
	return out
}

func emptyScorer() *scoring.Scorer {
	return scoring.NewScorer(scoring.DefaultWeights(), testutil.NewClassification().Build(), nil)
}

func TestCanonicalSort_StaticDescThenIDAsc(t *testing.T) {
	pool := []Candidate{
		{Exercise: domain.Exercise{ID: 4}, Static: 5},
		{Exercise: domain.Exercise{ID: 2}, Static: 7},
		{Exercise: domain.Exercise{ID: 3}, Static: 5},
		{Exercise: domain.Exercise{ID: 1}, Static: 1},
	}
	CanonicalSort(pool)

	got := make([]int, len(pool))
	for i, c := range pool {
		got[i] = c.ID()
	}
	assert.Equal(t, []int{2, 3, 4, 1}, got)
}

func TestSelect_FiveDistinctCandidatesNoClassification(t *testing.T) {
	scorer := emptyScorer()
	pool := candidates(3, 9, 1, 7, 5)

	for _, strategy := range domain.Strategies {
		t.Run(string(strategy), func(t *testing.T) {
			sel, err := New(strategy, scorer, DefaultParams())
			require.NoError(t, err)

			got, err := sel.Select(context.Background(), pool, nil)
			require.NoError(t, err)

			assert.Equal(t, []int{2, 4, 5, 1, 3}, ids(got.Records))
			for i, r := range got.Records {
				assert.Equal(t, 0.0, r.DynamicScore)
				assert.Equal(t, r.StaticScore, r.TotalScore)
				assert.Equal(t, i+1, r.Position)
			}
			assert.InDelta(t, 25.0, got.TotalScore(), 1e-9)
		})
	}
}

func TestSelect_PoolSmallerThanPositions(t *testing.T) {
	scorer := emptyScorer()
	pool := candidates(2, 6, 4)

	for _, strategy := range domain.Strategies {
		t.Run(string(strategy), func(t *testing.T) {
			sel, err := New(strategy, scorer, DefaultParams())
			require.NoError(t, err)

			got, err := sel.Select(context.Background(), pool, nil)
			require.NoError(t, err)
			require.Len(t, got.Records, 3)

			seen := domain.NewIDSet()
			for _, r := range got.Records {
				assert.False(t, seen.Has(r.ExerciseID), "duplicate id %d", r.ExerciseID)
				seen.Add(r.ExerciseID)
			}
		})
	}
}

func TestSelect_EmptyPool(t *testing.T) {
	for _, strategy := range domain.Strategies {
		sel, err := New(strategy, emptyScorer(), DefaultParams())
		require.NoError(t, err)

		got, err := sel.Select(context.Background(), nil, nil)
		require.NoError(t, err)
		assert.Empty(t, got.Records)
	}
}

func TestGreedy_Deterministic(t *testing.T) {
	cls, pool := randomInstance(7, 18)
	scorer := scoring.NewScorer(scoring.DefaultWeights(), cls, nil)
	weekly := domain.NewIDSet(1, 4, 9)
	g := NewGreedy(scorer, DefaultParams())

	first, err := g.Select(context.Background(), pool, weekly)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		again, err := g.Select(context.Background(), pool, weekly)
		require.NoError(t, err)
		if diff := cmp.Diff(first.Records, again.Records); diff != "" {
			t.Fatalf("greedy output changed between runs (-first +again):\n%s", diff)
		}
	}
}

func TestGreedy_IgnoresInputOrder(t *testing.T) {
	scorer := emptyScorer()
	pool := candidates(4, 4, 4, 4, 4, 4)
	reversed := make([]Candidate, len(pool))
	for i := range pool {
		reversed[len(pool)-1-i] = pool[i]
	}

	a, err := NewGreedy(scorer, DefaultParams()).Select(context.Background(), pool, nil)
	require.NoError(t, err)
	b, err := NewGreedy(scorer, DefaultParams()).Select(context.Background(), reversed, nil)
	require.NoError(t, err)

	assert.Equal(t, []int{1, 2, 3, 4, 5}, ids(a.Records), "ties go to the lower id")
	assert.Equal(t, ids(a.Records), ids(b.Records))
	assert.Equal(t, 6, reversed[0].ID(), "caller slice is not reordered")
}

func TestGreedy_WeeklyRepeatPushesUsedExerciseDown(t *testing.T) {
	scorer := scoring.NewScorer(scoring.Weights{
		Penalties: scoring.Penalties{WeeklyRepeat: -8},
	}, testutil.NewClassification().Build(), nil)
	pool := candidates(15, 14, 13, 12, 11, 10)

	got, err := NewGreedy(scorer, DefaultParams()).Select(context.Background(), pool, domain.NewIDSet(1))
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3, 4, 5, 6}, ids(got.Records))
}

func TestExhaustive_RejectsPoolOverCeiling(t *testing.T) {
	params := DefaultParams()
	params.ExhaustiveCeiling = 10
	pool := candidates(make([]float64, 11)...)

	_, err := NewExhaustive(emptyScorer(), params).Select(context.Background(), pool, nil)
	require.Error(t, err)

	var selErr *SelectError
	require.True(t, errors.As(err, &selErr))
	assert.Equal(t, ErrPoolExceedsCeiling, selErr.Code)
}

func TestExhaustive_EvaluatesEveryCombination(t *testing.T) {
	pool := candidates(1, 2, 3, 4, 5, 6, 7)

	got, err := NewExhaustive(emptyScorer(), DefaultParams()).Select(context.Background(), pool, nil)
	require.NoError(t, err)
	assert.Equal(t, 21, got.Evaluated, "C(7,5)")
	assert.Equal(t, domain.MethodExhaustive, got.Method)
}

func TestExhaustive_FindsSubsetGreedyMisses(t *testing.T) {
	// Exercise 1 overlaps both others; greedy opens with it and pays for it.
	cls := testutil.NewClassification().
		Category("chest", 1, 2).
		Category("shoulder", 1, 2).
		Category("arm", 1, 2).
		Category("back", 1, 3).
		Category("leg", 1, 3).
		Category("core", 1, 3).
		Build()
	scorer := scoring.NewScorer(scoring.Weights{
		Penalties: scoring.Penalties{SameMuscleGroup: -1},
	}, cls, nil)
	params := Params{PositionsPerDay: 2, ExhaustiveCeiling: 30, MaxLocalSearchPasses: 100}
	pool := candidates(10, 9, 9)

	greedy, err := NewGreedy(scorer, params).Select(context.Background(), pool, nil)
	require.NoError(t, err)
	exhaustive, err := NewExhaustive(scorer, params).Select(context.Background(), pool, nil)
	require.NoError(t, err)

	assert.Equal(t, []int{1, 2}, ids(greedy.Records))
	assert.InDelta(t, 16.0, greedy.TotalScore(), 1e-9)
	assert.Equal(t, []int{2, 3}, ids(exhaustive.Records))
	assert.InDelta(t, 18.0, exhaustive.TotalScore(), 1e-9)
}

func TestExhaustive_CancelledContext(t *testing.T) {
	params := Params{PositionsPerDay: 5, ExhaustiveCeiling: 30, MaxLocalSearchPasses: 100}
	pool := candidates(make([]float64, 30)...)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewExhaustive(emptyScorer(), params).Select(ctx, pool, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)

	var selErr *SelectError
	require.True(t, errors.As(err, &selErr))
	assert.Equal(t, ErrCancelled, selErr.Code)
}

func TestHybrid_DelegatesWithinCeiling(t *testing.T) {
	pool := candidates(make([]float64, 12)...)

	got, err := NewHybrid(emptyScorer(), DefaultParams()).Select(context.Background(), pool, nil)
	require.NoError(t, err)
	assert.Equal(t, domain.MethodExhaustive, got.Method)
}

func TestHybrid_LocalSearchAboveCeiling(t *testing.T) {
	cls, pool := randomInstance(11, 40)
	scorer := scoring.NewScorer(scoring.DefaultWeights(), cls, nil)

	got, err := NewHybrid(scorer, DefaultParams()).Select(context.Background(), pool, nil)
	require.NoError(t, err)

	assert.Equal(t, domain.MethodLocalSearch, got.Method)
	assert.Len(t, got.Records, 5)
	assert.GreaterOrEqual(t, got.Passes, 1)
	assert.GreaterOrEqual(t, got.TotalScore()+1e-9, got.InitialScore)
}

func TestHybrid_SwapImprovesGreedyOrder(t *testing.T) {
	// B wins slot one on its small bonus, then A takes slot two and never
	// reaches the last slot where its bonus lives.
	cls := testutil.NewClassification().
		Second(domain.AxisSize, 1).
		First(domain.AxisSize, 2).
		Build()
	scorer := scoring.NewScorer(scoring.Weights{
		Position: map[domain.Axis]scoring.PositionTable{
			domain.AxisSize: {First: []float64{2, 0, 0}, Second: []float64{0, 0, 9}},
		},
	}, cls, nil)
	params := Params{PositionsPerDay: 3, ExhaustiveCeiling: 0, MaxLocalSearchPasses: 100}
	pool := []Candidate{
		{Exercise: testutil.NewTestExercise(1, "A"), Static: 10},
		{Exercise: testutil.NewTestExercise(2, "B"), Static: 9},
		{Exercise: testutil.NewTestExercise(3, "C"), Static: 9},
	}

	greedy, err := NewGreedy(scorer, params).Select(context.Background(), pool, nil)
	require.NoError(t, err)
	hybrid, err := NewHybrid(scorer, params).Select(context.Background(), pool, nil)
	require.NoError(t, err)

	assert.Equal(t, []int{2, 1, 3}, ids(greedy.Records))
	assert.InDelta(t, 30.0, greedy.TotalScore(), 1e-9)

	assert.Equal(t, domain.MethodLocalSearch, hybrid.Method)
	assert.Equal(t, []int{2, 3, 1}, ids(hybrid.Records))
	assert.InDelta(t, 39.0, hybrid.TotalScore(), 1e-9)
	assert.InDelta(t, 30.0, hybrid.InitialScore, 1e-9)
	assert.Equal(t, 2, hybrid.Passes, "one improving scan, one confirming scan")
}

func TestHybrid_PassCapBoundsSearch(t *testing.T) {
	cls, pool := randomInstance(3, 40)
	scorer := scoring.NewScorer(scoring.DefaultWeights(), cls, nil)
	params := DefaultParams()
	params.MaxLocalSearchPasses = 1

	got, err := NewHybrid(scorer, params).Select(context.Background(), pool, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Passes)
}

func TestHybrid_CancelledContext(t *testing.T) {
	_, pool := randomInstance(5, 35)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewHybrid(emptyScorer(), DefaultParams()).Select(ctx, pool, nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNew_UnknownStrategy(t *testing.T) {
	_, err := New(domain.Strategy("random"), emptyScorer(), DefaultParams())
	assert.Error(t, err)
}

func TestForEachCombination_Lexicographic(t *testing.T) {
	var got [][]int
	err := forEachCombination(4, 2, func(idx []int) error {
		got = append(got, append([]int(nil), idx...))
		return nil
	})
	require.NoError(t, err)

	want := [][]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("combinations mismatch (-want +got):\n%s", diff)
	}
}

func TestNewCandidates_ScoresAndOrders(t *testing.T) {
	pool := NewCandidates(emptyScorer(), testutil.NewTestCatalog(8))

	got := make([]int, len(pool))
	for i, c := range pool {
		got[i] = c.ID()
	}
	assert.Equal(t, []int{6, 7, 8, 5, 4, 3, 2, 1}, got, "ties on six muscles fall back to id")
	assert.Equal(t, pool[0].Static, pool[2].Static)
	assert.Greater(t, pool[3].Static, pool[4].Static)
}

func TestHybrid_FortyCandidatesUsesLocalSearch(t *testing.T) {
	scorer := emptyScorer()
	pool := NewCandidates(scorer, testutil.NewTestCatalog(40))

	sel, err := New(domain.StrategyHybrid, scorer, DefaultParams())
	require.NoError(t, err)
	got, err := sel.Select(context.Background(), pool, domain.NewIDSet())
	require.NoError(t, err)

	assert.Equal(t, domain.MethodLocalSearch, got.Method)
	assert.Len(t, got.Records, 5)
	assert.GreaterOrEqual(t, got.Passes, 1)
}
