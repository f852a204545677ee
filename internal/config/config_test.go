package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alexanderramin/liftplan/internal/catalog"
	"github.com/alexanderramin/liftplan/internal/domain"
	"github.com/alexanderramin/liftplan/internal/scoring"
	"github.com/alexanderramin/liftplan/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodeScoring(t *testing.T, doc map[string]any) []byte {
	t.Helper()
	data, err := json.Marshal(doc)
	require.NoError(t, err)
	return data
}

func section(doc map[string]any, key string) map[string]any {
	return doc[key].(map[string]any)
}

func TestParseScoring_SampleMatchesDefaults(t *testing.T) {
	s, err := ParseScoring(encodeScoring(t, testutil.SampleScoringConfig()))
	require.NoError(t, err)

	assert.Equal(t, DefaultScoring(), *s)
}

func TestParseScoring_MissingParametersReportedTogether(t *testing.T) {
	doc := testutil.SampleScoringConfig()
	delete(section(doc, "scoring_weights"), "decay_factor")
	delete(section(section(doc, "diversity_rules"), "penalties"), "weekly_repeat")
	delete(section(doc, "position_scores"), "isolation")

	_, err := ParseScoring(encodeScoring(t, doc))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingParameter)

	msg := err.Error()
	assert.Contains(t, msg, "scoring_weights.decay_factor")
	assert.Contains(t, msg, "diversity_rules.penalties.weekly_repeat")
	assert.Contains(t, msg, "position_scores.isolation.scores")
}

func TestParseScoring_ZeroIsNotMissing(t *testing.T) {
	doc := testutil.SampleScoringConfig()
	section(section(doc, "diversity_rules"), "penalties")["weekly_repeat"] = 0.0

	s, err := ParseScoring(encodeScoring(t, doc))
	require.NoError(t, err)
	assert.Equal(t, 0.0, s.Weights.Penalties.WeeklyRepeat)
}

func TestParseScoring_PositionTableLength(t *testing.T) {
	doc := testutil.SampleScoringConfig()
	section(doc, "algorithm_params")["exercises_per_day"] = 4

	_, err := ParseScoring(encodeScoring(t, doc))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "position_scores.major_muscle.scores: has 5 entries, exercises_per_day is 4")
}

func TestParseScoring_PositivePenaltyRejected(t *testing.T) {
	doc := testutil.SampleScoringConfig()
	section(section(doc, "diversity_rules"), "penalties")["same_family"] = 10.0
	section(doc, "diversity_rules")["balance_penalty"] = 3.0

	_, err := ParseScoring(encodeScoring(t, doc))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "diversity_rules.penalties.same_family must be zero or negative")
	assert.Contains(t, err.Error(), "balance penalty for laterality must be zero or negative")
}

func TestParseScoring_AxisOverrides(t *testing.T) {
	doc := testutil.SampleScoringConfig()
	section(doc, "diversity_rules")["axes"] = map[string]any{
		"size":       map[string]any{"threshold": 2},
		"laterality": map[string]any{"penalty": -5.0},
	}

	s, err := ParseScoring(encodeScoring(t, doc))
	require.NoError(t, err)

	assert.Equal(t, scoring.BalanceRule{Threshold: 2, Penalty: -3}, s.Weights.Balance[domain.AxisSize])
	assert.Equal(t, scoring.BalanceRule{Threshold: 3, Penalty: -5}, s.Weights.Balance[domain.AxisLaterality])
	assert.Equal(t, scoring.BalanceRule{Threshold: 3, Penalty: -3}, s.Weights.Balance[domain.AxisMechanics])
}

func TestParseScoring_UnknownAxisAndPolicy(t *testing.T) {
	doc := testutil.SampleScoringConfig()
	section(doc, "diversity_rules")["axes"] = map[string]any{"tempo": map[string]any{"threshold": 2}}
	section(doc, "scoring_weights")["policy"] = "linear"

	_, err := ParseScoring(encodeScoring(t, doc))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown axis "tempo"`)
	assert.Contains(t, err.Error(), `invalid value "linear"`)
}

func TestParseScoring_EqualSharePolicy(t *testing.T) {
	doc := testutil.SampleScoringConfig()
	section(doc, "scoring_weights")["policy"] = "equal_share"

	s, err := ParseScoring(encodeScoring(t, doc))
	require.NoError(t, err)
	assert.Equal(t, domain.PolicyEqualShare, s.Weights.Policy)
}

func TestParseScoring_MalformedJSON(t *testing.T) {
	_, err := ParseScoring([]byte(`{"scoring_weights": `))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing scoring config")
}

func TestLoadScoring_FromDataDir(t *testing.T) {
	dir := testutil.WriteDataDir(t, testutil.SampleDataFiles())

	s, err := LoadScoring(filepath.Join(dir, catalog.ScoringFile))
	require.NoError(t, err)
	assert.Equal(t, 5, s.Params.PositionsPerDay)
}

func TestLoadScoring_ShippedConfigMatchesDefaults(t *testing.T) {
	s, err := LoadScoring(filepath.Join("..", "..", "data", catalog.ScoringFile))
	require.NoError(t, err)
	assert.Equal(t, DefaultScoring(), *s)
}

func TestLoadUser_ShippedExample(t *testing.T) {
	t.Setenv(EnvTrainingDays, "")
	t.Setenv(EnvStrategy, "")

	u, err := LoadUser(filepath.Join("..", "..", "data", "liftplan.example.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 5, u.TrainingDays)
	assert.Equal(t, map[string]float64{"shoulder": 1.5, "arm": 0.8}, u.NonDefaultPreferences())
	assert.Equal(t, []string{"Smith Machine"}, u.ExcludedNames)
}

func writeYAML(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "liftplan.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadUser_Defaults(t *testing.T) {
	cfg, err := LoadUser("")
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.TrainingDays)
	assert.Equal(t, domain.StrategyHybrid, cfg.Strategy)
	assert.Empty(t, cfg.ExcludedExercises)
	assert.Empty(t, cfg.NonDefaultPreferences())
}

func TestLoadUser_File(t *testing.T) {
	path := writeYAML(t, `
training_days: 3
strategy: greedy
muscle_preferences:
  chest: 1.0
  shoulder: 1.5
excluded_exercises: [35, 7]
excluded_names: ["Smith Machine"]
`)
	cfg, err := LoadUser(path)
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.TrainingDays)
	assert.Equal(t, domain.StrategyGreedy, cfg.Strategy)
	assert.Equal(t, map[string]float64{"shoulder": 1.5}, cfg.NonDefaultPreferences())
	assert.Equal(t, []string{"chest", "shoulder"}, cfg.PreferenceCategories())
	assert.True(t, cfg.ExcludedIDs().Has(35))
	assert.Equal(t, []string{"Smith Machine"}, cfg.ExcludedNames)
}

func TestLoadUser_EnvOverride(t *testing.T) {
	path := writeYAML(t, "training_days: 3\nstrategy: greedy\n")
	t.Setenv(EnvTrainingDays, "6")
	t.Setenv(EnvStrategy, "EXHAUSTIVE")

	cfg, err := LoadUser(path)
	require.NoError(t, err)
	assert.Equal(t, 6, cfg.TrainingDays)
	assert.Equal(t, domain.StrategyExhaustive, cfg.Strategy)
}

func TestLoadUser_Invalid(t *testing.T) {
	path := writeYAML(t, `
training_days: 9
strategy: random
muscle_preferences: {back: -1}
excluded_names: ["  "]
`)
	_, err := LoadUser(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, catalog.ErrUndefinedTemplate)

	msg := err.Error()
	for _, want := range []string{"training_days", `unknown strategy "random"`, "muscle_preferences.back", "excluded_names[0]"} {
		assert.True(t, strings.Contains(msg, want), "missing %q in %q", want, msg)
	}
}

func TestLoadUser_MissingFile(t *testing.T) {
	_, err := LoadUser(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config file")
}

func TestResolvePaths(t *testing.T) {
	dataDir, cfgPath := ResolvePaths("", "")
	assert.Equal(t, DefaultDataDir, dataDir)
	assert.Empty(t, cfgPath)

	t.Setenv(EnvDataDir, "/srv/liftplan")
	t.Setenv(EnvConfigPath, "/etc/liftplan.yaml")
	dataDir, cfgPath = ResolvePaths("", "")
	assert.Equal(t, "/srv/liftplan", dataDir)
	assert.Equal(t, "/etc/liftplan.yaml", cfgPath)

	dataDir, cfgPath = ResolvePaths("./mine", "me.yaml")
	assert.Equal(t, "./mine", dataDir)
	assert.Equal(t, "me.yaml", cfgPath)
}
