package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

// DataFiles is a data directory as relative path -> JSON-encodable content.
type DataFiles map[string]any

// SampleDataFiles returns a small, internally consistent data directory:
// ten exercises across six muscle groups and templates for 1-3 days.
func SampleDataFiles() DataFiles {
	return DataFiles{
		"strength.json": []map[string]any{
			{"pk": 1, "name": "Barbell Bench Press", "primaryMuscles": []string{"chest"}, "secondaryMuscles": []string{"tricep", "shoulder - front"}},
			{"pk": 2, "name": "Incline Dumbbell Press", "primaryMuscles": []string{"chest", "shoulder - front"}, "secondaryMuscles": []string{"tricep"}},
			{"pk": 3, "name": "Cable Fly", "primaryMuscles": []string{"chest"}, "secondaryMuscles": []string{}},
			{"pk": 4, "name": "Barbell Row", "primaryMuscles": []string{"lat", "upper back"}, "secondaryMuscles": []string{"bicep"}},
			{"pk": 5, "name": "Lat Pulldown", "primaryMuscles": []string{"lat"}, "secondaryMuscles": []string{"bicep"}},
			{"pk": 6, "name": "Back Squat", "primaryMuscles": []string{"quad", "glute"}, "secondaryMuscles": []string{"lower back"}},
			{"pk": 7, "name": "Romanian Deadlift", "primaryMuscles": []string{"hamstring", "glute"}, "secondaryMuscles": []string{"lower back"}},
			{"pk": 8, "name": "Lateral Raise", "primaryMuscles": []string{"shoulder - side"}, "secondaryMuscles": []string{}},
			{"pk": 9, "name": "Triceps Pushdown", "primaryMuscles": []string{"tricep"}, "secondaryMuscles": []string{}},
			{"pk": 10, "name": "Plank", "primaryMuscles": []string{"abs"}, "secondaryMuscles": []string{"lower back"}},
		},
		"config.json": SampleScoringConfig(),
		"classification/categoryMapping.json": map[string][]int{
			"chest":    {1, 2, 3},
			"back":     {4, 5},
			"legs":     {6, 7},
			"shoulder": {1, 2, 8},
			"tricep":   {1, 9},
			"core":     {10},
		},
		"classification/preferenceMapping.json": map[string][]string{
			"chest":    {"chest"},
			"back":     {"lat", "upper back", "lower back"},
			"shoulder": {"shoulder - front", "shoulder - side"},
			"arm":      {"bicep", "tricep"},
			"leg":      {"quad", "glute", "hamstring"},
			"core":     {"abs"},
		},
		"classification/trainingTemplates.json": map[string][][]string{
			"1": {{"all"}},
			"2": {{"chest", "shoulder", "tricep"}, {}, {"back", "legs"}},
			"3": {{"chest", "shoulder", "tricep"}, {"back"}, {}, {"legs", "core"}},
		},
		"classification/type1_isMajor.json":        map[string][]int{"Major": {1, 2, 4, 5, 6, 7}, "Minor": {3, 8, 9, 10}},
		"classification/type2_isCompound.json":     map[string][]int{"compound": {1, 2, 4, 5, 6, 7}, "isolation": {3, 8, 9, 10}},
		"classification/type3_isSingle.json":       map[string][]int{"bilateral": {1, 2, 3, 4, 5, 6, 7, 9, 10}, "single_sided": {8}},
		"classification/type4_isMachine.json":      map[string][]int{"free": {1, 2, 4, 6, 7, 8, 10}, "equipment": {3, 5, 9}},
		"classification/type5_isCommon.json":       map[string][]int{"Common": {1, 4, 6}},
		"classification/type6_movementFamily.json": map[string][]int{"press": {1, 2}, "pull": {4, 5}, "squat": {6}, "hinge": {7}},
	}
}

// SampleScoringConfig returns a complete config.json document.
func SampleScoringConfig() map[string]any {
	return map[string]any{
		"scoring_weights": map[string]any{
			"primary_muscle":        map[string]any{"base_score": 3.0},
			"secondary_muscle":      map[string]any{"base_score": 2.0},
			"full_score_limit":      2,
			"decay_factor":          0.5,
			"common_exercise_bonus": map[string]any{"score": 2.0},
		},
		"position_scores": map[string]any{
			"major_muscle": map[string]any{"scores": []float64{8, 5, 0, 0, 0}},
			"minor_muscle": map[string]any{"scores": []float64{0, 0, 0, 5, 8}},
			"compound":     map[string]any{"scores": []float64{8, 5, 0, 0, 0}},
			"isolation":    map[string]any{"scores": []float64{0, 0, 0, 5, 8}},
			"free_weight":  map[string]any{"scores": []float64{3, 2, 0, 0, 0}},
			"equipment":    map[string]any{"scores": []float64{0, 0, 0, 2, 3}},
		},
		"diversity_rules": map[string]any{
			"balance_threshold": 3,
			"balance_penalty":   -3.0,
			"penalties": map[string]any{
				"same_family":       -10.0,
				"weekly_repeat":     -8.0,
				"same_muscle_group": -1.0,
			},
		},
		"algorithm_params": map[string]any{
			"exercises_per_day":       5,
			"exhaustive_ceiling":      30,
			"max_local_search_passes": 100,
		},
	}
}

// WriteDataDir writes files under a fresh temp directory and returns it.
func WriteDataDir(t testing.TB, files DataFiles) string {
	t.Helper()
	dir := t.TempDir()
	for rel, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("creating %s: %v", filepath.Dir(path), err)
		}
		data, err := json.MarshalIndent(content, "", "  ")
		if err != nil {
			t.Fatalf("encoding %s: %v", rel, err)
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			t.Fatalf("writing %s: %v", rel, err)
		}
	}
	return dir
}
