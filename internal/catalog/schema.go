package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/alexanderramin/liftplan/internal/domain"
)

// File names inside a data directory.
const (
	ExercisesFile  = "strength.json"
	ScoringFile    = "config.json"
	ClassDir       = "classification"
	CategoryFile   = "categoryMapping.json"
	PreferenceFile = "preferenceMapping.json"
	TemplatesFile  = "trainingTemplates.json"
	SizeFile       = "type1_isMajor.json"
	MechanicsFile  = "type2_isCompound.json"
	LateralityFile = "type3_isSingle.json"
	EquipmentFile  = "type4_isMachine.json"
	CommonFile     = "type5_isCommon.json"
	FamilyFile     = "type6_movementFamily.json"
)

// CommonKey is the single key of the commonality file.
const CommonKey = "Common"

// AxisSource describes how one binary axis is stored on disk.
type AxisSource struct {
	File      string
	FirstKey  string
	SecondKey string
}

// AxisSources maps every axis to its file and side keys.
var AxisSources = map[domain.Axis]AxisSource{
	domain.AxisSize:       {File: SizeFile, FirstKey: "Major", SecondKey: "Minor"},
	domain.AxisMechanics:  {File: MechanicsFile, FirstKey: "compound", SecondKey: "isolation"},
	domain.AxisEquipment:  {File: EquipmentFile, FirstKey: "free", SecondKey: "equipment"},
	domain.AxisLaterality: {File: LateralityFile, FirstKey: "bilateral", SecondKey: "single_sided"},
}

// ExerciseImport is one record of strength.json.
type ExerciseImport struct {
	PK               int      `json:"pk"`
	Name             string   `json:"name"`
	PrimaryMuscles   []string `json:"primaryMuscles"`
	SecondaryMuscles []string `json:"secondaryMuscles"`
}

// DataSchema is the raw content of a data directory, minus scoring config.
type DataSchema struct {
	Exercises   []ExerciseImport
	Categories  map[string][]int
	Preferences map[string][]string
	// Templates is keyed by the training-day count as a string ("1".."7").
	// An empty inner list is a rest day.
	Templates map[string][][]string
	Axes      map[domain.Axis]map[string][]int
	Common    map[string][]int
	Families  map[string][]int
}

// LoadDataSchema reads every catalog and classification file under dir.
func LoadDataSchema(dir string) (*DataSchema, error) {
	schema := &DataSchema{Axes: make(map[domain.Axis]map[string][]int)}
	classDir := filepath.Join(dir, ClassDir)

	if err := readJSON(filepath.Join(dir, ExercisesFile), &schema.Exercises); err != nil {
		return nil, err
	}
	files := []struct {
		name string
		into any
	}{
		{CategoryFile, &schema.Categories},
		{PreferenceFile, &schema.Preferences},
		{TemplatesFile, &schema.Templates},
		{CommonFile, &schema.Common},
		{FamilyFile, &schema.Families},
	}
	for _, f := range files {
		if err := readJSON(filepath.Join(classDir, f.name), f.into); err != nil {
			return nil, err
		}
	}
	for _, axis := range domain.Axes {
		var sides map[string][]int
		if err := readJSON(filepath.Join(classDir, AxisSources[axis].File), &sides); err != nil {
			return nil, err
		}
		schema.Axes[axis] = sides
	}

	return schema, nil
}

func readJSON(path string, into any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", filepath.Base(path), err)
	}
	if err := json.Unmarshal(data, into); err != nil {
		return fmt.Errorf("parsing %s: %w", filepath.Base(path), err)
	}
	return nil
}
