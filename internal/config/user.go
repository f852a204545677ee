package config

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/alexanderramin/liftplan/internal/catalog"
	"github.com/alexanderramin/liftplan/internal/domain"
	"gopkg.in/yaml.v3"
)

// Environment variables read by LoadUser and ResolvePaths.
const (
	EnvTrainingDays = "LIFTPLAN_TRAINING_DAYS"
	EnvStrategy     = "LIFTPLAN_STRATEGY"
	EnvDataDir      = "LIFTPLAN_DATA"
	EnvConfigPath   = "LIFTPLAN_CONFIG"

	DefaultDataDir = "data"
)

// User holds the per-user plan settings.
type User struct {
	TrainingDays      int                `yaml:"training_days"`
	Strategy          domain.Strategy    `yaml:"strategy"`
	MusclePreferences map[string]float64 `yaml:"muscle_preferences"`
	ExcludedExercises []int              `yaml:"excluded_exercises"`
	ExcludedNames     []string           `yaml:"excluded_names"`
}

// DefaultUser returns five training days, the hybrid strategy, neutral
// preferences and no exclusions.
func DefaultUser() User {
	return User{
		TrainingDays:      5,
		Strategy:          domain.StrategyHybrid,
		MusclePreferences: map[string]float64{},
	}
}

// LoadUser reads the YAML file at path over the defaults, then applies
// environment overrides. An empty path skips the file.
//
//	LIFTPLAN_TRAINING_DAYS, LIFTPLAN_STRATEGY
func LoadUser(path string) (*User, error) {
	cfg := DefaultUser()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
		if cfg.MusclePreferences == nil {
			cfg.MusclePreferences = map[string]float64{}
		}
	}

	applyEnvOverrides(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}
	return &cfg, nil
}

func applyEnvOverrides(cfg *User) {
	if v := os.Getenv(EnvTrainingDays); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.TrainingDays = n
		}
	}
	if v := os.Getenv(EnvStrategy); v != "" {
		cfg.Strategy = domain.Strategy(strings.ToLower(v))
	}
}

// Validate reports every problem with the settings.
func (u *User) Validate() error {
	var errs []error

	if u.TrainingDays < catalog.MinTrainingDays || u.TrainingDays > catalog.MaxTrainingDays {
		errs = append(errs, fmt.Errorf("training_days: %w: must be between %d and %d, got %d",
			catalog.ErrUndefinedTemplate, catalog.MinTrainingDays, catalog.MaxTrainingDays, u.TrainingDays))
	}
	if _, err := domain.ParseStrategy(string(u.Strategy)); err != nil {
		errs = append(errs, fmt.Errorf("strategy: %w", err))
	}
	for _, cat := range u.PreferenceCategories() {
		if coef := u.MusclePreferences[cat]; coef < 0 {
			errs = append(errs, fmt.Errorf("muscle_preferences.%s must not be negative, got %g", cat, coef))
		}
	}
	for i, name := range u.ExcludedNames {
		if strings.TrimSpace(name) == "" {
			errs = append(errs, fmt.Errorf("excluded_names[%d] is empty", i))
		}
	}

	return errors.Join(errs...)
}

// PreferenceCategories returns the configured categories, ascending.
func (u *User) PreferenceCategories() []string {
	cats := make([]string, 0, len(u.MusclePreferences))
	for cat := range u.MusclePreferences {
		cats = append(cats, cat)
	}
	sort.Strings(cats)
	return cats
}

// NonDefaultPreferences returns the categories whose coefficient is not 1.0.
func (u *User) NonDefaultPreferences() map[string]float64 {
	out := make(map[string]float64)
	for cat, coef := range u.MusclePreferences {
		if coef != 1.0 {
			out[cat] = coef
		}
	}
	return out
}

// ExcludedIDs returns the excluded exercise ids as a set.
func (u *User) ExcludedIDs() domain.IDSet {
	return domain.NewIDSet(u.ExcludedExercises...)
}

// ResolvePaths picks the data directory and user config path: flag value,
// then environment, then default. The config path may come back empty.
func ResolvePaths(dataFlag, configFlag string) (dataDir, configPath string) {
	dataDir = firstNonEmpty(dataFlag, os.Getenv(EnvDataDir), DefaultDataDir)
	configPath = firstNonEmpty(configFlag, os.Getenv(EnvConfigPath))
	return dataDir, configPath
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
