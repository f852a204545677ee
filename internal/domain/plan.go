package domain

import (
	"fmt"
	"time"
)

// SelectionRecord is one chosen exercise at one position of a day.
type SelectionRecord struct {
	ExerciseID       int      `json:"id"`
	Name             string   `json:"name"`
	PrimaryMuscles   []string `json:"primary_muscles"`
	SecondaryMuscles []string `json:"secondary_muscles"`
	StaticScore      float64  `json:"static_score"`
	DynamicScore     float64  `json:"dynamic_score"`
	TotalScore       float64  `json:"total_score"`
	Position         int      `json:"position"` // 1-based
}

// DayTemplate is one entry of a weekly template. No groups means rest.
type DayTemplate struct {
	MuscleGroups []string
}

func (d DayTemplate) IsRest() bool {
	return len(d.MuscleGroups) == 0
}

// WeekTemplate is the ordered list of days for one training-day count.
type WeekTemplate struct {
	TrainingDays int
	Days         []DayTemplate
}

// DayPlan is the result for one template day.
type DayPlan struct {
	Name         string            `json:"name"`
	Label        string            `json:"label"`
	MuscleGroups []string          `json:"muscle_groups,omitempty"`
	Rest         bool              `json:"rest"`
	Method       Method            `json:"method,omitempty"`
	Selections   []SelectionRecord `json:"selections"`
	TotalScore   float64           `json:"total_score"`
}

// DayName returns the display name for the zero-based day index.
func DayName(index int) string {
	return fmt.Sprintf("Day %d", index+1)
}

// WeeklyPlan is the full output of one plan generation.
type WeeklyPlan struct {
	ID          string    `json:"id"`
	Strategy    Strategy  `json:"strategy"`
	GeneratedAt time.Time `json:"generated_at"`
	Days        []DayPlan `json:"days"`

	used IDSet
}

// NewWeeklyPlan starts an empty plan with an empty weekly-used set.
func NewWeeklyPlan(id string, strategy Strategy, at time.Time) *WeeklyPlan {
	return &WeeklyPlan{
		ID:          id,
		Strategy:    strategy,
		GeneratedAt: at,
		used:        make(IDSet),
	}
}

// Used exposes the live weekly-used set for read-only use by selectors.
func (w *WeeklyPlan) Used() IDSet {
	return w.used
}

// UsedIDs returns a sorted snapshot of every id selected so far.
func (w *WeeklyPlan) UsedIDs() []int {
	return w.used.Sorted()
}

// AppendDay records a finished day and folds its selections into the
// weekly-used set. Ids are only ever added.
func (w *WeeklyPlan) AppendDay(day DayPlan) {
	for _, rec := range day.Selections {
		w.used.Add(rec.ExerciseID)
	}
	w.Days = append(w.Days, day)
}

// Day looks up a day plan by its name.
func (w *WeeklyPlan) Day(name string) (DayPlan, bool) {
	for _, d := range w.Days {
		if d.Name == name {
			return d, true
		}
	}
	return DayPlan{}, false
}

func (w *WeeklyPlan) TotalScore() float64 {
	var total float64
	for _, d := range w.Days {
		total += d.TotalScore
	}
	return total
}

// SumTotals adds up the total score of each record.
func SumTotals(records []SelectionRecord) float64 {
	var total float64
	for _, r := range records {
		total += r.TotalScore
	}
	return total
}
