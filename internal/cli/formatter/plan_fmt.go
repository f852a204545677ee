package formatter

import (
	"fmt"
	"sort"
	"strings"

	"github.com/alexanderramin/liftplan/internal/catalog"
	"github.com/alexanderramin/liftplan/internal/domain"
	"github.com/alexanderramin/liftplan/internal/planner"
	"github.com/alexanderramin/liftplan/internal/scoring"
)

// PlanView is everything the plan report shows around a weekly plan.
type PlanView struct {
	Plan         *domain.WeeklyPlan
	TrainingDays int
	Preferences  map[string]float64
	Excluded     []domain.Exercise
	Warnings     []string

	// Explanations is optional; when set each record lists its dynamic factors.
	Explanations []planner.DayExplanation
}

// FormatPlan renders the settings header followed by one block per day.
func FormatPlan(v PlanView) string {
	var b strings.Builder

	b.WriteString(formatPlanSettings(v))
	b.WriteString("\n")

	for i, day := range v.Plan.Days {
		var reasons [][]scoring.Reason
		if i < len(v.Explanations) {
			reasons = v.Explanations[i].Reasons
		}
		b.WriteString(FormatDay(day, reasons))
		b.WriteString("\n")
	}

	b.WriteString(fmt.Sprintf("%s %s   %s %d   %s %s\n",
		Dim("Weekly score:"), Bold(FormatScore(v.Plan.TotalScore())),
		Dim("Unique exercises:"), len(v.Plan.UsedIDs()),
		Dim("Run:"), TruncID(v.Plan.ID),
	))

	if len(v.Warnings) > 0 {
		b.WriteString("\n")
		for _, w := range v.Warnings {
			b.WriteString(StyleYellow.Render("  WARNING: "+w) + "\n")
		}
	}

	return RenderBox("Weekly Plan", b.String())
}

func formatPlanSettings(v PlanView) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s %d (%s)\n", Dim("Training days:"), v.TrainingDays, catalog.TemplateName(v.TrainingDays)))
	b.WriteString(fmt.Sprintf("%s %s\n", Dim("Strategy:"), StylePurple.Render(string(v.Plan.Strategy))))

	if len(v.Preferences) > 0 {
		names := make([]string, 0, len(v.Preferences))
		for name := range v.Preferences {
			names = append(names, name)
		}
		sort.Strings(names)
		parts := make([]string, 0, len(names))
		for _, name := range names {
			parts = append(parts, fmt.Sprintf("%s x%g", name, v.Preferences[name]))
		}
		b.WriteString(fmt.Sprintf("%s %s\n", Dim("Preferences:"), strings.Join(parts, ", ")))
	}

	if len(v.Excluded) > 0 {
		parts := make([]string, 0, len(v.Excluded))
		for _, ex := range v.Excluded {
			parts = append(parts, fmt.Sprintf("%s (%d)", ex.Name, ex.ID))
		}
		b.WriteString(fmt.Sprintf("%s %s\n", Dim("Excluded:"), strings.Join(parts, ", ")))
	}
	return b.String()
}

// FormatDay renders one day. reasons may be nil or shorter than the
// selections; missing entries simply print no breakdown.
func FormatDay(day domain.DayPlan, reasons [][]scoring.Reason) string {
	var b strings.Builder
	b.WriteString(Header(fmt.Sprintf("%s: %s", day.Name, day.Label)))
	b.WriteString("\n")

	if day.Rest {
		b.WriteString(Dim("Recovery day, nothing scheduled.") + "\n")
		return b.String()
	}

	b.WriteString(fmt.Sprintf("%s %s   %s %s   %s\n",
		Dim("Targets:"), FormatList(day.MuscleGroups),
		Dim("Score:"), Bold(FormatScore(day.TotalScore)),
		MethodBadge(day.Method),
	))

	if len(day.Selections) == 0 {
		b.WriteString(Dim("No matching exercises.") + "\n")
		return b.String()
	}

	rows := make([][]string, 0, len(day.Selections))
	for _, rec := range day.Selections {
		rows = append(rows, []string{
			fmt.Sprintf("%d", rec.Position),
			StyleFg.Render(rec.Name),
			FormatScore(rec.StaticScore),
			StyledDelta(rec.DynamicScore),
			Bold(FormatScore(rec.TotalScore)),
			Dim(formatMuscles(rec)),
		})
	}
	b.WriteString(RenderTable([]string{"#", "Exercise", "Static", "Dynamic", "Total", "Muscles"}, rows))

	for i, rec := range day.Selections {
		if i >= len(reasons) || len(reasons[i]) == 0 {
			continue
		}
		b.WriteString(fmt.Sprintf("  %s %s\n", Bold(fmt.Sprintf("%d.", rec.Position)), rec.Name))
		for _, r := range reasons[i] {
			b.WriteString(fmt.Sprintf("     %s %s %s\n",
				StyleYellow.Render(string(r.Code)),
				DeltaColor(r.Delta).Render(FormatDelta(r.Delta)),
				Dim(r.Message),
			))
		}
	}
	return b.String()
}

func formatMuscles(rec domain.SelectionRecord) string {
	s := strings.Join(rec.PrimaryMuscles, ", ")
	if len(rec.SecondaryMuscles) > 0 {
		s += " / " + strings.Join(rec.SecondaryMuscles, ", ")
	}
	return s
}
