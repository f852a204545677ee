package catalog

import (
	"strconv"

	"github.com/alexanderramin/liftplan/internal/domain"
)

// Convert turns a validated DataSchema into a Catalog. Call
// ValidateDataSchema first; Convert assumes ids are unique and template keys
// parse.
func Convert(schema *DataSchema) *Catalog {
	exercises := make([]domain.Exercise, 0, len(schema.Exercises))
	for _, ex := range schema.Exercises {
		exercises = append(exercises, domain.Exercise{
			ID:               ex.PK,
			Name:             ex.Name,
			PrimaryMuscles:   ex.PrimaryMuscles,
			SecondaryMuscles: ex.SecondaryMuscles,
		})
	}

	cls := &domain.Classification{
		Common:      domain.NewIDSet(schema.Common[CommonKey]...),
		Families:    toSets(schema.Families),
		Categories:  toSets(schema.Categories),
		Preferences: make(map[string][]string, len(schema.Preferences)),
	}
	for cat, muscles := range schema.Preferences {
		cls.Preferences[cat] = muscles
	}
	for _, axis := range domain.Axes {
		src := AxisSources[axis]
		sides := schema.Axes[axis]
		cls.Axes[axis] = domain.AxisSplit{
			First:  domain.NewIDSet(sides[src.FirstKey]...),
			Second: domain.NewIDSet(sides[src.SecondKey]...),
		}
	}

	templates := make(map[int]domain.WeekTemplate, len(schema.Templates))
	for key, days := range schema.Templates {
		n, err := strconv.Atoi(key)
		if err != nil {
			continue
		}
		tpl := domain.WeekTemplate{TrainingDays: n, Days: make([]domain.DayTemplate, 0, len(days))}
		for _, groups := range days {
			tpl.Days = append(tpl.Days, domain.DayTemplate{MuscleGroups: groups})
		}
		templates[n] = tpl
	}

	return New(exercises, cls, templates)
}

func toSets(m map[string][]int) map[string]domain.IDSet {
	out := make(map[string]domain.IDSet, len(m))
	for name, ids := range m {
		out[name] = domain.NewIDSet(ids...)
	}
	return out
}
