package catalog

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/alexanderramin/liftplan/internal/domain"
)

// AllTag selects the whole catalog for a day.
const AllTag = "all"

// ValidateDataSchema checks the schema before conversion. Errors make the data
// unusable; warnings describe references that will simply be skipped.
func ValidateDataSchema(schema *DataSchema) (warnings []string, errs []error) {
	known := make(map[int]bool, len(schema.Exercises))
	errs = append(errs, validateExercises(schema.Exercises, known)...)

	for _, name := range sortedNames(schema.Categories) {
		warnings = append(warnings, danglingIDs("categoryMapping."+name, schema.Categories[name], known)...)
	}
	for _, axis := range domain.Axes {
		src := AxisSources[axis]
		sides := schema.Axes[axis]
		for _, key := range []string{src.FirstKey, src.SecondKey} {
			ids, ok := sides[key]
			if !ok {
				warnings = append(warnings, fmt.Sprintf("%s: missing %q list", src.File, key))
				continue
			}
			warnings = append(warnings, danglingIDs(src.File+"."+key, ids, known)...)
		}
	}
	if _, ok := schema.Common[CommonKey]; !ok {
		warnings = append(warnings, fmt.Sprintf("%s: missing %q list", CommonFile, CommonKey))
	}
	warnings = append(warnings, danglingIDs(CommonFile+"."+CommonKey, schema.Common[CommonKey], known)...)
	warnings = append(warnings, validateFamilies(schema.Families, known)...)

	tplWarnings, tplErrs := validateTemplates(schema.Templates, schema.Categories)
	warnings = append(warnings, tplWarnings...)
	errs = append(errs, tplErrs...)

	return warnings, errs
}

func validateExercises(exercises []ExerciseImport, known map[int]bool) []error {
	var errs []error

	if len(exercises) == 0 {
		errs = append(errs, fmt.Errorf("%s: no exercises", ExercisesFile))
	}
	for i, ex := range exercises {
		prefix := fmt.Sprintf("exercises[%d]", i)

		if ex.PK <= 0 {
			errs = append(errs, fmt.Errorf("%s.pk must be positive, got %d", prefix, ex.PK))
		} else if known[ex.PK] {
			errs = append(errs, fmt.Errorf("%s.pk: duplicate id %d", prefix, ex.PK))
		} else {
			known[ex.PK] = true
		}
		if ex.Name == "" {
			errs = append(errs, fmt.Errorf("%s.name is required", prefix))
		}
	}

	return errs
}

func validateFamilies(families map[string][]int, known map[int]bool) []string {
	var warnings []string
	owner := make(map[int]string)
	for _, name := range sortedNames(families) {
		ids := families[name]
		warnings = append(warnings, danglingIDs(FamilyFile+"."+name, ids, known)...)
		for _, id := range ids {
			if prev, ok := owner[id]; ok {
				warnings = append(warnings, fmt.Sprintf("%s: id %d is in both %q and %q, using %q", FamilyFile, id, prev, name, prev))
				continue
			}
			owner[id] = name
		}
	}
	return warnings
}

func validateTemplates(templates map[string][][]string, categories map[string][]int) ([]string, []error) {
	var warnings []string
	var errs []error

	if len(templates) == 0 {
		errs = append(errs, fmt.Errorf("%s: no templates", TemplatesFile))
	}
	for _, key := range sortedNames(templates) {
		days, err := strconv.Atoi(key)
		if err != nil || days < MinTrainingDays || days > MaxTrainingDays {
			errs = append(errs, fmt.Errorf("%s: key %q is not a training-day count between %d and %d", TemplatesFile, key, MinTrainingDays, MaxTrainingDays))
			continue
		}
		for i, groups := range templates[key] {
			for _, tag := range groups {
				if tag == AllTag {
					continue
				}
				if _, ok := categories[tag]; !ok {
					warnings = append(warnings, fmt.Sprintf("%s[%s][%d]: unknown muscle group %q", TemplatesFile, key, i, tag))
				}
			}
		}
	}

	return warnings, errs
}

func danglingIDs(where string, ids []int, known map[int]bool) []string {
	var warnings []string
	for _, id := range ids {
		if !known[id] {
			warnings = append(warnings, fmt.Sprintf("%s: id %d is not in the catalog", where, id))
		}
	}
	return warnings
}

func sortedNames[V any](m map[string]V) []string {
	names := make([]string, 0, len(m))
	for k := range m {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
