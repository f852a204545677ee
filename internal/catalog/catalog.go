package catalog

import (
	"errors"
	"fmt"
	"sort"

	"github.com/alexanderramin/liftplan/internal/domain"
)

const (
	MinTrainingDays = 1
	MaxTrainingDays = 7
)

// ErrUndefinedTemplate is returned when no template exists for the requested
// number of training days.
var ErrUndefinedTemplate = errors.New("undefined training template")

// templateNames are the display names of the stock split for each day count.
var templateNames = map[int]string{
	1: "Full Body",
	2: "Upper/Lower Split",
	3: "Push/Pull/Legs",
	4: "Push/Pull x2",
	5: "Bro Split",
	6: "Push/Pull/Legs x2",
	7: "Push/Pull/Legs x2 + Rest",
}

// TemplateName returns the split name for a training-day count, or "Custom".
func TemplateName(days int) string {
	if name, ok := templateNames[days]; ok {
		return name
	}
	return "Custom"
}

// Catalog is the read-only in-memory snapshot a plan is generated from.
type Catalog struct {
	exercises      []domain.Exercise
	byID           map[int]int
	classification *domain.Classification
	templates      map[int]domain.WeekTemplate
}

// New builds a catalog from already-converted parts. For duplicate ids the
// first occurrence wins.
func New(exercises []domain.Exercise, cls *domain.Classification, templates map[int]domain.WeekTemplate) *Catalog {
	c := &Catalog{
		exercises:      exercises,
		byID:           make(map[int]int, len(exercises)),
		classification: cls,
		templates:      templates,
	}
	if c.classification == nil {
		c.classification = &domain.Classification{}
	}
	if c.templates == nil {
		c.templates = make(map[int]domain.WeekTemplate)
	}
	for i, ex := range exercises {
		if _, dup := c.byID[ex.ID]; !dup {
			c.byID[ex.ID] = i
		}
	}
	return c
}

// LoadResult is a loaded catalog plus the non-fatal problems found on the way.
type LoadResult struct {
	Catalog  *Catalog
	Warnings []string
}

// Load reads, validates and converts the data directory.
func Load(dir string) (*LoadResult, error) {
	schema, err := LoadDataSchema(dir)
	if err != nil {
		return nil, fmt.Errorf("loading data directory %s: %w", dir, err)
	}
	warnings, errs := ValidateDataSchema(schema)
	if len(errs) > 0 {
		return nil, fmt.Errorf("invalid data directory %s: %w", dir, errors.Join(errs...))
	}
	return &LoadResult{Catalog: Convert(schema), Warnings: warnings}, nil
}

// Exercises returns the catalog in file order.
func (c *Catalog) Exercises() []domain.Exercise {
	return c.exercises
}

func (c *Catalog) Len() int {
	return len(c.exercises)
}

func (c *Catalog) Exercise(id int) (domain.Exercise, bool) {
	i, ok := c.byID[id]
	if !ok {
		return domain.Exercise{}, false
	}
	return c.exercises[i], true
}

func (c *Catalog) Has(id int) bool {
	_, ok := c.byID[id]
	return ok
}

func (c *Catalog) Classification() *domain.Classification {
	return c.classification
}

// Template returns the weekly template for days training days.
func (c *Catalog) Template(days int) (domain.WeekTemplate, error) {
	if days < MinTrainingDays || days > MaxTrainingDays {
		return domain.WeekTemplate{}, fmt.Errorf("%w: training days must be between %d and %d, got %d",
			ErrUndefinedTemplate, MinTrainingDays, MaxTrainingDays, days)
	}
	tpl, ok := c.templates[days]
	if !ok {
		return domain.WeekTemplate{}, fmt.Errorf("%w: no template for %d training days", ErrUndefinedTemplate, days)
	}
	return tpl, nil
}

// TemplateDays lists the training-day counts that have a template, ascending.
func (c *Catalog) TemplateDays() []int {
	days := make([]int, 0, len(c.templates))
	for d := range c.templates {
		days = append(days, d)
	}
	sort.Ints(days)
	return days
}
