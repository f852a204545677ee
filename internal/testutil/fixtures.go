package testutil

import (
	"fmt"

	"github.com/alexanderramin/liftplan/internal/domain"
)

// Exercise options
type ExerciseOption func(*domain.Exercise)

func WithPrimary(muscles ...string) ExerciseOption {
	return func(e *domain.Exercise) {
		e.PrimaryMuscles = muscles
	}
}

func WithSecondary(muscles ...string) ExerciseOption {
	return func(e *domain.Exercise) {
		e.SecondaryMuscles = muscles
	}
}

// NewTestExercise builds an exercise with one primary muscle unless
// overridden.
func NewTestExercise(id int, name string, opts ...ExerciseOption) domain.Exercise {
	ex := domain.Exercise{
		ID:             id,
		Name:           name,
		PrimaryMuscles: []string{"chest"},
	}
	for _, opt := range opts {
		opt(&ex)
	}
	return ex
}

// NewTestCatalog builds n exercises with ids 1..n. Exercise i gets i primary
// muscles ("m1".."mi", capped at 6) so static scores differ.
func NewTestCatalog(n int) []domain.Exercise {
	out := make([]domain.Exercise, 0, n)
	for i := 1; i <= n; i++ {
		k := i
		if k > 6 {
			k = 6
		}
		muscles := make([]string, k)
		for j := range muscles {
			muscles[j] = fmt.Sprintf("m%d", j+1)
		}
		out = append(out, NewTestExercise(i, fmt.Sprintf("Exercise %d", i), WithPrimary(muscles...)))
	}
	return out
}

// ClassificationBuilder assembles a domain.Classification fluently.
type ClassificationBuilder struct {
	c domain.Classification
}

func NewClassification() *ClassificationBuilder {
	return &ClassificationBuilder{c: domain.Classification{
		Common:      domain.IDSet{},
		Families:    map[string]domain.IDSet{},
		Categories:  map[string]domain.IDSet{},
		Preferences: map[string][]string{},
	}}
}

func (b *ClassificationBuilder) First(axis domain.Axis, ids ...int) *ClassificationBuilder {
	if b.c.Axes[axis].First == nil {
		b.c.Axes[axis].First = domain.IDSet{}
	}
	for _, id := range ids {
		b.c.Axes[axis].First.Add(id)
	}
	return b
}

func (b *ClassificationBuilder) Second(axis domain.Axis, ids ...int) *ClassificationBuilder {
	if b.c.Axes[axis].Second == nil {
		b.c.Axes[axis].Second = domain.IDSet{}
	}
	for _, id := range ids {
		b.c.Axes[axis].Second.Add(id)
	}
	return b
}

func (b *ClassificationBuilder) Common(ids ...int) *ClassificationBuilder {
	for _, id := range ids {
		b.c.Common.Add(id)
	}
	return b
}

func (b *ClassificationBuilder) Family(name string, ids ...int) *ClassificationBuilder {
	b.c.Families[name] = domain.NewIDSet(ids...)
	return b
}

func (b *ClassificationBuilder) Category(name string, ids ...int) *ClassificationBuilder {
	b.c.Categories[name] = domain.NewIDSet(ids...)
	return b
}

func (b *ClassificationBuilder) Preference(category string, muscles ...string) *ClassificationBuilder {
	b.c.Preferences[category] = muscles
	return b
}

func (b *ClassificationBuilder) Build() *domain.Classification {
	c := b.c
	return &c
}
