package domain

import "sort"

// Exercise is a single catalog entry. Muscle lists are ordered; the static
// scorer's decay policy depends on that order.
type Exercise struct {
	ID               int
	Name             string
	PrimaryMuscles   []string
	SecondaryMuscles []string
}

// IDSet is a set of exercise IDs.
type IDSet map[int]struct{}

// NewIDSet builds a set from ids.
func NewIDSet(ids ...int) IDSet {
	s := make(IDSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

func (s IDSet) Has(id int) bool {
	_, ok := s[id]
	return ok
}

func (s IDSet) Add(id int) {
	s[id] = struct{}{}
}

func (s IDSet) Len() int {
	return len(s)
}

// Clone returns an independent copy. A nil set clones to an empty set.
func (s IDSet) Clone() IDSet {
	out := make(IDSet, len(s))
	for id := range s {
		out[id] = struct{}{}
	}
	return out
}

// Sorted returns the members in ascending order.
func (s IDSet) Sorted() []int {
	out := make([]int, 0, len(s))
	for id := range s {
		out = append(out, id)
	}
	sort.Ints(out)
	return out
}
