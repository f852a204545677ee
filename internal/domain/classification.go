package domain

import "sort"

// AxisSplit holds the two sides of one classification axis. An id may be in
// neither side; an id listed in both is treated as First.
type AxisSplit struct {
	First  IDSet
	Second IDSet
}

// Classification is the read-only tag index the scorers consult. Build it
// once, then treat it as immutable: lookups cache reverse indexes on first use.
type Classification struct {
	Axes   [axisCount]AxisSplit
	Common IDSet

	// Families maps a movement family name to its members.
	Families map[string]IDSet
	// Categories maps a muscle-group tag (as used by day templates) to its members.
	Categories map[string]IDSet
	// Preferences maps a preference category to the muscle tags it covers.
	Preferences map[string][]string

	familyOf     map[int]string
	categoriesOf map[int][]string
	muscleToPref map[string]string
}

// SideOf reports which side of axis the exercise falls on.
func (c *Classification) SideOf(axis Axis, id int) Side {
	split := c.Axes[axis]
	switch {
	case split.First.Has(id):
		return SideFirst
	case split.Second.Has(id):
		return SideSecond
	default:
		return SideNone
	}
}

func (c *Classification) IsCommon(id int) bool {
	return c.Common.Has(id)
}

// FamilyOf returns the movement family of id, or "" when it has none.
// Families are scanned in ascending name order so the result is stable
// even if a malformed index lists an id under several families.
func (c *Classification) FamilyOf(id int) string {
	c.index()
	return c.familyOf[id]
}

// CategoriesOf returns every muscle-group tag id belongs to, ascending.
func (c *Classification) CategoriesOf(id int) []string {
	c.index()
	return c.categoriesOf[id]
}

// PreferenceCategory maps a specific muscle tag to its preference category.
func (c *Classification) PreferenceCategory(muscle string) (string, bool) {
	c.index()
	cat, ok := c.muscleToPref[muscle]
	return cat, ok
}

func (c *Classification) index() {
	if c.familyOf != nil {
		return
	}

	c.familyOf = make(map[int]string)
	for _, name := range sortedKeys(c.Families) {
		for id := range c.Families[name] {
			if _, seen := c.familyOf[id]; !seen {
				c.familyOf[id] = name
			}
		}
	}

	c.categoriesOf = make(map[int][]string)
	for _, name := range sortedKeys(c.Categories) {
		for id := range c.Categories[name] {
			c.categoriesOf[id] = append(c.categoriesOf[id], name)
		}
	}

	c.muscleToPref = make(map[string]string)
	cats := make([]string, 0, len(c.Preferences))
	for cat := range c.Preferences {
		cats = append(cats, cat)
	}
	sort.Strings(cats)
	for _, cat := range cats {
		for _, m := range c.Preferences[cat] {
			if _, seen := c.muscleToPref[m]; !seen {
				c.muscleToPref[m] = cat
			}
		}
	}
}

func sortedKeys(m map[string]IDSet) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
