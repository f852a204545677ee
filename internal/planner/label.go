package planner

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// RestLabel labels a day with no muscle groups.
const RestLabel = "Rest Day"

var displayNames = map[string]string{
	"chest":    "Chest",
	"back":     "Back",
	"shoulder": "Shoulders",
	"tricep":   "Triceps",
	"bicep":    "Biceps",
	"legs":     "Legs",
	"arm":      "Arms",
	"core":     "Core",
}

var titleCaser = cases.Title(language.English)

// DisplayName returns the human name of a muscle-group tag.
func DisplayName(group string) string {
	if name, ok := displayNames[group]; ok {
		return name
	}
	return titleCaser.String(group)
}

// DayLabel joins the display names of groups: "A", "A & B", "A, B & C".
func DayLabel(groups []string) string {
	if len(groups) == 0 {
		return RestLabel
	}
	names := make([]string, len(groups))
	for i, g := range groups {
		names[i] = DisplayName(g)
	}
	if len(names) == 1 {
		return names[0]
	}
	return strings.Join(names[:len(names)-1], ", ") + " & " + names[len(names)-1]
}
