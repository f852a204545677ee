package formatter

import (
	"fmt"
	"strings"
)

// CheckView summarises a data directory validation run.
type CheckView struct {
	DataDir   string
	Exercises int
	Templates []int
	Warnings  []string
	Errors    []error
}

// FormatCheck lists errors first, then warnings, then a one-line verdict.
func FormatCheck(v CheckView) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s %s\n", Dim("Data:"), v.DataDir))
	if len(v.Errors) == 0 {
		b.WriteString(fmt.Sprintf("%s %d   %s %s\n",
			Dim("Exercises:"), v.Exercises,
			Dim("Templates:"), formatInts(v.Templates)))
	}

	if len(v.Errors) > 0 {
		b.WriteString("\n")
		for _, err := range v.Errors {
			b.WriteString(StyleRed.Render("  ERROR: "+err.Error()) + "\n")
		}
	}
	if len(v.Warnings) > 0 {
		b.WriteString("\n")
		for _, w := range v.Warnings {
			b.WriteString(StyleYellow.Render("  WARNING: "+w) + "\n")
		}
	}

	b.WriteString("\n")
	switch {
	case len(v.Errors) > 0:
		b.WriteString(StyleRed.Render(fmt.Sprintf("✖ %d error(s), %d warning(s)", len(v.Errors), len(v.Warnings))))
	case len(v.Warnings) > 0:
		b.WriteString(StyleYellow.Render(fmt.Sprintf("● OK with %d warning(s)", len(v.Warnings))))
	default:
		b.WriteString(StyleGreen.Render("✔ OK"))
	}
	b.WriteString("\n")

	return RenderBox("Data Check", b.String())
}

func formatInts(vals []int) string {
	if len(vals) == 0 {
		return "none"
	}
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = fmt.Sprint(v)
	}
	return strings.Join(parts, ", ")
}
