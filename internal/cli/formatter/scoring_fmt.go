package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/liftplan/internal/domain"
	"github.com/alexanderramin/liftplan/internal/scoring"
	"github.com/alexanderramin/liftplan/internal/selector"
)

// FormatScoringRules describes the active scoring configuration.
func FormatScoringRules(w scoring.Weights, p selector.Params) string {
	var b strings.Builder

	b.WriteString(Header("Static score"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s %s\n", Dim("Policy:"), StylePurple.Render(string(w.Policy))))
	b.WriteString(fmt.Sprintf("%s %s   %s %s\n",
		Dim("Primary base:"), FormatScore(w.PrimaryBase),
		Dim("Secondary base:"), FormatScore(w.SecondaryBase)))
	if w.Policy == domain.PolicyEqualShare {
		b.WriteString(Dim("Each list's base is split evenly across its muscles.") + "\n")
	} else {
		b.WriteString(Dim(fmt.Sprintf("First %d muscles score in full; later ones decay by x%g each.",
			w.FullScoreLimit, w.DecayFactor)) + "\n")
	}
	b.WriteString(fmt.Sprintf("%s %s\n", Dim("Common exercise bonus:"), StyledDelta(w.CommonBonus)))
	b.WriteString("\n")

	b.WriteString(Header("Position bonuses"))
	b.WriteString("\n")
	var posRows [][]string
	for _, axis := range domain.Axes {
		table, ok := w.Position[axis]
		if !ok {
			continue
		}
		first, second := axis.SideLabels()
		posRows = append(posRows,
			[]string{first, formatRow(table.First)},
			[]string{second, formatRow(table.Second)},
		)
	}
	if len(posRows) == 0 {
		b.WriteString(Dim("None configured.") + "\n")
	} else {
		b.WriteString(RenderTable([]string{"Side", "By position"}, posRows))
	}
	b.WriteString("\n")

	b.WriteString(Header("Balance rules"))
	b.WriteString("\n")
	var balRows [][]string
	for _, axis := range domain.Axes {
		rule, ok := w.Balance[axis]
		if !ok {
			continue
		}
		balRows = append(balRows, []string{
			axis.String(),
			fmt.Sprintf("%d per side", rule.Threshold),
			StyledDelta(rule.Penalty),
		})
	}
	if len(balRows) == 0 {
		b.WriteString(Dim("None configured.") + "\n")
	} else {
		b.WriteString(RenderTable([]string{"Axis", "Threshold", "Penalty"}, balRows))
	}
	b.WriteString("\n")

	b.WriteString(Header("Penalties"))
	b.WriteString("\n")
	b.WriteString(RenderTable([]string{"Rule", "Delta"}, [][]string{
		{"Same movement family today", StyledDelta(w.Penalties.SameFamily)},
		{"Already used this week", StyledDelta(w.Penalties.WeeklyRepeat)},
		{"Muscle group already hit today (each)", StyledDelta(w.Penalties.SameMuscleGroup)},
	}))
	b.WriteString("\n")

	b.WriteString(Header("Search"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s %d\n", Dim("Exercises per day:"), p.PositionsPerDay))
	b.WriteString(fmt.Sprintf("%s %d candidates\n", Dim("Exhaustive ceiling:"), p.ExhaustiveCeiling))
	b.WriteString(fmt.Sprintf("%s %d\n", Dim("Local search pass cap:"), p.MaxLocalSearchPasses))

	return RenderBox("Scoring Rules", b.String())
}

func formatRow(vals []float64) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = fmt.Sprintf("%g", v)
	}
	return "[" + strings.Join(parts, " ") + "]"
}
