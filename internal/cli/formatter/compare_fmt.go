package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/liftplan/internal/planner"
)

// FormatComparison renders one row per strategy against the first run.
func FormatComparison(c *planner.Comparison) string {
	var b strings.Builder

	best := c.Best()
	bestScore := c.Runs[best].Score()

	rows := make([][]string, 0, len(c.Runs))
	for i, run := range c.Runs {
		name := string(run.Strategy)
		if i == best {
			name = StyleGreen.Render(name + " ★")
		}

		gain, timeRatio := Dim("baseline"), Dim("1.0x")
		if i > 0 {
			diff, pct := c.Improvement(i)
			gain = fmt.Sprintf("%s (%s)", StyledDelta(diff), DeltaColor(diff).Render(fmt.Sprintf("%+.1f%%", pct)))
			timeRatio = fmt.Sprintf("%.1fx", c.TimeRatio(i))
		}

		share := 0.0
		if bestScore > 0 {
			share = run.Score() / bestScore
		}

		rows = append(rows, []string{
			name,
			Bold(FormatScore(run.Score())),
			RenderBar(share, 12),
			gain,
			FormatDuration(run.Elapsed),
			timeRatio,
		})
	}
	b.WriteString(RenderTable([]string{"Strategy", "Score", "vs best", "Gain", "Time", "Time ratio"}, rows))

	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s %s\n", Dim("Best:"), StyleGreen.Render(string(c.Runs[best].Strategy))))
	return RenderBox("Strategy Comparison", b.String())
}
