package cli

import (
	"fmt"

	"github.com/alexanderramin/liftplan/internal/cli/formatter"
	"github.com/alexanderramin/liftplan/internal/domain"
	"github.com/alexanderramin/liftplan/internal/planner"
	"github.com/spf13/cobra"
)

func newCompareCmd(app *App, flags *globalFlags) *cobra.Command {
	var overrides planOverrides
	var strategies []domain.Strategy
	var details bool

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Run several strategies on the same week and compare scores and time",
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := loadWorkspace(flags)
			if err != nil {
				return err
			}
			overrides.apply(cmd, ws)

			tpl, err := ws.catalog.Template(ws.user.TrainingDays)
			if err != nil {
				return err
			}

			ctx, cancel := overrides.newContext()
			defer cancel()

			out := cmd.OutOrStdout()
			stop := func() {}
			if app.interactive() && !flags.verbose {
				stop = formatter.StartSpinner(cmd.ErrOrStderr(), fmt.Sprintf("Planning %d training days with %d strategies...", tpl.TrainingDays, len(strategies)))
			}
			result, err := planner.Compare(ctx, ws.catalog, ws.plannerOptions(app, flags.verbose, cmd.ErrOrStderr()), strategies, tpl)
			stop()
			if err != nil {
				return err
			}

			fmt.Fprintln(out, formatter.FormatComparison(result))

			show := details
			if !show && app.interactive() {
				show, err = app.confirm("Show the detailed plans?")
				if err != nil {
					return err
				}
			}
			if !show {
				return nil
			}

			excluded := excludedFor(ws, app)
			for _, run := range result.Runs {
				fmt.Fprintln(out, formatter.FormatPlan(formatter.PlanView{
					Plan:         run.Plan,
					TrainingDays: tpl.TrainingDays,
					Preferences:  ws.user.NonDefaultPreferences(),
					Excluded:     excluded,
				}))
			}
			return nil
		},
	}

	overrides.register(cmd, false)
	cmd.Flags().Var(newStrategyListValue(&strategies, domain.StrategyGreedy, domain.StrategyHybrid),
		"strategies", "Comma-separated strategies to run; the first is the baseline")
	cmd.Flags().BoolVar(&details, "details", false, "Print every plan without asking")

	return cmd
}

// excludedFor lists the exercises the user's settings remove from the catalog.
func excludedFor(ws *workspace, app *App) []domain.Exercise {
	p, err := planner.New(ws.catalog, ws.plannerOptions(app, false, nil))
	if err != nil {
		return nil
	}
	return p.ExcludedExercises()
}
