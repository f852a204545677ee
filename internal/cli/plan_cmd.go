package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/alexanderramin/liftplan/internal/catalog"
	"github.com/alexanderramin/liftplan/internal/cli/formatter"
	"github.com/alexanderramin/liftplan/internal/domain"
	"github.com/alexanderramin/liftplan/internal/planner"
	"github.com/spf13/cobra"
)

// planOverrides are the per-run flags shared by plan and compare.
type planOverrides struct {
	days     int
	strategy domain.Strategy
	exclude  []int
	timeout  time.Duration
}

func (o *planOverrides) register(cmd *cobra.Command, withStrategy bool) {
	cmd.Flags().IntVarP(&o.days, "days", "d", 0, "Training days per week (1-7)")
	cmd.Flags().IntSliceVar(&o.exclude, "exclude", nil, "Exercise ids to leave out, in addition to the config file")
	cmd.Flags().DurationVar(&o.timeout, "timeout", 0, "Abort the search after this long (0 = no limit)")
	if withStrategy {
		cmd.Flags().Var(newStrategyValue(&o.strategy), "strategy", "Selection strategy: greedy, exhaustive or hybrid")
	}
}

// apply copies changed flags over the loaded user settings.
func (o *planOverrides) apply(cmd *cobra.Command, ws *workspace) {
	if cmd.Flags().Changed("days") {
		ws.user.TrainingDays = o.days
	}
	if cmd.Flags().Changed("strategy") {
		ws.user.Strategy = o.strategy
	}
	ws.user.ExcludedExercises = append(ws.user.ExcludedExercises, o.exclude...)
}

func (o *planOverrides) newContext() (context.Context, context.CancelFunc) {
	if o.timeout > 0 {
		return context.WithTimeout(context.Background(), o.timeout)
	}
	return context.WithCancel(context.Background())
}

// planJSON is the --json document.
type planJSON struct {
	Plan         *domain.WeeklyPlan       `json:"plan"`
	TrainingDays int                      `json:"training_days"`
	Template     string                   `json:"template"`
	Warnings     []string                 `json:"warnings,omitempty"`
	Explanations []planner.DayExplanation `json:"explanations,omitempty"`
}

func newPlanCmd(app *App, flags *globalFlags) *cobra.Command {
	var overrides planOverrides
	var asJSON, explain bool

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Generate a weekly training plan",
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

			p, err := planner.New(ws.catalog, ws.plannerOptions(app, flags.verbose, cmd.ErrOrStderr()))
			if err != nil {
				return err
			}

			ctx, cancel := overrides.newContext()
			defer cancel()

			plan, err := p.GenerateWeeklyPlan(ctx, tpl)
			if err != nil {
				return fmt.Errorf("generating plan: %w", err)
			}

			var explanations []planner.DayExplanation
			if explain {
				explanations = p.Explain(plan)
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(planJSON{
					Plan:         plan,
					TrainingDays: tpl.TrainingDays,
					Template:     catalog.TemplateName(tpl.TrainingDays),
					Warnings:     ws.warnings,
					Explanations: explanations,
				})
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatPlan(formatter.PlanView{
				Plan:         plan,
				TrainingDays: tpl.TrainingDays,
				Preferences:  ws.user.NonDefaultPreferences(),
				Excluded:     p.ExcludedExercises(),
				Warnings:     ws.warnings,
				Explanations: explanations,
			}))
			return nil
		},
	}

	overrides.register(cmd, true)
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the plan as JSON")
	cmd.Flags().BoolVar(&explain, "explain", false, "Show the dynamic score breakdown for every exercise")

	return cmd
}
