package cli

import (
	"time"

	"github.com/spf13/cobra"
)

// App holds the process-level dependencies shared by CLI commands.
type App struct {
	// IsInteractive reports whether stdin is a terminal. Prompts and
	// spinners only run when it returns true.
	IsInteractive func() bool

	// Confirm asks a yes/no question. Defaults to a huh confirm form.
	Confirm func(title string) (bool, error)

	// Now and NewID are passed to the planner; nil uses its defaults.
	Now   func() time.Time
	NewID func() string
}

// globalFlags are the persistent flags every subcommand reads.
type globalFlags struct {
	dataDir    string
	configPath string
	verbose    bool
}

// NewRootCmd creates the top-level "liftplan" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	flags := &globalFlags{}

	root := &cobra.Command{
		Use:           "liftplan",
		Short:         "Weekly strength training plan generator",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&flags.dataDir, "data", "", "Data directory (default $LIFTPLAN_DATA or ./data)")
	pf.StringVar(&flags.configPath, "config", "", "User config YAML (default $LIFTPLAN_CONFIG)")
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "Log planning events to stderr")

	root.AddCommand(
		newPlanCmd(app, flags),
		newCompareCmd(app, flags),
		newScoringCmd(flags),
		newCheckCmd(flags),
	)

	return root
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) confirm(title string) (bool, error) {
	if a.Confirm != nil {
		return a.Confirm(title)
	}
	return huhConfirm(title)
}
