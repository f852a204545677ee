package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/liftplan/internal/catalog"
	"github.com/alexanderramin/liftplan/internal/cli/formatter"
	"github.com/spf13/cobra"
)

// ErrCheckFailed is returned by "check" when the data directory has errors.
var ErrCheckFailed = errors.New("data check failed")

func newCheckCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate the data directory and scoring config",
		RunE: func(cmd *cobra.Command, args []string) error {
			dataDir, _ := resolvePaths(flags)
			view := formatter.CheckView{DataDir: dataDir}

			schema, err := catalog.LoadDataSchema(dataDir)
			if err != nil {
				view.Errors = append(view.Errors, err)
			} else {
				view.Warnings, view.Errors = catalog.ValidateDataSchema(schema)
				if len(view.Errors) == 0 {
					cat := catalog.Convert(schema)
					view.Exercises = cat.Len()
					view.Templates = cat.TemplateDays()
				}
			}
			if _, err := loadScoring(dataDir); err != nil {
				view.Errors = append(view.Errors, err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatCheck(view))
			if len(view.Errors) > 0 {
				return fmt.Errorf("%w: %d error(s)", ErrCheckFailed, len(view.Errors))
			}
			return nil
		},
	}
}
