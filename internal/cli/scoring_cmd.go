package cli

import (
	"encoding/json"
	"fmt"

	"github.com/alexanderramin/liftplan/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newScoringCmd(flags *globalFlags) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "scoring",
		Short: "Explain the active scoring rules",
		RunE: func(cmd *cobra.Command, args []string) error {
			dataDir, _ := resolvePaths(flags)
			sc, err := loadScoring(dataDir)
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(sc)
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatScoringRules(sc.Weights, sc.Params))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the resolved rules as JSON")
	return cmd
}
