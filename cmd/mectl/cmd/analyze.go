package cmd

import (
	"github.com/spf13/cobra"
)

func analyzeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "analyze <property-id>",
		Short: "Analyze a property",
		Long: "Runs a full market analysis of a stored property, saves it on the server\n" +
			"and prints the score, recommendation and per-component findings.",
		Example: `  mectl analyze 3f2b1c9e-7d41-4a8e-9a57-0c1d2e3f4a5b
  mectl analyze 3f2b1c9e-7d41-4a8e-9a57-0c1d2e3f4a5b --output json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := newClient().AnalyzeProperty(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), res)
			}
			return printAnalysis(cmd.OutOrStdout(), res)
		},
	}
}
