package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func sweepCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "sweep",
		Short:   "Analyze pending properties now",
		Long:    "Runs the pending-analysis sweep on the server without waiting for the scheduler.",
		Example: `  mectl sweep`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := newClient().Sweep(cmd.Context())
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), res)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Analyzed %d of %d pending properties (%d failed).\n",
				res.Analyzed, res.Pending, res.Failed)
			if res.Error != "" {
				fmt.Fprintf(out, "Failures: %s\n", res.Error)
			}
			return nil
		},
	}
}
