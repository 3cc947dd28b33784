package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func healthCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "health",
		Short:   "Check server liveness and readiness",
		Example: `  mectl health --server http://engine.internal:8080`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			live, ready, err := newClient().Health(cmd.Context())
			fmt.Fprintf(cmd.OutOrStdout(), "live: %s\nready: %s\n", orDash(live), orDash(ready))
			return err
		},
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
