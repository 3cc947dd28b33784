package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	domain "github.com/donaldgifford/property-market-engine/pkg/types"
)

func marketCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "market <location> <type>",
		Short: "Show a market snapshot",
		Long: "Prints price-per-area statistics and momentum for a location and\n" +
			"property type (apartment, villa, commercial, land, other).",
		Example: `  mectl market Tirana apartment
  mectl market "Durres, Plazh" villa --output json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			pt := domain.PropertyType(args[1])
			if !pt.Valid() {
				return fmt.Errorf("unknown property type %q", args[1])
			}

			view, err := newClient().GetMarket(cmd.Context(), args[0], pt)
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), view)
			}
			return printMarket(cmd.OutOrStdout(), view)
		},
	}
}
