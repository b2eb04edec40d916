package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// NewShipsCommand lists the hulls known to the catalog
func NewShipsCommand(deps *Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "ships",
		Short: "List available hulls",
		RunE: func(cmd *cobra.Command, args []string) error {
			cat := deps.Outfit.Catalog()

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tHULL MASS\tHULL COST\tHARDPOINTS\tINTERNALS")
			for _, id := range cat.ShipIDs() {
				spec := cat.Ship(id)
				fmt.Fprintf(w, "%s\t%s\t%.0f\t%.0f\t%d\t%d\n",
					spec.ID,
					spec.Properties.Name,
					spec.Properties.HullMass,
					spec.Properties.HullCost,
					len(spec.Slots.Hardpoints),
					len(spec.Slots.Internal),
				)
			}
			return w.Flush()
		},
	}
}
