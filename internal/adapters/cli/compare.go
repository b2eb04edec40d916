package cli

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/edcd-tools/outfitter-go/internal/application/outfit"
	"github.com/edcd-tools/outfitter-go/internal/domain/build"
)

var (
	compareBuilds []string
	compareFacets []int
)

// NewCompareCommand groups the comparison subcommands
func NewCompareCommand(deps *Deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Create and inspect build comparisons",
	}

	cmd.AddCommand(newCompareCreateCommand(deps))
	cmd.AddCommand(newCompareShowCommand(deps))
	cmd.AddCommand(newCompareListCommand(deps))
	cmd.AddCommand(newCompareCodeCommand(deps))
	cmd.AddCommand(newCompareImportCommand(deps))
	cmd.AddCommand(newCompareDeleteCommand(deps))

	return cmd
}

func newCompareCreateCommand(deps *Deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a comparison from saved builds",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			stored := &build.StoredComparison{
				ID:     uuid.NewString(),
				Name:   args[0],
				Facets: compareFacets,
			}
			for _, ref := range compareBuilds {
				shipID, buildName, ok := strings.Cut(ref, ":")
				if !ok {
					return fmt.Errorf("invalid build reference %q, expected <ship-id>:<name>", ref)
				}
				if _, err := deps.Builds.Find(cmd.Context(), shipID, buildName); err != nil {
					return fmt.Errorf("%s build %q data is missing!", shipID, buildName)
				}
				stored.Builds = append(stored.Builds, build.BuildRef{
					ShipID:    shipID,
					BuildName: buildName,
				})
			}
			if err := deps.Comparisons.Save(cmd.Context(), stored); err != nil {
				return err
			}
			fmt.Printf("Saved comparison %q with %d builds\n", stored.Name, len(stored.Builds))
			return nil
		},
	}
	cmd.Flags().StringArrayVar(&compareBuilds, "build", nil, "Saved build to include, as <ship-id>:<name> (repeatable)")
	cmd.Flags().IntSliceVar(&compareFacets, "facet", nil, "Stat facet indices to display")
	return cmd
}

func newCompareShowCommand(deps *Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "show <name>",
		Short: "Show a comparison's builds side by side",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmp, err := deps.Comparisons.FindByName(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "SHIP\tBUILD\tCOST\tLADEN MASS\tLADEN RANGE\tSPEED\tSHIELD\tDPS")
			for _, ref := range cmp.Builds {
				code, err := deps.Builds.Find(cmd.Context(), ref.ShipID, ref.BuildName)
				if err != nil {
					return fmt.Errorf("%s build %q data is missing!", ref.ShipID, ref.BuildName)
				}
				sh, err := deps.Outfit.Decode(ref.ShipID, code)
				if err != nil {
					return err
				}
				s := outfit.Summarize(sh, code)
				fmt.Fprintf(w, "%s\t%s\t%.0f\t%.2f\t%.2f\t%.0f\t%.2f\t%.2f\n",
					s.ShipID, ref.BuildName, s.TotalCost, s.LadenMass,
					s.LadenRange, s.TopSpeed, s.ShieldStrength, s.TotalDps)
			}
			return w.Flush()
		},
	}
}

func newCompareListCommand(deps *Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved comparisons",
		RunE: func(cmd *cobra.Command, args []string) error {
			comparisons, err := deps.Comparisons.ListAll(cmd.Context())
			if err != nil {
				return err
			}
			if len(comparisons) == 0 {
				fmt.Println("No saved comparisons")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tBUILDS")
			for _, cmp := range comparisons {
				refs := make([]string, 0, len(cmp.Builds))
				for _, ref := range cmp.Builds {
					refs = append(refs, ref.ShipID+":"+ref.BuildName)
				}
				fmt.Fprintf(w, "%s\t%s\n", cmp.Name, strings.Join(refs, ", "))
			}
			return w.Flush()
		},
	}
}

// newCompareCodeCommand emits the shareable compressed form of a
// comparison, with the referenced build codes inlined
func newCompareCodeCommand(deps *Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "code <name>",
		Short: "Print a comparison's shareable code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			stored, err := deps.Comparisons.FindByName(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			cmp := &build.Comparison{Name: stored.Name, Facets: stored.Facets}
			for _, ref := range stored.Builds {
				code, err := deps.Builds.Find(cmd.Context(), ref.ShipID, ref.BuildName)
				if err != nil {
					return fmt.Errorf("%s build %q data is missing!", ref.ShipID, ref.BuildName)
				}
				cmp.Builds = append(cmp.Builds, build.ComparisonBuild{
					ShipID:    ref.ShipID,
					BuildName: ref.BuildName,
					Code:      code,
				})
			}

			code, err := build.FromComparison(cmp)
			if err != nil {
				return err
			}
			fmt.Println(code)
			return nil
		},
	}
}

// newCompareImportCommand decodes a shared comparison code and saves
// both the comparison and the builds it carries
func newCompareImportCommand(deps *Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "import <code>",
		Short: "Import a shared comparison code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmp, err := build.ToComparison(args[0])
			if err != nil {
				return err
			}

			stored := &build.StoredComparison{
				ID:     uuid.NewString(),
				Name:   cmp.Name,
				Facets: cmp.Facets,
			}
			for _, b := range cmp.Builds {
				if _, err := deps.Outfit.Decode(b.ShipID, b.Code); err != nil {
					return fmt.Errorf("%s build %q is invalid: %w", b.ShipID, b.BuildName, err)
				}
				if err := deps.Builds.Save(cmd.Context(), b.ShipID, b.BuildName, b.Code); err != nil {
					return err
				}
				stored.Builds = append(stored.Builds, build.BuildRef{
					ShipID:    b.ShipID,
					BuildName: b.BuildName,
				})
			}
			if err := deps.Comparisons.Save(cmd.Context(), stored); err != nil {
				return err
			}
			fmt.Printf("Imported comparison %q with %d builds\n", stored.Name, len(stored.Builds))
			return nil
		},
	}
}

func newCompareDeleteCommand(deps *Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a saved comparison",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := deps.Comparisons.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Deleted comparison %q\n", args[0])
			return nil
		},
	}
}
