package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/edcd-tools/outfitter-go/internal/application/outfit"
)

var (
	buildRole string
	buildName string
)

// NewBuildCommand groups the build subcommands
func NewBuildCommand(deps *Deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Create, inspect and manage ship builds",
	}

	cmd.AddCommand(newBuildNewCommand(deps))
	cmd.AddCommand(newBuildShowCommand(deps))
	cmd.AddCommand(newBuildSaveCommand(deps))
	cmd.AddCommand(newBuildListCommand(deps))
	cmd.AddCommand(newBuildDeleteCommand(deps))

	return cmd
}

func newBuildNewCommand(deps *Deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "new <ship-id>",
		Short: "Create a build for a hull, optionally outfitted for a role",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sh, err := deps.Outfit.NewBuild(args[0])
			if err != nil {
				return err
			}
			if buildRole != "" {
				if err := deps.Outfit.ApplyRole(sh, outfit.Role(buildRole)); err != nil {
					return err
				}
			}
			code, err := deps.Outfit.Encode(sh)
			if err != nil {
				return err
			}
			applyDiscounts(deps, sh)
			printSummary(outfit.Summarize(sh, code))

			if buildName != "" {
				if err := deps.Builds.Save(cmd.Context(), sh.ID(), buildName, code); err != nil {
					return err
				}
				fmt.Printf("\nSaved as %q\n", buildName)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&buildRole, "role", "", "Auto-build role preset (multipurpose, trader, explorer)")
	cmd.Flags().StringVar(&buildName, "name", "", "Save the build under this name")
	return cmd
}

func newBuildShowCommand(deps *Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "show <ship-id> <code|name>",
		Short: "Show the derived stats for a build code or a saved build",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			shipID := args[0]
			code := args[1]

			// A saved name takes priority over interpreting the
			// argument as a raw code.
			if saved, err := deps.Builds.Find(cmd.Context(), shipID, code); err == nil {
				code = saved
			}

			sh, err := deps.Outfit.Decode(shipID, code)
			if err != nil {
				return err
			}
			applyDiscounts(deps, sh)
			printSummary(outfit.Summarize(sh, code))
			return nil
		},
	}
}

func newBuildSaveCommand(deps *Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "save <ship-id> <name> <code>",
		Short: "Save a build code under a name",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			shipID, name, code := args[0], args[1], args[2]

			// Reject codes that do not decode before persisting them.
			if _, err := deps.Outfit.Decode(shipID, code); err != nil {
				return err
			}
			if err := deps.Builds.Save(cmd.Context(), shipID, name, code); err != nil {
				return err
			}
			fmt.Printf("Saved %s build %q\n", shipID, name)
			return nil
		},
	}
}

func newBuildListCommand(deps *Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved builds",
		RunE: func(cmd *cobra.Command, args []string) error {
			builds, err := deps.Builds.ListAll(cmd.Context())
			if err != nil {
				return err
			}
			if len(builds) == 0 {
				fmt.Println("No saved builds")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "SHIP\tNAME\tCODE")
			for _, shipID := range sortedKeys(builds) {
				names := builds[shipID]
				for _, name := range sortedKeys(names) {
					fmt.Fprintf(w, "%s\t%s\t%s\n", shipID, name, names[name])
				}
			}
			return w.Flush()
		},
	}
}

func newBuildDeleteCommand(deps *Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <ship-id> <name>",
		Short: "Delete a saved build",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := deps.Builds.Delete(cmd.Context(), args[0], args[1]); err != nil {
				return err
			}
			fmt.Printf("Deleted %s build %q\n", args[0], args[1])
			return nil
		},
	}
}
