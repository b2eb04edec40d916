package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewBackupCommand groups the backup subcommands
func NewBackupCommand(deps *Deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Import and export build backups",
	}

	cmd.AddCommand(newBackupImportCommand(deps))
	cmd.AddCommand(newBackupExportCommand(deps))

	return cmd
}

func newBackupImportCommand(deps *Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Import a backup document, replacing builds with the same name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("failed to open backup file: %w", err)
			}
			defer f.Close()

			result, err := deps.Importer.Import(cmd.Context(), f)
			if err != nil {
				return err
			}
			fmt.Printf("Imported %d builds and %d comparisons\n", result.Builds, result.Comparisons)
			return nil
		},
	}
}

func newBackupExportCommand(deps *Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "export [file]",
		Short: "Export all saved builds and comparisons as JSON",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := os.Stdout
			if len(args) == 1 {
				f, err := os.Create(args[0])
				if err != nil {
					return fmt.Errorf("failed to create backup file: %w", err)
				}
				defer f.Close()
				out = f
			}
			return deps.Exporter.Export(cmd.Context(), out)
		},
	}
}
