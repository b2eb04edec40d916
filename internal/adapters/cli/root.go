package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/edcd-tools/outfitter-go/internal/application/backup"
	"github.com/edcd-tools/outfitter-go/internal/application/outfit"
	"github.com/edcd-tools/outfitter-go/internal/domain/build"
	"github.com/edcd-tools/outfitter-go/internal/infrastructure/config"
)

// Deps bundles everything the command handlers need. The commands only
// ever call the application services and the store interfaces; slot
// internals never leak out here.
type Deps struct {
	Config      *config.Config
	Outfit      *outfit.Service
	Builds      build.BuildStore
	Comparisons build.ComparisonStore
	Importer    *backup.Importer
	Exporter    *backup.Exporter
}

// NewRootCommand creates the root command for the CLI
func NewRootCommand(deps *Deps) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "outfitter",
		Short: "Outfitter - build, inspect and share ship loadouts",
		Long: `Outfitter computes derived performance stats for ship builds and
serializes them into compact, URL-safe build codes.

Examples:
  outfitter ships
  outfitter build new anaconda --role trader --name "Hauler"
  outfitter build show anaconda 48A6A6A5A8A8A5C2d2d27271919--
  outfitter build save anaconda "Miner" <code>
  outfitter build list
  outfitter compare create "haulers" --build anaconda:Hauler --build python:Runner
  outfitter backup export backup.json
  outfitter backup import backup.json`,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	rootCmd.AddCommand(NewShipsCommand(deps))
	rootCmd.AddCommand(NewBuildCommand(deps))
	rootCmd.AddCommand(NewCompareCommand(deps))
	rootCmd.AddCommand(NewBackupCommand(deps))
	rootCmd.AddCommand(NewConfigCommand(deps))

	return rootCmd
}

// Execute runs the root command
func Execute(deps *Deps) {
	if err := NewRootCommand(deps).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
