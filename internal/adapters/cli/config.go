package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewConfigCommand creates the config command with subcommands
func NewConfigCommand(deps *Deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect configuration settings",
		Long: `Inspect Outfitter configuration settings.

Configuration is loaded from multiple sources with priority:
1. Environment variables (OUTFITTER_* prefix)
2. Config file (config.yaml)
3. Default values

Example:
  outfitter config show`,
	}

	cmd.AddCommand(newConfigShowCommand(deps))

	return cmd
}

// newConfigShowCommand creates the config show subcommand
func newConfigShowCommand(deps *Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := deps.Config

			fmt.Println("Outfitter Configuration")
			fmt.Println("=======================")

			fmt.Println("Database:")
			fmt.Printf("  Type:             %s\n", cfg.Database.Type)
			if cfg.Database.Type == "postgres" {
				if cfg.Database.URL != "" {
					fmt.Printf("  URL:              %s\n", cfg.Database.URL)
				} else {
					fmt.Printf("  Host:             %s\n", cfg.Database.Host)
					fmt.Printf("  Port:             %d\n", cfg.Database.Port)
					fmt.Printf("  Database:         %s\n", cfg.Database.Name)
					fmt.Printf("  User:             %s\n", cfg.Database.User)
				}
				fmt.Printf("  Max Connections:  %d\n", cfg.Database.Pool.MaxOpen)
			} else {
				fmt.Printf("  Path:             %s\n", cfg.Database.Path)
			}

			fmt.Println("\nCatalog:")
			fmt.Printf("  Path:             %s\n", cfg.Catalog.Path)

			fmt.Println("\nDiscounts:")
			fmt.Printf("  Ship:             %.2f\n", cfg.Discounts.Ship)
			fmt.Printf("  Module:           %.2f\n", cfg.Discounts.Module)

			fmt.Println("\nLogging:")
			fmt.Printf("  Level:            %s\n", cfg.Logging.Level)
			fmt.Printf("  Format:           %s\n", cfg.Logging.Format)
			fmt.Printf("  Output:           %s\n", cfg.Logging.Output)

			return nil
		},
	}
}
