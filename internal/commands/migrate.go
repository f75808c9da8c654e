package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SscSPs/freight_management_app/internal/platform/config"
	"github.com/SscSPs/freight_management_app/pkg/database"
)

func newMigrateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply or roll back database schema migrations",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMigrate(cmd, database.MigrateUp, 0)
		},
	})

	var steps int
	down := &cobra.Command{
		Use:   "down",
		Short: "Roll back migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if steps < 0 {
				return fmt.Errorf("--steps must not be negative")
			}
			return runMigrate(cmd, database.MigrateDown, steps)
		},
	}
	down.Flags().IntVar(&steps, "steps", 1, "number of migrations to roll back, 0 rolls back everything")
	cmd.AddCommand(down)

	return cmd
}

func runMigrate(cmd *cobra.Command, direction database.MigrationDirection, steps int) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, direction, steps); err != nil {
		return fmt.Errorf("running migrations %s: %w", direction, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Migrations %s complete\n", direction)
	return nil
}
