package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	portssvc "github.com/SscSPs/freight_management_app/internal/core/ports/services"
	"github.com/SscSPs/freight_management_app/internal/core/services"
	"github.com/SscSPs/freight_management_app/internal/platform/config"
	"github.com/SscSPs/freight_management_app/internal/repositories/database/pgsql"
	"github.com/SscSPs/freight_management_app/pkg/database"
)

// serviceLoader opens the backing store and returns the service container
// together with a release func the caller must invoke when done.
type serviceLoader func(ctx context.Context) (*portssvc.ServiceContainer, func(), error)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	return newRootCommand(loadServices)
}

func newRootCommand(load serviceLoader) *cobra.Command {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:   "fmactl",
		Short: "Operator tooling for the freight management backend",
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelWarn
			if verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(
		newMigrateCommand(),
		newCreateUserCommand(load),
		newAccountsCommand(load),
		newJournalCommand(load),
		newReportsCommand(load),
	)

	return rootCmd
}

func loadServices(ctx context.Context) (*portssvc.ServiceContainer, func(), error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}

	pool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, true)
	if err != nil {
		return nil, nil, fmt.Errorf("connecting to database: %w", err)
	}

	repos := pgsql.NewRepositoryProvider(pool)
	return services.NewServiceContainer(cfg, repos), func() { database.ClosePgxPool(pool) }, nil
}
