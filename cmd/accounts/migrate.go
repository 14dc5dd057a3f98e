package main

import (
	"context"
	"fmt"
	"time"

	"github.com/deppfellow/accounts-service/internal/config"
	"github.com/deppfellow/accounts-service/internal/database"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

const defaultMigrationTimeout = time.Minute

func newMigrateCommand() *cobra.Command {
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations and exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, loggerService, log, err := bootstrap()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			defer loggerService.Shutdown()

			return migrate(cmd.Context(), &log, cfg, timeout)
		},
	}

	cmd.Flags().DurationVar(&timeout, "timeout", defaultMigrationTimeout, "maximum time to spend migrating")
	return cmd
}

func migrate(ctx context.Context, log *zerolog.Logger, cfg *config.Config, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := database.Migrate(ctx, log, cfg); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}
