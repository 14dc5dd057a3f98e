package main

import (
	"github.com/deppfellow/accounts-service/internal/config"
	"github.com/deppfellow/accounts-service/internal/logger"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	serve := newServeCommand()

	root := &cobra.Command{
		Use:   "accounts",
		Short: "Account REST API service",
		Long: `accounts serves the Account REST API backed by PostgreSQL.

Configuration is read from ACCOUNTS_ prefixed environment variables
(and a .env file when present). Running without a subcommand is the
same as "accounts serve".`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE:         serve.RunE,
	}
	root.Flags().AddFlagSet(serve.Flags())

	root.AddCommand(serve, newMigrateCommand())
	return root
}

// bootstrap loads the config and builds the logger every command shares.
func bootstrap() (*config.Config, *logger.LoggerService, zerolog.Logger, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, zerolog.Nop(), err
	}

	loggerService := logger.NewLoggerService(cfg.Observability)
	log := logger.NewLoggerWithService(cfg.Observability, loggerService)
	return cfg, loggerService, log, nil
}
