package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/deppfellow/accounts-service/internal/handler"
	"github.com/deppfellow/accounts-service/internal/repository"
	"github.com/deppfellow/accounts-service/internal/router"
	"github.com/deppfellow/accounts-service/internal/server"
	"github.com/deppfellow/accounts-service/internal/service"
	"github.com/deppfellow/accounts-service/static"
	"github.com/spf13/cobra"
)

func newServeCommand() *cobra.Command {
	var autoMigrate bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, loggerService, log, err := bootstrap()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			defer loggerService.Shutdown()

			// The flag wins over ACCOUNTS_DATABASE__AUTO_MIGRATE only when set.
			if cmd.Flags().Changed("auto-migrate") {
				cfg.Database.AutoMigrate = autoMigrate
			}

			if cfg.Database.AutoMigrate {
				if err := migrate(cmd.Context(), &log, cfg, defaultMigrationTimeout); err != nil {
					return err
				}
			}

			srv, err := server.New(cfg, &log, loggerService)
			if err != nil {
				return fmt.Errorf("failed to initialize server: %w", err)
			}

			repos := repository.NewRepositories(srv)
			services := service.NewServices(srv, repos)
			handlers := handler.NewHandlers(srv, services, static.FS)
			r := router.NewRouter(srv, handlers, static.FS)

			srv.SetupHTTPServer(r)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				errCh <- srv.Start()
			}()

			var startErr error
			select {
			case <-ctx.Done():
			case startErr = <-errCh:
				if startErr != nil {
					log.Error().Err(startErr).Msg("failed to start server")
				}
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
			defer cancel()

			if err := srv.Shutdown(shutdownCtx); err != nil {
				log.Error().Err(err).Msg("server forced to shutdown")
				return errors.Join(startErr, err)
			}

			log.Info().Msg("server exited properly")
			return startErr
		},
	}

	cmd.Flags().BoolVar(&autoMigrate, "auto-migrate", false, "apply migrations before serving (overrides ACCOUNTS_DATABASE__AUTO_MIGRATE)")
	return cmd
}
