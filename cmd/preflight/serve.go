package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/wphost/preflight/internal/shell/api"
)

// =============================================================================
// Serve Command
// =============================================================================

func newServeCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the preflight checks over HTTP",
		Long: `Serve exposes the validation and projection rules as an HTTP API, so
deployment orchestrators and CI pipelines share the same source of truth
instead of re-implementing the checks.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig(*configPath)
			if err != nil {
				return &exitError{code: ExitConfigError, err: err}
			}
			logger := SetupLogger(cfg)

			if err := runServer(cfg, logger); err != nil {
				return &exitError{code: ExitHTTPServerError, err: err}
			}
			return nil
		},
	}
}

func runServer(cfg *Config, logger *slog.Logger) error {
	handler := api.NewHandler(logger)

	srv := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      handler.Routes(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	logger.Info("preflight API listening",
		"addr", cfg.Server.Address(),
		"version", Version,
	)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		logger.Info("shutting down", "signal", sig.String())
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(ctx)
	}
}
