package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/iwvelando/ai-roi-forecast/internal/config"
	"github.com/iwvelando/ai-roi-forecast/internal/logging"
	"github.com/iwvelando/ai-roi-forecast/internal/scenario"
	"github.com/iwvelando/ai-roi-forecast/internal/server"
	"github.com/iwvelando/ai-roi-forecast/pkg/constants"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd(ver string) *cobra.Command {
	var serverConfigPath, address string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the projection API over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := server.LoadConfig(serverConfigPath)
			if err != nil {
				return err
			}
			if address != "" {
				cfg.Address = address
			}

			logLevel, _ := cmd.Flags().GetString("log-level")
			logger, err := logging.New(cfg.Logging, logLevel)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			defer func() {
				_ = logger.Sync()
			}()

			configLocation, _ := cmd.Flags().GetString("config")
			initial, err := initialSnapshot(logger, configLocation)
			if err != nil {
				return err
			}

			store, err := scenario.OpenStore(cfg.Store)
			if err != nil {
				return err
			}
			if closer, ok := store.(io.Closer); ok {
				defer func() {
					_ = closer.Close()
				}()
			}

			manager := scenario.NewManager(logger, store, initial)
			loaded, err := manager.Load(cmd.Context())
			if err != nil {
				logger.Warn("failed to restore saved state",
					zap.String("op", "main.serve"),
					zap.Error(err),
				)
			} else if loaded {
				logger.Info("restored saved state",
					zap.String("op", "main.serve"),
					zap.Int("scenarios", len(manager.State().Scenarios)),
				)
			}

			return run(logger, server.New(logger, cfg, manager, ver))
		},
	}

	cmd.Flags().StringVar(&serverConfigPath, "server-config", constants.DefaultServerConfigFile, "path to server configuration file")
	cmd.Flags().StringVar(&address, "address", "", "listen address override")
	return cmd
}

// initialSnapshot seeds the main assumptions from the projection config when
// one exists, falling back to the catalog defaults.
func initialSnapshot(logger *zap.Logger, configLocation string) (scenario.Snapshot, error) {
	if _, err := os.Stat(configLocation); errors.Is(err, fs.ErrNotExist) {
		return scenario.DefaultSnapshot(), nil
	}
	conf, err := config.LoadConfiguration(configLocation)
	if err != nil {
		return scenario.Snapshot{}, fmt.Errorf("failed to load configuration at %s: %w", configLocation, err)
	}
	logger.Info("seeded assumptions from configuration",
		zap.String("op", "main.serve"),
		zap.String("config", configLocation),
	)
	return scenario.SnapshotFromConfig(conf), nil
}

func run(logger *zap.Logger, srv *server.Server) error {
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- srv.ListenAndServe()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-serverErr:
		return err
	case sig := <-quit:
		logger.Info("shutting down server",
			zap.String("op", "main.run"),
			zap.String("signal", sig.String()),
		)
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("error during server shutdown: %w", err)
	}
	return <-serverErr
}
