package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"debugfixture/internal/api"
	"debugfixture/internal/classify"
	"debugfixture/internal/config"
	"debugfixture/internal/fixture"
	"debugfixture/internal/logging"
	"debugfixture/internal/render"
	"debugfixture/internal/static"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the fixture HTTP server",
	Long: `Start the fixture HTTP server. GET and HEAD on / and /index.html return the
normal or debug rendering depending on the request's trigger parameters and
headers. Every other path is served from the static tree.

Bind failures are fatal. SIGINT and SIGTERM trigger a graceful shutdown.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	addServeFlags(serveCmd.Flags())
}

func newLogger(cfg *config.Config) *logging.Logger {
	return logging.NewLogger(logging.Config{
		Format:     logging.ParseFormat(cfg.Logging.Format),
		Level:      logging.ParseLevel(cfg.Logging.Level),
		File:       cfg.Logging.File,
		MaxSizeMB:  cfg.Logging.MaxSizeMb,
		MaxBackups: cfg.Logging.MaxBackups,
	})
}

// buildServer assembles the handler stack described by cfg. osFs is where
// the catalog file is read from.
func buildServer(cfg *config.Config, osFs afero.Fs, logger *logging.Logger) (*api.Server, error) {
	triggers, err := loadTriggerSet(osFs, cfg)
	if err != nil {
		return nil, err
	}

	assets, err := static.Source(cfg.StaticDir)
	if err != nil {
		return nil, err
	}

	handler := fixture.New(fixture.Config{
		Classifier: classify.New(triggers),
		Renderer:   render.New(),
		Static:     static.New(assets),
		Logger:     logger,
	})

	srvCfg := api.DefaultServerConfig()
	srvCfg.Compress = cfg.Compress
	return api.NewServer(cfg.Addr(), handler, logger, srvCfg)
}

// stopServer drains in-flight requests for up to timeout, then cuts off
// whatever is still running. Only a non-timeout Shutdown failure is returned.
func stopServer(server *api.Server, timeout time.Duration, logger *logging.Logger) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	err := server.Shutdown(ctx)
	if errors.Is(err, context.DeadlineExceeded) {
		logger.Warn("Shutdown timeout reached, closing remaining connections", map[string]interface{}{
			"timeoutMs": timeout.Milliseconds(),
		})
		if cerr := server.Close(); cerr != nil {
			logger.Error("Error closing connections", map[string]interface{}{
				"error": cerr.Error(),
			})
		}
		return nil
	}
	if err != nil {
		logger.Error("Error during shutdown", map[string]interface{}{
			"error": err.Error(),
		})
		return err
	}

	logger.Info("Server stopped gracefully", nil)
	return nil
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger := newLogger(cfg)
	defer logger.Close()

	server, err := buildServer(cfg, afero.NewOsFs(), logger)
	if err != nil {
		return err
	}

	// reported once by main, with the suggested fixes
	if err := server.Listen(); err != nil {
		return err
	}

	if cfg.Banner {
		printBanner(cmd.OutOrStdout(), server.Addr(), cfg.StaticDir)
	}

	// Setup graceful shutdown
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(shutdown)

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Serve()
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			logger.Error("Server error", map[string]interface{}{
				"error": err.Error(),
			})
			return err
		}
	case sig := <-shutdown:
		logger.Info("Received shutdown signal", map[string]interface{}{
			"signal": sig.String(),
		})

		return stopServer(server, cfg.ShutdownTimeout(), logger)
	}

	return nil
}
