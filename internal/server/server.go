// Package server provides the main server initialization and run logic.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sbtvjoe-max/UniChat1.1/internal/api"
	"github.com/sbtvjoe-max/UniChat1.1/internal/api/handlers"
	"github.com/sbtvjoe-max/UniChat1.1/internal/config"
	"github.com/sbtvjoe-max/UniChat1.1/internal/db"
	"github.com/sbtvjoe-max/UniChat1.1/internal/logger"
)

// Config holds the server configuration options.
type Config struct {
	Port    int    // Port to run the server on (0 = use config default)
	Version string // Version string to report
}

// Run starts the server with the given configuration and blocks until
// the context is canceled.
func Run(ctx context.Context, cfg Config) error {
	// Set version in handlers
	if cfg.Version != "" {
		handlers.Version = cfg.Version
	}

	// Load .env then configuration
	config.LoadDotenv()
	appCfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Override port from CLI flag if provided
	if cfg.Port != 0 {
		appCfg.Server.Port = cfg.Port
	}

	// Initialize logger
	logger.Init(appCfg.Log.Format, appCfg.Log.Level)
	slog.Info("Starting UniChat server", "version", cfg.Version, "mode", appCfg.Server.Mode)

	// Initialize database
	database, err := db.New(appCfg.Database)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	slog.Info("Database initialized", "driver", appCfg.Database.Driver)

	// Run migrations
	if err := db.Migrate(database); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	slog.Info("Database migrations completed")

	// Initialize server ID (generate if not exists)
	serverID, err := db.GetOrCreateServerID(database)
	if err != nil {
		return fmt.Errorf("failed to initialize server ID: %w", err)
	}
	slog.Info("Server ID initialized", "server_id", serverID)

	router := api.NewRouter(appCfg, database)

	addr := fmt.Sprintf(":%d", appCfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	serveErr := make(chan error, 1)
	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serveErr <- err
		}
	}()

	// Wait for context cancellation or a listen failure
	select {
	case err := <-serveErr:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}
	slog.Info("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	slog.Info("Server stopped")

	return nil
}

// RunWithSignalHandling starts the server and handles OS signals for
// graceful shutdown.
func RunWithSignalHandling(cfg Config) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		errCh <- Run(ctx, cfg)
	}()

	select {
	case sig := <-quit:
		slog.Info("Received signal", "signal", sig)
		cancel()
		return <-errCh
	case err := <-errCh:
		return err
	}
}
