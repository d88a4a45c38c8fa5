package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/sbtvjoe-max/UniChat1.1/internal/config"
	"github.com/sbtvjoe-max/UniChat1.1/internal/db"
	"github.com/sbtvjoe-max/UniChat1.1/internal/logger"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply database migrations",
	Long: `Open the configured database, apply migrations, and seed the
server ID, then exit. Useful before first serve or in deploy hooks.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runMigrate(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func runMigrate() error {
	config.LoadDotenv()
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	logger.Init(cfg.Log.Format, cfg.Log.Level)

	database, err := db.New(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}

	if err := db.Migrate(database); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	serverID, err := db.GetOrCreateServerID(database)
	if err != nil {
		return fmt.Errorf("failed to initialize server ID: %w", err)
	}

	slog.Info("Migrations applied", "driver", cfg.Database.Driver, "server_id", serverID)
	return nil
}
