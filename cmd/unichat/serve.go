package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sbtvjoe-max/UniChat1.1/internal/server"
)

var servePort int

// @title UniChat API
// @version 1.0
// @description Generated web application scaffold API
// @host localhost:8000
// @BasePath /api/v1
var serveCmd = &cobra.Command{
	Use:     "serve",
	Aliases: []string{"runserver"},
	Short:   "Run the application server",
	Long: `Start the UniChat server.

Examples:
  unichat serve                 # Run with config/.env defaults
  unichat serve --port 8080     # Override port
  unichat runserver             # Same command, Django spelling

Environment variables (UNICHAT_* or the generator's unprefixed names):
  UNICHAT_SERVER_PORT      Server port (default: 8000)
  UNICHAT_SERVER_MODE      development or production
  SECRET_KEY               Application secret key
  DEBUG                    Debug flag
  ALLOWED_HOSTS            Comma-separated host allow list
  DB_HOST / DB_PORT / DB_USER / DB_PASSWORD / DB_NAME
                           Postgres connection parameters
  UNICHAT_DATABASE_DRIVER  Database driver: sqlite, postgres
  UNICHAT_DATABASE_DSN     Full connection string (overrides DB_*)`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "Port to run server on (overrides config)")
}

func runServe(cmd *cobra.Command, args []string) {
	cfg := server.Config{
		Port:    servePort,
		Version: Version,
	}

	if err := server.RunWithSignalHandling(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
