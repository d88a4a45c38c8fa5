package main

import (
	"os"

	"github.com/spf13/cobra"
)

// Version is set via ldflags at build time
var Version = "dev"

var rootCmd = &cobra.Command{
	Use:   "unichat",
	Short: "UniChat - generated web application scaffold",
	Long:  `UniChat is the generated scaffold server: configuration, a database connection, and a health-check endpoint, ready for application code.`,
	Example: `  # Run the development server
  unichat serve

  # Apply database migrations without starting the server
  unichat migrate

  # Collect static assets into the static root
  unichat collectstatic`,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(collectstaticCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
