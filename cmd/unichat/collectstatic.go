package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sbtvjoe-max/UniChat1.1/internal/config"
	"github.com/sbtvjoe-max/UniChat1.1/internal/logger"
	"github.com/sbtvjoe-max/UniChat1.1/internal/static"
)

var collectstaticIgnore []string

var collectstaticCmd = &cobra.Command{
	Use:   "collectstatic",
	Short: "Collect static assets into the static root",
	Long: `Copy files from the configured static source directories into
the static root, preserving relative paths.

Examples:
  unichat collectstatic
  unichat collectstatic --ignore "*.map" --ignore "src/**"`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runCollectstatic(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	collectstaticCmd.Flags().StringArrayVar(&collectstaticIgnore, "ignore", nil, "Glob pattern to skip (repeatable, adds to config)")
}

func runCollectstatic() error {
	config.LoadDotenv()
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	logger.Init(cfg.Log.Format, cfg.Log.Level)

	staticCfg := cfg.Static
	staticCfg.Ignore = append(staticCfg.Ignore, collectstaticIgnore...)

	res, err := static.NewCollector(staticCfg).Collect()
	if err != nil {
		return err
	}

	fmt.Printf("%d static files copied to %s", res.Copied, staticCfg.Root)
	if res.Skipped > 0 {
		fmt.Printf(", %d skipped", res.Skipped)
	}
	fmt.Println(".")
	return nil
}
