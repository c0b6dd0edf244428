package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	cfgpkg "github.com/22kromerky/agdash/internal/config"
	"github.com/22kromerky/agdash/internal/dataset"
)

var (
	// Global flags
	cfgFile     string
	debug       bool
	flagDataDir string

	// Loaded configuration
	cfg *cfgpkg.Global

	// Logger; Nop unless --debug is set.
	logger = zerolog.Nop()
)

var rootCmd = &cobra.Command{
	Use:   "agdash",
	Short: "agdash: terminal dashboard for crop prices, cropland values, and the price received index",
	Long: `agdash loads the USDA crop price, cropland value, and price received
index exports and renders filterable time-series views with descriptive
statistics, markdown reports, and PNG charts.`,
}

// Execute is the entry point called by main.main()
func Execute() {
	cobra.OnInitialize(loadConfig)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "✗ Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.agdash/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug output")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "directory containing the dataset CSV files (overrides config)")
}

func loadConfig() {
	if debug {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			Level(zerolog.DebugLevel).
			With().Timestamp().Logger()
	}
	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		// Non-fatal: allow running commands that don't need config
		fmt.Fprintf(os.Stderr, "⚠ Warning: failed to load config: %v\n", err)
		return
	}
	cfg = c
	if flagDataDir != "" {
		cfg.DataDir = flagDataDir
	}
}

// openStore loads the three dataset tables from the configured data dir.
func openStore() (*dataset.Store, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration not loaded")
	}
	return dataset.LoadStore(cfg.DataDir, logger)
}
