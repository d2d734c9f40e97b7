// Package main provides the edge-sim command line entry point.
package main

import (
	"fmt"
	"log"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/yourusername/fairway-edge/internal/config"
	"github.com/yourusername/fairway-edge/internal/logger"
	"github.com/yourusername/fairway-edge/internal/simulation"
)

// Build information - set via ldflags
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var (
	configFile string
	appLog     *logrus.Logger
	cfg        *config.Config
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "./config/config.yaml", "Path to configuration file")
	rootCmd.AddCommand(runCmd, watchCmd, listMetricsCmd, versionCmd)
}

var rootCmd = &cobra.Command{
	Use:   "edge-sim",
	Short: "Simulate golf tournament outcomes and find moneyline edges",
	Long: `Ranks a player cohort across weighted performance metrics, blends the
ranks with sportsbook moneylines, runs Monte Carlo trials and compares the
simulated win probability with the market's implied probability.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := loadConfig(); err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		setupLogger()
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print build information",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "edge-sim %s (commit %s, built %s)\n", Version, GitCommit, BuildDate)
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func loadConfig() error {
	var err error
	cfg, err = config.LoadWithDefaults(configFile)
	if err != nil {
		return err
	}
	return nil
}

func validateConfig() error {
	if err := config.Validate(cfg); err != nil {
		return err
	}
	for _, warning := range config.Warnings(cfg) {
		appLog.Warn(warning)
	}
	return nil
}

func setupLogger() {
	appLog = logger.NewLogger(cfg.App.LogLevel)
	if cfg.IsProduction() {
		appLog.SetFormatter(&logrus.JSONFormatter{})
	}
}

func newEngine() *simulation.Engine {
	return simulation.NewEngine(simulation.EngineConfig{
		Seed:  cfg.Simulation.Seed,
		Stake: decimal.NewFromFloat(cfg.Simulation.Stake),
	})
}
