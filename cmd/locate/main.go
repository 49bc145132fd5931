package main

import (
	"fmt"
	"log"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/yourusername/growth-optimizer/internal/config"
	"github.com/yourusername/growth-optimizer/internal/logger"
	"github.com/yourusername/growth-optimizer/internal/optimizer"
	"github.com/yourusername/growth-optimizer/internal/reporting"
	"github.com/yourusername/growth-optimizer/internal/simulation"
)

// Build information - set via ldflags
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var (
	configFile string
	seedFlag   int64
	outputFlag string
	appLogger  *logrus.Logger
	cfg        *config.Config
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "./config/config.yaml", "Path to configuration file")
	rootCmd.PersistentFlags().Int64Var(&seedFlag, "seed", 0, "Random seed (0 picks one from the clock)")
	rootCmd.PersistentFlags().StringVarP(&outputFlag, "output", "o", "", "Override the curve CSV output path")
}

var rootCmd = &cobra.Command{
	Use:   "locate",
	Short: "Locate the win probability matching a target growth for each odds value",
	Long: `Scans the configured odds grid and, for each odds value, finds the lowest
win probability whose risk-adjusted growth reaches the target. Writes the
resulting probability curve to a CSV file.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := loadConfig(); err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		appLogger = logger.NewLogger(cfg.App.LogLevel)
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runLocator(cmd)
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
	if seedFlag != 0 {
		cfg.Simulation.Seed = seedFlag
	}
	if outputFlag != "" {
		cfg.Locator.OutputPath = outputFlag
	}
	return config.Validate(cfg)
}

func runLocator(cmd *cobra.Command) error {
	appLogger.WithFields(logrus.Fields{
		"version": Version,
		"commit":  GitCommit,
		"built":   BuildDate,
	}).Info("Probability locator starting")

	sim := simulation.NewSimulator(cfg.Simulation.Seed, appLogger)

	var evalCache *optimizer.EvaluationCache
	if cfg.Optimizer.CacheTTLSeconds > 0 {
		evalCache = optimizer.NewEvaluationCache(time.Duration(cfg.Optimizer.CacheTTLSeconds) * time.Second)
	}

	evaluator, err := optimizer.NewEvaluator(sim, evalCache)
	if err != nil {
		return err
	}
	locator, err := optimizer.NewLocator(evaluator, appLogger)
	if err != nil {
		return err
	}

	locatorCfg := optimizer.LocatorConfig{
		OddsRange:        toRange(cfg.Locator.OddsRange),
		ProbabilityRange: toRange(cfg.Locator.ProbabilityRange),
		TargetGrowth:     cfg.Locator.TargetGrowth,
		InitialCapital:   cfg.Simulation.InitialCapital,
		Periods:          cfg.Simulation.Periods,
		Trials:           cfg.Simulation.Trials,
		BetFraction:      cfg.Locator.BetFraction,
	}

	points, err := locator.Locate(cmd.Context(), locatorCfg)
	if err != nil {
		return fmt.Errorf("probability scan failed: %w", err)
	}

	if err := reporting.WriteCurveCSV(points, cfg.Locator.OutputPath); err != nil {
		return fmt.Errorf("failed to write curve CSV: %w", err)
	}

	fmt.Print(reporting.SummarizeCurve(points, locatorCfg.TargetGrowth))
	fmt.Printf("Curve written to %s\n", cfg.Locator.OutputPath)
	return nil
}

func toRange(r config.RangeConfig) optimizer.Range {
	return optimizer.Range{Min: r.Min, Max: r.Max, Step: r.Step}
}
