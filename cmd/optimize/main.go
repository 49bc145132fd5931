package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/yourusername/growth-optimizer/internal/config"
	"github.com/yourusername/growth-optimizer/internal/database"
	"github.com/yourusername/growth-optimizer/internal/health"
	"github.com/yourusername/growth-optimizer/internal/logger"
	"github.com/yourusername/growth-optimizer/internal/models"
	"github.com/yourusername/growth-optimizer/internal/optimizer"
	"github.com/yourusername/growth-optimizer/internal/reporting"
	"github.com/yourusername/growth-optimizer/internal/repository"
	"github.com/yourusername/growth-optimizer/internal/scheduler"
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
	appLogger  *logrus.Logger
	cfg        *config.Config
	db         *database.DB
	runRepo    repository.RunRepository
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "./config/config.yaml", "Path to configuration file")
	rootCmd.PersistentFlags().Int64Var(&seedFlag, "seed", 0, "Random seed (0 picks one from the clock)")
}

var rootCmd = &cobra.Command{
	Use:   "optimize",
	Short: "Search the odds/probability grid for the best risk-adjusted growth",
	Long: `Sweeps the configured odds and win-probability grid, estimates volatility
drag by Monte Carlo simulation for each surviving candidate, and reports the
parameter pair with the greatest risk-adjusted growth. Runs once by default;
with optimizer.schedule set, re-runs on the cron schedule.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := loadConfig(); err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		if err := setupDependencies(cmd.Context()); err != nil {
			return fmt.Errorf("failed to setup dependencies: %w", err)
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg.Optimizer.Schedule != "" {
			return runScheduled()
		}
		return runOnce(cmd.Context())
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
	return config.Validate(cfg)
}

func setupDependencies(ctx context.Context) error {
	appLogger = logger.NewLogger(cfg.App.LogLevel)
	appLogger.WithFields(logrus.Fields{
		"version": Version,
		"commit":  GitCommit,
		"built":   BuildDate,
	}).Info("Growth optimizer starting")

	if cfg.Database.Enabled {
		var err error
		db, err = database.NewDB(ctx, &cfg.Database)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		if err := repository.EnsureSchema(ctx, db); err != nil {
			return err
		}
		runRepo = repository.NewPostgresRunRepository(db)
	}
	return nil
}

func buildGrid() (*optimizer.Grid, optimizer.GridConfig, *simulation.Simulator, error) {
	sim := simulation.NewSimulator(cfg.Simulation.Seed, appLogger)

	var evalCache *optimizer.EvaluationCache
	if cfg.Optimizer.CacheTTLSeconds > 0 {
		evalCache = optimizer.NewEvaluationCache(time.Duration(cfg.Optimizer.CacheTTLSeconds) * time.Second)
	}

	evaluator, err := optimizer.NewEvaluator(sim, evalCache)
	if err != nil {
		return nil, optimizer.GridConfig{}, nil, err
	}
	grid, err := optimizer.NewGrid(evaluator, appLogger)
	if err != nil {
		return nil, optimizer.GridConfig{}, nil, err
	}

	gridCfg := optimizer.GridConfig{
		OddsRange:        toRange(cfg.Optimizer.OddsRange),
		ProbabilityRange: toRange(cfg.Optimizer.ProbabilityRange),
		TargetGrowth:     cfg.Optimizer.TargetGrowth,
		InitialCapital:   cfg.Simulation.InitialCapital,
		Periods:          cfg.Simulation.Periods,
		Trials:           cfg.Simulation.Trials,
		BetFraction:      cfg.Optimizer.BetFraction,
	}
	return grid, gridCfg, sim, nil
}

func toRange(r config.RangeConfig) optimizer.Range {
	return optimizer.Range{Min: r.Min, Max: r.Max, Step: r.Step}
}

func runOnce(ctx context.Context) error {
	defer closeDB()

	grid, gridCfg, sim, err := buildGrid()
	if err != nil {
		return err
	}

	start := time.Now()
	result, err := grid.Optimize(ctx, gridCfg)
	if err != nil {
		return fmt.Errorf("grid sweep failed: %w", err)
	}

	if err := persistRun(ctx, result, gridCfg, sim.Seed(), time.Since(start)); err != nil {
		appLogger.WithError(err).Error("Failed to persist optimization run")
	}

	fmt.Print(reporting.GenerateConsoleReport(result, gridCfg.TargetGrowth))
	return nil
}

func runScheduled() error {
	defer closeDB()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	if cfg.Metrics.Enabled {
		healthServer := health.NewServer(health.Config{
			ServiceName: cfg.App.Name,
			Port:        cfg.Metrics.Port,
			MetricsPath: cfg.Metrics.Path,
			Logger:      appLogger,
			DB:          pinger(),
		})
		if err := healthServer.Start(ctx); err != nil {
			return fmt.Errorf("failed to start health server: %w", err)
		}
		healthServer.SetReady(true)
	}

	sched := scheduler.NewScheduler(appLogger)
	err := sched.ScheduleOptimization(cfg.Optimizer.Schedule, "grid-sweep", func(jobCtx context.Context) error {
		grid, gridCfg, sim, err := buildGrid()
		if err != nil {
			return err
		}
		start := time.Now()
		result, err := grid.Optimize(jobCtx, gridCfg)
		if err != nil {
			return err
		}
		if err := persistRun(jobCtx, result, gridCfg, sim.Seed(), time.Since(start)); err != nil {
			appLogger.WithError(err).Error("Failed to persist optimization run")
		}
		appLogger.Info(reporting.GenerateConsoleReport(result, gridCfg.TargetGrowth))
		return nil
	})
	if err != nil {
		return err
	}
	if err := sched.Start(); err != nil {
		return err
	}

	appLogger.WithField("schedule", cfg.Optimizer.Schedule).Info("Running on schedule, waiting for shutdown signal")
	<-sigChan
	appLogger.Info("Shutdown signal received")
	sched.Stop()
	cancel()
	return nil
}

func persistRun(ctx context.Context, result *models.OptimizationResult, gridCfg optimizer.GridConfig, seed int64, duration time.Duration) error {
	if runRepo == nil {
		return nil
	}
	run := models.NewOptimizationRun(result, gridCfg.TargetGrowth, gridCfg.SimulationConfig(), gridCfg.BetFraction, seed, duration)
	return runRepo.SaveRun(ctx, run)
}

func pinger() health.DatabasePinger {
	if db == nil {
		return nil
	}
	return db
}

func closeDB() {
	if db != nil {
		db.Close()
	}
}
