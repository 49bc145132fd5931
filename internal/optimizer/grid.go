package optimizer

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/yourusername/growth-optimizer/internal/metrics"
	"github.com/yourusername/growth-optimizer/internal/models"
	"github.com/yourusername/growth-optimizer/internal/simulation"
)

// Range is a discretized inclusive parameter range.
type Range struct {
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
	Step float64 `json:"step"`
}

// Values enumerates the range inclusively of both bounds using exact decimal
// stepping, so boundary values are never lost to float accumulation drift.
// An invalid range (non-positive step, max below min) yields no values.
func (r Range) Values() []float64 {
	if r.Step <= 0 || r.Max < r.Min {
		return nil
	}
	step := decimal.NewFromFloat(r.Step)
	max := decimal.NewFromFloat(r.Max)
	var values []float64
	for v := decimal.NewFromFloat(r.Min); v.LessThanOrEqual(max); v = v.Add(step) {
		f, _ := v.Float64()
		values = append(values, f)
	}
	return values
}

// GridConfig configures one optimizer invocation.
type GridConfig struct {
	OddsRange        Range
	ProbabilityRange Range
	TargetGrowth     float64
	InitialCapital   float64
	Periods          int
	Trials           int
	BetFraction      float64
}

// SimulationConfig returns the per-candidate simulation settings.
func (c GridConfig) SimulationConfig() models.SimulationConfig {
	return models.SimulationConfig{
		InitialCapital: c.InitialCapital,
		Periods:        c.Periods,
		Trials:         c.Trials,
	}
}

func (c GridConfig) validate() error {
	if err := c.SimulationConfig().Validate(); err != nil {
		return err
	}
	if c.BetFraction <= 0 || c.BetFraction > 1 {
		return fmt.Errorf("%w, got %v", models.ErrInvalidBetFraction, c.BetFraction)
	}
	return nil
}

// Grid sweeps the Cartesian product of the odds and probability ranges and
// keeps the candidate with the greatest risk-adjusted growth.
type Grid struct {
	evaluator *Evaluator
	logger    *logrus.Logger
}

// NewGrid creates a grid optimizer.
func NewGrid(evaluator *Evaluator, logger *logrus.Logger) (*Grid, error) {
	if evaluator == nil {
		return nil, fmt.Errorf("evaluator is required")
	}
	if logger == nil {
		logger = logrus.New()
	}
	return &Grid{evaluator: evaluator, logger: logger}, nil
}

// Optimize enumerates candidates in fixed order (odds outer, probability
// inner), filters cheaply on analytic growth, and fully evaluates survivors.
// The strictly-greater comparison makes the first-seen candidate win ties, so
// repeated runs under a fixed seed are deterministic. Returns nil, nil when
// no candidate meets the target growth.
func (g *Grid) Optimize(ctx context.Context, cfg GridConfig) (*models.OptimizationResult, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	simCfg := cfg.SimulationConfig()
	start := time.Now()
	evaluated := 0
	filtered := 0
	var best *models.OptimizationResult

	for _, odds := range cfg.OddsRange.Values() {
		for _, probability := range cfg.ProbabilityRange.Values() {
			if err := ctx.Err(); err != nil {
				return nil, err
			}

			params := models.BetParameters{
				Odds:           odds,
				WinProbability: probability,
				BetFraction:    cfg.BetFraction,
			}
			analytic, err := simulation.ExpectedGrowth(params, cfg.InitialCapital, cfg.Periods)
			if err != nil {
				return nil, err
			}
			if analytic < cfg.TargetGrowth {
				filtered++
				continue
			}

			eval, err := g.evaluator.Evaluate(params, simCfg)
			if err != nil {
				return nil, err
			}
			evaluated++

			if best == nil || eval.AdjustedGrowth > best.AdjustedGrowth {
				best = &models.OptimizationResult{
					Odds:           odds,
					Probability:    probability,
					AnalyticGrowth: eval.AnalyticGrowth,
					VolatilityDrag: eval.Drag.Drag,
					AdjustedGrowth: eval.AdjustedGrowth,
				}
			}
		}
	}

	metrics.RecordOptimization(time.Since(start).Seconds(), evaluated, filtered)
	fields := logrus.Fields{
		"evaluated": evaluated,
		"filtered":  filtered,
		"duration":  time.Since(start),
	}
	if best == nil {
		g.logger.WithFields(fields).Info("Grid sweep found no candidate meeting target growth")
		return nil, nil
	}

	metrics.UpdateBestAdjustedGrowth(best.AdjustedGrowth)
	fields["odds"] = best.Odds
	fields["probability"] = best.Probability
	fields["adjusted_growth"] = best.AdjustedGrowth
	g.logger.WithFields(fields).Info("Grid sweep completed")
	return best, nil
}
