package optimizer

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/yourusername/growth-optimizer/internal/models"
	"github.com/yourusername/growth-optimizer/internal/simulation"
)

// LocatorConfig configures one probability locator invocation.
type LocatorConfig struct {
	OddsRange        Range
	ProbabilityRange Range
	TargetGrowth     float64
	InitialCapital   float64
	Periods          int
	Trials           int
	BetFraction      float64
}

// SimulationConfig returns the per-candidate simulation settings.
func (c LocatorConfig) SimulationConfig() models.SimulationConfig {
	return models.SimulationConfig{
		InitialCapital: c.InitialCapital,
		Periods:        c.Periods,
		Trials:         c.Trials,
	}
}

func (c LocatorConfig) validate() error {
	if err := c.SimulationConfig().Validate(); err != nil {
		return err
	}
	if c.BetFraction <= 0 || c.BetFraction > 1 {
		return fmt.Errorf("%w, got %v", models.ErrInvalidBetFraction, c.BetFraction)
	}
	return nil
}

// Locator fixes odds and scans probability to find, for each odds value, the
// probability whose risk-adjusted growth matches a target. The result is a
// curve of (odds, matching probability) points.
type Locator struct {
	evaluator *Evaluator
	logger    *logrus.Logger
}

// NewLocator creates a probability locator.
func NewLocator(evaluator *Evaluator, logger *logrus.Logger) (*Locator, error) {
	if evaluator == nil {
		return nil, fmt.Errorf("evaluator is required")
	}
	if logger == nil {
		logger = logrus.New()
	}
	return &Locator{evaluator: evaluator, logger: logger}, nil
}

// Locate scans probability ascending for each odds value and keeps the first
// probability whose adjusted growth reaches the target. Growth is monotone in
// probability, so the first crossing is the matching probability. Odds values
// with no crossing on the scan grid are omitted from the curve.
func (l *Locator) Locate(ctx context.Context, cfg LocatorConfig) ([]models.CurvePoint, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	simCfg := cfg.SimulationConfig()
	start := time.Now()
	oddsValues := cfg.OddsRange.Values()
	points := make([]models.CurvePoint, 0, len(oddsValues))

	for _, odds := range oddsValues {
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
				continue
			}

			eval, err := l.evaluator.Evaluate(params, simCfg)
			if err != nil {
				return nil, err
			}
			if eval.AdjustedGrowth >= cfg.TargetGrowth {
				points = append(points, models.CurvePoint{
					Odds:           odds,
					Probability:    probability,
					AnalyticGrowth: eval.AnalyticGrowth,
					AdjustedGrowth: eval.AdjustedGrowth,
				})
				break
			}
		}
	}

	l.logger.WithFields(logrus.Fields{
		"odds_values": len(oddsValues),
		"points":      len(points),
		"duration":    time.Since(start),
	}).Info("Probability locator completed")
	return points, nil
}
