package models

import (
	"time"

	"github.com/google/uuid"
)

// OptimizationResult is the best candidate found by a grid sweep. A nil
// *OptimizationResult with a nil error means no candidate met the target
// growth threshold; it is never conflated with a computed-but-zero result.
type OptimizationResult struct {
	Odds           float64 `json:"odds"`
	Probability    float64 `json:"probability"`
	AnalyticGrowth float64 `json:"analytic_growth"`
	VolatilityDrag float64 `json:"volatility_drag"`
	AdjustedGrowth float64 `json:"adjusted_growth"`
}

// CurvePoint is one sample of the probability locator curve: for a given odds
// value, the lowest probability on the scan grid whose risk-adjusted growth
// reached the target.
type CurvePoint struct {
	Odds           float64 `json:"odds"`
	Probability    float64 `json:"probability"`
	AnalyticGrowth float64 `json:"analytic_growth"`
	AdjustedGrowth float64 `json:"adjusted_growth"`
}

// OptimizationRun is the persisted record of one optimizer invocation.
type OptimizationRun struct {
	ID             uuid.UUID  `db:"id" json:"id"`
	RunAt          time.Time  `db:"run_at" json:"run_at"`
	TargetGrowth   float64    `db:"target_growth" json:"target_growth"`
	InitialCapital float64    `db:"initial_capital" json:"initial_capital"`
	Periods        int        `db:"periods" json:"periods"`
	Trials         int        `db:"trials" json:"trials"`
	BetFraction    float64    `db:"bet_fraction" json:"bet_fraction"`
	Seed           int64      `db:"seed" json:"seed"`
	CandidateFound bool       `db:"candidate_found" json:"candidate_found"`
	Odds           *float64   `db:"odds" json:"odds"`
	Probability    *float64   `db:"probability" json:"probability"`
	AnalyticGrowth *float64   `db:"analytic_growth" json:"analytic_growth"`
	VolatilityDrag *float64   `db:"volatility_drag" json:"volatility_drag"`
	AdjustedGrowth *float64   `db:"adjusted_growth" json:"adjusted_growth"`
	DurationMillis int64      `db:"duration_millis" json:"duration_millis"`
	CreatedAt      time.Time  `db:"created_at" json:"created_at"`
}

// NewOptimizationRun builds a run record from an optimizer outcome. A nil
// result is recorded as a run with CandidateFound=false and nil metric columns.
func NewOptimizationRun(result *OptimizationResult, targetGrowth float64, cfg SimulationConfig, betFraction float64, seed int64, duration time.Duration) *OptimizationRun {
	now := time.Now().UTC()
	run := &OptimizationRun{
		ID:             uuid.New(),
		RunAt:          now,
		TargetGrowth:   targetGrowth,
		InitialCapital: cfg.InitialCapital,
		Periods:        cfg.Periods,
		Trials:         cfg.Trials,
		BetFraction:    betFraction,
		Seed:           seed,
		DurationMillis: duration.Milliseconds(),
		CreatedAt:      now,
	}
	if result != nil {
		run.CandidateFound = true
		run.Odds = &result.Odds
		run.Probability = &result.Probability
		run.AnalyticGrowth = &result.AnalyticGrowth
		run.VolatilityDrag = &result.VolatilityDrag
		run.AdjustedGrowth = &result.AdjustedGrowth
	}
	return run
}
