// Package optimizer implements the grid search over (odds, probability)
// pairs and the probability locator variant built on top of the simulator.
package optimizer

import (
	"fmt"

	"github.com/yourusername/growth-optimizer/internal/metrics"
	"github.com/yourusername/growth-optimizer/internal/models"
	"github.com/yourusername/growth-optimizer/internal/simulation"
)

// Evaluation bundles the measures computed for one candidate parameter pair.
type Evaluation struct {
	AnalyticGrowth float64               `json:"analytic_growth"`
	Drag           simulation.DragResult `json:"drag"`
	AdjustedGrowth float64               `json:"adjusted_growth"`
}

// Evaluator runs the expensive simulate-and-measure step for one candidate,
// consulting the optional evaluation cache first. Each evaluation owns its
// own distribution; only the extracted scalars outlive it.
type Evaluator struct {
	sim   *simulation.Simulator
	cache *EvaluationCache
}

// NewEvaluator creates an evaluator. The cache may be nil.
func NewEvaluator(sim *simulation.Simulator, evalCache *EvaluationCache) (*Evaluator, error) {
	if sim == nil {
		return nil, fmt.Errorf("simulator is required")
	}
	return &Evaluator{sim: sim, cache: evalCache}, nil
}

// Evaluate computes analytic growth, volatility drag and risk-adjusted growth
// for one candidate.
func (e *Evaluator) Evaluate(params models.BetParameters, cfg models.SimulationConfig) (Evaluation, error) {
	if e.cache != nil {
		if eval, found := e.cache.Get(params, cfg, e.sim.Seed()); found {
			return eval, nil
		}
	}

	analytic, err := simulation.ExpectedGrowth(params, cfg.InitialCapital, cfg.Periods)
	if err != nil {
		return Evaluation{}, err
	}
	distribution, err := e.sim.Simulate(params, cfg)
	if err != nil {
		return Evaluation{}, err
	}
	drag, err := simulation.VolatilityDrag(distribution, cfg.InitialCapital, cfg.Periods)
	if err != nil {
		return Evaluation{}, err
	}
	metrics.UpdateFlooredTrials(drag.FlooredTrials)

	eval := Evaluation{
		AnalyticGrowth: analytic,
		Drag:           drag,
		AdjustedGrowth: analytic - drag.Drag,
	}
	if e.cache != nil {
		e.cache.Set(params, cfg, e.sim.Seed(), eval)
	}
	return eval, nil
}
