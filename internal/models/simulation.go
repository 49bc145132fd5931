package models

import "fmt"

// SimulationConfig controls sampling resolution and trial count for a Monte
// Carlo run. Not mutated during a run.
type SimulationConfig struct {
	InitialCapital float64 `json:"initial_capital" validate:"required,gt=0"`
	Periods        int     `json:"periods" validate:"required,gte=1"`
	Trials         int     `json:"trials" validate:"required,gte=1"`
}

// Validate rejects invalid simulation settings before any randomness is consumed.
func (c SimulationConfig) Validate() error {
	if c.InitialCapital <= 0 {
		return fmt.Errorf("%w, got %v", ErrInvalidCapital, c.InitialCapital)
	}
	if c.Periods < 1 {
		return fmt.Errorf("%w, got %d", ErrInvalidPeriods, c.Periods)
	}
	if c.Trials < 1 {
		return fmt.Errorf("%w, got %d", ErrInvalidTrials, c.Trials)
	}
	return nil
}

// TerminalValueDistribution holds one terminal capital value per simulated
// path, in trial order. Length always equals SimulationConfig.Trials.
type TerminalValueDistribution []float64
