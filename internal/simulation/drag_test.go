package simulation

import (
	"errors"
	"math"
	"testing"

	"github.com/yourusername/growth-optimizer/internal/models"
)

func TestVolatilityDragKnownDistribution(t *testing.T) {
	// Two trials over two periods: one quarters capital, one quadruples it.
	// Implied: CAGR(10000, 21250, 2) = sqrt(2.125) - 1.
	// Geometric: mean(-0.5, 1.0) = 0.25.
	distribution := models.TerminalValueDistribution{2500, 40000}
	result, err := VolatilityDrag(distribution, 10000, 2)
	if err != nil {
		t.Fatalf("VolatilityDrag failed: %v", err)
	}

	wantImplied := math.Sqrt(2.125) - 1
	if math.Abs(result.ImpliedGrowth-wantImplied) > 1e-12 {
		t.Fatalf("implied growth = %v, want %v", result.ImpliedGrowth, wantImplied)
	}
	if math.Abs(result.GeometricGrowth-0.25) > 1e-12 {
		t.Fatalf("geometric growth = %v, want 0.25", result.GeometricGrowth)
	}
	if math.Abs(result.Drag-(wantImplied-0.25)) > 1e-12 {
		t.Fatalf("drag = %v, want %v", result.Drag, wantImplied-0.25)
	}
	if result.Drag <= 0 {
		t.Fatalf("dispersed distribution should have positive drag, got %v", result.Drag)
	}
	if result.FlooredTrials != 0 {
		t.Fatalf("no trial should be floored, got %d", result.FlooredTrials)
	}
}

func TestVolatilityDragSingleTrialIsZero(t *testing.T) {
	// One trial has no dispersion, so both growth measures coincide.
	result, err := VolatilityDrag(models.TerminalValueDistribution{14400}, 10000, 2)
	if err != nil {
		t.Fatalf("VolatilityDrag failed: %v", err)
	}
	if math.Abs(result.Drag) > 1e-12 {
		t.Fatalf("single-trial drag = %v, want 0", result.Drag)
	}
}

func TestVolatilityDragFloorsNonPositiveTerminals(t *testing.T) {
	distribution := models.TerminalValueDistribution{0, -50, 20000}
	result, err := VolatilityDrag(distribution, 10000, 4)
	if err != nil {
		t.Fatalf("VolatilityDrag failed: %v", err)
	}
	if result.FlooredTrials != 2 {
		t.Fatalf("floored trials = %d, want 2", result.FlooredTrials)
	}
	if math.IsNaN(result.ImpliedGrowth) || math.IsNaN(result.GeometricGrowth) || math.IsNaN(result.Drag) {
		t.Fatalf("floored distribution produced NaN: %+v", result)
	}
	// A floored trial reads as a near-total loss, so its growth approaches -1.
	if result.GeometricGrowth >= 0 {
		t.Fatalf("geometric growth = %v, want negative with two near-total losses", result.GeometricGrowth)
	}
}

func TestVolatilityDragRejectsInvalidInput(t *testing.T) {
	if _, err := VolatilityDrag(nil, 10000, 10); !errors.Is(err, models.ErrEmptyDistribution) {
		t.Fatalf("empty distribution: got %v, want %v", err, models.ErrEmptyDistribution)
	}
	if _, err := VolatilityDrag(models.TerminalValueDistribution{100}, 0, 10); !errors.Is(err, models.ErrInvalidCapital) {
		t.Fatalf("zero capital: got %v, want %v", err, models.ErrInvalidCapital)
	}
	if _, err := VolatilityDrag(models.TerminalValueDistribution{100}, 10000, 0); !errors.Is(err, models.ErrInvalidPeriods) {
		t.Fatalf("zero periods: got %v, want %v", err, models.ErrInvalidPeriods)
	}
}

func TestVolatilityDragOnSimulatedDistribution(t *testing.T) {
	// End to end: a volatile favourable bet should show measurable drag.
	sim := NewSimulator(42, nil)
	params := models.BetParameters{Odds: 3.0, WinProbability: 0.6, BetFraction: 0.5}
	cfg := models.SimulationConfig{InitialCapital: 10000, Periods: 20, Trials: 5000}

	distribution, err := sim.Simulate(params, cfg)
	if err != nil {
		t.Fatalf("Simulate failed: %v", err)
	}
	result, err := VolatilityDrag(distribution, cfg.InitialCapital, cfg.Periods)
	if err != nil {
		t.Fatalf("VolatilityDrag failed: %v", err)
	}
	if result.ImpliedGrowth <= result.GeometricGrowth {
		t.Fatalf("implied growth %v should exceed geometric growth %v", result.ImpliedGrowth, result.GeometricGrowth)
	}
}
