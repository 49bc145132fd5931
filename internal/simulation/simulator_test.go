package simulation

import (
	"errors"
	"math"
	"testing"

	"github.com/yourusername/growth-optimizer/internal/models"
)

func TestSimulateDistributionLength(t *testing.T) {
	sim := NewSimulator(42, nil)
	distribution, err := sim.Simulate(
		models.BetParameters{Odds: 3.0, WinProbability: 0.6, BetFraction: 0.1},
		models.SimulationConfig{InitialCapital: 10000, Periods: 10, Trials: 500},
	)
	if err != nil {
		t.Fatalf("Simulate failed: %v", err)
	}
	if len(distribution) != 500 {
		t.Fatalf("expected 500 terminal values, got %d", len(distribution))
	}
}

func TestSimulateDeterministicUnderFixedSeed(t *testing.T) {
	params := models.BetParameters{Odds: 2.5, WinProbability: 0.55, BetFraction: 0.2}
	cfg := models.SimulationConfig{InitialCapital: 10000, Periods: 20, Trials: 200}

	first, err := NewSimulator(7, nil).Simulate(params, cfg)
	if err != nil {
		t.Fatalf("first run failed: %v", err)
	}
	second, err := NewSimulator(7, nil).Simulate(params, cfg)
	if err != nil {
		t.Fatalf("second run failed: %v", err)
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("trial %d diverged under fixed seed: %v vs %v", i, first[i], second[i])
		}
	}
}

func TestSimulateSmallFractionConcentratesNearInitialCapital(t *testing.T) {
	// As the bet fraction shrinks, per-period moves vanish and every path
	// stays pinned to the initial capital, whatever the odds and probability.
	sim := NewSimulator(42, nil)
	distribution, err := sim.Simulate(
		models.BetParameters{Odds: 3.0, WinProbability: 0.4, BetFraction: 1e-6},
		models.SimulationConfig{InitialCapital: 10000, Periods: 50, Trials: 2000},
	)
	if err != nil {
		t.Fatalf("Simulate failed: %v", err)
	}
	// Each period moves capital by at most a factor of 1 +/- 2e-6, so after
	// 50 periods every terminal sits well within 0.1% of the start.
	for i, value := range distribution {
		if math.Abs(value-10000) > 10000*0.001 {
			t.Fatalf("trial %d terminal value %v strayed from initial capital at tiny fraction", i, value)
		}
	}
}

func TestSimulateCapitalStaysPositiveForPartialFraction(t *testing.T) {
	// With a bet fraction below 1 a loss shrinks capital but never zeroes it.
	sim := NewSimulator(99, nil)
	distribution, err := sim.Simulate(
		models.BetParameters{Odds: 2.0, WinProbability: 0.1, BetFraction: 0.5},
		models.SimulationConfig{InitialCapital: 1000, Periods: 50, Trials: 200},
	)
	if err != nil {
		t.Fatalf("Simulate failed: %v", err)
	}
	for i, value := range distribution {
		if value <= 0 {
			t.Fatalf("trial %d terminal value %v, want > 0", i, value)
		}
	}
}

func TestSimulateFullFractionSingleLossZeroesCapital(t *testing.T) {
	// Betting everything each period, any loss ends the path at zero.
	sim := NewSimulator(3, nil)
	distribution, err := sim.Simulate(
		models.BetParameters{Odds: 2.0, WinProbability: 0.5, BetFraction: 1.0},
		models.SimulationConfig{InitialCapital: 1000, Periods: 5, Trials: 500},
	)
	if err != nil {
		t.Fatalf("Simulate failed: %v", err)
	}
	zeroed := 0
	for _, value := range distribution {
		if value == 0 {
			zeroed++
		}
	}
	// P(surviving 5 rounds) = 0.5^5, so nearly every trial should be zeroed.
	if zeroed < 400 {
		t.Fatalf("expected most trials zeroed at full fraction, got %d of 500", zeroed)
	}
}

func TestSimulateMeanMatchesAnalyticExpectation(t *testing.T) {
	// One period at odds 3, p=0.6, f=0.1: E[terminal] = 10000 * (1 + 0.1*0.8) = 10800.
	sim := NewSimulator(12345, nil)
	distribution, err := sim.Simulate(
		models.BetParameters{Odds: 3.0, WinProbability: 0.6, BetFraction: 0.1},
		models.SimulationConfig{InitialCapital: 10000, Periods: 1, Trials: 100000},
	)
	if err != nil {
		t.Fatalf("Simulate failed: %v", err)
	}
	sum := 0.0
	for _, value := range distribution {
		sum += value
	}
	mean := sum / float64(len(distribution))
	if math.Abs(mean-10800) > 10800*0.02 {
		t.Fatalf("sample mean %v outside 2%% of analytic expectation 10800", mean)
	}
}

func TestSimulateRejectsInvalidInput(t *testing.T) {
	sim := NewSimulator(1, nil)
	cfg := models.SimulationConfig{InitialCapital: 1000, Periods: 10, Trials: 10}

	if _, err := sim.Simulate(models.BetParameters{Odds: 1.0, WinProbability: 0.5, BetFraction: 0.1}, cfg); !errors.Is(err, models.ErrInvalidOdds) {
		t.Fatalf("invalid odds: got %v, want %v", err, models.ErrInvalidOdds)
	}
	if _, err := sim.Simulate(
		models.BetParameters{Odds: 2.0, WinProbability: 0.5, BetFraction: 0.1},
		models.SimulationConfig{InitialCapital: 1000, Periods: 10, Trials: 0},
	); !errors.Is(err, models.ErrInvalidTrials) {
		t.Fatalf("invalid trials: got %v, want %v", err, models.ErrInvalidTrials)
	}
}

func TestNewSimulatorZeroSeedPicksOne(t *testing.T) {
	sim := NewSimulator(0, nil)
	if sim.Seed() == 0 {
		t.Fatalf("zero seed should be replaced by a clock-derived seed")
	}
}
