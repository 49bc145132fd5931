package optimizer

import (
	"context"
	"math"
	"testing"

	"github.com/yourusername/growth-optimizer/internal/simulation"
)

func newTestGrid(t *testing.T, seed int64) *Grid {
	t.Helper()
	sim := simulation.NewSimulator(seed, nil)
	evaluator, err := NewEvaluator(sim, nil)
	if err != nil {
		t.Fatalf("NewEvaluator failed: %v", err)
	}
	grid, err := NewGrid(evaluator, nil)
	if err != nil {
		t.Fatalf("NewGrid failed: %v", err)
	}
	return grid
}

func TestRangeValuesInclusive(t *testing.T) {
	values := Range{Min: 2.5, Max: 3.4, Step: 0.1}.Values()
	if len(values) != 10 {
		t.Fatalf("expected 10 values, got %d: %v", len(values), values)
	}
	if values[0] != 2.5 {
		t.Fatalf("first value = %v, want 2.5", values[0])
	}
	if values[9] != 3.4 {
		t.Fatalf("last value = %v, want 3.4 (upper bound must be included)", values[9])
	}
}

func TestRangeValuesDegenerate(t *testing.T) {
	values := Range{Min: 0.5, Max: 0.5, Step: 0.1}.Values()
	if len(values) != 1 || values[0] != 0.5 {
		t.Fatalf("degenerate range should yield exactly its bound, got %v", values)
	}
}

func TestRangeValuesInvalid(t *testing.T) {
	if values := (Range{Min: 1, Max: 2, Step: 0}).Values(); values != nil {
		t.Fatalf("zero step should yield no values, got %v", values)
	}
	if values := (Range{Min: 2, Max: 1, Step: 0.1}).Values(); values != nil {
		t.Fatalf("inverted range should yield no values, got %v", values)
	}
}

func TestOptimizeFindsDominantCandidate(t *testing.T) {
	grid := newTestGrid(t, 42)
	cfg := GridConfig{
		OddsRange:        Range{Min: 3.0, Max: 3.0, Step: 0.1},
		ProbabilityRange: Range{Min: 0.4, Max: 0.6, Step: 0.2},
		TargetGrowth:     0.01,
		InitialCapital:   10000,
		Periods:          10,
		Trials:           2000,
		BetFraction:      0.1,
	}

	result, err := grid.Optimize(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Optimize failed: %v", err)
	}
	if result == nil {
		t.Fatalf("expected a candidate, got nil")
	}
	// p=0.6 dominates p=0.4 at the same odds: higher edge, comparable drag.
	if result.Probability != 0.6 {
		t.Fatalf("best probability = %v, want 0.6", result.Probability)
	}
	if result.Odds != 3.0 {
		t.Fatalf("best odds = %v, want 3.0", result.Odds)
	}
}

func TestOptimizeAdjustedGrowthIdentity(t *testing.T) {
	grid := newTestGrid(t, 7)
	cfg := GridConfig{
		OddsRange:        Range{Min: 2.5, Max: 3.4, Step: 0.1},
		ProbabilityRange: Range{Min: 0.5, Max: 0.5, Step: 0.1},
		TargetGrowth:     0.01,
		InitialCapital:   10000,
		Periods:          10,
		Trials:           1000,
		BetFraction:      0.1,
	}

	result, err := grid.Optimize(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Optimize failed: %v", err)
	}
	if result == nil {
		t.Fatalf("expected a candidate, got nil")
	}
	if math.Abs(result.AdjustedGrowth-(result.AnalyticGrowth-result.VolatilityDrag)) > 1e-12 {
		t.Fatalf("adjusted growth %v != analytic %v - drag %v",
			result.AdjustedGrowth, result.AnalyticGrowth, result.VolatilityDrag)
	}
}

func TestOptimizeNoCandidateReturnsNilNil(t *testing.T) {
	grid := newTestGrid(t, 42)
	cfg := GridConfig{
		OddsRange:        Range{Min: 2.5, Max: 3.4, Step: 0.1},
		ProbabilityRange: Range{Min: 0.5, Max: 0.5, Step: 0.1},
		TargetGrowth:     100.0, // unreachable
		InitialCapital:   10000,
		Periods:          10,
		Trials:           100,
		BetFraction:      0.1,
	}

	result, err := grid.Optimize(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Optimize failed: %v", err)
	}
	if result != nil {
		t.Fatalf("unreachable target should yield nil result, got %+v", result)
	}
}

func TestOptimizeHonoursCancellation(t *testing.T) {
	grid := newTestGrid(t, 42)
	cfg := GridConfig{
		OddsRange:        Range{Min: 2.5, Max: 3.4, Step: 0.1},
		ProbabilityRange: Range{Min: 0.1, Max: 0.9, Step: 0.1},
		TargetGrowth:     0.01,
		InitialCapital:   10000,
		Periods:          10,
		Trials:           1000,
		BetFraction:      0.1,
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := grid.Optimize(ctx, cfg); err != context.Canceled {
		t.Fatalf("cancelled sweep returned %v, want context.Canceled", err)
	}
}

func TestOptimizeRejectsInvalidConfig(t *testing.T) {
	grid := newTestGrid(t, 42)
	cfg := GridConfig{
		OddsRange:        Range{Min: 2.5, Max: 3.4, Step: 0.1},
		ProbabilityRange: Range{Min: 0.5, Max: 0.5, Step: 0.1},
		InitialCapital:   10000,
		Periods:          10,
		Trials:           100,
		BetFraction:      0, // invalid
	}

	if _, err := grid.Optimize(context.Background(), cfg); err == nil {
		t.Fatalf("zero bet fraction should be rejected")
	}
}
