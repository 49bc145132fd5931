package optimizer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/growth-optimizer/internal/models"
	"github.com/yourusername/growth-optimizer/internal/simulation"
)

func TestEvaluationCacheRoundtrip(t *testing.T) {
	evalCache := NewEvaluationCache(time.Minute)
	params := models.BetParameters{Odds: 3.0, WinProbability: 0.6, BetFraction: 0.1}
	cfg := models.SimulationConfig{InitialCapital: 10000, Periods: 10, Trials: 100}

	_, found := evalCache.Get(params, cfg, 42)
	assert.False(t, found)

	stored := Evaluation{AnalyticGrowth: 0.8, AdjustedGrowth: 0.75}
	evalCache.Set(params, cfg, 42, stored)

	got, found := evalCache.Get(params, cfg, 42)
	require.True(t, found)
	assert.Equal(t, stored, got)
}

func TestEvaluationCacheKeyDiscriminates(t *testing.T) {
	evalCache := NewEvaluationCache(time.Minute)
	params := models.BetParameters{Odds: 3.0, WinProbability: 0.6, BetFraction: 0.1}
	cfg := models.SimulationConfig{InitialCapital: 10000, Periods: 10, Trials: 100}

	evalCache.Set(params, cfg, 42, Evaluation{AnalyticGrowth: 0.8})

	// Different seed must miss.
	_, found := evalCache.Get(params, cfg, 43)
	assert.False(t, found)

	// Different probability must miss.
	other := params
	other.WinProbability = 0.5
	_, found = evalCache.Get(other, cfg, 42)
	assert.False(t, found)
}

func TestEvaluationCacheStats(t *testing.T) {
	evalCache := NewEvaluationCache(time.Minute)
	params := models.BetParameters{Odds: 2.0, WinProbability: 0.5, BetFraction: 0.1}
	cfg := models.SimulationConfig{InitialCapital: 1000, Periods: 5, Trials: 10}

	evalCache.Get(params, cfg, 1)
	evalCache.Set(params, cfg, 1, Evaluation{})
	evalCache.Get(params, cfg, 1)

	hits, misses := evalCache.Stats()
	assert.Equal(t, uint64(1), hits)
	assert.Equal(t, uint64(1), misses)

	evalCache.Clear()
	hits, misses = evalCache.Stats()
	assert.Zero(t, hits)
	assert.Zero(t, misses)
	_, found := evalCache.Get(params, cfg, 1)
	assert.False(t, found)
}

func TestEvaluatorUsesCache(t *testing.T) {
	sim := simulation.NewSimulator(42, nil)
	evalCache := NewEvaluationCache(time.Minute)
	evaluator, err := NewEvaluator(sim, evalCache)
	require.NoError(t, err)

	params := models.BetParameters{Odds: 3.0, WinProbability: 0.6, BetFraction: 0.1}
	cfg := models.SimulationConfig{InitialCapital: 10000, Periods: 10, Trials: 500}

	first, err := evaluator.Evaluate(params, cfg)
	require.NoError(t, err)

	// Second evaluation must come from the cache, bit-identical, even though
	// the simulator's random stream has advanced.
	second, err := evaluator.Evaluate(params, cfg)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	hits, _ := evalCache.Stats()
	assert.Equal(t, uint64(1), hits)
}

func TestNewEvaluatorRequiresSimulator(t *testing.T) {
	_, err := NewEvaluator(nil, nil)
	assert.Error(t, err)
}
