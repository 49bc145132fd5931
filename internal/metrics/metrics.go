// Package metrics provides the centralized Prometheus metrics registry for
// the growth optimizer.
package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Global registry instance
var (
	registry *prometheus.Registry
	once     sync.Once
)

// Counter metrics
var (
	SimulationsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "growth_optimizer",
		Name:      "simulations_total",
		Help:      "Total number of Monte Carlo simulations run",
	})
	TrialsSimulatedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "growth_optimizer",
		Name:      "trials_simulated_total",
		Help:      "Total number of simulated trials across all runs",
	})
	CandidatesEvaluatedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "growth_optimizer",
		Name:      "candidates_evaluated_total",
		Help:      "Total number of grid candidates fully evaluated",
	})
	CandidatesFilteredTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "growth_optimizer",
		Name:      "candidates_filtered_total",
		Help:      "Total number of grid candidates rejected by the analytic filter",
	})
	CacheHitsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "growth_optimizer",
		Name:      "evaluation_cache_hits_total",
		Help:      "Total number of evaluation cache hits",
	})
	CacheMissesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "growth_optimizer",
		Name:      "evaluation_cache_misses_total",
		Help:      "Total number of evaluation cache misses",
	})
	OptimizationRunsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "growth_optimizer",
		Name:      "optimization_runs_total",
		Help:      "Total number of optimizer invocations",
	})
)

// Gauge metrics
var (
	BestAdjustedGrowth = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "growth_optimizer",
		Name:      "best_adjusted_growth",
		Help:      "Risk-adjusted growth of the best candidate in the last run",
	})
	FlooredTrialsLastEvaluation = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "growth_optimizer",
		Name:      "floored_trials_last_evaluation",
		Help:      "Non-positive terminal values clamped in the last evaluated candidate",
	})
)

// Histogram metrics
var (
	SimulationDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "growth_optimizer",
		Name:      "simulation_duration_seconds",
		Help:      "Duration of single Monte Carlo simulations in seconds",
		Buckets:   prometheus.DefBuckets,
	})
	OptimizationDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "growth_optimizer",
		Name:      "optimization_duration_seconds",
		Help:      "Duration of full grid sweeps in seconds",
		Buckets:   []float64{0.1, 0.5, 1, 5, 10, 30, 60, 300, 600},
	})
)

// InitRegistry initializes the global Prometheus registry.
func InitRegistry() *prometheus.Registry {
	once.Do(func() {
		registry = prometheus.NewRegistry()

		registry.MustRegister(SimulationsTotal)
		registry.MustRegister(TrialsSimulatedTotal)
		registry.MustRegister(CandidatesEvaluatedTotal)
		registry.MustRegister(CandidatesFilteredTotal)
		registry.MustRegister(CacheHitsTotal)
		registry.MustRegister(CacheMissesTotal)
		registry.MustRegister(OptimizationRunsTotal)

		registry.MustRegister(BestAdjustedGrowth)
		registry.MustRegister(FlooredTrialsLastEvaluation)

		registry.MustRegister(SimulationDuration)
		registry.MustRegister(OptimizationDuration)
	})
	return registry
}

// GetRegistry returns the global Prometheus registry.
func GetRegistry() *prometheus.Registry {
	if registry == nil {
		return InitRegistry()
	}
	return registry
}

// Handler returns the Prometheus HTTP handler.
func Handler() http.Handler {
	return promhttp.HandlerFor(GetRegistry(), promhttp.HandlerOpts{})
}

// RecordSimulation records one completed simulation.
func RecordSimulation(trials int, durationSeconds float64) {
	SimulationsTotal.Inc()
	TrialsSimulatedTotal.Add(float64(trials))
	SimulationDuration.Observe(durationSeconds)
}

// RecordOptimization records one completed grid sweep.
func RecordOptimization(durationSeconds float64, evaluated, filtered int) {
	OptimizationRunsTotal.Inc()
	OptimizationDuration.Observe(durationSeconds)
	CandidatesEvaluatedTotal.Add(float64(evaluated))
	CandidatesFilteredTotal.Add(float64(filtered))
}

// UpdateBestAdjustedGrowth updates the best adjusted growth gauge.
func UpdateBestAdjustedGrowth(value float64) {
	BestAdjustedGrowth.Set(value)
}

// UpdateFlooredTrials records the clamp count of the most recent evaluation.
func UpdateFlooredTrials(count int) {
	FlooredTrialsLastEvaluation.Set(float64(count))
}

// RecordCacheHit records an evaluation cache hit.
func RecordCacheHit() {
	CacheHitsTotal.Inc()
}

// RecordCacheMiss records an evaluation cache miss.
func RecordCacheMiss() {
	CacheMissesTotal.Inc()
}
