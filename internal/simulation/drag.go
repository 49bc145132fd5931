package simulation

import (
	"fmt"

	"gonum.org/v1/gonum/stat"

	"github.com/yourusername/growth-optimizer/internal/models"
)

// terminalFloorFraction is the fraction of initial capital that non-positive
// terminal values are clamped to before the fractional-power growth
// conversion. A clamped trial reads as a near-total loss instead of an
// undefined growth rate, and the distribution keeps exactly one entry per
// trial. Clamped trials are counted in DragResult.FlooredTrials.
const terminalFloorFraction = 1e-9

// DragResult carries both growth measures derived from a terminal-value
// distribution and the gap between them.
type DragResult struct {
	// ImpliedGrowth is the CAGR of the arithmetic-mean terminal value,
	// treating the mean as if it were a single deterministic outcome.
	ImpliedGrowth float64 `json:"implied_growth"`
	// GeometricGrowth is the arithmetic mean of per-trial CAGRs, the
	// empirical geometric-mean growth rate.
	GeometricGrowth float64 `json:"geometric_growth"`
	// Drag is ImpliedGrowth minus GeometricGrowth. Non-negative in
	// expectation, but may be noisy or negative for small trial counts.
	Drag float64 `json:"drag"`
	// FlooredTrials counts terminal values clamped by the non-positive
	// capital policy.
	FlooredTrials int `json:"floored_trials"`
}

// VolatilityDrag converts a terminal-value distribution into its implied and
// empirical growth rates and their gap.
func VolatilityDrag(distribution models.TerminalValueDistribution, initialCapital float64, periods int) (DragResult, error) {
	if len(distribution) == 0 {
		return DragResult{}, models.ErrEmptyDistribution
	}
	if initialCapital <= 0 {
		return DragResult{}, fmt.Errorf("%w, got %v", models.ErrInvalidCapital, initialCapital)
	}
	if periods < 1 {
		return DragResult{}, fmt.Errorf("%w, got %d", models.ErrInvalidPeriods, periods)
	}

	floor := initialCapital * terminalFloorFraction
	floored := 0
	terminals := make([]float64, len(distribution))
	growths := make([]float64, len(distribution))
	for i, value := range distribution {
		if value <= 0 {
			value = floor
			floored++
		}
		terminals[i] = value
		growths[i] = CAGR(initialCapital, value, periods)
	}

	implied := CAGR(initialCapital, stat.Mean(terminals, nil), periods)
	geometric := stat.Mean(growths, nil)

	return DragResult{
		ImpliedGrowth:   implied,
		GeometricGrowth: geometric,
		Drag:            implied - geometric,
		FlooredTrials:   floored,
	}, nil
}
