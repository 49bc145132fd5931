package simulation

import (
	"fmt"
	"math"

	"github.com/yourusername/growth-optimizer/internal/models"
)

// ExpectedGrowth returns the analytic per-period compounded growth rate
// implied by the arithmetic expectation of the wager. This is not the
// long-run geometric rate the strategy actually achieves; the gap between the
// two is the volatility drag computed by VolatilityDrag.
func ExpectedGrowth(params models.BetParameters, initialCapital float64, periods int) (float64, error) {
	if err := params.Validate(); err != nil {
		return 0, err
	}
	if initialCapital <= 0 {
		return 0, fmt.Errorf("%w, got %v", models.ErrInvalidCapital, initialCapital)
	}
	if periods < 1 {
		return 0, fmt.Errorf("%w, got %d", models.ErrInvalidPeriods, periods)
	}

	ev := params.ExpectedValue()
	finalValue := initialCapital * math.Pow(1+ev, float64(periods))
	return CAGR(initialCapital, finalValue, periods), nil
}

// CAGR converts a total return over a number of periods into the constant
// per-period compounded rate that reproduces it. Callers must ensure the
// final value is positive; non-positive terminal values are clamped by the
// drag estimator before reaching this function.
func CAGR(initial, final float64, periods int) float64 {
	if initial <= 0 || periods <= 0 {
		return 0
	}
	return math.Pow(final/initial, 1.0/float64(periods)) - 1.0
}
