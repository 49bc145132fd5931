package models

import "fmt"

// BetParameters defines one point in the search space: a repeated binary wager
// at fixed decimal odds, a fixed win probability, and a fixed fraction of
// current capital staked each period. Immutable per evaluation.
type BetParameters struct {
	Odds           float64 `json:"odds" validate:"required,gt=1"`
	WinProbability float64 `json:"win_probability" validate:"gte=0,lte=1"`
	BetFraction    float64 `json:"bet_fraction" validate:"required,gt=0,lte=1"`
}

// Validate rejects invalid bet parameters before any simulation begins.
func (p BetParameters) Validate() error {
	if p.Odds <= 1 {
		return fmt.Errorf("%w, got %v", ErrInvalidOdds, p.Odds)
	}
	if p.WinProbability < 0 || p.WinProbability > 1 {
		return fmt.Errorf("%w, got %v", ErrInvalidProbability, p.WinProbability)
	}
	if p.BetFraction <= 0 || p.BetFraction > 1 {
		return fmt.Errorf("%w, got %v", ErrInvalidBetFraction, p.BetFraction)
	}
	return nil
}

// ExpectedValue returns the one-period expected value multiplier of the wager:
// win probability times net win payout minus loss probability.
func (p BetParameters) ExpectedValue() float64 {
	return p.WinProbability*(p.Odds-1) - (1 - p.WinProbability)
}

// ImpliedProbability returns the break-even win probability for the odds.
func (p BetParameters) ImpliedProbability() float64 {
	if p.Odds <= 0 {
		return 0
	}
	return 1.0 / p.Odds
}
