package models

import "errors"

// Custom errors
var (
	ErrInvalidOdds        = errors.New("odds must be greater than 1")
	ErrInvalidProbability = errors.New("win probability must be between 0 and 1")
	ErrInvalidBetFraction = errors.New("bet fraction must be in (0, 1]")
	ErrInvalidCapital     = errors.New("initial capital must be positive")
	ErrInvalidPeriods     = errors.New("periods must be at least 1")
	ErrInvalidTrials      = errors.New("trials must be at least 1")
	ErrEmptyDistribution  = errors.New("terminal value distribution is empty")
)
