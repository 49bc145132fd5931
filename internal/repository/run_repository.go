package repository

import (
	"context"
	"fmt"

	"github.com/yourusername/growth-optimizer/internal/database"
	"github.com/yourusername/growth-optimizer/internal/models"
)

const errScanRun = "failed to scan optimization run: %w"

const createRunsTable = `
	CREATE TABLE IF NOT EXISTS optimization_runs (
		id UUID PRIMARY KEY,
		run_at TIMESTAMPTZ NOT NULL,
		target_growth DOUBLE PRECISION NOT NULL,
		initial_capital DOUBLE PRECISION NOT NULL,
		periods INTEGER NOT NULL,
		trials INTEGER NOT NULL,
		bet_fraction DOUBLE PRECISION NOT NULL,
		seed BIGINT NOT NULL,
		candidate_found BOOLEAN NOT NULL,
		odds DOUBLE PRECISION,
		probability DOUBLE PRECISION,
		analytic_growth DOUBLE PRECISION,
		volatility_drag DOUBLE PRECISION,
		adjusted_growth DOUBLE PRECISION,
		duration_millis BIGINT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL
	)
`

// PostgresRunRepository implements RunRepository for PostgreSQL
type PostgresRunRepository struct {
	db *database.DB
}

// NewPostgresRunRepository creates a new run repository
func NewPostgresRunRepository(db *database.DB) RunRepository {
	return &PostgresRunRepository{db: db}
}

// EnsureSchema creates the optimization_runs table if it does not exist
func EnsureSchema(ctx context.Context, db *database.DB) error {
	if _, err := db.GetPool().Exec(ctx, createRunsTable); err != nil {
		return fmt.Errorf("failed to ensure optimization_runs schema: %w", err)
	}
	return nil
}

// SaveRun inserts an optimization run record
func (r *PostgresRunRepository) SaveRun(ctx context.Context, run *models.OptimizationRun) error {
	query := `
		INSERT INTO optimization_runs (
			id, run_at, target_growth, initial_capital, periods, trials,
			bet_fraction, seed, candidate_found, odds, probability,
			analytic_growth, volatility_drag, adjusted_growth, duration_millis, created_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16)
	`

	_, err := r.db.GetPool().Exec(ctx, query,
		run.ID, run.RunAt, run.TargetGrowth, run.InitialCapital, run.Periods, run.Trials,
		run.BetFraction, run.Seed, run.CandidateFound, run.Odds, run.Probability,
		run.AnalyticGrowth, run.VolatilityDrag, run.AdjustedGrowth, run.DurationMillis, run.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save optimization run: %w", err)
	}
	return nil
}

// GetLatest retrieves the most recent optimization runs
func (r *PostgresRunRepository) GetLatest(ctx context.Context, limit int) ([]*models.OptimizationRun, error) {
	query := `
		SELECT id, run_at, target_growth, initial_capital, periods, trials,
			bet_fraction, seed, candidate_found, odds, probability,
			analytic_growth, volatility_drag, adjusted_growth, duration_millis, created_at
		FROM optimization_runs ORDER BY run_at DESC LIMIT $1
	`
	rows, err := r.db.GetPool().Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query latest optimization runs: %w", err)
	}
	defer rows.Close()

	var runs []*models.OptimizationRun
	for rows.Next() {
		run := &models.OptimizationRun{}
		if err := rows.Scan(
			&run.ID, &run.RunAt, &run.TargetGrowth, &run.InitialCapital, &run.Periods, &run.Trials,
			&run.BetFraction, &run.Seed, &run.CandidateFound, &run.Odds, &run.Probability,
			&run.AnalyticGrowth, &run.VolatilityDrag, &run.AdjustedGrowth, &run.DurationMillis, &run.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf(errScanRun, err)
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}
