// Package repository provides persistence for optimizer runs.
package repository

import (
	"context"

	"github.com/yourusername/growth-optimizer/internal/models"
)

// RunRepository persists optimizer run records
type RunRepository interface {
	SaveRun(ctx context.Context, run *models.OptimizationRun) error
	GetLatest(ctx context.Context, limit int) ([]*models.OptimizationRun, error)
}
