package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"catalogbuilder/internal/model"
)

// Execer is the part of *pgxpool.Pool the run history needs.
type Execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// RunRepository records one row per successful build in catalog_runs.
type RunRepository struct {
	DB Execer
}

func (r *RunRepository) Save(ctx context.Context, runID uuid.UUID, s model.RunSummary) error {
	_, err := r.DB.Exec(ctx, `
		INSERT INTO catalog_runs
		(id, finished_at, total_products, available_products, new_products, restocked_products)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, runID, s.Timestamp, s.TotalProducts, s.AvailableProducts, s.NewProducts, s.RestockedProducts)
	return err
}
