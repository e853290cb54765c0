package repository

import (
	"context"
	"database/sql"
	"fmt"

	"catalogbuilder/internal/model"
)

// CatalogRepository keeps a snapshot of the latest catalog in catalog_items.
type CatalogRepository struct {
	DB *sql.DB
}

// Save writes the whole catalog in one transaction. Rows that are no longer
// in the price list are removed so the table mirrors the JSON file.
func (r *CatalogRepository) Save(ctx context.Context, items []model.CatalogItem) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM catalog_items`); err != nil {
		return fmt.Errorf("clear catalog_items: %w", err)
	}
	for _, it := range items {
		if err := saveItem(ctx, tx, it); err != nil {
			return fmt.Errorf("save %s: %w", it.Code, err)
		}
	}
	return tx.Commit()
}

// saveItem updates the row for the code or inserts it. Duplicate codes in the
// price list collapse onto the last row.
func saveItem(ctx context.Context, tx *sql.Tx, it model.CatalogItem) error {
	var exists bool
	err := tx.QueryRowContext(ctx, "SELECT EXISTS(SELECT 1 FROM catalog_items WHERE code = $1)", it.Code).Scan(&exists)
	if err != nil {
		return err
	}

	if exists {
		_, err = tx.ExecContext(ctx, `
			UPDATE catalog_items
			SET model = $1, price = $2, quantity = $3, power = $4, circuits = $5, wifi = $6,
			    image_path = $7, status = $8, category = $9, power_tier = $10, updated_at = now()
			WHERE code = $11
		`, it.Model, it.Price, it.Quantity, it.Power, string(it.Circuits), it.WiFi,
			it.ImagePath, string(it.Status), string(it.Category), string(it.PowerTier), it.Code)
	} else {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO catalog_items
			(code, model, price, quantity, power, circuits, wifi, image_path, status, category, power_tier)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		`, it.Code, it.Model, it.Price, it.Quantity, it.Power, string(it.Circuits), it.WiFi,
			it.ImagePath, string(it.Status), string(it.Category), string(it.PowerTier))
	}
	return err
}
