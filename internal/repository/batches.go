package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/djajbladi/poultry-backend/internal/domain"
)

func (r *Repos) BatchNumberExists(ctx context.Context, batchNumber string) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists,
		`SELECT EXISTS (SELECT 1 FROM batches WHERE batch_number = $1)`, batchNumber)
	return exists, err
}

func (r *Repos) InsertBatch(ctx context.Context, b *domain.Batch) error {
	return r.db.QueryRowxContext(ctx, `
		INSERT INTO batches (batch_number, chicken_count, arrival_date, strain,
			purchase_price, building_id, status, notes, created_by_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at`,
		b.BatchNumber, b.ChickenCount, b.ArrivalDate, b.Strain,
		b.PurchasePrice, b.BuildingID, b.Status, b.Notes, b.CreatedByID,
	).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
}

// GetBatch joins the building name so responses never trigger a second read.
func (r *Repos) GetBatch(ctx context.Context, id int64) (*domain.Batch, error) {
	var b domain.Batch
	err := r.db.GetContext(ctx, &b, `
		SELECT b.id, b.batch_number, b.chicken_count, b.arrival_date, b.strain,
		       b.purchase_price, b.building_id, bl.name AS building_name,
		       b.status, b.notes, b.created_by_id, b.created_at, b.updated_at
		FROM batches b
		LEFT JOIN buildings bl ON bl.id = b.building_id
		WHERE b.id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}
