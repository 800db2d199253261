package repository

import (
	"context"

	"github.com/djajbladi/poultry-backend/internal/domain"
)

const feedingSelect = `
	SELECT f.id, f.batch_id, b.batch_number, b.chicken_count, f.feed_type,
	       f.quantity, f.feeding_date, f.notes, f.recorded_by_id,
	       u.full_name AS recorded_by_name, f.created_at, f.updated_at
	FROM feeding_records f
	JOIN batches b ON b.id = f.batch_id
	JOIN users u ON u.id = f.recorded_by_id`

func (r *Repos) InsertFeeding(ctx context.Context, f *domain.FeedingRecord) error {
	return r.db.QueryRowxContext(ctx, `
		INSERT INTO feeding_records (batch_id, feed_type, quantity, feeding_date, notes, recorded_by_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at`,
		f.BatchID, f.FeedType, f.Quantity, f.FeedingDate, f.Notes, f.RecordedByID,
	).Scan(&f.ID, &f.CreatedAt, &f.UpdatedAt)
}

func (r *Repos) ListFeedingBetween(ctx context.Context, start, end domain.Date) ([]domain.FeedingRecord, error) {
	var out []domain.FeedingRecord
	err := r.db.SelectContext(ctx, &out,
		feedingSelect+` WHERE f.feeding_date BETWEEN $1 AND $2 ORDER BY f.feeding_date, f.id`,
		start, end)
	return out, err
}

func (r *Repos) ListFeedingForBatchBetween(ctx context.Context, batchID int64, start, end domain.Date) ([]domain.FeedingRecord, error) {
	var out []domain.FeedingRecord
	err := r.db.SelectContext(ctx, &out,
		feedingSelect+` WHERE f.batch_id = $1 AND f.feeding_date BETWEEN $2 AND $3 ORDER BY f.feeding_date, f.id`,
		batchID, start, end)
	return out, err
}
