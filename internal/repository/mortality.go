package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/djajbladi/poultry-backend/internal/domain"
)

const mortalitySelect = `
	SELECT m.id, m.batch_id, b.batch_number, b.chicken_count, m.record_date,
	       m.mortality_count, m.notes, m.recorded_by_id,
	       u.full_name AS recorded_by_name, m.created_at, m.updated_at
	FROM daily_mortality_records m
	JOIN batches b ON b.id = m.batch_id
	JOIN users u ON u.id = m.recorded_by_id`

func (r *Repos) MortalityExists(ctx context.Context, batchID int64, date domain.Date) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists, `
		SELECT EXISTS (SELECT 1 FROM daily_mortality_records WHERE batch_id = $1 AND record_date = $2)`,
		batchID, date)
	return exists, err
}

func (r *Repos) InsertMortality(ctx context.Context, m *domain.DailyMortalityRecord) error {
	return r.db.QueryRowxContext(ctx, `
		INSERT INTO daily_mortality_records (batch_id, record_date, mortality_count, notes, recorded_by_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at`,
		m.BatchID, m.RecordDate, m.MortalityCount, m.Notes, m.RecordedByID,
	).Scan(&m.ID, &m.CreatedAt, &m.UpdatedAt)
}

func (r *Repos) UpdateMortality(ctx context.Context, m *domain.DailyMortalityRecord) error {
	return r.db.QueryRowxContext(ctx, `
		UPDATE daily_mortality_records
		SET record_date = $2, mortality_count = $3, notes = $4, updated_at = now()
		WHERE id = $1
		RETURNING updated_at`,
		m.ID, m.RecordDate, m.MortalityCount, m.Notes,
	).Scan(&m.UpdatedAt)
}

func (r *Repos) GetMortality(ctx context.Context, id int64) (*domain.DailyMortalityRecord, error) {
	var m domain.DailyMortalityRecord
	err := r.db.GetContext(ctx, &m, mortalitySelect+` WHERE m.id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *Repos) ListMortalityBetween(ctx context.Context, start, end domain.Date) ([]domain.DailyMortalityRecord, error) {
	var out []domain.DailyMortalityRecord
	err := r.db.SelectContext(ctx, &out,
		mortalitySelect+` WHERE m.record_date BETWEEN $1 AND $2 ORDER BY m.record_date, m.id`,
		start, end)
	return out, err
}

func (r *Repos) ListMortalityForBatchBetween(ctx context.Context, batchID int64, start, end domain.Date) ([]domain.DailyMortalityRecord, error) {
	var out []domain.DailyMortalityRecord
	err := r.db.SelectContext(ctx, &out,
		mortalitySelect+` WHERE m.batch_id = $1 AND m.record_date BETWEEN $2 AND $3 ORDER BY m.record_date, m.id`,
		batchID, start, end)
	return out, err
}
