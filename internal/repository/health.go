package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/djajbladi/poultry-backend/internal/domain"
)

const healthSelect = `
	SELECT h.id, h.batch_id, b.batch_number, h.veterinarian_id,
	       v.full_name AS veterinarian_name, h.diagnosis, h.treatment,
	       h.examination_date, h.next_visit_date, h.mortality_count,
	       h.treatment_cost, h.requires_approval, h.approval_status,
	       h.approved_by_id, a.full_name AS approved_by_name, h.approved_at,
	       h.notes, h.created_at, h.updated_at
	FROM health_records h
	JOIN batches b ON b.id = h.batch_id
	JOIN users v ON v.id = h.veterinarian_id
	LEFT JOIN users a ON a.id = h.approved_by_id`

func (r *Repos) InsertHealth(ctx context.Context, h *domain.HealthRecord) error {
	return r.db.QueryRowxContext(ctx, `
		INSERT INTO health_records (batch_id, veterinarian_id, diagnosis, treatment,
			examination_date, next_visit_date, mortality_count, treatment_cost,
			requires_approval, approval_status, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at, updated_at`,
		h.BatchID, h.VeterinarianID, h.Diagnosis, h.Treatment,
		h.ExaminationDate, h.NextVisitDate, h.MortalityCount, h.TreatmentCost,
		h.RequiresApproval, h.ApprovalStatus, h.Notes,
	).Scan(&h.ID, &h.CreatedAt, &h.UpdatedAt)
}

func (r *Repos) GetHealth(ctx context.Context, id int64) (*domain.HealthRecord, error) {
	var h domain.HealthRecord
	err := r.db.GetContext(ctx, &h, healthSelect+` WHERE h.id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &h, nil
}

func (r *Repos) SetHealthApproval(ctx context.Context, id int64, status domain.ApprovalStatus, approvedByID int64, approvedAt time.Time) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE health_records
		SET approval_status = $2, approved_by_id = $3, approved_at = $4, updated_at = now()
		WHERE id = $1`,
		id, status, approvedByID, approvedAt)
	return err
}

// ListPendingHealth returns pending-approval records in creation order,
// which is the encounter order the dashboard projection preserves.
func (r *Repos) ListPendingHealth(ctx context.Context) ([]domain.HealthRecord, error) {
	var out []domain.HealthRecord
	err := r.db.SelectContext(ctx, &out,
		healthSelect+` WHERE h.approval_status = $1 ORDER BY h.created_at, h.id`,
		domain.ApprovalPending)
	return out, err
}
