package service

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/djajbladi/poultry-backend/internal/apperr"
	"github.com/djajbladi/poultry-backend/internal/domain"
)

type HealthStore interface {
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	GetBatch(ctx context.Context, id int64) (*domain.Batch, error)
	InsertHealth(ctx context.Context, h *domain.HealthRecord) error
	GetHealth(ctx context.Context, id int64) (*domain.HealthRecord, error)
	SetHealthApproval(ctx context.Context, id int64, status domain.ApprovalStatus, approvedByID int64, approvedAt time.Time) error
	ListPendingHealth(ctx context.Context) ([]domain.HealthRecord, error)
}

// HealthService manages veterinary examinations and their approval
// workflow. A record enters PENDING_APPROVAL when the vet reports a disease
// or the treatment cost reaches the configured threshold; an admin then
// approves or rejects it exactly once.
type HealthService struct {
	store              HealthStore
	expensiveThreshold decimal.Decimal
}

func NewHealthService(store HealthStore, expensiveThreshold decimal.Decimal) *HealthService {
	return &HealthService{store: store, expensiveThreshold: expensiveThreshold}
}

type HealthRecordCreateRequest struct {
	BatchID           int64               `json:"batchId"`
	Diagnosis         string              `json:"diagnosis"`
	Treatment         *string             `json:"treatment"`
	ExaminationDate   domain.Date         `json:"examinationDate"`
	NextVisitDate     domain.NullDate     `json:"nextVisitDate"`
	MortalityCount    *int                `json:"mortalityCount"`
	TreatmentCost     decimal.NullDecimal `json:"treatmentCost"`
	IsDiseaseReported bool                `json:"isDiseaseReported"`
	Notes             *string             `json:"notes"`
}

func (s *HealthService) Create(ctx context.Context, userEmail string, req HealthRecordCreateRequest) (*domain.HealthRecord, error) {
	vet, err := resolveUser(ctx, s.store, userEmail)
	if err != nil {
		return nil, err
	}
	if vet.Role != domain.RoleVeterinaire && vet.Role != domain.RoleAdmin {
		return nil, apperr.Forbiddenf("only Veterinaire or Admin can create health records")
	}
	if strings.TrimSpace(req.Diagnosis) == "" {
		return nil, apperr.Invalidf("diagnosis is required")
	}
	if req.ExaminationDate.After(domain.Today().Time) {
		return nil, apperr.Invalidf("examination date cannot be in the future")
	}
	if req.MortalityCount != nil && *req.MortalityCount < 0 {
		return nil, apperr.Invalidf("mortality count must be >= 0")
	}
	if req.TreatmentCost.Valid && req.TreatmentCost.Decimal.Sign() < 0 {
		return nil, apperr.Invalidf("treatment cost cannot be negative")
	}
	batch, err := s.store.GetBatch(ctx, req.BatchID)
	if err != nil {
		return nil, err
	}
	if batch == nil {
		return nil, apperr.NotFoundf("batch not found: %d", req.BatchID)
	}
	if batch.Status != domain.BatchActive {
		return nil, apperr.Invalidf("health records can only be created for active batches; current status: %s", batch.Status)
	}

	requiresApproval := req.IsDiseaseReported ||
		(req.TreatmentCost.Valid && req.TreatmentCost.Decimal.GreaterThanOrEqual(s.expensiveThreshold))

	record := &domain.HealthRecord{
		BatchID:          batch.ID,
		BatchNumber:      batch.BatchNumber,
		VeterinarianID:   vet.ID,
		VeterinarianName: vet.FullName,
		Diagnosis:        strings.TrimSpace(req.Diagnosis),
		Treatment:        trimNotes(req.Treatment),
		ExaminationDate:  req.ExaminationDate,
		NextVisitDate:    req.NextVisitDate,
		TreatmentCost:    req.TreatmentCost,
		RequiresApproval: requiresApproval,
		Notes:            trimNotes(req.Notes),
	}
	if req.MortalityCount != nil {
		record.MortalityCount = *req.MortalityCount
	}
	if requiresApproval {
		record.ApprovalStatus = domain.ApprovalPending
	}
	if err := s.store.InsertHealth(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

func (s *HealthService) Approve(ctx context.Context, id int64, adminEmail string) (*domain.HealthRecord, error) {
	return s.transition(ctx, id, adminEmail, domain.ApprovalApproved)
}

func (s *HealthService) Reject(ctx context.Context, id int64, adminEmail string) (*domain.HealthRecord, error) {
	return s.transition(ctx, id, adminEmail, domain.ApprovalRejected)
}

// transition is the single pending -> approved/rejected step. It is
// terminal: a record that already left PENDING_APPROVAL never changes.
func (s *HealthService) transition(ctx context.Context, id int64, adminEmail string, status domain.ApprovalStatus) (*domain.HealthRecord, error) {
	admin, err := resolveUser(ctx, s.store, adminEmail)
	if err != nil {
		return nil, err
	}
	if admin.Role != domain.RoleAdmin {
		return nil, apperr.Forbiddenf("only Admin can approve or reject health records")
	}
	record, err := s.store.GetHealth(ctx, id)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, apperr.NotFoundf("health record not found: %d", id)
	}
	if !record.RequiresApproval {
		return nil, apperr.Invalidf("this health record does not require approval")
	}
	if record.ApprovalStatus != domain.ApprovalPending {
		return nil, apperr.Invalidf("health record is not pending approval; status: %s", record.ApprovalStatus)
	}

	now := time.Now()
	if err := s.store.SetHealthApproval(ctx, id, status, admin.ID, now); err != nil {
		return nil, err
	}
	record.ApprovalStatus = status
	record.ApprovedByID = &admin.ID
	record.ApprovedByName = &admin.FullName
	record.ApprovedAt = &now
	return record, nil
}

func (s *HealthService) FindPendingApproval(ctx context.Context) ([]domain.HealthRecord, error) {
	return s.store.ListPendingHealth(ctx)
}
