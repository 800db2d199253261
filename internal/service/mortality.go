package service

import (
	"context"

	"github.com/djajbladi/poultry-backend/internal/apperr"
	"github.com/djajbladi/poultry-backend/internal/domain"
)

type MortalityStore interface {
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	GetBatch(ctx context.Context, id int64) (*domain.Batch, error)
	MortalityExists(ctx context.Context, batchID int64, date domain.Date) (bool, error)
	InsertMortality(ctx context.Context, m *domain.DailyMortalityRecord) error
	UpdateMortality(ctx context.Context, m *domain.DailyMortalityRecord) error
	GetMortality(ctx context.Context, id int64) (*domain.DailyMortalityRecord, error)
	ListMortalityBetween(ctx context.Context, start, end domain.Date) ([]domain.DailyMortalityRecord, error)
	ListMortalityForBatchBetween(ctx context.Context, batchID int64, start, end domain.Date) ([]domain.DailyMortalityRecord, error)
}

type MortalityService struct {
	store        MortalityStore
	maxRangeDays int
}

func NewMortalityService(store MortalityStore, maxRangeDays int) *MortalityService {
	return &MortalityService{store: store, maxRangeDays: maxRangeDays}
}

type DailyMortalityRequest struct {
	BatchID        int64       `json:"batchId"`
	RecordDate     domain.Date `json:"recordDate"`
	MortalityCount int         `json:"mortalityCount"`
	Notes          *string     `json:"notes"`
}

// Record creates the single mortality entry allowed per batch and day.
func (s *MortalityService) Record(ctx context.Context, userEmail string, req DailyMortalityRequest) (*domain.DailyMortalityRecord, error) {
	user, err := resolveUser(ctx, s.store, userEmail)
	if err != nil {
		return nil, err
	}
	if user.Role != domain.RoleOuvrier && user.Role != domain.RoleAdmin {
		return nil, apperr.Forbiddenf("only Ouvrier or Admin can record daily mortality")
	}
	if req.RecordDate.After(domain.Today().Time) {
		return nil, apperr.Invalidf("record date cannot be in the future")
	}
	if req.MortalityCount < 0 {
		return nil, apperr.Invalidf("mortality count must be >= 0")
	}
	batch, err := s.store.GetBatch(ctx, req.BatchID)
	if err != nil {
		return nil, err
	}
	if batch == nil {
		return nil, apperr.NotFoundf("batch not found: %d", req.BatchID)
	}
	if batch.Status != domain.BatchActive {
		return nil, apperr.Invalidf("mortality can only be recorded for active batches; current status: %s", batch.Status)
	}
	if req.MortalityCount > batch.ChickenCount {
		return nil, apperr.Invalidf("mortality count (%d) cannot exceed batch size (%d)", req.MortalityCount, batch.ChickenCount)
	}
	exists, err := s.store.MortalityExists(ctx, batch.ID, req.RecordDate)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperr.Conflictf("mortality already recorded for batch %s on %s", batch.BatchNumber, req.RecordDate)
	}

	record := &domain.DailyMortalityRecord{
		BatchID:        batch.ID,
		BatchNumber:    batch.BatchNumber,
		ChickenCount:   batch.ChickenCount,
		RecordDate:     req.RecordDate,
		MortalityCount: req.MortalityCount,
		Notes:          req.Notes,
		RecordedByID:   user.ID,
		RecordedByName: user.FullName,
	}
	if err := s.store.InsertMortality(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

func (s *MortalityService) Update(ctx context.Context, id int64, userEmail string, req DailyMortalityRequest) (*domain.DailyMortalityRecord, error) {
	user, err := resolveUser(ctx, s.store, userEmail)
	if err != nil {
		return nil, err
	}
	if user.Role != domain.RoleOuvrier && user.Role != domain.RoleAdmin {
		return nil, apperr.Forbiddenf("only Ouvrier or Admin can update daily mortality")
	}
	record, err := s.store.GetMortality(ctx, id)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, apperr.NotFoundf("daily mortality record not found: %d", id)
	}
	if req.RecordDate.After(domain.Today().Time) {
		return nil, apperr.Invalidf("record date cannot be in the future")
	}
	if req.MortalityCount < 0 {
		return nil, apperr.Invalidf("mortality count must be >= 0")
	}
	if req.MortalityCount > record.ChickenCount {
		return nil, apperr.Invalidf("mortality count (%d) cannot exceed batch size (%d)", req.MortalityCount, record.ChickenCount)
	}

	record.RecordDate = req.RecordDate
	record.MortalityCount = req.MortalityCount
	record.Notes = req.Notes
	if err := s.store.UpdateMortality(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

func (s *MortalityService) FindByDateRange(ctx context.Context, start, end domain.Date, batchID *int64) ([]domain.DailyMortalityRecord, error) {
	if err := validateDateRange(start, end, s.maxRangeDays); err != nil {
		return nil, err
	}
	if batchID != nil {
		return s.store.ListMortalityForBatchBetween(ctx, *batchID, start, end)
	}
	return s.store.ListMortalityBetween(ctx, start, end)
}
