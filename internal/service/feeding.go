package service

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/djajbladi/poultry-backend/internal/apperr"
	"github.com/djajbladi/poultry-backend/internal/domain"
)

type FeedingStore interface {
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	GetBatch(ctx context.Context, id int64) (*domain.Batch, error)
	InsertFeeding(ctx context.Context, f *domain.FeedingRecord) error
	ListFeedingBetween(ctx context.Context, start, end domain.Date) ([]domain.FeedingRecord, error)
	ListFeedingForBatchBetween(ctx context.Context, batchID int64, start, end domain.Date) ([]domain.FeedingRecord, error)
}

type FeedingService struct {
	store        FeedingStore
	maxRangeDays int
}

func NewFeedingService(store FeedingStore, maxRangeDays int) *FeedingService {
	return &FeedingService{store: store, maxRangeDays: maxRangeDays}
}

type FeedingRecordRequest struct {
	BatchID     int64           `json:"batchId"`
	FeedType    string          `json:"feedType"`
	Quantity    decimal.Decimal `json:"quantity"`
	FeedingDate domain.Date     `json:"feedingDate"`
	Notes       *string         `json:"notes"`
}

func (s *FeedingService) Create(ctx context.Context, userEmail string, req FeedingRecordRequest) (*domain.FeedingRecord, error) {
	user, err := resolveUser(ctx, s.store, userEmail)
	if err != nil {
		return nil, err
	}
	if user.Role != domain.RoleOuvrier && user.Role != domain.RoleAdmin {
		return nil, apperr.Forbiddenf("only Ouvrier or Admin can create feeding records")
	}
	if req.FeedingDate.After(domain.Today().Time) {
		return nil, apperr.Invalidf("feeding date cannot be in the future")
	}
	if strings.TrimSpace(req.FeedType) == "" {
		return nil, apperr.Invalidf("feed type is required and cannot be blank")
	}
	if req.Quantity.Sign() <= 0 {
		return nil, apperr.Invalidf("quantity must be greater than 0")
	}
	batch, err := s.store.GetBatch(ctx, req.BatchID)
	if err != nil {
		return nil, err
	}
	if batch == nil {
		return nil, apperr.NotFoundf("batch not found: %d", req.BatchID)
	}
	if batch.Status != domain.BatchActive {
		return nil, apperr.Invalidf("feeding can only be recorded for active batches; current status: %s", batch.Status)
	}

	record := &domain.FeedingRecord{
		BatchID:        batch.ID,
		BatchNumber:    batch.BatchNumber,
		ChickenCount:   batch.ChickenCount,
		FeedType:       strings.TrimSpace(req.FeedType),
		Quantity:       req.Quantity,
		FeedingDate:    req.FeedingDate,
		Notes:          trimNotes(req.Notes),
		RecordedByID:   user.ID,
		RecordedByName: user.FullName,
	}
	if err := s.store.InsertFeeding(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

func (s *FeedingService) FindByDateRange(ctx context.Context, start, end domain.Date, batchID *int64) ([]domain.FeedingRecord, error) {
	if err := validateDateRange(start, end, s.maxRangeDays); err != nil {
		return nil, err
	}
	if batchID != nil {
		return s.store.ListFeedingForBatchBetween(ctx, *batchID, start, end)
	}
	return s.store.ListFeedingBetween(ctx, start, end)
}

func trimNotes(notes *string) *string {
	if notes == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*notes)
	return &trimmed
}
