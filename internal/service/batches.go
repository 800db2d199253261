package service

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/djajbladi/poultry-backend/internal/apperr"
	"github.com/djajbladi/poultry-backend/internal/domain"
)

type BatchStore interface {
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	BatchNumberExists(ctx context.Context, batchNumber string) (bool, error)
	InsertBatch(ctx context.Context, b *domain.Batch) error
	GetBatch(ctx context.Context, id int64) (*domain.Batch, error)
	GetBuilding(ctx context.Context, id int64) (*domain.Building, error)
}

type BatchService struct {
	store BatchStore
}

func NewBatchService(store BatchStore) *BatchService {
	return &BatchService{store: store}
}

type BatchCreateRequest struct {
	BatchNumber   string              `json:"batchNumber"`
	ChickenCount  int                 `json:"chickenCount"`
	ArrivalDate   domain.Date         `json:"arrivalDate"`
	Strain        *string             `json:"strain"`
	PurchasePrice decimal.NullDecimal `json:"purchasePrice"`
	BuildingID    *int64              `json:"buildingId"`
	Notes         *string             `json:"notes"`
}

func (s *BatchService) Create(ctx context.Context, adminEmail string, req BatchCreateRequest) (*domain.Batch, error) {
	if req.BatchNumber == "" {
		return nil, apperr.Invalidf("batch number is required")
	}
	if req.ChickenCount <= 0 {
		return nil, apperr.Invalidf("chicken count must be greater than 0")
	}
	exists, err := s.store.BatchNumberExists(ctx, req.BatchNumber)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperr.Conflictf("batch number already exists: %s", req.BatchNumber)
	}
	creator, err := resolveUser(ctx, s.store, adminEmail)
	if err != nil {
		return nil, err
	}

	b := &domain.Batch{
		BatchNumber:   req.BatchNumber,
		ChickenCount:  req.ChickenCount,
		ArrivalDate:   req.ArrivalDate,
		Strain:        req.Strain,
		PurchasePrice: req.PurchasePrice,
		Status:        domain.BatchActive,
		Notes:         req.Notes,
		CreatedByID:   creator.ID,
	}
	if req.BuildingID != nil {
		building, err := s.store.GetBuilding(ctx, *req.BuildingID)
		if err != nil {
			return nil, err
		}
		if building == nil {
			return nil, apperr.NotFoundf("building not found: %d", *req.BuildingID)
		}
		b.BuildingID = &building.ID
		b.BuildingName = &building.Name
	}

	if err := s.store.InsertBatch(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *BatchService) FindByID(ctx context.Context, id int64) (*domain.Batch, error) {
	b, err := s.store.GetBatch(ctx, id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, apperr.NotFoundf("batch not found: %d", id)
	}
	return b, nil
}
