package service

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/djajbladi/poultry-backend/internal/apperr"
	"github.com/djajbladi/poultry-backend/internal/domain"
)

type StockStore interface {
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	InsertStockItem(ctx context.Context, s *domain.StockItem) error
	GetStockItem(ctx context.Context, id int64) (*domain.StockItem, error)
	ListStockItems(ctx context.Context) ([]domain.StockItem, error)
}

type StockService struct {
	store StockStore
}

func NewStockService(store StockStore) *StockService {
	return &StockService{store: store}
}

type StockItemCreateRequest struct {
	Type     domain.StockType `json:"type"`
	Name     *string          `json:"name"`
	Quantity decimal.Decimal  `json:"quantity"`
	Unit     string           `json:"unit"`
}

func (s *StockService) Add(ctx context.Context, adminEmail string, req StockItemCreateRequest) (*domain.StockItem, error) {
	if !req.Type.Valid() {
		return nil, apperr.Invalidf("invalid stock type %q: use Feed, Vaccine or Vitamin", req.Type)
	}
	if req.Quantity.Sign() < 0 {
		return nil, apperr.Invalidf("quantity must be >= 0")
	}
	if req.Unit == "" {
		return nil, apperr.Invalidf("unit is required")
	}

	item := &domain.StockItem{
		Type:     req.Type,
		Name:     req.Name,
		Quantity: req.Quantity,
		Unit:     req.Unit,
	}
	if creator, err := s.store.GetUserByEmail(ctx, adminEmail); err == nil && creator != nil {
		item.CreatedByID = &creator.ID
	}
	if err := s.store.InsertStockItem(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *StockService) FindByID(ctx context.Context, id int64) (*domain.StockItem, error) {
	item, err := s.store.GetStockItem(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperr.NotFoundf("stock item not found: %d", id)
	}
	return item, nil
}

func (s *StockService) FindAll(ctx context.Context) ([]domain.StockItem, error) {
	return s.store.ListStockItems(ctx)
}
