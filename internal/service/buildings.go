package service

import (
	"context"

	"github.com/djajbladi/poultry-backend/internal/apperr"
	"github.com/djajbladi/poultry-backend/internal/domain"
)

type BuildingStore interface {
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	InsertBuilding(ctx context.Context, b *domain.Building) error
	GetBuilding(ctx context.Context, id int64) (*domain.Building, error)
	ListBuildings(ctx context.Context) ([]domain.Building, error)
}

type BuildingService struct {
	store BuildingStore
}

func NewBuildingService(store BuildingStore) *BuildingService {
	return &BuildingService{store: store}
}

type BuildingRequest struct {
	Name        string  `json:"name"`
	MaxCapacity int     `json:"maxCapacity"`
	ImageURL    *string `json:"imageUrl"`
}

func (s *BuildingService) Create(ctx context.Context, adminEmail string, req BuildingRequest) (*domain.Building, error) {
	if req.Name == "" {
		return nil, apperr.Invalidf("building name is required")
	}
	if req.MaxCapacity <= 0 {
		return nil, apperr.Invalidf("max capacity must be greater than 0")
	}

	b := &domain.Building{
		Name:        req.Name,
		MaxCapacity: req.MaxCapacity,
		ImageURL:    req.ImageURL,
	}
	// Creator attribution is best effort; a failed lookup leaves it null.
	if creator, err := s.store.GetUserByEmail(ctx, adminEmail); err == nil && creator != nil {
		b.CreatedByID = &creator.ID
	}
	if err := s.store.InsertBuilding(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *BuildingService) FindByID(ctx context.Context, id int64) (*domain.Building, error) {
	b, err := s.store.GetBuilding(ctx, id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, apperr.NotFoundf("building not found: %d", id)
	}
	return b, nil
}

func (s *BuildingService) FindAll(ctx context.Context) ([]domain.Building, error) {
	return s.store.ListBuildings(ctx)
}
