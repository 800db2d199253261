// Package service holds the business rules: role gates, input validation,
// the health approval workflow and the supervision dashboard aggregation.
// Services call store interfaces implemented by the repository layer.
package service

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/djajbladi/poultry-backend/internal/apperr"
	"github.com/djajbladi/poultry-backend/internal/auth"
	"github.com/djajbladi/poultry-backend/internal/cache"
	"github.com/djajbladi/poultry-backend/internal/config"
	"github.com/djajbladi/poultry-backend/internal/domain"
	"github.com/djajbladi/poultry-backend/internal/repository"
)

type Services struct {
	Auth      *AuthService
	Profile   *ProfileService
	Users     *UserAdminService
	Buildings *BuildingService
	Batches   *BatchService
	Feeding   *FeedingService
	Mortality *MortalityService
	Health    *HealthService
	Dashboard *DashboardService
	Stock     *StockService
}

func New(db *sqlx.DB, users *cache.UserCache, tokens *auth.TokenIssuer) *Services {
	repos := repository.New(db)
	return &Services{
		Auth:      NewAuthService(repos, users, tokens, config.BcryptCost()),
		Profile:   NewProfileService(repos, users, config.BcryptCost()),
		Users:     NewUserAdminService(repos, users, config.BcryptCost()),
		Buildings: NewBuildingService(repos),
		Batches:   NewBatchService(repos),
		Feeding:   NewFeedingService(repos, config.SupervisionMaxRangeDays()),
		Mortality: NewMortalityService(repos, config.SupervisionMaxRangeDays()),
		Health:    NewHealthService(repos, config.ExpensiveTreatmentThreshold()),
		Dashboard: NewDashboardService(repos, config.SupervisionMaxRangeDays()),
		Stock:     NewStockService(repos),
	}
}

// userResolver is the minimal lookup every service needs to turn the
// authenticated email back into an actor row.
type userResolver interface {
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
}

func resolveUser(ctx context.Context, r userResolver, email string) (*domain.User, error) {
	u, err := r.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, apperr.NotFoundf("user not found: %s", email)
	}
	return u, nil
}

// validateDateRange applies the shared range rules: ordered endpoints and a
// configured maximum span in days.
func validateDateRange(start, end domain.Date, maxDays int) error {
	if start.After(end.Time) {
		return apperr.Invalidf("start date must be before or equal to end date")
	}
	if start.DaysUntil(end) > maxDays {
		return apperr.Invalidf("date range cannot exceed %d days", maxDays)
	}
	return nil
}
