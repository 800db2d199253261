package service

import (
	"context"
	"strings"

	"github.com/djajbladi/poultry-backend/internal/apperr"
	"github.com/djajbladi/poultry-backend/internal/auth"
	"github.com/djajbladi/poultry-backend/internal/cache"
	"github.com/djajbladi/poultry-backend/internal/domain"
)

type ProfileStore interface {
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	UpdateUser(ctx context.Context, u *domain.User) error
}

type ProfileService struct {
	store      ProfileStore
	cache      *cache.UserCache
	bcryptCost int
}

func NewProfileService(store ProfileStore, userCache *cache.UserCache, bcryptCost int) *ProfileService {
	return &ProfileService{store: store, cache: userCache, bcryptCost: bcryptCost}
}

type UpdateProfileRequest struct {
	FullName    *string `json:"fullName"`
	PhoneNumber *string `json:"phoneNumber"`
	City        *string `json:"city"`
}

// UpdateProfile applies only the provided fields; blank strings clear the
// optional ones.
func (s *ProfileService) UpdateProfile(ctx context.Context, email string, req UpdateProfileRequest) (*domain.User, error) {
	user, err := resolveUser(ctx, s.store, email)
	if err != nil {
		return nil, err
	}

	if req.FullName != nil && strings.TrimSpace(*req.FullName) != "" {
		user.FullName = strings.TrimSpace(*req.FullName)
	}
	if req.PhoneNumber != nil {
		user.PhoneNumber = trimToNil(*req.PhoneNumber)
	}
	if req.City != nil {
		user.City = trimToNil(*req.City)
	}

	if err := s.store.UpdateUser(ctx, user); err != nil {
		return nil, err
	}
	if s.cache != nil {
		s.cache.Evict(ctx, email)
	}
	return user, nil
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

func (s *ProfileService) ChangePassword(ctx context.Context, email string, req ChangePasswordRequest) error {
	user, err := resolveUser(ctx, s.store, email)
	if err != nil {
		return err
	}
	if !auth.CheckPassword(user.PasswordHash, req.CurrentPassword) {
		return apperr.Invalidf("current password is incorrect")
	}
	if req.CurrentPassword == req.NewPassword {
		return apperr.Invalidf("new password must be different from current password")
	}

	hash, err := auth.HashPassword(req.NewPassword, s.bcryptCost)
	if err != nil {
		return err
	}
	user.PasswordHash = hash
	if err := s.store.UpdateUser(ctx, user); err != nil {
		return err
	}
	if s.cache != nil {
		s.cache.Evict(ctx, email)
	}
	return nil
}

func trimToNil(s string) *string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
