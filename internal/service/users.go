package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/djajbladi/poultry-backend/internal/apperr"
	"github.com/djajbladi/poultry-backend/internal/auth"
	"github.com/djajbladi/poultry-backend/internal/cache"
	"github.com/djajbladi/poultry-backend/internal/domain"
)

type UserAdminStore interface {
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	InsertUser(ctx context.Context, u *domain.User) error
	ListUsers(ctx context.Context) ([]domain.User, error)
}

// UserAdminService covers staff account management, admin-only.
type UserAdminService struct {
	store      UserAdminStore
	cache      *cache.UserCache
	bcryptCost int
}

func NewUserAdminService(store UserAdminStore, userCache *cache.UserCache, bcryptCost int) *UserAdminService {
	return &UserAdminService{store: store, cache: userCache, bcryptCost: bcryptCost}
}

type CreateUserRequest struct {
	FirstName   string      `json:"firstName"`
	LastName    string      `json:"lastName"`
	Email       string      `json:"email"`
	Password    string      `json:"password"`
	PhoneNumber *string     `json:"phoneNumber"`
	Role        domain.Role `json:"role"`
}

// CreateUser creates staff accounts. Clients self-register through
// /api/auth/register and are rejected here.
func (s *UserAdminService) CreateUser(ctx context.Context, adminEmail string, req CreateUserRequest) (*domain.User, error) {
	if _, err := resolveUser(ctx, s.store, adminEmail); err != nil {
		return nil, err
	}

	if req.Role == domain.RoleClient {
		return nil, apperr.Invalidf("Client cannot be created via this endpoint; clients self-register")
	}
	if req.Role != domain.RoleAdmin && req.Role != domain.RoleOuvrier && req.Role != domain.RoleVeterinaire {
		return nil, apperr.Invalidf("invalid role %q: use Admin, Ouvrier or Veterinaire", req.Role)
	}
	exists, err := s.store.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperr.Invalidf("email already exists")
	}

	hash, err := auth.HashPassword(req.Password, s.bcryptCost)
	if err != nil {
		return nil, err
	}
	user := &domain.User{
		FullName:     strings.TrimSpace(req.FirstName + " " + req.LastName),
		Email:        req.Email,
		PasswordHash: hash,
		PhoneNumber:  req.PhoneNumber,
		Role:         req.Role,
		IsActive:     true,
	}
	if err := s.store.InsertUser(ctx, user); err != nil {
		return nil, err
	}
	if s.cache != nil {
		s.cache.Evict(ctx, user.Email)
	}
	log.Info().Str("email", user.Email).Str("role", string(user.Role)).Msg("staff account created")
	return user, nil
}

func (s *UserAdminService) ListUsers(ctx context.Context, adminEmail string) ([]domain.User, error) {
	if _, err := resolveUser(ctx, s.store, adminEmail); err != nil {
		return nil, err
	}
	return s.store.ListUsers(ctx)
}
