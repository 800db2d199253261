package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/djajbladi/poultry-backend/internal/apperr"
	"github.com/djajbladi/poultry-backend/internal/auth"
	"github.com/djajbladi/poultry-backend/internal/cache"
	"github.com/djajbladi/poultry-backend/internal/domain"
)

type AuthStore interface {
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	InsertUser(ctx context.Context, u *domain.User) error
	TouchLastLogin(ctx context.Context, id int64, at time.Time) error
}

type AuthService struct {
	store      AuthStore
	cache      *cache.UserCache
	tokens     *auth.TokenIssuer
	bcryptCost int
}

func NewAuthService(store AuthStore, userCache *cache.UserCache, tokens *auth.TokenIssuer, bcryptCost int) *AuthService {
	return &AuthService{store: store, cache: userCache, tokens: tokens, bcryptCost: bcryptCost}
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type JWTResponse struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refreshToken"`
	Email        string `json:"email"`
	Role         string `json:"role"`
}

func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*JWTResponse, error) {
	user, err := s.store.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if user == nil || !auth.CheckPassword(user.PasswordHash, req.Password) {
		return nil, apperr.Unauthorizedf("invalid email or password")
	}

	accessToken, err := s.tokens.Access(user.Email, user.Role)
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.tokens.Refresh(user.Email)
	if err != nil {
		return nil, err
	}
	if err := s.store.TouchLastLogin(ctx, user.ID, time.Now()); err != nil {
		log.Warn().Err(err).Int64("user_id", user.ID).Msg("last login update failed")
	}
	s.evict(ctx, user.Email)

	return &JWTResponse{
		Token:        accessToken,
		RefreshToken: refreshToken,
		Email:        user.Email,
		Role:         string(user.Role),
	}, nil
}

type RegisterRequest struct {
	FirstName   string      `json:"firstName"`
	LastName    string      `json:"lastName"`
	Email       string      `json:"email"`
	Password    string      `json:"password"`
	PhoneNumber *string     `json:"phoneNumber"`
	Role        domain.Role `json:"role"`
}

// Register creates a self-service account. Only clients may self-register;
// staff accounts are created by an admin.
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*domain.User, error) {
	role := req.Role
	if role == "" {
		role = domain.RoleClient
	}
	if role != domain.RoleClient {
		return nil, apperr.Invalidf("only Client role can self-register; Admin, Ouvrier and Veterinaire are created by an admin")
	}
	if req.Email == "" || req.Password == "" {
		return nil, apperr.Invalidf("email and password are required")
	}
	exists, err := s.EmailExists(ctx, req.Email)
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
		Role:         role,
		IsActive:     true,
	}
	if err := s.store.InsertUser(ctx, user); err != nil {
		return nil, err
	}
	s.evict(ctx, user.Email)
	log.Info().Str("email", user.Email).Msg("client registered")
	return user, nil
}

// UserByEmail is the cached lookup: first request hits the database, later
// ones Redis, until a write evicts the entry.
func (s *AuthService) UserByEmail(ctx context.Context, email string) (*domain.User, error) {
	if s.cache != nil {
		if u, hit := s.cache.GetUser(ctx, email); hit {
			cache.MarkHit(ctx)
			return u, nil
		}
		cache.MarkMiss(ctx)
	}
	user, err := s.store.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.NotFoundf("user not found: %s", email)
	}
	if s.cache != nil {
		s.cache.SetUser(ctx, user)
	}
	return user, nil
}

func (s *AuthService) EmailExists(ctx context.Context, email string) (bool, error) {
	if s.cache != nil {
		if exists, hit := s.cache.GetEmailExists(ctx, email); hit {
			cache.MarkHit(ctx)
			return exists, nil
		}
		cache.MarkMiss(ctx)
	}
	exists, err := s.store.EmailExists(ctx, email)
	if err != nil {
		return false, err
	}
	if s.cache != nil {
		s.cache.SetEmailExists(ctx, email, exists)
	}
	return exists, nil
}

func (s *AuthService) evict(ctx context.Context, email string) {
	if s.cache != nil {
		s.cache.Evict(ctx, email)
	}
}
