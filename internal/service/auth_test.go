package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/djajbladi/poultry-backend/internal/apperr"
	"github.com/djajbladi/poultry-backend/internal/auth"
	"github.com/djajbladi/poultry-backend/internal/domain"
)

type mockAuthStore struct {
	mock.Mock
}

func (m *mockAuthStore) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockAuthStore) EmailExists(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *mockAuthStore) InsertUser(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *mockAuthStore) TouchLastLogin(ctx context.Context, id int64, at time.Time) error {
	args := m.Called(ctx, id, at)
	return args.Error(0)
}

func testTokenIssuer() *auth.TokenIssuer {
	return auth.NewTokenIssuer([]byte("test-secret"), time.Hour, 24*time.Hour)
}

func newAuthService(store *mockAuthStore) *AuthService {
	return NewAuthService(store, nil, testTokenIssuer(), bcrypt.MinCost)
}

func TestLogin(t *testing.T) {
	hash, err := auth.HashPassword("s3cret", bcrypt.MinCost)
	require.NoError(t, err)

	store := new(mockAuthStore)
	store.On("GetUserByEmail", mock.Anything, "admin@farm.ma").
		Return(&domain.User{ID: 1, Email: "admin@farm.ma", PasswordHash: hash, Role: domain.RoleAdmin}, nil)
	store.On("TouchLastLogin", mock.Anything, int64(1), mock.Anything).Return(nil)

	svc := newAuthService(store)
	resp, err := svc.Login(context.Background(), LoginRequest{Email: "admin@farm.ma", Password: "s3cret"})

	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, "admin@farm.ma", resp.Email)
	assert.Equal(t, "Admin", resp.Role)

	claims, err := testTokenIssuer().Parse(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "admin@farm.ma", claims.Subject)
	assert.Equal(t, "Admin", claims.Role)
}

func TestLoginWrongPassword(t *testing.T) {
	hash, err := auth.HashPassword("s3cret", bcrypt.MinCost)
	require.NoError(t, err)

	store := new(mockAuthStore)
	store.On("GetUserByEmail", mock.Anything, "admin@farm.ma").
		Return(&domain.User{ID: 1, Email: "admin@farm.ma", PasswordHash: hash}, nil)

	svc := newAuthService(store)
	_, err = svc.Login(context.Background(), LoginRequest{Email: "admin@farm.ma", Password: "wrong"})

	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.Unauthorized))
}

func TestLoginUnknownEmail(t *testing.T) {
	store := new(mockAuthStore)
	store.On("GetUserByEmail", mock.Anything, "nobody@farm.ma").Return(nil, nil)

	svc := newAuthService(store)
	_, err := svc.Login(context.Background(), LoginRequest{Email: "nobody@farm.ma", Password: "s3cret"})

	// Unknown email and wrong password are indistinguishable to the caller.
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.Unauthorized))
}

func TestRegisterClient(t *testing.T) {
	store := new(mockAuthStore)
	store.On("EmailExists", mock.Anything, "client@gmail.com").Return(false, nil)
	store.On("InsertUser", mock.Anything, mock.Anything).Return(nil)

	svc := newAuthService(store)
	user, err := svc.Register(context.Background(), RegisterRequest{
		FirstName: "Nadia",
		LastName:  "Benali",
		Email:     "client@gmail.com",
		Password:  "s3cret",
	})

	require.NoError(t, err)
	assert.Equal(t, "Nadia Benali", user.FullName)
	assert.Equal(t, domain.RoleClient, user.Role)
	assert.True(t, user.IsActive)
	assert.NotEqual(t, "s3cret", user.PasswordHash)
	assert.True(t, auth.CheckPassword(user.PasswordHash, "s3cret"))
}

func TestRegisterRejectsStaffRoles(t *testing.T) {
	svc := newAuthService(new(mockAuthStore))

	for _, role := range []domain.Role{domain.RoleAdmin, domain.RoleOuvrier, domain.RoleVeterinaire} {
		_, err := svc.Register(context.Background(), RegisterRequest{
			Email:    "x@farm.ma",
			Password: "s3cret",
			Role:     role,
		})
		require.Error(t, err, "role %s", role)
		assert.True(t, apperr.IsKind(err, apperr.Invalid))
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	store := new(mockAuthStore)
	store.On("EmailExists", mock.Anything, "client@gmail.com").Return(true, nil)

	svc := newAuthService(store)
	_, err := svc.Register(context.Background(), RegisterRequest{
		Email:    "client@gmail.com",
		Password: "s3cret",
	})

	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.Invalid))
}

func TestUserByEmailNotFound(t *testing.T) {
	store := new(mockAuthStore)
	store.On("GetUserByEmail", mock.Anything, "nobody@farm.ma").Return(nil, nil)

	svc := newAuthService(store)
	_, err := svc.UserByEmail(context.Background(), "nobody@farm.ma")

	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.NotFound))
}
