package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/djajbladi/poultry-backend/internal/domain"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	issuer := NewTokenIssuer([]byte("secret"), time.Hour, 24*time.Hour)

	token, err := issuer.Access("admin@farm.ma", domain.RoleAdmin)
	require.NoError(t, err)

	claims, err := issuer.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "admin@farm.ma", claims.Subject)
	assert.Equal(t, "Admin", claims.Role)
}

func TestRefreshTokenHasNoRole(t *testing.T) {
	issuer := NewTokenIssuer([]byte("secret"), time.Hour, 24*time.Hour)

	token, err := issuer.Refresh("admin@farm.ma")
	require.NoError(t, err)

	claims, err := issuer.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "admin@farm.ma", claims.Subject)
	assert.Empty(t, claims.Role)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	issuer := NewTokenIssuer([]byte("secret"), time.Hour, 24*time.Hour)
	other := NewTokenIssuer([]byte("another"), time.Hour, 24*time.Hour)

	token, err := issuer.Access("admin@farm.ma", domain.RoleAdmin)
	require.NoError(t, err)

	_, err = other.Parse(token)
	assert.Error(t, err)
}

func TestParseRejectsExpiredToken(t *testing.T) {
	issuer := NewTokenIssuer([]byte("secret"), -time.Minute, 24*time.Hour)

	token, err := issuer.Access("admin@farm.ma", domain.RoleAdmin)
	require.NoError(t, err)

	_, err = issuer.Parse(token)
	assert.Error(t, err)
}

func TestParseRejectsGarbage(t *testing.T) {
	issuer := NewTokenIssuer([]byte("secret"), time.Hour, 24*time.Hour)
	_, err := issuer.Parse("not.a.token")
	assert.Error(t, err)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("s3cret", 4)
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret", hash)
	assert.True(t, CheckPassword(hash, "s3cret"))
	assert.False(t, CheckPassword(hash, "wrong"))
}
