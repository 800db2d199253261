package http

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/djajbladi/poultry-backend/internal/apperr"
	"github.com/djajbladi/poultry-backend/internal/auth"
	"github.com/djajbladi/poultry-backend/internal/domain"
)

func testApp(tokens *auth.TokenIssuer) *fiber.App {
	app := fiber.New()
	protected := app.Group("/protected", RequireAuth(tokens))
	protected.Get("/me", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"email": callerEmail(c)})
	})
	admin := protected.Group("/admin", RequireRoles(domain.RoleAdmin))
	admin.Get("/", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func TestRequireAuth(t *testing.T) {
	tokens := auth.NewTokenIssuer([]byte("secret"), time.Hour, 24*time.Hour)
	app := testApp(tokens)

	t.Run("missing header", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/protected/me", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("malformed token", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/protected/me", nil)
		req.Header.Set("Authorization", "Bearer garbage")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("valid token", func(t *testing.T) {
		token, err := tokens.Access("worker@farm.ma", domain.RoleOuvrier)
		require.NoError(t, err)
		req := httptest.NewRequest("GET", "/protected/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})
}

func TestRequireRoles(t *testing.T) {
	tokens := auth.NewTokenIssuer([]byte("secret"), time.Hour, 24*time.Hour)
	app := testApp(tokens)

	t.Run("role allowed", func(t *testing.T) {
		token, err := tokens.Access("admin@farm.ma", domain.RoleAdmin)
		require.NoError(t, err)
		req := httptest.NewRequest("GET", "/protected/admin/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("role denied", func(t *testing.T) {
		token, err := tokens.Access("worker@farm.ma", domain.RoleOuvrier)
		require.NoError(t, err)
		req := httptest.NewRequest("GET", "/protected/admin/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	})
}

func TestStatusFor(t *testing.T) {
	assert.Equal(t, fiber.StatusBadRequest, statusFor(apperr.Invalid))
	assert.Equal(t, fiber.StatusUnauthorized, statusFor(apperr.Unauthorized))
	assert.Equal(t, fiber.StatusForbidden, statusFor(apperr.Forbidden))
	assert.Equal(t, fiber.StatusNotFound, statusFor(apperr.NotFound))
	assert.Equal(t, fiber.StatusConflict, statusFor(apperr.Conflict))
}
