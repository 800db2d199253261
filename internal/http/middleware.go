package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/djajbladi/poultry-backend/internal/auth"
	"github.com/djajbladi/poultry-backend/internal/cache"
	"github.com/djajbladi/poultry-backend/internal/domain"
)

const (
	localEmail = "email"
	localRole  = "role"
)

// CacheStatus attaches a request-scoped cache status holder and surfaces
// the outcome of any cached lookup as X-Cache-Status.
func CacheStatus() fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, status := cache.WithStatus(c.UserContext())
		c.SetUserContext(ctx)
		err := c.Next()
		if v := status.Value(); v != "" {
			c.Set("X-Cache-Status", v)
		}
		return err
	}
}

// RequireAuth validates the Bearer token and stores the caller's email and
// role for downstream handlers.
func RequireAuth(tokens *auth.TokenIssuer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if !strings.HasPrefix(header, "Bearer ") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "missing bearer token"})
		}
		claims, err := tokens.Parse(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid or expired token"})
		}
		c.Locals(localEmail, claims.Subject)
		c.Locals(localRole, domain.Role(claims.Role))
		return c.Next()
	}
}

// RequireRoles gates a route group to the given roles. Services still
// re-check roles for the operations where the rule is a business invariant.
func RequireRoles(roles ...domain.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals(localRole).(domain.Role)
		for _, allowed := range roles {
			if role == allowed {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "insufficient role"})
	}
}

func callerEmail(c *fiber.Ctx) string {
	email, _ := c.Locals(localEmail).(string)
	return email
}
