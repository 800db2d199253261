// Package http registers the fiber routes and adapts requests to the
// service layer.
package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/djajbladi/poultry-backend/internal/auth"
	"github.com/djajbladi/poultry-backend/internal/domain"
	"github.com/djajbladi/poultry-backend/internal/service"
)

type Server struct {
	svcs *service.Services
}

func Register(app *fiber.App, svcs *service.Services, tokens *auth.TokenIssuer) {
	s := &Server{svcs: svcs}

	app.Use(CacheStatus())
	app.Get("/health", func(c *fiber.Ctx) error { return c.SendString("ok") })

	api := app.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.Post("/login", s.login)
	authGroup.Post("/register", s.register)

	users := api.Group("/users", RequireAuth(tokens))
	users.Get("/me", s.currentProfile)
	users.Patch("/me", s.updateProfile)
	users.Post("/me/password", s.changePassword)

	ouvrier := api.Group("/ouvrier", RequireAuth(tokens), RequireRoles(domain.RoleOuvrier, domain.RoleAdmin))
	ouvrier.Post("/feeding", s.createFeeding)
	ouvrier.Get("/feeding", s.listFeeding)
	ouvrier.Post("/mortality", s.recordMortality)
	ouvrier.Put("/mortality/:id", s.updateMortality)
	ouvrier.Get("/mortality", s.listMortality)

	vet := api.Group("/vet", RequireAuth(tokens), RequireRoles(domain.RoleVeterinaire, domain.RoleAdmin))
	vet.Post("/health-records", s.createHealthRecord)

	admin := api.Group("/admin", RequireAuth(tokens), RequireRoles(domain.RoleAdmin))
	admin.Post("/users", s.createUser)
	admin.Get("/users", s.listUsers)
	admin.Post("/buildings", s.createBuilding)
	admin.Get("/buildings", s.listBuildings)
	admin.Get("/buildings/:id", s.getBuilding)
	admin.Post("/batches", s.createBatch)
	admin.Get("/batches/:id", s.getBatch)
	admin.Post("/stock", s.addStockItem)
	admin.Get("/stock", s.listStockItems)
	admin.Get("/stock/:id", s.getStockItem)
	admin.Get("/dashboard/supervision", s.supervisionDashboard)
	admin.Get("/dashboard/alerts", s.pendingAlerts)
	admin.Post("/dashboard/health-records/:id/approve", s.approveHealthRecord)
	admin.Post("/dashboard/health-records/:id/reject", s.rejectHealthRecord)
}
