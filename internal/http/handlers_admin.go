package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/djajbladi/poultry-backend/internal/service"
)

func parseID(c *fiber.Ctx) (int64, error) {
	return strconv.ParseInt(c.Params("id"), 10, 64)
}

func (s *Server) createUser(c *fiber.Ctx) error {
	var req service.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "malformed request body")
	}
	user, err := s.svcs.Users.CreateUser(c.UserContext(), callerEmail(c), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

func (s *Server) listUsers(c *fiber.Ctx) error {
	users, err := s.svcs.Users.ListUsers(c.UserContext(), callerEmail(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(users)
}

func (s *Server) createBuilding(c *fiber.Ctx) error {
	var req service.BuildingRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "malformed request body")
	}
	building, err := s.svcs.Buildings.Create(c.UserContext(), callerEmail(c), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(building)
}

func (s *Server) listBuildings(c *fiber.Ctx) error {
	buildings, err := s.svcs.Buildings.FindAll(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(buildings)
}

func (s *Server) getBuilding(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "invalid building id")
	}
	building, err := s.svcs.Buildings.FindByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(building)
}

func (s *Server) createBatch(c *fiber.Ctx) error {
	var req service.BatchCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "malformed request body")
	}
	batch, err := s.svcs.Batches.Create(c.UserContext(), callerEmail(c), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(batch)
}

func (s *Server) getBatch(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "invalid batch id")
	}
	batch, err := s.svcs.Batches.FindByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(batch)
}

func (s *Server) addStockItem(c *fiber.Ctx) error {
	var req service.StockItemCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "malformed request body")
	}
	item, err := s.svcs.Stock.Add(c.UserContext(), callerEmail(c), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

func (s *Server) listStockItems(c *fiber.Ctx) error {
	items, err := s.svcs.Stock.FindAll(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(items)
}

func (s *Server) getStockItem(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "invalid stock item id")
	}
	item, err := s.svcs.Stock.FindByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(item)
}
