package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/djajbladi/poultry-backend/internal/service"
)

func (s *Server) login(c *fiber.Ctx) error {
	var req service.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "malformed request body")
	}
	resp, err := s.svcs.Auth.Login(c.UserContext(), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

func (s *Server) register(c *fiber.Ctx) error {
	var req service.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "malformed request body")
	}
	user, err := s.svcs.Auth.Register(c.UserContext(), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

func (s *Server) currentProfile(c *fiber.Ctx) error {
	user, err := s.svcs.Auth.UserByEmail(c.UserContext(), callerEmail(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(user)
}

func (s *Server) updateProfile(c *fiber.Ctx) error {
	var req service.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "malformed request body")
	}
	user, err := s.svcs.Profile.UpdateProfile(c.UserContext(), callerEmail(c), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(user)
}

func (s *Server) changePassword(c *fiber.Ctx) error {
	var req service.ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "malformed request body")
	}
	if err := s.svcs.Profile.ChangePassword(c.UserContext(), callerEmail(c), req); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
