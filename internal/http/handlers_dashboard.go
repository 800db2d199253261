package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/djajbladi/poultry-backend/internal/domain"
)

func (s *Server) supervisionDashboard(c *fiber.Ctx) error {
	start, err := domain.ParseDate(c.Query("startDate"))
	if err != nil {
		return badRequest(c, "invalid startDate, expected YYYY-MM-DD")
	}
	end, err := domain.ParseDate(c.Query("endDate"))
	if err != nil {
		return badRequest(c, "invalid endDate, expected YYYY-MM-DD")
	}
	dashboard, err := s.svcs.Dashboard.Supervision(c.UserContext(), callerEmail(c), start, end)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dashboard)
}

func (s *Server) pendingAlerts(c *fiber.Ctx) error {
	records, err := s.svcs.Health.FindPendingApproval(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(records)
}

func (s *Server) approveHealthRecord(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "invalid health record id")
	}
	record, err := s.svcs.Health.Approve(c.UserContext(), id, callerEmail(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(record)
}

func (s *Server) rejectHealthRecord(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "invalid health record id")
	}
	record, err := s.svcs.Health.Reject(c.UserContext(), id, callerEmail(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(record)
}
