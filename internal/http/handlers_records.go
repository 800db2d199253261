package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/djajbladi/poultry-backend/internal/domain"
	"github.com/djajbladi/poultry-backend/internal/service"
)

// parseRangeQuery reads the mandatory start/end query dates and the
// optional batchId filter shared by the record listing endpoints.
func parseRangeQuery(c *fiber.Ctx) (start, end domain.Date, batchID *int64, err error) {
	start, err = domain.ParseDate(c.Query("start"))
	if err != nil {
		return
	}
	end, err = domain.ParseDate(c.Query("end"))
	if err != nil {
		return
	}
	if raw := c.Query("batchId"); raw != "" {
		var id int64
		id, err = strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return
		}
		batchID = &id
	}
	return
}

func (s *Server) createFeeding(c *fiber.Ctx) error {
	var req service.FeedingRecordRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "malformed request body")
	}
	record, err := s.svcs.Feeding.Create(c.UserContext(), callerEmail(c), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(record)
}

func (s *Server) listFeeding(c *fiber.Ctx) error {
	start, end, batchID, err := parseRangeQuery(c)
	if err != nil {
		return badRequest(c, "invalid start/end/batchId query parameters")
	}
	records, err := s.svcs.Feeding.FindByDateRange(c.UserContext(), start, end, batchID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(records)
}

func (s *Server) recordMortality(c *fiber.Ctx) error {
	var req service.DailyMortalityRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "malformed request body")
	}
	record, err := s.svcs.Mortality.Record(c.UserContext(), callerEmail(c), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(record)
}

func (s *Server) updateMortality(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "invalid mortality record id")
	}
	var req service.DailyMortalityRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "malformed request body")
	}
	record, err := s.svcs.Mortality.Update(c.UserContext(), id, callerEmail(c), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(record)
}

func (s *Server) listMortality(c *fiber.Ctx) error {
	start, end, batchID, err := parseRangeQuery(c)
	if err != nil {
		return badRequest(c, "invalid start/end/batchId query parameters")
	}
	records, err := s.svcs.Mortality.FindByDateRange(c.UserContext(), start, end, batchID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(records)
}

func (s *Server) createHealthRecord(c *fiber.Ctx) error {
	var req service.HealthRecordCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "malformed request body")
	}
	record, err := s.svcs.Health.Create(c.UserContext(), callerEmail(c), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(record)
}
