package web

import (
	"github.com/gofiber/fiber/v2"

	"campushub/internal/domain"
	"campushub/internal/normalize"
	"campushub/internal/storage"
)

func (s *Server) handleListEvents(c *fiber.Ctx) error {
	filter := storage.EventFilter{
		Search: c.Query("search"),
		Limit:  c.QueryInt("limit"),
		Offset: c.QueryInt("offset"),
	}
	if orgType := c.Query("org_type"); orgType != "" {
		parsed, err := domain.ParseOrgType(orgType)
		if err != nil {
			return err
		}
		filter.OrgType = parsed
	}
	if org := c.Query("org"); org != "" {
		filter.OrgName = normalize.OrgName(org)
	}

	infos, err := s.events.List(c.Context(), filter, currentUser(c).ID)
	if err != nil {
		return err
	}
	resp := make([]eventResponse, 0, len(infos))
	for _, info := range infos {
		resp = append(resp, convertEvent(info.Event, info.Registered))
	}
	return c.JSON(resp)
}

func (s *Server) handleGetEvent(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	ev, err := s.events.Get(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(convertEvent(ev, false))
}

func (s *Server) handleRegister(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	var req registerRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "bad request body")
		}
	}
	err = s.events.Register(c.Context(), currentUser(c).ID, id, req.Answers)
	if err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusCreated)
}

func (s *Server) handleFeedback(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	var req feedbackRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "bad request body")
	}
	err = s.events.Feedback(c.Context(), currentUser(c).ID, id, req.Rating)
	if err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (s *Server) handleRecommendations(c *fiber.Ctx) error {
	limit := c.QueryInt("limit")
	events, err := s.events.Recommendations(c.Context(), currentUser(c).ID, limit)
	if err != nil {
		return err
	}
	return c.JSON(convertEvents(events))
}

func (s *Server) handleCalendar(c *fiber.Ctx) error {
	events, err := s.events.Calendar(c.Context(), currentUser(c).ID)
	if err != nil {
		return err
	}
	return c.JSON(convertEvents(events))
}

func convertEvents(events []domain.Event) []eventResponse {
	resp := make([]eventResponse, 0, len(events))
	for _, ev := range events {
		resp = append(resp, convertEvent(ev, false))
	}
	return resp
}
