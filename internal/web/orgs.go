package web

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"

	"github.com/gofiber/fiber/v2"

	"campushub/internal/domain"
	"campushub/internal/export"
	"campushub/internal/web/webpath"
)

func (s *Server) handleDashboard(c *fiber.Ctx) error {
	dash, err := s.orgs.Dashboard(c.Context(), currentUser(c).ID, c.Query("org"))
	if err != nil {
		return err
	}
	return c.JSON(dashboardResponse{
		Org:           convertOrg(dash.Org),
		Role:          string(dash.Role),
		Events:        dash.Events,
		Registrations: dash.Registrations,
	})
}

func (s *Server) handleCreateEvent(c *fiber.Ctx) error {
	var req createEventRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "bad request body")
	}
	if err := req.Validate(); err != nil {
		return err
	}
	created, err := s.orgs.CreateEvent(c.Context(), currentUser(c), req.Org, req.convert())
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(convertEvent(created, false))
}

func (s *Server) handleTeam(c *fiber.Ctx) error {
	team, err := s.orgs.Team(c.Context(), currentUser(c).ID, c.Query("org"))
	if err != nil {
		return err
	}
	resp := make([]teamMemberResponse, 0, len(team))
	for _, member := range team {
		resp = append(resp, teamMemberResponse{
			User: convertUser(member.User),
			Role: string(member.Role),
		})
	}
	return c.JSON(resp)
}

func (s *Server) handleAppoint(c *fiber.Ctx) error {
	var req appointRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "bad request body")
	}
	if err := req.Validate(); err != nil {
		return err
	}
	role, err := domain.ParseRole(req.Role)
	if err != nil {
		return err
	}
	err = s.orgs.Appoint(c.Context(), currentUser(c).ID, c.Query("org"), req.Email, role)
	if err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusCreated)
}

func (s *Server) handleRemoveMember(c *fiber.Ctx) error {
	targetID, err := parseID(c, "userId")
	if err != nil {
		return err
	}
	err = s.orgs.Remove(c.Context(), currentUser(c).ID, c.Query("org"), targetID)
	if err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (s *Server) handleExportRegistrations(c *fiber.Ctx) error {
	eventID, err := parseID(c, "id")
	if err != nil {
		return err
	}
	ev, registrants, err := s.orgs.Registrants(c.Context(), currentUser(c).ID, eventID, c.Query("org"))
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := export.Registrations(&buf, ev, registrants); err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", ev.Name+"-registrations.csv"))
	return c.Send(buf.Bytes())
}

func (s *Server) handleUpload(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "missing file")
	}
	file, err := fileHeader.Open()
	if err != nil {
		return err
	}
	defer file.Close()
	data, err := io.ReadAll(file)
	if err != nil {
		return err
	}
	name, err := s.files.Save(data, filepath.Ext(fileHeader.Filename))
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"url": webpath.Uploads + "/" + name,
	})
}
