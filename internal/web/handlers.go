package web

import (
	"github.com/gofiber/fiber/v2"

	"campushub/internal/domain"
	"campushub/internal/normalize"
)

func (s *Server) handleLogin(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "bad request body")
	}
	if err := req.Validate(); err != nil {
		return err
	}
	user, token, err := s.auth.Login(c.Context(), req.Code)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"token": token,
		"user":  convertUser(user),
	})
}

func (s *Server) handleMe(c *fiber.Ctx) error {
	return c.JSON(convertUser(currentUser(c)))
}

func (s *Server) handleUpdateProfile(c *fiber.Ctx) error {
	var req updateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "bad request body")
	}
	user, err := s.users.UpdateProfile(c.Context(), currentUser(c).ID, req.convert())
	if err != nil {
		return err
	}
	return c.JSON(convertUser(user))
}

func (s *Server) handleAuthorizeRole(c *fiber.Ctx) error {
	var req authorizeRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "bad request body")
	}
	if err := req.Validate(); err != nil {
		return err
	}
	orgType, err := domain.ParseOrgType(req.OrgType)
	if err != nil {
		return err
	}
	role, err := domain.ParseRole(req.Role)
	if err != nil {
		return err
	}
	err = s.orgs.AuthorizeRole(c.Context(), currentUser(c), req.Email, domain.OrgRef{
		Name: normalize.OrgName(req.Org),
		Type: orgType,
	}, role)
	if err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusCreated)
}

func (s *Server) handleListUsers(c *fiber.Ctx) error {
	users, err := s.orgs.ListUsers(c.Context(), currentUser(c))
	if err != nil {
		return err
	}
	resp := make([]userResponse, 0, len(users))
	for _, user := range users {
		resp = append(resp, convertUser(user))
	}
	return c.JSON(resp)
}
