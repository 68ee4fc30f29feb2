// Package web is the JSON API. Handlers stay thin: decode, validate, call a
// service, encode; the error handler turns sentinel errors into statuses.
package web

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	authservice "campushub/auth/service"
	"campushub/internal/authz"
	"campushub/internal/config"
	"campushub/internal/domain"
	"campushub/internal/filestore"
	"campushub/internal/service"
	"campushub/internal/web/webpath"
)

const userKey = "user"

type Server struct {
	auth   *authservice.Service
	events *service.EventService
	users  *service.UserService
	orgs   *service.OrgService
	files  *filestore.Store
	app    *fiber.App
	cfg    config.Server
	log    *logrus.Entry
}

func New(
	l *logrus.Logger,
	cfg config.Server,
	auth *authservice.Service,
	events *service.EventService,
	users *service.UserService,
	orgs *service.OrgService,
	files *filestore.Store,
) *Server {
	server := Server{
		auth:   auth,
		events: events,
		users:  users,
		orgs:   orgs,
		files:  files,
		cfg:    cfg,
		log:    l.WithField("from", "web"),
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: server.handleError,
	})

	app.Post(webpath.ApiLogin, server.handleLogin)
	app.Get(webpath.ApiMe, server.requireAuth, server.handleMe)
	app.Patch(webpath.ApiProfile, server.requireAuth, server.handleUpdateProfile)

	app.Get(webpath.ApiEvents, server.optionalAuth, server.handleListEvents)
	app.Get(webpath.ApiEventsCalendar, server.requireAuth, server.handleCalendar)
	app.Get(webpath.ApiEventsRecommendations, server.requireAuth, server.handleRecommendations)
	app.Get(webpath.ApiEvent, server.optionalAuth, server.handleGetEvent)
	app.Post(webpath.ApiEventRegister, server.requireAuth, server.handleRegister)
	app.Post(webpath.ApiEventFeedback, server.requireAuth, server.handleFeedback)

	app.Get(webpath.ApiOrgDashboard, server.requireAuth, server.handleDashboard)
	app.Post(webpath.ApiOrgEvents, server.requireAuth, server.handleCreateEvent)
	app.Get(webpath.ApiOrgExport, server.requireAuth, server.handleExportRegistrations)
	app.Get(webpath.ApiOrgTeam, server.requireAuth, server.handleTeam)
	app.Post(webpath.ApiOrgTeam, server.requireAuth, server.handleAppoint)
	app.Delete(webpath.ApiOrgMember, server.requireAuth, server.handleRemoveMember)
	app.Post(webpath.ApiOrgUpload, server.requireAuth, server.handleUpload)

	app.Post(webpath.ApiAdminRoles, server.requireAuth, server.handleAuthorizeRole)
	app.Get(webpath.ApiAdminUsers, server.requireAuth, server.handleListUsers)

	app.Static(webpath.Uploads, files.Dir())

	server.app = app
	return &server
}

func (s *Server) Serve() error {
	addr := s.cfg.Host + ":" + strconv.Itoa(s.cfg.Port)
	if s.cfg.CertFile != "" && s.cfg.KeyFile != "" {
		return s.app.ListenTLS(addr, s.cfg.CertFile, s.cfg.KeyFile)
	}
	return s.app.Listen(addr)
}

func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

// App exposes the fiber app for tests.
func (s *Server) App() *fiber.App {
	return s.app
}

func (s *Server) requireAuth(c *fiber.Ctx) error {
	user, err := s.auth.Auth(c.Context(), bearerToken(c))
	if err != nil {
		return err
	}
	c.Context().SetUserValue(userKey, user)
	return c.Next()
}

// optionalAuth attaches the user when a valid token is present and stays
// silent otherwise; listings work anonymously.
func (s *Server) optionalAuth(c *fiber.Ctx) error {
	user, err := s.auth.Auth(c.Context(), bearerToken(c))
	if err == nil {
		c.Context().SetUserValue(userKey, user)
	}
	return c.Next()
}

func bearerToken(c *fiber.Ctx) string {
	header := c.Get(fiber.HeaderAuthorization)
	return strings.TrimPrefix(header, "Bearer ")
}

func currentUser(c *fiber.Ctx) domain.User {
	user, _ := c.Context().UserValue(userKey).(domain.User)
	return user
}

func (s *Server) handleError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, authservice.ErrNotAuthorized),
		errors.Is(err, authz.ErrNotAuthorized):
		status = fiber.StatusUnauthorized
	case errors.Is(err, authservice.ErrForbidden),
		errors.Is(err, authz.ErrPermissionDenied):
		status = fiber.StatusForbidden
	case errors.Is(err, service.ErrEventNotFound),
		errors.Is(err, service.ErrUserNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, service.ErrAlreadyRegistered),
		errors.Is(err, service.ErrDuplicateAssignment):
		status = fiber.StatusConflict
	case errors.Is(err, service.ErrInvalidRating),
		errors.Is(err, service.ErrMissingAnswer),
		errors.Is(err, service.ErrNotRegistered),
		errors.Is(err, authz.ErrSelfRemoval),
		errors.Is(err, domain.ErrUnknownRole),
		errors.Is(err, domain.ErrUnknownOrgType),
		errors.Is(err, filestore.ErrBadExtension),
		isValidationError(err):
		status = fiber.StatusBadRequest
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		status = fiberErr.Code
	}
	if status == fiber.StatusInternalServerError {
		s.log.WithError(err).Error("request failed")
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}

func isValidationError(err error) bool {
	return errors.Is(err, ErrMissingCode) ||
		errors.Is(err, ErrMissingName) ||
		errors.Is(err, ErrMissingDate) ||
		errors.Is(err, ErrMissingEmail) ||
		errors.Is(err, ErrBadFormField)
}

func parseID(c *fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params(name))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "bad id")
	}
	return id, nil
}
