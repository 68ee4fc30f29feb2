package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"campushub/internal/authz"
	"campushub/internal/domain"
	"campushub/internal/normalize"
	"campushub/internal/storage"
)

// Dashboard aggregates an organization's activity for its managers.
type Dashboard struct {
	Org           domain.OrgRef
	Role          domain.Role
	Events        int
	Registrations int
}

// TeamMember pairs a user with the role they hold in the organization.
type TeamMember struct {
	User domain.User
	Role domain.Role
}

// Registrant pairs a registered user with their registration record.
type Registrant struct {
	User         domain.User
	Registration domain.Registration
}

type OrgService struct {
	users  storage.UserStorage
	roles  storage.RoleStorage
	events storage.EventStorage
	regs   storage.RegistrationStorage
	log    *logrus.Entry
	notify func(domain.Event)
}

func NewOrgService(
	l *logrus.Logger,
	users storage.UserStorage,
	roles storage.RoleStorage,
	events storage.EventStorage,
	regs storage.RegistrationStorage,
) *OrgService {
	return &OrgService{
		users:  users,
		roles:  roles,
		events: events,
		regs:   regs,
		log:    l.WithField("from", "org-service"),
	}
}

// OnEventCreated registers a callback invoked after every successful event
// creation. Used to fan announcements out to the bot. Not safe to call after
// the service is in use.
func (s *OrgService) OnEventCreated(fn func(domain.Event)) {
	s.notify = fn
}

// resolve finds the caller's standing in the named organization, or in their
// first organization when none is named.
func (s *OrgService) resolve(ctx context.Context, callerID uuid.UUID, orgName string) (domain.RoleAssignment, error) {
	assignments, err := s.roles.ListRolesByUser(ctx, callerID)
	if err != nil {
		return domain.RoleAssignment{}, err
	}
	if orgName == "" {
		return authz.First(assignments)
	}
	return authz.Resolve(assignments, orgName)
}

func (s *OrgService) Dashboard(ctx context.Context, callerID uuid.UUID, orgName string) (Dashboard, error) {
	assignment, err := s.resolve(ctx, callerID, orgName)
	if err != nil {
		return Dashboard{}, err
	}
	eventCount, err := s.events.CountEventsByOrg(ctx, assignment.Org.Name)
	if err != nil {
		return Dashboard{}, err
	}
	regCount, err := s.regs.CountRegistrationsByOrg(ctx, assignment.Org.Name)
	if err != nil {
		return Dashboard{}, err
	}
	return Dashboard{
		Org:           assignment.Org,
		Role:          assignment.Role,
		Events:        eventCount,
		Registrations: regCount,
	}, nil
}

func (s *OrgService) Team(ctx context.Context, callerID uuid.UUID, orgName string) ([]TeamMember, error) {
	assignment, err := s.resolve(ctx, callerID, orgName)
	if err != nil {
		return nil, err
	}
	assignments, err := s.roles.ListRolesByOrg(ctx, assignment.Org.Name)
	if err != nil {
		return nil, err
	}
	team := make([]TeamMember, 0, len(assignments))
	for _, a := range assignments {
		user, err := s.users.GetUser(ctx, a.UserID)
		if err != nil {
			return nil, err
		}
		team = append(team, TeamMember{User: user, Role: a.Role})
	}
	return team, nil
}

// CreateEvent publishes an event on behalf of the caller's organization. Any
// role in the org suffices; the event's org is always the caller's, never
// client input.
func (s *OrgService) CreateEvent(ctx context.Context, caller domain.User, orgName string, ev domain.Event) (domain.Event, error) {
	assignment, err := s.resolve(ctx, caller.ID, orgName)
	if err != nil {
		return domain.Event{}, err
	}
	ev.ID = uuid.New()
	ev.Org = assignment.Org
	ev.CreatedAt = time.Now().UTC()
	if ev.ManagerEmail == "" {
		ev.ManagerEmail = caller.Email
	}
	created, err := s.events.CreateEvent(ctx, ev)
	if err != nil {
		return domain.Event{}, err
	}
	s.log.WithField("event", created.Name).WithField("org", created.Org.Name).Info("event created")
	if s.notify != nil {
		s.notify(created)
	}
	return created, nil
}

// Appoint grants a member role to the user with the given email. Only heads
// may appoint, and never into the head set.
func (s *OrgService) Appoint(ctx context.Context, callerID uuid.UUID, orgName, targetEmail string, role domain.Role) error {
	assignment, err := s.resolve(ctx, callerID, orgName)
	if err != nil {
		return err
	}
	if err := authz.CheckAppoint(assignment, role); err != nil {
		return err
	}
	target, err := s.users.GetUserByEmail(ctx, targetEmail)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	_, err = s.roles.FindRole(ctx, target.ID, assignment.Org.Name)
	if err == nil {
		return ErrDuplicateAssignment
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return err
	}
	err = s.roles.CreateRole(ctx, domain.RoleAssignment{
		ID:     uuid.New(),
		UserID: target.ID,
		Org:    assignment.Org,
		Role:   role,
	})
	if err != nil {
		if errors.Is(err, storage.ErrDuplicate) {
			return ErrDuplicateAssignment
		}
		return err
	}
	return nil
}

// Remove revokes the target user's role in the caller's organization.
func (s *OrgService) Remove(ctx context.Context, callerID uuid.UUID, orgName string, targetUserID uuid.UUID) error {
	assignment, err := s.resolve(ctx, callerID, orgName)
	if err != nil {
		return err
	}
	target, err := s.roles.FindRole(ctx, targetUserID, assignment.Org.Name)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	if err := authz.CheckRemove(assignment, target); err != nil {
		return err
	}
	return s.roles.DeleteRole(ctx, target.ID)
}

// Registrants returns who signed up for one of the org's events, for the
// registration export.
func (s *OrgService) Registrants(ctx context.Context, callerID, eventID uuid.UUID, orgName string) (domain.Event, []Registrant, error) {
	assignment, err := s.resolve(ctx, callerID, orgName)
	if err != nil {
		return domain.Event{}, nil, err
	}
	ev, err := s.events.GetEvent(ctx, eventID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return domain.Event{}, nil, ErrEventNotFound
		}
		return domain.Event{}, nil, err
	}
	if !normalize.Equal(ev.Org.Name, assignment.Org.Name) {
		return domain.Event{}, nil, authz.ErrNotAuthorized
	}
	regs, err := s.regs.ListRegistrationsByEvent(ctx, eventID)
	if err != nil {
		return domain.Event{}, nil, err
	}
	registrants := make([]Registrant, 0, len(regs))
	for _, reg := range regs {
		user, err := s.users.GetUser(ctx, reg.UserID)
		if err != nil {
			return domain.Event{}, nil, err
		}
		registrants = append(registrants, Registrant{User: user, Registration: reg})
	}
	return ev, registrants, nil
}

// AuthorizeRole is the superuser path for granting any role, head roles
// included. This is how an organization gets its first head.
func (s *OrgService) AuthorizeRole(ctx context.Context, caller domain.User, targetEmail string, org domain.OrgRef, role domain.Role) error {
	if !caller.Superuser {
		return authz.ErrPermissionDenied
	}
	target, err := s.users.GetUserByEmail(ctx, targetEmail)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	org.Name = normalize.OrgName(org.Name)
	_, err = s.roles.FindRole(ctx, target.ID, org.Name)
	if err == nil {
		return ErrDuplicateAssignment
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return err
	}
	err = s.roles.CreateRole(ctx, domain.RoleAssignment{
		ID:     uuid.New(),
		UserID: target.ID,
		Org:    org,
		Role:   role,
	})
	if err != nil {
		if errors.Is(err, storage.ErrDuplicate) {
			return ErrDuplicateAssignment
		}
		return err
	}
	s.log.WithField("org", org.Name).WithField("role", string(role)).Info("role authorized")
	return nil
}

// ListUsers is superuser-only.
func (s *OrgService) ListUsers(ctx context.Context, caller domain.User) ([]domain.User, error) {
	if !caller.Superuser {
		return nil, authz.ErrPermissionDenied
	}
	return s.users.ListUsers(ctx)
}
