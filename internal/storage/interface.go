package storage

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"campushub/internal/domain"
)

var (
	ErrNotFound = errors.New("not found")
	// ErrDuplicate is returned when an insert violates a uniqueness
	// constraint. The constraint is the backstop for the check-then-insert
	// races on registrations and role assignments; callers translate this
	// into the matching domain error.
	ErrDuplicate = errors.New("duplicate key")
)

// EventFilter narrows an event listing. Org names are expected in canonical
// form (normalize.OrgName). Results are ordered by date then id so the
// catalog order is deterministic.
type EventFilter struct {
	OrgType        domain.OrgType
	OrgName        string
	Search         string
	IncludePrivate bool
	Limit          int
	Offset         int
}

type UserStorage interface {
	GetUser(ctx context.Context, id uuid.UUID) (domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
	CreateUser(ctx context.Context, user domain.User) (domain.User, error)
	UpdateUser(ctx context.Context, user domain.User) error
}

type RoleStorage interface {
	ListRolesByUser(ctx context.Context, userID uuid.UUID) ([]domain.RoleAssignment, error)
	ListRolesByOrg(ctx context.Context, orgName string) ([]domain.RoleAssignment, error)
	FindRole(ctx context.Context, userID uuid.UUID, orgName string) (domain.RoleAssignment, error)
	CreateRole(ctx context.Context, a domain.RoleAssignment) error
	DeleteRole(ctx context.Context, id uuid.UUID) error
}

type EventStorage interface {
	ListEvents(ctx context.Context, filter EventFilter) ([]domain.Event, error)
	GetEvent(ctx context.Context, id uuid.UUID) (domain.Event, error)
	CreateEvent(ctx context.Context, ev domain.Event) (domain.Event, error)
	CountEventsByOrg(ctx context.Context, orgName string) (int, error)
}

type RegistrationStorage interface {
	CreateRegistration(ctx context.Context, reg domain.Registration) (domain.Registration, error)
	ListRegistrationsByUser(ctx context.Context, userID uuid.UUID) ([]domain.Registration, error)
	ListRegistrationsByEvent(ctx context.Context, eventID uuid.UUID) ([]domain.Registration, error)
	SetRating(ctx context.Context, userID, eventID uuid.UUID, rating int) error
	CountRegistrationsByOrg(ctx context.Context, orgName string) (int, error)
}
