package domain

import (
	"errors"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/google/uuid"
)

type Role string

const (
	RolePresident              Role = "president"
	RoleVicePresident          Role = "vice president"
	RoleGeneralSecretary       Role = "general secretary"
	RoleDeputyGeneralSecretary Role = "deputy general secretary"
	RoleSecretary              Role = "secretary"
	RoleConvener               Role = "convener"
	RoleOverallCoordinator     Role = "overall coordinator"

	RoleCoordinator Role = "coordinator"
	RoleExecutive   Role = "executive"
)

// headRoles is the closed set of organization-wide leadership roles.
// Membership here, not any substring heuristic, is what grants
// team-management privilege.
var headRoles = mapset.NewSet(
	RolePresident,
	RoleVicePresident,
	RoleGeneralSecretary,
	RoleDeputyGeneralSecretary,
	RoleSecretary,
	RoleConvener,
	RoleOverallCoordinator,
)

var memberRoles = mapset.NewSet(
	RoleCoordinator,
	RoleExecutive,
)

func (r Role) IsHead() bool {
	return headRoles.Contains(r)
}

func (r Role) Valid() bool {
	return headRoles.Contains(r) || memberRoles.Contains(r)
}

var ErrUnknownRole = errors.New("unknown role")

func ParseRole(s string) (Role, error) {
	r := Role(strings.Join(strings.Fields(strings.ToLower(s)), " "))
	if !r.Valid() {
		return "", ErrUnknownRole
	}
	return r, nil
}

// RoleAssignment ties a user to one role in one organization. A user holds at
// most one assignment per (user, org name, role).
type RoleAssignment struct {
	ID     uuid.UUID
	UserID uuid.UUID
	Org    OrgRef
	Role   Role
}
