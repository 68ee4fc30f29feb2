// Package authz decides, for a caller's set of role assignments and a target
// organization, whether an action is permitted. The functions are pure: they
// never touch storage and cost O(len(assignments)) per decision.
package authz

import (
	"errors"

	"campushub/internal/domain"
	"campushub/internal/normalize"
)

var (
	// ErrNotAuthorized: the caller has no standing in the organization at all.
	ErrNotAuthorized = errors.New("no role in this organization")
	// ErrPermissionDenied: the caller has standing but insufficient privilege.
	// Distinct from ErrNotAuthorized; callers render them differently.
	ErrPermissionDenied = errors.New("insufficient privilege")
	ErrSelfRemoval      = errors.New("cannot remove yourself")
)

// Resolve finds the caller's assignment in the given organization. Names are
// compared in canonical form, so "DevClub" resolves against "devclub".
func Resolve(assignments []domain.RoleAssignment, orgName string) (domain.RoleAssignment, error) {
	key := normalize.OrgName(orgName)
	for _, a := range assignments {
		if normalize.OrgName(a.Org.Name) == key {
			return a, nil
		}
	}
	return domain.RoleAssignment{}, ErrNotAuthorized
}

// First returns the caller's default assignment when no organization was
// named: the first one held, or ErrNotAuthorized for users who manage
// nothing.
func First(assignments []domain.RoleAssignment) (domain.RoleAssignment, error) {
	if len(assignments) == 0 {
		return domain.RoleAssignment{}, ErrNotAuthorized
	}
	return assignments[0], nil
}

// RequireHead succeeds only if the assignment's role belongs to the closed
// head set.
func RequireHead(a domain.RoleAssignment) error {
	if !a.Role.IsHead() {
		return ErrPermissionDenied
	}
	return nil
}

// CheckAppoint verifies that a head may assign the target role inside their
// organization. Heads never mint peer heads: head-level target roles are
// rejected regardless of who asks.
func CheckAppoint(head domain.RoleAssignment, target domain.Role) error {
	if err := RequireHead(head); err != nil {
		return err
	}
	if target.IsHead() {
		return ErrPermissionDenied
	}
	return nil
}

// CheckRemove verifies that a head may revoke the target assignment. A head
// may not remove themself through this path, and heads cannot depose other
// heads; both require the superuser override.
func CheckRemove(caller, target domain.RoleAssignment) error {
	if err := RequireHead(caller); err != nil {
		return err
	}
	if target.UserID == caller.UserID {
		return ErrSelfRemoval
	}
	if target.Role.IsHead() {
		return ErrPermissionDenied
	}
	return nil
}
