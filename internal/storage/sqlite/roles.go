package sqlite

import (
	"context"

	"github.com/go-jet/jet/v2/sqlite"
	"github.com/google/uuid"

	"campushub/gen/model"
	"campushub/gen/table"
	"campushub/internal/domain"
	"campushub/internal/storage"
)

func (s *Storage) ListRolesByUser(ctx context.Context, userID uuid.UUID) ([]domain.RoleAssignment, error) {
	var dbRoles []model.AuthRoles
	err := table.AuthRoles.
		SELECT(table.AuthRoles.AllColumns).
		FROM(table.AuthRoles).
		WHERE(table.AuthRoles.UserID.EQ(sqlite.UUID(userID))).
		ORDER_BY(table.AuthRoles.OrgName.ASC()).
		QueryContext(ctx, s.db, &dbRoles)
	if err != nil {
		return nil, translate(err)
	}
	return convertRolesToDomain(dbRoles)
}

func (s *Storage) ListRolesByOrg(ctx context.Context, orgName string) ([]domain.RoleAssignment, error) {
	var dbRoles []model.AuthRoles
	err := table.AuthRoles.
		SELECT(table.AuthRoles.AllColumns).
		FROM(table.AuthRoles).
		WHERE(table.AuthRoles.OrgName.EQ(sqlite.String(orgName))).
		ORDER_BY(table.AuthRoles.RoleName.ASC(), table.AuthRoles.ID.ASC()).
		QueryContext(ctx, s.db, &dbRoles)
	if err != nil {
		return nil, translate(err)
	}
	return convertRolesToDomain(dbRoles)
}

func (s *Storage) FindRole(ctx context.Context, userID uuid.UUID, orgName string) (domain.RoleAssignment, error) {
	var dbRole model.AuthRoles
	err := table.AuthRoles.
		SELECT(table.AuthRoles.AllColumns).
		FROM(table.AuthRoles).
		WHERE(table.AuthRoles.UserID.EQ(sqlite.UUID(userID)).
			AND(table.AuthRoles.OrgName.EQ(sqlite.String(orgName)))).
		QueryContext(ctx, s.db, &dbRole)
	if err != nil {
		return domain.RoleAssignment{}, translate(err)
	}
	return convertRoleToDomain(dbRole)
}

// CreateRole relies on the (user_id, org_name, role_name) uniqueness
// constraint: two concurrent identical appointments race past the
// service-level existence check, and the second insert lands here
// with ErrDuplicate.
func (s *Storage) CreateRole(ctx context.Context, a domain.RoleAssignment) error {
	_, err := table.AuthRoles.
		INSERT(table.AuthRoles.AllColumns).
		MODEL(convertRoleFromDomain(a)).
		ExecContext(ctx, s.db)
	return translate(err)
}

func (s *Storage) DeleteRole(ctx context.Context, id uuid.UUID) error {
	res, err := table.AuthRoles.
		DELETE().
		WHERE(table.AuthRoles.ID.EQ(sqlite.UUID(id))).
		ExecContext(ctx, s.db)
	if err != nil {
		return translate(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return storage.ErrNotFound
	}
	return nil
}
