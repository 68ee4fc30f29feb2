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

// CreateRegistration leans on the (user_id, event_id) uniqueness
// constraint to reject double signups that race past the service check.
func (s *Storage) CreateRegistration(ctx context.Context, reg domain.Registration) (domain.Registration, error) {
	dbReg, err := convertRegistrationFromDomain(reg)
	if err != nil {
		return domain.Registration{}, err
	}
	_, err = table.Registrations.
		INSERT(table.Registrations.AllColumns).
		MODEL(dbReg).
		ExecContext(ctx, s.db)
	if err != nil {
		return domain.Registration{}, translate(err)
	}
	return reg, nil
}

func (s *Storage) ListRegistrationsByUser(ctx context.Context, userID uuid.UUID) ([]domain.Registration, error) {
	var dbRegs []model.Registrations
	err := table.Registrations.
		SELECT(table.Registrations.AllColumns).
		FROM(table.Registrations).
		WHERE(table.Registrations.UserID.EQ(sqlite.UUID(userID))).
		ORDER_BY(table.Registrations.RegisteredAt.ASC(), table.Registrations.ID.ASC()).
		QueryContext(ctx, s.db, &dbRegs)
	if err != nil {
		return nil, translate(err)
	}
	return convertRegistrationsToDomain(dbRegs)
}

func (s *Storage) ListRegistrationsByEvent(ctx context.Context, eventID uuid.UUID) ([]domain.Registration, error) {
	var dbRegs []model.Registrations
	err := table.Registrations.
		SELECT(table.Registrations.AllColumns).
		FROM(table.Registrations).
		WHERE(table.Registrations.EventID.EQ(sqlite.UUID(eventID))).
		ORDER_BY(table.Registrations.RegisteredAt.ASC(), table.Registrations.ID.ASC()).
		QueryContext(ctx, s.db, &dbRegs)
	if err != nil {
		return nil, translate(err)
	}
	return convertRegistrationsToDomain(dbRegs)
}

func (s *Storage) SetRating(ctx context.Context, userID, eventID uuid.UUID, rating int) error {
	res, err := table.Registrations.
		UPDATE(table.Registrations.Rating).
		SET(sqlite.Int(int64(rating))).
		WHERE(table.Registrations.UserID.EQ(sqlite.UUID(userID)).
			AND(table.Registrations.EventID.EQ(sqlite.UUID(eventID)))).
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

func (s *Storage) CountRegistrationsByOrg(ctx context.Context, orgName string) (int, error) {
	var dest struct {
		Count int64
	}
	err := table.Registrations.
		SELECT(sqlite.COUNT(table.Registrations.ID).AS("count")).
		FROM(table.Registrations.
			INNER_JOIN(table.Events, table.Events.ID.EQ(table.Registrations.EventID))).
		WHERE(table.Events.OrgName.EQ(sqlite.String(orgName))).
		QueryContext(ctx, s.db, &dest)
	if err != nil {
		return 0, translate(err)
	}
	return int(dest.Count), nil
}
