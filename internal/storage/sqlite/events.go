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

func (s *Storage) ListEvents(ctx context.Context, filter storage.EventFilter) ([]domain.Event, error) {
	cond := sqlite.Bool(true)
	if filter.OrgType != "" {
		cond = cond.AND(table.Events.OrgType.EQ(sqlite.String(string(filter.OrgType))))
	}
	if filter.OrgName != "" {
		cond = cond.AND(table.Events.OrgName.EQ(sqlite.String(filter.OrgName)))
	}
	if filter.Search != "" {
		pattern := sqlite.String("%" + filter.Search + "%")
		cond = cond.AND(table.Events.Name.LIKE(pattern).
			OR(table.Events.Description.LIKE(pattern)))
	}
	if !filter.IncludePrivate {
		cond = cond.AND(table.Events.IsPrivate.IS_FALSE())
	}

	stmt := table.Events.
		SELECT(table.Events.AllColumns).
		FROM(table.Events).
		WHERE(cond).
		ORDER_BY(table.Events.Date.ASC(), table.Events.ID.ASC())
	if filter.Limit > 0 {
		stmt = stmt.LIMIT(int64(filter.Limit))
		if filter.Offset > 0 {
			stmt = stmt.OFFSET(int64(filter.Offset))
		}
	}

	var dbEvents []model.Events
	err := stmt.QueryContext(ctx, s.db, &dbEvents)
	if err != nil {
		return nil, translate(err)
	}
	converted := make([]domain.Event, 0, len(dbEvents))
	for _, dbEvent := range dbEvents {
		ev, err := convertEventToDomain(dbEvent)
		if err != nil {
			return nil, err
		}
		converted = append(converted, ev)
	}
	return converted, nil
}

func (s *Storage) GetEvent(ctx context.Context, id uuid.UUID) (domain.Event, error) {
	var dbEvent model.Events
	err := table.Events.
		SELECT(table.Events.AllColumns).
		FROM(table.Events).
		WHERE(table.Events.ID.EQ(sqlite.UUID(id))).
		QueryContext(ctx, s.db, &dbEvent)
	if err != nil {
		return domain.Event{}, translate(err)
	}
	return convertEventToDomain(dbEvent)
}

func (s *Storage) CreateEvent(ctx context.Context, ev domain.Event) (domain.Event, error) {
	dbEvent, err := convertEventFromDomain(ev)
	if err != nil {
		return domain.Event{}, err
	}
	_, err = table.Events.
		INSERT(table.Events.AllColumns).
		MODEL(dbEvent).
		ExecContext(ctx, s.db)
	if err != nil {
		return domain.Event{}, translate(err)
	}
	return ev, nil
}

func (s *Storage) CountEventsByOrg(ctx context.Context, orgName string) (int, error) {
	var dest struct {
		Count int64
	}
	err := table.Events.
		SELECT(sqlite.COUNT(table.Events.ID).AS("count")).
		FROM(table.Events).
		WHERE(table.Events.OrgName.EQ(sqlite.String(orgName))).
		QueryContext(ctx, s.db, &dest)
	if err != nil {
		return 0, translate(err)
	}
	return int(dest.Count), nil
}
