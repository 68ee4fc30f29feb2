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

func (s *Storage) GetUser(ctx context.Context, id uuid.UUID) (domain.User, error) {
	var dbUser model.Users
	err := table.Users.
		SELECT(table.Users.AllColumns).
		FROM(table.Users).
		WHERE(table.Users.ID.EQ(sqlite.UUID(id))).
		QueryContext(ctx, s.db, &dbUser)
	if err != nil {
		return domain.User{}, translate(err)
	}
	return convertUserToDomain(dbUser)
}

func (s *Storage) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	var dbUser model.Users
	err := table.Users.
		SELECT(table.Users.AllColumns).
		FROM(table.Users).
		WHERE(table.Users.Email.EQ(sqlite.String(email))).
		QueryContext(ctx, s.db, &dbUser)
	if err != nil {
		return domain.User{}, translate(err)
	}
	return convertUserToDomain(dbUser)
}

func (s *Storage) ListUsers(ctx context.Context) ([]domain.User, error) {
	var dbUsers []model.Users
	err := table.Users.
		SELECT(table.Users.AllColumns).
		FROM(table.Users).
		ORDER_BY(table.Users.CreatedAt.ASC(), table.Users.ID.ASC()).
		QueryContext(ctx, s.db, &dbUsers)
	if err != nil {
		return nil, translate(err)
	}
	converted := make([]domain.User, 0, len(dbUsers))
	for _, dbUser := range dbUsers {
		u, err := convertUserToDomain(dbUser)
		if err != nil {
			return nil, err
		}
		converted = append(converted, u)
	}
	return converted, nil
}

func (s *Storage) CreateUser(ctx context.Context, user domain.User) (domain.User, error) {
	_, err := table.Users.
		INSERT(table.Users.AllColumns).
		MODEL(convertUserFromDomain(user)).
		ExecContext(ctx, s.db)
	if err != nil {
		return domain.User{}, translate(err)
	}
	return user, nil
}

func (s *Storage) UpdateUser(ctx context.Context, user domain.User) error {
	res, err := table.Users.
		UPDATE(table.Users.MutableColumns).
		MODEL(convertUserFromDomain(user)).
		WHERE(table.Users.ID.EQ(sqlite.UUID(user.ID))).
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
