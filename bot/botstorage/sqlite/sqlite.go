package sqlite

import (
	"database/sql"
	"errors"
	"time"

	"github.com/go-jet/jet/v2/sqlite"
	sqlite3 "github.com/mattn/go-sqlite3"
	"github.com/sirupsen/logrus"

	"campushub/bot/botstorage"
	dbmodel "campushub/bot/gen/model"
	"campushub/bot/gen/table"
	"campushub/bot/model"
	"campushub/internal/config"
	migrations "campushub/internal/migrate"
)

type Storage struct {
	db  *sql.DB
	log *logrus.Entry
}

var _ botstorage.BotStorage = (*Storage)(nil)

func New(l *logrus.Logger, cfg config.TgBot) (*Storage, error) {
	log := l.WithField("from", "bot-storage")
	db, err := sql.Open("sqlite3", buildSource(cfg.SqliteFile))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	err = migrations.UpBotDB(db)
	if err != nil {
		return nil, err
	}

	err = db.Ping()
	if err != nil {
		return nil, err
	}
	log.Info("bot storage connected")
	return &Storage{
		db:  db,
		log: log,
	}, nil
}

func buildSource(fileName string) string {
	return "file:" + fileName + "?cache=shared"
}

func (s *Storage) NewUser(user model.User) (model.User, error) {
	var dbUser dbmodel.BotUsers
	err := table.BotUsers.
		INSERT(table.BotUsers.AllColumns).
		MODEL(convertUserFromDomain(user)).
		RETURNING(table.BotUsers.AllColumns).
		Query(s.db, &dbUser)
	if err != nil {
		return model.User{}, err
	}
	return convertUserToDomain(dbUser), nil
}

type getUserModel struct {
	dbmodel.BotUsers
	Subscriptions []dbmodel.BotSubscriptions
}

func (s *Storage) GetUser(id int) (model.User, error) {
	var dest getUserModel
	err := table.BotUsers.
		SELECT(table.BotUsers.AllColumns, table.BotSubscriptions.AllColumns).
		FROM(table.BotUsers.
			LEFT_JOIN(table.BotSubscriptions, table.BotSubscriptions.UserID.EQ(table.BotUsers.ID)),
		).
		WHERE(table.BotUsers.ID.EQ(sqlite.Int(int64(id)))).
		Query(s.db, &dest)
	if err != nil {
		return model.User{}, err
	}
	return convertGetUserModelToDomain(dest), nil
}

func (s *Storage) ListUsers() ([]model.User, error) {
	var dest []getUserModel
	err := table.BotUsers.
		SELECT(table.BotUsers.AllColumns, table.BotSubscriptions.AllColumns).
		FROM(table.BotUsers.
			LEFT_JOIN(table.BotSubscriptions, table.BotSubscriptions.UserID.EQ(table.BotUsers.ID)),
		).
		Query(s.db, &dest)
	if err != nil {
		return nil, err
	}
	converted := make([]model.User, 0, len(dest))
	for i := range dest {
		converted = append(converted, convertGetUserModelToDomain(dest[i]))
	}
	return converted, nil
}

func (s *Storage) Subscribe(user model.User, event model.EventType) error {
	_, err := table.BotSubscriptions.
		INSERT(table.BotSubscriptions.AllColumns).
		MODEL(dbmodel.BotSubscriptions{
			UserID:    int32(user.ID),
			EventType: string(event),
		}).
		Exec(s.db)
	if err != nil {
		// resubscribing is fine
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.Code == sqlite3.ErrConstraint {
			return nil
		}
		return err
	}
	return nil
}

func (s *Storage) Unsubscribe(user model.User, event model.EventType) error {
	_, err := table.BotSubscriptions.
		DELETE().
		WHERE(
			table.BotSubscriptions.UserID.EQ(sqlite.Int(int64(user.ID))).
				AND(table.BotSubscriptions.EventType.EQ(sqlite.String(string(event)))),
		).Exec(s.db)
	return err
}

func (s *Storage) UpdateUserRole(user model.User) error {
	_, err := table.BotUsers.
		UPDATE(table.BotUsers.Role).
		SET(sqlite.Int(int64(user.Role))).
		WHERE(table.BotUsers.ID.EQ(sqlite.Int(int64(user.ID)))).
		Exec(s.db)
	return err
}

func (s *Storage) Log(user model.User, msg string) error {
	_, err := table.BotLogs.
		INSERT(table.BotLogs.UserID, table.BotLogs.Message, table.BotLogs.CreatedAt).
		MODEL(dbmodel.BotLogs{
			UserID:    int32(user.ID),
			Message:   msg,
			CreatedAt: time.Now(),
		}).
		Exec(s.db)
	return err
}

func convertUserFromDomain(user model.User) dbmodel.BotUsers {
	return dbmodel.BotUsers{
		ID:        int32(user.ID),
		FirstName: user.FirstName,
		Username:  user.Username,
		Role:      int32(user.Role),
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

func convertUserToDomain(user dbmodel.BotUsers) model.User {
	return model.User{
		ID:        int(user.ID),
		FirstName: user.FirstName,
		Username:  user.Username,
		Role:      model.UserRole(user.Role),
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

func convertGetUserModelToDomain(user getUserModel) model.User {
	converted := convertUserToDomain(user.BotUsers)
	for i := range user.Subscriptions {
		converted.Subscriptions = append(converted.Subscriptions, model.EventType(user.Subscriptions[i].EventType))
	}
	return converted
}
