package sqlite

import (
	"database/sql"
	"errors"

	"github.com/go-jet/jet/v2/qrm"
	sqlite3 "github.com/mattn/go-sqlite3"
	"github.com/sirupsen/logrus"

	migrations "campushub/internal/migrate"
	"campushub/internal/storage"
)

type Storage struct {
	db  *sql.DB
	log *logrus.Entry
}

var _ storage.UserStorage = (*Storage)(nil)
var _ storage.RoleStorage = (*Storage)(nil)
var _ storage.EventStorage = (*Storage)(nil)
var _ storage.RegistrationStorage = (*Storage)(nil)

func New(l *logrus.Logger, fileName string) (*Storage, error) {
	log := l.WithField("from", "storage")
	db, err := sql.Open("sqlite3", buildSource(fileName))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	err = migrations.UpServerDB(db)
	if err != nil {
		return nil, err
	}

	err = db.Ping()
	if err != nil {
		return nil, err
	}
	log.Info("storage connected")
	return &Storage{
		db:  db,
		log: log,
	}, nil
}

func (s *Storage) Close() error {
	return s.db.Close()
}

func buildSource(fileName string) string {
	// Cascade deletes depend on foreign keys, which sqlite leaves off
	// unless asked.
	return "file:" + fileName + "?cache=shared&_foreign_keys=on"
}

// translate maps driver and qrm errors onto the storage sentinels so
// constraint violations never leak upward raw.
func translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, qrm.ErrNoRows) {
		return storage.ErrNotFound
	}
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) && sqliteErr.Code == sqlite3.ErrConstraint {
		return storage.ErrDuplicate
	}
	return err
}
