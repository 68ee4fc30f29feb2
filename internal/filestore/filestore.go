// Package filestore persists uploaded files under generated names so client
// file names never touch the filesystem.
package filestore

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var ErrBadExtension = errors.New("bad file extension")

// allowed upload types; everything an event poster realistically is.
var allowedExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".webp": true,
	".pdf":  true,
}

type Store struct {
	dir string
	log *logrus.Entry
}

func New(l *logrus.Logger, dir string) (*Store, error) {
	err := os.MkdirAll(dir, 0o755)
	if err != nil {
		return nil, err
	}
	return &Store{
		dir: dir,
		log: l.WithField("from", "filestore"),
	}, nil
}

// Save writes data under a fresh uuid name with the given extension and
// returns the stored file name.
func (s *Store) Save(data []byte, ext string) (string, error) {
	ext = strings.ToLower(ext)
	if !allowedExts[ext] {
		return "", ErrBadExtension
	}
	name := uuid.New().String() + ext
	err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644)
	if err != nil {
		return "", err
	}
	s.log.WithField("file", name).Debug("stored upload")
	return name, nil
}

// Dir is the directory uploads live in; the web layer serves it statically.
func (s *Store) Dir() string {
	return s.dir
}
