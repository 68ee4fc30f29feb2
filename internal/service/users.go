package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"campushub/internal/domain"
	"campushub/internal/storage"
)

// ProfileUpdate carries the editable user fields. Nil means "leave as is",
// so clearing a field takes an explicit empty value.
type ProfileUpdate struct {
	Department *string
	Hostel     *string
	Year       *int
	PhotoURL   *string
	Interests  *[]string
}

type UserService struct {
	users storage.UserStorage
	log   *logrus.Entry
}

func NewUserService(l *logrus.Logger, users storage.UserStorage) *UserService {
	return &UserService{
		users: users,
		log:   l.WithField("from", "user-service"),
	}
}

func (s *UserService) Get(ctx context.Context, id uuid.UUID) (domain.User, error) {
	user, err := s.users.GetUser(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return domain.User{}, ErrUserNotFound
		}
		return domain.User{}, err
	}
	return user, nil
}

func (s *UserService) UpdateProfile(ctx context.Context, userID uuid.UUID, upd ProfileUpdate) (domain.User, error) {
	user, err := s.Get(ctx, userID)
	if err != nil {
		return domain.User{}, err
	}
	if upd.Department != nil {
		user.Department = *upd.Department
	}
	if upd.Hostel != nil {
		user.Hostel = *upd.Hostel
	}
	if upd.Year != nil {
		user.Year = *upd.Year
	}
	if upd.PhotoURL != nil {
		user.PhotoURL = *upd.PhotoURL
	}
	if upd.Interests != nil {
		user.Interests = dedupe(*upd.Interests)
	}
	err = s.users.UpdateUser(ctx, user)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return domain.User{}, ErrUserNotFound
		}
		return domain.User{}, err
	}
	return user, nil
}

// dedupe keeps first occurrences, preserving input order. Interests behave
// as a set but round-trip as a list.
func dedupe(ss []string) []string {
	seen := make(map[string]bool, len(ss))
	out := make([]string, 0, len(ss))
	for _, s := range ss {
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}
