package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"campushub/auth/microsoft"
	"campushub/internal/domain"
	"campushub/internal/storage"
)

var (
	// ErrForbidden: the identity is real but not welcome here (wrong email
	// domain, deactivated account).
	ErrForbidden = errors.New("access denied")
	// ErrNotAuthorized: the credential itself did not check out.
	ErrNotAuthorized = errors.New("unauthorized")
)

// bridge is the identity exchange the login flow runs through.
type bridge interface {
	Exchange(ctx context.Context, code string) (microsoft.Identity, error)
}

type Service struct {
	cfg    Config
	bridge bridge
	users  storage.UserStorage
	log    *logrus.Entry
}

func New(l *logrus.Logger, cfg Config, b bridge, users storage.UserStorage) *Service {
	return &Service{
		cfg:    cfg,
		bridge: b,
		users:  users,
		log:    l.WithField("from", "auth"),
	}
}

// Login turns an OAuth authorization code into a signed token, creating the
// user on first sign-in. The entry number is the campus email's local part.
func (s *Service) Login(ctx context.Context, code string) (domain.User, string, error) {
	identity, err := s.bridge.Exchange(ctx, code)
	if err != nil {
		s.log.WithError(err).Warn("identity exchange failed")
		return domain.User{}, "", ErrNotAuthorized
	}
	if s.cfg.AllowedDomain != "" && !strings.HasSuffix(identity.Email, "@"+s.cfg.AllowedDomain) {
		return domain.User{}, "", ErrForbidden
	}

	user, err := s.users.GetUserByEmail(ctx, identity.Email)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		user, err = s.users.CreateUser(ctx, domain.User{
			ID:          uuid.New(),
			EntryNumber: entryNumber(identity.Email),
			Email:       identity.Email,
			Name:        identity.Name,
			Active:      true,
			CreatedAt:   time.Now().UTC(),
		})
		if err != nil {
			return domain.User{}, "", err
		}
		s.log.WithField("email", user.Email).Info("first sign-in, user created")
	case err != nil:
		return domain.User{}, "", err
	}

	if !user.Active {
		return domain.User{}, "", ErrForbidden
	}
	token, err := s.GenerateToken(user.ID)
	if err != nil {
		return domain.User{}, "", err
	}
	return user, token, nil
}

func (s *Service) GenerateToken(userID uuid.UUID) (string, error) {
	expiresIn, err := time.ParseDuration(s.cfg.Expiration)
	if err != nil {
		return "", err
	}
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.StandardClaims{
		ExpiresAt: now.Add(expiresIn).Unix(),
		IssuedAt:  now.Unix(),
		Subject:   userID.String(),
	})
	return token.SignedString([]byte(s.cfg.Token))
}

// Auth verifies a bearer token and loads its user. Deactivated accounts are
// rejected even with a valid token.
func (s *Service) Auth(ctx context.Context, tokenString string) (domain.User, error) {
	if tokenString == "" {
		return domain.User{}, ErrNotAuthorized
	}
	token, err := jwt.ParseWithClaims(tokenString, &jwt.StandardClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.cfg.Token), nil
	})
	if err != nil || !token.Valid {
		return domain.User{}, ErrNotAuthorized
	}
	claims, ok := token.Claims.(*jwt.StandardClaims)
	if !ok {
		return domain.User{}, ErrNotAuthorized
	}
	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return domain.User{}, ErrNotAuthorized
	}
	user, err := s.users.GetUser(ctx, id)
	if err != nil {
		return domain.User{}, ErrNotAuthorized
	}
	if !user.Active {
		return domain.User{}, ErrForbidden
	}
	return user, nil
}

func entryNumber(email string) string {
	local, _, _ := strings.Cut(email, "@")
	return strings.ToUpper(local)
}
