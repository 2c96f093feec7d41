package services

import (
	"context"

	"github.com/dmitrijs2005/travelkeeper/internal/client/models"
	"github.com/dmitrijs2005/travelkeeper/internal/client/repositories/users"
	"github.com/dmitrijs2005/travelkeeper/internal/logging"
)

// AuthAPI is the slice of the server client the auth service needs.
type AuthAPI interface {
	Register(ctx context.Context, name, email string, password []byte) (*models.User, error)
	Login(ctx context.Context, email string, password []byte) (*models.User, error)
	Ping(ctx context.Context) error
}

// AuthService handles account registration and login against the server and
// mirrors the authenticated user into the local database so travels saved
// offline always have a user row to reference.
type AuthService struct {
	api    AuthAPI
	users  users.Repository
	logger logging.Logger
}

// NewAuthService returns a service over the given server client and local
// user mirror.
func NewAuthService(api AuthAPI, users users.Repository, logger logging.Logger) *AuthService {
	return &AuthService{
		api:    api,
		users:  users,
		logger: logger.With("module", "auth_service"),
	}
}

// Register creates an account on the server and mirrors it locally.
func (s *AuthService) Register(ctx context.Context, name, email string, password []byte) (*models.User, error) {
	u, err := s.api.Register(ctx, name, email, password)
	if err != nil {
		return nil, err
	}
	s.mirror(ctx, u)
	return u, nil
}

// Login authenticates against the server and mirrors the user locally.
func (s *AuthService) Login(ctx context.Context, email string, password []byte) (*models.User, error) {
	u, err := s.api.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}
	s.mirror(ctx, u)
	return u, nil
}

// mirror is best-effort: a missing local mirror only degrades offline
// listings, it never blocks a successful login.
func (s *AuthService) mirror(ctx context.Context, u *models.User) {
	if err := s.users.EnsureExists(ctx, u); err != nil {
		s.logger.Warn(ctx, "local user mirror failed", "user_id", u.ID, "error", err)
	}
}

// Ping reports whether the server answers.
func (s *AuthService) Ping(ctx context.Context) error {
	return s.api.Ping(ctx)
}
