package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/shopeasy/shopeasy-commerce-service/internal/apperr"
	"github.com/shopeasy/shopeasy-commerce-service/internal/auth"
	"github.com/shopeasy/shopeasy-commerce-service/internal/models"
)

// UserStore is the persistence surface for account management. Username
// uniqueness is enforced at the storage boundary, not here.
type UserStore interface {
	CreateUser(ctx context.Context, username, salt, hash string) (models.User, error)
	GetUserByUsername(ctx context.Context, username string) (models.User, error)
}

// AuthService registers accounts and verifies credentials.
type AuthService struct {
	store  UserStore
	logger *slog.Logger
}

func NewAuthService(store UserStore, logger *slog.Logger) *AuthService {
	return &AuthService{store: store, logger: logger}
}

// Register creates an account with a fresh random salt. A username already
// in use surfaces as apperr.ErrDuplicateUsername from the store.
func (s *AuthService) Register(ctx context.Context, username, password string) (models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return models.User{}, apperr.NewValidationError("username", "username is required")
	}
	if password == "" {
		return models.User{}, apperr.NewValidationError("password", "password is required")
	}

	salt, err := auth.GenerateSalt()
	if err != nil {
		return models.User{}, err
	}
	hash := auth.HashPassword(password, salt)

	user, err := s.store.CreateUser(ctx, username, salt, hash)
	if err != nil {
		return models.User{}, err
	}
	s.logger.Info("user registered", "user_id", user.ID, "username", user.Username)
	return user, nil
}

// Authenticate verifies the password against the stored salted digest.
// An unknown username returns apperr.ErrNotFound; a wrong password returns
// apperr.ErrInvalidCredentials.
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (models.User, error) {
	user, err := s.store.GetUserByUsername(ctx, username)
	if err != nil {
		return models.User{}, err
	}
	if !auth.Verify(password, user.Salt, user.PasswordHash) {
		return models.User{}, apperr.ErrInvalidCredentials
	}
	return user, nil
}
