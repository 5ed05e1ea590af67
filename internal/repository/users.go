package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/shopeasy/shopeasy-commerce-service/internal/apperr"
	"github.com/shopeasy/shopeasy-commerce-service/internal/models"
)

// pq error code for unique constraint violations.
const uniqueViolation = "23505"

// CreateUser persists a new account. Username uniqueness is enforced by the
// UNIQUE constraint, so a race between concurrent registrations of the same
// name resolves to exactly one row; the loser gets ErrDuplicateUsername.
func (s *Store) CreateUser(ctx context.Context, username, salt, hash string) (models.User, error) {
	query := `
		INSERT INTO users (username, salt, hash)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	var id int64
	err := s.db.QueryRowContext(ctx, query, username, salt, hash).Scan(&id)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return models.User{}, apperr.ErrDuplicateUsername
		}
		s.logger.Error("failed to create user", "username", username, "error", err)
		return models.User{}, fmt.Errorf("%w: create user: %v", apperr.ErrStorageUnavailable, err)
	}

	s.logger.Info("user registered", "user_id", id, "username", username)
	return models.User{ID: id, Username: username, Salt: salt, PasswordHash: hash}, nil
}

// GetUserByUsername looks up the stored credentials for a username.
// Usernames are case-sensitive; the constraint and this lookup agree.
func (s *Store) GetUserByUsername(ctx context.Context, username string) (models.User, error) {
	query := `
		SELECT id, username, salt, hash
		FROM users
		WHERE username = $1
	`

	var u models.User
	err := s.db.QueryRowContext(ctx, query, username).Scan(&u.ID, &u.Username, &u.Salt, &u.PasswordHash)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, apperr.ErrNotFound
	}
	if err != nil {
		return models.User{}, fmt.Errorf("%w: get user: %v", apperr.ErrStorageUnavailable, err)
	}

	return u, nil
}
