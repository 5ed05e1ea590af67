package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopeasy/shopeasy-commerce-service/internal/apperr"
)

func TestRegister_StoresSaltedDigestNotPassword(t *testing.T) {
	store := newFakeUserStore()
	svc := NewAuthService(store, discardLogger())

	user, err := svc.Register(context.Background(), "alice", "s3cret")

	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.NotEmpty(t, user.Salt)
	assert.NotEmpty(t, user.PasswordHash)
	assert.NotContains(t, user.PasswordHash, "s3cret")
}

func TestRegister_SaltsAreUniquePerUser(t *testing.T) {
	store := newFakeUserStore()
	svc := NewAuthService(store, discardLogger())

	a, err := svc.Register(context.Background(), "alice", "same-password")
	require.NoError(t, err)
	b, err := svc.Register(context.Background(), "bob", "same-password")
	require.NoError(t, err)

	assert.NotEqual(t, a.Salt, b.Salt)
	assert.NotEqual(t, a.PasswordHash, b.PasswordHash,
		"same password must not produce the same digest")
}

func TestRegister_DuplicateUsername(t *testing.T) {
	store := newFakeUserStore()
	svc := NewAuthService(store, discardLogger())

	_, err := svc.Register(context.Background(), "alice", "one")
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), "alice", "two")
	require.ErrorIs(t, err, apperr.ErrDuplicateUsername)
}

func TestRegister_ValidatesInput(t *testing.T) {
	store := newFakeUserStore()
	svc := NewAuthService(store, discardLogger())

	_, err := svc.Register(context.Background(), "  ", "pw")
	assert.True(t, apperr.IsValidation(err))

	_, err = svc.Register(context.Background(), "alice", "")
	assert.True(t, apperr.IsValidation(err))
}

func TestAuthenticate(t *testing.T) {
	store := newFakeUserStore()
	svc := NewAuthService(store, discardLogger())

	registered, err := svc.Register(context.Background(), "alice", "s3cret")
	require.NoError(t, err)

	t.Run("correct password", func(t *testing.T) {
		user, err := svc.Authenticate(context.Background(), "alice", "s3cret")
		require.NoError(t, err)
		assert.Equal(t, registered.ID, user.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Authenticate(context.Background(), "alice", "wrong")
		require.ErrorIs(t, err, apperr.ErrInvalidCredentials)
	})

	t.Run("unknown username", func(t *testing.T) {
		_, err := svc.Authenticate(context.Background(), "mallory", "s3cret")
		require.ErrorIs(t, err, apperr.ErrNotFound)
	})

	t.Run("username is case-sensitive", func(t *testing.T) {
		_, err := svc.Authenticate(context.Background(), "Alice", "s3cret")
		require.ErrorIs(t, err, apperr.ErrNotFound)
	})
}
