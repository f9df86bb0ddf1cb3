package repository

import (
	"context"
	"testing"

	"farmmarket/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_EmailsAreUniqueCaseInsensitively(t *testing.T) {
	repo := NewUserRepository()
	ctx := context.Background()

	user := &domain.User{ID: uuid.New(), Email: "Farmer@Example.com", UserType: domain.UserTypeFarmer}
	require.NoError(t, repo.Create(ctx, user))

	dup := &domain.User{ID: uuid.New(), Email: "farmer@example.COM", UserType: domain.UserTypeFarmer}
	assert.ErrorIs(t, repo.Create(ctx, dup), ErrUserAlreadyExists)
}

func TestUserRepository_FindByEmailAndID(t *testing.T) {
	repo := NewUserRepository()
	ctx := context.Background()

	user := &domain.User{ID: uuid.New(), Email: "a@example.com", UserType: domain.UserTypeConsumer}
	require.NoError(t, repo.Create(ctx, user))

	byEmail, err := repo.FindByEmail(ctx, "A@EXAMPLE.COM")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)

	byID, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.Email, byID.Email)

	_, err = repo.FindByEmail(ctx, "missing@example.com")
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = repo.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserRepository_ReturnsCopies(t *testing.T) {
	repo := NewUserRepository()
	ctx := context.Background()

	user := &domain.User{ID: uuid.New(), Email: "a@example.com", UserType: domain.UserTypeConsumer}
	require.NoError(t, repo.Create(ctx, user))

	found, err := repo.FindByEmail(ctx, "a@example.com")
	require.NoError(t, err)

	found.Email = "tampered@example.com"

	again, err := repo.FindByEmail(ctx, "a@example.com")
	require.NoError(t, err)
	assert.Equal(t, "a@example.com", again.Email)
}
